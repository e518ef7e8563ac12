package hotkeys

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The OS backend loads golang.design/x/hotkey, whose Linux init needs an X
// display. The core packages must stay usable without one.
func TestCorePackagesAvoidBackend(t *testing.T) {
	for _, dir := range []string{".", "../mode"} {
		files, err := filepath.Glob(filepath.Join(dir, "*.go"))
		require.NoError(t, err)
		require.NotEmpty(t, files)

		for _, file := range files {
			f, err := parser.ParseFile(token.NewFileSet(), file, nil, parser.ImportsOnly)
			require.NoError(t, err, file)
			for _, imp := range f.Imports {
				path, err := strconv.Unquote(imp.Path.Value)
				require.NoError(t, err)
				assert.NotEqual(t, "floatimage/internal/platform", path, file)
				assert.False(t, strings.HasPrefix(path, "golang.design/"), "%s imports %s", file, path)
			}
		}
	}
}
