package hotkeys

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floatimage/internal/platform/native"
)

type backendCall struct {
	op     string
	window native.WindowHandle
	id     int
	mods   uint
	key    uint
}

// fakeBackend records calls and refuses keys listed in taken.
type fakeBackend struct {
	calls         []backendCall
	taken         map[uint]bool
	unregisterErr error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{taken: make(map[uint]bool)}
}

func (f *fakeBackend) RegisterHotkey(window native.WindowHandle, id int, modifiers uint, keyCode uint) error {
	f.calls = append(f.calls, backendCall{"register", window, id, modifiers, keyCode})
	if f.taken[keyCode] {
		return errors.New("hot key is already registered")
	}
	return nil
}

func (f *fakeBackend) UnregisterHotkey(window native.WindowHandle, id int) error {
	f.calls = append(f.calls, backendCall{op: "unregister", window: window, id: id})
	return f.unregisterErr
}

func (f *fakeBackend) reset() { f.calls = nil }

const testWindow native.WindowHandle = 0x1234

func mustParse(t *testing.T, text string) Combination {
	t.Helper()
	c, err := Parse(text)
	require.NoError(t, err)
	return c
}

func TestRegistryRegister(t *testing.T) {
	b := newFakeBackend()
	r := NewRegistry(b, testWindow)

	_, ok := r.Current()
	assert.False(t, ok)

	reg, err := r.Register(Default)
	require.NoError(t, err)
	assert.Equal(t, Registration{ID: HotkeyID, Combination: Default, Window: testWindow}, reg)
	assert.Equal(t, []backendCall{
		{"register", testWindow, HotkeyID, uint(ModShift | ModAlt), 'Z'},
	}, b.calls)

	cur, ok := r.Current()
	require.True(t, ok)
	assert.Equal(t, Default, cur)
}

func TestRegistryReplaceIdenticalIsNoop(t *testing.T) {
	b := newFakeBackend()
	r := NewRegistry(b, testWindow)
	_, err := r.Register(Default)
	require.NoError(t, err)
	b.reset()

	require.NoError(t, r.Replace(mustParse(t, "alt + shift + z")))
	assert.Empty(t, b.calls)
}

func TestRegistryReplaceUnregistersFirst(t *testing.T) {
	b := newFakeBackend()
	r := NewRegistry(b, testWindow)
	_, err := r.Register(Default)
	require.NoError(t, err)
	b.reset()

	next := mustParse(t, "Ctrl+F5")
	require.NoError(t, r.Replace(next))
	assert.Equal(t, []backendCall{
		{op: "unregister", window: testWindow, id: HotkeyID},
		{"register", testWindow, HotkeyID, uint(ModCtrl), uint(VKF1 + 4)},
	}, b.calls)

	cur, _ := r.Current()
	assert.Equal(t, next, cur)
}

func TestRegistryReplaceFailureRestoresPrevious(t *testing.T) {
	b := newFakeBackend()
	r := NewRegistry(b, testWindow)
	_, err := r.Register(Default)
	require.NoError(t, err)
	b.reset()
	b.taken['Q'] = true

	err = r.Replace(mustParse(t, "Ctrl+Q"))
	require.Error(t, err)

	var regErr *RegistrationError
	require.True(t, errors.As(err, &regErr))
	assert.Equal(t, "Ctrl+Q", regErr.Combination.String())

	assert.Equal(t, []backendCall{
		{op: "unregister", window: testWindow, id: HotkeyID},
		{"register", testWindow, HotkeyID, uint(ModCtrl), 'Q'},
		{"register", testWindow, HotkeyID, uint(ModShift | ModAlt), 'Z'},
	}, b.calls)

	cur, ok := r.Current()
	require.True(t, ok)
	assert.Equal(t, Default, cur)
}

func TestRegistryInitialFailure(t *testing.T) {
	b := newFakeBackend()
	b.taken['Z'] = true
	r := NewRegistry(b, testWindow)

	_, err := r.Register(Default)
	var regErr *RegistrationError
	require.True(t, errors.As(err, &regErr))

	_, ok := r.Current()
	assert.False(t, ok)
}

func TestRegistryRejectsInvalidCombination(t *testing.T) {
	b := newFakeBackend()
	r := NewRegistry(b, testWindow)

	_, err := r.Register(Combination{Key: 'Z'})
	assert.ErrorIs(t, err, ErrNoModifier)
	assert.Empty(t, b.calls)
}

func TestRegistryUnregisterIsIdempotent(t *testing.T) {
	b := newFakeBackend()
	r := NewRegistry(b, testWindow)
	_, err := r.Register(Default)
	require.NoError(t, err)
	b.reset()
	b.unregisterErr = errors.New("invalid window handle")

	r.Unregister()
	r.Unregister()
	assert.Len(t, b.calls, 1)

	_, ok := r.Current()
	assert.False(t, ok)
}

func TestRegistryReplaceKeepsPreviousWhenReleaseFails(t *testing.T) {
	b := newFakeBackend()
	r := NewRegistry(b, testWindow)
	_, err := r.Register(Default)
	require.NoError(t, err)
	b.reset()
	b.unregisterErr = errors.New("hot key is not registered")

	err = r.Replace(mustParse(t, "Ctrl+K"))
	var regErr *RegistrationError
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, "Ctrl+K", regErr.Combination.String())

	// No register was attempted and the old hotkey is still owned.
	require.Len(t, b.calls, 1)
	assert.Equal(t, "unregister", b.calls[0].op)
	cur, ok := r.Current()
	require.True(t, ok)
	assert.Equal(t, Default, cur)

	// Close still tries to release it.
	b.reset()
	b.unregisterErr = nil
	r.Unregister()
	assert.Len(t, b.calls, 1)
}
