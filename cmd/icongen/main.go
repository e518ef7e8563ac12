// Command icongen draws the tray and application icons.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
)

const size = 64

func main() {
	out := flag.String("out", filepath.Join("internal", "assets"), "output directory")
	flag.Parse()

	img := image.NewRGBA(image.Rect(0, 0, size, size))

	// Colors
	bgColor := color.RGBA{32, 33, 35, 255}     // Dark frame
	skyColor := color.RGBA{88, 140, 236, 255}  // Picture sky
	hillColor := color.RGBA{74, 222, 128, 255} // Picture hills
	sunColor := color.RGBA{234, 179, 8, 255}   // Picture sun

	// Rounded dark frame
	fillRounded(img, 2, 2, size-4, size-4, 12, bgColor)

	// Picture area inside the frame
	fillRounded(img, 10, 12, size-20, size-24, 4, skyColor)

	// Sun
	fillCircle(img, 40, 24, 5, sunColor)

	// Hills: two overlapping triangles standing on the picture's bottom edge
	bottom := 12 + size - 24
	fillTriangle(img, 10, bottom, 26, 28, 42, bottom, hillColor)
	fillTriangle(img, 28, bottom, 42, 34, size-10, bottom, hillColor)

	dir := *out
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatal(err)
	}

	// Tray icon
	savePNG(img, filepath.Join(dir, "tray.png"))

	// App icon (same for now)
	savePNG(img, filepath.Join(dir, "app.png"))
}

func fillRounded(img *image.RGBA, x, y, w, h int, r float64, c color.Color) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			if inRoundedRect(float64(px), float64(py), float64(x), float64(y), float64(w), float64(h), r) {
				img.Set(px, py, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r int, c color.Color) {
	for py := cy - r; py <= cy+r; py++ {
		for px := cx - r; px <= cx+r; px++ {
			dx, dy := float64(px-cx), float64(py-cy)
			if math.Sqrt(dx*dx+dy*dy) <= float64(r) {
				img.Set(px, py, c)
			}
		}
	}
}

// fillTriangle fills the triangle (x1,y1) (x2,y2) (x3,y3) using edge signs.
func fillTriangle(img *image.RGBA, x1, y1, x2, y2, x3, y3 int, c color.Color) {
	edge := func(ax, ay, bx, by, px, py int) int {
		return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
	}
	minX, maxX := min(x1, x2, x3), max(x1, x2, x3)
	minY, maxY := min(y1, y2, y3), max(y1, y2, y3)
	for py := minY; py < maxY; py++ {
		for px := minX; px < maxX; px++ {
			e1 := edge(x1, y1, x2, y2, px, py)
			e2 := edge(x2, y2, x3, y3, px, py)
			e3 := edge(x3, y3, x1, y1, px, py)
			if (e1 >= 0 && e2 >= 0 && e3 >= 0) || (e1 <= 0 && e2 <= 0 && e3 <= 0) {
				img.Set(px, py, c)
			}
		}
	}
}

func inRoundedRect(px, py, rx, ry, rw, rh, radius float64) bool {
	if px < rx || px >= rx+rw || py < ry || py >= ry+rh {
		return false
	}

	// Check corners
	corners := [][2]float64{
		{rx + radius, ry + radius},           // top-left
		{rx + rw - radius, ry + radius},      // top-right
		{rx + radius, ry + rh - radius},      // bottom-left
		{rx + rw - radius, ry + rh - radius}, // bottom-right
	}

	for _, corner := range corners {
		cx, cy := corner[0], corner[1]
		inCornerX := (px < rx+radius && cx == rx+radius) || (px >= rx+rw-radius && cx == rx+rw-radius)
		inCornerY := (py < ry+radius && cy == ry+radius) || (py >= ry+rh-radius && cy == ry+rh-radius)

		if inCornerX && inCornerY {
			dist := math.Sqrt((px-cx)*(px-cx) + (py-cy)*(py-cy))
			if dist > radius {
				return false
			}
		}
	}

	return true
}

func savePNG(img image.Image, path string) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatal(err)
	}
}
