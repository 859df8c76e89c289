// Package icon renders the application icon: a stylized atom drawn as
// an amber core inside two blue rings, with four green nodes sitting on
// the ring at the cardinal points. The design is fixed at 32x32 and
// produces identical pixels on every call.
package icon

import (
	"image"
	"image/color"
	"math"
)

// Size is the canvas edge in pixels.
const Size = 32

var (
	Core      = color.NRGBA{R: 251, G: 191, B: 36, A: 255} // #fbbf24
	InnerRing = color.NRGBA{R: 37, G: 99, B: 235, A: 255}  // #2563eb
	OuterRing = color.NRGBA{R: 30, G: 64, B: 175, A: 255}  // #1e40af
	Node      = color.NRGBA{R: 16, G: 185, B: 129, A: 255} // #10b981
)

const (
	coreRadius  = 4
	innerRadius = 8
	outerRadius = 14
	nodeOffset  = 10 // node centers sit this far from the icon center
	nodeHalf    = 2  // nodes extend this far along the perpendicular axis
)

// ColorAt returns the pixel color at (x, y), with y growing downward.
// Distances are measured from the integer center (Size/2, Size/2), so
// pixels past the outer ring come back fully transparent.
func ColorAt(x, y int) color.NRGBA {
	dx := x - Size/2
	dy := y - Size/2
	d := math.Hypot(float64(dx), float64(dy))

	var c color.NRGBA
	if d <= coreRadius {
		c = Core
	} else if d <= innerRadius {
		c = InnerRing
	} else if d <= outerRadius {
		c = OuterRing
	}

	// Node markers win over whatever ring they land on.
	if (abs(dx) == nodeOffset && abs(dy) <= nodeHalf) ||
		(abs(dy) == nodeOffset && abs(dx) <= nodeHalf) {
		c = Node
	}
	return c
}

// Render rasterizes the design onto a fresh canvas.
func Render() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, Size, Size))
	for y := range Size {
		for x := range Size {
			img.SetNRGBA(x, y, ColorAt(x, y))
		}
	}
	return img
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
