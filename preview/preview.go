// Package preview draws the icon into a terminal. Each character cell
// covers two vertically stacked pixels via half-block glyphs, so the
// 32x32 canvas comes out as 16 lines of 32 columns.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"atomicon/icon"
)

// Palette indices for the renderer. Index 0 stays unstyled so fully
// transparent pixel pairs collapse to plain spaces.
const (
	blank = iota
	core
	inner
	outer
	node
	paletteLen
)

var paletteColors = [paletteLen]color.NRGBA{
	core:  icon.Core,
	inner: icon.InnerRing,
	outer: icon.OuterRing,
	node:  icon.Node,
}

// Pre-computed pixel styles to avoid allocations in the render loop
var (
	pixelStyles [paletteLen]lipgloss.Style
	pixelBg     [paletteLen][paletteLen]lipgloss.Style
)

func init() {
	var hex [paletteLen]string
	for i, c := range paletteColors {
		if i != blank {
			hex[i] = fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
		}
	}
	for i, fg := range hex {
		if fg != "" {
			pixelStyles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
		}
	}
	for i, fg := range hex {
		for j, bg := range hex {
			if fg != "" && bg != "" {
				pixelBg[i][j] = lipgloss.NewStyle().Foreground(lipgloss.Color(fg)).Background(lipgloss.Color(bg))
			}
		}
	}
}

func classify(c color.NRGBA) int {
	switch c {
	case icon.Core:
		return core
	case icon.InnerRing:
		return inner
	case icon.OuterRing:
		return outer
	case icon.Node:
		return node
	}
	return blank
}

// Render returns the terminal rendition of img, one line per pixel row
// pair, each line terminated by a newline. Styling degrades to bare
// glyphs when the terminal cannot take color.
func Render(img *image.NRGBA) string {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	var result strings.Builder
	for cy := 0; cy < (h+1)/2; cy++ {
		for x := 0; x < w; x++ {
			top := classify(img.NRGBAAt(b.Min.X+x, b.Min.Y+cy*2))
			bot := blank
			if cy*2+1 < h {
				bot = classify(img.NRGBAAt(b.Min.X+x, b.Min.Y+cy*2+1))
			}
			if top == blank && bot == blank {
				result.WriteString(" ")
			} else if top == bot {
				result.WriteString(pixelStyles[top].Render("█"))
			} else if top != blank && bot == blank {
				result.WriteString(pixelStyles[top].Render("▀"))
			} else if top == blank && bot != blank {
				result.WriteString(pixelStyles[bot].Render("▄"))
			} else {
				result.WriteString(pixelBg[top][bot].Render("▀"))
			}
		}
		result.WriteString("\n")
	}
	return result.String()
}
