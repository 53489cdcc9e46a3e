package pngsink

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/npillmayer/spaceranger/core"
)

// Theme is an appearance mode.
type Theme int

// Appearance modes
const (
	Light Theme = iota
	Dark
)

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// ParseTheme reads "light" or "dark".
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light", "":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return Light, core.Error(core.EINVALID, "unknown appearance %q", s)
}

// RGBA is a color with components in [0, 1], not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// Color converts c to a non-premultiplied 8-bit color.
func (c RGBA) Color() color.NRGBA {
	return color.NRGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A),
	}
}

// WithAlpha returns c with its alpha multiplied by a.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A *= a
	return c
}

func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%.2f, %.2f, %.2f, %.2f)", c.R, c.G, c.B, c.A)
}

func channel(v float64) uint8 {
	return uint8(min(max(v, 0), 1)*255 + 0.5)
}

// Colors is the palette of a theme.
type Colors struct {
	Background             RGBA
	Fill                   RGBA
	SourceBorder           RGBA
	InstanceBorder         RGBA
	LocationTextFill       RGBA
	LocationTextBackground RGBA
	Unsmooth               RGBA // alpha is scaled by a marker's deviation
}

// Palette returns the colors for theme t.
func Palette(t Theme) Colors {
	if t == Dark {
		return Colors{
			Background:             RGBA{0, 0, 0, 1},
			Fill:                   RGBA{1, 1, 1, 1},
			SourceBorder:           RGBA{1, 1, 1, 0.25},
			InstanceBorder:         RGBA{0.4, 0.7, 1, 0.35},
			LocationTextFill:       RGBA{0, 0, 0, 1},
			LocationTextBackground: RGBA{1, 1, 1, 0.95},
			Unsmooth:               RGBA{1, 0.3, 0.2, 1},
		}
	}
	return Colors{
		Background:             RGBA{1, 1, 1, 1},
		Fill:                   RGBA{0, 0, 0, 1},
		SourceBorder:           RGBA{0, 0, 0, 0.25},
		InstanceBorder:         RGBA{0, 0.35, 0.8, 0.35},
		LocationTextFill:       RGBA{1, 1, 1, 1},
		LocationTextBackground: RGBA{0, 0, 0, 0.9},
		Unsmooth:               RGBA{1, 0, 0, 1},
	}
}
