package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/iburimskiy/mirage/internal/config"
)

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8(math.Round((r + m) * 255)), uint8(math.Round((g + m) * 255)), uint8(math.Round((b + m) * 255))
}

// rainbowTheme spreads n fully saturated hues around the color wheel.
func rainbowTheme(n int) config.Theme {
	t := config.Theme{Name: "rainbow", Colors: make([]color.RGBA, 0, n)}
	for i := 0; i < n; i++ {
		r, g, b := hsvToRgb(float64(i)*360/float64(n), 0.8, 1)
		t.Colors = append(t.Colors, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	return t
}

// paletteOf converts a theme to the palette a ring stack draws from.
func paletteOf(t config.Theme) []color.Color {
	out := make([]color.Color, len(t.Colors))
	for i, c := range t.Colors {
		out[i] = c
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
