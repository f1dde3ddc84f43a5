package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
)

const DefaultThemeName = "white"

// Theme is a named palette new rings draw their color from.
type Theme struct {
	Name   string
	Colors []color.RGBA
}

var BuiltinThemes = []Theme{
	{Name: DefaultThemeName, Colors: []color.RGBA{{255, 255, 255, 255}}},
	{Name: "neon", Colors: []color.RGBA{
		{255, 20, 147, 255},
		{0, 255, 255, 255},
		{57, 255, 20, 255},
		{255, 255, 0, 255},
	}},
	{Name: "sunset", Colors: []color.RGBA{
		{255, 94, 77, 255},
		{255, 154, 0, 255},
		{237, 117, 56, 255},
		{180, 50, 120, 255},
		{255, 206, 84, 255},
	}},
	{Name: "ocean", Colors: []color.RGBA{
		{0, 119, 190, 255},
		{0, 180, 216, 255},
		{144, 224, 239, 255},
		{3, 4, 94, 255},
	}},
}

type themeFileEntry struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

// LoadThemes reads a JSON array of {"name", "colors": ["#rrggbb", ...]} entries.
func LoadThemes(path string) ([]Theme, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}
	return ParseThemes(file)
}

// ParseThemes decodes theme file contents. Themes without colors are rejected.
func ParseThemes(data []byte) ([]Theme, error) {
	var entries []themeFileEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal themes: %w", err)
	}

	themes := make([]Theme, 0, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			return nil, errors.New("theme without a name")
		}
		if len(e.Colors) == 0 {
			return nil, fmt.Errorf("theme %q has no colors", e.Name)
		}
		t := Theme{Name: e.Name, Colors: make([]color.RGBA, 0, len(e.Colors))}
		for _, hex := range e.Colors {
			c, err := ParseHexColor(hex)
			if err != nil {
				return nil, fmt.Errorf("theme %q: %w", e.Name, err)
			}
			t.Colors = append(t.Colors, c)
		}
		themes = append(themes, t)
	}
	return themes, nil
}

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa" (leading '#' optional).
func ParseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// FindTheme looks a theme up by name, case-insensitively.
func FindTheme(themes []Theme, name string) (Theme, bool) {
	for _, t := range themes {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Theme{}, false
}
