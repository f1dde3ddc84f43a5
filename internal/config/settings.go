package config

import (
	"os"
	"strconv"
	"strings"
)

// Motion source names accepted by MIRAGE_MOTION.
const (
	MotionCursor = "cursor"
	MotionKeys   = "keys"
	MotionAudio  = "audio"
)

// Settings holds the runtime knobs that are not compile-time tuning.
type Settings struct {
	Rings     int
	Seed      int64
	Theme     string
	ThemeFile string
	Image     string
	Audio     string
	Motion    string
}

// DefaultSettings returns the settings used when no environment overrides are set.
func DefaultSettings() *Settings {
	return &Settings{
		Rings:  DefaultRingCount,
		Theme:  DefaultThemeName,
		Motion: MotionCursor,
	}
}

// LoadSettings loads settings from MIRAGE_* environment variables.
// Malformed values are ignored and the default is kept.
func LoadSettings() *Settings {
	cfg := DefaultSettings()

	if rings := os.Getenv("MIRAGE_RINGS"); rings != "" {
		if val, err := strconv.Atoi(rings); err == nil && val >= 0 {
			cfg.Rings = val
		}
	}

	if seed := os.Getenv("MIRAGE_SEED"); seed != "" {
		if val, err := strconv.ParseInt(seed, 10, 64); err == nil {
			cfg.Seed = val
		}
	}

	if theme := os.Getenv("MIRAGE_THEME"); theme != "" {
		cfg.Theme = theme
	}

	cfg.ThemeFile = os.Getenv("MIRAGE_THEME_FILE")
	cfg.Image = os.Getenv("MIRAGE_IMAGE")
	cfg.Audio = os.Getenv("MIRAGE_AUDIO")

	if motion := os.Getenv("MIRAGE_MOTION"); motion != "" {
		switch m := strings.ToLower(motion); m {
		case MotionCursor, MotionKeys, MotionAudio:
			cfg.Motion = m
		}
	}

	return cfg
}
