// Package motion turns desktop input into the attitude pitch the rings react to.
package motion

import (
	"math"

	"github.com/iburimskiy/mirage/internal/config"
)

// MaxPitch is the steepest tilt any source reports, in radians.
const MaxPitch = math.Pi / 2

// Source reports the current pitch in radians.
type Source interface {
	Pitch() float64
}

func clampPitch(p float64) float64 {
	return math.Max(-MaxPitch, math.Min(MaxPitch, p))
}

// Cursor maps the cursor's vertical position over the window to a pitch:
// the middle of the window is level, the top and bottom edges are ±MaxPitch.
type Cursor struct {
	Position func() (x, y int)
	Height   int
}

func (c *Cursor) Pitch() float64 {
	if c.Height <= 0 || c.Position == nil {
		return 0
	}
	_, y := c.Position()
	ratio := float64(y)/float64(c.Height) - 0.5
	return clampPitch(ratio * 2 * MaxPitch)
}

// Keys accumulates tilt while a key is held and settles back to level otherwise.
type Keys struct {
	Up, Down func() bool
	pitch    float64
}

// Tick advances the tilt by one frame.
func (k *Keys) Tick() {
	switch {
	case k.Up != nil && k.Up():
		k.pitch -= config.KeyTiltStep
	case k.Down != nil && k.Down():
		k.pitch += config.KeyTiltStep
	default:
		k.pitch *= config.KeyTiltDecay
	}
	k.pitch = clampPitch(k.pitch)
}

func (k *Keys) Pitch() float64 { return k.pitch }

// Leveler reports a signal level in [0, 1].
type Leveler interface {
	Level() float64
}

// Level tilts with the difference between the current level and a slow
// running baseline: louder than usual pushes the rings out, quieter pulls them in.
type Level struct {
	Source   Leveler
	baseline float64
	primed   bool
}

func (l *Level) Pitch() float64 {
	if l.Source == nil {
		return 0
	}
	v := l.Source.Level()
	if !l.primed {
		l.baseline = v
		l.primed = true
		return 0
	}
	l.baseline = config.LevelBaseline*l.baseline + (1-config.LevelBaseline)*v
	return clampPitch((v - l.baseline) * config.LevelGain * MaxPitch)
}

// Smoother low-pass filters another source.
type Smoother struct {
	Source Source
	Factor float64
	value  float64
}

// NewSmoother wraps src with the configured smoothing factor.
func NewSmoother(src Source) *Smoother {
	return &Smoother{Source: src, Factor: config.SmoothingFactor}
}

func (s *Smoother) Pitch() float64 {
	s.value = s.Factor*s.value + (1-s.Factor)*s.Source.Pitch()
	return s.value
}

// Reset forgets the filtered history.
func (s *Smoother) Reset() { s.value = 0 }

// Fixed always reports the same pitch.
type Fixed float64

func (f Fixed) Pitch() float64 { return float64(f) }
