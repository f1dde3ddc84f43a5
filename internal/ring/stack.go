package ring

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/iburimskiy/mirage/internal/config"
	"github.com/iburimskiy/mirage/internal/prng"
)

// ErrIndexOutOfRange is returned when a ring index does not exist in the stack.
var ErrIndexOutOfRange = errors.New("ring index out of range")

// Rand is the only randomness the stack needs: a uniform integer in [0, n).
type Rand interface {
	Intn(n int) int
}

var DefaultTheme = []color.Color{color.White}

// Stack owns the active rings and recycles them when they cross a threshold.
type Stack struct {
	rings     []*ImageRing
	container Container
	baseImage Image
	theme     []color.Color
	rnd       Rand
}

// NewStack creates numRings rings from the center, each pushed out by its
// index times the ring spacing so they start as concentric circles. A nil
// rnd gets a time-seeded source.
func NewStack(numRings int, container Container, base Image, theme []color.Color, rnd Rand) *Stack {
	if rnd == nil {
		rnd = prng.New(0)
	}
	s := &Stack{
		container: container,
		baseImage: base,
		rnd:       rnd,
	}
	s.UpdateTheme(theme)

	for i := 0; i < numRings; i++ {
		s.AddRingFromCenter(container, base)
		s.rings[len(s.rings)-1].UpdateRadius(float64(i) * config.RingSpacing)
	}
	return s
}

// AddRingFromCenter appends a freshly randomized ring at the center radius.
func (s *Stack) AddRingFromCenter(container Container, base Image) *ImageRing {
	return s.addRing(container, base, config.CenterRadius)
}

// AddRingFromEdge appends a freshly randomized ring at the edge radius.
func (s *Stack) AddRingFromEdge(container Container, base Image) *ImageRing {
	return s.addRing(container, base, config.EdgeRadius)
}

func (s *Stack) addRing(container Container, base Image, radius float64) *ImageRing {
	r := NewImageRing(
		base,
		config.MinImages+s.rnd.Intn(config.ImageVariety),
		radius,
		container.Center(),
		s.RandomSize(),
		s.RandomColor(),
		s.RandomExpandRate(config.MinExpandRate, config.MaxExpandRate),
		s.RandomSpinRate(),
		container,
	)
	s.rings = append(s.rings, r)
	return r
}

// RemoveRing releases the ring at index and closes the gap, keeping the
// order of the remaining rings. Slices returned by Rings earlier are left as they were.
func (s *Stack) RemoveRing(index int) error {
	if index < 0 || index >= len(s.rings) {
		return fmt.Errorf("%w: index %d, %d rings", ErrIndexOutOfRange, index, len(s.rings))
	}
	s.rings[index].Release()
	rings := make([]*ImageRing, 0, len(s.rings)-1)
	rings = append(rings, s.rings[:index]...)
	s.rings = append(rings, s.rings[index+1:]...)
	return nil
}

// CheckAndRefreshRing recycles every ring that collapsed below the minimum
// radius (respawned at the edge) or grew past the maximum (respawned at the
// center). Only the rings present when the call starts are checked; survivors
// keep their order and replacements are appended in scan order. It returns the
// number of rings recycled.
func (s *Stack) CheckAndRefreshRing() int {
	snapshot := s.rings
	kept := make([]*ImageRing, 0, len(snapshot))
	var spawn []float64

	for _, r := range snapshot {
		switch {
		case r.TooSmall():
			r.Release()
			spawn = append(spawn, config.EdgeRadius)
		case r.TooBig():
			r.Release()
			spawn = append(spawn, config.CenterRadius)
		default:
			kept = append(kept, r)
		}
	}

	s.rings = kept
	for _, radius := range spawn {
		s.addRing(s.container, s.baseImage, radius)
	}
	return len(spawn)
}

// UpdateFromMotion feeds a pitch sample to every ring, then spins them.
func (s *Stack) UpdateFromMotion(pitch float64) {
	for _, r := range s.rings {
		r.UpdateFromMotion(pitch)
		r.Spin()
	}
}

// UpdateTheme replaces the palette for rings created from now on. An empty
// theme falls back to DefaultTheme.
func (s *Stack) UpdateTheme(theme []color.Color) {
	if len(theme) == 0 {
		theme = DefaultTheme
	}
	s.theme = append([]color.Color(nil), theme...)
}

// UpdateBaseImage replaces the template for rings created from now on.
func (s *Stack) UpdateBaseImage(img Image) {
	s.baseImage = img
}

// RandomSize returns a size with each side in [MinImageSize, MinImageSize+ImageSizeVariety).
func (s *Stack) RandomSize() Size {
	return Size{
		W: float64(config.MinImageSize + s.rnd.Intn(config.ImageSizeVariety)),
		H: float64(config.MinImageSize + s.rnd.Intn(config.ImageSizeVariety)),
	}
}

func (s *Stack) RandomSpinRate() float64 {
	return config.SpinRates[s.rnd.Intn(len(config.SpinRates))]
}

// RandomExpandRate returns lo plus a whole-percent fraction of (hi - lo),
// so both bounds are reachable.
func (s *Stack) RandomExpandRate(lo, hi float64) float64 {
	return lo + float64(s.rnd.Intn(101))/100*(hi-lo)
}

func (s *Stack) RandomColor() color.Color {
	return s.theme[s.rnd.Intn(len(s.theme))]
}

// Release tears the stack down, detaching every ring's elements.
func (s *Stack) Release() {
	for _, r := range s.rings {
		r.Release()
	}
	s.rings = nil
}

// Ring returns the ring at index.
func (s *Stack) Ring(index int) (*ImageRing, error) {
	if index < 0 || index >= len(s.rings) {
		return nil, fmt.Errorf("%w: index %d, %d rings", ErrIndexOutOfRange, index, len(s.rings))
	}
	return s.rings[index], nil
}

// Rings returns the active rings in creation order. The slice must not be modified.
func (s *Stack) Rings() []*ImageRing { return s.rings }

func (s *Stack) Len() int { return len(s.rings) }

func (s *Stack) Theme() []color.Color { return s.theme }

func (s *Stack) BaseImage() Image { return s.baseImage }
