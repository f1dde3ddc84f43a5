// Package ring holds the geometry and lifecycle of the image rings: images
// spaced evenly on a circle, expanding and spinning with a tilt signal, and a
// stack that recycles rings once they collapse or grow past the screen.
//
// The package does not draw. A host Container attaches one Element per image
// and is told where each one sits and how it is rotated.
package ring

import (
	"image"
	"image/color"
	"math"

	"github.com/iburimskiy/mirage/internal/config"
)

type Point struct {
	X, Y float64
}

type Size struct {
	W, H float64
}

// Image is the template every element of a ring is instantiated from.
type Image interface {
	Bounds() image.Rectangle
}

// Element is a drawable handle owned by exactly one ring.
type Element interface {
	// SetFrame places the element with its origin (top-left) at origin.
	SetFrame(origin Point, size Size)
	// SetRotation sets the element's rotation transform in radians.
	SetRotation(radians float64)
}

// Container is the host view the rings attach their elements to.
type Container interface {
	Attach(base Image, origin Point, size Size, tint color.Color) Element
	Detach(e Element)
	Center() Point
}

// ImageRing is a fixed number of elements spaced evenly on a circle.
type ImageRing struct {
	elements  []Element
	container Container

	radius     float64
	center     Point
	imageSize  Size
	color      color.Color
	expandRate float64
	spinRate   float64
	spinOffset float64
	rotation   float64
}

// NewImageRing attaches count copies of base to container, spaced on a circle
// of the given radius with no spin offset. A negative count makes an empty ring.
func NewImageRing(base Image, count int, radius float64, center Point, imageSize Size,
	tint color.Color, expandRate, spinRate float64, container Container) *ImageRing {
	if count < 0 {
		count = 0
	}
	r := &ImageRing{
		elements:   make([]Element, 0, count),
		container:  container,
		radius:     radius,
		center:     center,
		imageSize:  imageSize,
		color:      tint,
		expandRate: expandRate,
		spinRate:   spinRate,
	}
	for i := 0; i < count; i++ {
		origin := elementPosition(i, count, radius, center, 0)
		r.elements = append(r.elements, container.Attach(base, origin, imageSize, tint))
	}
	return r
}

// elementPosition returns the position of element i of n on the circle.
func elementPosition(i, n int, radius float64, center Point, offset float64) Point {
	angle := float64(i)/float64(n)*2*math.Pi + offset
	return Point{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}

// Position returns where element i currently belongs given radius and spin offset.
func (r *ImageRing) Position(i int) Point {
	return elementPosition(i, len(r.elements), r.radius, r.center, r.spinOffset)
}

// UpdateRadius grows the ring by delta and repositions every element.
func (r *ImageRing) UpdateRadius(delta float64) {
	r.radius += delta
	for i, e := range r.elements {
		e.SetFrame(r.Position(i), r.imageSize)
	}
}

// Spin advances the spin offset by the spin rate. Elements move on the next
// UpdateRadius.
func (r *ImageRing) Spin() {
	r.spinOffset += r.spinRate
}

// UpdateFromMotion applies one attitude pitch sample (radians).
func (r *ImageRing) UpdateFromMotion(pitch float64) {
	r.UpdateRadius(pitch * config.PitchRadiusGain * r.expandRate)
	r.rotate(pitch+math.Pi, config.RotationSpeed)
	r.updateSpin(pitch)
}

func (r *ImageRing) rotate(radians, speed float64) {
	r.rotation = radians * speed
	for _, e := range r.elements {
		e.SetRotation(r.rotation)
	}
}

// updateSpin feeds the previous spin rate back in. The recurrence can grow
// without bound when sin(pitch) stays near ±1.
func (r *ImageRing) updateSpin(pitch float64) {
	r.spinRate = r.spinRate*math.Sin(pitch)*config.SpinGain + config.SpinFloor
}

func (r *ImageRing) TooSmall() bool { return r.radius < config.MinRadius }

func (r *ImageRing) TooBig() bool { return r.radius > config.MaxRadius }

// Release detaches every element from the container. Calling it twice is a no-op.
func (r *ImageRing) Release() {
	for _, e := range r.elements {
		r.container.Detach(e)
	}
	r.elements = nil
}

func (r *ImageRing) Radius() float64 { return r.radius }
func (r *ImageRing) Center() Point { return r.center }
func (r *ImageRing) ImageSize() Size { return r.imageSize }
func (r *ImageRing) Color() color.Color { return r.color }
func (r *ImageRing) ExpandRate() float64 { return r.expandRate }
func (r *ImageRing) SpinRate() float64 { return r.spinRate }
func (r *ImageRing) SpinOffset() float64 { return r.spinOffset }
func (r *ImageRing) Rotation() float64 { return r.rotation }
func (r *ImageRing) Len() int { return len(r.elements) }
func (r *ImageRing) Element(i int) Element { return r.elements[i] }
