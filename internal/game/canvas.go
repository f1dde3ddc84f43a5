package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/mirage/internal/ring"
)

// sprite is one attached ring element.
type sprite struct {
	image    *ebiten.Image
	origin   ring.Point
	size     ring.Size
	rotation float64
	tint     color.Color
	detached bool
}

func (s *sprite) SetFrame(origin ring.Point, size ring.Size) {
	s.origin = origin
	s.size = size
}

func (s *sprite) SetRotation(radians float64) { s.rotation = radians }

// canvas is the ring container backed by the game screen. Sprites are drawn
// in attach order.
type canvas struct {
	center  ring.Point
	sprites []*sprite
	removed int

	// debug outlines each sprite's frame in its tint.
	debug bool
}

func newCanvas(width, height int) *canvas {
	return &canvas{center: ring.Point{X: float64(width) / 2, Y: float64(height) / 2}}
}

func (c *canvas) Center() ring.Point { return c.center }

func (c *canvas) Attach(base ring.Image, origin ring.Point, size ring.Size, tint color.Color) ring.Element {
	var img *ebiten.Image
	switch b := base.(type) {
	case *ebiten.Image:
		img = b
	case image.Image:
		img = ebiten.NewImageFromImage(b)
	}
	s := &sprite{image: img, origin: origin, size: size, tint: tint}
	c.sprites = append(c.sprites, s)
	return s
}

func (c *canvas) Detach(e ring.Element) {
	s, ok := e.(*sprite)
	if !ok || s.detached {
		return
	}
	s.detached = true
	c.removed++
}

// compact drops detached sprites once they make up a good share of the list.
func (c *canvas) compact() {
	if c.removed == 0 || c.removed < len(c.sprites)/4 {
		return
	}
	live := c.sprites[:0]
	for _, s := range c.sprites {
		if !s.detached {
			live = append(live, s)
		}
	}
	for i := len(live); i < len(c.sprites); i++ {
		c.sprites[i] = nil
	}
	c.sprites = live
	c.removed = 0
}

func (c *canvas) attached() int { return len(c.sprites) - c.removed }

func (c *canvas) draw(screen *ebiten.Image) {
	c.compact()
	for _, s := range c.sprites {
		if s.detached || s.image == nil {
			continue
		}
		s.draw(screen)
		if c.debug {
			vector.StrokeRect(screen, float32(s.origin.X), float32(s.origin.Y),
				float32(s.size.W), float32(s.size.H), 1, s.tint, false)
		}
	}
}

// draw renders the sprite scaled to its frame and rotated about the frame's center.
func (s *sprite) draw(screen *ebiten.Image) {
	b := s.image.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if w == 0 || h == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(s.size.W/w, s.size.H/h)
	op.GeoM.Rotate(s.rotation)
	op.GeoM.Translate(s.origin.X+s.size.W/2, s.origin.Y+s.size.H/2)
	op.ColorScale.ScaleWithColor(s.tint)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.image, op)
}
