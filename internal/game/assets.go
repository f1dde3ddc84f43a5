package game

import (
	"fmt"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var imagePatterns = []string{"*.png", "*.jpg", "*.jpeg", "*.gif", "*.bmp", "*.webp"}

// defaultBaseImage draws a white disc with a faint inner groove. White keeps
// the ring tint exact.
func defaultBaseImage() *ebiten.Image {
	const size = 64
	img := ebiten.NewImage(size, size)
	vector.DrawFilledCircle(img, size/2, size/2, size/2-2, color.White, true)
	vector.StrokeCircle(img, size/2, size/2, size/3, 3, color.RGBA{A: 120}, true)
	return img
}

// loadBaseImage decodes an image file into a ring template.
func loadBaseImage(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load base image: %w", err)
	}
	return img, nil
}
