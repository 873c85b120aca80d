// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button is a clickable labelled rectangle.
type Button struct {
	Rect  image.Rectangle
	Text  string
	Color color.RGBA
}

// Contains reports whether the point is inside the button.
func (b *Button) Contains(x, y int) bool {
	return image.Point{X: x, Y: y}.In(b.Rect)
}

// Draw paints the button with its label centred.
func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	vector.DrawFilledRect(screen,
		float32(b.Rect.Min.X), float32(b.Rect.Min.Y),
		float32(b.Rect.Dx()), float32(b.Rect.Dy()),
		b.Color, true)

	bounds := text.BoundString(face, b.Text)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, face, tx, ty, color.White)
}
