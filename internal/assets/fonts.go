// internal/assets/fonts.go
package assets

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts holds the two faces the UI uses. They come from the embedded Go
// font so the binary has no asset files to carry around.
type Fonts struct {
	Regular font.Face
	Title   font.Face
}

// LoadFonts parses the embedded TTF and builds both faces.
func LoadFonts(regularSize, titleSize float64) (*Fonts, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded font: %w", err)
	}

	regular, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    regularSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build regular face: %w", err)
	}

	title, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    titleSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build title face: %w", err)
	}

	return &Fonts{Regular: regular, Title: title}, nil
}
