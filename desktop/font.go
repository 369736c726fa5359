package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// Headline sizes in points.
const (
	titleSize  = 36
	bannerSize = 22
)

// faces are the large fonts; small text uses basicfont.
type faces struct {
	title  font.Face
	banner font.Face
}

func loadFaces() (faces, error) {
	tt, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return faces{}, fmt.Errorf("parse headline font: %w", err)
	}
	newFace := func(size float64) (font.Face, error) {
		return opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
	title, err := newFace(titleSize)
	if err != nil {
		return faces{}, fmt.Errorf("title face: %w", err)
	}
	banner, err := newFace(bannerSize)
	if err != nil {
		return faces{}, fmt.Errorf("banner face: %w", err)
	}
	return faces{title: title, banner: banner}, nil
}

// drawHeadline draws s centred on x with a drop shadow.
func drawHeadline(screen *ebiten.Image, face font.Face, s string, x, y float64, c color.RGBA) {
	x0 := int(x) - font.MeasureString(face, s).Ceil()/2
	text.Draw(screen, s, face, x0+2, int(y)+2, fade(Palette.Shadow, float64(c.A)/255))
	text.Draw(screen, s, face, x0, int(y), c)
}
