package desktop

import "image/color"

// Palette holds the desktop colors.
var Palette = struct {
	SkyTop    color.RGBA
	SkyBottom color.RGBA
	Cloud     color.RGBA
	Grass     color.RGBA
	Ground    color.RGBA

	Ball     color.RGBA
	BallLine color.RGBA

	Rim       color.RGBA
	RimShadow color.RGBA
	Net       color.RGBA

	Particles []color.RGBA
	Flash     color.RGBA
	Popup     color.RGBA
	LevelUp   color.RGBA
	Warning   color.RGBA

	Text     color.RGBA
	Shadow   color.RGBA
	Panel    color.RGBA
	Selected color.RGBA
	Dim      color.RGBA
	Success  color.RGBA
	Failure  color.RGBA
	Hitbox   color.RGBA
}{
	SkyTop:    color.RGBA{0x87, 0xce, 0xeb, 0xff},
	SkyBottom: color.RGBA{0xe0, 0xf6, 0xff, 0xff},
	Cloud:     color.RGBA{0xff, 0xff, 0xff, 0xcc},
	Grass:     color.RGBA{0x2e, 0xcc, 0x71, 0xff},
	Ground:    color.RGBA{0x27, 0xae, 0x60, 0xff},

	Ball:     color.RGBA{0xe6, 0x7e, 0x22, 0xff},
	BallLine: color.RGBA{0x7f, 0x3c, 0x0a, 0xff},

	Rim:       color.RGBA{0xe7, 0x4c, 0x3c, 0xff},
	RimShadow: color.RGBA{0xc0, 0x39, 0x2b, 0xff},
	Net:       color.RGBA{0xff, 0xff, 0xff, 0xff},

	Particles: []color.RGBA{
		{0xf1, 0xc4, 0x0f, 0xff},
		{0xe7, 0x4c, 0x3c, 0xff},
		{0xff, 0xff, 0xff, 0xff},
		{0x34, 0x98, 0xdb, 0xff},
	},
	Flash:   color.RGBA{0xff, 0xff, 0xff, 0xff},
	Popup:   color.RGBA{0xf1, 0xc4, 0x0f, 0xff},
	LevelUp: color.RGBA{0xf1, 0xc4, 0x0f, 0xff},
	Warning: color.RGBA{0xff, 0x00, 0x00, 0xff},

	Text:     color.RGBA{0xff, 0xff, 0xff, 0xff},
	Shadow:   color.RGBA{0x00, 0x00, 0x00, 0x80},
	Panel:    color.RGBA{0x00, 0x00, 0x00, 0x99},
	Selected: color.RGBA{0xf1, 0xc4, 0x0f, 0xff},
	Dim:      color.RGBA{0xbd, 0xc3, 0xc7, 0xff},
	Success:  color.RGBA{0x2e, 0xcc, 0x71, 0xff},
	Failure:  color.RGBA{0xe7, 0x4c, 0x3c, 0xff},
	Hitbox:   color.RGBA{0x00, 0xff, 0x00, 0xff},
}

// fade scales the alpha of c by a in [0, 1]. Colors are premultiplied.
func fade(c color.RGBA, a float64) color.RGBA {
	a = clamp01(a)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
