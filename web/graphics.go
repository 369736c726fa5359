package web

import (
	"math"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/flappy-dunk/game"
)

// RenderToCanvas creates an off-screen canvas and renders to it.
func RenderToCanvas(width, height int, renderFn func(canvas, ctx *js.Object)) *js.Object {
	document := js.Global.Get("document")
	canvas := document.Call("createElement", "canvas")
	canvas.Set("width", width)
	canvas.Set("height", height)
	ctx := canvas.Call("getContext", "2d")
	renderFn(canvas, ctx)
	return canvas
}

// Sprites are the static images drawn every frame.
type Sprites struct {
	Sky       *js.Object
	Ball      *js.Object
	HoopBack  *js.Object
	HoopFront *js.Object
	ballPad   float64
}

// NewSprites renders every sprite for the given tuning.
func NewSprites(t game.Tuning) *Sprites {
	s := &Sprites{ballPad: Theme.BallShadowBlur}
	w, h := int(t.Field.Width), int(t.Field.Height)

	s.Sky = RenderToCanvas(w, h, func(canvas, ctx *js.Object) {
		gradient := ctx.Call("createLinearGradient", 0, 0, 0, h)
		gradient.Call("addColorStop", 0, Theme.SkyTop)
		gradient.Call("addColorStop", 1, Theme.SkyBottom)
		ctx.Set("fillStyle", gradient)
		ctx.Call("fillRect", 0, 0, w, h)

		ctx.Set("fillStyle", Theme.GrassColor)
		ctx.Call("fillRect", 0, h-20, w, 20)
		ctx.Set("fillStyle", Theme.GroundColor)
		ctx.Call("fillRect", 0, h-8, w, 8)
	})

	bw, bh := t.Player.Width, t.Player.Height
	s.Ball = RenderToCanvas(int(bw+s.ballPad*2), int(bh+s.ballPad*2), func(canvas, ctx *js.Object) {
		cx, cy := bw/2+s.ballPad, bh/2+s.ballPad
		r := math.Min(bw, bh) / 2
		ctx.Set("shadowBlur", Theme.BallShadowBlur)
		ctx.Set("shadowColor", Theme.BallGlow)
		ctx.Set("fillStyle", Theme.BallColor)
		ctx.Call("beginPath")
		ctx.Call("arc", cx, cy, r, 0, math.Pi*2)
		ctx.Call("fill")

		ctx.Set("shadowBlur", 0)
		ctx.Set("strokeStyle", Theme.BallLineColor)
		ctx.Set("lineWidth", Theme.BallLineWidth)
		ctx.Call("beginPath")
		ctx.Call("arc", cx, cy, r, 0, math.Pi*2)
		ctx.Call("moveTo", cx-r, cy)
		ctx.Call("lineTo", cx+r, cy)
		ctx.Call("moveTo", cx, cy-r)
		ctx.Call("lineTo", cx, cy+r)
		ctx.Call("stroke")
	})

	hw, hh := t.Hoop.Width, t.Hoop.Height
	s.HoopBack = RenderToCanvas(int(hw), int(hh), func(canvas, ctx *js.Object) {
		ctx.Set("strokeStyle", Theme.RimShadowColor)
		ctx.Set("lineWidth", Theme.RimLineWidth)
		ctx.Call("beginPath")
		ctx.Call("ellipse", hw/2, hh/2, hw/2-4, hh/6, 0, math.Pi, math.Pi*2)
		ctx.Call("stroke")
	})
	s.HoopFront = RenderToCanvas(int(hw), int(hh), func(canvas, ctx *js.Object) {
		ctx.Set("strokeStyle", Theme.NetColor)
		ctx.Set("lineWidth", Theme.NetLineWidth)
		ctx.Call("beginPath")
		for i := 0; i <= 5; i++ {
			x := 6 + float64(i)*(hw-12)/5
			ctx.Call("moveTo", x, hh/2)
			ctx.Call("lineTo", hw/2+(x-hw/2)*0.6, hh-2)
		}
		ctx.Call("stroke")

		ctx.Set("strokeStyle", Theme.RimColor)
		ctx.Set("lineWidth", Theme.RimLineWidth)
		ctx.Call("beginPath")
		ctx.Call("ellipse", hw/2, hh/2, hw/2-4, hh/6, 0, 0, math.Pi)
		ctx.Call("stroke")
	})
	return s
}

// drawRotated draws img centred on (cx, cy) rotated by angle.
func drawRotated(ctx, img *js.Object, cx, cy, angle float64) {
	w := img.Get("width").Float()
	h := img.Get("height").Float()
	ctx.Call("save")
	ctx.Call("translate", cx, cy)
	ctx.Call("rotate", angle)
	ctx.Call("drawImage", img, -w/2, -h/2)
	ctx.Call("restore")
}

// PopupColor picks the popup fill for its remaining life.
func PopupColor(life float64) string {
	colors := Theme.PopupColors
	switch {
	case life > 0.7:
		return colors[0]
	case life > 0.4:
		return colors[1]
	default:
		return colors[2]
	}
}
