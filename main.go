//go:build js
// +build js

package main

import (
	"time"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/flappy-dunk/audio"
	"github.com/simukka/flappy-dunk/common"
	"github.com/simukka/flappy-dunk/game"
	"github.com/simukka/flappy-dunk/web"
)

func main() {
	// Get the canvas element
	doc := js.Global.Get("document")
	canvas := doc.Call("getElementById", "c")
	if canvas == nil || canvas == js.Undefined {
		panic("canvas element not found")
	}

	tuning := game.DefaultTuning()
	canvas.Set("width", tuning.Field.Width)
	canvas.Set("height", tuning.Field.Height)
	ctx := canvas.Call("getContext", "2d")

	level := common.LevelInfo
	if js.Global.Get("location").Get("search").String() == "?debug" {
		level = common.LevelDebug
	}

	app, err := web.NewApp(canvas, ctx, web.Options{
		Tuning:         tuning,
		Seed:           uint32(time.Now().UnixNano()),
		LeaderboardURL: "/api/scores",
		LogLevel:       level,
		Audio:          audio.DefaultConfig,
	})
	if err != nil {
		panic(err)
	}

	// Expose the game API to JavaScript
	js.Global.Set("FlappyDunk", map[string]interface{}{
		"start": func(mode string) string {
			m, err := game.ParseMode(mode)
			if err != nil {
				return err.Error()
			}
			if err := app.Game.Start(m); err != nil {
				return err.Error()
			}
			return ""
		},
		"tap": func() {
			app.Tap()
		},
		"selectMode": func(mode string) bool {
			return app.Game.SelectMode(game.Mode(mode)) == nil
		},
		"toggleMute": func() bool {
			return app.Audio.ToggleMute()
		},
		"setDemo": func(on bool) {
			app.Demo = on
		},
		"state": func() string {
			return app.Game.State().String()
		},
		"score": func() int {
			return app.Game.Snapshot().Score
		},
		"highScore": func(mode string) int {
			return app.Store.HighScore(game.Mode(mode))
		},
		"seed": func() uint32 {
			return app.Game.Seed()
		},
	})

	js.Global.Call("addEventListener", "beforeunload", func() {
		app.Stop()
	})

	app.Start()
	select {}
}
