//go:build !js
// +build !js

// Command flappydunk runs the game in a desktop window.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	sfx "github.com/simukka/flappy-dunk/audio"
	"github.com/simukka/flappy-dunk/common"
	"github.com/simukka/flappy-dunk/desktop"
	"github.com/simukka/flappy-dunk/game"
	"github.com/simukka/flappy-dunk/leaderboard"
)

func main() {
	tuningPath := flag.String("tuning", "", "TOML tuning file (embedded defaults when empty)")
	scoresPath := flag.String("scores", "flappydunk-scores.json", "Leaderboard JSON file (empty keeps scores in memory)")
	seed := flag.Uint("seed", 0, "Base seed for hoop layouts (0 picks one from the clock)")
	modeName := flag.String("mode", string(game.ModeClassic), "Initial mode: classic, time or challenge")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error, none)")
	demo := flag.Bool("demo", false, "Let the autopilot play")
	mute := flag.Bool("mute", false, "Start muted")
	volume := flag.Float64("volume", sfx.DefaultConfig.MasterVolume, "Master volume 0.0 - 1.0")
	flag.Parse()

	logger := common.NewLogger(os.Stderr, common.ParseLevel(*logLevel))

	tuning, err := game.LoadTuning(*tuningPath)
	if err != nil {
		log.Fatal(err)
	}
	mode, err := game.ParseMode(*modeName)
	if err != nil {
		log.Fatal(err)
	}
	store, err := leaderboard.OpenFileStore(*scoresPath, logger)
	if err != nil {
		log.Fatal(err)
	}

	baseSeed := uint32(*seed)
	if baseSeed == 0 {
		baseSeed = uint32(time.Now().UnixNano())
	}

	sounds, err := desktop.NewSounds(audio.NewContext(sfx.SampleRate), sfx.Config{MasterVolume: *volume, Muted: *mute}, logger)
	if err != nil {
		logger.Warnf("Sound disabled: %v", err)
		sounds = nil
	}

	app, err := desktop.NewApp(desktop.Options{
		Tuning: tuning,
		Seed:   baseSeed,
		Mode:   mode,
		Demo:   *demo,
		Store:  store,
		Sounds: sounds,
		Log:    logger,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(int(tuning.Field.Width), int(tuning.Field.Height))
	ebiten.SetWindowTitle("Flappy Dunk")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	logger.Infof("Flappy Dunk starting, seed %d, mode %s", baseSeed, mode)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
