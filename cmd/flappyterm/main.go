//go:build !js
// +build !js

// Command flappyterm runs the game in a text terminal.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/simukka/flappy-dunk/common"
	"github.com/simukka/flappy-dunk/game"
	"github.com/simukka/flappy-dunk/leaderboard"
	"github.com/simukka/flappy-dunk/terminal"
	"golang.org/x/term"
)

func main() {
	tuningPath := flag.String("tuning", "", "TOML tuning file (embedded defaults when empty)")
	scoresPath := flag.String("scores", "flappydunk-scores.json", "Leaderboard JSON file (empty keeps scores in memory)")
	seed := flag.Uint("seed", 0, "Base seed for hoop layouts (0 picks one from the clock)")
	modeName := flag.String("mode", string(game.ModeClassic), "Initial mode: classic, time or challenge")
	logPath := flag.String("log", "", "Write logs to this file (the terminal is taken by the game)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error, none)")
	demo := flag.Bool("demo", false, "Let the autopilot play")
	mute := flag.Bool("mute", false, "Start without the terminal bell")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("flappyterm needs an interactive terminal")
	}

	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	logger := common.NewLogger(out, common.ParseLevel(*logLevel))

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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	screen.HideCursor()

	app, err := terminal.NewApp(screen, terminal.Options{
		Tuning: tuning,
		Seed:   baseSeed,
		Mode:   mode,
		Demo:   *demo,
		Muted:  *mute,
		Store:  store,
		Log:    logger,
	})
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof("Flappy Dunk starting in the terminal, seed %d, mode %s", baseSeed, mode)
	err = app.Run(ctx)
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
