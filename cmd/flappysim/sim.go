package main

import (
	"fmt"
	"time"

	"github.com/simukka/flappy-dunk/common"
	"github.com/simukka/flappy-dunk/game"
)

// simConfig describes a batch of autopilot runs.
type simConfig struct {
	Runs    int
	Seed    uint32
	Mode    game.Mode
	MaxTime time.Duration // Per-run cap in game time
	Margin  float64
	Tuning  game.Tuning
	Store   game.ScoreStore // nil discards results
	Log     common.Logger
}

// runReport is one simulated run. Runs cut off by MaxTime are reported with
// Finished false and the score reached so far.
type runReport struct {
	Run      int       `json:"run"`
	Seed     uint32    `json:"seed"`
	Frames   int       `json:"frames"`
	Finished bool      `json:"finished"`
	Score    int       `json:"score"`
	Level    int       `json:"level"`
	Misses   int       `json:"misses"`
	Mode     game.Mode `json:"mode"`
	Outcome  string    `json:"outcome"`
	Reason   string    `json:"reason,omitempty"`
}

// simulate plays cfg.Runs runs on one core with the autopilot, stepping it
// with the nominal frame duration. Runs still going at MaxTime are aborted,
// so they are neither persisted nor continued by the next run.
func simulate(cfg simConfig) ([]runReport, error) {
	if cfg.Runs <= 0 {
		return nil, fmt.Errorf("simulate: runs must be positive, got %d", cfg.Runs)
	}
	if cfg.Log == nil {
		cfg.Log = common.Nop
	}
	maxFrames := int(cfg.MaxTime / game.FrameDuration)
	if maxFrames <= 0 {
		return nil, fmt.Errorf("simulate: max time %v is shorter than a frame", cfg.MaxTime)
	}

	var last game.Snapshot
	opts := []game.Option{
		game.WithSeed(cfg.Seed),
		game.WithLogger(cfg.Log),
		game.WithRenderer(game.RendererFunc(func(s game.Snapshot) { last = s })),
	}
	if cfg.Store != nil {
		opts = append(opts, game.WithStore(cfg.Store))
	}
	core, err := game.New(cfg.Tuning, opts...)
	if err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}
	pilot := game.Autopilot{Margin: cfg.Margin}

	reports := make([]runReport, 0, cfg.Runs)
	for i := 0; i < cfg.Runs; i++ {
		if err := core.Start(cfg.Mode); err != nil {
			return nil, fmt.Errorf("simulate: %w", err)
		}
		last = core.Snapshot()
		frames := 0
		for frames < maxFrames && core.State() == game.StatePlaying {
			if pilot.Decide(last) {
				core.PrimaryAction()
			}
			core.Update(game.FrameDuration)
			frames++
		}

		r := runReport{
			Run:      last.Run,
			Seed:     common.RunSeed(cfg.Seed, last.Run),
			Frames:   frames,
			Finished: last.State == game.StateTerminated,
			Score:    last.Score,
			Level:    last.Level + 1,
			Misses:   last.Misses,
			Mode:     cfg.Mode,
			Outcome:  last.Outcome.String(),
			Reason:   string(last.Reason),
		}
		reports = append(reports, r)
		if !r.Finished {
			core.Abort()
		}
		cfg.Log.Debugf("run %d: score %d after %d frames (%s)", r.Run, r.Score, r.Frames, r.Outcome)
	}
	return reports, nil
}

// summary aggregates a batch.
type summary struct {
	Runs     int     `json:"runs"`
	Finished int     `json:"finished"`
	Wins     int     `json:"wins"`
	Best     int     `json:"best"`
	Mean     float64 `json:"mean"`
}

func summarize(reports []runReport) summary {
	s := summary{Runs: len(reports)}
	if len(reports) == 0 {
		return s
	}
	total := 0
	for _, r := range reports {
		total += r.Score
		if r.Score > s.Best {
			s.Best = r.Score
		}
		if r.Finished {
			s.Finished++
		}
		if r.Outcome == game.OutcomeSuccess.String() {
			s.Wins++
		}
	}
	s.Mean = float64(total) / float64(len(reports))
	return s
}
