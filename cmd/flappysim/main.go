// Command flappysim plays the game headlessly with the autopilot and prints
// per-run results. It is used to check tuning files for balance.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/simukka/flappy-dunk/common"
	"github.com/simukka/flappy-dunk/game"
	"github.com/simukka/flappy-dunk/leaderboard"
)

func main() {
	runs := flag.Int("runs", 10, "Number of runs")
	seed := flag.Uint("seed", 1, "Base seed")
	modeName := flag.String("mode", string(game.ModeClassic), "Mode: classic, time or challenge")
	tuningPath := flag.String("tuning", "", "TOML tuning file (embedded defaults when empty)")
	maxTime := flag.Duration("max-time", 0, "Per-run cap in game time (default twice the time limit)")
	margin := flag.Float64("margin", 8, "Autopilot jump margin in pixels")
	scoresPath := flag.String("scores", "", "Record results into this leaderboard file")
	asJSON := flag.Bool("json", false, "Print JSON instead of a table")
	logLevel := flag.String("log-level", "warn", "Log level (debug, info, warn, error, none)")
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
	if *maxTime == 0 {
		*maxTime = 2 * tuning.Modes.TimeLimit
	}

	cfg := simConfig{
		Runs:    *runs,
		Seed:    uint32(*seed),
		Mode:    mode,
		MaxTime: *maxTime,
		Margin:  *margin,
		Tuning:  tuning,
		Log:     logger,
	}
	var store *leaderboard.FileStore
	if *scoresPath != "" {
		store, err = leaderboard.OpenFileStore(*scoresPath, logger)
		if err != nil {
			log.Fatal(err)
		}
		cfg.Store = store
	}

	reports, err := simulate(cfg)
	if err != nil {
		log.Fatal(err)
	}
	sum := summarize(reports)

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		err = enc.Encode(struct {
			Runs    []runReport `json:"results"`
			Summary summary     `json:"summary"`
		}{reports, sum})
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tSEED\tFRAMES\tSCORE\tLEVEL\tMISSES\tOUTCOME\tREASON")
	for _, r := range reports {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%d\t%s\t%s\n", r.Run, r.Seed, r.Frames, r.Score, r.Level, r.Misses, r.Outcome, r.Reason)
	}
	w.Flush()
	fmt.Printf("\n%d runs, %d finished, %d won, best %d, mean %.1f\n", sum.Runs, sum.Finished, sum.Wins, sum.Best, sum.Mean)
}
