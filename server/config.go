//go:build !js
// +build !js

package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/simukka/flappy-dunk/common"
)

// Config is the server configuration. Flags override environment variables,
// which override the defaults.
type Config struct {
	Port     int
	Static   string
	Scores   string
	LogLevel common.Level
}

// loadEnv reads .env files into the process environment. Missing files are
// not an error.
func loadEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

func envOr(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseConfig resolves the configuration from args and getenv.
func parseConfig(args []string, getenv func(string) string) (Config, error) {
	port, err := strconv.Atoi(envOr(getenv, "FLAPPY_PORT", "8080"))
	if err != nil {
		return Config{}, errors.New("FLAPPY_PORT must be a number")
	}

	fset := flag.NewFlagSet("server", flag.ContinueOnError)
	cfg := Config{}
	fset.IntVar(&cfg.Port, "port", port, "HTTP server port")
	fset.StringVar(&cfg.Static, "static", envOr(getenv, "FLAPPY_STATIC", "."), "Directory to serve static files from")
	fset.StringVar(&cfg.Scores, "scores", envOr(getenv, "FLAPPY_SCORES", "scores.json"), "Leaderboard JSON file")
	level := fset.String("log-level", envOr(getenv, "FLAPPY_LOG_LEVEL", "info"), "Log level (debug, info, warn, error, none)")
	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.LogLevel = common.ParseLevel(*level)
	return cfg, nil
}

// LoadConfig loads .env then parses the command line.
func LoadConfig() (Config, error) {
	if err := loadEnv(".env"); err != nil {
		return Config{}, err
	}
	return parseConfig(os.Args[1:], os.Getenv)
}
