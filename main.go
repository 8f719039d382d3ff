package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minesweeper/config"
	"github.com/dimaq12/minesweeper/game"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig applies command line overrides on top of the config file.
func loadConfig(args []string, out io.Writer) (*config.Config, error) {
	fs := flag.NewFlagSet("minesweeper", flag.ContinueOnError)
	fs.SetOutput(out)
	var (
		path       = fs.String("config", "", "path to a YAML config file")
		difficulty = fs.String("difficulty", "", "beginner, intermediate or expert")
		lang       = fs.String("lang", "", "display language (en, es)")
		seed       = fs.Int64("seed", 0, "random seed for mine placement (0 = clock)")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := config.Load(*path)
	if err != nil {
		return nil, err
	}
	if *difficulty != "" {
		cfg.Difficulty = *difficulty
	}
	if *lang != "" {
		cfg.Language = *lang
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func run(args []string, out io.Writer) error {
	cfg, err := loadConfig(args, out)
	if err != nil {
		return err
	}

	logger, closer, err := config.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	preset, err := config.PresetByName(cfg.Difficulty)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.WithFields(logrus.Fields{
		"difficulty": preset.Name,
		"language":   cfg.Language,
		"seed":       seed,
	}).Info("starting minesweeper")

	renderer := game.NewRenderer(game.MessagesFor(cfg.Language))
	minesweeperService := game.NewMinesweeperService(renderer, logger, game.WithRand(rand.New(rand.NewSource(seed))))

	return minesweeperService.InitGame(preset)
}
