package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mfarouk/metro-runner/internal/audio"
	"github.com/mfarouk/metro-runner/internal/config"
	"github.com/mfarouk/metro-runner/internal/core"
	"github.com/mfarouk/metro-runner/internal/game"
	"github.com/mfarouk/metro-runner/internal/platform/tui"
	"github.com/mfarouk/metro-runner/internal/storage"
)

var (
	flagConfig  string
	flagNoAudio bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Metro Runner",
	Long: `Start a Metro Runner session in the current terminal.

Controls:
  Space/Up/W   - Jump (again in air for Ali 3aloka's double jump)
  Down/S       - Duck
  Left/Right   - Pick character (on the select screen)
  Q            - Activate ability
  M            - Mute
  Esc/Ctrl+C   - Quit

Examples:
  metro play
  metro play --seed 42
  metro play --config ./my-metro.yaml
  metro play --no-audio`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound effects")
}

func runPlay(_ *cobra.Command, _ []string) {
	// Get terminal size, with sane fallbacks
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "metro"})

	// Open profile storage; the game still works without it
	var recordStore game.RecordStore
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open profile database", "error", err)
	} else {
		recordStore = store
	}

	// Audio is best-effort: a headless or audio-less host plays silent
	var sounds game.Sounds
	if !flagNoAudio {
		engine, audioErr := audio.NewEngine()
		if audioErr != nil {
			logger.Warn("audio unavailable", "error", audioErr)
		} else {
			sounds = engine
			defer engine.Close()
		}
	}

	session := game.NewSession(gameCfg, seed, recordStore, sounds, logger)

	runErr := tui.Run(session, runtime)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
