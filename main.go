package main

import (
	"flag"
	"log"
	"os"
	"snake-arcade/config"
	"snake-arcade/game"
	"snake-arcade/ui"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	assetDir := flag.String("assets", "", "Asset directory with Graphics/ and Sound/ (plain shapes when empty)")
	speed := flag.Int("speed", 0, "Tick interval in milliseconds (lower = faster)")
	seed := flag.Uint64("seed", 0, "Fruit placement seed (0 = time based)")
	flag.Parse()

	logger := log.New(os.Stderr, "[snake] ", log.LstdFlags)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			logger.Fatalf("config: %v", err)
		}
	}
	if *assetDir != "" {
		cfg.AssetDir = *assetDir
	}
	if *speed > 0 {
		cfg.TickMs = *speed
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("config: %v", err)
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal(err)
	}
}

func run(cfg config.Config, logger *log.Logger) error {
	width, height := cfg.ScreenSize()
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(width, height, cfg.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))

	rl.InitAudioDevice()
	defer rl.CloseAudioDevice()
	if !rl.IsAudioDeviceReady() {
		logger.Printf("audio device unavailable, running silent")
	}

	assets := ui.NewAssets()
	if cfg.AssetDir != "" {
		var err error
		if assets, err = ui.LoadAssets(cfg.AssetDir); err != nil {
			return err
		}
	}
	defer assets.Unload()

	g := game.NewGame(cfg.Grid(), game.Options{
		TickInterval: cfg.TickInterval(),
		Seed:         cfg.Seed,
		Audio:        ui.NewAudio(assets),
		Logger:       logger,
	})
	renderer := ui.NewRenderer(cfg.CellSize, assets)

	stats := g.GetStateManager()
	logger.Printf("session %s started: grid %dx%d, tick %s",
		stats.SessionID(), cfg.GridWidth, cfg.GridHeight, cfg.TickInterval())

	lastUpdate := time.Now()
	for {
		quit := false
		for _, in := range ui.PollInput() {
			if g.HandleInput(in) {
				quit = true
			}
		}
		if quit {
			break
		}

		// Advance the simulation by wall-clock time; ticks stay fixed-rate
		now := time.Now()
		g.Update(now.Sub(lastUpdate))
		lastUpdate = now

		renderer.Draw(g.View())
	}

	logger.Printf("session %s ended after %s: %d games, best %d, avg %.1f, recent %v",
		stats.SessionID(), stats.Uptime().Round(time.Second), stats.GetGamesPlayed(), stats.GetHighScore(),
		stats.GetAverageScore(), stats.GetScoreHistory())
	return nil
}
