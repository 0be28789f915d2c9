// cmd/starfighter/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opd-ai/go-starfighter/pkg/config"
	"github.com/opd-ai/go-starfighter/pkg/engine"
	"github.com/opd-ai/go-starfighter/pkg/entity"
	"github.com/opd-ai/go-starfighter/pkg/logging"
	"github.com/opd-ai/go-starfighter/pkg/render"
	ebitenrender "github.com/opd-ai/go-starfighter/pkg/render/ebiten"
	"github.com/opd-ai/go-starfighter/pkg/validation"
)

func main() {
	logger := logging.NewLogger()
	ctx := context.Background()

	configPath := flag.String("config", "config.json", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	rendererName := flag.String("renderer", "ebiten", "Renderer backend: ebiten or terminal")
	width := flag.Int("width", 0, "Window width (overrides configuration)")
	height := flag.Int("height", 0, "Window height (overrides configuration)")
	fullscreen := flag.Bool("fullscreen", false, "Start fullscreen")
	seed := flag.Uint64("seed", 0, "Random seed (0 picks one)")
	flag.Parse()

	// Create default configuration file if requested
	if *createDefault {
		defaultConfig := config.DefaultConfig()
		if err := config.SaveConfig(defaultConfig, *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	// Load configuration
	var gameConfig *config.GameConfig

	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", *configPath,
		)
		gameConfig = config.DefaultConfig()
	} else {
		gameConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			logger.Error(ctx, "Failed to load configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
	}

	// Apply environment variable overrides
	if err := config.ApplyEnvironmentOverrides(gameConfig); err != nil {
		logger.Error(ctx, "Failed to apply environment configuration", err)
		os.Exit(1)
	}

	// Command line flags win over both the file and the environment
	if *width > 0 {
		gameConfig.Window.Width = *width
	}
	if *height > 0 {
		gameConfig.Window.Height = *height
	}
	if *fullscreen {
		gameConfig.Window.Fullscreen = true
	}

	if err := validation.ValidateGameConfig(gameConfig); err != nil {
		logger.Error(ctx, "Invalid configuration", err,
			"config_path", *configPath,
		)
		os.Exit(1)
	}

	// Seed priority: flag, then environment, then random
	gameSeed := *seed
	if gameSeed == 0 {
		if envConfig, err := config.LoadConfigFromEnv(); err == nil {
			gameSeed = envConfig.RandomSeed
		}
	}

	game := engine.NewGame(gameConfig, gameSeed)
	if err := game.InitializeResourceMonitor(); err != nil {
		logger.Error(ctx, "Failed to start resource monitor", err)
		os.Exit(1)
	}
	defer game.Stop()

	logger.Info(ctx, "Starting game",
		"renderer", *rendererName,
		"window", gameConfig.Window.Title,
	)

	switch *rendererName {
	case "terminal":
		runTerminal(ctx, logger, game, gameConfig)
	case "ebiten":
		if err := ebitenrender.NewRenderer(game, gameConfig).Run(); err != nil {
			logger.Error(ctx, "Renderer stopped with error", err)
			os.Exit(1)
		}
	default:
		logger.Error(ctx, "Unknown renderer", nil,
			"renderer", *rendererName,
		)
		os.Exit(1)
	}

	logger.Info(ctx, "Game finished",
		"score", game.Score,
	)
}

// runTerminal drives a fixed-step loop against the ASCII renderer until
// the session ends or the process is signalled.
func runTerminal(ctx context.Context, logger *logging.Logger, game *engine.Game, cfg *config.GameConfig) {
	const termWidth, termHeight = 100, 30

	renderer := render.NewTerminalRenderer(
		termWidth, termHeight,
		cfg.Camera.FOV, cfg.Camera.NearPlane, cfg.Camera.FarPlane,
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tick := time.Second / time.Duration(cfg.Window.FPS)
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	game.Start()
	for {
		select {
		case <-ctx.Done():
			logger.Info(context.Background(), "Shutting down",
				"score", game.Score,
			)
			return
		case <-ticker.C:
			game.Update(tick.Seconds())
			drawTerminalFrame(renderer, game)

			if game.IsOver() {
				logger.Info(ctx, "Game over",
					"score", game.Score,
				)
				return
			}
		}
	}
}

func drawTerminalFrame(renderer *render.TerminalRenderer, game *engine.Game) {
	cam := game.Camera
	renderer.SetView(cam.Position, cam.Front, cam.Right, cam.Up)
	renderer.SetHUD(game.Score, game.Player.Lives)

	renderer.Clear()
	forEachEntity(game, func(e entity.Entity) {
		e.Render(renderer)
	})
	game.Player.Render(renderer)
	renderer.Present()
}

func forEachEntity(game *engine.Game, fn func(entity.Entity)) {
	for _, e := range game.Enemies {
		fn(e)
	}
	for _, m := range game.Meteorites {
		fn(m)
	}
	for _, s := range game.LifeSpheres {
		fn(s)
	}
	for _, p := range game.Projectiles {
		fn(p)
	}
}
