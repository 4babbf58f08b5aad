package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/drugtest/config"
	"github.com/milk9111/drugtest/logging"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the TOML config file")
	levelName := flag.String("level", "", "level name in levels/ (basename, .yaml optional); overrides game.level")
	debug := flag.Bool("debug", false, "draw navmesh, paths and enemy state labels")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("using default config: %v", err)
		cfg = config.Defaults()
	}
	if *levelName != "" {
		cfg.Game.Level = *levelName
	}
	if *debug {
		cfg.Logging.Level = "debug"
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync()

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(int(float64(cfg.Window.Width)*cfg.Window.Scale), int(float64(cfg.Window.Height)*cfg.Window.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Game.TPS)

	game, err := NewGame(cfg, logger, *debug)
	if err != nil {
		logger.Fatal("start game", zap.Error(err))
	}
	defer game.Close()
	game.EnableClipboard()

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		logger.Fatal("run game", zap.Error(err))
	}
}
