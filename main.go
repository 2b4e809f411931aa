package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"skyrunner/game"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	seed := flag.Int64("seed", 0, "level generator seed (0 = time-based)")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	cfg := game.DefaultConfig()
	if *configPath != "" {
		cfg, err = game.LoadConfig(*configPath)
		if err != nil {
			logger.Fatal("load config", zap.Error(err))
		}
		logger.Info("config loaded", zap.String("path", *configPath))
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	g := game.NewGame(cfg, logger)

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Sky Runner")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("session ended", zap.Error(err))
	}
	logger.Info("session closed")
}
