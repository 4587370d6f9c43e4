package main

import (
	"log"

	"horde-shop/internal/commons/logger_config"
	"horde-shop/internal/config"
	"horde-shop/internal/game"
	"horde-shop/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	opts, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger_config.SetLevel(opts.LogLevel)

	cfg := world.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("world config: %v", err)
	}

	ebiten.SetWindowSize(opts.WindowW, opts.WindowH)
	ebiten.SetWindowTitle("Horde Shop")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger_config.Infof("[main] starting seed=%d window=%dx%d", opts.Seed, opts.WindowW, opts.WindowH)

	g := game.New(cfg, opts.Seed, opts.Telemetry)
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil {
		log.Printf("run game: %v", err)
	}
}
