package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"horde-shop/internal/commons/logger_config"
	"horde-shop/internal/config"
	"horde-shop/internal/telemetry"
	"horde-shop/internal/tty"
	"horde-shop/internal/world"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "horde-tty: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	opts, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger_config.SetLevel(opts.LogLevel)

	// the screen owns the terminal, so logs go to a file
	logFile, err := os.OpenFile(opts.TTYLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	logger_config.SetOutput(logFile)

	cfg := world.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("world config: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	var sink *telemetry.Sink
	if opts.Telemetry {
		sink = telemetry.NewSink()
		defer sink.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger_config.Infof("[main] tty host starting seed=%d", opts.Seed)
	return tty.New(screen, cfg, opts.Seed, sink).Run(ctx)
}
