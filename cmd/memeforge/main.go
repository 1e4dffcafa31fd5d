package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"memeforge/internal/app"
	"memeforge/internal/config"
	"memeforge/pkg/meme"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "memeforge failed: %v\n", err)
		os.Exit(2)
	}
	meme.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	application := app.New(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "memeforge failed: %v\n", err)
		os.Exit(1)
	}
}
