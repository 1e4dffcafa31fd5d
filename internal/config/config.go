package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"memeforge/pkg/meme"
)

const (
	DefaultAPIBase = "http://localhost:8000"
	DefaultTimeout = 30 * time.Second
)

type Config struct {
	APIBase   string
	Bounds    meme.Bounds
	Timeout   time.Duration
	LogLevel  slog.Level
	ImagePath string
}

func Default() Config {
	return Config{
		APIBase:  DefaultAPIBase,
		Bounds:   meme.DefaultBounds,
		Timeout:  DefaultTimeout,
		LogLevel: slog.LevelWarn,
	}
}

// Load reads .env (when present), then the environment, then args.
// Later sources win.
func Load(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return parse(args, os.LookupEnv)
}

func parse(args []string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if v, ok := lookup("API_URL"); ok && strings.TrimSpace(v) != "" {
		cfg.APIBase = strings.TrimSpace(v)
	}
	if v, ok := lookup("MEMEFORGE_MAX_WIDTH"); ok {
		n, err := positiveInt("MEMEFORGE_MAX_WIDTH", v)
		if err != nil {
			return Config{}, err
		}
		cfg.Bounds.MaxWidth = n
	}
	if v, ok := lookup("MEMEFORGE_MAX_HEIGHT"); ok {
		n, err := positiveInt("MEMEFORGE_MAX_HEIGHT", v)
		if err != nil {
			return Config{}, err
		}
		cfg.Bounds.MaxHeight = n
	}
	if v, ok := lookup("MEMEFORGE_TIMEOUT"); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("MEMEFORGE_TIMEOUT: invalid duration %q", v)
		}
		cfg.Timeout = d
	}
	if v, ok := lookup("MEMEFORGE_LOG_LEVEL"); ok {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			return Config{}, fmt.Errorf("MEMEFORGE_LOG_LEVEL: %w", err)
		}
	}

	fs := flag.NewFlagSet("memeforge", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	api := fs.String("api", cfg.APIBase, "base URL of the rendering service")
	maxW := fs.Int("max-width", cfg.Bounds.MaxWidth, "maximum canvas width in pixels")
	maxH := fs.Int("max-height", cfg.Bounds.MaxHeight, "maximum canvas height in pixels")
	timeout := fs.Duration("timeout", cfg.Timeout, "submission timeout")
	level := fs.String("log-level", cfg.LogLevel.String(), "debug, info, warn or error")
	img := fs.String("image", "", "image to open at start")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(os.Stderr)
			fs.PrintDefaults()
		}
		return Config{}, err
	}
	if *maxW <= 0 || *maxH <= 0 {
		return Config{}, fmt.Errorf("canvas bounds must be positive, got %dx%d", *maxW, *maxH)
	}
	if *timeout <= 0 {
		return Config{}, fmt.Errorf("timeout must be positive, got %s", *timeout)
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(*level)); err != nil {
		return Config{}, fmt.Errorf("-log-level: %w", err)
	}
	cfg.APIBase = strings.TrimRight(strings.TrimSpace(*api), "/")
	if cfg.APIBase == "" {
		return Config{}, errors.New("api base URL must not be empty")
	}
	cfg.Bounds = meme.Bounds{MaxWidth: *maxW, MaxHeight: *maxH}
	cfg.Timeout = *timeout
	cfg.ImagePath = *img
	return cfg, nil
}

func positiveInt(name, v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s: expected a positive integer, got %q", name, v)
	}
	return n, nil
}
