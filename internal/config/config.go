package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Options are the runtime knobs shared by every host. Simulation tuning
// lives in world.Config; these only pick seed, window and logging.
type Options struct {
	Seed      int64
	WindowW   int
	WindowH   int
	Telemetry bool
	TTYLog    string // log file for the terminal host
	LogLevel  string
}

func Defaults() Options {
	return Options{
		Seed:      1,
		WindowW:   1280,
		WindowH:   720,
		Telemetry: true,
		TTYLog:    "horde-tty.log",
		LogLevel:  "info",
	}
}

// Load reads ./.env when present and then the process environment.
func Load() (Options, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with explicit dotenv files. Missing files are skipped;
// variables already set in the environment win over file values.
func LoadFrom(paths ...string) (Options, error) {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Options{}, fmt.Errorf("load %s: %w", p, err)
		}
	}

	return FromEnv()
}

// FromEnv builds Options from HORDE_* variables and LOG_LEVEL.
func FromEnv() (Options, error) {
	o := Defaults()
	var err error

	if o.Seed, err = envInt64("HORDE_SEED", o.Seed); err != nil {
		return Options{}, err
	}
	if o.WindowW, err = envInt("HORDE_WINDOW_W", o.WindowW); err != nil {
		return Options{}, err
	}
	if o.WindowH, err = envInt("HORDE_WINDOW_H", o.WindowH); err != nil {
		return Options{}, err
	}
	if o.Telemetry, err = envBool("HORDE_TELEMETRY", o.Telemetry); err != nil {
		return Options{}, err
	}
	if v := strings.TrimSpace(os.Getenv("HORDE_TTY_LOG")); v != "" {
		o.TTYLog = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		o.LogLevel = v
	}

	if o.WindowW <= 0 || o.WindowH <= 0 {
		return Options{}, fmt.Errorf("window size %dx%d must be positive", o.WindowW, o.WindowH)
	}

	return o, nil
}

func envInt64(key string, def int64) (int64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envInt(key string, def int) (int, error) {
	n, err := envInt64(key, int64(def))
	return int(n), err
}

func envBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
