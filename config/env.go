package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment keys read by ApplyEnv.
const (
	EnvAlgorithm = "GRIDPATH_ALGORITHM"
	EnvMaze      = "GRIDPATH_MAZE"
	EnvSeed      = "GRIDPATH_SEED"
	EnvLoops     = "GRIDPATH_LOOPS"
	EnvDensity   = "GRIDPATH_DENSITY"
	EnvRows      = "GRIDPATH_ROWS"
	EnvCols      = "GRIDPATH_COLS"
)

// ErrBadEnv indicates an environment value that does not parse.
var ErrBadEnv = errors.New("config: malformed environment variable")

// LoadDotEnv loads the given .env files (default ".env") into the process
// environment without overriding variables that are already set. Missing
// files are logged to l and skipped.
func LoadDotEnv(l *log.Logger, files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		err := godotenv.Load(f)
		switch {
		case err == nil:
		case errors.Is(err, fs.ErrNotExist):
			if l != nil {
				l.Printf("[APP] [INFO] %s not found, skipping", f)
			}
		default:
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides c with any GRIDPATH_* variables that are set.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvAlgorithm); ok {
		c.Algorithm = v
	}
	if v, ok := os.LookupEnv(EnvMaze); ok {
		c.Maze.Generator = v
	}
	if err := envInt64(EnvSeed, &c.Maze.Seed); err != nil {
		return err
	}
	if err := envFloat(EnvLoops, &c.Maze.LoopProbability); err != nil {
		return err
	}
	if err := envFloat(EnvDensity, &c.Maze.Density); err != nil {
		return err
	}
	if err := envInt(EnvRows, &c.Rows); err != nil {
		return err
	}
	return envInt(EnvCols, &c.Cols)
}

func envInt64(key string, dst *int64) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", ErrBadEnv, key, v, err)
	}
	*dst = n
	return nil
}

func envInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", ErrBadEnv, key, v, err)
	}
	*dst = n
	return nil
}

func envFloat(key string, dst *float64) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", ErrBadEnv, key, v, err)
	}
	*dst = f
	return nil
}
