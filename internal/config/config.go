package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/Asutorufa/dlist/pkg/log"
	"github.com/joho/godotenv"
)

type Config struct {
	Scenario string
	Workers  int
	Limit    int
	Metrics  bool
	LogLevel slog.Level
}

func (c *Config) Validate() error {
	if c.Scenario == "" && c.Workers <= 0 {
		return errors.New("nothing to do: set -scenario or -stress")
	}
	if c.Scenario != "" && c.Workers > 0 {
		return errors.New("-scenario and -stress can not be used together")
	}
	if c.Limit < 0 {
		return fmt.Errorf("invalid -limit %d", c.Limit)
	}
	return nil
}

// LoadEnv loads the dotenv files into the process environment, variables
// already set are kept. Missing files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s failed: %w", f, err)
		}
	}

	return nil
}

// Parse reads args, flag defaults come from DLIST_* variables found by lookup.
func Parse(name string, args []string, lookup func(string) (string, bool), output io.Writer) (*Config, error) {
	env := func(key, def string) string {
		if v, ok := lookup(key); ok {
			return v
		}
		return def
	}

	workers, err := strconv.Atoi(env("DLIST_STRESS", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid DLIST_STRESS: %w", err)
	}

	limit, err := strconv.Atoi(env("DLIST_LIMIT", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid DLIST_LIMIT: %w", err)
	}

	metrics, err := strconv.ParseBool(env("DLIST_METRICS", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid DLIST_METRICS: %w", err)
	}

	c := &Config{}
	var level string

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&c.Scenario, "scenario", env("DLIST_SCENARIO", ""), "run the yaml scenario file")
	fs.IntVar(&c.Workers, "stress", workers, "run the concurrent add/remove exerciser with n workers")
	fs.IntVar(&c.Limit, "limit", limit, "max goroutines running at once in stress mode, 0 means no limit")
	fs.BoolVar(&c.Metrics, "metrics", metrics, "print prometheus metrics on exit")
	fs.StringVar(&level, "log-level", env("DLIST_LOG_LEVEL", "info"), "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var ok bool
	if c.LogLevel, ok = log.ParseLevel(level); !ok {
		return nil, fmt.Errorf("invalid log level %q", level)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}
