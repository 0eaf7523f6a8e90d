package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Asutorufa/dlist/internal/config"
	"github.com/Asutorufa/dlist/pkg/log"
	"github.com/Asutorufa/dlist/pkg/metrics"
	"github.com/Asutorufa/dlist/pkg/scenario"
	"github.com/Asutorufa/dlist/pkg/stress"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			log.Error("dlist failed", "err", err)
		}
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}

	c, err := config.Parse("dlist", args, os.LookupEnv, os.Stderr)
	if err != nil {
		return err
	}

	log.SetLevel(c.LogLevel)

	reg := prometheus.NewRegistry()
	if c.Metrics {
		metrics.Counter = metrics.NewPrometheus(reg)
		defer func() {
			if err := metrics.WriteText(stdout, reg); err != nil {
				log.Warn("write metrics failed", "err", err)
			}
		}()
	}

	if c.Workers > 0 {
		r, err := stress.Run(ctx, stress.Config{Workers: c.Workers, Limit: c.Limit})
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "stress: workers=%d added=%d removed=%d len=%d duration=%v\n",
			c.Workers, r.Added, r.Removed, r.Len, r.Duration)
		if r.Len != 0 {
			return fmt.Errorf("list not empty after stress: %d elements left", r.Len)
		}
		return nil
	}

	s, err := scenario.Load(c.Scenario)
	if err != nil {
		return err
	}

	r, err := scenario.Run(ctx, s)
	if err != nil {
		return err
	}

	for _, f := range r.Failures {
		fmt.Fprintln(stdout, f)
	}
	fmt.Fprintf(stdout, "%s: %d steps, %d failures, len=%d\n", r.Name, r.Steps, len(r.Failures), r.Len)

	if !r.OK() {
		return fmt.Errorf("scenario %s failed", r.Name)
	}

	log.Info("scenario passed", "name", r.Name, "steps", r.Steps)
	return nil
}
