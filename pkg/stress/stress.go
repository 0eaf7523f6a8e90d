package stress

import (
	"context"
	"fmt"
	"time"

	"github.com/Asutorufa/dlist/pkg/log"
	"github.com/Asutorufa/dlist/pkg/metrics"
	"github.com/Asutorufa/dlist/pkg/utils/list"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	// Workers is the number of values added and removed again.
	Workers int
	// Limit bounds the goroutines running at once, <= 0 means no limit.
	Limit int
}

type Result struct {
	Added    int
	Removed  int
	Len      int
	Duration time.Duration
}

func failed(op string, err error) {
	metrics.Counter.AddOperationFailed(op, metrics.Reason(err))
}

// Run makes every worker i call AddFirst(i) and then Remove(i) on one shared
// SyncList. A correctly synchronized list is empty afterwards.
func Run(ctx context.Context, c Config) (Result, error) {
	if c.Workers <= 0 {
		return Result{}, fmt.Errorf("workers must be positive, got %d", c.Workers)
	}

	l := list.NewSyncList[int]()
	added := make([]bool, c.Workers)
	removed := make([]bool, c.Workers)

	g, gctx := errgroup.WithContext(ctx)
	if c.Limit > 0 {
		g.SetLimit(c.Limit)
	}

	start := time.Now()
	for i := range c.Workers {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			if err := l.AddFirst(i); err != nil {
				failed("addFirst", err)
				return fmt.Errorf("worker %d add: %w", i, err)
			}
			added[i] = true
			metrics.Counter.AddOperation("addFirst")

			_, ok, err := l.Remove(i)
			if err != nil {
				failed("remove", err)
				return fmt.Errorf("worker %d remove: %w", i, err)
			}
			metrics.Counter.AddOperation("remove")
			if !ok {
				metrics.Counter.AddLookupMiss("remove")
				return fmt.Errorf("worker %d: value %d vanished", i, i)
			}
			removed[i] = true
			return nil
		})
	}

	err := g.Wait()

	r := Result{Len: l.Len(), Duration: time.Since(start)}
	for i := range c.Workers {
		if added[i] {
			r.Added++
		}
		if removed[i] {
			r.Removed++
		}
	}
	metrics.Counter.SetLength(r.Len)

	if err == nil {
		err = ctx.Err()
	}

	log.Info("stress finished", "workers", c.Workers, "added", r.Added, "removed", r.Removed, "len", r.Len, "duration", r.Duration)
	return r, err
}
