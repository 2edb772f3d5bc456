package transform

import (
	"context"
	"fmt"
	"runtime"
)

type config struct {
	workers int
	ctx     context.Context
}

func defaultConfig() config {
	return config{
		workers: runtime.NumCPU(),
		ctx:     context.Background(),
	}
}

// Option configures a [Transformer].
type Option func(*config) error

// WithWorkers sets the number of parallel workers (default
// runtime.NumCPU). One worker runs the extraction serially. The worker
// count never changes results, only wall time.
func WithWorkers(n int) Option {
	return func(cfg *config) error {
		if n < 1 {
			return fmt.Errorf("transform: worker count must be >= 1: %d", n)
		}
		cfg.workers = n
		return nil
	}
}

// WithContext attaches a context checked between series rows.
// A cancelled extraction returns ctx.Err() and no feature matrix.
func WithContext(ctx context.Context) Option {
	return func(cfg *config) error {
		if ctx == nil {
			return fmt.Errorf("transform: nil context")
		}
		cfg.ctx = ctx
		return nil
	}
}
