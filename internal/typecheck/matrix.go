package typecheck

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Report is the outcome of loading the package for one target.
type Report struct {
	Target       Target
	PointerWidth int64
	Err          error
}

// Matrix loads the package in dir for every target concurrently. The
// returned error joins every target that failed to type-check.
func Matrix(ctx context.Context, log *zap.Logger, dir string, targets []Target) ([]Report, error) {
	reports := make([]Report, len(targets))

	var mu sync.Mutex
	var failed []error

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i, target := range targets {
		g.Go(func() error {
			report := Report{Target: target}

			pkg, err := Load(ctx, dir, target)
			if err != nil {
				return err
			}

			report.Err = pkg.Err()
			if report.Err == nil {
				report.PointerWidth, report.Err = pkg.PointerWidth()
			}

			if report.Err != nil {
				mu.Lock()
				failed = append(failed, fmt.Errorf("%s: %w", target, report.Err))
				mu.Unlock()
			}

			log.Debug("type-checked target",
				zap.Stringer("target", target),
				zap.Int64("pointer_width", report.PointerWidth),
				zap.Error(report.Err))

			reports[i] = report

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, errors.Join(failed...)
}
