package ratefeed

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/Simplici0/freight/internal/currency"
)

// Fetcher supplies a fresh rate table.
type Fetcher interface {
	Fetch(ctx context.Context) (currency.Table, error)
}

// Saver persists a fetched rate table.
type Saver interface {
	SaveBase(ctx context.Context, table currency.Table, fetchedAt time.Time) error
}

// Refresher pulls rates from a Fetcher into a Saver. Concurrent refreshes share one fetch.
type Refresher struct {
	fetcher Fetcher
	saver   Saver
	log     *zap.Logger
	now     func() time.Time
	group   singleflight.Group
}

func NewRefresher(fetcher Fetcher, saver Saver, log *zap.Logger) *Refresher {
	return &Refresher{fetcher: fetcher, saver: saver, log: log, now: time.Now}
}

// Refresh fetches and stores the latest table, returning it.
func (r *Refresher) Refresh(ctx context.Context) (currency.Table, error) {
	v, err, shared := r.group.Do("refresh", func() (any, error) {
		table, err := r.fetcher.Fetch(ctx)
		if err != nil {
			return nil, err
		}
		if err := r.saver.SaveBase(ctx, table, r.now()); err != nil {
			return nil, fmt.Errorf("store fetched rates: %w", err)
		}
		return table, nil
	})
	if err != nil {
		r.log.Error("rate refresh failed", zap.Error(err))
		return nil, err
	}

	table := v.(currency.Table)
	r.log.Info("rates refreshed", zap.Int("currencies", len(table)), zap.Bool("shared", shared))
	return table.Clone(), nil
}

// Start refreshes immediately and then every interval until ctx is done.
// The returned channel is closed once the loop has exited.
func (r *Refresher) Start(ctx context.Context, interval time.Duration) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)

		_, _ = r.Refresh(ctx)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				_, _ = r.Refresh(ctx)
			case <-ctx.Done():
				r.log.Info("rate refresher stopped")
				return
			}
		}
	}()

	return done
}
