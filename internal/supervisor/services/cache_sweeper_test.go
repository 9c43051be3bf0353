// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/courserec/internal/recommend"
	"github.com/tomtom215/courserec/internal/store"
)

type fakeSweeper struct {
	calls atomic.Int32
}

func (f *fakeSweeper) SweepCache() int {
	f.calls.Add(1)
	return 1
}

func TestCacheSweeperService_Interface(t *testing.T) {
	var _ suture.Service = (*CacheSweeperService)(nil)
	var _ CacheSweeper = (*recommend.Engine)(nil)
}

func TestCacheSweeperService_Sweeps(t *testing.T) {
	sweeper := &fakeSweeper{}
	svc := NewCacheSweeperService(sweeper, 10*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- svc.Serve(ctx)
	}()

	deadline := time.Now().Add(time.Second)
	for sweeper.calls.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
	if got := sweeper.calls.Load(); got < 3 {
		t.Errorf("sweeps = %d, want at least 3", got)
	}
	if svc.String() != "cache-sweeper" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestCacheSweeperService_DisabledIdles(t *testing.T) {
	sweeper := &fakeSweeper{}
	svc := NewCacheSweeperService(sweeper, 0, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want context.DeadlineExceeded", err)
	}
	if got := sweeper.calls.Load(); got != 0 {
		t.Errorf("sweeps = %d, want 0 when disabled", got)
	}
}

func TestCacheSweeperService_EvictsExpiredResults(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var clock atomic.Int64
	clock.Store(now.UnixNano())

	ratings := store.NewRatings()
	ratings.Replace([]recommend.Rating{{UserID: 1, ItemID: 1, Value: 5}, {UserID: 2, ItemID: 2, Value: 4}})

	cfg := recommend.DefaultConfig()
	cfg.Cache.TTL = time.Minute
	engine, err := recommend.NewEngine(ratings, cfg, zerolog.Nop(),
		recommend.WithClock(func() time.Time { return time.Unix(0, clock.Load()) }))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	if _, err := engine.Recommend(context.Background(), 1); err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if got := engine.Stats().CachedEntries; got != 1 {
		t.Fatalf("cached entries = %d, want 1", got)
	}

	clock.Store(now.Add(2 * time.Minute).UnixNano())

	svc := NewCacheSweeperService(engine, 5*time.Millisecond, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- svc.Serve(ctx)
	}()

	deadline := time.Now().Add(time.Second)
	for engine.Stats().CachedEntries > 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	<-errCh

	if got := engine.Stats().CachedEntries; got != 0 {
		t.Errorf("cached entries after sweep = %d, want 0", got)
	}
}
