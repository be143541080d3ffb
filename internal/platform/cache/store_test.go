package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")

func TestStore_ExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "sport:list", "v1")
	if _, ok := store.Get(context.Background(), "sport:list"); !ok {
		t.Fatalf("expected fresh entry to be cached")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(context.Background(), "sport:list"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(0)
	store.Set(ctx, "sport:list", 1)
	store.Set(ctx, "sport:id:3", 2)
	store.Set(ctx, "faculty:list", 3)

	store.DeletePrefix(ctx, "sport:")
	if _, ok := store.Get(ctx, "sport:id:3"); ok {
		t.Fatalf("expected sport keys to be removed")
	}
	if _, ok := store.Get(ctx, "faculty:list"); !ok {
		t.Fatalf("expected faculty key to survive prefix delete")
	}
}

func TestLoad_Typed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) ([]int64, error) {
		calls.Add(1)
		return []int64{1, 2, 3}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := Load(ctx, store, "ids", loader)
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("unexpected value: %v", got)
		}
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}

	store.Set(ctx, "ids", "stale")
	got, err := Load(ctx, store, "ids", loader)
	if err != nil || len(got) != 3 {
		t.Fatalf("expected reload on type mismatch, got=%v err=%v", got, err)
	}
}

func TestStore_InvalidationDuringLoadIsNotOverwritten(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)
	started := make(chan struct{})
	release := make(chan struct{})

	done := make(chan any, 1)
	go func() {
		v, _ := store.GetOrLoad(ctx, "sport:list", func(context.Context) (any, error) {
			close(started)
			<-release
			return "before-reset", nil
		})
		done <- v
	}()

	<-started
	store.DeletePrefix(ctx, "sport:")
	close(release)

	if got := <-done; got != "before-reset" {
		t.Fatalf("expected in-flight caller to get its value, got %v", got)
	}
	if _, ok := store.Get(ctx, "sport:list"); ok {
		t.Fatalf("expected value loaded across an invalidation to stay uncached")
	}
}
