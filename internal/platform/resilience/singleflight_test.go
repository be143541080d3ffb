package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_Do(t *testing.T) {
	var g SingleFlight
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			_, err, _ := g.Do("token-key", func() (any, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestSingleFlight_PanicReleasesWaiters(t *testing.T) {
	var g SingleFlight
	entered := make(chan struct{})
	release := make(chan struct{})

	go func() {
		defer func() { _ = recover() }()
		_, _, _ = g.Do("recalculate", func() (any, error) {
			close(entered)
			<-release
			panic("boom")
		})
	}()
	<-entered

	joined := make(chan error, 1)
	go func() {
		_, err, _ := g.Do("recalculate", func() (any, error) { return "fresh", nil })
		joined <- err
	}()
	time.Sleep(10 * time.Millisecond)
	close(release)

	select {
	case err := <-joined:
		if err != nil && !errors.Is(err, ErrFlightPanicked) {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("waiter was not released after panic")
	}

	v, err, shared := g.Do("recalculate", func() (any, error) { return "next", nil })
	if err != nil || shared || v != "next" {
		t.Fatalf("expected a fresh call after panic, got v=%v err=%v shared=%v", v, err, shared)
	}
}
