package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_Do(t *testing.T) {
	var g SingleFlight[int64]
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			got, err, _ := g.Do("club|Galatasaray", func() (int64, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return 11, nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
			if got != 11 {
				t.Errorf("unexpected value: got=%d want=11", got)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestSingleFlight_DoForgetsFailedCall(t *testing.T) {
	var g SingleFlight[string]
	boom := errors.New("boom")

	if _, err, _ := g.Do("k", func() (string, error) { return "", boom }); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	got, err, shared := g.Do("k", func() (string, error) { return "second", nil })
	if err != nil || got != "second" || shared {
		t.Fatalf("unexpected retry result: got=%q err=%v shared=%t", got, err, shared)
	}
}
