package status

import (
	"sync"
	"testing"
)

func TestCounterIsCached(t *testing.T) {
	r := NewRegistry()
	a := r.Counter(Ticks)
	b := r.Counter(Ticks)
	if a != b {
		t.Fatal("expected the same counter pointer for the same key")
	}

	a.Add(3)
	if got := r.Value(Ticks); got != 3 {
		t.Errorf("Value = %d, want 3", got)
	}
	if got := r.Value("missing"); got != 0 {
		t.Errorf("missing Value = %d, want 0", got)
	}
}

func TestConcurrentCounter(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Counter(InputAccepted).Add(1)
			}
		}()
	}
	wg.Wait()

	if got := r.Value(InputAccepted); got != 800 {
		t.Errorf("Value = %d, want 800", got)
	}
	if r.Count() != 1 {
		t.Errorf("Count = %d, want 1", r.Count())
	}
}

func TestRangeSorted(t *testing.T) {
	r := NewRegistry()
	r.Counter(InputResponses).Add(1)
	r.Counter(Steps).Add(2)
	r.Counter(InputDropped).Add(3)

	var keys []string
	r.Range(func(key string, _ int64) { keys = append(keys, key) })

	want := []string{Steps, InputDropped, InputResponses}
	if len(keys) != len(want) {
		t.Fatalf("got %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %s, want %s", i, keys[i], want[i])
		}
	}
}
