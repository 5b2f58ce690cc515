package keymutex

import (
	"sync"
	"testing"
	"time"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	km := New()

	var (
		wg      sync.WaitGroup
		counter int
	)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := km.Lock("order-1")
			defer unlock()
			v := counter
			time.Sleep(time.Microsecond)
			counter = v + 1
		}()
	}
	wg.Wait()

	if counter != 100 {
		t.Errorf("expected counter=100, got %d", counter)
	}
	if km.Len() != 0 {
		t.Errorf("expected no keys left, got %d", km.Len())
	}
}

func TestKeyedMutex_DifferentKeysDoNotBlock(t *testing.T) {
	km := New()

	unlockA := km.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock := km.Lock("b")
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on key b blocked by key a")
	}
}

func TestKeyedMutex_UnlockIsIdempotent(t *testing.T) {
	km := New()

	unlock := km.Lock("a")
	unlock()
	unlock()

	if km.Len() != 0 {
		t.Errorf("expected no keys left, got %d", km.Len())
	}

	unlock = km.Lock("a")
	unlock()
}
