package statements

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	k := newKeyedMutex()

	unlock := k.Lock("alice")
	acquired := make(chan struct{})
	go func() {
		defer close(acquired)
		k.Lock("alice")()
	}()

	select {
	case <-acquired:
		t.Fatal("second Lock on the same key should block")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second Lock never acquired")
	}
	assert.Equal(t, 0, k.size())
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	k := newKeyedMutex()

	unlockAlice := k.Lock("alice")
	defer unlockAlice()

	done := make(chan struct{})
	go func() {
		defer close(done)
		k.Lock("bob")()
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("different keys should not block each other")
	}
}

func TestKeyedMutex_ReleasesEntries(t *testing.T) {
	k := newKeyedMutex()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			k.Lock("alice")()
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, k.size())
}
