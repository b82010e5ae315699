package session_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/srcedit/pkg/session"
)

func TestPathLocks_SerializesSameKey(t *testing.T) {
	t.Parallel()

	locks := session.NewPathLocks()

	var active, peak atomic.Int32
	var wg sync.WaitGroup

	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			unlock := locks.Lock("/src/A.java")
			defer unlock()

			n := active.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			active.Add(-1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), peak.Load())
	assert.Equal(t, 0, locks.Len())
}

func TestPathLocks_IndependentKeys(t *testing.T) {
	t.Parallel()

	locks := session.NewPathLocks()

	unlockA := locks.Lock("/src/A.java")
	done := make(chan struct{})
	go func() {
		unlockB := locks.Lock("/src/B.java")
		unlockB()
		close(done)
	}()
	<-done

	assert.Equal(t, 1, locks.Len())
	unlockA()
	assert.Equal(t, 0, locks.Len())
}
