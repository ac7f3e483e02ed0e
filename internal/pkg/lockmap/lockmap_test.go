package lockmap_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fiveparsecs/campaign-api/internal/pkg/lockmap"
)

func TestLockMap_SerializesSameKey(t *testing.T) {
	locks := lockmap.New()

	const workers = 16
	counter := 0

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			unlock := locks.Lock("crew_1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestLockMap_IndependentKeys(t *testing.T) {
	locks := lockmap.New()

	unlockA := locks.Lock("crew_a")
	// Must not block on a different key while crew_a is held.
	unlockB := locks.Lock("crew_b")

	unlockB()
	unlockA()
}
