package resource

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Memory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 100})

	// Reserve 50
	require.NoError(t, c.TryAcquireMemory(50))
	assert.Equal(t, int64(50), c.MemoryUsage())

	// Reserve 40
	require.NoError(t, c.TryAcquireMemory(40))
	assert.Equal(t, int64(90), c.MemoryUsage())
	assert.Equal(t, int64(10), c.MemoryAvailable())

	// Reserve 20 (should fail - limit exceeded)
	err := c.TryAcquireMemory(20)
	assert.ErrorIs(t, err, ErrMemoryLimitExceeded)
	assert.Equal(t, int64(90), c.MemoryUsage())

	// Release 50
	c.ReleaseMemory(50)
	assert.Equal(t, int64(40), c.MemoryUsage())

	// Now 20 fits
	require.NoError(t, c.TryAcquireMemory(20))
	assert.Equal(t, int64(60), c.MemoryUsage())
}

func TestController_UnlimitedMemory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 0})

	require.NoError(t, c.TryAcquireMemory(1000))
	assert.Equal(t, int64(1000), c.MemoryUsage())
	assert.Equal(t, int64(0), c.MemoryLimit())
	assert.Equal(t, int64(-1), c.MemoryAvailable())

	c.ReleaseMemory(500)
	assert.Equal(t, int64(500), c.MemoryUsage())
}

func TestController_NonPositiveAmounts(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 10})

	require.NoError(t, c.TryAcquireMemory(0))
	require.NoError(t, c.TryAcquireMemory(-5))
	c.ReleaseMemory(-5)
	assert.Equal(t, int64(0), c.MemoryUsage())
}

func TestController_Nil(t *testing.T) {
	var c *Controller

	require.NoError(t, c.TryAcquireMemory(1<<40))
	c.ReleaseMemory(1 << 40)
	assert.Equal(t, int64(0), c.MemoryUsage())
	assert.Equal(t, int64(0), c.MemoryLimit())
	assert.Equal(t, int64(-1), c.MemoryAvailable())
}

func TestController_ConcurrentReservations(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 64})

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		granted int
	)
	for range 128 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.TryAcquireMemory(1) == nil {
				mu.Lock()
				granted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 64, granted)
	assert.Equal(t, int64(64), c.MemoryUsage())
}
