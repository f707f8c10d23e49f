package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClockAdvancesByStep(t *testing.T) {
	base := time.Date(2024, 1, 15, 10, 30, 0, 0, time.Local)
	c := NewFixedClock(base, time.Second)

	assert.Equal(t, base, c.Now())
	assert.Equal(t, base.Add(time.Second), c.Now())
	assert.Equal(t, base.Add(2*time.Second), c.Now())
}

func TestFixedClockReset(t *testing.T) {
	base := time.Date(2024, 1, 15, 10, 30, 0, 0, time.Local)
	c := NewFixedClock(base, time.Second)

	c.Now()
	c.Now()
	c.Reset()
	assert.Equal(t, base, c.Now())
}

func TestFixedClockConcurrentUse(t *testing.T) {
	c := NewFixedClock(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), time.Second)

	var wg sync.WaitGroup
	seen := sync.Map{}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ts := c.Now()
			_, dup := seen.LoadOrStore(ts, true)
			assert.False(t, dup, "timestamps must be unique")
		}()
	}
	wg.Wait()
}
