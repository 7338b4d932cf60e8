package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock_Now(t *testing.T) {
	at := time.Date(2024, time.March, 3, 9, 30, 0, 0, time.UTC)
	c := NewFixedClock(at)

	assert.Equal(t, at, c.Now())
	assert.Equal(t, at, c.Now(), "Now must not advance")
}

func TestFixedClock_InYear(t *testing.T) {
	c := InYear(2030)
	assert.Equal(t, 2030, c.Now().Year())
}

func TestFixedClock_Set(t *testing.T) {
	c := InYear(2020)
	c.Set(time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 2021, c.Now().Year())
}

func TestFixedClock_ConcurrentAccess(t *testing.T) {
	c := InYear(2020)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(year int) {
			defer wg.Done()
			c.Set(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
			_ = c.Now()
		}(2000 + i)
	}
	wg.Wait()

	assert.GreaterOrEqual(t, c.Now().Year(), 2000)
}
