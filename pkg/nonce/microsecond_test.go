package nonce

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMicrosecondNonce_GetString(t *testing.T) {
	ng := NewMicrosecondNonce(time.Now())

	nonceStr := ng.GetString()
	require.NotEmpty(t, nonceStr)

	_, err := strconv.ParseInt(nonceStr, 10, 64)
	assert.NoError(t, err, "nonce string should be a base 10 integer")
}

func TestMicrosecondNonce_InitialValue(t *testing.T) {
	now := time.Now()
	ng := NewMicrosecondNonce(now)
	assert.Equal(t, now.UnixMicro(), ng.current)

	n := ng.GetInt64()
	assert.Greater(t, n, now.UnixMicro())
}

func TestMicrosecondNonce_FrozenClock(t *testing.T) {
	frozen := time.Unix(1616492376, 594000000)
	ng := NewMicrosecondNonce(frozen)
	ng.clock = func() time.Time { return frozen }

	var last int64
	for i := 0; i < 1000; i++ {
		n := ng.GetInt64()
		if i > 0 {
			assert.Equal(t, last+1, n, "nonce must be bumped when the clock does not move")
		}
		last = n
	}
}

func TestMicrosecondNonce_ClockGoesBackwards(t *testing.T) {
	start := time.Unix(1700000000, 0)
	ng := NewMicrosecondNonce(start)

	first := ng.GetInt64()

	ng.clock = func() time.Time { return start.Add(-time.Hour) }
	second := ng.GetInt64()
	assert.Greater(t, second, first)
}

func TestMicrosecondNonce_Sequential(t *testing.T) {
	ng := NewMicrosecondNonce(time.Now())

	var nonces []int64
	for i := 0; i < 1200; i++ {
		n := ng.GetInt64()
		if i > 0 {
			assert.Greater(t, n, nonces[i-1])
		}
		nonces = append(nonces, n)
	}
}

func TestMicrosecondNonce_Concurrency(t *testing.T) {
	ng := NewMicrosecondNonce(time.Now())

	const workers = 16
	const perWorker = 500

	var wg sync.WaitGroup
	results := make([][]int64, workers)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				results[w] = append(results[w], ng.GetInt64())
			}
		}(w)
	}

	wg.Wait()

	seen := make(map[int64]struct{}, workers*perWorker)
	for _, rs := range results {
		for i, n := range rs {
			// every caller observes its own values strictly increasing
			if i > 0 {
				assert.Greater(t, n, rs[i-1])
			}

			_, dup := seen[n]
			assert.False(t, dup, "duplicate nonce %d", n)
			seen[n] = struct{}{}
		}
	}

	assert.Len(t, seen, workers*perWorker)
}
