package nonce

import (
	"strconv"
	"sync/atomic"
	"time"
)

// MicrosecondNonce generates nonce values from the wall clock in microseconds.
//
// Two calls landing in the same microsecond (or a clock that steps backwards) would
// produce a duplicate, so the generator keeps the last issued value and bumps it by one
// whenever the clock did not move forward.
type MicrosecondNonce struct {
	current int64

	clock func() time.Time
}

func NewMicrosecondNonce(now time.Time) *MicrosecondNonce {
	return &MicrosecondNonce{
		current: now.UnixMicro(),
		clock:   time.Now,
	}
}

// GetInt64 returns a nonce strictly greater than every nonce returned before.
// It is safe for concurrent use.
func (ng *MicrosecondNonce) GetInt64() int64 {
	for {
		current := atomic.LoadInt64(&ng.current)
		next := ng.clock().UnixMicro()
		if next <= current {
			next = current + 1
		}

		if atomic.CompareAndSwapInt64(&ng.current, current, next) {
			return next
		}
	}
}

// GetString returns the next nonce in base 10.
func (ng *MicrosecondNonce) GetString() string {
	return strconv.FormatInt(ng.GetInt64(), 10)
}
