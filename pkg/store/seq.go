package store

import (
	"sync/atomic"
	"time"
)

var historySeq atomic.Int64

// nextHistorySeq yields monotonically increasing history keys even when two
// records land within the same nanosecond tick.
func nextHistorySeq() int64 {
	now := time.Now().UnixNano()
	for {
		last := historySeq.Load()
		if now <= last {
			now = last + 1
		}
		if historySeq.CompareAndSwap(last, now) {
			return now
		}
	}
}
