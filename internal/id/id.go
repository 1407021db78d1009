package id

import (
	"strconv"
	"sync/atomic"
	"time"
)

var counter atomic.Int64

// New returns a unique identifier with the given prefix, for example
// "req-mbx3k2a-1f". IDs combine a millisecond timestamp with a process-wide
// counter, both base36, so they sort roughly by creation time and never
// collide within one process.
func New(prefix string) string {
	ms := time.Now().UnixMilli()
	n := counter.Add(1)
	return prefix + "-" + strconv.FormatInt(ms, 36) + "-" + strconv.FormatInt(n, 36)
}
