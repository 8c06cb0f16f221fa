package types

import "time"

// CounterSample is one reading of an interface's cumulative traffic
// counters, as reported by the OS.
type CounterSample struct {
	Interface string
	BytesRecv uint64
	BytesSent uint64
	At        time.Time
}

// RateSample is the throughput derived from two consecutive counter samples
// of the same interface, plus the totals accumulated since monitoring
// started. Totals are session bytes, not the OS lifetime counter.
type RateSample struct {
	Interface string
	DownRate  float64 // bytes per second
	UpRate    float64 // bytes per second
	RxTotal   uint64
	TxTotal   uint64
	Elapsed   time.Duration
}
