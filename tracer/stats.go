package tracer

import "sync/atomic"

// Stats accumulates --debug diagnostic counters across every worker
// goroutine. Zero value is ready to use.
type Stats struct {
	TraceCalls  int64
	SampleCalls int64
}

func (s *Stats) addTrace() {
	if s == nil {
		return
	}
	atomic.AddInt64(&s.TraceCalls, 1)
}

func (s *Stats) addSample() {
	if s == nil {
		return
	}
	atomic.AddInt64(&s.SampleCalls, 1)
}

// Snapshot returns a point-in-time copy safe to read after all workers
// have finished.
func (s *Stats) Snapshot() (traceCalls, sampleCalls int64) {
	if s == nil {
		return 0, 0
	}
	return atomic.LoadInt64(&s.TraceCalls), atomic.LoadInt64(&s.SampleCalls)
}
