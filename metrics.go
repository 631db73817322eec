package strqueue

import "sync/atomic"

// Metrics is a Tracer that counts diagnostic events with atomic counters.
// It allocates nothing per event, so it can stay attached in production and
// be inspected from any goroutine.
type Metrics struct {
	calls      atomic.Uint64
	notFound   atomic.Uint64
	outOfRange atomic.Uint64
	failed     atomic.Uint64
}

// MetricsSnapshot carries the counter values at one point in time.
type MetricsSnapshot struct {
	Calls      uint64
	NotFound   uint64
	OutOfRange uint64
	Failed     uint64
}

// Call counts one operation invocation.
func (m *Metrics) Call(string, ...any) {
	m.calls.Add(1)
}

// Return is counted through Call already.
func (m *Metrics) Return(string, any) {}

// Done is counted through Call already.
func (m *Metrics) Done(string) {}

// NotFound counts one missing-queue notice.
func (m *Metrics) NotFound(string, Handle) {
	m.notFound.Add(1)
}

// OutOfRange counts one out-of-range notice.
func (m *Metrics) OutOfRange(string, Handle, int) {
	m.outOfRange.Add(1)
}

// Failed counts one invalid-input rejection.
func (m *Metrics) Failed(string) {
	m.failed.Add(1)
}

// Snapshot returns the collected counts.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Calls:      m.calls.Load(),
		NotFound:   m.notFound.Load(),
		OutOfRange: m.outOfRange.Load(),
		Failed:     m.failed.Load(),
	}
}

// Reset sets every counter back to zero.
func (m *Metrics) Reset() {
	m.calls.Store(0)
	m.notFound.Store(0)
	m.outOfRange.Store(0)
	m.failed.Store(0)
}
