package strqueue

import "go.uber.org/zap"

// Tracer receives a structured event for every registry operation: the call
// itself, its result and the specific failure notices. Tracing is purely
// observational; swapping tracers never changes what an operation does.
type Tracer interface {
	// Call reports that op was invoked with args.
	Call(op string, args ...any)
	// Return reports the value op produced; nil stands for absence.
	Return(op string, value any)
	// Done reports that a value-less op completed its mutation.
	Done(op string)
	// NotFound reports that h named no live queue.
	NotFound(op string, h Handle)
	// OutOfRange reports that pos was outside the queue named by h.
	OutOfRange(op string, h Handle, pos int)
	// Failed reports that op was rejected because of invalid input.
	Failed(op string)
}

// NopTracer discards every event. It is the default sink, so an untraced
// registry pays no formatting or output cost.
type NopTracer struct{}

func (NopTracer) Call(string, ...any)            {}
func (NopTracer) Return(string, any)             {}
func (NopTracer) Done(string)                    {}
func (NopTracer) NotFound(string, Handle)        {}
func (NopTracer) OutOfRange(string, Handle, int) {}
func (NopTracer) Failed(string)                  {}

// NewZapTracer adapts a sugared zap logger into a Tracer. Events are
// emitted at debug level so production configurations silence them without
// touching the registry.
func NewZapTracer(log *zap.SugaredLogger) Tracer {
	return &zapTracer{log: log}
}

type zapTracer struct {
	log *zap.SugaredLogger
}

func (t *zapTracer) Call(op string, args ...any) {
	t.log.Debugw(op+" called", "args", args)
}

func (t *zapTracer) Return(op string, value any) {
	t.log.Debugw(op+" returned", "value", value)
}

func (t *zapTracer) Done(op string) {
	t.log.Debugw(op + " done")
}

func (t *zapTracer) NotFound(op string, h Handle) {
	t.log.Debugw("queue does not exist", "op", op, "handle", uint64(h))
}

func (t *zapTracer) OutOfRange(op string, h Handle, pos int) {
	t.log.Debugw("position out of range", "op", op, "handle", uint64(h), "position", pos)
}

func (t *zapTracer) Failed(op string) {
	t.log.Debugw("operation failed due to invalid input", "op", op)
}

// MultiTracer fans every event out to each of the given tracers in order,
// so a zap sink and a Metrics collector can observe the same registry.
func MultiTracer(tracers ...Tracer) Tracer {
	return multiTracer(tracers)
}

type multiTracer []Tracer

func (m multiTracer) Call(op string, args ...any) {
	for _, t := range m {
		t.Call(op, args...)
	}
}

func (m multiTracer) Return(op string, value any) {
	for _, t := range m {
		t.Return(op, value)
	}
}

func (m multiTracer) Done(op string) {
	for _, t := range m {
		t.Done(op)
	}
}

func (m multiTracer) NotFound(op string, h Handle) {
	for _, t := range m {
		t.NotFound(op, h)
	}
}

func (m multiTracer) OutOfRange(op string, h Handle, pos int) {
	for _, t := range m {
		t.OutOfRange(op, h, pos)
	}
}

func (m multiTracer) Failed(op string) {
	for _, t := range m {
		t.Failed(op)
	}
}
