package strqueue

import (
	"math"

	"github.com/timzifer/strqueue/internal/deque"
)

// Handle identifies one queue for the entire lifetime of the registry. A
// handle stays permanently retired once its queue has been deleted.
type Handle uint64

// Registry owns every queue and the handle allocator. It performs no
// internal synchronization; see Synced for the concurrent variant.
type Registry struct {
	queues map[Handle]*deque.Deque
	next   Handle
	tracer Tracer
}

// Option configures a Registry during construction.
type Option func(*Registry)

// WithTracer installs the diagnostic sink that receives an event for every
// operation call, result and failure notice. Passing nil keeps the default
// no-op tracer.
func WithTracer(t Tracer) Option {
	return func(r *Registry) {
		if t != nil {
			r.tracer = t
		}
	}
}

// New creates an empty registry. The embedding application constructs it
// once and passes it to every call site.
func New(options ...Option) *Registry {
	r := &Registry{
		queues: make(map[Handle]*deque.Deque),
		tracer: NopTracer{},
	}

	for _, opt := range options {
		opt(r)
	}

	return r
}

// Create allocates the next unused handle, registers an empty queue under
// it and returns the handle. Exhausting the handle space is a precondition
// violation and panics; with 64-bit handles a process would have to create
// queues for centuries to get there.
func (r *Registry) Create() Handle {
	r.tracer.Call("create")

	if r.next == math.MaxUint64 {
		panic("strqueue: handle space exhausted")
	}

	h := r.next
	r.next++
	r.queues[h] = deque.New()

	r.tracer.Return("create", h)
	return h
}

// Delete destroys the queue named by h and retires the handle for good.
// Unknown handles are a no-op, reported only through the tracer.
func (r *Registry) Delete(h Handle) {
	r.tracer.Call("delete", h)

	if _, ok := r.queues[h]; !ok {
		r.tracer.NotFound("delete", h)
		return
	}

	delete(r.queues, h)
	r.tracer.Done("delete")
}

// Size returns the number of elements in the queue named by h, or zero when
// the handle names no live queue.
func (r *Registry) Size(h Handle) int {
	r.tracer.Call("size", h)

	q, ok := r.queues[h]
	if !ok {
		r.tracer.NotFound("size", h)
		r.tracer.Return("size", 0)
		return 0
	}

	n := q.Len()
	r.tracer.Return("size", n)
	return n
}

// InsertAt inserts value at pos in the queue named by h. A position at or
// past the current size appends, so inserting into an empty queue succeeds
// at any non-negative position and pos == Size(h) is the idiomatic push
// back. The call is rejected silently when the handle is unknown or pos is
// negative.
func (r *Registry) InsertAt(h Handle, pos int, value string) {
	r.tracer.Call("insert_at", h, pos, value)

	q, ok := r.queues[h]
	if !ok || pos < 0 {
		if !ok {
			r.tracer.NotFound("insert_at", h)
		}
		if pos < 0 {
			r.tracer.Failed("insert_at")
		}
		return
	}

	if pos >= q.Len() {
		q.PushBack(value)
	} else {
		q.InsertAt(pos, value)
	}

	r.tracer.Done("insert_at")
}

// RemoveAt removes the element at pos from the queue named by h, shifting
// later elements down by one. Unlike InsertAt, an out-of-range position is
// rejected, not clamped; unknown handles are rejected as well. Rejections
// leave the queue untouched.
func (r *Registry) RemoveAt(h Handle, pos int) {
	r.tracer.Call("remove_at", h, pos)

	q, ok := r.queues[h]
	if !ok {
		r.tracer.NotFound("remove_at", h)
		return
	}

	if !q.RemoveAt(pos) {
		r.tracer.OutOfRange("remove_at", h, pos)
		return
	}

	r.tracer.Done("remove_at")
}

// GetAt returns the element at pos in the queue named by h. The second
// result is false when the handle is unknown or pos is out of range.
func (r *Registry) GetAt(h Handle, pos int) (string, bool) {
	r.tracer.Call("get_at", h, pos)

	q, ok := r.queues[h]
	if !ok {
		r.tracer.NotFound("get_at", h)
		r.tracer.Return("get_at", nil)
		return "", false
	}

	value, ok := q.At(pos)
	if !ok {
		r.tracer.OutOfRange("get_at", h, pos)
		r.tracer.Return("get_at", nil)
		return "", false
	}

	r.tracer.Return("get_at", value)
	return value, true
}

// Clear removes every element of the queue named by h while keeping the
// handle live. Unknown handles are a no-op with a trace notice.
func (r *Registry) Clear(h Handle) {
	r.tracer.Call("clear", h)

	q, ok := r.queues[h]
	if !ok {
		r.tracer.NotFound("clear", h)
		return
	}

	q.Clear()
	r.tracer.Done("clear")
}

// Compare orders the queue named by h1 against the queue named by h2
// lexicographically, element by element, with a strict prefix sorting
// before the longer queue. The result is -1, 0 or +1 as for
// strings.Compare. A handle that names no live queue counts as an empty
// queue, so Compare is total and never mutates anything.
func (r *Registry) Compare(h1, h2 Handle) int {
	r.tracer.Call("compare", h1, h2)

	q1, ok1 := r.queues[h1]
	q2, ok2 := r.queues[h2]
	if !ok1 {
		r.tracer.NotFound("compare", h1)
	}
	if !ok2 {
		r.tracer.NotFound("compare", h2)
	}

	res := deque.Compare(q1, q2)
	r.tracer.Return("compare", res)
	return res
}
