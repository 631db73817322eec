// Package strqueue implements an in-memory registry of ordered string
// queues, each addressed by an opaque integer handle. Callers create a
// queue, receive a unique handle, and perform positional operations and
// whole-queue lexicographic comparison against that handle. The design
// targets callers that cannot hold a direct reference to a collection, for
// example across a foreign interface boundary, and must work through
// integer identifiers instead.
//
// Handles are assigned monotonically starting at zero and are never reused,
// not even after the queue they named has been deleted. Operations against
// a handle that names no live queue degrade gracefully: lookups report
// absence, sizes report zero, mutations become no-ops and comparisons treat
// the missing queue as empty. Only the diagnostic tracer reveals the
// difference between a dead handle and a live empty queue.
//
// A Registry performs no locking of its own and is meant for a single
// caller at a time. Wrap it in a Synced when several goroutines share it.
package strqueue
