// Package deque provides the ordered string sequence backing each registry
// queue. Elements live in a doubly linked list; positional operations walk
// from the head to the requested index, so they cost O(position).
//
// The deque performs no locking. The registry that owns it is specified for
// single-writer use, and concurrent callers are expected to serialise access
// one level up.
package deque
