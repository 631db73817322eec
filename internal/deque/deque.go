package deque

import "strings"

type node struct {
	value string
	prev  *node
	next  *node
}

// Deque is an ordered, mutable sequence of strings. Positions are
// zero-indexed and renumber automatically as elements are inserted and
// removed.
type Deque struct {
	head *node
	tail *node
	len  int
	opts dequeOptions
}

// New creates an empty deque unless options seed it with initial elements.
func New(options ...Option) *Deque {
	d := &Deque{}

	for _, opt := range options {
		opt(&d.opts)
	}

	for _, v := range d.opts.initial {
		d.PushBack(v)
	}

	return d
}

// Len returns the number of elements currently stored.
func (d *Deque) Len() int {
	return d.len
}

// PushBack appends value at the end of the sequence.
func (d *Deque) PushBack(value string) {
	n := &node{value: value}
	if d.len == 0 {
		d.head = n
		d.tail = n
	} else {
		n.prev = d.tail
		d.tail.next = n
		d.tail = n
	}
	d.len++
}

// InsertAt places value before the element currently at pos. The caller
// must keep pos within [0, Len()); appends go through PushBack.
func (d *Deque) InsertAt(pos int, value string) {
	current := d.nodeAt(pos)
	n := &node{value: value, prev: current.prev, next: current}

	if current.prev != nil {
		current.prev.next = n
	} else {
		d.head = n
	}
	current.prev = n
	d.len++
}

// RemoveAt unlinks the element at pos. Returns false without mutating when
// pos is out of range.
func (d *Deque) RemoveAt(pos int) bool {
	if pos < 0 || pos >= d.len {
		return false
	}

	current := d.nodeAt(pos)
	if current.prev != nil {
		current.prev.next = current.next
	} else {
		d.head = current.next
	}
	if current.next != nil {
		current.next.prev = current.prev
	} else {
		d.tail = current.prev
	}

	current.next = nil
	current.prev = nil
	d.len--
	return true
}

// At returns the element at pos, or false when pos is out of range.
func (d *Deque) At(pos int) (string, bool) {
	if pos < 0 || pos >= d.len {
		return "", false
	}
	return d.nodeAt(pos).value, true
}

// Clear drops every element, leaving the deque empty but usable.
func (d *Deque) Clear() {
	d.head = nil
	d.tail = nil
	d.len = 0
}

// Values returns a copy of the elements in order, for inspection/testing.
func (d *Deque) Values() []string {
	if d.len == 0 {
		return nil
	}

	result := make([]string, 0, d.len)
	for n := d.head; n != nil; n = n.next {
		result = append(result, n.value)
	}
	return result
}

func (d *Deque) nodeAt(pos int) *node {
	n := d.head
	for index := 0; index < pos; index++ {
		n = n.next
	}
	return n
}

// Compare orders a against b lexicographically, element by element, with a
// strict prefix sorting before the longer sequence. A nil deque counts as
// empty, so absent queues can be compared without allocating a sentinel.
func Compare(a, b *Deque) int {
	an, bn := first(a), first(b)

	for an != nil && bn != nil {
		if c := strings.Compare(an.value, bn.value); c != 0 {
			return c
		}
		an = an.next
		bn = bn.next
	}

	switch {
	case an != nil:
		return 1
	case bn != nil:
		return -1
	default:
		return 0
	}
}

func first(d *Deque) *node {
	if d == nil {
		return nil
	}
	return d.head
}
