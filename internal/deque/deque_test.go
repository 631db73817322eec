package deque

import (
	"slices"
	"testing"
)

func TestPushBackKeepsOrder(t *testing.T) {
	d := New()

	d.PushBack("a")
	d.PushBack("b")
	d.PushBack("c")

	if got := d.Len(); got != 3 {
		t.Fatalf("expected length 3, got %d", got)
	}
	if got := d.Values(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected order %v", got)
	}
}

func TestWithInitialSeedsElements(t *testing.T) {
	d := New(WithInitial("x", "y"))

	if got := d.Values(); !slices.Equal(got, []string{"x", "y"}) {
		t.Fatalf("unexpected initial elements %v", got)
	}
}

func TestInsertAtLinksBeforePosition(t *testing.T) {
	d := New(WithInitial("a", "c"))

	d.InsertAt(1, "b")
	if got := d.Values(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected order after middle insert %v", got)
	}

	d.InsertAt(0, "0")
	if got := d.Values(); !slices.Equal(got, []string{"0", "a", "b", "c"}) {
		t.Fatalf("unexpected order after head insert %v", got)
	}
}

func TestRemoveAtRelinksNeighbours(t *testing.T) {
	d := New(WithInitial("a", "b", "c"))

	if !d.RemoveAt(1) {
		t.Fatalf("expected removal at position 1 to succeed")
	}
	if got := d.Values(); !slices.Equal(got, []string{"a", "c"}) {
		t.Fatalf("unexpected order after removal %v", got)
	}

	if d.RemoveAt(2) {
		t.Fatalf("expected removal past the end to fail")
	}
	if d.RemoveAt(-1) {
		t.Fatalf("expected removal at negative position to fail")
	}
	if got := d.Len(); got != 2 {
		t.Fatalf("failed removals must not change length, got %d", got)
	}

	if !d.RemoveAt(1) || !d.RemoveAt(0) {
		t.Fatalf("expected remaining removals to succeed")
	}
	if d.Len() != 0 || d.Values() != nil {
		t.Fatalf("expected empty deque, got %v", d.Values())
	}
}

func TestAtReportsAbsence(t *testing.T) {
	d := New(WithInitial("only"))

	if v, ok := d.At(0); !ok || v != "only" {
		t.Fatalf("expected At(0) to return %q, got %q,%v", "only", v, ok)
	}
	if _, ok := d.At(1); ok {
		t.Fatalf("expected At past the end to report absence")
	}
	if _, ok := d.At(-1); ok {
		t.Fatalf("expected At at negative position to report absence")
	}
}

func TestClearLeavesUsableDeque(t *testing.T) {
	d := New(WithInitial("a", "b"))

	d.Clear()
	if d.Len() != 0 {
		t.Fatalf("expected empty deque after clear, got length %d", d.Len())
	}

	d.PushBack("again")
	if v, ok := d.At(0); !ok || v != "again" {
		t.Fatalf("expected cleared deque to accept new elements, got %q,%v", v, ok)
	}
}

func TestCompare(t *testing.T) {
	cases := []struct {
		name string
		a, b *Deque
		want int
	}{
		{"both nil", nil, nil, 0},
		{"nil vs empty", nil, New(), 0},
		{"nil vs populated", nil, New(WithInitial("a")), -1},
		{"equal elements", New(WithInitial("a", "b")), New(WithInitial("a", "b")), 0},
		{"element order", New(WithInitial("a", "b")), New(WithInitial("a", "c")), -1},
		{"prefix is less", New(WithInitial("a")), New(WithInitial("a", "b")), -1},
		{"longer is greater", New(WithInitial("a", "b", "c")), New(WithInitial("a", "b")), 1},
	}

	for _, tc := range cases {
		if got := Compare(tc.a, tc.b); got != tc.want {
			t.Fatalf("%s: Compare returned %d, want %d", tc.name, got, tc.want)
		}
		if got := Compare(tc.b, tc.a); got != -tc.want {
			t.Fatalf("%s: Compare is not antisymmetric, got %d want %d", tc.name, got, -tc.want)
		}
	}
}
