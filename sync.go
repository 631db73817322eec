package strqueue

import "sync"

// Synced serialises access to a Registry behind a single mutex. The
// registry's operations are short and never block, so one coarse lock is
// enough for concurrent callers; there is no finer-grained locking to win
// anything from.
type Synced struct {
	mu  sync.Mutex
	reg *Registry
}

// NewSynced wraps reg for concurrent use. A nil reg gets a fresh registry.
func NewSynced(reg *Registry) *Synced {
	if reg == nil {
		reg = New()
	}
	return &Synced{reg: reg}
}

func (s *Synced) Create() Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.Create()
}

func (s *Synced) Delete(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reg.Delete(h)
}

func (s *Synced) Size(h Handle) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.Size(h)
}

func (s *Synced) InsertAt(h Handle, pos int, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reg.InsertAt(h, pos, value)
}

func (s *Synced) RemoveAt(h Handle, pos int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reg.RemoveAt(h, pos)
}

func (s *Synced) GetAt(h Handle, pos int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.GetAt(h, pos)
}

func (s *Synced) Clear(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reg.Clear(h)
}

func (s *Synced) Compare(h1, h2 Handle) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.Compare(h1, h2)
}
