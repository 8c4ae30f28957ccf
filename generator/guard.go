package generator

import "sync"

// Guard allows one outstanding generation per key.
type Guard struct {
	mu       sync.Mutex
	inFlight map[uint]struct{}
}

func NewGuard() *Guard {
	return &Guard{inFlight: make(map[uint]struct{})}
}

// TryAcquire marks key busy. It returns false if key is already busy.
func (g *Guard) TryAcquire(key uint) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.inFlight[key]; busy {
		return false
	}
	g.inFlight[key] = struct{}{}
	return true
}

// Release frees key.
func (g *Guard) Release(key uint) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inFlight, key)
}
