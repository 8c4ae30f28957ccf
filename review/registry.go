package review

import (
	"container/list"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// MaxSessions bounds the registry and MaxSessionsPerOwner bounds each
// owner's share of it; the least recently used session is evicted first.
const (
	MaxSessions         = 150
	MaxSessionsPerOwner = 10
)

var ErrSessionNotFound = errors.New("review: session not found")

type registryEntry struct {
	id      string
	owner   uint
	session *Session
}

// Registry holds live sessions in memory, scoped per owner. All session
// operations go through Do, which serializes them.
type Registry struct {
	mu          sync.Mutex
	items       map[string]*list.Element
	order       *list.List
	owned       map[uint]int
	maxSize     int
	maxPerOwner int
}

func NewRegistry() *Registry {
	return &Registry{
		items:       make(map[string]*list.Element),
		order:       list.New(),
		owned:       make(map[uint]int),
		maxSize:     MaxSessions,
		maxPerOwner: MaxSessionsPerOwner,
	}
}

// Add stores s for owner and returns its id. An owner at its cap loses its
// own least recently used session; otherwise a full registry evicts the
// least recently used session overall.
func (r *Registry) Add(owner uint, s *Session) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.owned[owner] >= r.maxPerOwner {
		for e := r.order.Back(); e != nil; e = e.Prev() {
			if e.Value.(*registryEntry).owner == owner {
				r.remove(e)
				break
			}
		}
	} else if r.order.Len() >= r.maxSize {
		if oldest := r.order.Back(); oldest != nil {
			r.remove(oldest)
		}
	}

	id := uuid.NewString()
	r.items[id] = r.order.PushFront(&registryEntry{id: id, owner: owner, session: s})
	r.owned[owner]++
	return id
}

func (r *Registry) remove(elem *list.Element) {
	entry := elem.Value.(*registryEntry)
	delete(r.items, entry.id)
	r.order.Remove(elem)
	if r.owned[entry.owner]--; r.owned[entry.owner] <= 0 {
		delete(r.owned, entry.owner)
	}
}

// Do runs fn on the owner's session while holding the registry lock.
func (r *Registry) Do(owner uint, id string, fn func(*Session)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	elem, ok := r.items[id]
	if !ok {
		return ErrSessionNotFound
	}
	entry := elem.Value.(*registryEntry)
	if entry.owner != owner {
		return ErrSessionNotFound
	}
	r.order.MoveToFront(elem)
	fn(entry.session)
	return nil
}

// Remove discards a session.
func (r *Registry) Remove(owner uint, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	elem, ok := r.items[id]
	if !ok || elem.Value.(*registryEntry).owner != owner {
		return ErrSessionNotFound
	}
	r.remove(elem)
	return nil
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.order.Len()
}
