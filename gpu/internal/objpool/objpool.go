// Package objpool is a generational slot map. Handles stay unique for the life of the pool:
// freeing a slot bumps its generation so stale handles are rejected instead of aliasing the
// next occupant.
package objpool

import (
	"sync"

	"github.com/cockroachdb/errors"
)

var ErrStaleHandle = errors.New("handle does not refer to a live object")

// Handle identifies an object in a Pool. The zero Handle is never issued.
type Handle struct {
	index      uint32
	generation uint32
}

func (h Handle) Index() uint32      { return h.index }
func (h Handle) Generation() uint32 { return h.generation }
func (h Handle) IsValid() bool      { return h.generation != 0 }

type slot[T any] struct {
	object     *T
	generation uint32
}

// Pool owns objects of type T and hands out Handles to them. It is safe for concurrent use.
type Pool[T any] struct {
	mutex  sync.Mutex
	slots  []slot[T]
	vacant []uint32
	live   int
}

func New[T any](capacity int) *Pool[T] {
	return &Pool[T]{
		slots: make([]slot[T], 0, capacity),
	}
}

// Insert stores object and returns the Handle that now identifies it.
func (p *Pool[T]) Insert(object *T) Handle {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	var index uint32
	if len(p.vacant) > 0 {
		index = p.vacant[len(p.vacant)-1]
		p.vacant = p.vacant[:len(p.vacant)-1]
	} else {
		index = uint32(len(p.slots))
		p.slots = append(p.slots, slot[T]{})
	}

	s := &p.slots[index]
	s.generation++
	if s.generation == 0 {
		s.generation = 1
	}
	s.object = object
	p.live++

	return Handle{index: index, generation: s.generation}
}

func (p *Pool[T]) Get(handle Handle) (*T, bool) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	s, ok := p.slot(handle)
	if !ok {
		return nil, false
	}
	return s.object, true
}

// Remove releases the slot behind handle and returns the object it held.
func (p *Pool[T]) Remove(handle Handle) (*T, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	s, ok := p.slot(handle)
	if !ok {
		return nil, errors.Wrapf(ErrStaleHandle, "index %d generation %d", handle.index, handle.generation)
	}

	object := s.object
	s.object = nil
	p.vacant = append(p.vacant, handle.index)
	p.live--
	return object, nil
}

func (p *Pool[T]) slot(handle Handle) (*slot[T], bool) {
	if !handle.IsValid() || int(handle.index) >= len(p.slots) {
		return nil, false
	}
	s := &p.slots[handle.index]
	if s.object == nil || s.generation != handle.generation {
		return nil, false
	}
	return s, true
}

func (p *Pool[T]) Len() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.live
}

// Drain removes every live object and returns them in slot order.
func (p *Pool[T]) Drain() []*T {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	objects := make([]*T, 0, p.live)
	for i := range p.slots {
		s := &p.slots[i]
		if s.object == nil {
			continue
		}
		objects = append(objects, s.object)
		s.object = nil
		p.vacant = append(p.vacant, uint32(i))
	}
	p.live = 0
	return objects
}

// Each visits live objects in slot order until fn returns true.
func (p *Pool[T]) Each(fn func(handle Handle, object *T) (stop bool)) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	for i := range p.slots {
		s := &p.slots[i]
		if s.object == nil {
			continue
		}
		if fn(Handle{index: uint32(i), generation: s.generation}, s.object) {
			return
		}
	}
}
