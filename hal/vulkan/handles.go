package vulkan

import (
	"sync"

	"github.com/dolthub/swiss"
)

// handleTable maps opaque hal handles to driver objects. Handles are never reused.
type handleTable[T any] struct {
	mutex   sync.RWMutex
	next    uint64
	objects *swiss.Map[uint64, T]
}

func newHandleTable[T any](capacity uint32) *handleTable[T] {
	return &handleTable[T]{
		objects: swiss.NewMap[uint64, T](capacity),
	}
}

func (t *handleTable[T]) insert(object T) uint64 {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.next++
	t.objects.Put(t.next, object)
	return t.next
}

func (t *handleTable[T]) get(handle uint64) (T, bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.objects.Get(handle)
}

// lookup resolves a list of handles, skipping any that are unknown.
func (t *handleTable[T]) lookup(handles []uint64) []T {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	objects := make([]T, 0, len(handles))
	for _, handle := range handles {
		if object, ok := t.objects.Get(handle); ok {
			objects = append(objects, object)
		}
	}
	return objects
}

func (t *handleTable[T]) remove(handle uint64) (T, bool) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	object, ok := t.objects.Get(handle)
	if ok {
		t.objects.Delete(handle)
	}
	return object, ok
}

func (t *handleTable[T]) count() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.objects.Count()
}

func handles[H ~uint64](list []H) []uint64 {
	out := make([]uint64, len(list))
	for i, h := range list {
		out[i] = uint64(h)
	}
	return out
}
