package utils

import "sync"

// Guard is a reader/writer lock that turns into a no-op when Enabled is false, for owners whose
// caller already serializes access.
type Guard struct {
	Enabled bool
	lock    sync.RWMutex
}

func (g *Guard) Lock() {
	if g.Enabled {
		g.lock.Lock()
	}
}

func (g *Guard) Unlock() {
	if g.Enabled {
		g.lock.Unlock()
	}
}

func (g *Guard) RLock() {
	if g.Enabled {
		g.lock.RLock()
	}
}

func (g *Guard) RUnlock() {
	if g.Enabled {
		g.lock.RUnlock()
	}
}
