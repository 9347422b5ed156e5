package resilience

import "sync"

// SingleFlight deduplicates concurrent calls for the same key. Callers arriving
// while a call is in flight wait for it and share its result.
type SingleFlight[V any] struct {
	mu    sync.Mutex
	calls map[string]*call[V]
}

type call[V any] struct {
	wg  sync.WaitGroup
	val V
	err error
}

// Do runs fn once per in-flight key. The boolean reports whether the result was
// shared with another caller.
func (g *SingleFlight[V]) Do(key string, fn func() (V, error)) (V, error, bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*call[V])
	}

	if c, ok := g.calls[key]; ok {
		g.mu.Unlock()
		c.wg.Wait()
		return c.val, c.err, true
	}

	c := &call[V]{}
	c.wg.Add(1)
	g.calls[key] = c
	g.mu.Unlock()

	defer func() {
		c.wg.Done()

		g.mu.Lock()
		delete(g.calls, key)
		g.mu.Unlock()
	}()

	c.val, c.err = fn()
	return c.val, c.err, false
}
