package testutil

import "sync"

// Gate blocks task bodies until released, so tests can pin down exactly which
// tasks are in flight when a lifecycle transition happens.
type Gate struct {
	once sync.Once
	ch   chan struct{}
}

// NewGate creates a closed gate.
func NewGate() *Gate {
	return &Gate{ch: make(chan struct{})}
}

// Wait blocks until the gate is released.
func (g *Gate) Wait() {
	<-g.ch
}

// Release opens the gate; safe to call more than once.
func (g *Gate) Release() {
	g.once.Do(func() { close(g.ch) })
}
