package service

import "sync"

// Setup states exposed by the gate.
const (
	SetupReady   = "ready"
	SetupRunning = "running"
	SetupFailed  = "failed"
)

// SetupGate tracks the one-shot provider bootstrap. Submissions are refused
// while it is running and after it has failed; providers that need no
// bootstrap leave the gate in its ready state.
type SetupGate struct {
	mu       sync.RWMutex
	status   string
	message  string
	lastLine string
}

// NewSetupGate creates a gate that starts ready.
func NewSetupGate() *SetupGate {
	return &SetupGate{status: SetupReady}
}

// Start marks bootstrap as running.
func (g *SetupGate) Start(message string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.status = SetupRunning
	g.message = message
	g.lastLine = ""
}

// Progress records the latest bootstrap progress line.
func (g *SetupGate) Progress(line string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lastLine = line
}

// Finish resolves the bootstrap with its outcome.
func (g *SetupGate) Finish(ok bool, message string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if ok {
		g.status = SetupReady
	} else {
		g.status = SetupFailed
	}
	g.message = message
}

// Status returns the current state, its message and the latest progress line.
func (g *SetupGate) Status() (status, message, lastLine string) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.status, g.message, g.lastLine
}
