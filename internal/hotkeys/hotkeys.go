package hotkeys

import (
	"context"
	"log"
	"sync"
)

// Callback is called on the UI thread when the hotkey with the given id fires.
type Callback func(id int)

// Manager is the single consumer of fired hotkey ids. It hands every id to
// the dispatcher so callbacks run on the UI thread, never on the OS or
// listener goroutine that produced the event.
type Manager struct {
	events    <-chan int
	dispatch  func(func())
	callbacks map[int]Callback
	mu        sync.Mutex
	running   bool
	stop      chan struct{}
	done      chan struct{}
}

// NewManager creates a manager reading events and running callbacks through
// dispatch. A nil dispatch runs callbacks inline on the manager goroutine.
func NewManager(events <-chan int, dispatch func(func())) *Manager {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &Manager{
		events:    events,
		dispatch:  dispatch,
		callbacks: make(map[int]Callback),
	}
}

// SetCallback sets the callback for a hotkey id. A nil callback removes it.
func (m *Manager) SetCallback(id int, cb Callback) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cb == nil {
		delete(m.callbacks, id)
		return
	}
	m.callbacks[id] = cb
}

// Start begins listening for fired hotkeys until ctx is done or Stop is
// called. Starting a running manager does nothing.
func (m *Manager) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return
	}
	m.running = true
	m.stop = make(chan struct{})
	m.done = make(chan struct{})
	go m.run(ctx, m.stop, m.done)
	log.Println("Hotkey listener started")
}

func (m *Manager) run(ctx context.Context, stop <-chan struct{}, done chan struct{}) {
	defer close(done)
	for {
		select {
		case id, ok := <-m.events:
			if !ok {
				m.exited(done)
				return
			}
			m.dispatch(func() { m.handleHotkey(id) })
		case <-stop:
			return
		case <-ctx.Done():
			m.exited(done)
			return
		}
	}
}

// exited marks the manager stopped when the listener ends on its own, so a
// later Start runs again. A newer listener started since is left alone.
func (m *Manager) exited(done chan struct{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done == done {
		m.running = false
	}
}

// Stop stops listening and waits for the listener goroutine to exit.
// Callbacks already handed to the dispatcher may still run.
func (m *Manager) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	close(m.stop)
	done := m.done
	m.mu.Unlock()

	<-done
	log.Println("Hotkey listener stopped")
}

// IsRunning returns whether the hotkey listener is active
func (m *Manager) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

func (m *Manager) handleHotkey(id int) {
	m.mu.Lock()
	cb := m.callbacks[id]
	m.mu.Unlock()

	if cb == nil {
		log.Printf("Unknown hotkey ID: %d", id)
		return
	}
	cb(id)
}
