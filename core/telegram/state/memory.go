package state

import (
	"sync"

	"github.com/nika-camp/campbot/core/logger"
	tghelpers "github.com/nika-camp/campbot/core/telegram/helpers"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

type memoryManager struct {
	mu     sync.RWMutex
	states map[Key]State
}

// NewMemoryManager constructs an in-memory Manager implementation.
// State is transient and does not survive a process restart.
func NewMemoryManager() Manager {
	return &memoryManager{
		states: make(map[Key]State),
	}
}

// Set updates the state for a conversation, creating it if necessary.
func (m *memoryManager) Set(key Key, st State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if st == StateIdle {
		delete(m.states, key)
		return
	}
	m.states[key] = st
}

// Get returns the current state of a conversation, or StateIdle if none exists.
func (m *memoryManager) Get(key Key) State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if st, ok := m.states[key]; ok {
		return st
	}
	return StateIdle
}

// Clear removes the state for a conversation.
func (m *memoryManager) Clear(key Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, key)
}

// InProgress reports whether the conversation currently has an active state.
func (m *memoryManager) InProgress(key Key) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.states[key]
	return ok && st != StateIdle
}

// ManagerHandler executes the handler function registered for the
// conversation's current state, if any.
func (m *memoryManager) ManagerHandler(c tele.Context) error {
	key := KeyFrom(c)
	current := m.Get(key)
	ctx := tghelpers.BuildContext(c)
	logger.Debug(ctx, "tg", "fsm.manager",
		slog.String("status", "ok"),
		slog.Int64("user_id", key.UserID),
		slog.Int64("chat_id", key.ChatID),
		slog.String("state", string(current)),
	)

	if handler, ok := fsmHandlers[current]; ok {
		return handler(c)
	}
	return nil
}
