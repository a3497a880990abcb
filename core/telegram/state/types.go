package state

import tele "gopkg.in/telebot.v4"

// State identifies a finite-state-machine step used in conversations.
type State string

const (
	// StateIdle indicates there is no active conversation with the user.
	StateIdle State = "idle"
)

// Key addresses a single conversation: one user inside one chat.
// The same user talking to the bot in two chats holds two independent states.
type Key struct {
	UserID int64
	ChatID int64
}

// KeyFrom extracts the conversation key from a Telebot context.
func KeyFrom(c tele.Context) Key {
	var k Key
	if u := c.Sender(); u != nil {
		k.UserID = u.ID
	}
	if ch := c.Chat(); ch != nil {
		k.ChatID = ch.ID
	}
	return k
}

// Manager orchestrates per-conversation dialog state transitions.
// A conversation holds at most one active state at a time; writes are
// last-writer-wins since a user has at most one in-flight interaction.
type Manager interface {
	Set(key Key, st State)
	Get(key Key) State
	Clear(key Key)

	InProgress(key Key) bool
	ManagerHandler(c tele.Context) error
}
