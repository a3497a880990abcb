package state

import "testing"

func TestMemoryManagerLifecycle(t *testing.T) {
	m := NewMemoryManager()
	key := Key{UserID: 1, ChatID: 10}

	if m.InProgress(key) {
		t.Fatal("fresh manager reports in progress")
	}
	if got := m.Get(key); got != StateIdle {
		t.Fatalf("Get on empty = %q", got)
	}

	m.Set(key, State("help_request"))
	if !m.InProgress(key) {
		t.Fatal("Set did not activate state")
	}
	if got := m.Get(key); got != State("help_request") {
		t.Fatalf("Get = %q", got)
	}

	m.Clear(key)
	if m.InProgress(key) {
		t.Fatal("Clear did not deactivate state")
	}
}

func TestMemoryManagerSetIdleClears(t *testing.T) {
	m := NewMemoryManager()
	key := Key{UserID: 1, ChatID: 10}

	m.Set(key, State("help_request"))
	m.Set(key, StateIdle)
	if m.InProgress(key) {
		t.Fatal("setting idle should clear the entry")
	}
}

func TestMemoryManagerKeyIsolation(t *testing.T) {
	m := NewMemoryManager()
	m.Set(Key{UserID: 1, ChatID: 10}, State("help_request"))

	others := []Key{
		{UserID: 1, ChatID: 11},
		{UserID: 2, ChatID: 10},
	}
	for _, k := range others {
		if m.InProgress(k) {
			t.Errorf("state leaked to %+v", k)
		}
	}
}
