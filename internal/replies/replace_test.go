package replies

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/nika-camp/campbot/core/logger"

	tele "gopkg.in/telebot.v4"
)

func TestMain(m *testing.M) {
	_ = logger.InitLogger(nil)
	os.Exit(m.Run())
}

type call struct {
	op        string
	chatID    int64
	messageID int
	text      string
}

type fakeMessenger struct {
	calls   []call
	editErr error
	delErr  error
	sendErr error
}

func (f *fakeMessenger) EditText(chatID int64, messageID int, text string, markup *tele.ReplyMarkup) error {
	f.calls = append(f.calls, call{op: "edit", chatID: chatID, messageID: messageID, text: text})
	return f.editErr
}

func (f *fakeMessenger) DeleteMessage(chatID int64, messageID int) error {
	f.calls = append(f.calls, call{op: "delete", chatID: chatID, messageID: messageID})
	return f.delErr
}

func (f *fakeMessenger) SendText(chatID int64, text string, markup *tele.ReplyMarkup) error {
	f.calls = append(f.calls, call{op: "send", chatID: chatID, text: text})
	return f.sendErr
}

func notEditableErr() error {
	return &tele.Error{Code: 400, Description: "Bad Request: there is no text in the message to edit"}
}

func TestReplaceEditsInPlace(t *testing.T) {
	m := &fakeMessenger{}
	origin := Origin{ChatID: 5, MessageID: 42}

	if err := Replace(m, origin, "hello", nil, 1); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if len(m.calls) != 1 || m.calls[0].op != "edit" {
		t.Fatalf("calls = %+v, want single edit", m.calls)
	}
	if m.calls[0].messageID != 42 || m.calls[0].chatID != 5 {
		t.Errorf("edit targeted %+v", m.calls[0])
	}
}

func TestReplaceFallsBackToDeleteAndSend(t *testing.T) {
	m := &fakeMessenger{editErr: notEditableErr()}
	origin := Origin{ChatID: 5, MessageID: 42}

	if err := Replace(m, origin, "hello", nil, 1); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	want := []call{
		{op: "edit", chatID: 5, messageID: 42, text: "hello"},
		{op: "delete", chatID: 5, messageID: 42},
		{op: "send", chatID: 5, text: "hello"},
	}
	if len(m.calls) != len(want) {
		t.Fatalf("calls = %+v", m.calls)
	}
	for i := range want {
		if m.calls[i] != want[i] {
			t.Errorf("call %d = %+v, want %+v", i, m.calls[i], want[i])
		}
	}
}

func TestReplaceDeletesTrailingRange(t *testing.T) {
	m := &fakeMessenger{editErr: notEditableErr()}
	origin := Origin{ChatID: 5, MessageID: 42}

	if err := Replace(m, origin, "hello", nil, 2); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	var deleted []int
	for _, c := range m.calls {
		if c.op == "delete" {
			deleted = append(deleted, c.messageID)
		}
	}
	if len(deleted) != 2 || deleted[0] != 41 || deleted[1] != 42 {
		t.Errorf("deleted = %v, want [41 42]", deleted)
	}
}

func TestReplaceDeleteFailureStillSends(t *testing.T) {
	m := &fakeMessenger{
		editErr: notEditableErr(),
		delErr:  fmt.Errorf("message to delete not found"),
	}

	if err := Replace(m, Origin{ChatID: 5, MessageID: 42}, "hello", nil, 1); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	last := m.calls[len(m.calls)-1]
	if last.op != "send" {
		t.Errorf("last call = %+v, want send", last)
	}
}

func TestReplacePropagatesOtherEditErrors(t *testing.T) {
	base := errors.New("connection reset")
	m := &fakeMessenger{editErr: base}

	err := Replace(m, Origin{ChatID: 5, MessageID: 42}, "hello", nil, 1)
	if !errors.Is(err, base) {
		t.Fatalf("Replace err = %v, want wrapped %v", err, base)
	}
	for _, c := range m.calls {
		if c.op != "edit" {
			t.Errorf("unexpected call after failed edit: %+v", c)
		}
	}
}

func TestNotEditable(t *testing.T) {
	if !NotEditable(notEditableErr()) {
		t.Error("400 not recognized")
	}
	if !NotEditable(fmt.Errorf("wrap: %w", notEditableErr())) {
		t.Error("wrapped 400 not recognized")
	}
	if NotEditable(&tele.Error{Code: 429}) {
		t.Error("429 misclassified")
	}
	if NotEditable(errors.New("plain")) {
		t.Error("plain error misclassified")
	}
}
