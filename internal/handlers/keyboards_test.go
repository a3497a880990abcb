package handlers

import (
	"testing"

	"github.com/nika-camp/campbot/core/telegram/keyboard"

	tele "gopkg.in/telebot.v4"
)

func flattenButtons(markup *tele.ReplyMarkup) []tele.InlineButton {
	return keyboard.Buttons(markup)
}

func TestRootKeyboard(t *testing.T) {
	buttons := flattenButtons(rootKeyboard())
	want := []struct {
		text string
		data string
	}{
		{btnSessions, "main.sessions"},
		{btnPlaces, "main.places"},
		{btnMoreInfo, "main.more_info"},
	}
	if len(buttons) != len(want) {
		t.Fatalf("buttons = %+v", buttons)
	}
	for i, w := range want {
		if buttons[i].Text != w.text || buttons[i].Data != w.data {
			t.Errorf("button %d = %+v, want %+v", i, buttons[i], w)
		}
	}
}

func TestListKeyboardAppendsReturn(t *testing.T) {
	markup := listKeyboard("s", []string{"Лето", "Зима"}, []string{"summer", "winter"})
	buttons := flattenButtons(markup)

	if len(buttons) != 3 {
		t.Fatalf("buttons = %+v", buttons)
	}
	if buttons[0].Data != "s.summer" || buttons[1].Data != "s.winter" {
		t.Errorf("entity buttons = %+v", buttons[:2])
	}
	last := buttons[len(buttons)-1]
	if last.Text != btnReturn || last.Data != "main.return" {
		t.Errorf("trailing button = %+v", last)
	}
}

func TestListKeyboardEmptyKeepsReturn(t *testing.T) {
	buttons := flattenButtons(listKeyboard("i", nil, nil))
	if len(buttons) != 1 || buttons[0].Data != "main.return" {
		t.Fatalf("buttons = %+v", buttons)
	}
}

func TestSessionKeyboardRegisterLink(t *testing.T) {
	with := flattenButtons(sessionKeyboard("https://forms.example.org/x"))
	if len(with) != 3 || with[0].Text != btnRegister || with[0].URL == "" {
		t.Fatalf("buttons = %+v", with)
	}
	if with[0].Data != "" {
		t.Error("URL button must not carry callback data")
	}
	if with[1].Data != "s.return" || with[2].Data != "main.return" {
		t.Errorf("nav buttons = %+v", with[1:])
	}

	without := flattenButtons(sessionKeyboard(""))
	if len(without) != 2 {
		t.Fatalf("buttons without url = %+v", without)
	}
	for _, b := range without {
		if b.Text == btnRegister {
			t.Error("register button present without a form url")
		}
	}
}

func TestPlaceKeyboard(t *testing.T) {
	buttons := flattenButtons(placeKeyboard())
	if len(buttons) != 2 || buttons[0].Data != "p.return" || buttons[1].Data != "main.return" {
		t.Fatalf("buttons = %+v", buttons)
	}
}

func TestInfoKeyboard(t *testing.T) {
	buttons := flattenButtons(infoKeyboard())
	if len(buttons) != 1 || buttons[0].Data != "i.return" {
		t.Fatalf("buttons = %+v", buttons)
	}
}

func TestHelpKeyboard(t *testing.T) {
	buttons := flattenButtons(helpKeyboard())
	if len(buttons) != 1 || buttons[0].Data != "main.cancel" {
		t.Fatalf("buttons = %+v", buttons)
	}
}
