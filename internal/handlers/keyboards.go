package handlers

import (
	"github.com/nika-camp/campbot/core/telegram/callbacks"
	"github.com/nika-camp/campbot/core/telegram/keyboard"
	"github.com/nika-camp/campbot/internal/content"

	tele "gopkg.in/telebot.v4"
)

// Callback namespaces and tokens. Entity namespaces reuse content.Kind
// values so button data and router registration cannot drift apart.
const nsMain = "main"

const (
	tokenCancel   = "cancel"
	tokenReturn   = "return"
	tokenSessions = "sessions"
	tokenPlaces   = "places"
	tokenMoreInfo = "more_info"
)

func data(ns, token string) string {
	return callbacks.Command{Namespace: ns, Token: token}.Data()
}

// rootKeyboard is the three-item menu attached to the greeting.
func rootKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: btnSessions, Data: data(nsMain, tokenSessions)},
		{Text: btnPlaces, Data: data(nsMain, tokenPlaces)},
		{Text: btnMoreInfo, Data: data(nsMain, tokenMoreInfo)},
	})
}

// listKeyboard renders one button per entity plus a trailing return button.
// Works for an empty list as well: only the return button remains.
func listKeyboard(kind content.Kind, titles []string, slugs []string) *tele.ReplyMarkup {
	buttons := make([]keyboard.InlineBtn, 0, len(titles)+1)
	for i := range titles {
		buttons = append(buttons, keyboard.InlineBtn{
			Text: titles[i],
			Data: data(string(kind), slugs[i]),
		})
	}
	buttons = append(buttons, keyboard.InlineBtn{Text: btnReturn, Data: data(nsMain, tokenReturn)})
	return keyboard.InlineButtons(buttons)
}

// sessionKeyboard is the session detail navigation. The register link is
// shown only when a non-blank form URL is configured.
func sessionKeyboard(registerURL string) *tele.ReplyMarkup {
	var buttons []keyboard.InlineBtn
	if registerURL != "" {
		buttons = append(buttons, keyboard.InlineBtn{Text: btnRegister, URL: registerURL})
	}
	buttons = append(buttons,
		keyboard.InlineBtn{Text: btnSessionList, Data: data(string(content.KindSession), tokenReturn)},
		keyboard.InlineBtn{Text: btnToRoot, Data: data(nsMain, tokenReturn)},
	)
	return keyboard.InlineButtons(buttons)
}

// placeKeyboard is the place detail navigation.
func placeKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: btnPlaceList, Data: data(string(content.KindPlace), tokenReturn)},
		{Text: btnToRoot, Data: data(nsMain, tokenReturn)},
	})
}

// infoKeyboard is the info detail navigation. It deliberately offers only
// the way back to the info list; the list itself links back to root.
func infoKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: btnReturn, Data: data(string(content.KindInfo), tokenReturn)},
	})
}

// helpKeyboard carries the single cancel button under the help prompt.
func helpKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: btnCancel, Data: data(nsMain, tokenCancel)},
	})
}
