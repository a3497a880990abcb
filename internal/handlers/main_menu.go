package handlers

import (
	"github.com/nika-camp/campbot/core/telegram/callbacks"
	"github.com/nika-camp/campbot/core/telegram/helpers"
	"github.com/nika-camp/campbot/core/telegram/state"

	tele "gopkg.in/telebot.v4"
)

// MainMenu handles the `main` callback namespace: navigation back to the
// root menu and entry into the three entity lists.
func (h *Handlers) MainMenu(c tele.Context) error {
	cmd, ok := callbacks.FromContext(c)
	if !ok {
		return nil
	}
	ctx := helpers.BuildContext(c)

	switch cmd.Token {
	case tokenCancel:
		err := h.replace(c, h.general.StartText(), rootKeyboard(), 1)
		h.states.Clear(state.KeyFrom(c))
		return err

	case tokenReturn:
		return h.replace(c, h.general.StartText(), rootKeyboard(), 1)

	case tokenSessions:
		text, markup, err := h.sessionListView(ctx)
		if err != nil {
			return err
		}
		return helpers.EditHTML(c, text, markup)

	case tokenPlaces:
		text, markup, err := h.placeListView(ctx)
		if err != nil {
			return err
		}
		return helpers.EditHTML(c, text, markup)

	case tokenMoreInfo:
		text, markup, err := h.infoListView(ctx)
		if err != nil {
			return err
		}
		return helpers.EditHTML(c, text, markup)
	}

	// Unknown token: dropped, same as an unknown namespace.
	return nil
}
