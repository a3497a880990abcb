package handlers

import (
	"github.com/nika-camp/campbot/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// Start answers /start with the cached greeting and the root menu.
func (h *Handlers) Start(c tele.Context) error {
	return helpers.SendHTML(c, h.general.StartText(), rootKeyboard())
}

// Reload re-reads the general info singleton. Content editors trigger it
// after changing the greeting; until then stale reads are fine.
func (h *Handlers) Reload(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	if err := h.general.Refresh(ctx); err != nil {
		return err
	}
	return helpers.SendText(c, textReloadDone)
}
