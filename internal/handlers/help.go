package handlers

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/nika-camp/campbot/core/logger"
	"github.com/nika-camp/campbot/core/telegram/format"
	"github.com/nika-camp/campbot/core/telegram/helpers"
	"github.com/nika-camp/campbot/core/telegram/state"

	tele "gopkg.in/telebot.v4"
)

const textHelpDelivered = "Ваше сообщение доставлено в службу поддержки. Вы так же можете написать лично:"

// Help answers /help: it shows the prompt and arms the help-request state
// so the next plain text from this chat is forwarded to support.
func (h *Handlers) Help(c tele.Context) error {
	if err := helpers.SendHTML(c, textHelpPrompt, helpKeyboard()); err != nil {
		return err
	}
	h.states.Set(state.KeyFrom(c), StateHelpRequest)
	return nil
}

// HelpForward forwards a captured help message to every configured admin
// and confirms delivery to the user with the personal contact list.
// Forwarding is best-effort per admin; one failed delivery does not block
// the rest or the confirmation. The state stays armed so follow-up
// messages reach support too, until the user cancels.
func (h *Handlers) HelpForward(c tele.Context) error {
	text := strings.TrimSpace(c.Text())
	if text == "" {
		return nil
	}

	username := ""
	if s := c.Sender(); s != nil {
		username = s.Username
	}
	forwarded := fmt.Sprintf("<strong>Пользователь @%s</strong> попросил о помощи:\n\n\"%s\"",
		format.EscapeHTML(username), format.EscapeHTML(text))

	delivered := 0
	for _, adminID := range h.admins {
		if err := h.notify(c, adminID, forwarded); err != nil {
			logger.Help.Warn("help forward failed",
				slog.String("event", "help.forward"),
				slog.Int64("admin_id", adminID),
				slog.String("err", err.Error()),
			)
			continue
		}
		delivered++
	}
	logger.Help.Info("help request forwarded",
		slog.String("event", "help.forward"),
		slog.Int("recipients", len(h.admins)),
		slog.Int("delivered", delivered),
	)

	var b strings.Builder
	b.WriteString(textHelpDelivered)
	for _, contact := range h.contacts {
		b.WriteString("\n")
		b.WriteString(format.Link(contact.Name, contact.URL))
	}
	return helpers.SendText(c, b.String(), &tele.SendOptions{
		ParseMode:             tele.ModeHTML,
		DisableWebPagePreview: true,
	})
}
