// Package handlers contains the dialog handlers: one per menu level, plus
// the help-request capture flow. Handlers receive typed callback commands
// from the router and talk to Telegram through tele.Context for the current
// chat and through the replies/notify ports for everything else.
package handlers

import (
	"github.com/nika-camp/campbot/core/telegram/helpers"
	"github.com/nika-camp/campbot/core/telegram/state"
	"github.com/nika-camp/campbot/internal/content"
	"github.com/nika-camp/campbot/internal/replies"

	tele "gopkg.in/telebot.v4"
)

// StateHelpRequest marks a conversation waiting for the user's help text.
const StateHelpRequest state.State = "help_request"

// Contact is a personal support contact offered after a help request.
type Contact struct {
	Name string
	URL  string
}

// Options wires handler dependencies.
type Options struct {
	Content  content.Provider
	General  *content.GeneralCache
	States   state.Manager
	MediaDir string
	Admins   []int64
	Contacts []Contact
}

// Handlers bundles the dialog handlers around shared dependencies.
type Handlers struct {
	content  content.Provider
	general  *content.GeneralCache
	states   state.Manager
	mediaDir string
	admins   []int64
	contacts []Contact

	// Indirections for tests; production values talk to the live bot.
	messenger func(c tele.Context) replies.Messenger
	notify    func(c tele.Context, chatID int64, text string) error
}

// New builds the handler set.
func New(opts Options) *Handlers {
	return &Handlers{
		content:  opts.Content,
		general:  opts.General,
		states:   opts.States,
		mediaDir: opts.MediaDir,
		admins:   opts.Admins,
		contacts: opts.Contacts,
		messenger: func(c tele.Context) replies.Messenger {
			return replies.NewTelebot(c.Bot().(*tele.Bot))
		},
		notify: func(c tele.Context, chatID int64, text string) error {
			return helpers.SendToChat(c, chatID, text, &tele.SendOptions{
				ParseMode:             tele.ModeHTML,
				DisableWebPagePreview: true,
			})
		},
	}
}

// origin extracts the triggering message reference from a callback update.
func origin(c tele.Context) replies.Origin {
	var o replies.Origin
	if msg := c.Message(); msg != nil {
		o.MessageID = msg.ID
		if msg.Chat != nil {
			o.ChatID = msg.Chat.ID
		}
	}
	return o
}

// replace runs the edit-or-replace protocol against the triggering message.
func (h *Handlers) replace(c tele.Context, text string, markup *tele.ReplyMarkup, trailing int) error {
	return replies.Replace(h.messenger(c), origin(c), text, markup, trailing)
}
