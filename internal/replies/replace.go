// Package replies implements the edit-or-replace protocol that keeps menu
// navigation seamless across text, photo, document and location messages.
//
// Telegram only allows in-place text edits of text messages. Navigating
// "back" from a detail view that was sent as a photo or location therefore
// cannot edit; instead the trailing bot messages are removed and a fresh
// text message is sent.
package replies

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/nika-camp/campbot/core/logger"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// Origin identifies the message that triggered a callback.
type Origin struct {
	ChatID    int64
	MessageID int
}

// Messenger is the outbound slice of the gateway the strategy needs.
// Implementations must return *tele.Error for Telegram API rejections so
// NotEditable can distinguish them from transport failures.
type Messenger interface {
	EditText(chatID int64, messageID int, text string, markup *tele.ReplyMarkup) error
	DeleteMessage(chatID int64, messageID int) error
	SendText(chatID int64, text string, markup *tele.ReplyMarkup) error
}

// NotEditable reports whether an edit was rejected because the target
// message cannot carry a text edit (photo, document, location, or already
// deleted). Telegram answers these with a 400; transport and server-side
// errors keep propagating.
func NotEditable(err error) bool {
	var apiErr *tele.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == 400
	}
	return false
}

// Replace attempts an in-place edit of the origin message. When the origin
// turns out to be not editable it removes the `trailing` most recent
// messages ending at the origin (inclusive, contiguous ids going backward,
// per-message failures ignored) and sends the text as a fresh message.
// The usual trailing count is 1; place detail views leave a location
// message behind the text and pass 2.
func Replace(m Messenger, origin Origin, text string, markup *tele.ReplyMarkup, trailing int) error {
	err := m.EditText(origin.ChatID, origin.MessageID, text, markup)
	if err == nil {
		return nil
	}
	if !NotEditable(err) {
		return fmt.Errorf("edit message %d: %w", origin.MessageID, err)
	}

	if trailing < 1 {
		trailing = 1
	}
	for id := origin.MessageID - trailing + 1; id <= origin.MessageID; id++ {
		if delErr := m.DeleteMessage(origin.ChatID, id); delErr != nil {
			// The message may already be gone; removal is best-effort.
			logger.TG.Warn("replace cleanup failed",
				slog.String("event", "replace.delete"),
				slog.Int64("chat_id", origin.ChatID),
				slog.Int("message_id", id),
				slog.String("err", delErr.Error()),
			)
		}
	}

	if sendErr := m.SendText(origin.ChatID, text, markup); sendErr != nil {
		return fmt.Errorf("send replacement: %w", sendErr)
	}
	return nil
}

// botMessenger adapts *tele.Bot to the Messenger port.
type botMessenger struct {
	bot *tele.Bot
}

// NewTelebot wraps a running bot instance.
func NewTelebot(bot *tele.Bot) Messenger {
	return botMessenger{bot: bot}
}

func storedMessage(chatID int64, messageID int) tele.StoredMessage {
	return tele.StoredMessage{
		MessageID: strconv.Itoa(messageID),
		ChatID:    chatID,
	}
}

func (b botMessenger) EditText(chatID int64, messageID int, text string, markup *tele.ReplyMarkup) error {
	msg := storedMessage(chatID, messageID)
	_, err := b.bot.Edit(msg, text, &tele.SendOptions{ParseMode: tele.ModeHTML, ReplyMarkup: markup})
	return err
}

func (b botMessenger) DeleteMessage(chatID int64, messageID int) error {
	msg := storedMessage(chatID, messageID)
	return b.bot.Delete(msg)
}

func (b botMessenger) SendText(chatID int64, text string, markup *tele.ReplyMarkup) error {
	_, err := b.bot.Send(tele.ChatID(chatID), text, &tele.SendOptions{ParseMode: tele.ModeHTML, ReplyMarkup: markup})
	return err
}
