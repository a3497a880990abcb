package handlers

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/nika-camp/campbot/core/logger"
	"github.com/nika-camp/campbot/core/telegram/callbacks"
	"github.com/nika-camp/campbot/core/telegram/helpers"
	"github.com/nika-camp/campbot/internal/content"
	"github.com/nika-camp/campbot/internal/render"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// Sessions handles the `s` callback namespace: the session list and the
// session detail views.
func (h *Handlers) Sessions(c tele.Context) error {
	cmd, ok := callbacks.FromContext(c)
	if !ok {
		return nil
	}
	ctx := helpers.BuildContext(c)

	if cmd.Token == tokenReturn {
		text, markup, err := h.sessionListView(ctx)
		if err != nil {
			return err
		}
		return h.replace(c, text, markup, 1)
	}

	s, err := h.content.SessionBySlug(ctx, cmd.Token)
	if errors.Is(err, content.ErrNotFound) {
		return h.replace(c, textSessionNotFound, sessionKeyboard(""), 1)
	}
	if err != nil {
		return err
	}

	markup := sessionKeyboard(s.RegistrationURL())

	if s.HasImage() {
		// A photo cannot replace a text message in place: drop the trigger
		// and send the poster with the detail text as its caption.
		h.deleteTrigger(c)
		photo := &tele.Photo{
			File:    tele.FromDisk(filepath.Join(h.mediaDir, *s.Image)),
			Caption: render.Session(s),
		}
		return c.Send(photo, &tele.SendOptions{ParseMode: tele.ModeHTML, ReplyMarkup: markup})
	}

	return h.replace(c, render.Session(s), markup, 1)
}

// sessionListView builds the session list rendering. An empty list keeps a
// lone return button so the user always has a way back.
func (h *Handlers) sessionListView(ctx context.Context) (string, *tele.ReplyMarkup, error) {
	sessions, err := h.content.Sessions(ctx)
	if err != nil {
		return "", nil, err
	}
	if len(sessions) == 0 {
		return textSessionsEmpty, listKeyboard(content.KindSession, nil, nil), nil
	}
	titles := make([]string, len(sessions))
	slugs := make([]string, len(sessions))
	for i, s := range sessions {
		titles[i] = s.Title
		slugs[i] = s.Slug
	}
	return textSessionsList, listKeyboard(content.KindSession, titles, slugs), nil
}

// deleteTrigger removes the callback's message; the message may already be
// gone, so failures are only logged.
func (h *Handlers) deleteTrigger(c tele.Context) {
	if err := c.Delete(); err != nil {
		logger.TG.Warn("trigger delete failed",
			slog.String("event", "trigger.delete"),
			slog.String("err", err.Error()),
		)
	}
}
