package handlers

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/nika-camp/campbot/core/telegram/callbacks"
	"github.com/nika-camp/campbot/core/telegram/helpers"
	"github.com/nika-camp/campbot/internal/content"
	"github.com/nika-camp/campbot/internal/render"

	tele "gopkg.in/telebot.v4"
)

// Infos handles the `i` callback namespace: the article list and article
// detail views, including attached photos and documents.
func (h *Handlers) Infos(c tele.Context) error {
	cmd, ok := callbacks.FromContext(c)
	if !ok {
		return nil
	}
	ctx := helpers.BuildContext(c)

	if cmd.Token == tokenReturn {
		text, markup, err := h.infoListView(ctx)
		if err != nil {
			return err
		}
		return h.replace(c, text, markup, 1)
	}

	info, err := h.content.InfoBySlug(ctx, cmd.Token)
	if errors.Is(err, content.ErrNotFound) {
		return h.replace(c, textInfoNotFound, infoKeyboard(), 1)
	}
	if err != nil {
		return err
	}

	markup := infoKeyboard()
	opts := &tele.SendOptions{ParseMode: tele.ModeHTML, ReplyMarkup: markup}

	if info.HasFile() {
		path := filepath.Join(h.mediaDir, *info.File)
		h.deleteTrigger(c)
		if info.IsPhoto {
			photo := &tele.Photo{
				File:    tele.FromDisk(path),
				Caption: render.Info(info),
			}
			return c.Send(photo, opts)
		}
		doc := &tele.Document{
			File:     tele.FromDisk(path),
			Caption:  render.Info(info),
			FileName: filepath.Base(path),
		}
		return c.Send(doc, opts)
	}

	return h.replace(c, render.Info(info), markup, 1)
}

// infoListView builds the article list rendering.
func (h *Handlers) infoListView(ctx context.Context) (string, *tele.ReplyMarkup, error) {
	infos, err := h.content.Infos(ctx)
	if err != nil {
		return "", nil, err
	}
	if len(infos) == 0 {
		return textInfosEmpty, listKeyboard(content.KindInfo, nil, nil), nil
	}
	titles := make([]string, len(infos))
	slugs := make([]string, len(infos))
	for i, inf := range infos {
		titles[i] = inf.Title
		slugs[i] = inf.Slug
	}
	return textInfosList, listKeyboard(content.KindInfo, titles, slugs), nil
}
