package handlers

import (
	"context"
	"errors"

	"github.com/nika-camp/campbot/core/telegram/callbacks"
	"github.com/nika-camp/campbot/core/telegram/helpers"
	"github.com/nika-camp/campbot/internal/content"
	"github.com/nika-camp/campbot/internal/render"

	tele "gopkg.in/telebot.v4"
)

// Places handles the `p` callback namespace. A place with coordinates is
// rendered as two messages: the text replaces the trigger, then a location
// message carries the navigation keyboard. Returning from such a view has
// to clean up both.
func (h *Handlers) Places(c tele.Context) error {
	cmd, ok := callbacks.FromContext(c)
	if !ok {
		return nil
	}
	ctx := helpers.BuildContext(c)

	if cmd.Token == tokenReturn {
		trailing := 1
		if msg := c.Message(); msg != nil && msg.Location != nil {
			trailing = 2
		}
		text, markup, err := h.placeListView(ctx)
		if err != nil {
			return err
		}
		return h.replace(c, text, markup, trailing)
	}

	p, err := h.content.PlaceBySlug(ctx, cmd.Token)
	if errors.Is(err, content.ErrNotFound) {
		return h.replace(c, textPlaceNotFound, placeKeyboard(), 1)
	}
	if err != nil {
		return err
	}

	if p.HasCoordinates() {
		if err := h.replace(c, render.Place(p), nil, 1); err != nil {
			return err
		}
		loc := &tele.Location{
			Lat: float32(*p.Latitude),
			Lng: float32(*p.Longitude),
		}
		return c.Send(loc, placeKeyboard())
	}

	return h.replace(c, render.Place(p), placeKeyboard(), 1)
}

// placeListView builds the place list rendering.
func (h *Handlers) placeListView(ctx context.Context) (string, *tele.ReplyMarkup, error) {
	places, err := h.content.Places(ctx)
	if err != nil {
		return "", nil, err
	}
	if len(places) == 0 {
		return textPlacesEmpty, listKeyboard(content.KindPlace, nil, nil), nil
	}
	titles := make([]string, len(places))
	slugs := make([]string, len(places))
	for i, p := range places {
		titles[i] = p.Title
		slugs[i] = p.Slug
	}
	return textPlacesList, listKeyboard(content.KindPlace, titles, slugs), nil
}
