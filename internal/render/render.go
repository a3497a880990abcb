// Package render turns content entities into Telegram HTML text.
// It is purely functional: no lookups, no "not found" formatting.
package render

import (
	"strings"

	"github.com/nika-camp/campbot/core/telegram/format"
	"github.com/nika-camp/campbot/internal/content"
)

const dateLayout = "02.01.2006"

// Session renders the session detail text. Optional sections are omitted
// entirely when the source field is absent.
func Session(s *content.Session) string {
	var b strings.Builder
	b.WriteString("🏕️ Смена ")
	b.WriteString(format.Bold("«" + s.Title + "»"))

	if s.PlaceTitle != nil {
		b.WriteString("\n\n🗺️ Место проведения: ")
		b.WriteString(format.Bold(*s.PlaceTitle))
	}

	if s.StartDate != nil && s.EndDate != nil {
		b.WriteString("\n📆 Даты: ")
		b.WriteString(format.Bold(s.StartDate.Format(dateLayout) + "–" + s.EndDate.Format(dateLayout)))
	}

	if s.Description != nil {
		b.WriteString("\n\n")
		b.WriteString(format.EscapeHTML(*s.Description))
	}

	return b.String()
}

// Place renders the venue detail text. Coordinates never appear here; they
// travel as a separate location message.
func Place(p *content.Place) string {
	var b strings.Builder
	b.WriteString(format.Bold("«" + p.Title + "»"))

	if p.Description != nil {
		b.WriteString("\n\n")
		b.WriteString(format.EscapeHTML(*p.Description))
	}

	return b.String()
}

// Info renders an extra-info article body.
func Info(i *content.OptionalInfo) string {
	return format.EscapeHTML(i.Text)
}
