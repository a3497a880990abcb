package content

import (
	"strings"
	"time"
)

// Kind names a menu entity family. It doubles as the callback namespace
// used on inline buttons, so values are deliberately short.
type Kind string

const (
	KindSession Kind = "s"
	KindPlace   Kind = "p"
	KindInfo    Kind = "i"
)

// GeneralInfo is a singleton holding the root greeting text.
type GeneralInfo struct {
	ID        int64  `db:"id"`
	StartText string `db:"start_text"`
}

// Place is a venue where camp sessions are held. Coordinates are optional;
// when both are present the detail view sends a separate location message.
type Place struct {
	ID          int64    `db:"id"`
	Title       string   `db:"title"`
	Slug        string   `db:"slug"`
	Description *string  `db:"description"`
	Latitude    *float64 `db:"latitude"`
	Longitude   *float64 `db:"longitude"`
}

// HasCoordinates reports whether the place can be shown on a map.
func (p *Place) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// Session is a single camp session. Image is a path below the media dir;
// Notes are visible to admins only and never rendered to users.
type Session struct {
	ID          int64      `db:"id"`
	Title       string     `db:"title"`
	Slug        string     `db:"slug"`
	FormURL     *string    `db:"form_url"`
	PlaceID     *int64     `db:"place_id"`
	PlaceTitle  *string    `db:"place_title"`
	Image       *string    `db:"image"`
	Description *string    `db:"description"`
	StartDate   *time.Time `db:"start_date"`
	EndDate     *time.Time `db:"end_date"`
	Notes       *string    `db:"notes"`
}

// HasImage reports whether the session has a poster to send as a photo.
func (s *Session) HasImage() bool {
	return s.Image != nil && *s.Image != ""
}

// RegistrationURL returns the sign-up link, or "" when none is configured.
// Blank-only values count as absent.
func (s *Session) RegistrationURL() string {
	if s.FormURL == nil {
		return ""
	}
	return strings.TrimSpace(*s.FormURL)
}

// OptionalInfo is a standalone article shown in the "more info" menu.
// IsPhoto selects between photo and document render modes for File.
type OptionalInfo struct {
	ID      int64   `db:"id"`
	Title   string  `db:"title"`
	Slug    string  `db:"slug"`
	Text    string  `db:"text"`
	File    *string `db:"file"`
	IsPhoto bool    `db:"is_photo"`
}

// HasFile reports whether the article carries an attachment.
func (i *OptionalInfo) HasFile() bool {
	return i.File != nil && *i.File != ""
}
