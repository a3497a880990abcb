package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nika-camp/campbot/core/logger"
	"log/slog"
)

// ErrNotFound is returned when a slug resolves to no entity. Handlers treat
// it as a user-facing terminal state, not a failure.
var ErrNotFound = errors.New("content: not found")

// Provider is the read-only access surface the dialog handlers consume.
// List order is the insertion order of the underlying store.
type Provider interface {
	Sessions(ctx context.Context) ([]Session, error)
	SessionBySlug(ctx context.Context, slug string) (*Session, error)
	Places(ctx context.Context) ([]Place, error)
	PlaceBySlug(ctx context.Context, slug string) (*Place, error)
	Infos(ctx context.Context) ([]OptionalInfo, error)
	InfoBySlug(ctx context.Context, slug string) (*OptionalInfo, error)
	General(ctx context.Context) (*GeneralInfo, error)
}

// Repository implements Provider on top of Postgres.
type Repository struct {
	db *sqlx.DB
}

// NewRepository wraps an open database handle.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

const queryTimeout = 5 * time.Second

const sessionColumns = `
	s.id, s.title, s.slug, s.form_url, s.place_id, s.image,
	s.description, s.start_date, s.end_date, s.notes,
	p.title AS place_title`

// Sessions returns all camp sessions in insertion order.
func (r *Repository) Sessions(ctx context.Context) ([]Session, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	start := time.Now()
	var list []Session
	err := r.db.SelectContext(ctx, &list, `
		SELECT `+sessionColumns+`
		FROM sessions s
		LEFT JOIN places p ON p.id = s.place_id
		ORDER BY s.id`)
	if err != nil {
		return nil, fmt.Errorf("select sessions: %w", err)
	}
	logger.Content.Debug("sessions listed",
		slog.String("event", "content.list"),
		slog.String("kind", string(KindSession)),
		slog.Int("count", len(list)),
		slog.Duration("duration", logger.Took(start)),
	)
	return list, nil
}

// SessionBySlug returns a single session or ErrNotFound.
func (r *Repository) SessionBySlug(ctx context.Context, slug string) (*Session, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var s Session
	err := r.db.GetContext(ctx, &s, `
		SELECT `+sessionColumns+`
		FROM sessions s
		LEFT JOIN places p ON p.id = s.place_id
		WHERE s.slug = $1`, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select session %q: %w", slug, err)
	}
	return &s, nil
}

// Places returns all venues in insertion order.
func (r *Repository) Places(ctx context.Context) ([]Place, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	start := time.Now()
	var list []Place
	err := r.db.SelectContext(ctx, &list, `
		SELECT id, title, slug, description, latitude, longitude
		FROM places
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select places: %w", err)
	}
	logger.Content.Debug("places listed",
		slog.String("event", "content.list"),
		slog.String("kind", string(KindPlace)),
		slog.Int("count", len(list)),
		slog.Duration("duration", logger.Took(start)),
	)
	return list, nil
}

// PlaceBySlug returns a single venue or ErrNotFound.
func (r *Repository) PlaceBySlug(ctx context.Context, slug string) (*Place, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var p Place
	err := r.db.GetContext(ctx, &p, `
		SELECT id, title, slug, description, latitude, longitude
		FROM places
		WHERE slug = $1`, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select place %q: %w", slug, err)
	}
	return &p, nil
}

// Infos returns all extra-info articles in insertion order.
func (r *Repository) Infos(ctx context.Context) ([]OptionalInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	start := time.Now()
	var list []OptionalInfo
	err := r.db.SelectContext(ctx, &list, `
		SELECT id, title, slug, text, file, is_photo
		FROM optional_infos
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select infos: %w", err)
	}
	logger.Content.Debug("infos listed",
		slog.String("event", "content.list"),
		slog.String("kind", string(KindInfo)),
		slog.Int("count", len(list)),
		slog.Duration("duration", logger.Took(start)),
	)
	return list, nil
}

// InfoBySlug returns a single article or ErrNotFound.
func (r *Repository) InfoBySlug(ctx context.Context, slug string) (*OptionalInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var i OptionalInfo
	err := r.db.GetContext(ctx, &i, `
		SELECT id, title, slug, text, file, is_photo
		FROM optional_infos
		WHERE slug = $1`, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select info %q: %w", slug, err)
	}
	return &i, nil
}

// General returns the greeting singleton. When the table is empty it
// returns ErrNotFound; callers fall back to a default greeting.
func (r *Repository) General(ctx context.Context) (*GeneralInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var g GeneralInfo
	err := r.db.GetContext(ctx, &g, `
		SELECT id, start_text
		FROM general_info
		ORDER BY id
		LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select general info: %w", err)
	}
	return &g, nil
}
