package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/nika-camp/campbot/core/bootstrap"
	"github.com/nika-camp/campbot/core/logger"
)

// demoSeeder inserts a small demo content set so a fresh install has
// something to show. Rows are keyed by slug and never overwritten, so the
// seeder is safe to run on every startup.
func demoSeeder() bootstrap.Seeder {
	return bootstrap.SeederFunc(func(ctx context.Context, storage bootstrap.Storage) error {
		db, ok := storage.(*sqlx.DB)
		if !ok {
			return fmt.Errorf("seed: unsupported storage %T", storage)
		}

		res, err := db.ExecContext(ctx, `
			INSERT INTO general_info (start_text)
			SELECT 'Привет! Что ты хочешь узнать?'
			WHERE NOT EXISTS (SELECT 1 FROM general_info)`)
		if err != nil {
			return fmt.Errorf("seed general_info: %w", err)
		}
		inserted, _ := res.RowsAffected()

		res, err = db.ExecContext(ctx, `
			INSERT INTO places (title, slug, description, latitude, longitude)
			VALUES
				('База «Лесная»', 'base1', 'Лагерь в сосновом бору на берегу озера.', 56.838011, 60.597474)
			ON CONFLICT (slug) DO NOTHING`)
		if err != nil {
			return fmt.Errorf("seed places: %w", err)
		}
		n, _ := res.RowsAffected()
		inserted += n

		res, err = db.ExecContext(ctx, `
			INSERT INTO sessions (title, slug, form_url, place_id, description, start_date, end_date)
			VALUES
				('Летняя смена', 'summer',
				 'https://forms.example.org/summer',
				 (SELECT id FROM places WHERE slug = 'base1'),
				 'Две недели походов, купания и мастерских.',
				 DATE '2026-07-01', DATE '2026-07-14')
			ON CONFLICT (slug) DO NOTHING`)
		if err != nil {
			return fmt.Errorf("seed sessions: %w", err)
		}
		n, _ = res.RowsAffected()
		inserted += n

		res, err = db.ExecContext(ctx, `
			INSERT INTO optional_infos (title, slug, text, is_photo)
			VALUES
				('Что взять с собой', 'packing',
				 'Спальник, тёплые вещи, дождевик и хорошее настроение.', FALSE)
			ON CONFLICT (slug) DO NOTHING`)
		if err != nil {
			return fmt.Errorf("seed optional_infos: %w", err)
		}
		n, _ = res.RowsAffected()
		inserted += n

		logger.SEED.Info("demo content seeded",
			slog.String("event", "db.seed"),
			slog.Int64("rows", inserted),
		)
		return nil
	})
}
