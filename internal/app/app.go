// Package app wires configuration, storage, content, and dialog handlers
// into a runnable Telegram application.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	tele "gopkg.in/telebot.v4"

	"github.com/nika-camp/campbot/core/bootstrap"
	coreconfig "github.com/nika-camp/campbot/core/config"
	"github.com/nika-camp/campbot/core/logger"
	coretelegram "github.com/nika-camp/campbot/core/telegram"
	"github.com/nika-camp/campbot/core/telegram/middleware"
	"github.com/nika-camp/campbot/core/telegram/router"
	"github.com/nika-camp/campbot/core/telegram/state"
	"github.com/nika-camp/campbot/internal/content"
	"github.com/nika-camp/campbot/internal/handlers"
)

// App holds the assembled application.
type App struct {
	cfg      *Config
	db       *sqlx.DB
	general  *content.GeneralCache
	states   state.Manager
	registry *coretelegram.Registry
}

// Bootstrap initializes infrastructure, loads content, and wires handlers.
func Bootstrap(cfg *Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("app: nil config")
	}

	res, err := bootstrap.Run(bootstrap.Options{
		Config:   cfg.CoreConfig(),
		Database: cfg.Database,
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if cfg.Content.SeedDemo {
		if err := demoSeeder().Seed(ctx, res.DB); err != nil {
			_ = res.DB.Close()
			return nil, fmt.Errorf("app: demo seed failed: %w", err)
		}
	}

	repo := content.NewRepository(res.DB)
	general := content.NewGeneralCache(repo.General)
	if err := general.Refresh(ctx); err != nil {
		// The cache serves the default greeting until the next /reload.
		logger.Cache.Warn("initial content load failed",
			slog.String("event", "cache.refresh"),
			slog.String("err", err.Error()),
		)
	}

	states := state.NewMemoryManager()

	contacts := make([]handlers.Contact, len(cfg.Support.Contacts))
	for i, c := range cfg.Support.Contacts {
		contacts[i] = handlers.Contact{Name: c.Name, URL: c.URL}
	}

	h := handlers.New(handlers.Options{
		Content:  repo,
		General:  general,
		States:   states,
		MediaDir: cfg.Content.MediaDir,
		Admins:   cfg.Support.Admins,
		Contacts: contacts,
	})

	reg := coretelegram.NewRegistry()
	h.Register(reg)

	return &App{
		cfg:      cfg,
		db:       res.DB,
		general:  general,
		states:   states,
		registry: reg,
	}, nil
}

// TelegramRunOptions builds the bot runtime configuration.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	core := a.cfg.CoreConfig()

	routes := router.CommandRoutes(a.registry, router.CommandRouteOptions{
		AdminID: core.Telegram.AdminID,
	})
	routes = append(routes, router.CallbackRoute(a.registry, router.CallbackOptions{}))
	routes = append(routes, router.TextRoutes(a.states, a.registry, router.TextOptions{})...)

	return coretelegram.RunOptions{
		Config:      core,
		Registry:    a.registry,
		Middlewares: coretelegram.DefaultMiddlewares(core, nil),
		Routes:      routes,
		OnStart:     a.onStart,
		OnStop:      a.onStop,
	}, nil
}

// onStart installs the panic escalation hook and tells the operators the bot
// is up. Operator notifications are best-effort.
func (a *App) onStart(ctx context.Context, rt coretelegram.Runtime) error {
	bot := rt.Bot
	admins := a.cfg.Support.Admins

	middleware.SetPanicNotifier(func(text string) {
		for _, adminID := range admins {
			if _, err := bot.Send(tele.ChatID(adminID), text); err != nil {
				logger.TG.Warn("panic escalation failed",
					slog.String("event", "notify"),
					slog.Int64("admin_id", adminID),
					slog.String("err", err.Error()),
				)
			}
		}
	})

	if a.cfg.Core.Telegram.RunMode == coreconfig.RunModeWebhook {
		text := fmt.Sprintf("Бот запущен, вебхук установлен: %s", a.cfg.Core.Webhook.URL)
		for _, adminID := range admins {
			if _, err := bot.Send(tele.ChatID(adminID), text); err != nil {
				logger.TG.Warn("startup notify failed",
					slog.String("event", "notify"),
					slog.Int64("admin_id", adminID),
					slog.String("err", err.Error()),
				)
			}
		}
	}
	return nil
}

func (a *App) onStop(ctx context.Context, rt coretelegram.Runtime) error {
	middleware.SetPanicNotifier(nil)
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
