package router

import (
	"time"

	tg "github.com/nika-camp/campbot/core/telegram"
	"github.com/nika-camp/campbot/core/telegram/callbacks"
	"github.com/nika-camp/campbot/core/telegram/middleware"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// CallbackOptions customises fallback behaviour for callbacks.
type CallbackOptions struct {
	NotFound tele.HandlerFunc
}

// CallbackRoute returns a handler that routes callbacks through the registry.
// Callback data is decoded into a typed command at this boundary; handlers
// never see raw strings. Payloads that do not decode, or that decode to an
// unregistered namespace, are dropped without an error.
func CallbackRoute(reg *tg.Registry, opts CallbackOptions) tg.Route {
	handler := func(c tele.Context) error {
		start := time.Now()
		if c.Callback() == nil {
			return nil
		}

		_ = c.Respond()

		cmd, ok := callbacks.DecodeContext(c)
		if !ok {
			logHandlerSummary(c, "callback.undecodable", start, "skip", "ok", nil)
			return nil
		}

		name := "callback." + normalizeHandlerName(cmd.Namespace)
		extras := []slog.Attr{slog.String("cb_key", cmd.Data())}

		cbHandler, found := reg.GetCallback(cmd.Namespace)
		if !found || cbHandler == nil {
			fallback := reg.CallbackNotFound()
			if fallback == nil {
				fallback = opts.NotFound
			}
			extras = append(extras, slog.String("reason", "not_found"))
			if fallback == nil {
				// Unknown namespace is intentionally dropped, not an error.
				logHandlerSummary(c, name, start, "skip", "ok", nil, extras...)
				return nil
			}
			return handleWithSummary(c, name, start, "", "", func() error {
				return fallback(c)
			}, extras...)
		}

		callbacks.Store(c, cmd)
		return handleWithSummary(c, name, start, "", "", func() error {
			return cbHandler(c)
		}, extras...)
	}
	return tg.Route{
		Endpoint: tele.OnCallback,
		Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(handler)),
	}
}
