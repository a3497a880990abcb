package middleware

import (
	"fmt"
	"runtime/debug"
	"sync/atomic"

	"github.com/nika-camp/campbot/core/logger"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

var panicNotifier atomic.Pointer[func(text string)]

// SetPanicNotifier installs a best-effort escalation hook, normally a send
// to the operator chat. A nil value disables escalation.
func SetPanicNotifier(fn func(text string)) {
	if fn == nil {
		panicNotifier.Store(nil)
		return
	}
	panicNotifier.Store(&fn)
}

// RecoverMiddleware catches panics in handlers and prevents the bot from
// crashing. The inbound update is still acknowledged to Telegram so the
// gateway does not retry it.
func RecoverMiddleware(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		defer func() {
			if r := recover(); r != nil {
				logger.TG.Error("panic recovered",
					slog.String("event", "tg.panic"),
					slog.Any("err", r),
					slog.String("stack", string(debug.Stack())),
				)
				if fn := panicNotifier.Load(); fn != nil {
					(*fn)(fmt.Sprintf("update processing panic: %v", r))
				}
			}
		}()
		return next(c)
	}
}
