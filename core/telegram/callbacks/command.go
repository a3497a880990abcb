package callbacks

import (
	"strings"

	tele "gopkg.in/telebot.v4"
)

// Callback data on inline buttons is a short dot-separated string:
// <namespace>.<token>. The namespace selects a handler, the token is either
// a fixed action ("return", "cancel", ...) or an entity slug.

// Command is the decoded form of raw callback data. Handlers receive it via
// FromContext instead of re-parsing raw strings.
type Command struct {
	Namespace string
	Token     string
}

// Data encodes the command back into its wire form.
func (c Command) Data() string {
	return c.Namespace + "." + c.Token
}

// Decode parses raw callback data into a Command. It reports false for
// payloads without a namespace separator; those updates are dropped by the
// router on purpose.
func Decode(raw string) (Command, bool) {
	raw = strings.TrimSpace(raw)
	// Telebot prefixes data built via markup.Data with \f.
	raw = strings.TrimPrefix(raw, "\f")
	ns, token, found := strings.Cut(raw, ".")
	if !found || ns == "" || token == "" {
		return Command{}, false
	}
	return Command{Namespace: ns, Token: token}, true
}

// DecodeContext decodes the callback carried by the given update context.
func DecodeContext(c tele.Context) (Command, bool) {
	cb := c.Callback()
	if cb == nil {
		return Command{}, false
	}
	return Decode(cb.Data)
}

const commandKey = "cb_command"

// Store saves the decoded command in the update context for handlers.
func Store(c tele.Context, cmd Command) {
	c.Set(commandKey, cmd)
}

// FromContext returns the command stored by the callback router.
func FromContext(c tele.Context) (Command, bool) {
	if v := c.Get(commandKey); v != nil {
		if cmd, ok := v.(Command); ok {
			return cmd, true
		}
	}
	return DecodeContext(c)
}
