package format

import (
	"fmt"
	"strings"
)

// Telegram HTML parse mode accepts a small tag subset; anything else in
// user-provided content has to be escaped.

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeHTML escapes content for Telegram HTML parse mode.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}

// Bold wraps escaped text into a strong tag.
func Bold(text string) string {
	return "<strong>" + EscapeHTML(text) + "</strong>"
}

// Link renders an anchor tag with an escaped label.
func Link(label, url string) string {
	return fmt.Sprintf(`<a href="%s">%s</a>`, url, EscapeHTML(label))
}
