// Package fragment wraps canonical plain text in a minimal HTML fragment the
// Notes viewer displays with whitespace and line breaks intact.
package fragment

import "html"

const (
	preOpen = `<pre style="white-space: pre-wrap; ` +
		`font-family: -apple-system, BlinkMacSystemFont, ` +
		`'Helvetica Neue', Helvetica, Arial, sans-serif; ` +
		`font-size: 14px; line-height: 1.4;">`
	preClose = `</pre>`
)

// Wrap escapes the text and embeds it as the sole content of a single
// whitespace-preserving <pre> block. Total function: escaping covers &, <,
// >, and both quote characters, so no input can break out of the wrapper.
func Wrap(plain string) string {
	return preOpen + html.EscapeString(plain) + preClose
}
