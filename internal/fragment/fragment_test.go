package fragment

import (
	"html"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inner(t *testing.T, wrapped string) string {
	t.Helper()
	require.True(t, strings.HasPrefix(wrapped, preOpen))
	require.True(t, strings.HasSuffix(wrapped, preClose))
	return strings.TrimSuffix(strings.TrimPrefix(wrapped, preOpen), preClose)
}

func TestWrapShape(t *testing.T) {
	got := Wrap("hello\nworld\n")
	assert.Equal(t, "hello\nworld\n", inner(t, got))
	assert.Equal(t, 1, strings.Count(got, "<pre"))
	assert.Equal(t, 1, strings.Count(got, "</pre>"))
}

func TestWrapEscapesReservedCharacters(t *testing.T) {
	inputs := []string{
		`<script>alert("x")</script>`,
		`a & b`,
		`it's "quoted" <b>no tags</b>`,
		`</pre><pre>breakout attempt`,
	}
	for _, in := range inputs {
		body := inner(t, Wrap(in))
		assert.NotContains(t, body, "<", "input %q", in)
		assert.NotContains(t, body, ">", "input %q", in)
		assert.NotContains(t, body, `"`, "input %q", in)
		assert.NotContains(t, body, "'", "input %q", in)
		if strings.Contains(in, "&") {
			assert.Contains(t, body, "&amp;")
		}
	}
}

func TestWrapRoundTrips(t *testing.T) {
	for _, in := range []string{"", "plain", "a < b & c > d", "line\nbreaks\npreserved\n"} {
		assert.Equal(t, in, html.UnescapeString(inner(t, Wrap(in))))
	}
}

func TestWrapPreservesCanonicalText(t *testing.T) {
	plain := "NOTES\n-----\n\n• Eggs\n\n• Milk\n"
	got := Wrap(plain)
	assert.Equal(t, plain, inner(t, got))
	assert.Contains(t, got, "white-space: pre-wrap")
}
