package render

import (
	"regexp"
	"strings"
)

var (
	ansiSGR   = regexp.MustCompile("\x1b\\[[0-9;]*m")
	blankRuns = regexp.MustCompile(`\n{3,}`)

	// Checkbox normalization is plain substring replacement, applied after
	// tables are rendered. A cell holding a literal "[ ]" unrelated to a
	// checklist is rewritten too; known quirk, kept on purpose.
	checkboxes = strings.NewReplacer(
		"- [ ]", "☐",
		"[ ]", "☐",
		"- [x]", "☑",
		"[x]", "☑",
	)
)

// cleanup is the final textual pass: checkbox glyphs, ANSI escape stripping,
// blank-line compaction, and exactly one trailing line break.
func cleanup(s string) string {
	s = checkboxes.Replace(s)
	s = ansiSGR.ReplaceAllString(s, "")
	s = collapseBlankLines(s)
	return strings.TrimSpace(s) + "\n"
}

// collapseBlankLines reduces any run of three or more line breaks to two,
// leaving at most one blank line between blocks. Idempotent.
func collapseBlankLines(s string) string {
	return blankRuns.ReplaceAllString(s, "\n\n")
}
