// Package rendering turns a resume record into a complete LaTeX source
// document. Free text is escaped while building the template data; the
// template execution itself never touches raw user input.
package rendering

import "strings"

// latexEscaper rewrites the LaTeX control characters in a single pass, so
// escape sequences it emits are never re-escaped.
var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`_`, `\_`,
	`#`, `\#`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// EscapeLaTeX returns text safe to interpolate into a LaTeX document.
// It is a pure function and never fails.
func EscapeLaTeX(text string) string {
	return latexEscaper.Replace(text)
}
