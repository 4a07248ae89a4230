package rendering

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLaTeX_EmptyString(t *testing.T) {
	assert.Equal(t, "", EscapeLaTeX(""))
}

func TestEscapeLaTeX_NoSpecialCharacters(t *testing.T) {
	text := "This is normal text with no special characters"
	assert.Equal(t, text, EscapeLaTeX(text))
}

func TestEscapeLaTeX_Backslash(t *testing.T) {
	assert.Equal(t, `test\textbackslash{}backslash`, EscapeLaTeX(`test\backslash`))
}

func TestEscapeLaTeX_CurlyBraces(t *testing.T) {
	assert.Equal(t, `text\{with\}braces`, EscapeLaTeX("text{with}braces"))
}

func TestEscapeLaTeX_DollarSign(t *testing.T) {
	assert.Equal(t, `cost \$100`, EscapeLaTeX("cost $100"))
}

func TestEscapeLaTeX_Ampersand(t *testing.T) {
	assert.Equal(t, `A \& B`, EscapeLaTeX("A & B"))
}

func TestEscapeLaTeX_Percent(t *testing.T) {
	assert.Equal(t, `100\% complete`, EscapeLaTeX("100% complete"))
}

func TestEscapeLaTeX_Hash(t *testing.T) {
	assert.Equal(t, `issue \#123`, EscapeLaTeX("issue #123"))
}

func TestEscapeLaTeX_Caret(t *testing.T) {
	assert.Equal(t, `x\textasciicircum{}2`, EscapeLaTeX("x^2"))
}

func TestEscapeLaTeX_Underscore(t *testing.T) {
	assert.Equal(t, `variable\_name`, EscapeLaTeX("variable_name"))
}

func TestEscapeLaTeX_Tilde(t *testing.T) {
	assert.Equal(t, `\textasciitilde{}approx`, EscapeLaTeX("~approx"))
}

func TestEscapeLaTeX_MultipleSpecialCharacters(t *testing.T) {
	result := EscapeLaTeX("test${}~&%#^_\\")
	expected := `test\$\{\}\textasciitilde{}\&\%\#\textasciicircum{}\_\textbackslash{}`
	assert.Equal(t, expected, result)
}

func TestEscapeLaTeX_DoesNotReescapeItsOwnOutput(t *testing.T) {
	// The escape sequences contain backslashes and braces themselves; a
	// naive multi-pass implementation would corrupt them.
	result := EscapeLaTeX(`\&`)
	assert.Equal(t, `\textbackslash{}\&`, result)
}

func TestEscapeLaTeX_UnicodeCharacters(t *testing.T) {
	text := "résumé with unicode: α β γ"
	assert.Equal(t, text, EscapeLaTeX(text))
}

func TestEscapeLaTeX_MixedContent(t *testing.T) {
	result := EscapeLaTeX("Built system handling $1M+ requests/day with 99.9% uptime")
	assert.Contains(t, result, `\$1M`)
	assert.Contains(t, result, `99.9\%`)
	assert.Contains(t, result, "requests/day")
}

// stripEscapes removes every escape sequence the escaper can emit, longest
// first, so anything left must be unescaped.
func stripEscapes(s string) string {
	for _, esc := range []string{
		`\textbackslash{}`, `\textasciitilde{}`, `\textasciicircum{}`,
		`\{`, `\}`, `\&`, `\%`, `\$`, `\_`, `\#`,
	} {
		s = strings.ReplaceAll(s, esc, "")
	}
	return s
}

func TestEscapeLaTeX_NoUnescapedSpecialsRemain(t *testing.T) {
	inputs := []string{
		`\ { } & % $ _ # ~ ^`,
		"100% of $5M & counting #1 ~fast^2 a_b {c} d\\e",
		"{{nested}} \\\\double %%",
		strings.Repeat(`\{}&%$_#~^`, 50),
	}
	for _, input := range inputs {
		remainder := stripEscapes(EscapeLaTeX(input))
		assert.NotContainsf(t, remainder, `\`, "input %q", input)
		for _, special := range []string{"{", "}", "&", "%", "$", "_", "#", "~", "^"} {
			assert.NotContainsf(t, remainder, special, "input %q", input)
		}
	}
}
