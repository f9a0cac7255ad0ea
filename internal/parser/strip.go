package parser

import (
	"strings"

	"github.com/toyz/fwdgen/internal/errors"
)

// StripBodies drops the contents of every outermost {...} block, nested blocks
// included, so an inline implementation collapses onto its signature line.
// Newlines swallowed by a body are re-emitted at the next line break outside
// it, which keeps later lines at their input line numbers. startLine is the
// input line of text's first line and is only used for error locations.
//
// Unbalanced braces are an error rather than silently truncated output.
func StripBodies(text string, startLine int) (string, error) {
	var out strings.Builder
	out.Grow(len(text))

	depth := 0
	line := startLine
	openLine := 0
	pending := 0

	for i := 0; i < len(text); i++ {
		c := text[i]

		switch c {
		case '"', '\'':
			end := skipLiteral(text, i)
			if depth == 0 {
				out.WriteString(text[i:end])
			}
			i = end - 1
			continue
		case '{':
			if depth == 0 {
				openLine = line
			}
			depth++
		case '}':
			if depth == 0 {
				return "", errors.UnbalancedBraces(line, "'}' without a matching '{'")
			}
			depth--
		case '\n':
			line++
			if depth > 0 {
				pending++
				continue
			}
			out.WriteByte('\n')
			out.WriteString(strings.Repeat("\n", pending))
			pending = 0
		default:
			if depth == 0 {
				out.WriteByte(c)
			}
		}
	}

	if depth != 0 {
		return "", errors.UnbalancedBraces(openLine, "'{' is never closed")
	}
	out.WriteString(strings.Repeat("\n", pending))

	return out.String(), nil
}
