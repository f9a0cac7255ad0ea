package parser

import "strings"

// StripComments removes // and /* */ comments. Newlines inside block comments
// are kept so line numbers stay aligned with the input. String and character
// literals are copied verbatim.
func StripComments(text string) string {
	var out strings.Builder
	out.Grow(len(text))

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '"' || c == '\'':
			end := skipLiteral(text, i)
			out.WriteString(text[i:end])
			i = end - 1
		case c == '/' && i+1 < len(text) && text[i+1] == '/':
			for i < len(text) && text[i] != '\n' {
				i++
			}
			if i < len(text) {
				out.WriteByte('\n')
			}
		case c == '/' && i+1 < len(text) && text[i+1] == '*':
			i += 2
			for i < len(text) && !(text[i] == '*' && i+1 < len(text) && text[i+1] == '/') {
				if text[i] == '\n' {
					out.WriteByte('\n')
				}
				i++
			}
			i++ // skip the closing '/'
			out.WriteByte(' ')
		default:
			out.WriteByte(c)
		}
	}

	return out.String()
}

// skipLiteral returns the index just past the string or character literal
// starting at text[start]. An unterminated literal runs to the end of the line.
func skipLiteral(text string, start int) int {
	quote := text[start]
	for i := start + 1; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case quote:
			return i + 1
		case '\n':
			return i
		}
	}
	return len(text)
}
