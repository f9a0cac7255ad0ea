package parser

import (
	"strings"

	"github.com/toyz/fwdgen/internal/models"
)

// Lines splits text into raw, untrimmed lines numbered from startLine
func Lines(text string, startLine int) []models.DeclarationLine {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]models.DeclarationLine, 0, len(raw))
	for i, l := range raw {
		lines = append(lines, models.DeclarationLine{Text: l, Line: startLine + i})
	}
	return lines
}

// JoinTemplateLines merges a line holding only a template parameter-list
// clause with the line directly after it. There is no lookahead past that line.
func JoinTemplateLines(lines []models.DeclarationLine) []models.DeclarationLine {
	joined := make([]models.DeclarationLine, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		cur := lines[i]
		if isTemplateClauseLine(cur.Text) && i+1 < len(lines) {
			next := lines[i+1]
			cur.Text = strings.TrimSpace(cur.Text) + " " + strings.TrimSpace(next.Text)
			i++
		}
		joined = append(joined, cur)
	}

	return joined
}

// isTemplateClauseLine reports whether s is exactly one "template <...>" clause
func isTemplateClauseLine(s string) bool {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, KeywordTemplate) {
		return false
	}

	end := templateClauseEnd(s)
	if end < 0 {
		return false
	}
	return strings.TrimSpace(s[end:]) == ""
}

// templateClauseEnd returns the index just past the '>' that closes the
// template clause at the start of s, or -1 when s does not open with a
// complete clause.
func templateClauseEnd(s string) int {
	if !strings.HasPrefix(s, KeywordTemplate) {
		return -1
	}

	rest := strings.TrimLeft(s[len(KeywordTemplate):], " \t")
	if !strings.HasPrefix(rest, "<") {
		return -1
	}

	open := len(s) - len(rest)
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return -1
}
