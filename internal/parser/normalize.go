package parser

import (
	"strings"

	"github.com/toyz/fwdgen/internal/models"
)

// Normalize trims every line and drops empty lines, lone semicolons left by
// stripped bodies, and bare access specifiers. Order is preserved and becomes the emission order.
func Normalize(lines []models.DeclarationLine) []models.DeclarationLine {
	out := make([]models.DeclarationLine, 0, len(lines))
	for _, l := range lines {
		text := strings.TrimSpace(l.Text)
		if text == "" || text == ";" || accessSpecifiers[text] {
			continue
		}
		out = append(out, models.DeclarationLine{Text: text, Line: l.Line})
	}
	return out
}
