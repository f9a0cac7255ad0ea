package parser

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/fwdgen/internal/models"
)

// templateClause is the grammar root for "template <...>"
type templateClause struct {
	Params []*templateParam `parser:"'template' '<' ( @@ ( ',' @@ )* )? '>'"`
}

// templateParam is one entry of the clause, e.g. "typename T", "class... Ts",
// "std::size_t N = 4", "typename U = std::vector<T>"
type templateParam struct {
	Words   []string       `parser:"( @Ident | @'*' | @'&' )+"`
	Pack    bool           `parser:"@Ellipsis?"`
	Name    string         `parser:"@Ident?"`
	Default []*defaultPart `parser:"( '=' @@+ )?"`
}

// defaultPart is one piece of a default argument. Commas and '>' only end
// the default outside a nested angle group.
type defaultPart struct {
	Group *angleGroup `parser:"  @@"`
	Token string      `parser:"| @~( ',' | '<' | '>' )"`
}

// angleGroup is a balanced "<...>" inside a default, e.g. "<T, Alloc>"
type angleGroup struct {
	Parts []*groupPart `parser:"'<' @@* '>'"`
}

type groupPart struct {
	Group *angleGroup `parser:"  @@"`
	Token string      `parser:"| @~( '<' | '>' )"`
}

// TemplateClauseParser extracts template argument names from a clause
type TemplateClauseParser struct {
	parser *participle.Parser[templateClause]
}

// NewTemplateClauseParser builds the clause grammar
func NewTemplateClauseParser() *TemplateClauseParser {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Ellipsis", Pattern: `\.\.\.`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*(::[a-zA-Z_][a-zA-Z0-9_]*)*`},
		{Name: "Number", Pattern: `[0-9]+[uUlL]*`},
		{Name: "Punct", Pattern: `::|[<>,=*&()\[\]{}+\-/|!~^%.:?]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	return &TemplateClauseParser{
		parser: participle.MustBuild[templateClause](
			participle.Lexer(lex),
			participle.Elide("Whitespace"),
		),
	}
}

// Split separates a leading template clause from the rest of a return type.
// ok is false when returnType has no clause.
func (p *TemplateClauseParser) Split(returnType string) (clause, rest string, ok bool) {
	returnType = strings.TrimSpace(returnType)
	end := templateClauseEnd(returnType)
	if end < 0 {
		return "", returnType, false
	}
	return strings.TrimSpace(returnType[:end]), strings.TrimSpace(returnType[end:]), true
}

// Parse reads a clause and returns the argument list to re-specify at a call
// site. Pack parameters come back with a trailing "...".
func (p *TemplateClauseParser) Parse(clause string) (*models.TemplateClause, error) {
	ast, err := p.parser.ParseString("", clause)
	if err != nil {
		return nil, fmt.Errorf("invalid template clause %q: %w", clause, err)
	}

	result := &models.TemplateClause{Text: clause}
	for i, param := range ast.Params {
		name := param.Name
		if name == "" && !param.Pack && len(param.Words) > 1 {
			name = param.Words[len(param.Words)-1]
		}
		if name == "" || !isIdentifier(name) {
			return nil, fmt.Errorf("template parameter %d in %q has no name to forward", i+1, clause)
		}
		if param.Pack {
			name += models.Ellipsis
		}
		result.Arguments = append(result.Arguments, name)
	}

	return result, nil
}

// isIdentifier reports whether s is a plain C++ identifier
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
