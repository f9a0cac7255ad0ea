// Package parser extracts method signatures from a reflect region.
//
// The region goes through comment stripping, body stripping, template-line
// joining and normalization before each remaining line is parsed as exactly
// one declaration.
package parser

import (
	"github.com/toyz/fwdgen/internal/errors"
	"github.com/toyz/fwdgen/internal/models"
)

// Parser implements DeclarationParser
type Parser struct {
	clauses *TemplateClauseParser
}

// NewParser creates a declaration parser
func NewParser() *Parser {
	return &Parser{clauses: NewTemplateClauseParser()}
}

// Clauses returns the template clause parser shared with the emitter
func (p *Parser) Clauses() *TemplateClauseParser {
	return p.clauses
}

// Declarations runs the text stages and returns one line per declaration
func (p *Parser) Declarations(region models.RawRegion) ([]models.DeclarationLine, error) {
	text := StripComments(region.Text)

	stripped, err := StripBodies(text, region.StartLine)
	if err != nil {
		return nil, err
	}

	return Normalize(JoinTemplateLines(Lines(stripped, region.StartLine))), nil
}

// Parse returns the region's signatures in declaration order. Every malformed
// line is reported; any of them fails the whole parse.
func (p *Parser) Parse(region models.RawRegion) ([]models.MethodSignature, error) {
	decls, err := p.Declarations(region)
	if err != nil {
		return nil, err
	}

	failures := errors.NewMultipleErrors()
	signatures := make([]models.MethodSignature, 0, len(decls))

	for _, decl := range decls {
		sig, err := ParseSignature(decl)
		if err != nil {
			if fe := errors.Find(err); fe != nil {
				failures.Add(fe)
				continue
			}
			return nil, err
		}

		if err := p.checkTemplateClause(decl, sig); err != nil {
			failures.Add(err)
			continue
		}

		signatures = append(signatures, sig)
	}

	if err := failures.ErrOrNil(); err != nil {
		return nil, err
	}
	return signatures, nil
}

// Diagnostics returns notes about a parsed region worth showing in verbose mode
func (p *Parser) Diagnostics(region models.RawRegion, signatures []models.MethodSignature) []string {
	return reporter.GenerateRegionDiagnostics(region, signatures)
}

// checkTemplateClause rejects a return type whose template clause cannot be
// re-specified at the call site
func (p *Parser) checkTemplateClause(decl models.DeclarationLine, sig models.MethodSignature) *errors.BaseError {
	clause, rest, ok := p.clauses.Split(sig.ReturnType)
	if !ok {
		return nil
	}
	if rest == "" {
		return reporter.ReportMalformed(decl, "missing return type after the template clause")
	}
	if _, err := p.clauses.Parse(clause); err != nil {
		return reporter.ReportTemplateClause(decl, err)
	}
	return nil
}
