// Package generator runs the extraction and emission stages end to end. It
// performs no I/O: the caller supplies the input text and the output path the
// macro name is derived from.
package generator

import (
	"github.com/toyz/fwdgen/internal/models"
	"github.com/toyz/fwdgen/internal/parser"
	"github.com/toyz/fwdgen/internal/region"
)

// Generator implements the CodeGenerator interface
type Generator struct {
	parser    *parser.Parser
	emitter   *Emitter
	assembler MacroAssembler
}

// NewGenerator creates a new code generator instance
func NewGenerator() *Generator {
	p := parser.NewParser()
	return &Generator{
		parser:    p,
		emitter:   NewEmitter(p.Clauses()),
		assembler: NewAssembler(),
	}
}

// Generate extracts the reflect region of input and returns the header that
// forwards every declared method. Nothing is returned on failure. A missing
// region is not an error here; callers inspect Region.Found.
func (g *Generator) Generate(input, outputPath string) (*models.GenerationResult, error) {
	raw := region.Extract(input)

	sigs, err := g.parser.Parse(raw)
	if err != nil {
		return nil, err
	}

	members, err := g.emitter.EmitMembers(sigs)
	if err != nil {
		return nil, err
	}

	macro, err := g.assembler.Assemble(members, outputPath)
	if err != nil {
		return nil, err
	}

	return &models.GenerationResult{
		Region:     raw,
		Signatures: sigs,
		Macro:      *macro,
	}, nil
}

// Diagnostics returns verbose-mode notes about a successful run
func (g *Generator) Diagnostics(result *models.GenerationResult) []string {
	if result == nil {
		return nil
	}
	return g.parser.Diagnostics(result.Region, result.Signatures)
}

// Generate runs a fresh Generator once
func Generate(input, outputPath string) (*models.GenerationResult, error) {
	return NewGenerator().Generate(input, outputPath)
}
