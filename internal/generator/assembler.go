package generator

import (
	"github.com/toyz/fwdgen/internal/errors"
	"github.com/toyz/fwdgen/internal/models"
	"github.com/toyz/fwdgen/internal/templates"
)

// Assembler wraps members into a guarded header defining the forwarding macro
type Assembler struct {
	delegate string
	utils    *templates.TemplateUtils
}

// NewAssembler creates an assembler using templates.DefaultDelegate as the
// macro parameter
func NewAssembler() *Assembler {
	return &Assembler{
		delegate: templates.DefaultDelegate,
		utils:    templates.DefaultTemplateUtils,
	}
}

// Assemble builds the complete header. The macro and guard names are derived
// from outputPath, so the same members written to a different path produce a
// different macro.
func (a *Assembler) Assemble(members []string, outputPath string) (*models.ForwardingMacro, error) {
	name := a.utils.MacroName(outputPath)
	guard := a.utils.GuardName(name)

	includes := templates.NewIncludeManager()
	includes.AddSystemInclude("utility") // std::forward

	content, err := templates.GenerateMacro(templates.MacroData{
		Name:     name,
		Guard:    guard,
		Delegate: a.delegate,
		Includes: includes.GenerateIncludes(),
		Members:  members,
	})
	if err != nil {
		return nil, errors.WrapGenerateError("forwarding macro "+name, err)
	}

	return &models.ForwardingMacro{
		Name:       name,
		Guard:      guard,
		OutputPath: outputPath,
		Members:    members,
		Content:    content,
	}, nil
}
