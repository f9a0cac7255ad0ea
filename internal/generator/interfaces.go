package generator

import "github.com/toyz/fwdgen/internal/models"

// CodeGenerator turns interface-definition text into a forwarding-macro header
type CodeGenerator interface {
	Generate(input, outputPath string) (*models.GenerationResult, error)
}

// MemberEmitter renders one forwarding member per signature
type MemberEmitter interface {
	EmitMember(sig models.MethodSignature) (string, error)
}

// MacroAssembler wraps rendered members into the final header
type MacroAssembler interface {
	Assemble(members []string, outputPath string) (*models.ForwardingMacro, error)
}
