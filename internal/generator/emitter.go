package generator

import (
	"fmt"

	"github.com/toyz/fwdgen/internal/errors"
	"github.com/toyz/fwdgen/internal/models"
	"github.com/toyz/fwdgen/internal/parser"
	"github.com/toyz/fwdgen/internal/templates"
)

// Emitter renders forwarding members that call through to the macro's
// delegate argument
type Emitter struct {
	delegate string
	clauses  *parser.TemplateClauseParser
}

// NewEmitter creates an emitter forwarding to templates.DefaultDelegate
func NewEmitter(clauses *parser.TemplateClauseParser) *Emitter {
	return &Emitter{
		delegate: templates.DefaultDelegate,
		clauses:  clauses,
	}
}

// EmitMember renders sig as a single-line member definition. A return type
// starting with a template clause yields a member template whose arguments
// are passed on explicitly; any other member becomes a defaulted template so
// it is only instantiated when used.
func (e *Emitter) EmitMember(sig models.MethodSignature) (string, error) {
	data := templates.MemberData{
		ReturnType: sig.ReturnType,
		Name:       sig.Name,
		Params:     sig.Params,
		Const:      sig.IsConst,
		Qualifiers: sig.Qualifiers,
		Delegate:   e.delegate,
	}

	if clause, rest, ok := e.clauses.Split(sig.ReturnType); ok {
		tc, err := e.clauses.Parse(clause)
		if err != nil {
			return "", errors.MalformedDeclaration(sig.Line, sig.ReturnType+" "+sig.Name, err.Error())
		}
		data.Clause = tc.Text
		data.TemplateArgs = tc.Arguments
		data.ReturnType = rest
	}

	member, err := templates.GenerateMember(data)
	if err != nil {
		return "", errors.WrapGenerateError(fmt.Sprintf("forwarding member '%s'", sig.Name), err).
			WithLocation(errors.SourceLocation{Line: sig.Line})
	}
	return member, nil
}

// EmitMembers renders every signature, keeping declaration order
func (e *Emitter) EmitMembers(sigs []models.MethodSignature) ([]string, error) {
	members := make([]string, 0, len(sigs))
	for _, sig := range sigs {
		member, err := e.EmitMember(sig)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, nil
}
