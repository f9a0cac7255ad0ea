// Package templates renders forwarding members and the header that wraps them.
package templates

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/toyz/fwdgen/internal/errors"
	"github.com/toyz/fwdgen/internal/models"
)

// DefaultDelegate is the macro parameter naming the object calls are forwarded to
const DefaultDelegate = "FWD_DELEGATE"

// MemberData is rendered by the forwarding-member templates
type MemberData struct {
	Clause       string // leading "template <...>" clause, empty when absent
	TemplateArgs []string
	ReturnType   string // return type without the clause
	Name         string
	Params       []models.ParameterSpec
	Const        bool
	Qualifiers   []string
	Delegate     string
}

// MacroData is rendered by the forwarding-macro template
type MacroData struct {
	Name     string
	Guard    string
	Delegate string
	Includes string
	Members  []string
}

// GenerateMember renders one forwarding member on a single line
func GenerateMember(data MemberData) (string, error) {
	name := "forwarding-member"
	if data.Clause != "" {
		name = "forwarding-member-template"
	}
	if data.Delegate == "" {
		data.Delegate = DefaultDelegate
	}

	return executeTemplate(name, DefaultTemplateRegistry.MustGet(name), data)
}

// GenerateMacro renders the complete header text
func GenerateMacro(data MacroData) (string, error) {
	if data.Delegate == "" {
		data.Delegate = DefaultDelegate
	}
	for _, m := range data.Members {
		if strings.ContainsAny(m, "\r\n") {
			return "", errors.WrapTemplateError("forwarding-macro", "execute",
				errors.Newf(errors.GenerationErrorCode, "member %q spans more than one line", m))
		}
	}

	return executeTemplate("forwarding-macro", DefaultTemplateRegistry.MustGet("forwarding-macro"), data)
}

// executeTemplate executes a Go template with the given data
func executeTemplate(name, templateStr string, data interface{}) (string, error) {
	funcMap := template.FuncMap{
		"declareParams": DefaultTemplateUtils.DeclareParams,
		"forwardArgs":   DefaultTemplateUtils.ForwardArgs,
		"join":          strings.Join,
	}

	tmpl, err := template.New(name).Funcs(funcMap).Parse(templateStr)
	if err != nil {
		return "", errors.WrapTemplateError(name, "parse", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.WrapTemplateError(name, "execute", err)
	}

	return buf.String(), nil
}
