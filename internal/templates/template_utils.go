package templates

import (
	"path"
	"strings"

	"github.com/toyz/fwdgen/internal/models"
)

// macroSuffix is appended to every derived macro name
const macroSuffix = "_FORWARD"

// headerExtensions are stripped from the output path before deriving names
var headerExtensions = []string{".hpp", ".hxx", ".hh", ".h", ".inl", ".inc"}

// TemplateUtils provides common utilities for template generation
type TemplateUtils struct{}

// NewTemplateUtils creates a new template utilities instance
func NewTemplateUtils() *TemplateUtils {
	return &TemplateUtils{}
}

// MacroName derives the macro identifier from the output path,
// e.g. "gen/io/stream.hpp" -> "GEN_IO_STREAM_FORWARD"
func (tu *TemplateUtils) MacroName(outputPath string) string {
	p := strings.ReplaceAll(outputPath, "\\", "/")
	for {
		trimmed := strings.TrimPrefix(strings.TrimPrefix(strings.TrimPrefix(p, "./"), "../"), "/")
		if trimmed == p {
			break
		}
		p = trimmed
	}

	ext := path.Ext(p)
	for _, known := range headerExtensions {
		if strings.EqualFold(ext, known) {
			p = strings.TrimSuffix(p, ext)
			break
		}
	}

	// the suffix is added back below
	if lower := strings.ToLower(p); strings.HasSuffix(lower, "_forward") && len(p) > len("_forward") {
		p = p[:len(p)-len("_forward")]
	}

	ident := tu.ToIdentifier(p)
	if ident == "" {
		ident = "FWDGEN"
	}
	return strings.ToUpper(ident) + macroSuffix
}

// GuardName returns the include guard for a macro
func (tu *TemplateUtils) GuardName(macroName string) string {
	return macroName + "_H"
}

// ToIdentifier replaces every byte that cannot appear in a C++ identifier
// with '_' and prefixes a leading digit
func (tu *TemplateUtils) ToIdentifier(s string) string {
	b := []byte(s)
	for i, c := range b {
		if !isIdentByte(c) {
			b[i] = '_'
		}
	}
	if len(b) > 0 && b[0] >= '0' && b[0] <= '9' {
		return "_" + string(b)
	}
	return string(b)
}

func isIdentByte(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// DeclareParams renders a parameter list for a member declaration,
// keeping default arguments
func (tu *TemplateUtils) DeclareParams(params []models.ParameterSpec) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		decl := p.Type + " " + p.Name
		if p.Default != "" {
			decl += " = " + p.Default
		}
		parts = append(parts, decl)
	}
	return strings.Join(parts, ", ")
}

// ForwardArg renders one perfectly forwarded argument
func (tu *TemplateUtils) ForwardArg(p models.ParameterSpec) string {
	arg := "std::forward<" + p.ForwardType() + ">(" + p.Name + ")"
	if p.IsVariadic() {
		arg += models.Ellipsis
	}
	return arg
}

// ForwardArgs renders the argument list of the delegated call
func (tu *TemplateUtils) ForwardArgs(params []models.ParameterSpec) string {
	args := make([]string, 0, len(params))
	for _, p := range params {
		args = append(args, tu.ForwardArg(p))
	}
	return strings.Join(args, ", ")
}

// DefaultTemplateUtils provides a global instance for convenience
var DefaultTemplateUtils = NewTemplateUtils()
