package models

import "strings"

// Ellipsis marks a variadic parameter pack in a parameter type
const Ellipsis = "..."

// ParameterSpec is one entry of a method parameter list
type ParameterSpec struct {
	Type    string // every token before the name, e.g. "const char*"
	Name    string // final token
	Default string // default argument expression, empty when absent
}

// IsVariadic reports whether the parameter is a pack. Only an ellipsis that
// ends the type counts; "std::tuple<Ts...>&" is an ordinary parameter.
func (p ParameterSpec) IsVariadic() bool {
	return strings.HasSuffix(strings.TrimSpace(p.Type), Ellipsis)
}

// ForwardType is the type used as the std::forward argument. For packs the
// trailing ellipsis is removed so the pack can be expanded after the call.
func (p ParameterSpec) ForwardType() string {
	if !p.IsVariadic() {
		return p.Type
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(p.Type), Ellipsis))
}

// MethodSignature is a parsed method declaration
type MethodSignature struct {
	ReturnType string          // may start with a "template <...>" clause
	Name       string          // method name
	Params     []ParameterSpec // ordered parameters
	IsConst    bool            // const-qualified member function
	Qualifiers []string        // trailing qualifiers other than const, e.g. noexcept
	Line       int             // 1-based source line
}

// TemplateClause is a parsed "template <...>" prefix of a return type
type TemplateClause struct {
	Text      string   // clause exactly as written
	Arguments []string // parameter names to re-specify at the call site, packs end in "..."
}
