package parser

import (
	"fmt"
	"strings"

	"github.com/toyz/fwdgen/internal/models"
)

// ParseParameters turns "(const char* path, int mode = 0)" into ordered
// parameter specs. Commas nested inside <>, (), [] or {} do not split entries.
func ParseParameters(list string) ([]models.ParameterSpec, error) {
	list = strings.TrimSpace(list)
	if !strings.HasPrefix(list, "(") || !strings.HasSuffix(list, ")") {
		return nil, fmt.Errorf("parameter list %q is not parenthesized", list)
	}
	inner := strings.TrimSpace(list[1 : len(list)-1])
	if inner == KeywordVoid {
		return nil, nil
	}

	var params []models.ParameterSpec
	for _, entry := range splitTopLevel(inner, ',') {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		param, err := parseParameter(entry, len(params))
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}

	return params, nil
}

// parseParameter splits one entry into type, name and default. index is the
// parameter position and names unnamed parameters.
func parseParameter(entry string, index int) (models.ParameterSpec, error) {
	var param models.ParameterSpec

	if eq := topLevelAssign(entry); eq >= 0 {
		param.Default = strings.TrimSpace(entry[eq+1:])
		entry = strings.TrimSpace(entry[:eq])
		if param.Default == "" {
			return param, fmt.Errorf("parameter %q has an empty default", entry)
		}
	}

	fields := strings.Fields(entry)
	switch {
	case len(fields) == 0:
		return param, fmt.Errorf("parameter %d has no type", index+1)
	case len(fields) == 1 && fields[0] == models.Ellipsis:
		return param, fmt.Errorf("C-style variadic '...' cannot be forwarded")
	case len(fields) == 1:
		param.Type = fields[0]
	default:
		param.Type = strings.Join(fields[:len(fields)-1], " ")
		param.Name = fields[len(fields)-1]
	}

	// unnamed: "const char*", "unsigned int", "const Foo"
	if param.Name != "" && (strings.HasSuffix(param.Name, "*") || strings.HasSuffix(param.Name, "&") ||
		builtinTypes[param.Name] || onlyCVQualifiers(param.Type)) {
		param.Type += " " + param.Name
		param.Name = ""
	}

	// "char *buf", "Args&& ...args": declarator punctuation belongs to the type
	if trimmed := strings.TrimLeft(param.Name, "*&."); trimmed != param.Name {
		param.Type += param.Name[:len(param.Name)-len(trimmed)]
		param.Name = trimmed
	}

	if param.Name == "" {
		param.Name = fmt.Sprintf("arg%d", index)
	}
	if !isIdentifier(param.Name) {
		return param, fmt.Errorf("parameter name %q is not an identifier", param.Name)
	}

	return param, nil
}

// onlyCVQualifiers reports whether typ is made of const and volatile alone,
// which leaves the following token to be the type rather than a name
func onlyCVQualifiers(typ string) bool {
	fields := strings.Fields(typ)
	if len(fields) == 0 {
		return false
	}
	for _, f := range fields {
		if !cvQualifiers[f] {
			return false
		}
	}
	return true
}

// splitTopLevel splits s on sep where no bracket is open
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '(', '[', '{':
			depth++
		case '>', ')', ']', '}':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}

	return append(parts, s[start:])
}

// topLevelAssign finds a default-argument '=' outside brackets, skipping the
// comparison operators ==, !=, <= and >=.
func topLevelAssign(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '(', '[', '{':
			depth++
		case '>', ')', ']', '}':
			if depth > 0 {
				depth--
			}
		case '=':
			if depth != 0 {
				continue
			}
			if i+1 < len(s) && s[i+1] == '=' {
				i++
				continue
			}
			if i > 0 && strings.ContainsRune("!<>=", rune(s[i-1])) {
				continue
			}
			return i
		}
	}
	return -1
}
