package parser

import (
	"regexp"
	"strings"

	"github.com/toyz/fwdgen/internal/models"
)

var (
	bodyRemnant = regexp.MustCompile(`\{[^{}]*\}`)
	pureVirtual = regexp.MustCompile(`\s*=\s*0\s*$`)
)

// ParseSignature splits one declaration line into return type, name,
// parameter list and trailing qualifiers.
func ParseSignature(decl models.DeclarationLine) (models.MethodSignature, error) {
	text := cleanDeclaration(decl.Text)
	malformed := func(reason string) (models.MethodSignature, error) {
		return models.MethodSignature{}, reporter.ReportMalformed(decl, reason)
	}

	open := paramListStart(text)
	if open < 0 {
		return malformed("missing '(' for the parameter list")
	}
	closing := matchingParen(text, open)
	if closing < 0 {
		return malformed("parameter list is never closed")
	}

	head := removeToken(strings.Fields(text[:open]), KeywordVirtual)
	if len(head) == 0 {
		return malformed("missing method name")
	}

	name := head[len(head)-1]
	returnType := strings.Join(head[:len(head)-1], " ")

	// "char *name(" and "T &name(": declarator punctuation belongs to the return type
	if trimmed := strings.TrimLeft(name, "*&"); trimmed != name {
		returnType += name[:len(name)-len(trimmed)]
		name = trimmed
	}

	if !isMethodName(name) {
		return malformed("method name '" + name + "' is not an identifier")
	}
	if returnType == "" {
		return malformed("missing return type")
	}

	params, err := ParseParameters(text[open : closing+1])
	if err != nil {
		return malformed(err.Error())
	}

	sig := models.MethodSignature{
		ReturnType: returnType,
		Name:       name,
		Params:     params,
		Line:       decl.Line,
	}

	tail, trailingReturn := splitTrailingReturn(text[closing+1:])
	for _, q := range strings.Fields(tail) {
		switch {
		case q == KeywordConst:
			sig.IsConst = true
		case droppedQualifiers[q]:
		default:
			sig.Qualifiers = append(sig.Qualifiers, q)
		}
	}
	if trailingReturn != "" {
		sig.Qualifiers = append(sig.Qualifiers, trailingReturn)
	}

	return sig, nil
}

// splitTrailingReturn separates "-> T" from the qualifiers after the
// parameter list. The trailing return type is kept verbatim apart from
// override and final, which may follow it.
func splitTrailingReturn(tail string) (qualifiers, trailingReturn string) {
	arrow := strings.Index(tail, TrailingReturnArrow)
	if arrow < 0 {
		return tail, ""
	}

	fields := strings.Fields(tail[arrow+len(TrailingReturnArrow):])
	for len(fields) > 0 && droppedQualifiers[fields[len(fields)-1]] {
		fields = fields[:len(fields)-1]
	}
	if len(fields) == 0 {
		return tail[:arrow], ""
	}
	return tail[:arrow], TrailingReturnArrow + " " + strings.Join(fields, " ")
}

// cleanDeclaration drops "{...}" remnants, the trailing ';' and a pure
// virtual "= 0" suffix
func cleanDeclaration(text string) string {
	for bodyRemnant.MatchString(text) {
		text = bodyRemnant.ReplaceAllString(text, "")
	}
	text = strings.TrimSpace(text)
	text = strings.TrimSpace(strings.TrimRight(text, ";"))
	text = pureVirtual.ReplaceAllString(text, "")
	return strings.TrimSpace(strings.TrimRight(text, ";"))
}

// paramListStart returns the first '(' outside angle brackets, so return
// types such as std::function<void(int)> are not mistaken for the name.
// Operator symbols such as "operator<" and "operator()" are skipped.
func paramListStart(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		if end := operatorSymbolEnd(s, i); end > i {
			i = end - 1
			continue
		}
		switch s[i] {
		case '<':
			depth++
		case '>':
			if depth > 0 {
				depth--
			}
		case '(':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// operatorSymbolEnd returns the index just past the symbol of an
// "operator" keyword starting at i, or i when there is none
func operatorSymbolEnd(s string, i int) int {
	if !strings.HasPrefix(s[i:], KeywordOperator) || (i > 0 && isIdentByte(s[i-1])) {
		return i
	}
	j := i + len(KeywordOperator)
	if j < len(s) && isIdentByte(s[j]) {
		return i
	}
	if strings.HasPrefix(s[j:], "()") {
		return j + 2
	}
	for j < len(s) && strings.IndexByte(operatorSymbols, s[j]) >= 0 {
		j++
	}
	return j
}

func isIdentByte(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// matchingParen returns the index of the ')' closing the '(' at open
func matchingParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func removeToken(tokens []string, drop string) []string {
	out := tokens[:0]
	for _, t := range tokens {
		if t != drop {
			out = append(out, t)
		}
	}
	return out
}

func isMethodName(name string) bool {
	if strings.HasPrefix(name, KeywordOperator) && len(name) > len(KeywordOperator) {
		return true
	}
	return isIdentifier(name)
}
