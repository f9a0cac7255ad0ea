package parser

const (
	// KeywordVirtual is removed from every declaration
	KeywordVirtual = "virtual"

	// KeywordConst marks a const member function when it trails the parameter list
	KeywordConst = "const"

	// KeywordTemplate opens a template parameter-list clause
	KeywordTemplate = "template"

	// KeywordOperator names an overloaded operator, e.g. "operator<"
	KeywordOperator = "operator"

	// TrailingReturnArrow introduces a trailing return type
	TrailingReturnArrow = "->"

	// KeywordVoid alone in a parameter list means no parameters
	KeywordVoid = "void"
)

// droppedQualifiers only make sense on virtual members and are not re-emitted
var droppedQualifiers = map[string]bool{
	"override": true,
	"final":    true,
}

// cvQualifiers qualify a type and are never a type on their own
var cvQualifiers = map[string]bool{
	"const":    true,
	"volatile": true,
}

// accessSpecifiers are skipped by the normalizer
var accessSpecifiers = map[string]bool{
	"public:":    true,
	"protected:": true,
	"private:":   true,
}

// builtinTypes cannot be parameter names, so a trailing one means the
// parameter is unnamed
var builtinTypes = map[string]bool{
	"bool":     true,
	"char":     true,
	"short":    true,
	"int":      true,
	"long":     true,
	"float":    true,
	"double":   true,
	"signed":   true,
	"unsigned": true,
}

// operatorSymbols may follow the operator keyword in an operator name
const operatorSymbols = "<>=!+-*/%^&|~[],"
