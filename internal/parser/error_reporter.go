package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/toyz/fwdgen/internal/errors"
	"github.com/toyz/fwdgen/internal/models"
)

// DeclarationErrorReporter turns parse failures into errors with suggestions
// that fit the specific problem
type DeclarationErrorReporter struct{}

// NewDeclarationErrorReporter creates a new declaration error reporter
func NewDeclarationErrorReporter() *DeclarationErrorReporter {
	return &DeclarationErrorReporter{}
}

var reporter = NewDeclarationErrorReporter()

// ReportMalformed creates a MalformedDeclaration error for decl
func (r *DeclarationErrorReporter) ReportMalformed(decl models.DeclarationLine, reason string) *errors.BaseError {
	err := errors.MalformedDeclaration(decl.Line, decl.Text, reason)

	// Add specific suggestions based on the reason
	switch {
	case strings.Contains(reason, "missing '('"):
		err.WithSuggestions(
			"Only method declarations can be forwarded; move fields, typedefs and nested types out of the region",
			"Keep the whole declaration on one line, or put only a template clause on the line before it",
		)
	case strings.Contains(reason, "never closed"):
		err.WithSuggestion("Parameter lists must close on the same line they open")
	case strings.Contains(reason, "variadic"):
		err.WithSuggestions(
			"C-style '...' arguments cannot be perfectly forwarded",
			"Use a parameter pack instead: template <typename... Args> void log(Args&&... args);",
		)
	case strings.Contains(reason, "template"):
		err.WithSuggestion("Every template parameter needs a name so it can be passed on explicitly, e.g. 'template <typename T>'")
	case strings.Contains(reason, "return type"):
		err.WithSuggestion("Constructors, destructors and conversion operators cannot be forwarded")
	}

	if example := r.exampleFor(decl.Text); example != "" {
		err.WithSuggestions("Example declaration:", example)
	}

	return err
}

// ReportTemplateClause creates a MalformedDeclaration error for a template
// clause that cannot be re-specified at the call site
func (r *DeclarationErrorReporter) ReportTemplateClause(decl models.DeclarationLine, cause error) *errors.BaseError {
	return r.ReportMalformed(decl, cause.Error())
}

// exampleFor returns a well formed declaration resembling text
func (r *DeclarationErrorReporter) exampleFor(text string) string {
	switch {
	case strings.HasPrefix(text, KeywordTemplate):
		return "template <typename T> T get(int id) const;"
	case strings.Contains(text, KeywordConst):
		return "virtual int read(char* buf, int n) const = 0;"
	default:
		return "virtual void close() = 0;"
	}
}

// GenerateRegionDiagnostics returns notes about a successfully parsed region
// that may not be what the author intended
func (r *DeclarationErrorReporter) GenerateRegionDiagnostics(region models.RawRegion, signatures []models.MethodSignature) []string {
	var diagnostics []string

	if strings.TrimSpace(region.Text) == "" {
		diagnostics = append(diagnostics, "The reflect region is empty. The macro will forward nothing.")
	} else if len(signatures) == 0 {
		diagnostics = append(diagnostics, "No method declarations found in the reflect region.")
	}

	overloads := make(map[string]int)
	for _, sig := range signatures {
		overloads[sig.Name]++
	}

	names := make([]string, 0, len(overloads))
	for name, count := range overloads {
		if count > 1 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		diagnostics = append(diagnostics, fmt.Sprintf("Method '%s' is declared %d times; each overload gets its own forwarding member", name, overloads[name]))
	}

	for _, sig := range signatures {
		for _, p := range sig.Params {
			if p.Default != "" {
				diagnostics = append(diagnostics, fmt.Sprintf("Line %d: default argument of '%s' in '%s' is repeated on the forwarding member", sig.Line, p.Name, sig.Name))
			}
		}
	}

	return diagnostics
}
