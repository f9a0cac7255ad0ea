package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/toyz/fwdgen/internal/errors"
)

// DiagnosticReporter provides user-friendly error reporting and diagnostics
type DiagnosticReporter struct {
	verbose bool
	out     io.Writer
	errOut  io.Writer
}

// NewDiagnosticReporter creates a new diagnostic reporter
func NewDiagnosticReporter(verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{
		verbose: verbose,
		out:     os.Stdout,
		errOut:  os.Stderr,
	}
}

// SetOutput redirects the reporter's output
func (r *DiagnosticReporter) SetOutput(out, errOut io.Writer) {
	r.out = out
	r.errOut = errOut
}

// ReportWarning provides user-friendly warning reporting. Suggestions are
// only listed in verbose mode.
func (r *DiagnosticReporter) ReportWarning(message string, suggestions ...string) {
	orange := color.New(color.FgYellow, color.Bold)
	orange.Fprint(r.errOut, "! ")
	fmt.Fprintf(r.errOut, "%s\n", message)

	if r.verbose {
		for _, s := range suggestions {
			fmt.Fprintf(r.errOut, "    %s\n", s)
		}
	}
}

// ReportError provides comprehensive error reporting with user-friendly output
func (r *DiagnosticReporter) ReportError(err error) {
	fmt.Fprintf(r.errOut, "\nERROR: Generation Failed\n")
	fmt.Fprintf(r.errOut, "========================\n\n")

	if multi, ok := err.(*errors.MultipleErrors); ok && multi.Count() > 1 {
		fmt.Fprintf(r.errOut, "%d problems found:\n\n", multi.Count())
		for i, fe := range multi.Errors {
			fmt.Fprintf(r.errOut, "[%d/%d] ", i+1, multi.Count())
			r.reportFwdgenError(fe)
		}
		r.printAdditionalHelp(multi.Errors[0].ErrorCode())
	} else if fe := errors.Find(err); fe != nil {
		r.reportFwdgenError(fe)
		r.printAdditionalHelp(fe.ErrorCode())
	} else {
		r.reportBasicError(err)
	}

	fmt.Fprintf(r.errOut, "\n")
}

// reportFwdgenError reports an error with its location, context and suggestions
func (r *DiagnosticReporter) reportFwdgenError(fe errors.FwdgenError) {
	r.printErrorHeader(fe.ErrorCode())

	fmt.Fprintf(r.errOut, "Message: %s\n\n", fe.Error())

	if loc := fe.Location(); !loc.IsEmpty() {
		fmt.Fprintf(r.errOut, "Location: %s\n\n", loc.String())
	}

	if ctx := fe.Context(); len(ctx) > 0 {
		r.printContext(ctx)
	}

	if len(fe.Suggestions()) > 0 {
		r.printSuggestions(fe.Suggestions())
	}

	if r.verbose {
		r.printVerboseDebuggingInfo(fe)
	}
}

// reportBasicError reports a basic error without rich context
func (r *DiagnosticReporter) reportBasicError(err error) {
	fmt.Fprintf(r.errOut, "Message: %s\n\n", err.Error())
}

// printErrorHeader prints a formatted error header based on error code
func (r *DiagnosticReporter) printErrorHeader(code errors.ErrorCode) {
	var errorTypeStr string

	switch code {
	case errors.UnbalancedBracesCode:
		errorTypeStr = "Unbalanced Braces"
	case errors.MalformedDeclarationCode:
		errorTypeStr = "Malformed Declaration"
	case errors.MissingRegionMarkersCode:
		errorTypeStr = "Missing Region Markers"
	case errors.GenerationErrorCode, errors.TemplateErrorCode:
		errorTypeStr = "Code Generation Error"
	case errors.FileSystemErrorCode:
		errorTypeStr = "File System Error"
	case errors.OutputDirectoryCode:
		errorTypeStr = "Output Directory Error"
	case errors.ConfigurationErrorCode:
		errorTypeStr = "Configuration Error"
	default:
		errorTypeStr = "Unknown Error"
	}

	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(r.errOut, "Type: %s\n", errorTypeStr)
	fmt.Fprintf(r.errOut, "%s\n\n", strings.Repeat("-", len(errorTypeStr)+6))
}

// printContext prints context information in a readable format
func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	fmt.Fprintf(r.errOut, "Context:\n")

	// Print important context items first
	importantKeys := []string{"declaration", "path", "operation"}
	printed := make(map[string]bool)

	for _, key := range importantKeys {
		if value, exists := context[key]; exists {
			fmt.Fprintf(r.errOut, "   %s: %v\n", r.formatContextKey(key), value)
			printed[key] = true
		}
	}

	rest := make([]string, 0, len(context))
	for key := range context {
		if !printed[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)

	for _, key := range rest {
		fmt.Fprintf(r.errOut, "   %s: %v\n", r.formatContextKey(key), context[key])
	}

	fmt.Fprintf(r.errOut, "\n")
}

// formatContextKey formats context keys to be more readable
func (r *DiagnosticReporter) formatContextKey(key string) string {
	switch key {
	case "declaration":
		return "Declaration"
	case "begin_marker_found":
		return "'// reflect begin' found"
	case "end_marker_found":
		return "'// reflect end' found"
	default:
		// Convert snake_case to Title Case
		parts := strings.Split(key, "_")
		for i, part := range parts {
			if len(part) > 0 {
				parts[i] = strings.ToUpper(part[:1]) + part[1:]
			}
		}
		return strings.Join(parts, " ")
	}
}

// printSuggestions prints actionable suggestions
func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	fmt.Fprintf(r.errOut, "Suggestions:\n")

	for i, suggestion := range suggestions {
		lines := strings.Split(suggestion, "\n")
		fmt.Fprintf(r.errOut, "   %d. %s\n", i+1, lines[0])
		for _, line := range lines[1:] {
			if strings.TrimSpace(line) != "" {
				fmt.Fprintf(r.errOut, "      %s\n", line)
			}
		}
	}

	fmt.Fprintf(r.errOut, "\n")
}

// printAdditionalHelp prints additional help based on error code
func (r *DiagnosticReporter) printAdditionalHelp(code errors.ErrorCode) {
	switch code {
	case errors.MalformedDeclarationCode:
		fmt.Fprintf(r.errOut, "Declaration Requirements:\n")
		fmt.Fprintf(r.errOut, "  - One method declaration per line\n")
		fmt.Fprintf(r.errOut, "  - A template clause may sit alone on the line before its declaration\n")
		fmt.Fprintf(r.errOut, "  - Fields, typedefs and nested types belong outside the reflect region\n\n")

	case errors.UnbalancedBracesCode:
		fmt.Fprintf(r.errOut, "Inline Bodies:\n")
		fmt.Fprintf(r.errOut, "  - Every '{' inside the reflect region needs a matching '}'\n")
		fmt.Fprintf(r.errOut, "  - The region must not end in the middle of a method body\n\n")
	}

	fmt.Fprintf(r.errOut, "For more help:\n")
	fmt.Fprintf(r.errOut, "  - Run with --verbose for more detailed output\n")
}

// printVerboseDebuggingInfo prints additional debugging information in verbose mode
func (r *DiagnosticReporter) printVerboseDebuggingInfo(fe errors.FwdgenError) {
	fmt.Fprintf(r.errOut, "Verbose Debug Information:\n")
	fmt.Fprintf(r.errOut, "  Error Code: %s (%d)\n", fe.ErrorCode(), int(fe.ErrorCode()))

	if cause := fe.Unwrap(); cause != nil {
		fmt.Fprintf(r.errOut, "  Error Chain:\n")
		level := 1
		for err := cause; err != nil; level++ {
			fmt.Fprintf(r.errOut, "    %d. %s\n", level, err.Error())
			unwrapper, ok := err.(interface{ Unwrap() error })
			if !ok {
				break
			}
			err = unwrapper.Unwrap()
		}
	}

	fmt.Fprintf(r.errOut, "\n")
}

// Debug prints debug information when verbose mode is enabled
func (r *DiagnosticReporter) Debug(format string, args ...interface{}) {
	if r.verbose {
		fmt.Fprintf(r.errOut, "[DEBUG] "+format+"\n", args...)
	}
}

// ReportSuccess reports successful generation with summary information
func (r *DiagnosticReporter) ReportSuccess(summary GenerationSummary) {
	fmt.Fprintf(r.out, "\nGeneration Completed Successfully!\n")
	fmt.Fprintf(r.out, "==================================\n\n")

	fmt.Fprintf(r.out, "Input:   %s\n", summary.InputPath)
	fmt.Fprintf(r.out, "Output:  %s\n", summary.OutputPath)
	fmt.Fprintf(r.out, "Macro:   %s\n", summary.MacroName)
	fmt.Fprintf(r.out, "Members: %d of %d declarations forwarded\n", summary.MembersGenerated, summary.DeclarationsFound)

	if !summary.RegionFound {
		fmt.Fprintf(r.out, "\nNote: no reflect region was found; the whole input was used\n")
	}
}

// GenerationSummary contains information about the generation process
type GenerationSummary struct {
	InputPath         string
	OutputPath        string
	MacroName         string
	RegionFound       bool
	DeclarationsFound int
	MembersGenerated  int
}

// Stats returns the summary as DiagnosticSystem.Summary statistics
func (s GenerationSummary) Stats() map[string]interface{} {
	return map[string]interface{}{
		"Input":        s.InputPath,
		"Output":       s.OutputPath,
		"Macro":        s.MacroName,
		"Region found": s.RegionFound,
		"Declarations": s.DeclarationsFound,
		"Members":      s.MembersGenerated,
	}
}
