package cli

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toyz/fwdgen/internal/errors"
)

func newTestReporter(verbose bool) (*DiagnosticReporter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	reporter := NewDiagnosticReporter(verbose)
	reporter.SetOutput(&out, &errOut)
	return reporter, &out, &errOut
}

func TestDiagnosticReporter_ReportWarning(t *testing.T) {
	reporter, _, errOut := newTestReporter(false)

	reporter.ReportWarning("This is a test warning")
	reporter.ReportWarning("This is another warning", "First suggestion", "Second suggestion")

	output := errOut.String()
	assert.Contains(t, output, "This is a test warning\n")
	assert.Contains(t, output, "This is another warning\n")
	assert.NotContains(t, output, "First suggestion")
}

func TestDiagnosticReporter_ReportWarningVerbose(t *testing.T) {
	reporter, _, errOut := newTestReporter(true)

	reporter.ReportWarning("markers missing", "Add '// reflect begin'")

	assert.Contains(t, errOut.String(), "    Add '// reflect begin'\n")
}

func TestDiagnosticReporter_ReportError(t *testing.T) {
	err := errors.MalformedDeclaration(12, "int count;", "missing '('").WithFile("stream.hpp")

	reporter, out, errOut := newTestReporter(false)
	reporter.ReportError(err)

	output := errOut.String()
	expected := []string{
		"ERROR: Generation Failed",
		"Malformed Declaration",
		`Message: stream.hpp:12: malformed declaration "int count;": missing '('`,
		"Location: stream.hpp:12",
		"Context:\n   Declaration: int count;\n",
		"Suggestions:\n   1. Write one method declaration per line",
		"Declaration Requirements:",
		"Run with --verbose",
	}
	for _, want := range expected {
		assert.Contains(t, output, want)
	}
	assert.NotContains(t, output, "Verbose Debug Information")
	assert.Empty(t, out.String())
}

func TestDiagnosticReporter_ReportErrorVerbose(t *testing.T) {
	cause := fmt.Errorf("mkdir gen: not a directory")
	err := errors.WrapOutputDirectoryError("gen", cause)

	reporter, _, errOut := newTestReporter(true)
	reporter.ReportError(err)

	output := errOut.String()
	assert.Contains(t, output, "Output Directory Error")
	assert.Contains(t, output, "Path: gen")
	assert.Contains(t, output, "Error Code: OutputDirectoryCreationFailure")
	assert.Contains(t, output, "1. mkdir gen: not a directory")
}

func TestDiagnosticReporter_ReportMultipleErrors(t *testing.T) {
	multi := errors.NewMultipleErrors()
	multi.Add(errors.MalformedDeclaration(2, "int a;", "missing '('"))
	multi.Add(errors.MalformedDeclaration(4, "int b;", "missing '('"))

	reporter, _, errOut := newTestReporter(false)
	reporter.ReportError(multi)

	output := errOut.String()
	assert.Contains(t, output, "2 problems found:")
	assert.Contains(t, output, "[1/2] ")
	assert.Contains(t, output, "[2/2] ")
	assert.Equal(t, 1, strings.Count(output, "Declaration Requirements:"))
}

func TestDiagnosticReporter_ReportBasicError(t *testing.T) {
	reporter, _, errOut := newTestReporter(false)
	reporter.ReportError(fmt.Errorf("something broke"))

	assert.Contains(t, errOut.String(), "Message: something broke")
	assert.NotContains(t, errOut.String(), "For more help")
}

func TestDiagnosticReporter_FormatContextKey(t *testing.T) {
	reporter := NewDiagnosticReporter(false)

	tests := []struct {
		key  string
		want string
	}{
		{"declaration", "Declaration"},
		{"begin_marker_found", "'// reflect begin' found"},
		{"end_marker_found", "'// reflect end' found"},
		{"operation", "Operation"},
		{"some_other_key", "Some Other Key"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, reporter.formatContextKey(tt.key))
		})
	}
}

func TestDiagnosticReporter_Debug(t *testing.T) {
	quiet, _, quietErr := newTestReporter(false)
	quiet.Debug("hidden %d", 1)
	assert.Empty(t, quietErr.String())

	verbose, _, verboseErr := newTestReporter(true)
	verbose.Debug("shown %d", 2)
	assert.Equal(t, "[DEBUG] shown 2\n", verboseErr.String())
}

func TestDiagnosticReporter_ReportSuccess(t *testing.T) {
	reporter, out, _ := newTestReporter(false)
	reporter.ReportSuccess(GenerationSummary{
		InputPath:         "stream.hpp",
		OutputPath:        "gen/stream_forward.hpp",
		MacroName:         "GEN_STREAM_FORWARD",
		RegionFound:       false,
		DeclarationsFound: 2,
		MembersGenerated:  2,
	})

	output := out.String()
	assert.Contains(t, output, "Macro:   GEN_STREAM_FORWARD")
	assert.Contains(t, output, "Members: 2 of 2 declarations forwarded")
	assert.Contains(t, output, "no reflect region was found")
}

func TestGenerationSummary_Stats(t *testing.T) {
	stats := GenerationSummary{MacroName: "IO_FORWARD", MembersGenerated: 3}.Stats()

	assert.Equal(t, "IO_FORWARD", stats["Macro"])
	assert.Equal(t, 3, stats["Members"])
	assert.Len(t, stats, 6)
}
