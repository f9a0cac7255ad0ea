package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/fwdgen/internal/errors"
	"github.com/toyz/fwdgen/internal/utils"
)

const streamInput = `#pragma once

struct Stream {
    // reflect begin
    virtual void close() = 0;
    virtual int read(char* buf, int n) const = 0;
    // reflect end
};
`

func newTestGenerator(t *testing.T, level utils.DiagnosticLevel) (*Generator, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var out, errOut bytes.Buffer
	diagnostics := utils.NewDiagnosticSystem(level)
	diagnostics.SetOutput(&out, &errOut)
	diagnostics.SetColors(false)
	diagnostics.SetShowTime(false)

	g := NewGeneratorWithDiagnostics(level >= utils.DiagnosticVerbose, diagnostics)
	g.Reporter().SetOutput(&out, &errOut)
	return g, &out, &errOut
}

func writeInput(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "stream.hpp")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestGenerator_Run(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, streamInput)
	output := filepath.Join(dir, "gen", "deep", "stream_forward.hpp")

	g, out, errOut := newTestGenerator(t, utils.DiagnosticInfo)
	summary, err := g.Run(Config{InputPath: input, OutputPath: output})
	require.NoError(t, err)

	assert.Equal(t, "STREAM_FORWARD", summary.MacroName)
	assert.True(t, summary.RegionFound)
	assert.Equal(t, 2, summary.DeclarationsFound)
	assert.Equal(t, 2, summary.MembersGenerated)
	assert.Equal(t, summary, g.GetSummary())

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "#define STREAM_FORWARD(FWD_DELEGATE) \\\n")
	assert.Contains(t, string(content), "return FWD_DELEGATE.close(); }")
	assert.Contains(t, string(content), "int read(char* buf, int n) const { return FWD_DELEGATE.read(std::forward<char*>(buf), std::forward<int>(n)); }")

	assert.Contains(t, out.String(), "✓ Reading input")
	assert.Contains(t, out.String(), "✓ Writing output")
	assert.Empty(t, errOut.String())
}

func TestGenerator_Run_ExistingOutputDirectory(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, streamInput)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "gen"), 0755))
	output := filepath.Join(dir, "gen", "stream.hpp")

	g, _, _ := newTestGenerator(t, utils.DiagnosticError)
	_, err := g.Run(Config{InputPath: input, OutputPath: output})
	require.NoError(t, err)
	assert.FileExists(t, output)
}

func TestGenerator_Run_Idempotent(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, streamInput)
	output := filepath.Join(dir, "stream_forward.hpp")

	g, _, _ := newTestGenerator(t, utils.DiagnosticError)
	_, err := g.Run(Config{InputPath: input, OutputPath: output})
	require.NoError(t, err)
	first, err := os.ReadFile(output)
	require.NoError(t, err)

	_, err = g.Run(Config{InputPath: input, OutputPath: output})
	require.NoError(t, err)
	second, err := os.ReadFile(output)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerator_Run_OutputDirectoryBlocked(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, streamInput)
	blocker := filepath.Join(dir, "gen")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0644))

	g, _, _ := newTestGenerator(t, utils.DiagnosticError)
	_, err := g.Run(Config{InputPath: input, OutputPath: filepath.Join(blocker, "sub", "stream.hpp")})

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.OutputDirectoryCode))
}

func TestGenerator_Run_MissingInput(t *testing.T) {
	dir := t.TempDir()

	g, _, _ := newTestGenerator(t, utils.DiagnosticError)
	_, err := g.Run(Config{InputPath: filepath.Join(dir, "nope.hpp"), OutputPath: filepath.Join(dir, "out.hpp")})

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.FileSystemErrorCode))
	assert.NoFileExists(t, filepath.Join(dir, "out.hpp"))
}

func TestGenerator_Run_MissingMarkers(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "virtual void reset() = 0;\n")
	output := filepath.Join(dir, "reset.hpp")

	g, _, errOut := newTestGenerator(t, utils.DiagnosticWarn)
	summary, err := g.Run(Config{InputPath: input, OutputPath: output})
	require.NoError(t, err)

	assert.False(t, summary.RegionFound)
	assert.Equal(t, 1, summary.MembersGenerated)
	assert.Contains(t, errOut.String(), "reflect region markers not found")
	assert.FileExists(t, output)
}

func TestGenerator_Run_MissingMarkersQuiet(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "virtual void reset() = 0;\n")

	g, out, errOut := newTestGenerator(t, utils.DiagnosticError)
	_, err := g.Run(Config{InputPath: input, OutputPath: filepath.Join(dir, "reset.hpp")})
	require.NoError(t, err)

	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}

func TestGenerator_Run_MalformedWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "// reflect begin\nvirtual void close() = 0;\nint count;\n// reflect end\n")
	output := filepath.Join(dir, "out", "stream.hpp")

	g, out, _ := newTestGenerator(t, utils.DiagnosticInfo)
	_, err := g.Run(Config{InputPath: input, OutputPath: output})

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.MalformedDeclarationCode))
	fe := errors.Find(err)
	require.NotNil(t, fe)
	assert.Equal(t, input, fe.Location().File)
	assert.Equal(t, 3, fe.Location().Line)

	assert.Contains(t, out.String(), "✗ Generating forwarding macro")
	assert.NoFileExists(t, output)
	assert.NoDirExists(t, filepath.Join(dir, "out"))
}

func TestGenerator_Run_InvalidConfig(t *testing.T) {
	g, _, _ := newTestGenerator(t, utils.DiagnosticError)
	_, err := g.Run(Config{OutputPath: "out.hpp"})

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ConfigurationErrorCode))
}

func TestGenerator_Run_Verbose(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, streamInput)

	g, out, _ := newTestGenerator(t, utils.DiagnosticDebug)
	_, err := g.Run(Config{InputPath: input, OutputPath: filepath.Join(dir, "io.hpp"), Verbose: true})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "[VERBOSE] Starting code generation")
	assert.Contains(t, out.String(), "[DEBUG] line 5: void close (0 params, const=false)")
	assert.Contains(t, out.String(), "[DEBUG] line 6: int read (2 params, const=true)")
}

func TestNewGenerator(t *testing.T) {
	g := NewGenerator(true)
	require.NotNil(t, g.Reporter())
	assert.True(t, g.Reporter().verbose)
	assert.Equal(t, utils.DiagnosticVerbose, g.diagnostics.Level())
}
