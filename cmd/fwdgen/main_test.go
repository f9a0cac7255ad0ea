package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const input = `struct Stream {
    // reflect begin
    virtual void close() = 0;
    virtual int read(char* buf, int n) const = 0;
    // reflect end
};
`

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "stream.hpp")
	require.NoError(t, os.WriteFile(in, []byte(input), 0644))
	out := filepath.Join(dir, "gen", "stream_forward.hpp")

	code, stdout, stderr := runCLI(in, out)

	assert.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "fwdgen: wrote "+out)
	assert.FileExists(t, out)
}

func TestRun_Quiet(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "stream.hpp")
	require.NoError(t, os.WriteFile(in, []byte(input), 0644))

	code, stdout, stderr := runCLI("--quiet", in, filepath.Join(dir, "io.hpp"))

	assert.Equal(t, 0, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestRun_Verbose(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "stream.hpp")
	require.NoError(t, os.WriteFile(in, []byte(input), 0644))

	code, stdout, _ := runCLI("-v", in, filepath.Join(dir, "io.hpp"))

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Configuration:")
	assert.Contains(t, stdout, "Generation Summary")
	assert.Contains(t, stdout, "IO_FORWARD")
}

func TestRun_Failures(t *testing.T) {
	dir := t.TempDir()
	malformed := filepath.Join(dir, "bad.hpp")
	require.NoError(t, os.WriteFile(malformed, []byte("// reflect begin\nint count;\n// reflect end\n"), 0644))

	tests := []struct {
		name       string
		args       []string
		wantStderr string
	}{
		{"no arguments", nil, "expected"},
		{"one argument", []string{malformed}, "expected"},
		{"verbose and quiet", []string{"-v", "-q", malformed, filepath.Join(dir, "x.hpp")}, "can't be used together"},
		{"missing input", []string{filepath.Join(dir, "missing.hpp"), filepath.Join(dir, "x.hpp")}, "File System Error"},
		{"malformed declaration", []string{malformed, filepath.Join(dir, "x.hpp")}, "Malformed Declaration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(tt.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, tt.wantStderr)
		})
	}

	assert.NoFileExists(t, filepath.Join(dir, "x.hpp"))
}

func TestRun_Help(t *testing.T) {
	code, stdout, _ := runCLI("--help")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Usage: fwdgen")
	assert.Contains(t, stdout, "<input> <output>")
}

func TestRun_Version(t *testing.T) {
	code, stdout, _ := runCLI("--version")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "dev")
}
