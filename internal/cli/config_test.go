package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/fwdgen/internal/errors"
)

func TestConfig_Validate(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "stream.hpp")
	require.NoError(t, os.WriteFile(input, []byte("// reflect begin\n// reflect end\n"), 0644))

	tests := []struct {
		name      string
		config    Config
		wantField string
	}{
		{
			name:   "valid",
			config: Config{InputPath: input, OutputPath: filepath.Join(dir, "gen", "stream_forward.hpp")},
		},
		{
			name:      "missing input",
			config:    Config{OutputPath: "out.hpp"},
			wantField: "input",
		},
		{
			name:      "missing output",
			config:    Config{InputPath: input},
			wantField: "output",
		},
		{
			name:      "output overwrites input",
			config:    Config{InputPath: input, OutputPath: filepath.Join(dir, ".", "stream.hpp")},
			wantField: "output",
		},
		{
			name:      "output is a directory",
			config:    Config{InputPath: input, OutputPath: dir},
			wantField: "output",
		},
		{
			name:      "verbose and quiet",
			config:    Config{InputPath: input, OutputPath: "out.hpp", Verbose: true, Quiet: true},
			wantField: "verbose",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.ConfigurationErrorCode))
			fe := errors.Find(err)
			require.NotNil(t, fe)
			assert.Equal(t, tt.wantField, fe.Context()["field"])
		})
	}
}
