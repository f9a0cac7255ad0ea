package cli

import (
	"github.com/toyz/fwdgen/internal/errors"
	"github.com/toyz/fwdgen/internal/utils"
	"github.com/toyz/fwdgen/internal/utils/fileops"
)

// Config holds the configuration for the CLI generator
type Config struct {
	// InputPath is the interface definition file holding the reflect region
	InputPath string

	// OutputPath is the header to write. Its path also determines the macro name.
	OutputPath string

	// Verbose enables detailed logging and error reporting
	Verbose bool

	// Quiet limits output to errors
	Quiet bool
}

// Validate checks the configuration before any file is touched
func (c Config) Validate() error {
	paths := fileops.NewPathValidator()

	chain := utils.NewValidatorChain(
		utils.Field(func(c Config) string { return c.InputPath }, utils.NotEmpty("input")),
		utils.Field(func(c Config) string { return c.OutputPath }, utils.NotEmpty("output")),
		utils.Custom("output", "must not be the input file", func(c Config) bool {
			return !paths.SamePath(c.InputPath, c.OutputPath)
		}),
		utils.Conditional(func(c Config) bool { return paths.Exists(c.OutputPath) },
			utils.Custom("output", "is an existing directory", func(c Config) bool {
				return !paths.IsDir(c.OutputPath)
			})),
		utils.Custom("verbose", "cannot be combined with quiet", func(c Config) bool {
			return !(c.Verbose && c.Quiet)
		}),
	)

	if err := chain.Validate(c); err != nil {
		if ve, ok := err.(utils.ValidationError); ok {
			return errors.ConfigurationError(ve.Field, ve.Message).WithCause(err)
		}
		return err
	}
	return nil
}
