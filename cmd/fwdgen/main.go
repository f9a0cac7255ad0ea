package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/toyz/fwdgen/internal/cli"
	"github.com/toyz/fwdgen/internal/utils"
)

var version = "dev"

const description = `Generates a header defining a forwarding macro from the methods declared
between '// reflect begin' and '// reflect end' in the input file. The macro
name is derived from the output path.`

// CLI is the fwdgen command line
type CLI struct {
	Input  string `arg:"" name:"input" help:"Interface definition file containing the reflect region."`
	Output string `arg:"" name:"output" help:"Header to write. Its path also names the macro."`

	Verbose bool             `short:"v" xor:"verbosity" help:"Enable verbose output and detailed error reporting."`
	Quiet   bool             `short:"q" xor:"verbosity" help:"Only show errors."`
	Version kong.VersionFlag `name:"version" help:"Show version and exit."`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args and generates the header, returning the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	var flags CLI
	exitCode := -1

	parser, err := kong.New(&flags,
		kong.Name("fwdgen"),
		kong.Description(description),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
		kong.Vars{"version": version},
	)
	if err != nil {
		fmt.Fprintf(stderr, "fwdgen: %v\n", err)
		return 1
	}

	_, err = parser.Parse(args)
	if exitCode >= 0 {
		return exitCode
	}
	if err != nil {
		parser.Errorf("%s", err)
		var parseErr *kong.ParseError
		if stderrors.As(err, &parseErr) {
			_ = parseErr.Context.PrintUsage(true)
		}
		return 1
	}

	diagnostics := newDiagnostics(flags)
	diagnostics.SetOutput(stdout, stderr)

	diagnostics.Section("fwdgen")
	if flags.Verbose {
		diagnostics.Subsection("Configuration")
		diagnostics.List("Input: %s", flags.Input)
		diagnostics.List("Output: %s", flags.Output)
		diagnostics.List("Verbose mode: enabled")
	}

	generator := cli.NewGeneratorWithDiagnostics(flags.Verbose, diagnostics)
	generator.Reporter().SetOutput(stdout, stderr)

	summary, err := generator.Run(cli.Config{
		InputPath:  flags.Input,
		OutputPath: flags.Output,
		Verbose:    flags.Verbose,
		Quiet:      flags.Quiet,
	})
	if err != nil {
		generator.Reporter().ReportError(err)
		return 1
	}

	if flags.Verbose {
		diagnostics.Summary("Generation Summary", summary.Stats())
	}
	diagnostics.GenerationComplete(summary.OutputPath)
	return 0
}

func newDiagnostics(flags CLI) *utils.DiagnosticSystem {
	switch {
	case flags.Quiet:
		return utils.NewQuietDiagnostics()
	case flags.Verbose:
		return utils.NewVerboseDiagnostics()
	default:
		return utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}
}
