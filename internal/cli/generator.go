package cli

import (
	"time"

	"github.com/toyz/fwdgen/internal/errors"
	"github.com/toyz/fwdgen/internal/generator"
	"github.com/toyz/fwdgen/internal/models"
	"github.com/toyz/fwdgen/internal/region"
	"github.com/toyz/fwdgen/internal/utils"
	"github.com/toyz/fwdgen/internal/utils/fileops"
)

// Generator coordinates the CLI generation process: it reads the input,
// runs the pure pipeline and writes the header in one call
type Generator struct {
	fileOps       *fileops.FileOps
	codeGenerator *generator.Generator
	reporter      *DiagnosticReporter
	diagnostics   *utils.DiagnosticSystem
	summary       GenerationSummary
}

// NewGenerator creates a new CLI generator
func NewGenerator(verbose bool) *Generator {
	level := utils.DiagnosticInfo
	if verbose {
		level = utils.DiagnosticVerbose
	}
	return NewGeneratorWithDiagnostics(verbose, utils.NewDiagnosticSystem(level))
}

// NewGeneratorWithDiagnostics creates a new CLI generator that logs through diagnostics
func NewGeneratorWithDiagnostics(verbose bool, diagnostics *utils.DiagnosticSystem) *Generator {
	return &Generator{
		fileOps:       fileops.NewFileOps(),
		codeGenerator: generator.NewGenerator(),
		reporter:      NewDiagnosticReporter(verbose),
		diagnostics:   diagnostics,
	}
}

// Reporter returns the reporter used for warnings and failures
func (g *Generator) Reporter() *DiagnosticReporter {
	return g.reporter
}

// GetSummary returns the summary of the last run
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// Run executes the complete generation process. The output file is only
// written after every stage has succeeded.
func (g *Generator) Run(config Config) (GenerationSummary, error) {
	startTime := time.Now()
	g.summary = GenerationSummary{
		InputPath:  config.InputPath,
		OutputPath: config.OutputPath,
	}

	if err := config.Validate(); err != nil {
		return g.summary, err
	}

	g.diagnostics.Verbose("Starting code generation at %s", startTime.Format("15:04:05"))

	g.diagnostics.StartProgress("Reading input")
	input, err := g.fileOps.ReadFile(config.InputPath)
	if err != nil {
		g.diagnostics.EndProgress(false, "")
		return g.summary, err
	}
	g.diagnostics.EndProgress(true, config.InputPath)

	g.diagnostics.StartProgress("Generating forwarding macro")
	result, err := g.codeGenerator.Generate(input, config.OutputPath)
	if err != nil {
		g.diagnostics.EndProgress(false, "")
		return g.summary, attachFile(err, config.InputPath)
	}
	g.diagnostics.EndProgress(true, result.Macro.Name)

	g.summary.MacroName = result.Macro.Name
	g.summary.RegionFound = result.Region.Found
	g.summary.DeclarationsFound = len(result.Signatures)
	g.summary.MembersGenerated = len(result.Macro.Members)

	if !result.Region.Found {
		g.warnMissingRegion(input)
	}
	g.logResult(result)

	g.diagnostics.StartProgress("Writing output")
	if err := g.fileOps.EnsureParentDir(config.OutputPath); err != nil {
		g.diagnostics.EndProgress(false, "")
		return g.summary, err
	}
	if err := g.fileOps.WriteFile(config.OutputPath, []byte(result.Macro.Content)); err != nil {
		g.diagnostics.EndProgress(false, "")
		return g.summary, err
	}
	g.diagnostics.EndProgress(true, config.OutputPath)

	g.diagnostics.Verbose("Generation finished in %v", time.Since(startTime).Round(time.Millisecond))
	return g.summary, nil
}

func (g *Generator) warnMissingRegion(input string) {
	if g.diagnostics.Level() < utils.DiagnosticWarn {
		return
	}
	markers := region.Inspect(input)
	warning := errors.MissingRegionMarkers(markers.Begin, markers.End)
	g.reporter.ReportWarning(warning.Error(), warning.Suggestions()...)
}

func (g *Generator) logResult(result *models.GenerationResult) {
	for _, note := range g.codeGenerator.Diagnostics(result) {
		g.diagnostics.Verbose("%s", note)
	}

	if g.diagnostics.Level() < utils.DiagnosticDebug {
		return
	}
	g.diagnostics.Indent()
	for _, sig := range result.Signatures {
		g.diagnostics.Debug("line %d: %s %s (%d params, const=%t)",
			sig.Line, sig.ReturnType, sig.Name, len(sig.Params), sig.IsConst)
	}
	g.diagnostics.Unindent()
}

// attachFile records the input path on every located error in err
func attachFile(err error, path string) error {
	if multi, ok := err.(*errors.MultipleErrors); ok {
		for _, fe := range multi.Errors {
			if base, ok := fe.(*errors.BaseError); ok {
				base.WithFile(path)
			}
		}
		return multi
	}
	if base, ok := err.(*errors.BaseError); ok {
		return base.WithFile(path)
	}
	return err
}
