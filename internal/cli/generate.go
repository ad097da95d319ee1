package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/longplay45/swissgrid/pkg/errors"
	"github.com/longplay45/swissgrid/pkg/export"
	"github.com/longplay45/swissgrid/pkg/grid"
	"github.com/longplay45/swissgrid/pkg/render"
)

// errTTYRequired is returned when the wizard is needed but stdin is not a
// terminal.
var errTTYRequired = errors.New(errors.ErrCodeInternal, "interactive mode requires a TTY terminal")

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate grid assets for a page format",
		Long: `Generate computes a modular grid for an A-series page and writes the
summary JSON, the plain-text parameter sheet, and the printable baseline
grid PDF.

Without --format and --grid the command starts the interactive wizard
(requires a terminal).`,
		Example: `  swissgrid generate --format A4 --grid 9x9
  swissgrid generate --format A3 --orientation landscape
  swissgrid generate --format A2 --grid 6x8 --margin 2
  swissgrid generate --format A4 --grid 2x4 --baseline 24`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.format == "" || flags.grid == "" {
				if !stdinIsTerminal() {
					printError("interactive mode requires a terminal; provide at minimum --format and --grid")
					return errTTYRequired
				}
				params, err := runWizard()
				if err != nil {
					return err
				}
				return c.generate(params, flags)
			}

			params, err := flags.params()
			if err != nil {
				return err
			}
			return c.generate(params, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "A-series page format (A0-A6)")
	cmd.Flags().StringVarP(&flags.orientation, "orientation", "r", "portrait", "page orientation (portrait or landscape)")
	cmd.Flags().StringVarP(&flags.grid, "grid", "g", "", "grid dimensions as 'NxM' (e.g. 9x9, 2x4)")
	cmd.Flags().IntVarP(&flags.margin, "margin", "m", 1, "margin method: 1=Progressive, 2=Van de Graaf, 3=Grid-based")
	cmd.Flags().Float64VarP(&flags.baseline, "baseline", "b", 0, "baseline unit override in points (0 = scale from 12pt A4 reference)")
	cmd.Flags().StringVarP(&flags.outputDir, "output-dir", "o", ".", "directory for the generated files")
	cmd.Flags().BoolVar(&flags.noPDF, "no-pdf", false, "skip the PDF reference sheet")
	cmd.Flags().BoolVar(&flags.withSVG, "svg", false, "additionally write module and baseline grid SVGs")

	return cmd
}

// runInteractive backs the bare root invocation: wizard plus default
// output options.
func (c *CLI) runInteractive(cmd *cobra.Command) error {
	if !stdinIsTerminal() {
		return cmd.Help()
	}
	params, err := runWizard()
	if err != nil {
		return err
	}
	return c.generate(params, generateFlags{outputDir: "."})
}

// generate runs the engine and writes the artifacts.
func (c *CLI) generate(params grid.Params, flags generateFlags) error {
	prog := newProgress(c.Logger)

	spec, err := grid.Build(params)
	if err != nil {
		return err
	}

	opts := []export.Option{}
	if flags.noPDF {
		opts = append(opts, export.SkipPDF())
	} else {
		if fontPath, err := render.FindFont(); err == nil {
			opts = append(opts, export.WithFontPath(fontPath))
		} else {
			c.Logger.Warn("rendering PDF without footer", "reason", err)
		}
	}
	if flags.withSVG {
		opts = append(opts, export.WithSVG())
	}

	outputDir := flags.outputDir
	if outputDir == "" {
		outputDir = "."
	}
	res, err := export.Write(outputDir, spec, opts...)
	if err != nil {
		return err
	}

	printNewline()
	printSummary(render.NewSummary(spec))
	printNewline()

	if res.PDFErr != nil {
		printWarning("PDF generation failed: %v", res.PDFErr)
	}

	printSuccess("Generated %s (%s, %dx%d grid)",
		spec.Format, spec.Orientation, spec.Columns, spec.Rows)
	printFile(res.JSONPath)
	printFile(res.TXTPath)
	if res.PDFPath != "" {
		printFile(res.PDFPath)
	}
	for _, p := range res.SVGPaths {
		printFile(p)
	}

	prog.done("Grid assets written")
	return nil
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
