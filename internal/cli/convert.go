package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/brepml/brepgraph/pkg/pipeline"
)

// convertCommand creates the convert command for the full document-to-graph
// pipeline.
func (c *CLI) convertCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "convert [document.json]",
		Short: "Convert a shape document into a typed graph",
		Long: `Convert a shape document into a typed graph.

The convert command builds the solid described by the document, extracts its
topology and per-entity geometry, and assembles a typed heterogeneous graph
with dense feature matrices and index-pair relations. The graph is exported
as JSON by default; dot and svg produce node-link diagrams of the result.

Results are cached locally for faster subsequent runs. Use --refresh to force
a fresh conversion.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runConvert(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): json (default), dot, svg (comma-separated)")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "label diagram nodes with entity kinds")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass cached results")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runConvert executes the pipeline and writes the requested artifacts.
func (c *CLI) runConvert(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Converting %s...", filepath.Base(opts.Input)))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Conversion failed")
		return fmt.Errorf("convert: %w", err)
	}
	spinner.Stop()

	printSuccess("Converted %s", opts.Input)
	printStats(result.Stats, result.CacheInfo.ConvertHit)

	if err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     opts.Input,
		output:    output,
		cacheHit:  result.CacheInfo.RenderHit,
	}); err != nil {
		return err
	}

	if len(opts.Formats) == 1 && opts.Formats[0] == pipeline.FormatJSON {
		printNewline()
		printNextStep("Render a diagram", fmt.Sprintf("brepgraph render %s -f svg", basePath(output, opts.Input)+".json"))
	}
	return nil
}
