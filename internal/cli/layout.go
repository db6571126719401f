package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/blockchart/pkg/errors"
	chartio "github.com/matzehuels/blockchart/pkg/io"
	"github.com/matzehuels/blockchart/pkg/pipeline"
	"github.com/matzehuels/blockchart/pkg/render/blocks/sink"
)

// layoutCommand creates the layout command for computing block geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		flags   chartFlags
	)

	cmd := &cobra.Command{
		Use:   "layout [data-file]",
		Short: "Compute block geometry from a data file",
		Long: `Compute block geometry from a data file.

The output is a layout.json file (same format as 'render -f json') that can be
rendered to SVG/PNG/PDF later with 'blockchart render <file>.layout.json'.
Re-rendering keeps the exact geometry, including random widths and jitter.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], c.options(cmd, &flags), output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	flags.register(cmd, false)

	return cmd
}

// runLayout loads the data, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	if err := errs.ValidatePath(input); err != nil {
		return err
	}
	data, err := chartio.ImportData(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	res, cacheHit, err := runner.LayoutWithCacheInfo(ctx, data, opts)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = basePath("", input) + layoutSuffix
	}

	if outputPath == "-" {
		return chartio.WriteLayout(c.out, res, sink.WithJSONStyle(opts.Style))
	}
	if err := chartio.ExportLayout(outputPath, res, sink.WithJSONStyle(opts.Style)); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	c.printSuccess("Layout complete")
	c.printFile(outputPath)
	c.printStats(len(res.Blocks), string(res.StackType), cacheHit)
	c.printNewline()
	c.printNextStep("Render", "blockchart render "+outputPath)

	return nil
}
