package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	errs "github.com/matzehuels/blockchart/pkg/errors"
	chartio "github.com/matzehuels/blockchart/pkg/io"
	"github.com/matzehuels/blockchart/pkg/pipeline"
	"github.com/matzehuels/blockchart/pkg/render/blocks/layout"
	"github.com/matzehuels/blockchart/pkg/render/blocks/sink"
)

// layoutSuffix marks files written by the layout command. The render command
// re-renders them instead of computing a new layout.
const layoutSuffix = ".layout.json"

// renderCommand creates the render command for generating charts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		flags   chartFlags
	)

	cmd := &cobra.Command{
		Use:   "render [data-file]",
		Short: "Render a data file as a block chart",
		Long: `Render a data file as a block chart.

The data file is JSON, TOML or YAML holding a list of values:

  [{"value": 50, "name": "Rent", "color": "#e15759"}, ...]

A file written by 'blockchart layout' (*.layout.json) is re-rendered as is,
without computing a new layout.

Seeded charts (--seed or chart.seed in the config file) are cached locally.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], c.options(cmd, &flags), output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format), base path (multiple), or - for stdout")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	flags.register(cmd, true)

	return cmd
}

// runRender loads the input, runs the pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	if err := errs.ValidatePath(input); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)

	var (
		res       layout.Result
		artifacts map[string][]byte
		cached    bool
	)
	if strings.HasSuffix(input, layoutSuffix) {
		res, err = readLayout(input)
		if err != nil {
			return err
		}
		artifacts, cached, err = runner.RenderWithCacheInfo(ctx, res, opts)
	} else {
		var data []layout.Datum
		data, err = chartio.ImportData(input)
		if err != nil {
			return err
		}
		var result *pipeline.Result
		result, err = runner.Execute(ctx, data, opts)
		if result != nil {
			res, artifacts, cached = result.Layout, result.Artifacts, result.CacheInfo.LayoutHit
		}
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return err
	}
	prog.done("rendered chart", "formats", strings.Join(opts.Formats, ","))

	if output == "-" {
		if len(opts.Formats) != 1 {
			return errs.New(errs.ErrCodeInvalidInput, "stdout output needs exactly one format, got %d", len(opts.Formats))
		}
		_, err := c.out.Write(artifacts[opts.Formats[0]])
		return err
	}

	paths := outputPaths(output, strings.TrimSuffix(input, layoutSuffix), opts.Formats)
	if err := writeArtifacts(artifacts, paths); err != nil {
		return err
	}

	c.printSuccess("Chart rendered")
	for _, format := range opts.Formats {
		c.printFile(paths[format])
	}
	c.printStats(len(res.Blocks), string(res.StackType), cached)
	if opts.Seed == nil {
		c.printNewline()
		c.printNextStep("Reproduce", "blockchart render --seed <n> "+input)
	}
	return nil
}

// readLayout loads a chart written by the layout command.
func readLayout(path string) (layout.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return layout.Result{}, errs.Wrap(errs.ErrCodeFileNotFound, err, "layout file %s not found", path)
		}
		return layout.Result{}, fmt.Errorf("read layout %s: %w", path, err)
	}
	res, err := sink.ReadJSON(data)
	if err != nil {
		return layout.Result{}, errs.Wrap(errs.ErrCodeInvalidData, err, "parse layout %s", path)
	}
	return res, nil
}

// outputPaths maps each format to its output file. A single format with an
// explicit output uses that path as is; otherwise files are named
// <base>.<format>.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// writeArtifacts writes every artifact and reports all failures together.
func writeArtifacts(artifacts map[string][]byte, paths map[string]string) error {
	var err error
	for format, path := range paths {
		data, ok := artifacts[format]
		if !ok {
			err = multierr.Append(err, fmt.Errorf("no %s output produced", format))
			continue
		}
		err = multierr.Append(err, writeFile(path, data))
	}
	return err
}

// writeFile creates path, including missing parent directories.
func writeFile(path string, data []byte) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
