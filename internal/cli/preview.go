package cli

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/blockchart/pkg/errors"
	chartio "github.com/matzehuels/blockchart/pkg/io"
	"github.com/matzehuels/blockchart/pkg/pipeline"
	"github.com/matzehuels/blockchart/pkg/render/blocks/layout"
	"github.com/matzehuels/blockchart/pkg/render/blocks/styles"
)

const (
	previewColumns = 60 // terminal columns for the full canvas width
	previewRows    = 24 // terminal rows for the full canvas height
	previewBlock   = "█"
	previewSwatch  = "■"
)

// previewCommand creates the preview command that draws a chart in the terminal.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		flags   chartFlags
		columns int
	)

	cmd := &cobra.Command{
		Use:   "preview [data-file]",
		Short: "Draw a data file as colored blocks in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd.Context(), args[0], c.options(cmd, &flags), columns)
		},
	}

	flags.register(cmd, false)
	cmd.Flags().IntVar(&columns, "columns", previewColumns, "terminal columns used for the canvas width")

	return cmd
}

func (c *CLI) runPreview(ctx context.Context, input string, opts pipeline.Options, columns int) error {
	if columns <= 0 {
		return errs.New(errs.ErrCodeInvalidInput, "columns must be positive, got %d", columns)
	}
	data, err := chartio.ImportData(input)
	if err != nil {
		return err
	}

	// Previews are never cached; they are cheap and usually unseeded.
	res, err := pipeline.NewRunner(nil, nil, c.Logger).Layout(ctx, data, opts)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, styleTitle.Render(fmt.Sprintf("%s · %d blocks", res.StackType, len(res.Blocks))))
	fmt.Fprintln(c.out, renderPreview(res, columns))
	return nil
}

// renderPreview draws blocks as runs of full-block characters in their fill
// colors, each with its value to the right, and the legend beside the tower.
func renderPreview(res layout.Result, columns int) string {
	scaleX := float64(columns) / res.Width
	scaleY := float64(previewRows) / res.Height

	var lines []string
	for _, b := range res.Blocks {
		rows := max(1, int(math.Round(b.Height*scaleY)))
		offset := max(0, int(math.Round(b.X*scaleX)))
		width := max(1, int(math.Round(b.Width*scaleX)))

		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(b.Fill)).Render(strings.Repeat(previewBlock, width))
		for row := range rows {
			line := strings.Repeat(" ", offset) + bar
			if row == rows/2 {
				line += " " + styleDim.Render(styles.FormatValue(b.Value))
			}
			lines = append(lines, line)
		}
	}
	tower := strings.Join(lines, "\n")

	if len(res.Legend) == 0 {
		return tower
	}
	legend := make([]string, len(res.Legend))
	for i, item := range res.Legend {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(item.Color)).Render(previewSwatch)
		legend[i] = swatch + " " + styleValue.Render(item.Name)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tower, "   ", strings.Join(legend, "\n"))
}
