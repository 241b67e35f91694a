package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/autoframe/pkg/autolayout"
	"github.com/matzehuels/autoframe/pkg/bridge"
	"github.com/matzehuels/autoframe/pkg/errors"
	"github.com/matzehuels/autoframe/pkg/pipeline"
	"github.com/matzehuels/autoframe/pkg/scene"
)

// convertOptions are the resolved inputs of a convert run.
type convertOptions struct {
	input       string
	output      string
	selection   []string
	overrides   autolayout.Overrides
	interactive bool
}

// convertCommand creates the convert command for applying auto layout.
func (c *CLI) convertCommand() *cobra.Command {
	var (
		opts      convertOptions
		flags     overrideFlags
		selection string
	)

	cmd := &cobra.Command{
		Use:   "convert [scene.json]",
		Short: "Convert the selected containers to auto layout",
		Long: `Convert the selected containers of a scene document to auto layout.

Each selected frame, group, component or instance is analyzed: if its
children are stacked vertically or horizontally, the container gets an
auto-layout configuration with the estimated spacing and padding, and every
child is stretched across the cross axis. Containers whose children are not
consistently stacked are reported and left untouched.

Spacing and padding flags (or the [defaults] section of the config file)
replace the estimated values. With --interactive the values are edited in a
form before converting.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := errors.ValidateSelection(selection)
			if err != nil {
				return err
			}
			opts.input = args[0]
			opts.selection = ids
			opts.overrides = flags.overrides(cmd, c.Config.Defaults.Overrides())
			return c.runConvert(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <input>.autolayout.<ext>)")
	cmd.Flags().StringVarP(&selection, "select", "s", "", "comma-separated node IDs to convert (default: the document's selection)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "edit spacing and padding in a form before converting")
	flags.register(cmd)

	return cmd
}

// runConvert loads the scene, converts the selection, and writes the result.
func (c *CLI) runConvert(ctx context.Context, opts convertOptions) error {
	logger := loggerFromContext(ctx)

	doc, nodes, err := loadSelection(opts.input, opts.selection)
	if err != nil {
		return err
	}

	if opts.interactive {
		o, ok, err := runOptionsForm(opts.overrides)
		if err != nil {
			return err
		}
		if !ok {
			printInfo("Conversion cancelled")
			return nil
		}
		opts.overrides = o
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Converting %d containers...", len(nodes)))
	spinner.Start()

	runner := c.newRunner(logger)
	result, err := runner.Convert(ctx, pipeline.Selection(nodes), pipeline.Options{
		Overrides: opts.overrides,
		Logger:    logger,
	})
	if errors.Is(err, errors.ErrCodeEmptySelection) {
		spinner.Stop()
		printWarning("%s", bridge.EmptySelectionNotice)
		return nil
	}
	if err != nil {
		spinner.StopWithError("Conversion failed")
		return fmt.Errorf("convert %s: %w", opts.input, err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = defaultOutputPath(opts.input)
	}
	prog := newProgress(logger)
	if err := scene.WriteFile(doc, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}
	prog.done("Wrote " + outputPath)

	printResult(result)
	printFile(outputPath)
	printNewline()
	printNextStep("Inspect", appName+" analyze "+outputPath)

	return nil
}

// loadSelection reads a scene document and resolves its selection, replaced
// by ids when given.
func loadSelection(input string, ids []string) (*scene.Document, []*scene.Node, error) {
	doc, err := scene.ReadFile(input)
	if err != nil {
		return nil, nil, fmt.Errorf("load scene %s: %w", input, err)
	}
	if len(ids) > 0 {
		if err := doc.Select(ids); err != nil {
			return nil, nil, err
		}
	}
	nodes, err := doc.Selected()
	if err != nil {
		return nil, nil, err
	}
	return doc, nodes, nil
}

// defaultOutputPath inserts ".autolayout" before the input's extension,
// keeping the document format.
func defaultOutputPath(input string) string {
	ext := filepath.Ext(input)
	if ext == "" {
		ext = ".json"
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + outputSuffix + ext
}
