package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/autoframe/pkg/autolayout"
	"github.com/matzehuels/autoframe/pkg/errors"
	"github.com/matzehuels/autoframe/pkg/pipeline"
)

// analyzeCommand creates the analyze command, a dry run of convert.
func (c *CLI) analyzeCommand() *cobra.Command {
	var (
		selection string
		asJSON    bool
		flags     overrideFlags
	)

	cmd := &cobra.Command{
		Use:   "analyze [scene.json]",
		Short: "Show the inferred layout of the selected containers",
		Long: `Show the inferred direction, spacing and padding of each selected container
without changing the document. The values shown are the ones convert would
apply with the same flags.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := errors.ValidateSelection(selection)
			if err != nil {
				return err
			}
			o := flags.overrides(cmd, c.Config.Defaults.Overrides())
			return c.runAnalyze(cmd.Context(), cmd.OutOrStdout(), args[0], ids, o, asJSON)
		},
	}

	cmd.Flags().StringVarP(&selection, "select", "s", "", "comma-separated node IDs to analyze (default: the document's selection)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print reports as JSON")
	flags.register(cmd)

	return cmd
}

// runAnalyze prints a report per selected container.
func (c *CLI) runAnalyze(ctx context.Context, w io.Writer, input string, selection []string, o autolayout.Overrides, asJSON bool) error {
	_, nodes, err := loadSelection(input, selection)
	if err != nil {
		return err
	}
	reports := pipeline.Inspect(pipeline.Selection(nodes), o)
	loggerFromContext(ctx).Debug("analyzed selection", "containers", len(reports))

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}
	if len(reports) == 0 {
		printInfo("Nothing selected")
		return nil
	}
	_, err = fmt.Fprintln(w, renderReports(reports))
	return err
}
