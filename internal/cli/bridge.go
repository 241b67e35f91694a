package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/autoframe/pkg/autolayout"
	"github.com/matzehuels/autoframe/pkg/bridge"
	"github.com/matzehuels/autoframe/pkg/scene"
)

// bridgeCommand creates the bridge command, a message session over stdio.
func (c *CLI) bridgeCommand() *cobra.Command {
	var (
		output string
		flags  overrideFlags
	)

	cmd := &cobra.Command{
		Use:   "bridge [scene.json]",
		Short: "Exchange plugin messages over stdin and stdout",
		Long: `Run a plugin message session on a scene document.

Newline-delimited JSON messages are read from stdin:

  {"type": "convert-to-autolayout", "options": {"itemSpacing": 8}}
  {"type": "cancel"}

Notifications and conversion results are written to stdout as JSON lines.
The session ends on cancel or end of input; with -o the converted document
is then written to a file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults := flags.overrides(cmd, c.Config.Defaults.Overrides())
			return c.runBridge(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), args[0], output, defaults)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the document here when the session ends")
	flags.register(cmd)

	return cmd
}

// runBridge serves one session until cancel or end of input.
func (c *CLI) runBridge(ctx context.Context, in io.Reader, out io.Writer, input, output string, defaults autolayout.Overrides) error {
	logger := loggerFromContext(ctx)

	doc, err := scene.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load scene %s: %w", input, err)
	}

	sess := bridge.NewSession(bridge.NewStreamHost(doc, out), c.newRunner(logger), logger)
	sess.Defaults = defaults
	if err := sess.Serve(ctx, in); err != nil {
		return err
	}

	if output == "" {
		return nil
	}
	if err := scene.WriteFile(doc, output); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}
	logger.Info("wrote document", "path", output)
	return nil
}
