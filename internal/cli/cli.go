// Package cli implements the autoframe command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/autoframe/pkg/autolayout"
	"github.com/matzehuels/autoframe/pkg/buildinfo"
	"github.com/matzehuels/autoframe/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "autoframe"

	// outputSuffix is inserted before the extension of converted documents.
	outputSuffix = ".autolayout"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded before any subcommand runs.
	Config Config

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Autoframe converts absolutely positioned frames to auto layout",
		Long: `Autoframe inspects the children of frames, groups, components and instances,
infers whether they are stacked vertically or horizontally, estimates the
spacing and padding, and rewrites the containers as auto-layout frames.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/autoframe/config.toml)")

	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.bridgeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(logger *log.Logger) *pipeline.Runner {
	return pipeline.NewRunner(logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// overrideFlags are the per-command flags that replace computed values.
type overrideFlags struct {
	spacing int
	top     int
	right   int
	bottom  int
	left    int
}

func (f *overrideFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.spacing, "spacing", 0, "item spacing (default: estimated)")
	cmd.Flags().IntVar(&f.top, "padding-top", 0, "top padding (default: estimated)")
	cmd.Flags().IntVar(&f.right, "padding-right", 0, "right padding (default: estimated)")
	cmd.Flags().IntVar(&f.bottom, "padding-bottom", 0, "bottom padding (default: estimated)")
	cmd.Flags().IntVar(&f.left, "padding-left", 0, "left padding (default: estimated)")
}

// overrides returns the flags the user actually set, filled from the
// configured defaults.
func (f *overrideFlags) overrides(cmd *cobra.Command, defaults autolayout.Overrides) autolayout.Overrides {
	var o autolayout.Overrides
	changed := func(name string, v int) *int {
		if !cmd.Flags().Changed(name) {
			return nil
		}
		return &v
	}
	o.ItemSpacing = changed("spacing", f.spacing)
	pad := autolayout.PaddingOverride{
		Top:    changed("padding-top", f.top),
		Right:  changed("padding-right", f.right),
		Bottom: changed("padding-bottom", f.bottom),
		Left:   changed("padding-left", f.left),
	}
	if !pad.IsZero() {
		o.Padding = &pad
	}
	return o.WithDefaults(defaults)
}
