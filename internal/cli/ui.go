package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/autoframe/pkg/autolayout"
	"github.com/matzehuels/autoframe/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printResult prints a conversion summary with an icon matching its outcome,
// followed by one detail line per failure message.
func printResult(r *pipeline.Result) {
	summary := r.Summary()
	switch {
	case summary == "":
		printInfo("Nothing to convert")
	case r.Failed == 0:
		printSuccess("%s", summary)
	case r.Success == 0:
		printError("%s", summary)
	default:
		printWarning("%s", summary)
	}
	for _, msg := range r.Messages {
		printDetail("%s", msg)
	}
}

// =============================================================================
// File Output
// =============================================================================

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// =============================================================================
// Key-Value Output
// =============================================================================

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// =============================================================================
// Reports
// =============================================================================

// renderReports formats analysis reports as a table.
func renderReports(reports []pipeline.Report) string {
	rows := make([][]string, len(reports))
	for i, r := range reports {
		rows[i] = reportRow(r)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Container", "Type", "Children", "Direction", "Spacing", "Padding").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			if row < 0 || row >= len(reports) {
				return base
			}
			r := reports[row]
			switch {
			case !r.Eligible || r.Config == nil && r.Children > 0:
				return base.Foreground(colorRed)
			case r.Children == 0:
				return base.Foreground(colorDim)
			case col == 0:
				return StyleHighlight.Padding(0, 1)
			}
			return base.Foreground(colorWhite)
		})
	return t.Render()
}

func reportRow(r pipeline.Report) []string {
	row := []string{r.Name, string(r.Type), strconv.Itoa(r.Children)}
	switch {
	case !r.Eligible:
		return append(row, "unsupported", "-", "-")
	case r.Children == 0:
		return append(row, "skipped", "-", "-")
	case r.Config == nil:
		return append(row, string(autolayout.Mixed), "-", "-")
	}
	return append(row,
		string(r.Config.LayoutMode),
		strconv.Itoa(r.Config.ItemSpacing),
		formatPadding(r.Config.Padding),
	)
}

// formatPadding renders a padding in CSS order: top right bottom left.
func formatPadding(p autolayout.Padding) string {
	return strings.Join([]string{
		strconv.Itoa(p.Top),
		strconv.Itoa(p.Right),
		strconv.Itoa(p.Bottom),
		strconv.Itoa(p.Left),
	}, " ")
}

// =============================================================================
// Commands & Next Steps
// =============================================================================

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// printNewline prints an empty line.
func printNewline() {
	fmt.Println()
}
