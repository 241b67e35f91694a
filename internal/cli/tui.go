package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/autoframe/pkg/autolayout"
)

// Form styles
var (
	formLabelStyle   = lipgloss.NewStyle().Foreground(colorGray).Width(16)
	formFocusedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	formValueStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	formDimStyle     = lipgloss.NewStyle().Foreground(colorDim)
	formErrorStyle   = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// OptionsForm - Interactive conversion options
// =============================================================================

const (
	fieldSpacing = iota
	fieldTop
	fieldRight
	fieldBottom
	fieldLeft
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Item spacing",
	"Padding top",
	"Padding right",
	"Padding bottom",
	"Padding left",
}

// OptionsForm is the bubbletea model that edits conversion overrides.
// A blank field means the value is estimated from the layout.
type OptionsForm struct {
	Values    [fieldCount]string
	Focus     int
	Submitted bool
	Cancelled bool
	Err       string
}

// NewOptionsForm creates a form prefilled from o.
func NewOptionsForm(o autolayout.Overrides) OptionsForm {
	var m OptionsForm
	m.Values[fieldSpacing] = formatOptional(o.ItemSpacing)
	if o.Padding != nil {
		m.Values[fieldTop] = formatOptional(o.Padding.Top)
		m.Values[fieldRight] = formatOptional(o.Padding.Right)
		m.Values[fieldBottom] = formatOptional(o.Padding.Bottom)
		m.Values[fieldLeft] = formatOptional(o.Padding.Left)
	}
	return m
}

func (m OptionsForm) Init() tea.Cmd {
	return nil
}

func (m OptionsForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc":
		m.Cancelled = true
		return m, tea.Quit
	case "tab", "down":
		m.Focus = (m.Focus + 1) % fieldCount
	case "shift+tab", "up":
		m.Focus = (m.Focus + fieldCount - 1) % fieldCount
	case "backspace":
		v := m.Values[m.Focus]
		if v != "" {
			m.Values[m.Focus] = v[:len(v)-1]
		}
	case "enter":
		if _, err := m.Overrides(); err != nil {
			m.Err = err.Error()
			return m, nil
		}
		m.Submitted = true
		return m, tea.Quit
	default:
		if key.Type != tea.KeyRunes {
			return m, nil
		}
		for _, r := range key.Runes {
			v := m.Values[m.Focus]
			switch {
			case r >= '0' && r <= '9':
				m.Values[m.Focus] = v + string(r)
			case r == '-' && v == "":
				m.Values[m.Focus] = "-"
			}
		}
	}
	m.Err = ""
	return m, nil
}

func (m OptionsForm) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Auto Layout Options"))
	b.WriteString("\n")
	b.WriteString(formDimStyle.Render("tab/↑/↓ move  ⏎ convert  esc cancel  blank = auto"))
	b.WriteString("\n\n")

	for i, label := range fieldLabels {
		cursor := "  "
		labelStyle := formLabelStyle
		if i == m.Focus {
			cursor = formFocusedStyle.Render("▸ ")
			labelStyle = labelStyle.Foreground(colorCyan)
		}
		value := formValueStyle.Render(m.Values[i])
		if m.Values[i] == "" {
			value = formDimStyle.Render("auto")
		}
		b.WriteString(cursor + labelStyle.Render(label) + " " + value + "\n")
	}

	if m.Err != "" {
		b.WriteString("\n" + formErrorStyle.Render(m.Err) + "\n")
	}
	return b.String()
}

// Overrides parses the form fields. Blank fields stay nil.
func (m OptionsForm) Overrides() (autolayout.Overrides, error) {
	var parsed [fieldCount]*int
	for i, v := range m.Values {
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return autolayout.Overrides{}, fmt.Errorf("%s: %q is not a number", fieldLabels[i], v)
		}
		parsed[i] = &n
	}

	o := autolayout.Overrides{ItemSpacing: parsed[fieldSpacing]}
	pad := autolayout.PaddingOverride{
		Top:    parsed[fieldTop],
		Right:  parsed[fieldRight],
		Bottom: parsed[fieldBottom],
		Left:   parsed[fieldLeft],
	}
	if !pad.IsZero() {
		o.Padding = &pad
	}
	return o, nil
}

func formatOptional(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// runOptionsForm shows the form on stderr. It reports ok=false when the
// user cancels.
func runOptionsForm(initial autolayout.Overrides) (autolayout.Overrides, bool, error) {
	p := tea.NewProgram(NewOptionsForm(initial), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return autolayout.Overrides{}, false, fmt.Errorf("options form: %w", err)
	}
	m := final.(OptionsForm)
	if !m.Submitted {
		return autolayout.Overrides{}, false, nil
	}
	o, err := m.Overrides()
	return o, err == nil, err
}
