// Package pipeline runs the batch conversion of a selection into auto-layout
// containers.
//
// The same pipeline backs every entry point (the convert command, the message
// bridge and the HTTP API), so all of them count successes and failures and
// word their messages identically.
//
// # Architecture
//
// Each selected container goes through three steps:
//
//  1. Eligibility: only frames, groups, components and instances qualify
//  2. Analysis: classify the children and estimate spacing and padding
//  3. Application: resolve the configuration and write it onto the container
//
// Containers are processed one at a time, in selection order. A failing
// container is counted and reported; it never aborts the batch.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	nodes, _ := doc.Selected()
//	result, err := runner.Convert(ctx, pipeline.Selection(nodes), pipeline.Options{})
//	if errors.Is(err, errors.ErrCodeEmptySelection) {
//	    // nothing selected
//	}
//	fmt.Println(result.Summary())
package pipeline

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/autoframe/pkg/autolayout"
	"github.com/matzehuels/autoframe/pkg/scene"
)

// =============================================================================
// Container - Host Contract
// =============================================================================

// Container is a selected layer as the pipeline sees it. *scene.Node
// implements it; any other host can too.
type Container interface {
	NodeType() scene.NodeType
	NodeName() string
	Bounds() autolayout.Box
	ChildBounds() []autolayout.Box
	ApplyLayout(cfg autolayout.Config) error
}

// EligibleTypes is the set of layer types that can become auto-layout
// containers.
var EligibleTypes = map[scene.NodeType]bool{
	scene.TypeFrame:     true,
	scene.TypeGroup:     true,
	scene.TypeComponent: true,
	scene.TypeInstance:  true,
}

// IsEligible reports whether a layer type can be converted.
func IsEligible(t scene.NodeType) bool {
	return EligibleTypes[t]
}

// Selection adapts a typed slice to the Container slice Convert takes.
func Selection[T Container](items []T) []Container {
	out := make([]Container, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// =============================================================================
// Options - Conversion Configuration
// =============================================================================

// Options configures a batch. The embedded overrides serialize flat, so the
// JSON form is the plugin's options object: {"itemSpacing": 8, "padding": {...}}.
type Options struct {
	autolayout.Overrides

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-"`
}

// SetDefaults fills unset runtime options.
func (o *Options) SetDefaults() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// =============================================================================
// Result - Batch Outcome
// =============================================================================

// Status is the outcome of one container.
type Status string

const (
	StatusConverted Status = "converted"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// Outcome records what happened to one container.
type Outcome struct {
	Name     string               `json:"name"`
	Type     scene.NodeType       `json:"type"`
	Status   Status               `json:"status"`
	Analysis *autolayout.Analysis `json:"analysis,omitempty"`
	Config   *autolayout.Config   `json:"config,omitempty"`
	Message  string               `json:"message,omitempty"`
	Err      error                `json:"-"`
}

// Result aggregates a batch. Skipped containers count as neither success nor
// failure.
type Result struct {
	Success  int       `json:"success"`
	Failed   int       `json:"failed"`
	Messages []string  `json:"messages"`
	Outcomes []Outcome `json:"outcomes,omitempty"`
}

func newResult(capacity int) *Result {
	return &Result{
		Messages: []string{},
		Outcomes: make([]Outcome, 0, capacity),
	}
}

// add folds one outcome into the counters and message log.
func (r *Result) add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	switch o.Status {
	case StatusConverted:
		r.Success++
	case StatusFailed:
		r.Failed++
		if o.Message != "" {
			r.Messages = append(r.Messages, o.Message)
		}
	}
}

// Summary is the one-line notification for the batch. It is empty when
// nothing was converted and nothing failed.
func (r *Result) Summary() string {
	switch {
	case r.Success > 0 && r.Failed > 0:
		return fmt.Sprintf("%s (%d failed)", convertedText(r.Success), r.Failed)
	case r.Success > 0:
		return convertedText(r.Success)
	case r.Failed > 0:
		return fmt.Sprintf("Conversion failed (%d failed)", r.Failed)
	default:
		return ""
	}
}

func convertedText(n int) string {
	if n == 1 {
		return "1 frame converted to auto layout"
	}
	return fmt.Sprintf("%d frames converted to auto layout", n)
}

// Per-container failure messages.
const (
	msgUnsupported = `"%s" - unsupported layer type (only frames, groups, components and instances are supported)`
	msgMixed       = `"%s" - could not find a consistent layout pattern; adjust it manually`
	msgProcessing  = `"%s" - error during processing: %s`
)

// =============================================================================
// Report - Read-only Analysis
// =============================================================================

// Report is the analysis of one container without applying anything.
type Report struct {
	Name     string              `json:"name"`
	Type     scene.NodeType      `json:"type"`
	Eligible bool                `json:"eligible"`
	Children int                 `json:"children"`
	Analysis autolayout.Analysis `json:"analysis"`

	// Config is what Convert would apply, nil for a mixed layout.
	Config *autolayout.Config `json:"config,omitempty"`
}

// Inspect analyzes every container in the selection without mutating it.
func Inspect(selection []Container, o autolayout.Overrides) []Report {
	reports := make([]Report, 0, len(selection))
	for _, c := range selection {
		children := c.ChildBounds()
		r := Report{
			Name:     c.NodeName(),
			Type:     c.NodeType(),
			Eligible: IsEligible(c.NodeType()),
			Children: len(children),
			Analysis: autolayout.Analyze(c.Bounds().Size(), children),
		}
		if cfg, err := autolayout.Resolve(r.Analysis, o); err == nil {
			r.Config = &cfg
		}
		reports = append(reports, r)
	}
	return reports
}
