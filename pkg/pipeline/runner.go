package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/autoframe/pkg/autolayout"
	"github.com/matzehuels/autoframe/pkg/errors"
	"github.com/matzehuels/autoframe/pkg/observability"
)

// Runner executes batch conversions. It holds no per-batch state, so one
// Runner can serve many sessions and requests concurrently as long as they
// convert disjoint containers.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Logger: logger}
}

// Convert analyzes and converts every container in selection, in order.
//
// An empty selection is rejected with ErrCodeEmptySelection before anything
// else happens. Otherwise every container yields exactly one Outcome and the
// returned error is nil: ineligible types, mixed layouts and rejected writes
// are counted as failures in the Result, and containers without children are
// skipped.
func (r *Runner) Convert(ctx context.Context, selection []Container, opts Options) (*Result, error) {
	if len(selection) == 0 {
		return nil, errors.New(errors.ErrCodeEmptySelection, "select at least one frame to convert")
	}
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	opts.SetDefaults()
	logger := opts.Logger

	hooks := observability.Conversion()
	ctx = hooks.OnBatchStart(ctx, len(selection))
	start := time.Now()

	result := newResult(len(selection))
	for _, c := range selection {
		began := time.Now()
		out := convertOne(c, opts.Overrides)
		result.add(out)

		ev := observability.ContainerEvent{
			Name:     out.Name,
			Type:     string(out.Type),
			Status:   string(out.Status),
			Duration: time.Since(began),
			Err:      out.Err,
		}
		if out.Analysis != nil {
			ev.Direction = out.Analysis.Direction.String()
		}
		hooks.OnContainerComplete(ctx, ev)
		logOutcome(logger, out)
	}

	duration := time.Since(start)
	hooks.OnBatchComplete(ctx, result.Success, result.Failed, duration, nil)
	logger.Info("converted selection",
		"success", result.Success,
		"failed", result.Failed,
		"duration", duration)

	return result, nil
}

// convertOne runs eligibility, analysis and application for one container.
// A panic inside the container's methods fails that container only.
func convertOne(c Container, o autolayout.Overrides) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			err := errors.New(errors.ErrCodeInternal, "%v", r)
			out.Status = StatusFailed
			out.Config = nil
			out.Err = err
			out.Message = fmt.Sprintf(msgProcessing, out.Name, errors.UserMessage(err))
		}
	}()

	out = Outcome{Name: c.NodeName(), Type: c.NodeType()}

	if !IsEligible(out.Type) {
		out.Status = StatusFailed
		out.Err = errors.New(errors.ErrCodeUnsupportedType, "%q is a %s layer", out.Name, out.Type)
		out.Message = fmt.Sprintf(msgUnsupported, out.Name)
		return out
	}

	children := c.ChildBounds()
	if len(children) == 0 {
		out.Status = StatusSkipped
		return out
	}

	a := autolayout.Analyze(c.Bounds().Size(), children)
	out.Analysis = &a

	cfg, err := autolayout.Resolve(a, o)
	if err != nil {
		out.Status = StatusFailed
		out.Err = err
		if errors.Is(err, errors.ErrCodeMixedLayout) {
			out.Message = fmt.Sprintf(msgMixed, out.Name)
		} else {
			out.Message = fmt.Sprintf(msgProcessing, out.Name, errors.UserMessage(err))
		}
		return out
	}
	out.Config = &cfg

	if err := c.ApplyLayout(cfg); err != nil {
		out.Status = StatusFailed
		out.Err = err
		out.Message = fmt.Sprintf(msgProcessing, out.Name, errors.UserMessage(err))
		return out
	}
	out.Status = StatusConverted
	return out
}

func logOutcome(logger *log.Logger, out Outcome) {
	switch out.Status {
	case StatusConverted:
		logger.Debug("converted container",
			"container", out.Name,
			"direction", out.Config.LayoutMode,
			"spacing", out.Config.ItemSpacing,
			"padding", out.Config.Padding)
	case StatusSkipped:
		logger.Debug("skipped empty container", "container", out.Name)
	case StatusFailed:
		logger.Warn("container not converted", "container", out.Name, "type", out.Type, "error", out.Err)
	}
}
