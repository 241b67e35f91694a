package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

const logTimeFormat = "15:04:05.00"

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      logTimeFormat,
		Level:           level,
	})
}

// progress reports how long a step took once it finishes.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) done(msg string) {
	elapsed := time.Since(p.start).Round(time.Millisecond)
	p.logger.Infof("%s (%s)", msg, elapsed)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l so that run functions can log without a CLI receiver.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext falls back to log.Default.
func loggerFromContext(ctx context.Context) *log.Logger {
	l, ok := ctx.Value(loggerKey).(*log.Logger)
	if !ok {
		return log.Default()
	}
	return l
}
