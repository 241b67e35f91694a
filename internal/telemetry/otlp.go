// Package telemetry exports conversion and HTTP events as OpenTelemetry
// traces. It is enabled by OTEL_EXPORTER_OTLP_ENDPOINT.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/matzehuels/autoframe/pkg/observability"
)

const (
	defaultServiceName  = "autoframe"
	instrumentationName = "github.com/matzehuels/autoframe"
)

// Hooks implements observability.ConversionHooks and observability.HTTPHooks
// on top of an OpenTelemetry tracer.
type Hooks struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewOTLPHooks creates hooks exporting to OTEL_EXPORTER_OTLP_ENDPOINT.
// Returns nil if the endpoint is not configured (disabled).
func NewOTLPHooks(ctx context.Context) (*Hooks, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(endpoint)}
	if os.Getenv("OTEL_EXPORTER_OTLP_INSECURE") != "false" {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = defaultServiceName
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return NewHooks(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)), nil
}

// NewHooks creates hooks on an existing tracer provider.
func NewHooks(provider *sdktrace.TracerProvider) *Hooks {
	return &Hooks{
		provider: provider,
		tracer:   provider.Tracer(instrumentationName),
	}
}

// Register installs h as the global conversion and HTTP hooks.
func (h *Hooks) Register() {
	if h == nil {
		return
	}
	observability.SetConversionHooks(h)
	observability.SetHTTPHooks(h)
}

// Shutdown flushes pending spans.
func (h *Hooks) Shutdown(ctx context.Context) error {
	if h == nil {
		return nil
	}
	return h.provider.Shutdown(ctx)
}

// =============================================================================
// Conversion Hooks
// =============================================================================

func (h *Hooks) OnBatchStart(ctx context.Context, containers int) context.Context {
	ctx, _ = h.tracer.Start(ctx, "autoframe.convert",
		oteltrace.WithAttributes(attribute.Int("autoframe.batch.containers", containers)))
	return ctx
}

// OnContainerComplete records the container as a child span ending now.
func (h *Hooks) OnContainerComplete(ctx context.Context, ev observability.ContainerEvent) {
	end := time.Now()
	_, span := h.tracer.Start(ctx, "autoframe.container",
		oteltrace.WithTimestamp(end.Add(-ev.Duration)),
		oteltrace.WithAttributes(
			attribute.String("autoframe.container.name", ev.Name),
			attribute.String("autoframe.container.type", ev.Type),
			attribute.String("autoframe.outcome", ev.Status),
			attribute.String("autoframe.direction", ev.Direction),
		))
	if ev.Err != nil {
		span.RecordError(ev.Err)
		span.SetStatus(codes.Error, ev.Err.Error())
	}
	span.End(oteltrace.WithTimestamp(end))
}

func (h *Hooks) OnBatchComplete(ctx context.Context, success, failed int, _ time.Duration, err error) {
	span := oteltrace.SpanFromContext(ctx)
	span.SetAttributes(
		attribute.Int("autoframe.batch.success", success),
		attribute.Int("autoframe.batch.failed", failed),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// =============================================================================
// HTTP Hooks
// =============================================================================

func (h *Hooks) OnRequest(ctx context.Context, method, path string) context.Context {
	ctx, _ = h.tracer.Start(ctx, method+" "+path,
		oteltrace.WithSpanKind(oteltrace.SpanKindServer),
		oteltrace.WithAttributes(
			semconv.HTTPMethodKey.String(method),
			semconv.HTTPTargetKey.String(path),
		))
	return ctx
}

func (h *Hooks) OnResponse(ctx context.Context, _, _ string, statusCode int, _ time.Duration) {
	span := oteltrace.SpanFromContext(ctx)
	span.SetAttributes(semconv.HTTPStatusCodeKey.Int(statusCode))
	if statusCode >= 500 {
		span.SetStatus(codes.Error, fmt.Sprintf("status %d", statusCode))
	}
	span.End()
}

var (
	_ observability.ConversionHooks = (*Hooks)(nil)
	_ observability.HTTPHooks       = (*Hooks)(nil)
)
