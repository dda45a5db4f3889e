package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentedRunner runs registry tools inside a span and records call
// counts, failures and execution time.
type InstrumentedRunner struct {
	registry *Registry
	tracer   trace.Tracer

	calls    metric.Int64Counter
	failed   metric.Int64Counter
	duration metric.Float64Histogram
}

func NewInstrumentedRunner(registry *Registry, tracer trace.Tracer, meter metric.Meter) (*InstrumentedRunner, error) {
	calls, err := meter.Int64Counter("tool_calls_total",
		metric.WithDescription("Total number of tool calls executed"))
	if err != nil {
		return nil, fmt.Errorf("create tool_calls_total: %w", err)
	}
	failed, err := meter.Int64Counter("tool_calls_failed_total",
		metric.WithDescription("Total number of tool calls that failed"))
	if err != nil {
		return nil, fmt.Errorf("create tool_calls_failed_total: %w", err)
	}
	duration, err := meter.Float64Histogram("tool_execution_time_seconds",
		metric.WithDescription("Time taken to execute individual tools in seconds"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("create tool_execution_time_seconds: %w", err)
	}

	return &InstrumentedRunner{
		registry: registry,
		tracer:   tracer,
		calls:    calls,
		failed:   failed,
		duration: duration,
	}, nil
}

func (r *InstrumentedRunner) Run(ctx context.Context, name string, input map[string]any) (map[string]any, error) {
	ctx, span := r.tracer.Start(ctx, "Tool."+name, trace.WithAttributes(
		attribute.String("tool_name", name),
	))
	defer span.End()

	r.calls.Add(ctx, 1, metric.WithAttributes(attribute.String("tool_name", name)))
	slog.Info("TOOL: Running", "name", name)

	tool, err := r.registry.GetTool(name)
	if err != nil {
		r.failed.Add(ctx, 1, metric.WithAttributes(
			attribute.String("tool_name", name),
			attribute.String("error_type", "tool_not_found"),
		))
		span.SetStatus(codes.Error, "Tool not found")
		span.RecordError(err)
		slog.Error("TOOL: Not found", "name", name)
		return nil, err
	}
	if input == nil {
		input = map[string]any{}
	}

	start := time.Now()
	out, err := tool.Run(ctx, input)
	elapsed := time.Since(start)
	r.duration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attribute.String("tool_name", name)))

	if err != nil {
		r.failed.Add(ctx, 1, metric.WithAttributes(
			attribute.String("tool_name", name),
			attribute.String("error_type", "tool_execution_failed"),
		))
		span.SetStatus(codes.Error, "Tool execution failed")
		span.RecordError(err)
		slog.Error("TOOL: Failed", "name", name, "error", err, "duration", elapsed)
		return nil, err
	}

	span.AddEvent("tool_completed", trace.WithAttributes(
		attribute.Float64("tool_execution_time_seconds", elapsed.Seconds()),
	))
	slog.Info("TOOL: Completed", "name", name, "duration", elapsed)
	return out, nil
}
