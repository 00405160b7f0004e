// Package obs sets up OpenTelemetry tracing.
package obs

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Options configures the tracer provider
type Options struct {
	Enabled     bool
	Endpoint    string // host:port or a full URL
	ServiceName string
	Version     string
}

// InitTracer registers a global OTLP/HTTP tracer provider.
// When tracing is disabled the returned shutdown is a no-op.
func InitTracer(ctx context.Context, opts Options) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }
	if !opts.Enabled {
		return noop, nil
	}

	var exporterOpts []otlptracehttp.Option
	switch {
	case strings.Contains(opts.Endpoint, "://"):
		exporterOpts = append(exporterOpts, otlptracehttp.WithEndpointURL(opts.Endpoint))
	case opts.Endpoint != "":
		exporterOpts = append(exporterOpts, otlptracehttp.WithEndpoint(opts.Endpoint), otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(ctx, exporterOpts...)
	if err != nil {
		return noop, err
	}

	version := opts.Version
	if version == "" {
		version = "1.0.0"
	}
	res := resource.NewSchemaless(
		attribute.String("service.name", opts.ServiceName),
		attribute.String("service.version", version),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp.Shutdown, nil
}
