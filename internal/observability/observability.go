// Package observability wires structured logging and OpenTelemetry metrics
// export. Metrics export is enabled only when an OTLP endpoint is configured;
// meters stay usable either way.
package observability

import (
	"context"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const otlpEndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"

type Config struct {
	ServiceName string
	Version     string
	LogLevel    slog.Level
}

type Resources struct {
	logger        *slog.Logger
	meterProvider *sdkmetric.MeterProvider
}

func Init(ctx context.Context, cfg Config) (*Resources, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	res := &Resources{logger: logger}

	if os.Getenv(otlpEndpointEnv) == "" {
		return res, nil
	}

	exporter, err := otlpmetrichttp.New(ctx)
	if err != nil {
		return nil, err
	}

	otelResource, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.Version),
	))
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(otelResource),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter,
			sdkmetric.WithInterval(30*time.Second),
		)),
	)
	otel.SetMeterProvider(provider)
	res.meterProvider = provider

	return res, nil
}

func (r *Resources) Logger() *slog.Logger {
	return r.logger
}

func (r *Resources) Shutdown(ctx context.Context) error {
	if r.meterProvider == nil {
		return nil
	}
	return r.meterProvider.Shutdown(ctx)
}
