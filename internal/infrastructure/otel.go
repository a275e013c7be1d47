package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const (
	// ServiceName identifies this service in telemetry
	ServiceName = "mergexml"
	// MeterName is the instrumentation scope for all meters
	MeterName = "mergexml"
)

// Metrics holds the application's instruments
type Metrics struct {
	// MergesTotal counts merge attempts, labelled by outcome
	MergesTotal metric.Int64Counter
	// ValidationFailures counts currency gate rejections
	ValidationFailures metric.Int64Counter
	// MergeDuration measures merge workflow latency in seconds
	MergeDuration metric.Float64Histogram
}

// OTelProviders holds the OpenTelemetry providers
type OTelProviders struct {
	MeterProvider  *sdkmetric.MeterProvider
	Meter          metric.Meter
	Metrics        *Metrics
	PrometheusHTTP http.Handler
}

// InitializeOTel sets up the meter provider with a Prometheus exporter and
// registers the application instruments.
func InitializeOTel(version string, logger *slog.Logger) (*OTelProviders, error) {
	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(ServiceName),
		semconv.ServiceVersion(version),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	exporter, err := otelprom.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter(MeterName)
	metrics, err := newMetrics(meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create instruments: %w", err)
	}

	logger.Info("OpenTelemetry initialized",
		slog.String("service", ServiceName),
		slog.String("metric_exporter", "prometheus"))

	return &OTelProviders{
		MeterProvider:  provider,
		Meter:          meter,
		Metrics:        metrics,
		PrometheusHTTP: promhttp.Handler(),
	}, nil
}

// Shutdown flushes and stops the meter provider
func (p *OTelProviders) Shutdown(ctx context.Context) error {
	if p.MeterProvider == nil {
		return nil
	}
	return p.MeterProvider.Shutdown(ctx)
}

func newMetrics(meter metric.Meter) (*Metrics, error) {
	mergesTotal, err := meter.Int64Counter("mergexml.merges.total",
		metric.WithDescription("Number of merge attempts by outcome"))
	if err != nil {
		return nil, err
	}

	validationFailures, err := meter.Int64Counter("mergexml.validation.failures",
		metric.WithDescription("Number of documents rejected by the currency gate"))
	if err != nil {
		return nil, err
	}

	mergeDuration, err := meter.Float64Histogram("mergexml.merge.duration",
		metric.WithDescription("Merge workflow duration"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	return &Metrics{
		MergesTotal:        mergesTotal,
		ValidationFailures: validationFailures,
		MergeDuration:      mergeDuration,
	}, nil
}
