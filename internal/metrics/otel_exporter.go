package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/otlptranslator"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// OTelExporter exposes catalog gauges and HTTP request metrics in Prometheus format.
type OTelExporter struct {
	meterProvider *sdkmetric.MeterProvider
	registry      *prom.Registry
	collector     Collector

	meter            metric.Meter
	booksGauge       metric.Int64ObservableGauge
	activeBooksGauge metric.Int64ObservableGauge
	categoriesGauge  metric.Int64ObservableGauge
	requestCounter   metric.Int64Counter
	requestDuration  metric.Float64Histogram
}

func NewOTelExporter(collector Collector) (*OTelExporter, error) {
	// Each exporter owns its registry so several can live in one process
	registry := prom.NewRegistry()
	exporter, err := prometheus.New(
		prometheus.WithRegisterer(registry),
		prometheus.WithTranslationStrategy(otlptranslator.UnderscoreEscapingWithSuffixes),
	)
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(meterProvider)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		registry:      registry,
		collector:     collector,
		meter:         meterProvider.Meter("bookcatalog", metric.WithInstrumentationVersion("1.0.0")),
	}

	if err := oe.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return oe, nil
}

func (oe *OTelExporter) registerInstruments() error {
	var err error

	oe.booksGauge, err = oe.meter.Int64ObservableGauge(
		"catalog.books",
		metric.WithDescription("Number of books in the catalog"),
		metric.WithUnit("{books}"),
		metric.WithInt64Callback(observe(oe.collector.CountBooks)),
	)
	if err != nil {
		return fmt.Errorf("creating books gauge: %w", err)
	}

	oe.activeBooksGauge, err = oe.meter.Int64ObservableGauge(
		"catalog.books.active",
		metric.WithDescription("Number of available books in the catalog"),
		metric.WithUnit("{books}"),
		metric.WithInt64Callback(observe(oe.collector.CountActiveBooks)),
	)
	if err != nil {
		return fmt.Errorf("creating active books gauge: %w", err)
	}

	oe.categoriesGauge, err = oe.meter.Int64ObservableGauge(
		"catalog.categories",
		metric.WithDescription("Number of categories in the catalog"),
		metric.WithUnit("{categories}"),
		metric.WithInt64Callback(observe(oe.collector.CountCategories)),
	)
	if err != nil {
		return fmt.Errorf("creating categories gauge: %w", err)
	}

	oe.requestCounter, err = oe.meter.Int64Counter(
		"catalog.http.requests",
		metric.WithDescription("Number of handled HTTP requests"),
		metric.WithUnit("{requests}"),
	)
	if err != nil {
		return fmt.Errorf("creating request counter: %w", err)
	}

	oe.requestDuration, err = oe.meter.Float64Histogram(
		"catalog.http.request.duration",
		metric.WithDescription("Duration of handled HTTP requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("creating request duration histogram: %w", err)
	}

	return nil
}

func observe(count func(context.Context) (int64, error)) metric.Int64Callback {
	return func(ctx context.Context, observer metric.Int64Observer) error {
		n, err := count(ctx)
		if err != nil {
			return err
		}
		observer.Observe(n)
		return nil
	}
}

// Middleware records one request measurement per handled route.
func (oe *OTelExporter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		attrs := metric.WithAttributes(
			attribute.String("http.request.method", c.Request.Method),
			attribute.String("http.route", route),
			attribute.Int("http.response.status_code", c.Writer.Status()),
		)

		ctx := context.WithoutCancel(c.Request.Context())
		oe.requestCounter.Add(ctx, 1, attrs)
		oe.requestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	}
}

// ServeHTTP serves the Prometheus-formatted metrics of this exporter.
func (oe *OTelExporter) ServeHTTP() http.Handler {
	return promhttp.HandlerFor(oe.registry, promhttp.HandlerOpts{})
}

func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if oe.meterProvider != nil {
		return oe.meterProvider.Shutdown(ctx)
	}
	return nil
}
