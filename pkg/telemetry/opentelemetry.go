package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/goto/salt/log"
	"go.opentelemetry.io/contrib/instrumentation/host"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/contrib/samplers/probability/consistent"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.20.0"
	"google.golang.org/grpc/encoding/gzip"
)

type OpenTelemetryConfig struct {
	Enabled                bool          `yaml:"enabled" mapstructure:"enabled" default:"false"`
	CollectorAddr          string        `yaml:"collector_addr" mapstructure:"collector_addr" default:"localhost:4317"`
	PeriodicReadInterval   time.Duration `yaml:"periodic_read_interval" mapstructure:"periodic_read_interval" default:"1s"`
	TraceSampleProbability float64       `yaml:"trace_sample_probability" mapstructure:"trace_sample_probability" default:"1"`
	// HostMetrics enables host and go runtime metrics, which are only
	// useful when commands run for a while.
	HostMetrics bool `yaml:"host_metrics" mapstructure:"host_metrics" default:"false"`
}

// providers collects the shutdown of every started provider so that a
// partial start can be undone.
type providers struct {
	logger    log.Logger
	shutdowns []func(context.Context) error
}

func (p *providers) add(shutdown func(context.Context) error) {
	p.shutdowns = append(p.shutdowns, shutdown)
}

// shutdown stops providers in reverse start order.
func (p *providers) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), gracePeriod)
	defer cancel()

	for i := len(p.shutdowns) - 1; i >= 0; i-- {
		if err := p.shutdowns[i](ctx); err != nil {
			p.logger.Error("otlp provider failed to shutdown", "err", err)
		}
	}
}

func initOTLP(ctx context.Context, cfg Config, logger log.Logger) (func(), error) {
	if !cfg.OpenTelemetry.Enabled {
		logger.Info("OpenTelemetry monitoring is disabled.")
		return func() {}, nil
	}

	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithTelemetrySDK(),
		resource.WithHost(),
		resource.WithProcessRuntimeName(),
		resource.WithProcessRuntimeVersion(),
		resource.WithAttributes(
			semconv.ServiceName(cfg.AppName),
			semconv.ServiceVersion(cfg.AppVersion),
			semconv.ServiceNamespace("search"),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	p := &providers{logger: logger}
	for _, start := range []func(context.Context, *resource.Resource, OpenTelemetryConfig, *providers) error{
		startMeterProvider,
		startTracerProvider,
	} {
		if err := start(ctx, res, cfg.OpenTelemetry, p); err != nil {
			p.shutdown()
			return nil, err
		}
	}

	if cfg.OpenTelemetry.HostMetrics {
		if err := startHostMetrics(cfg.OpenTelemetry); err != nil {
			p.shutdown()
			return nil, err
		}
	}

	return p.shutdown, nil
}

func startMeterProvider(ctx context.Context, res *resource.Resource, cfg OpenTelemetryConfig, p *providers) error {
	exporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(cfg.CollectorAddr),
		otlpmetricgrpc.WithCompressor(gzip.Name),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return fmt.Errorf("create metric exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(cfg.PeriodicReadInterval))),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)
	p.add(provider.Shutdown)
	return nil
}

func startTracerProvider(ctx context.Context, res *resource.Resource, cfg OpenTelemetryConfig, p *providers) error {
	exporter, err := otlptrace.New(ctx, otlptracegrpc.NewClient(
		otlptracegrpc.WithEndpoint(cfg.CollectorAddr),
		otlptracegrpc.WithCompressor(gzip.Name),
		otlptracegrpc.WithInsecure(),
	))
	if err != nil {
		return fmt.Errorf("create trace exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(consistent.ProbabilityBased(cfg.TraceSampleProbability)),
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
	)
	otel.SetTracerProvider(provider)
	p.add(provider.Shutdown)
	return nil
}

func startHostMetrics(cfg OpenTelemetryConfig) error {
	if err := host.Start(); err != nil {
		return fmt.Errorf("start host metrics: %w", err)
	}
	if err := runtime.Start(runtime.WithMinimumReadMemStatsInterval(cfg.PeriodicReadInterval)); err != nil {
		return fmt.Errorf("start runtime metrics: %w", err)
	}
	return nil
}
