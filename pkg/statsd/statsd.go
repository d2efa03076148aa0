package statsd

import (
	"time"

	std "github.com/DataDog/datadog-go/v5/statsd"
	"github.com/goto/salt/log"
)

// Reporter publishes rebuild metrics to a statsd agent. A nil or disabled
// Reporter silently drops everything.
type Reporter struct {
	client std.ClientInterface
	logger log.Logger
	config Config
}

// Init validates the config and connects the statsd client.
func Init(logger log.Logger, cfg Config) (*Reporter, error) {
	if !cfg.Enabled {
		logger.Warn("statsd is disabled")
		return &Reporter{logger: logger, config: cfg}, nil
	}

	client, err := std.New(cfg.Address,
		std.WithNamespace(cfg.Prefix+"."),
		std.WithoutTelemetry())
	if err != nil {
		return nil, err
	}

	return NewWithClient(client, logger, cfg), nil
}

// NewWithClient builds a reporter on an existing client.
func NewWithClient(client std.ClientInterface, logger log.Logger, cfg Config) *Reporter {
	return &Reporter{
		client: client,
		logger: logger,
		config: cfg,
	}
}

// Close flushes and closes the statsd connection.
func (r *Reporter) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Close()
}

// Incr returns a counter metric.
func (r *Reporter) Incr(name string) *Metric {
	return r.metric(name, func(c std.ClientInterface, name string, tags []string, rate float64) error {
		return c.Incr(name, tags, rate)
	})
}

// Timing returns a timer metric.
func (r *Reporter) Timing(name string, value time.Duration) *Metric {
	return r.metric(name, func(c std.ClientInterface, name string, tags []string, rate float64) error {
		return c.Timing(name, value, tags, rate)
	})
}

// Gauge returns a gauge metric.
func (r *Reporter) Gauge(name string, value float64) *Metric {
	return r.metric(name, func(c std.ClientInterface, name string, tags []string, rate float64) error {
		return c.Gauge(name, value, tags, rate)
	})
}

func (r *Reporter) metric(name string, send sendFunc) *Metric {
	if r == nil || r.client == nil {
		return nil
	}
	return &Metric{
		name:   name,
		rate:   r.config.SamplingRate,
		influx: r.config.WithInfluxTagFormat,
		logger: r.logger,
		send: func(name string, tags []string, rate float64) error {
			return send(r.client, name, tags, rate)
		},
	}
}

type sendFunc func(c std.ClientInterface, name string, tags []string, rate float64) error
