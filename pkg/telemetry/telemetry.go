package telemetry

import (
	"context"
	"time"

	"github.com/goto/salt/log"
	"github.com/newrelic/go-agent/v3/newrelic"
)

const gracePeriod = 5 * time.Second

type Config struct {
	AppVersion string `yaml:"-" mapstructure:"-"`

	AppName       string              `yaml:"app_name" mapstructure:"app_name" default:"catalogindex"`
	NewRelic      NewRelicConfig      `yaml:"newrelic" mapstructure:"newrelic"`
	OpenTelemetry OpenTelemetryConfig `yaml:"open_telemetry" mapstructure:"open_telemetry"`
}

// Telemetry holds the exporters started for one command run.
type Telemetry struct {
	nrApp    *newrelic.Application
	shutdown func()
}

func Init(ctx context.Context, cfg Config, logger log.Logger) (*Telemetry, error) {
	shutdown, err := initOTLP(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	nrApp, err := initNewRelicMonitor(cfg.AppName, cfg.NewRelic, logger)
	if err != nil {
		shutdown()
		return nil, err
	}

	return &Telemetry{nrApp: nrApp, shutdown: shutdown}, nil
}

// NewRelic returns the New Relic application, nil when disabled.
func (t *Telemetry) NewRelic() *newrelic.Application {
	if t == nil {
		return nil
	}
	return t.nrApp
}

// StartTransaction starts a background transaction for operation. The
// instrumented elasticsearch and postgres clients attach their segments
// to the transaction carried by the returned context.
func (t *Telemetry) StartTransaction(ctx context.Context, operation string) (context.Context, func(error)) {
	if t == nil || t.nrApp == nil {
		return ctx, func(error) {}
	}

	txn := t.nrApp.StartTransaction(operation)
	return newrelic.NewContext(ctx, txn), func(err error) {
		if err != nil {
			txn.NoticeError(err)
		}
		txn.End()
	}
}

// Close flushes and stops every exporter.
func (t *Telemetry) Close() {
	if t == nil {
		return
	}
	if t.nrApp != nil {
		t.nrApp.Shutdown(gracePeriod)
	}
	t.shutdown()
}
