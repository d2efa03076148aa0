package telemetry

import (
	"fmt"
	"time"

	"github.com/goto/salt/log"
	"github.com/newrelic/go-agent/v3/newrelic"
)

type NewRelicConfig struct {
	Enabled     bool          `yaml:"enabled" mapstructure:"enabled" default:"false"`
	LicenseKey  string        `yaml:"licensekey" mapstructure:"licensekey" default:""`
	ConnectWait time.Duration `yaml:"connect_wait" mapstructure:"connect_wait" default:"5s"`
}

func initNewRelicMonitor(appName string, cfg NewRelicConfig, logger log.Logger) (*newrelic.Application, error) {
	if !cfg.Enabled {
		logger.Info("New Relic monitoring is disabled.")
		return nil, nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(appName),
		newrelic.ConfigLicense(cfg.LicenseKey),
	)
	if err != nil {
		return nil, fmt.Errorf("init new relic monitor: %w", err)
	}

	// data recorded before the agent connects is dropped
	if cfg.ConnectWait > 0 {
		if err := app.WaitForConnection(cfg.ConnectWait); err != nil {
			logger.Warn("New Relic agent did not connect", "err", err)
		}
	}

	logger.Info("NewRelic monitoring is enabled", "app", appName)
	return app, nil
}
