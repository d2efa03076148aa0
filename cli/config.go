package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/catalogindex/core/index"
	"github.com/goto/catalogindex/core/validator"
	esStore "github.com/goto/catalogindex/internal/store/elasticsearch"
	"github.com/goto/catalogindex/internal/store/postgres"
	"github.com/goto/catalogindex/pkg/statsd"
	"github.com/goto/catalogindex/pkg/telemetry"
	"github.com/goto/salt/cmdx"
	"github.com/goto/salt/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

const (
	appName    = "catalogindex"
	envPrefix  = "CATALOGINDEX"
	configFlag = "config"
)

func configCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <command>",
		Short: "Manage catalogindex configuration",
		Example: heredoc.Doc(`
			$ catalogindex config init
			$ catalogindex config list`),
	}

	cmd.AddCommand(configInitCommand())
	cmd.AddCommand(configListCommand(cfg))

	return cmd
}

func configInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new configuration file",
		Example: heredoc.Doc(`
			$ catalogindex config init
		`),
		Annotations: map[string]string{
			"group": "core",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cmdx.SetConfig(appName)

			if err := cfg.Init(&Config{}); err != nil {
				return err
			}

			fmt.Printf("config created: %v\n", cfg.File())
			return nil
		},
	}
}

func configListCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configuration settings",
		Example: heredoc.Doc(`
			$ catalogindex config list
		`),
		Annotations: map[string]string{
			"group": "core",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return yaml.NewEncoder(cmd.OutOrStdout()).Encode(*cfg)
		},
	}
}

type Config struct {
	// Log
	LogLevel string `yaml:"log_level" mapstructure:"log_level" default:"info" validate:"oneof=debug info warn error"`

	// Telemetry
	Telemetry telemetry.Config `yaml:"telemetry" mapstructure:"telemetry"`

	// StatsD
	StatsD statsd.Config `yaml:"statsd" mapstructure:"statsd"`

	// Elasticsearch
	Elasticsearch esStore.Config `yaml:"elasticsearch" mapstructure:"elasticsearch"`

	// Database keeps rebuild history, synonyms, change-log subscriptions
	// and the rebuild lock. Without it rebuilds run unguarded.
	DB        postgres.Config `yaml:"db" mapstructure:"db"`
	DBEnabled bool            `yaml:"db_enabled" mapstructure:"db_enabled" default:"true"`

	// Index
	Index        index.Config         `yaml:"index" mapstructure:"index"`
	Analysis     index.AnalysisConfig `yaml:"analysis" mapstructure:"analysis"`
	AnalysisFile string               `yaml:"analysis_file" mapstructure:"analysis_file"`
	MappingsDir  string               `yaml:"mappings_dir" mapstructure:"mappings_dir" default:"./mappings"`
}

// Validate reports every invalid setting at once.
func (cfg *Config) Validate() error {
	v, err := validator.NewBuilder().
		WithTagName("mapstructure").
		WithFieldValidations([]validator.FieldValidation{validator.DurationValidation}).
		WithTranslations([]validator.Translation{validator.DurationTranslation}).
		Build()
	if err != nil {
		return err
	}
	if err := v.Validate(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// analysisConfig returns the analysis configuration, read from
// AnalysisFile when set.
func (cfg *Config) analysisConfig() (index.AnalysisConfig, error) {
	if cfg.AnalysisFile == "" {
		return cfg.Analysis, nil
	}

	b, err := os.ReadFile(cfg.AnalysisFile)
	if err != nil {
		return index.AnalysisConfig{}, fmt.Errorf("read analysis file: %w", err)
	}
	var analysis index.AnalysisConfig
	if err := json.Unmarshal(b, &analysis); err != nil {
		return index.AnalysisConfig{}, fmt.Errorf("invalid analysis file %s: %w", cfg.AnalysisFile, err)
	}
	return analysis, nil
}

func LoadConfig() (*Config, error) {
	var cfg Config
	err := cmdx.SetConfig(appName).Load(&cfg,
		cmdx.WithLoaderOptions(
			config.WithEnvPrefix(envPrefix),
			config.WithEnvKeyReplacer(".", "_"),
		),
	)
	if err != nil {
		if errors.As(err, &config.ConfigFileNotFoundError{}) {
			return LoadFromCurrentDir()
		}
		return &cfg, err
	}
	return &cfg, nil
}

func LoadFromCurrentDir() (*Config, error) {
	var cfg Config
	var opts []config.LoaderOption

	opts = append(opts,
		config.WithPath("./"),
		config.WithName(appName+".yaml"),
		config.WithEnvKeyReplacer(".", "_"),
		config.WithEnvPrefix(envPrefix),
	)

	if err := config.NewLoader(opts...).Load(&cfg); err != nil {
		if errors.As(err, &config.ConfigFileNotFoundError{}) {
			return &cfg, ErrConfigNotFound
		}
		return &cfg, err
	}
	return &cfg, nil
}

func LoadConfigFromFlag(cfgFile string, cfg *Config) error {
	var opts []config.LoaderOption
	opts = append(opts,
		config.WithFile(cfgFile),
		config.WithEnvKeyReplacer(".", "_"),
		config.WithEnvPrefix(envPrefix),
	)

	return config.NewLoader(opts...).Load(cfg)
}
