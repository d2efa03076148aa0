package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/cmdx"
	"github.com/spf13/cobra"
)

var envHelp = map[string]string{
	"short": "List of supported environment variables",
	"long": heredoc.Doc(`
		CATALOGINDEX_<KEY>: every configuration key can be set from the
		environment, nested keys joined by an underscore, for instance
		CATALOGINDEX_INDEX_ALIAS=catalog or CATALOGINDEX_DB_HOST=localhost.

		NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.
	`),
}

func New(cfg *Config) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:           "catalogindex <command> <subcommand> [flags]",
		Short:         "Catalog search index builder",
		Long:          "Builds catalog search indices and publishes them behind an alias without downtime.",
		SilenceErrors: true,
		SilenceUsage:  true,
		Example: heredoc.Doc(`
			$ catalogindex index rebuild
			$ catalogindex history list
			$ catalogindex migrate
		`),
		Annotations: map[string]string{
			"group": "core",
			"help:learn": heredoc.Doc(`
				Use 'catalogindex <command> --help' for info about a command.
			`),
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString(configFlag)
			if path == "" {
				return nil
			}
			return LoadConfigFromFlag(path, cfg)
		},
	}

	rootCmd.AddCommand(
		indexCommand(cfg),
		historyCommand(cfg),
		changelogCommand(cfg),
		synonymsCommand(cfg),
		migrateCommand(cfg),
		configCommand(cfg),
		versionCmd(),
	)

	// Help topics
	rootCmd.AddCommand(cmdx.SetCompletionCmd("catalogindex"))
	rootCmd.AddCommand(cmdx.SetRefCmd(rootCmd))
	rootCmd.AddCommand(cmdx.SetHelpTopicCmd("environment", envHelp))
	cmdx.SetHelp(rootCmd)

	rootCmd.PersistentFlags().StringP(configFlag, "c", "", "Override config file")

	return rootCmd
}
