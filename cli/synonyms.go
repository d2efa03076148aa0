package cli

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/catalogindex/internal/store/postgres"
	"github.com/goto/salt/printer"
	"github.com/goto/salt/term"
	"github.com/spf13/cobra"
)

func synonymsCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "synonyms <command>",
		Short: "Manage the synonym rules of the search analyzers",
		Long: heredoc.Doc(`
			Synonym rules use the Solr format and are picked up by the next rebuild.
		`),
		Example: heredoc.Doc(`
			$ catalogindex synonyms add "tv, television"
			$ catalogindex synonyms add --store fr "téléviseur, télé"
			$ catalogindex synonyms list
		`),
		Annotations: map[string]string{
			"group": "core",
		},
	}

	cmd.AddCommand(synonymsAddCommand(cfg), synonymsListCommand(cfg))
	return cmd
}

func synonymsAddCommand(cfg *Config) *cobra.Command {
	var store string

	cmd := &cobra.Command{
		Use:   "add <rule>",
		Short: "Add a synonym rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, closeFn, err := newSynonymRepository(cmd, cfg)
			if err != nil {
				return err
			}
			defer closeFn()

			id, err := repo.Create(cmd.Context(), store, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID: \t", term.Greenf("%d", id))
			return nil
		},
	}

	cmd.Flags().StringVarP(&store, "store", "s", "", "store code the rule applies to, all stores when empty")
	return cmd
}

func synonymsListCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the synonym rules of the configured stores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, closeFn, err := newSynonymRepository(cmd, cfg)
			if err != nil {
				return err
			}
			defer closeFn()

			terms, err := repo.List(cmd.Context())
			if err != nil {
				return err
			}
			report := [][]string{{"RULE"}}
			for _, t := range terms {
				report = append(report, []string{t})
			}
			printer.Table(os.Stdout, report)
			return nil
		},
	}
}

func newSynonymRepository(cmd *cobra.Command, cfg *Config) (*postgres.SynonymRepository, func(), error) {
	a, err := newApp(cmd.Context(), cfg, appOption{postgres: true})
	if err != nil {
		return nil, nil, err
	}
	if a.pg == nil {
		a.Close()
		return nil, nil, errDBDisabled
	}

	codes := make([]string, 0, len(cfg.Index.Stores))
	for _, s := range cfg.Index.Stores {
		codes = append(codes, s.Code)
	}
	repo, err := postgres.NewSynonymRepository(a.pg, codes...)
	if err != nil {
		a.Close()
		return nil, nil, err
	}
	return repo, a.Close, nil
}
