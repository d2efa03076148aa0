package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/catalogindex/core/index"
	"github.com/goto/catalogindex/internal/store/postgres"
	"github.com/goto/salt/printer"
	"github.com/goto/salt/term"
	"github.com/spf13/cobra"
)

func historyCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history <command>",
		Short: "Inspect past rebuilds",
		Example: heredoc.Doc(`
			$ catalogindex history list
			$ catalogindex history list --status failed -o json
		`),
		Annotations: map[string]string{
			"group": "core",
		},
	}

	cmd.AddCommand(historyListCommand(cfg))
	return cmd
}

func historyListCommand(cfg *Config) *cobra.Command {
	var (
		out    string
		alias  string
		status string
		limit  int
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the most recent rebuilds of the alias",
		Annotations: map[string]string{
			"action:core": "true",
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := printer.Spin("")
			defer spinner.Stop()

			a, err := newApp(cmd.Context(), cfg, appOption{postgres: true})
			if err != nil {
				return err
			}
			defer a.Close()
			if a.pg == nil {
				return errDBDisabled
			}

			repo, err := postgres.NewRebuildRepository(a.pg)
			if err != nil {
				return err
			}

			flt := postgres.RebuildFilter{Alias: alias, Status: status, Limit: limit}
			if flt.Alias == "" && !all {
				flt.Alias = cfg.Index.Alias
			}
			records, err := repo.List(cmd.Context(), flt)
			if err != nil {
				return err
			}
			spinner.Stop()

			if out == "json" {
				fmt.Fprintln(cmd.OutOrStdout(), prettyPrint(records))
				return nil
			}

			report := [][]string{{"SESSION", "INDEX", "STATUS", "COPIED", "INDEXED", "STARTED", "FINISHED"}}
			for _, r := range records {
				started := r.StartedAt
				report = append(report, []string{
					r.SessionID,
					term.Bluef(r.IndexName),
					colorStatus(r.Status),
					strconv.Itoa(r.Copied),
					strconv.Itoa(r.Indexed),
					formatTime(&started),
					formatTime(r.FinishedAt),
				})
			}
			printer.Table(os.Stdout, report)
			fmt.Println(term.Cyanf("To view errors and all the data in JSON format, use flag `-o json`"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "table", "flag to control output viewing, for json `-o json`")
	cmd.Flags().StringVarP(&alias, "alias", "a", "", "alias to list rebuilds of, defaults to the configured alias")
	cmd.Flags().StringVarP(&status, "status", "s", "", "only list rebuilds in this status")
	cmd.Flags().IntVarP(&limit, "limit", "l", postgres.DefaultMaxResultSize, "maximum number of rebuilds")
	cmd.Flags().BoolVar(&all, "all", false, "list rebuilds of every alias")
	return cmd
}

func colorStatus(s index.RebuildStatus) string {
	switch s {
	case index.StatusInstalled:
		return term.Green(s.String())
	case index.StatusFailed:
		return term.Red(s.String())
	default:
		return term.Yellow(s.String())
	}
}
