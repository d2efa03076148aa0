package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/catalogindex/core/changelog"
	"github.com/goto/catalogindex/internal/store/postgres"
	"github.com/goto/salt/printer"
	"github.com/goto/salt/term"
	"github.com/spf13/cobra"
)

func changelogCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "changelog <command>",
		Short: "Track changes of source tables for incremental reindexing",
		Example: heredoc.Doc(`
			$ catalogindex changelog subscribe --view catalog_position --table category_product_position --key product_id
			$ catalogindex changelog list
			$ catalogindex changelog changes catalog_position --since 120
		`),
		Annotations: map[string]string{
			"group": "core",
		},
	}

	cmd.AddCommand(
		changelogSubscribeCommand(cfg),
		changelogListCommand(cfg),
		changelogChangesCommand(cfg),
	)
	return cmd
}

func newChangelogService(cmd *cobra.Command, cfg *Config) (*changelog.Service, func(), error) {
	a, err := newApp(cmd.Context(), cfg, appOption{postgres: true})
	if err != nil {
		return nil, nil, err
	}
	if a.pg == nil {
		a.Close()
		return nil, nil, errDBDisabled
	}
	repo, err := postgres.NewChangelogRepository(a.pg)
	if err != nil {
		a.Close()
		return nil, nil, err
	}
	return changelog.NewService(a.logger, repo), a.Close, nil
}

func changelogSubscribeCommand(cfg *Config) *cobra.Command {
	var sub changelog.Subscription

	cmd := &cobra.Command{
		Use:   "subscribe",
		Short: "Record every write on a table into a change-log table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := newChangelogService(cmd, cfg)
			if err != nil {
				return err
			}
			defer closeFn()

			if err := svc.Subscribe(cmd.Context(), sub); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "changes of %s are recorded in %s\n", sub.TableName, term.Greenf(sub.ChangelogTable()))
			return nil
		},
	}

	cmd.Flags().StringVar(&sub.ViewName, "view", "", "name the subscription is tracked under")
	cmd.Flags().StringVar(&sub.TableName, "table", "", "table to record changes of")
	cmd.Flags().StringVar(&sub.KeyColumn, "key", "", "column identifying the changed entity")
	cmd.Flags().StringVar(&sub.GroupCode, "group", changelog.DefaultGroupCode, "group of the subscription")
	_ = cmd.MarkFlagRequired("view")
	_ = cmd.MarkFlagRequired("table")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func changelogListCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List change-log subscriptions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := newChangelogService(cmd, cfg)
			if err != nil {
				return err
			}
			defer closeFn()

			subs, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}

			report := [][]string{{"VIEW", "TABLE", "KEY", "GROUP", "STATUS", "VERSION"}}
			for _, s := range subs {
				report = append(report, []string{
					term.Bluef(s.ViewName), s.TableName, s.KeyColumn, s.GroupCode, string(s.Status),
					strconv.FormatInt(s.VersionID, 10),
				})
			}
			printer.Table(os.Stdout, report)
			return nil
		},
	}
}

func changelogChangesCommand(cfg *Config) *cobra.Command {
	var since int64

	cmd := &cobra.Command{
		Use:   "changes <view>",
		Short: "List the changes recorded after a version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := newChangelogService(cmd, cfg)
			if err != nil {
				return err
			}
			defer closeFn()

			entries, err := svc.Changes(cmd.Context(), args[0], since)
			if err != nil {
				return err
			}

			report := [][]string{{"VERSION", "ENTITY", "CHANGED"}}
			for _, e := range entries {
				changed := e.ChangedAt
				report = append(report, []string{strconv.FormatInt(e.VersionID, 10), e.EntityID, formatTime(&changed)})
			}
			printer.Table(os.Stdout, report)
			return nil
		},
	}

	cmd.Flags().Int64Var(&since, "since", 0, "only list changes after this version")
	return cmd
}
