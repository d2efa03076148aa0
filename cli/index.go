package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/catalogindex/core/index"
	"github.com/goto/salt/printer"
	"github.com/goto/salt/term"
	"github.com/spf13/cobra"
)

func indexCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "index <command>",
		Aliases: []string{"i"},
		Short:   "Rebuild and manage the physical indices of the alias",
		Example: heredoc.Doc(`
			$ catalogindex index rebuild --copy-type review --documents products.ndjson
			$ catalogindex index prepare
			$ catalogindex index install catalog-20240312-143000
			$ catalogindex index aliases
		`),
		Annotations: map[string]string{
			"group": "core",
		},
	}

	cmd.AddCommand(
		indexRebuildCommand(cfg),
		indexPrepareCommand(cfg),
		indexAddCommand(cfg),
		indexCopyCommand(cfg),
		indexInstallCommand(cfg),
		indexOptimizeCommand(cfg),
		indexRefreshCommand(cfg),
		indexRetuneCommand(cfg),
		indexAliasesCommand(cfg),
		indexNameCommand(cfg),
	)
	return cmd
}

func indexRebuildCommand(cfg *Config) *cobra.Command {
	var (
		copyTypes   []string
		docsFile    string
		skipInstall bool
	)

	cmd := &cobra.Command{
		Use:   "rebuild",
		Short: "Build a new index and publish it under the alias",
		Long: heredoc.Doc(`
			Creates a new physical index with build settings, copies the given
			document types from the indices currently under the alias, writes
			the given documents and swaps the alias onto the new index.
		`),
		Example: heredoc.Doc(`
			$ catalogindex index rebuild --copy-type review --copy-type stats
			$ cat products.ndjson | catalogindex index rebuild --documents -
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := readDocumentsFile(docsFile)
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), cfg, appOption{elasticsearch: true, postgres: true})
			if err != nil {
				return err
			}
			defer a.Close()

			return a.run(cmd.Context(), "index rebuild", func(ctx context.Context) error {
				release, err := a.lock(ctx)
				if err != nil {
					return err
				}
				defer release()

				svc, err := a.indexService()
				if err != nil {
					return err
				}

				res, err := svc.Rebuild(ctx, index.RebuildRequest{
					CopyTypes:   copyTypes,
					Documents:   docs,
					SkipInstall: skipInstall,
				})
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "index %s built: %d copied, %d indexed\n", term.Greenf(res.Session.Index), res.Copied, res.Indexed)
				if skipInstall {
					fmt.Fprintln(out, term.Cyanf("Run `catalogindex index install %s` to publish it", res.Session.Index))
					return nil
				}
				printPublishReport(cmd, cfg.Index.Alias, res.Report)
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&copyTypes, "copy-type", nil, "document type to copy from the current indices, repeatable")
	cmd.Flags().StringVarP(&docsFile, "documents", "d", "", "newline delimited documents to index, - for stdin")
	cmd.Flags().BoolVar(&skipInstall, "skip-install", false, "leave the new index unpublished")
	return cmd
}

func indexPrepareCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "prepare",
		Short: "Create a new index with build settings without publishing it",
		Example: heredoc.Doc(`
			$ catalogindex index prepare
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), cfg, appOption{elasticsearch: true, postgres: true})
			if err != nil {
				return err
			}
			defer a.Close()

			return a.run(cmd.Context(), "index prepare", func(ctx context.Context) error {
				release, err := a.lock(ctx)
				if err != nil {
					return err
				}
				defer release()

				svc, err := a.indexService()
				if err != nil {
					return err
				}
				sess, err := svc.Prepare(ctx)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), sess.Index)
				return nil
			})
		},
	}
}

func indexAddCommand(cfg *Config) *cobra.Command {
	var docsFile string

	cmd := &cobra.Command{
		Use:   "add <index>",
		Short: "Write documents into a prepared index",
		Example: heredoc.Doc(`
			$ catalogindex index add catalog-20240312-143000 --documents products.ndjson
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := readDocumentsFile(docsFile)
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), cfg, appOption{elasticsearch: true})
			if err != nil {
				return err
			}
			defer a.Close()

			return a.run(cmd.Context(), "index add", func(ctx context.Context) error {
				svc, err := a.indexService()
				if err != nil {
					return err
				}
				sess, err := svc.ResumeSession(ctx, args[0])
				if err != nil {
					return err
				}
				if err := svc.AddDocuments(ctx, sess, docs); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%d documents written to %s\n", len(docs), term.Greenf(sess.Index))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&docsFile, "documents", "d", "-", "newline delimited documents to index, - for stdin")
	return cmd
}

func indexCopyCommand(cfg *Config) *cobra.Command {
	var (
		docType string
		from    string
	)

	cmd := &cobra.Command{
		Use:   "copy <index>",
		Short: "Copy one document type into an index",
		Long: heredoc.Doc(`
			Copies every document of the type from the indices currently under the
			alias, or from the --from index, into the destination index.
		`),
		Example: heredoc.Doc(`
			$ catalogindex index copy catalog-20240312-143000 --type review
			$ catalogindex index copy catalog-20240312-143000 --type review --from catalog-20240311-020000
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), cfg, appOption{elasticsearch: true})
			if err != nil {
				return err
			}
			defer a.Close()

			return a.run(cmd.Context(), "index copy", func(ctx context.Context) error {
				svc, err := a.indexService()
				if err != nil {
					return err
				}

				var copied int
				if from != "" {
					copied, err = svc.Copier().Copy(ctx, from, docType, args[0])
				} else {
					sess, rerr := svc.ResumeSession(ctx, args[0])
					if rerr != nil {
						return rerr
					}
					copied, err = svc.CopyFromAlias(ctx, sess, docType)
				}
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%d %s documents copied into %s\n", copied, docType, term.Greenf(args[0]))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&docType, "type", "t", "", "document type to copy")
	cmd.Flags().StringVar(&from, "from", "", "source index, defaults to the indices under the alias")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func indexInstallCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "install <index>",
		Short: "Publish a prepared index under the alias",
		Long: heredoc.Doc(`
			Optimizes the index, switches it to serve settings and moves the alias
			onto it in one atomic call. Indices previously under the alias are
			deleted.
		`),
		Example: heredoc.Doc(`
			$ catalogindex index install catalog-20240312-143000
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), cfg, appOption{elasticsearch: true, postgres: true})
			if err != nil {
				return err
			}
			defer a.Close()

			return a.run(cmd.Context(), "index install", func(ctx context.Context) error {
				release, err := a.lock(ctx)
				if err != nil {
					return err
				}
				defer release()

				svc, err := a.indexService()
				if err != nil {
					return err
				}
				sess, err := svc.ResumeSession(ctx, args[0])
				if err != nil {
					return err
				}
				report, err := svc.Install(ctx, sess)
				if err != nil {
					return err
				}

				printPublishReport(cmd, cfg.Index.Alias, report)
				return nil
			})
		},
	}
}

func indexOptimizeCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "optimize <index>",
		Short: "Merge the index down to one segment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLifecycle(cmd, cfg, "index optimize", func(ctx context.Context, l *index.Lifecycle) error {
				return l.Optimize(ctx, args[0])
			})
		},
	}
}

func indexRefreshCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh <index>",
		Short: "Make recent writes of the index searchable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLifecycle(cmd, cfg, "index refresh", func(ctx context.Context, l *index.Lifecycle) error {
				return l.Refresh(ctx, args[0])
			})
		},
	}
}

func indexRetuneCommand(cfg *Config) *cobra.Command {
	var (
		refreshInterval string
		mergeFactor     int
		replicas        int
	)

	cmd := &cobra.Command{
		Use:   "retune <index>",
		Short: "Change the dynamic settings of an index",
		Example: heredoc.Doc(`
			$ catalogindex index retune catalog-20240312-143000 --refresh-interval 30s --replicas 2
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := index.Settings{
				RefreshInterval: refreshInterval,
				MergeFactor:     mergeFactor,
			}
			if cmd.Flags().Changed("replicas") {
				patch = patch.WithReplicas(replicas)
			}
			if len(patch.Body(false)) == 0 {
				return fmt.Errorf("nothing to change, set at least one setting flag")
			}

			return runLifecycle(cmd, cfg, "index retune", func(ctx context.Context, l *index.Lifecycle) error {
				return l.Retune(ctx, args[0], patch)
			})
		},
	}

	cmd.Flags().StringVar(&refreshInterval, "refresh-interval", "", "refresh interval, such as 1s")
	cmd.Flags().IntVar(&mergeFactor, "merge-factor", 0, "segments merged at once")
	cmd.Flags().IntVar(&replicas, "replicas", 0, "number of replicas")
	return cmd
}

func runLifecycle(cmd *cobra.Command, cfg *Config, operation string, fn func(context.Context, *index.Lifecycle) error) error {
	a, err := newApp(cmd.Context(), cfg, appOption{elasticsearch: true})
	if err != nil {
		return err
	}
	defer a.Close()

	return a.run(cmd.Context(), operation, func(ctx context.Context) error {
		if err := fn(ctx, index.NewLifecycle(a.es, a.logger)); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), term.Greenf("done"))
		return nil
	})
}

func indexAliasesCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "aliases",
		Short: "List the indices the alias resolves to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := printer.Spin("")
			defer spinner.Stop()

			a, err := newApp(cmd.Context(), cfg, appOption{elasticsearch: true})
			if err != nil {
				return err
			}
			defer a.Close()

			indices, err := a.es.AliasIndices(cmd.Context(), cfg.Index.Alias)
			if err != nil {
				return err
			}
			spinner.Stop()

			report := [][]string{{"ALIAS", "INDEX"}}
			for _, name := range indices {
				report = append(report, []string{cfg.Index.Alias, term.Bluef(name)})
			}
			printer.Table(os.Stdout, report)
			return nil
		},
	}
}

func indexNameCommand(cfg *Config) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "name",
		Short: "Print the index name a rebuild started now would get",
		Example: heredoc.Doc(`
			$ catalogindex index name
			$ catalogindex index name --at 2024-03-12T14:30:00Z
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if at != "" {
				t, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("invalid --at: %w", err)
				}
				now = t
			}

			name, err := index.NewName(cfg.Index.Alias, cfg.Index.NamePattern, now)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "RFC 3339 time to name the index after")
	return cmd
}

func printPublishReport(cmd *cobra.Command, alias string, report index.PublishReport) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "alias %s now points to %s\n", alias, term.Greenf(report.Index))
	for _, name := range report.Removed {
		fmt.Fprintf(out, "removed %s\n", term.Yellow(name))
	}
	for _, cerr := range report.CleanupErrors {
		fmt.Fprintln(out, term.Redf("cleanup failed: %s", cerr.Error()))
	}
	if n := len(report.CleanupErrors); n > 0 {
		fmt.Fprintln(out, term.Cyanf("%d stale indices left behind", n))
	}
}
