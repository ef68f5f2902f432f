package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mithrel/notepolish/internal/enhance"
	"github.com/mithrel/notepolish/internal/pipeline"
)

func newPolishCmd() *cobra.Command {
	var noEnhance bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "polish <source-folder> <dest-folder>",
		Short: "Polish every note in a folder into a destination folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			ctx := cmd.Context()

			folders, err := app.Notebook.Folders(ctx)
			if err != nil {
				return err
			}
			src, err := resolveFolder(folders, args[0])
			if err != nil {
				return err
			}

			rw := app.Rewriter
			if noEnhance {
				rw = enhance.NopRewriter{}
			}

			rep, err := pipeline.Run(ctx, app.Log, app.Notebook, rw, app.Notebook, pipeline.Options{
				SourceFolder:  src,
				DestFolder:    args[1],
				NamePrefix:    app.Cfg.PolishPrefix,
				SkipUnchanged: app.Cfg.SkipUnchanged,
				DryRun:        dryRun,
				Out:           cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "polished %d, unchanged %d, skipped %d\n",
				rep.Processed, rep.Unchanged, rep.Skipped)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noEnhance, "no-enhance", false, "render without calling the AI rewriter")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print fragments instead of storing them")
	return cmd
}
