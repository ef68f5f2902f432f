package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/mithrel/notepolish/internal/pipeline"
)

func newPreviewCmd() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "preview <folder> <note>",
		Short: "Show a note's canonical plain-text rendering",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			ctx := cmd.Context()

			folders, err := app.Notebook.Folders(ctx)
			if err != nil {
				return err
			}
			folder, err := resolveFolder(folders, args[0])
			if err != nil {
				return err
			}
			body, err := app.Notebook.Body(ctx, folder, args[1])
			if err != nil {
				return err
			}

			return withPager(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), func(w io.Writer) error {
				if pretty {
					return writePretty(w, body)
				}
				plain, _ := pipeline.Process(body)
				_, err := io.WriteString(w, plain)
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "render the markdown with terminal styling instead")
	return cmd
}

// writePretty renders the raw markdown body with glamour.
func writePretty(w io.Writer, body string) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := r.Render(body)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
