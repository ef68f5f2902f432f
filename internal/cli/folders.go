package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/mithrel/notepolish/pkg/api"
)

var (
	folderNameStyle  = lipgloss.NewStyle().Bold(true)
	folderCountStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func newFoldersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "folders",
		Short: "List notebook folders",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			folders, err := app.Notebook.Folders(cmd.Context())
			if err != nil {
				return err
			}
			if len(folders) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no folders")
				return nil
			}
			for _, f := range folders {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
					folderNameStyle.Render(f.Name),
					folderCountStyle.Render(fmt.Sprintf("(%d)", f.Notes)))
			}
			return nil
		},
	}
}

// resolveFolder returns the exact folder match if one exists, otherwise the
// best fuzzy match against the known folder names.
func resolveFolder(folders []api.Folder, name string) (string, error) {
	names := make([]string, 0, len(folders))
	for _, f := range folders {
		if f.Name == name {
			return name, nil
		}
		names = append(names, f.Name)
	}
	matches := fuzzy.Find(name, names)
	if len(matches) == 0 {
		return "", fmt.Errorf("no folder matching %q", name)
	}
	return matches[0].Str, nil
}
