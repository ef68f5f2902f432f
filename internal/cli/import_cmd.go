package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mithrel/notepolish/internal/notebook"
	"github.com/mithrel/notepolish/pkg/api"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <dir> <folder>",
		Short: "Import markdown files from a directory into a folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			imp, ok := app.Notebook.(notebook.Importer)
			if !ok {
				return fmt.Errorf("import requires the sqlite backend")
			}

			dir, folder := args[0], args[1]
			entries, err := os.ReadDir(dir)
			if err != nil {
				return err
			}

			count := 0
			for _, e := range entries {
				if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".md") {
					continue
				}
				data, err := os.ReadFile(filepath.Join(dir, e.Name()))
				if err != nil {
					app.Log.Printf("skip %q: %v", e.Name(), err)
					continue
				}
				name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
				if _, err := imp.PutNote(cmd.Context(), api.Note{
					Folder: folder,
					Name:   name,
					Body:   string(data),
				}); err != nil {
					app.Log.Printf("skip %q: %v", e.Name(), err)
					continue
				}
				count++
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d notes into %q\n", count, folder)
			return nil
		},
	}
}
