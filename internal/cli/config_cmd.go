package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mithrel/notepolish/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}
	cmd.AddCommand(newConfigGenerateCmd())
	cmd.AddCommand(newConfigShowCmd())
	return cmd
}

func newConfigGenerateCmd() *cobra.Command {
	var out string
	var overwrite bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a default config.toml",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = config.DefaultConfigPath()
			}
			if err := os.MkdirAll(filepath.Dir(out), 0o700); err != nil {
				return err
			}
			if _, err := os.Stat(out); err == nil && !overwrite {
				return fmt.Errorf("config already exists at %s; use --overwrite to replace it", out)
			}
			if err := os.WriteFile(out, []byte(config.RenderDefaultTOML()), 0o600); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output path for config.toml")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "overwrite an existing config")
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getApp(cmd).Cfg
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "data_dir = %q\n", cfg.DataDir)
			_, _ = fmt.Fprintf(w, "notebook.backend = %q\n", cfg.Backend)
			_, _ = fmt.Fprintf(w, "enhance.enabled = %v\n", cfg.EnhanceEnabled)
			_, _ = fmt.Fprintf(w, "enhance.command = %q\n", cfg.EnhanceCommand)
			_, _ = fmt.Fprintf(w, "enhance.timeout_seconds = %d\n", int(cfg.EnhanceTimeout.Seconds()))
			_, _ = fmt.Fprintf(w, "polish.prefix = %q\n", cfg.PolishPrefix)
			_, _ = fmt.Fprintf(w, "polish.skip_unchanged = %v\n", cfg.SkipUnchanged)
			return nil
		},
	}
}
