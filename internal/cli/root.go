// Package cli provides the command-line interface for spinrect.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/example/spinrect/internal/config"
	"github.com/example/spinrect/internal/logging"
	"github.com/example/spinrect/internal/ui"
)

// BuildInfo is set by the linker in main.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

// runFunc starts the window; replaced in tests.
var runFunc = ui.Run

// NewRootCmd creates the root command for spinrect
func NewRootCmd(info BuildInfo) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "spinrect",
		Short:         "Draw rectangles, spin them away, repaint the closest pair",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			level, err := logging.ParseLevel(cfg.Logging.Level)
			if err != nil {
				return err
			}
			logCfg := logging.DefaultConfig()
			logCfg.Level = level
			logCfg.Format = cfg.Logging.Format
			log := logging.New(logCfg)

			ctx := logging.WithContext(cmd.Context(), log)
			ctx = withConfig(ctx, cfg)
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logging.WithComponent(cmd.Context(), "cli")
			cfg := configFrom(ctx)
			log := logging.FromContext(ctx)
			log.Info().
				Str("version", info.Version).
				Str("config", cfg.Source()).
				Msg("starting canvas")
			return runFunc(cfg, *logging.FromContext(cmd.Context()))
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a config file (yaml, toml or json)")

	rootCmd.AddCommand(newVersionCmd(info), newConfigCmd())
	return rootCmd
}

func newVersionCmd(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, titleStyle.Render("spinrect "+info.Version))
			fmt.Fprintf(w, "%s %s\n", labelStyle.Render("commit:"), info.Commit)
			fmt.Fprintf(w, "%s %s\n", labelStyle.Render("built: "), info.BuildDate)
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printConfig(cmd.OutOrStdout(), configFrom(cmd.Context()))
		},
	}
}

func printConfig(w io.Writer, cfg *config.Config) error {
	source := cfg.Source()
	if source == "" {
		source = "defaults"
	}
	fmt.Fprintln(w, titleStyle.Render("Effective configuration"))
	fmt.Fprintln(w, mutedStyle.Render("source: "+source))

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	_, err = w.Write(out)
	return err
}
