package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"folio/internal/app"
	"folio/internal/config"
	"folio/internal/content"
)

func newRenderCmd() *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the portfolio as markdown",
		Long: `Render prints the portfolio without the loading screen. Use --style raw
for the markdown source, or a glamour style such as dark, light or notty.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			p, err := content.Load(cfg.Content.Path)
			if err != nil {
				return err
			}
			return app.RenderMarkdown(cmd.OutOrStdout(), p, style)
		},
	}

	cmd.Flags().StringVar(&style, "style", "raw", "output style: raw, dark, light, notty")
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Check portfolio content and configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			path := cfg.Content.Path
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("no content path: pass one or set content.path")
			}

			p, err := content.Load(path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: ok\n", path)
			fmt.Fprintf(out, "  name:     %s\n", p.Profile.Name)
			fmt.Fprintf(out, "  projects: %d\n", len(p.Projects))
			if tags := p.Tags(); len(tags) > 0 {
				fmt.Fprintf(out, "  tags:     %s\n", strings.Join(tags, ", "))
			}
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Run: func(cmd *cobra.Command, args []string) {
			path := cfgFile
			if path == "" {
				path = config.GetConfigPath()
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfgFile
			if path == "" {
				path = config.GetConfigPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.DefaultConfig().Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(initCmd)

	configCmd.AddCommand(&cobra.Command{
		Use:   "presets",
		Short: "List loader timing presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.LoaderPresets[name]
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s tick %-6s step %-3d grace %s\n",
					name, p.TickInterval, p.Step, p.GraceDelay)
			}
		},
	})

	return configCmd
}
