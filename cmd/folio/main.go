package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"folio/internal/app"
	"folio/internal/config"
	"folio/internal/logging"
	"folio/internal/ui"
)

var (
	version      = "0.1.0"
	cfgFile      string
	contentPath  string
	theme        string
	logLevel     string
	plain        bool
	noAnimations bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "folio",
		Short: "A terminal portfolio with an animated loading screen",
		Long: `Folio shows a personal portfolio in the terminal. A loading screen fills
a progress bar while the content loads, then reveals the portfolio:
a hero, project cards and an about section.`,
		SilenceUsage: true,
		RunE:         runApp,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/folio/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "portfolio YAML file or content directory (default is the built-in portfolio)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "theme: "+strings.Join(ui.ThemeNames(), ", "))
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&plain, "plain", false, "print progress and the portfolio without the full-screen UI")
	rootCmd.Flags().BoolVar(&noAnimations, "no-animations", false, "disable the hero scene and card reveals")

	// Version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("folio version %s\n", version)
		},
	})

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads the configuration and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Version = version

	if contentPath != "" {
		cfg.Content.Path = contentPath
	}
	if theme != "" {
		cfg.UI.Theme = theme
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if noAnimations {
		cfg.UI.Animations = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runApp(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	if plain {
		// Plain output shares the terminal, so only warnings are logged by default.
		level := logging.LevelWarn
		if logLevel != "" {
			level = logging.ParseLevel(logLevel)
		}
		logging.Configure(level, os.Stderr, "session", application.Session())
		return application.RunPlain(context.Background(), cmd.OutOrStdout())
	}
	return application.Run()
}
