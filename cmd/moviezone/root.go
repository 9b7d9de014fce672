package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"moviezone/internal/catalog"
	"moviezone/internal/config"
	"moviezone/internal/domain"
	"moviezone/internal/logging"
	"moviezone/internal/ui"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger

	// Flag overrides
	apiURL         string
	timeoutSeconds int
	category       string
	logLevel       string
)

var rootCmd = &cobra.Command{
	Use:   "moviezone",
	Short: "Browse the movie catalog from your terminal",
	Long: `moviezone is a terminal client for the MovieZone catalog. Run it without
a command to browse trending movies, search and open details interactively,
or use the commands below for one-shot output.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initializeApp,
	RunE:              runTUI,
}

func setVersion(version, buildTime string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

func execute(ctx context.Context) error {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is "+config.DefaultPath()+")")
	flags.StringVar(&apiURL, "api", "", "catalog API base URL")
	flags.IntVar(&timeoutSeconds, "timeout", 0, "per-request timeout in seconds")
	flags.StringVar(&category, "category", "", "default category key or label")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(configCmd)
}

// initializeApp loads the configuration, applies flag overrides and sets up the logger
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := applyFlagOverrides(cmd, cfg); err != nil {
		return err
	}

	logger = logging.New(cfg.Logging, os.Stderr)
	return nil
}

// applyFlagOverrides copies explicitly set flags over the loaded config
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("api") {
		cfg.Catalog.BaseURL = apiURL
	}
	if flags.Changed("timeout") {
		cfg.Catalog.TimeoutSeconds = timeoutSeconds
	}
	if flags.Changed("category") {
		cfg.UI.DefaultCategory = category
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func newCatalog(log zerolog.Logger) (*catalog.Client, error) {
	client, err := catalog.NewClient(cfg.Catalog.BaseURL,
		catalog.WithTimeout(cfg.Catalog.Timeout()),
		catalog.WithUserAgent(cfg.Catalog.UserAgent),
		catalog.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog client: %w", err)
	}
	return client, nil
}

func images() domain.Images {
	return domain.Images{
		BaseURL:        cfg.Images.BaseURL,
		PlaceholderURL: cfg.Images.PlaceholderURL,
	}
}

// runTUI starts the interactive browser
func runTUI(cmd *cobra.Command, args []string) error {
	// The terminal belongs to the UI, so only the log file gets entries
	uiLogger, closer, err := logging.OpenFile(cfg.Logging)
	if err != nil {
		return err
	}
	defer closer.Close()

	client, err := newCatalog(uiLogger)
	if err != nil {
		return err
	}

	defaultCategory, err := domain.ResolveCategory(cfg.UI.DefaultCategory)
	if err != nil {
		return fmt.Errorf("default category %q: %w", cfg.UI.DefaultCategory, err)
	}

	model := ui.NewModel(ui.Options{
		Catalog:         client,
		Images:          images(),
		DefaultCategory: defaultCategory,
		Timeout:         cfg.Catalog.Timeout(),
		Logger:          uiLogger,
	})

	opts := []tea.ProgramOption{tea.WithContext(cmd.Context())}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)

	uiLogger.Info().Str("api", client.BaseURL()).Str("category", defaultCategory.Key).Msg("Starting UI")
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	uiLogger.Info().Msg("UI exited normally")
	return nil
}
