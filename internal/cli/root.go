package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/existflow/leadboard/internal/api"
	"github.com/existflow/leadboard/internal/auth"
	"github.com/existflow/leadboard/internal/config"
	"github.com/existflow/leadboard/internal/logger"
	"github.com/existflow/leadboard/internal/tui"
)

var (
	logLevel   string
	logFile    string
	logConsole bool
)

var rootCmd = &cobra.Command{
	Use:   "leadboard",
	Short: "Leadboard - Terminal dashboard for sales leads",
	Long: `Leadboard is a terminal dashboard for browsing and managing sales leads
stored in a headless content API.

Run 'leadboard' without arguments to launch the interactive TUI.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			cfg = config.DefaultConfig()
		}

		// Override with CLI flags if provided
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = logFile
		}
		if cmd.Flags().Changed("log-console") {
			cfg.LogConsole = logConsole
		}

		logConfig := logger.Config{
			Level:      logger.ParseLevel(cfg.LogLevel),
			FilePath:   cfg.LogFile,
			MaxSize:    10 * 1024 * 1024, // 10MB
			MaxBackups: 5,
			Console:    cfg.LogConsole,
		}

		if err := logger.Init(logConfig); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		logger.Info("Leadboard started", logger.F("command", cmd.Name()))
		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		gate := newGate(cfg)
		svc := api.NewService(api.NewClient(cfg.BaseURL(), cfg.APIToken))

		logger.Info("Launching TUI", logger.F("backend", cfg.BaseURL()))
		m := tui.NewModel(gate, svc)
		p := tea.NewProgram(m, tea.WithAltScreen())

		if _, err := p.Run(); err != nil {
			logger.Error("TUI error", logger.F("error", err))
			return fmt.Errorf("failed to run TUI: %w", err)
		}

		logger.Info("TUI exited normally")
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Info("Leadboard exiting", logger.F("command", cmd.Name()))
		logger.Close()
	},
}

// newGate builds the session gate from the configured credential pair
func newGate(cfg *config.Config) *auth.Gate {
	if cfg.PasswordHash != "" {
		return auth.NewGateHashed(cfg.Username, cfg.PasswordHash)
	}
	return auth.NewGate(cfg.Username, cfg.Password)
}

// newService builds a lead service from the saved config, for one-shot
// subcommands that talk to the backend directly
func newService() (*api.Service, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return api.NewService(api.NewClient(cfg.BaseURL(), cfg.APIToken)), cfg, nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&logConsole, "log-console", false, "Enable console logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(configCmd)
}
