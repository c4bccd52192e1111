package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/existflow/leadboard/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		fmt.Printf("API URL:   %s\n", cfg.APIURL)
		token := "(not set)"
		if cfg.APIToken != "" {
			token = "(set)"
		}
		fmt.Printf("API token: %s\n", token)
		fmt.Printf("Username:  %s\n", cfg.Username)
		fmt.Printf("Log level: %s\n", cfg.LogLevel)
		fmt.Printf("Log file:  %s\n", cfg.LogFile)
		return nil
	},
}

var configSetURLCmd = &cobra.Command{
	Use:   "set-url [url]",
	Short: "Set the backend base URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cfg.APIURL = args[0]
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Printf("✓ Backend URL set to %s\n", args[0])
		return nil
	},
}

var configSetTokenCmd = &cobra.Command{
	Use:   "set-token [token]",
	Short: "Set the backend bearer token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cfg.APIToken = args[0]
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println("✓ Backend token saved")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetURLCmd)
	configCmd.AddCommand(configSetTokenCmd)
}
