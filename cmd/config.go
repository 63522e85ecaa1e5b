package cmd

import (
	"fmt"

	"github.com/jfmyers9/strum/internal/config"
	"github.com/spf13/cobra"
)

var configSave bool

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the effective configuration after merging defaults, the config
file, and environment variables.

Use --save to write the effective configuration to config.yaml in the
config directory, giving you a file to edit.`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().BoolVar(&configSave, "save", false, "Write the effective configuration to the config file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	fmt.Printf("config dir:             %s\n", config.GetConfigDir())
	fmt.Printf("search.base_url:        %s\n", cfg.Search.BaseURL)
	fmt.Printf("search.user_agent:      %s\n", cfg.Search.UserAgent)
	fmt.Printf("search.timeout_seconds: %d\n", cfg.Search.TimeoutSeconds)
	fmt.Printf("search.cache_size:      %d\n", cfg.Search.CacheSize)
	fmt.Printf("stream.url_template:    %s\n", cfg.Stream.URLTemplate)
	fmt.Printf("history.path:           %s\n", cfg.History.Path)

	if configSave {
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}
		fmt.Println("\nSaved to config.yaml")
	}

	return nil
}
