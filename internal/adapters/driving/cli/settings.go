package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the effective backend configuration",
	Long: `Prints the backend configuration as currently applied, after merging
environment variables, the config file, and compiled-in defaults.
Credentials are redacted to an "authenticated" flag.`,
	RunE: runSettings,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}

func runSettings(cmd *cobra.Command, _ []string) error {
	settings, err := settingsService.Backend()
	if err != nil {
		return fmt.Errorf("resolving backend settings: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	cmd.Println(string(data))
	return nil
}
