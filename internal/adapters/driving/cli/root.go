// Package cli implements the perplexica-mcp command line interface.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/perplexica-mcp/internal/adapters/driven/config/file"
	"github.com/custodia-labs/perplexica-mcp/internal/adapters/driven/perplexica"
	"github.com/custodia-labs/perplexica-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/perplexica-mcp/internal/core/services"
	"github.com/custodia-labs/perplexica-mcp/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Environment variables read once at startup.
const (
	envAPIKey  = "PERPLEXICA_API_KEY"
	envBaseURL = "PERPLEXICA_BASE_URL"
)

var (
	verboseFlag bool
	configDir   string
)

// Services shared across commands, wired in initServices.
var (
	chatService     driving.ChatService
	settingsService driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "perplexica-mcp",
	Short: "MCP server bridging AI assistants to a Perplexica search backend",
	Long: `perplexica-mcp exposes Perplexica's web-search-augmented answers to
MCP-compatible AI assistants as a single perplexica_ask tool.

The backend API key is read from the ` + envAPIKey + ` environment
variable; when unset, requests are sent unauthenticated. Defaults can be
overridden in ~/.perplexica-mcp/config.toml.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"configuration directory (default ~/.perplexica-mcp)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initServices wires the service graph before any command runs.
// Configuration and environment are read exactly once, here.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	logger.Debug("Config file: %s", store.Path())

	settings := services.NewSettingsService(store, services.EnvOverrides{
		APIKey:  os.Getenv(envAPIKey),
		BaseURL: os.Getenv(envBaseURL),
	})

	backend, err := settings.Backend()
	if err != nil {
		return fmt.Errorf("resolving backend settings: %w", err)
	}
	logger.Debug("Backend: %s (authenticated=%t)", backend.BaseURL, backend.Authenticated)

	client := perplexica.NewClient(perplexica.Config{
		BaseURL:           backend.BaseURL,
		APIKey:            settings.APIKey(),
		ChatProvider:      backend.ChatProvider,
		ChatModel:         backend.ChatModel,
		EmbeddingProvider: backend.EmbeddingProvider,
		EmbeddingModel:    backend.EmbeddingModel,
		FocusMode:         backend.FocusMode,
		OptimizationMode:  backend.OptimizationMode,
		Timeout:           time.Duration(backend.TimeoutSeconds) * time.Second,
	})

	chatService = services.NewChatService(client)
	settingsService = settings

	return nil
}
