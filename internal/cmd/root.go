package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"forja/internal/config"
	"forja/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	BackendURL  string           `help:"Base URL of the generation backend"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run     RunCmd     `cmd:"" help:"Start the forja dashboard (default)" default:"1"`
	Submit  SubmitCmd  `cmd:"submit" help:"Submit a change request or follow-up without the dashboard"`
	Preview PreviewCmd `cmd:"preview" help:"Print the diff preview for one or more pull requests"`
	Serve   ServeCmd   `cmd:"serve" help:"Serve the dashboard over SSH"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set

	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("FORJA_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("FORJA_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	// Resolve the backend URL with the same precedence
	if c.BackendURL == "" {
		if envURL := os.Getenv("FORJA_BACKEND_URL"); envURL != "" {
			c.BackendURL = envURL
		} else if c.settings != nil && c.settings.BackendURL != "" {
			c.BackendURL = c.settings.BackendURL
		} else {
			c.BackendURL = config.DefaultBackendURL
		}
	}

	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Export debug settings so child processes append to the same file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("FORJA_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("FORJA_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("FORJA_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Create container after logging is initialized
	c.Container = NewContainer(c.BackendURL)

	return nil
}
