// Package cli implements the pypisearch command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pypisearch/pkg/buildinfo"
	"github.com/matzehuels/pypisearch/pkg/integrations/pypi"
)

// appName is the application name used for display and the User-Agent.
const appName = "pypisearch"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger

	// Flags
	verbose  bool
	logFile  string
	indexURL string

	// run starts the interactive session; replaced in tests.
	run func(cmd *cobra.Command, opts sessionOptions) error
}

// New creates a new CLI instance whose logger writes to w.
// The TUI owns the terminal, so callers usually pass io.Discard and let
// --log-file redirect output.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		run:    runSession,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName + " [query...]",
		Short: "Search PyPI from the terminal",
		Long: `pypisearch searches the Python Package Index and shows matching packages in
a table. Select a row and press enter to open the package page in your browser.

Words given on the command line are joined into an initial query that is
searched as soon as the screen opens.`,
		Example: `  pypisearch
  pypisearch web framework
  pypisearch --index-url https://test.pypi.org requests`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.ArbitraryArgs,
		PersistentPreRunE: c.setupLogging,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := pypi.NewClient(c.indexURL)
			if err != nil {
				return err
			}
			return c.run(cmd, sessionOptions{
				query:  strings.Join(args, " "),
				client: client,
			})
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.Flags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&c.logFile, "log-file", "", "append logs to this file (logs are discarded by default)")
	flags.StringVar(&c.indexURL, "index-url", pypi.DefaultOrigin, "package index to search")

	return root
}

// setupLogging points the logger at --log-file and applies --verbose.
// The logger is attached to the command context for loggerFromContext.
func (c *CLI) setupLogging(cmd *cobra.Command, _ []string) error {
	if c.verbose {
		c.SetLogLevel(LogDebug)
	}
	if c.logFile != "" {
		f, err := os.OpenFile(c.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		c.Logger.SetOutput(f)
		cobra.OnFinalize(func() { f.Close() })
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}
