package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pypisearch/internal/browser"
	"github.com/matzehuels/pypisearch/internal/tui"
	"github.com/matzehuels/pypisearch/pkg/integrations/pypi"
	"github.com/matzehuels/pypisearch/pkg/observability"
)

// sessionOptions are the resolved inputs of one interactive session.
type sessionOptions struct {
	query  string
	client *pypi.Client
}

// runSession runs the search screen until the user quits or the command's
// context is cancelled.
func runSession(cmd *cobra.Command, opts sessionOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	hooks := &logHooks{logger: logger}
	observability.SetSearchHooks(hooks)
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	logger.Debug("starting session", "index", opts.client.Origin(), "query", opts.query)
	prog := newProgress(logger)

	model := tui.New(ctx, tui.Options{
		Searcher:     opts.client,
		Opener:       browser.New(),
		Logger:       logger,
		InitialQuery: opts.query,
	})

	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	prog.done("Session ended")
	return nil
}
