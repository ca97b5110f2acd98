package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/pypisearch/internal/search"
	"github.com/matzehuels/pypisearch/pkg/integrations/pypi"
)

// submitMsg asks the model to submit query as if typed.
type submitMsg struct {
	query string
}

// searchDoneMsg carries the outcome of one search back to the event loop.
type searchDoneMsg struct {
	ticket  search.Ticket
	results []pypi.Package
	err     error
	elapsed time.Duration
}

// openDoneMsg reports the outcome of a browser launch.
type openDoneMsg struct {
	url string
	err error
}

// searchCmd fetches and parses the results for t off the event loop.
func searchCmd(ctx context.Context, s Searcher, t search.Ticket) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		results, err := s.Search(ctx, t.Query)
		return searchDoneMsg{
			ticket:  t,
			results: results,
			err:     err,
			elapsed: time.Since(start),
		}
	}
}

// openCmd launches the browser for url without blocking the event loop.
func openCmd(ctx context.Context, o Opener, url string) tea.Cmd {
	return func() tea.Msg {
		return openDoneMsg{url: url, err: o.Open(ctx, url)}
	}
}
