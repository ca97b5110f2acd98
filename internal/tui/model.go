// Package tui implements the interactive search screen.
//
// The screen is a bubbletea program with three parts stacked vertically: a
// single-line query input, a results table and a key help footer. Searches
// run as commands off the event loop and report back with their
// [search.Ticket]; the [search.Controller] decides whether a result is still
// current before it reaches the table.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/pypisearch/internal/search"
	"github.com/matzehuels/pypisearch/pkg/errors"
	"github.com/matzehuels/pypisearch/pkg/integrations/pypi"
	"github.com/matzehuels/pypisearch/pkg/observability"
)

// ViewHeight is the number of terminal rows the screen occupies.
const ViewHeight = 13

// Rows used by everything but the table body: input, status line, table
// header with its border, and the help footer.
const chromeHeight = 5

// Searcher runs a package search.
type Searcher interface {
	Search(ctx context.Context, query string) ([]pypi.Package, error)
}

// Opener opens a URL in a browser.
type Opener interface {
	Open(ctx context.Context, url string) error
}

// Options configures a [Model].
type Options struct {
	Searcher     Searcher
	Opener       Opener
	Logger       *log.Logger // nil discards log output
	InitialQuery string      // submitted as soon as the program starts
}

// Model is the bubbletea model of the search screen.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc // cancels the in-flight search, if any

	searcher Searcher
	opener   Opener
	logger   *log.Logger

	ctrl    *search.Controller
	input   textinput.Model
	results resultsView
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	initialQuery string
}

// New creates the search screen. Searches derive their context from ctx, so
// cancelling ctx aborts any request still running.
func New(ctx context.Context, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	input := textinput.New()
	input.Placeholder = "Search PyPI"
	input.Prompt = "> "
	input.PromptStyle = stylePrompt
	input.CharLimit = errors.MaxQueryLength
	input.SetValue(strings.TrimSpace(opts.InitialQuery))
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleSpinner

	return Model{
		ctx:          ctx,
		searcher:     opts.Searcher,
		opener:       opts.Opener,
		logger:       logger,
		ctrl:         search.New(),
		input:        input,
		results:      newResultsView(defaultWidth, ViewHeight-chromeHeight),
		spinner:      sp,
		help:         help.New(),
		keys:         defaultKeyMap(),
		initialQuery: input.Value(),
	}
}

// Init starts the cursor blink and, when an initial query was given,
// submits it.
func (m Model) Init() tea.Cmd {
	if m.initialQuery == "" {
		return textinput.Blink
	}
	q := m.initialQuery
	return tea.Batch(textinput.Blink, func() tea.Msg { return submitMsg{query: q} })
}

// Update handles input, search completions and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.results.setWidth(msg.Width)
		m.input.Width = max(0, msg.Width-len(m.input.Prompt)-1)
		m.help.Width = msg.Width
		return m, nil

	case submitMsg:
		cmd := m.submit(msg.query)
		return m, cmd

	case searchDoneMsg:
		cmd := m.complete(msg)
		return m, cmd

	case openDoneMsg:
		if msg.err != nil {
			m.logger.Error("could not open browser", "url", msg.url, "err", msg.err)
		} else {
			m.logger.Debug("opened browser", "url", msg.url)
		}
		return m, nil

	case spinner.TickMsg:
		if m.ctrl.State() != search.Searching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stopSearch()
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextFocus), key.Matches(msg, m.keys.PrevFocus):
		cmd := m.toggleFocus()
		return m, cmd
	}

	if m.results.focused() {
		if key.Matches(msg, m.keys.Open) {
			cmd := m.openSelected()
			return m, cmd
		}
		var cmd tea.Cmd
		m.results, cmd = m.results.update(msg)
		return m, cmd
	}

	if key.Matches(msg, m.keys.Submit) {
		cmd := m.submit(m.input.Value())
		return m, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit hands q to the controller and, if accepted, cancels the previous
// search and starts a new one.
func (m *Model) submit(q string) tea.Cmd {
	ticket, ok := m.ctrl.Submit(q)
	if !ok {
		return nil
	}

	m.stopSearch()
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel

	m.results.clear()
	observability.Search().OnSearchStart(ctx, ticket.ID, ticket.Query)

	return tea.Batch(m.spinner.Tick, searchCmd(ctx, m.searcher, ticket))
}

// complete applies a finished search. Results of superseded searches are
// dropped by the controller.
func (m *Model) complete(msg searchDoneMsg) tea.Cmd {
	t := msg.ticket
	if !m.ctrl.Complete(t, msg.results, msg.err) {
		observability.Search().OnSearchStale(m.ctx, t.ID, t.Query)
		return nil
	}
	m.stopSearch()

	results := m.ctrl.Results()
	observability.Search().OnSearchComplete(m.ctx, t.ID, t.Query, len(results), msg.elapsed, m.ctrl.Err())

	switch {
	case m.ctrl.Failed():
		m.results.showMessage(failedMessage(t.Query, m.ctrl.Err()), true)
		return m.focusInput()
	case len(results) == 0:
		m.results.showMessage(noResultsMessage(t.Query), false)
		return m.focusInput()
	default:
		m.results.showResults(results)
		m.focusTable()
		return nil
	}
}

// openSelected resolves the table cursor against the displayed results.
func (m *Model) openSelected() tea.Cmd {
	url, err := m.ctrl.Select(m.results.cursor())
	if err != nil {
		m.logger.Debug("ignored selection", "err", err)
		return nil
	}
	return openCmd(m.ctx, m.opener, url)
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.results.focused() {
		return m.focusInput()
	}
	if m.results.focusable() {
		m.focusTable()
	}
	return nil
}

func (m *Model) focusInput() tea.Cmd {
	m.results.blur()
	return m.input.Focus()
}

func (m *Model) focusTable() {
	m.input.Blur()
	m.results.focus()
}

func (m *Model) stopSearch() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// View renders the screen.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.results.view())
	b.WriteString("\n")
	b.WriteString(m.help.View(focusKeys{keyMap: m.keys, tableFocused: m.results.focused()}))
	return b.String()
}

func (m Model) statusLine() string {
	switch m.ctrl.State() {
	case search.Searching:
		return m.spinner.View() + styleStatus.Render(" Searching for '"+m.ctrl.Query()+"'")
	case search.Displaying:
		if m.ctrl.Failed() {
			return styleError.Render("✗ search failed, press enter to try again")
		}
		n := len(m.ctrl.Results())
		if n == 1 {
			return styleStatus.Render("1 package")
		}
		return styleStatus.Render(fmt.Sprintf("%d packages", n))
	}
	return ""
}
