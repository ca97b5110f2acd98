package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/pypisearch/pkg/errors"
	"github.com/matzehuels/pypisearch/pkg/integrations/pypi"
)

const (
	defaultWidth   = 80
	minNameWidth   = 12
	versionWidth   = 12
	minDescription = 10

	// cellPadding is the horizontal padding styleCell adds to each column.
	cellPadding = 2
)

// resultsView renders the package table.
//
// It shows either one row per package under Name, Version and Description,
// or a single header-only column carrying a message (no results, failure).
// In message mode the table has no rows and cannot take focus.
type resultsView struct {
	table   table.Model
	width   int
	message string
	failed  bool
}

func newResultsView(width, height int) resultsView {
	if width <= 0 {
		width = defaultWidth
	}
	styles := table.DefaultStyles()
	styles.Header = styleHeader
	styles.Cell = styleCell
	styles.Selected = styleSelected

	v := resultsView{width: width}
	v.table = table.New(
		table.WithColumns(packageColumns(width)),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
		table.WithStyles(styles),
	)
	return v
}

// packageColumns sizes Name, Version and Description to fill width.
func packageColumns(width int) []table.Column {
	avail := width - 3*cellPadding
	name := max(minNameWidth, avail*3/10)
	desc := max(minDescription, avail-name-versionWidth)
	return []table.Column{
		{Title: "Name", Width: name},
		{Title: "Version", Width: versionWidth},
		{Title: "Description", Width: desc},
	}
}

// showResults replaces the rows with pkgs and moves the cursor to the top.
func (v *resultsView) showResults(pkgs []pypi.Package) {
	rows := make([]table.Row, len(pkgs))
	for i, p := range pkgs {
		rows[i] = table.Row{p.Name, p.Version, p.Description}
	}
	v.message = ""
	v.failed = false
	v.table.SetColumns(packageColumns(v.width))
	v.table.SetRows(rows)
	v.table.SetCursor(0)
}

// clear empties the table while keeping the package columns.
func (v *resultsView) clear() {
	v.showResults(nil)
	v.table.Blur()
}

// showMessage replaces the table with a single column titled msg.
func (v *resultsView) showMessage(msg string, failed bool) {
	v.message = msg
	v.failed = failed
	// Rows go first: the table renders every cell against the column list.
	v.table.SetRows(nil)
	v.table.SetColumns([]table.Column{{Title: msg, Width: max(len(msg), v.width-cellPadding)}})
	v.table.SetCursor(0)
	v.table.Blur()
}

func (v *resultsView) setWidth(width int) {
	if width <= 0 {
		return
	}
	v.width = width
	v.table.SetWidth(width)
	if v.message != "" {
		v.showMessage(v.message, v.failed)
		return
	}
	v.table.SetColumns(packageColumns(width))
}

// focusable reports whether the table has rows to navigate.
func (v resultsView) focusable() bool {
	return v.message == "" && len(v.table.Rows()) > 0
}

func (v *resultsView) focus() {
	if v.focusable() {
		v.table.Focus()
	}
}

func (v *resultsView) blur() { v.table.Blur() }

func (v resultsView) focused() bool { return v.table.Focused() }

func (v resultsView) cursor() int { return v.table.Cursor() }

func (v resultsView) update(msg tea.Msg) (resultsView, tea.Cmd) {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

func (v resultsView) view() string {
	return v.table.View()
}

func noResultsMessage(query string) string {
	return fmt.Sprintf("There were no results for '%s'", query)
}

func failedMessage(query string, err error) string {
	return fmt.Sprintf("Search for '%s' failed: %s", query, errors.UserMessage(err))
}
