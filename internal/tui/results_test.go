package tui

import (
	"errors"
	"strings"
	"testing"

	pserrors "github.com/matzehuels/pypisearch/pkg/errors"
)

func TestPackageColumns(t *testing.T) {
	tests := []struct {
		width int
	}{
		{80}, {120}, {200},
	}
	for _, tt := range tests {
		cols := packageColumns(tt.width)
		if len(cols) != 3 {
			t.Fatalf("got %d columns, want 3", len(cols))
		}
		if cols[0].Title != "Name" || cols[1].Title != "Version" || cols[2].Title != "Description" {
			t.Errorf("titles = %q, %q, %q", cols[0].Title, cols[1].Title, cols[2].Title)
		}
		total := 0
		for _, c := range cols {
			total += c.Width + cellPadding
		}
		if total != tt.width {
			t.Errorf("width %d: columns span %d", tt.width, total)
		}
	}
}

func TestPackageColumns_Narrow(t *testing.T) {
	cols := packageColumns(20)
	if cols[0].Width < minNameWidth || cols[2].Width < minDescription {
		t.Errorf("columns below minimum: %+v", cols)
	}
}

func TestResultsView_SwitchModes(t *testing.T) {
	v := newResultsView(80, 8)

	v.showResults(flaskResults)
	if !v.focusable() {
		t.Error("table with rows should be focusable")
	}

	v.showMessage(noResultsMessage("flask"), false)
	if v.focusable() {
		t.Error("message table should not be focusable")
	}
	if len(v.table.Rows()) != 0 {
		t.Errorf("message mode kept %d rows", len(v.table.Rows()))
	}
	if !strings.Contains(v.view(), "There were no results for 'flask'") {
		t.Errorf("view = %q", v.view())
	}

	v.showResults(flaskResults[:2])
	if v.message != "" {
		t.Errorf("message = %q after results", v.message)
	}
	if len(v.table.Rows()) != 2 || v.cursor() != 0 {
		t.Errorf("rows = %d cursor = %d", len(v.table.Rows()), v.cursor())
	}
}

func TestResultsView_FocusRequiresRows(t *testing.T) {
	v := newResultsView(80, 8)
	v.focus()
	if v.focused() {
		t.Error("empty table took focus")
	}

	v.showResults(flaskResults)
	v.focus()
	if !v.focused() {
		t.Error("table with rows did not take focus")
	}

	v.clear()
	if v.focused() || len(v.table.Rows()) != 0 {
		t.Error("clear should drop rows and focus")
	}
}

func TestResultsView_ResizeKeepsMessage(t *testing.T) {
	v := newResultsView(80, 8)
	v.showMessage(noResultsMessage("zzzz"), false)
	v.setWidth(140)

	if v.message != noResultsMessage("zzzz") {
		t.Errorf("message = %q after resize", v.message)
	}
	if v.width != 140 {
		t.Errorf("width = %d", v.width)
	}

	v.setWidth(0)
	if v.width != 140 {
		t.Error("zero width should be ignored")
	}
}

func TestMessages(t *testing.T) {
	if got := noResultsMessage("zzzznonexistentpkg"); got != "There were no results for 'zzzznonexistentpkg'" {
		t.Errorf("noResultsMessage = %q", got)
	}

	coded := pserrors.New(pserrors.ErrCodeTimeout, "pypi.org timed out")
	if got := failedMessage("flask", coded); got != "Search for 'flask' failed: pypi.org timed out" {
		t.Errorf("failedMessage = %q", got)
	}

	plain := errors.New("boom")
	if got := failedMessage("flask", plain); got != "Search for 'flask' failed: boom" {
		t.Errorf("failedMessage = %q", got)
	}
}
