package pypi

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	pserrors "github.com/matzehuels/pypisearch/pkg/errors"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	return data
}

func TestParseSearchResults_Flask(t *testing.T) {
	pkgs, err := ParseSearchResults(readFixture(t, "search_flask.html"), DefaultOrigin)
	if err != nil {
		t.Fatalf("ParseSearchResults failed: %v", err)
	}

	want := []Package{
		{
			Name:        "Flask",
			Version:     "3.0.3",
			Description: "A simple framework for building complex web applications.",
			URL:         "https://pypi.org/project/Flask/",
		},
		{
			Name:        "Flask-Login",
			Version:     "0.6.3",
			Description: "User authentication and session management for Flask.",
			URL:         "https://pypi.org/project/Flask-Login/",
		},
		{
			Name:        "Flask-SQLAlchemy",
			Version:     "3.1.1",
			Description: "Add SQLAlchemy support to your Flask application.",
			URL:         "https://pypi.org/project/Flask-SQLAlchemy/",
		},
	}

	if len(pkgs) != len(want) {
		t.Fatalf("got %d packages, want %d", len(pkgs), len(want))
	}
	for i := range want {
		if pkgs[i] != want[i] {
			t.Errorf("package %d = %+v, want %+v", i, pkgs[i], want[i])
		}
	}
}

func TestParseSearchResults_NoSnippets(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{"no results page", readFixture(t, "search_empty.html")},
		{"empty body", nil},
		{"plain text", []byte("service unavailable")},
		{"truncated html", []byte("<html><body><ul><li><a class=")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkgs, err := ParseSearchResults(tt.body, DefaultOrigin)
			if err != nil {
				t.Fatalf("ParseSearchResults error = %v, want nil", err)
			}
			if len(pkgs) != 0 {
				t.Errorf("got %d packages, want 0", len(pkgs))
			}
		})
	}
}

func TestParseSearchResults_SkipsIncompleteSnippets(t *testing.T) {
	pkgs, err := ParseSearchResults(readFixture(t, "search_partial.html"), "https://mirror.example")
	if err != nil {
		t.Fatalf("ParseSearchResults failed: %v", err)
	}

	if len(pkgs) != 2 {
		t.Fatalf("got %d packages, want 2: %+v", len(pkgs), pkgs)
	}
	if pkgs[0].Name != "requests" || pkgs[0].URL != "https://mirror.example/project/requests/" {
		t.Errorf("first package = %+v", pkgs[0])
	}
	if pkgs[1].Name != "requests-mock" || pkgs[1].Description != "" {
		t.Errorf("second package = %+v, want requests-mock with empty description", pkgs[1])
	}
}

func TestParseSearchResults_AllMalformed(t *testing.T) {
	_, err := ParseSearchResults(readFixture(t, "search_malformed.html"), DefaultOrigin)
	if err == nil {
		t.Fatal("expected error when every snippet is unreadable")
	}
	if !pserrors.Is(err, pserrors.ErrCodeParse) {
		t.Errorf("error code = %v, want %v", pserrors.GetCode(err), pserrors.ErrCodeParse)
	}
	if !errors.Is(err, ErrMalformedSnippet) {
		t.Errorf("expected ErrMalformedSnippet in chain, got %v", err)
	}
}

func TestParseSearchResults_DocumentOrder(t *testing.T) {
	var b strings.Builder
	names := []string{"zeta", "alpha", "mu", "beta", "omega"}
	b.WriteString("<html><body>")
	for _, n := range names {
		b.WriteString(`<a class="package-snippet" href="/project/` + n + `/">`)
		b.WriteString(`<span class="package-snippet__name">` + n + `</span>`)
		b.WriteString(`<span class="package-snippet__version">1.0</span>`)
		b.WriteString(`<p class="package-snippet__description">` + n + ` package</p></a>`)
	}
	b.WriteString("</body></html>")

	pkgs, err := ParseSearchResults([]byte(b.String()), DefaultOrigin)
	if err != nil {
		t.Fatalf("ParseSearchResults failed: %v", err)
	}
	if len(pkgs) != len(names) {
		t.Fatalf("got %d packages, want %d", len(pkgs), len(names))
	}
	for i, n := range names {
		if pkgs[i].Name != n {
			t.Errorf("package %d = %q, want %q", i, pkgs[i].Name, n)
		}
		if want := DefaultOrigin + "/project/" + n + "/"; pkgs[i].URL != want {
			t.Errorf("package %d URL = %q, want %q", i, pkgs[i].URL, want)
		}
	}
}
