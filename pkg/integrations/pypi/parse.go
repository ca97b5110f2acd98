package pypi

import (
	"bytes"
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	pserrors "github.com/matzehuels/pypisearch/pkg/errors"
	"github.com/matzehuels/pypisearch/pkg/integrations"
)

// Selectors for the search page markup. These are an external contract with
// pypi.org and break if the page layout changes.
const (
	snippetSelector     = "a.package-snippet"
	nameSelector        = "span.package-snippet__name"
	versionSelector     = "span.package-snippet__version"
	descriptionSelector = "p.package-snippet__description"
)

// ErrMalformedSnippet reports a result snippet missing its href, name or version.
var ErrMalformedSnippet = errors.New("malformed package snippet")

// ParseSearchResults extracts packages from a search result page.
//
// Snippets are returned in document order, which is the index's relevance
// order. Each URL is origin joined with the snippet's href.
//
// Pages without snippets (including empty or non-HTML input) yield an empty
// slice and a nil error. Snippets missing href, name or version are skipped;
// a missing description leaves Description empty. If snippets were present
// but none could be read, a PARSE_ERROR wrapping [ErrMalformedSnippet] is
// returned so a markup change is not mistaken for "no results".
func ParseSearchResults(body []byte, origin string) ([]Package, error) {
	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, pserrors.Wrap(pserrors.ErrCodeParse, err, "could not read search results")
	}
	doc := goquery.NewDocumentFromNode(root)

	snippets := doc.Find(snippetSelector)
	packages := make([]Package, 0, snippets.Length())
	skipped := 0

	snippets.Each(func(_ int, s *goquery.Selection) {
		pkg, ok := parseSnippet(s, origin)
		if !ok {
			skipped++
			return
		}
		packages = append(packages, pkg)
	})

	if len(packages) == 0 && skipped > 0 {
		return nil, pserrors.Wrap(pserrors.ErrCodeParse, ErrMalformedSnippet,
			"search results page has an unexpected layout (%d unreadable results)", skipped)
	}
	return packages, nil
}

func parseSnippet(s *goquery.Selection, origin string) (Package, bool) {
	href, ok := s.Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return Package{}, false
	}
	name, ok := childText(s, nameSelector)
	if !ok || name == "" {
		return Package{}, false
	}
	version, ok := childText(s, versionSelector)
	if !ok {
		return Package{}, false
	}
	description, _ := childText(s, descriptionSelector)

	return Package{
		Name:        name,
		Version:     version,
		Description: description,
		URL:         integrations.JoinOrigin(origin, href),
	}, true
}

func childText(s *goquery.Selection, selector string) (string, bool) {
	node := s.Find(selector).First()
	if node.Length() == 0 {
		return "", false
	}
	return strings.Join(strings.Fields(node.Text()), " "), true
}
