// Package pypi searches the Python Package Index.
//
// # Overview
//
// PyPI has no JSON search API, so this package requests the HTML search page
// (https://pypi.org/search/?q=...) and scrapes the result snippets with
// goquery.
//
// # Usage
//
//	client, err := pypi.NewClient("")  // "" = https://pypi.org
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pkgs, err := client.Search(ctx, "flask")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range pkgs {
//	    fmt.Println(p.Name, p.Version, p.URL)
//	}
//
// [Client.FetchSearchPage] and [ParseSearchResults] are exposed separately so
// callers can parse fixture pages without a network.
//
// # Errors
//
// All errors are [github.com/matzehuels/pypisearch/pkg/errors.Error] values:
//
//   - INVALID_INPUT: empty, oversized or control-character queries
//   - NETWORK_ERROR / TIMEOUT: transport failures and non-2xx responses
//   - PARSE_ERROR: snippets present but none readable
//
// There are no retries and no caching.
package pypi
