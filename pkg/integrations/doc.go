// Package integrations provides HTTP plumbing for package index clients.
//
// # Overview
//
// Index-specific clients live in subpackages:
//
//   - [pypi]: Python Package Index search page client and result parser
//
// # Shared Infrastructure
//
// The [Client] type issues GET requests with default headers and a bounded
// timeout, classifies failures as [ErrNetwork] and reports every request to
// the registered observability hooks. It never retries; a failure is
// returned to the caller as-is.
//
// # Helpers
//
//   - [NormalizeOrigin]: reduce a configured index URL to scheme://host
//   - [JoinOrigin]: resolve a relative href from page markup
//
// [pypi]: github.com/matzehuels/pypisearch/pkg/integrations/pypi
package integrations
