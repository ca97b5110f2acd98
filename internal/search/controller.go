// Package search holds the session state of the search screen.
//
// A [Controller] is a small state machine with three states:
//
//	Idle --Submit(q)--> Searching(q) --Complete--> Displaying(q, results)
//	                         ^                            |
//	                         +---------Submit(q')---------+
//
// Every accepted submission bumps a generation counter and hands out a
// [Ticket]. Completion is only committed when the ticket carries the current
// generation, so a slow search can never overwrite the results of a newer one.
//
// A Controller is not safe for concurrent use. The TUI mutates it only from
// the bubbletea event loop; fetch and parse run elsewhere and report back
// with their ticket.
package search

import (
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/pypisearch/pkg/errors"
	"github.com/matzehuels/pypisearch/pkg/integrations/pypi"
)

// State is the controller's current phase.
type State int

const (
	// Idle means nothing has been submitted yet.
	Idle State = iota
	// Searching means a search for Query() is pending.
	Searching
	// Displaying means the latest search finished, successfully or not.
	Displaying
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Searching:
		return "searching"
	case Displaying:
		return "displaying"
	default:
		return "unknown"
	}
}

// Ticket identifies one accepted submission.
type Ticket struct {
	Generation uint64 // Monotonic counter; only the latest is committed
	Query      string // Trimmed query text
	ID         string // Random identifier for log correlation
}

// Controller owns the query, result list and staleness token of one session.
type Controller struct {
	state      State
	query      string
	results    []pypi.Package
	err        error
	generation uint64
}

// New returns a controller in the Idle state.
func New() *Controller {
	return &Controller{}
}

// Submit starts a new search for q.
//
// q is trimmed; an empty result is ignored and Submit returns false without
// touching any state. Otherwise the generation advances, previous results are
// cleared and the state becomes Searching. Any ticket handed out earlier is
// stale from this point on.
func (c *Controller) Submit(q string) (Ticket, bool) {
	q = strings.TrimSpace(q)
	if q == "" {
		return Ticket{}, false
	}

	c.generation++
	c.state = Searching
	c.query = q
	c.results = nil
	c.err = nil

	return Ticket{
		Generation: c.generation,
		Query:      q,
		ID:         uuid.NewString(),
	}, true
}

// Complete commits the outcome of the search identified by t.
//
// Returns false, leaving state untouched, when t is not the latest ticket.
// On success the state becomes Displaying with results; on failure it becomes
// Displaying with no results and err recorded.
func (c *Controller) Complete(t Ticket, results []pypi.Package, err error) bool {
	if t.Generation == 0 || t.Generation != c.generation || c.state != Searching {
		return false
	}

	c.state = Displaying
	c.err = err
	if err != nil {
		c.results = []pypi.Package{}
		return true
	}
	c.results = make([]pypi.Package, len(results))
	copy(c.results, results)
	return true
}

// Select resolves row i of the displayed results to its detail URL.
// It fails with INVALID_INPUT unless the controller is Displaying and i is
// in range.
func (c *Controller) Select(i int) (string, error) {
	if c.state != Displaying {
		return "", errors.New(errors.ErrCodeInvalidInput, "no results to select from (state %s)", c.state)
	}
	if i < 0 || i >= len(c.results) {
		return "", errors.New(errors.ErrCodeInvalidInput, "selection %d out of range [0,%d)", i, len(c.results))
	}
	return c.results[i].URL, nil
}

// State returns the current phase.
func (c *Controller) State() State { return c.state }

// Query returns the last accepted query, or "" before the first submission.
func (c *Controller) Query() string { return c.query }

// Results returns a copy of the displayed results.
func (c *Controller) Results() []pypi.Package {
	out := make([]pypi.Package, len(c.results))
	copy(out, c.results)
	return out
}

// Err returns the failure of the latest completed search, if any.
func (c *Controller) Err() error { return c.err }

// Generation returns the token of the latest accepted submission.
func (c *Controller) Generation() uint64 { return c.generation }

// Failed reports whether the latest completed search ended in an error.
func (c *Controller) Failed() bool { return c.state == Displaying && c.err != nil }

// Empty reports whether the latest search completed without error and
// without results.
func (c *Controller) Empty() bool {
	return c.state == Displaying && c.err == nil && len(c.results) == 0
}
