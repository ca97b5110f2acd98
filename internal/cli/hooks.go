package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks forwards observability events to the session logger.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnSearchStart(_ context.Context, id, query string) {
	h.logger.Debug("search started", "id", id, "query", query)
}

func (h *logHooks) OnSearchComplete(_ context.Context, id, query string, resultCount int, duration time.Duration, err error) {
	elapsed := duration.Round(time.Millisecond)
	if err != nil {
		h.logger.Warn("search failed", "id", id, "query", query, "elapsed", elapsed, "err", err)
		return
	}
	h.logger.Infof("Found %d packages for %q (%s)", resultCount, query, elapsed)
}

func (h *logHooks) OnSearchStale(_ context.Context, id, query string) {
	h.logger.Debug("search superseded", "id", id, "query", query)
}

func (h *logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, method, host, path string, statusCode int, duration time.Duration) {
	h.logger.Debug("http response", "method", method, "host", host, "path", path,
		"status", statusCode, "elapsed", duration.Round(time.Millisecond))
}

func (h *logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Warn("http error", "method", method, "host", host, "path", path, "err", err)
}
