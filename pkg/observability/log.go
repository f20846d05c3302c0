package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements every hook interface by writing debug-level log lines.
// The CLI installs it when running with --verbose.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to l. A nil logger uses log.Default().
func NewLogHooks(l *log.Logger) *LogHooks {
	if l == nil {
		l = log.Default()
	}
	return &LogHooks{logger: l}
}

// Install registers h for all hook categories.
func (h *LogHooks) Install() {
	SetLookupHooks(h)
	SetStoreHooks(h)
	SetHTTPHooks(h)
}

func (h *LogHooks) OnSearchStart(_ context.Context, query string) {
	h.logger.Debug("search started", "query", query)
}

func (h *LogHooks) OnSearchComplete(_ context.Context, query string, count int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("search failed", "query", query, "duration", d, "err", err)
		return
	}
	h.logger.Debug("search complete", "query", query, "results", count, "duration", d)
}

func (h *LogHooks) OnDetailsStart(_ context.Context, ref string) {
	h.logger.Debug("details started", "ref", ref)
}

func (h *LogHooks) OnDetailsComplete(_ context.Context, ref string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("details failed", "ref", ref, "duration", d, "err", err)
		return
	}
	h.logger.Debug("details complete", "ref", ref, "duration", d)
}

func (h *LogHooks) OnSave(_ context.Context, backend, kind string, err error) {
	if err != nil {
		h.logger.Debug("store write failed", "backend", backend, "kind", kind, "err", err)
		return
	}
	h.logger.Debug("stored", "backend", backend, "kind", kind)
}

func (h *LogHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "host", host, "path", path, "status", status, "duration", d)
}

func (h *LogHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("http error", "method", method, "host", host, "path", path, "err", err)
}

var (
	_ LookupHooks = (*LogHooks)(nil)
	_ StoreHooks  = (*LogHooks)(nil)
	_ HTTPHooks   = (*LogHooks)(nil)
)
