package enginelog

import (
	"context"
	"log/slog"
)

// Handler wraps an slog.Handler, injecting the context's RunFields into
// every record before delegating.
type Handler struct {
	slog.Handler
}

// NewHandler wraps h.
func NewHandler(h slog.Handler) *Handler {
	return &Handler{Handler: h}
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	f := FromContext(ctx)
	if f.RunID != "" {
		r.AddAttrs(slog.String("run_id", f.RunID))
	}
	if f.Problem != "" {
		r.AddAttrs(slog.String("problem", f.Problem))
	}
	if f.Iteration != nil {
		r.AddAttrs(slog.Int("iteration", *f.Iteration))
	}
	if f.Component != "" {
		r.AddAttrs(slog.String("component", f.Component))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name)}
}

// Setup installs a text-handler-backed, field-injecting default logger at
// the given level. The engine runs as a CLI against one oracle instance per
// process, so there's no production/development split to branch on here.
func Setup(level slog.Level) {
	opts := &slog.HandlerOptions{Level: level}
	slog.SetDefault(slog.New(NewHandler(slog.NewTextHandler(defaultWriter(), opts))))
}
