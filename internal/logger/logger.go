package logger

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

type ctxKey string

const generationIDKey ctxKey = "generationID"

// New builds a logger writing to w.
func New(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel(), AddSource: cfg.AddSource}
	var h slog.Handler
	if cfg.IsJSON() {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With(cfg.baseAttrs()...)
}

// Init builds a logger and installs it as the slog default.
func Init(cfg Config, w io.Writer) *slog.Logger {
	l := New(cfg, w)
	slog.SetDefault(l)
	return l
}

// NewGenerationID creates an identifier for one generation or simulation.
func NewGenerationID() string {
	return uuid.NewString()
}

// WithGenerationID returns a context carrying the generation ID.
func WithGenerationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, generationIDKey, id)
}

// GenerationIDFromContext extracts the generation ID, if present.
func GenerationIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(generationIDKey).(string)
	return id, ok && id != ""
}

// FromContext returns the default logger with generation_id attached when
// the context carries one.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := GenerationIDFromContext(ctx); ok {
		return slog.Default().With("generation_id", id)
	}
	return slog.Default()
}
