package slogx

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return l
}

// WithUser tags the request logger with the authenticated subject and role.
func WithUser(ctx context.Context, subject, role string) context.Context {
	l := FromContext(ctx)
	return WithContext(ctx, l.With("user_id", subject, "role", role))
}
