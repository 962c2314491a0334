// Package service holds the onboarding use cases. Each use case is a small
// struct over the ports it needs; all side effects (persistence,
// notification, events) happen here, never in the domain layer.
package service

import (
	"context"
	"log/slog"

	"helperhub/internal/helper/metrics"
)

// base carries the optional observability dependencies shared by every use
// case. Both are nil-safe.
type base struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures a use case.
type Option func(*base)

func WithLogger(logger *slog.Logger) Option {
	return func(b *base) {
		b.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(b *base) {
		b.metrics = m
	}
}

func (b *base) log(ctx context.Context, level slog.Level, msg string, args ...any) {
	if b.logger != nil {
		b.logger.Log(ctx, level, msg, args...)
	}
}
