package push

import (
	"context"
	"log/slog"
)

// NoopSender logs instead of delivering; used when no broker is configured.
type NoopSender struct{}

func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

func (s *NoopSender) SendPush(ctx context.Context, userID, title, _ string, _ map[string]string) error {
	slog.DebugContext(ctx, "push delivery disabled, dropping push",
		slog.String("user_id", userID),
		slog.String("title", title),
	)
	return nil
}
