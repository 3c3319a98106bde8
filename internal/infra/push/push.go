// Package push delivers reminder pushes to the user's devices. Delivery is
// best-effort: callers log failures and never let them affect notification
// or reminder state.
package push

import "context"

//go:generate mockgen -source=push.go -destination=mock.go -package=push

type Sender interface {
	SendPush(ctx context.Context, userID, title, body string, data map[string]string) error
}
