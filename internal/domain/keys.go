package domain

import "context"

type CtxKey string

const (
	KeyActor     CtxKey = "Actor"
	KeyRequestID CtxKey = "RequestID"
)

// SystemActor stamps records created outside an authenticated request.
const SystemActor = "system"

// Actor returns the acting user recorded in the request context, falling back
// to the system actor.
func Actor(ctx context.Context) string {
	if actor, ok := ctx.Value(KeyActor).(string); ok && actor != "" {
		return actor
	}
	return SystemActor
}

// WithActor records the acting user for audit stamping.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, KeyActor, actor)
}
