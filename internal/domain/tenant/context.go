package tenant

import "context"

type userKey struct{}

// WithUser adjunta al contexto el id del usuario que origina la operación.
func WithUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userKey{}, userID)
}

// UserFrom id del usuario adjunto al contexto, o "" si no hay.
func UserFrom(ctx context.Context) string {
	if v, ok := ctx.Value(userKey{}).(string); ok {
		return v
	}
	return ""
}
