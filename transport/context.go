package transport

import "context"

type (
	contextKey string
)

const (
	ContextKeepSessionKey contextKey = "keepSession"
)

// WithKeepSession marks requests whose 401 means bad input (e.g. wrong login
// credentials) rather than an expired session; the response is returned as is.
func WithKeepSession(ctx context.Context) context.Context {
	return context.WithValue(ctx, ContextKeepSessionKey, true)
}

func expiresSession(ctx context.Context) bool {
	if v := ctx.Value(ContextKeepSessionKey); v != nil {
		if keep, ok := v.(bool); ok {
			return !keep
		}
	}
	return true
}
