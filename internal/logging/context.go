package logging

import "context"

type requestIDKey struct{}

// WithRequestID tags ctx so that every line logged with it carries
// request_id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func withContextFields(ctx context.Context, args []any) []any {
	if id := RequestIDFrom(ctx); id != "" {
		return append([]any{"request_id", id}, args...)
	}
	return args
}
