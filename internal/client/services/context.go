package services

import "context"

type authKey struct{}

// WithAuth returns a context carrying svc for the handlers below it.
func WithAuth(ctx context.Context, svc AuthService) context.Context {
	return context.WithValue(ctx, authKey{}, svc)
}

// AuthFrom returns the AuthService installed by WithAuth. It panics with
// ErrNoAuthProvider when there is none.
func AuthFrom(ctx context.Context) AuthService {
	svc, ok := ctx.Value(authKey{}).(AuthService)
	if !ok || svc == nil {
		panic(ErrNoAuthProvider)
	}
	return svc
}
