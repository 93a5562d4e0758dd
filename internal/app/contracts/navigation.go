package contracts

import "context"

// Navigator is notified when the backend rejects the session. Implementations
// must not block; the caller still receives the normalized error afterwards.
type Navigator interface {
	RedirectToLogin(ctx context.Context)
}

type NavigatorFunc func(ctx context.Context)

func (f NavigatorFunc) RedirectToLogin(ctx context.Context) {
	f(ctx)
}
