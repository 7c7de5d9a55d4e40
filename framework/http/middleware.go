package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/brendanbates89/dot/framework/container"
)

type scopeCtxKey struct{}

// RequestInfo describes the HTTP request a scope was opened for. The
// middleware registers one in every request scope, so handlers and the
// services below them can resolve it like any other service.
type RequestInfo struct {
	ID     string
	Method string
	Path   string
}

// ScopeMiddleware opens a child scope of root for each request, registers
// a *RequestInfo in it, and stores the scope on the request context.
// Handlers resolve per-request services through ScopeFrom; registrations
// made in one request's scope are invisible to every other request, while
// everything on root stays visible through the chain.
func ScopeMiddleware(root *container.Container) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scope := root.Scope()
			info := &RequestInfo{
				ID:     uuid.NewString(),
				Method: r.Method,
				Path:   r.URL.Path,
			}
			if err := container.Register(scope, info); err != nil {
				NewResponse(w).Error(http.StatusInternalServerError, err.Error())
				return
			}

			ctx := WithScope(r.Context(), scope)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithScope returns ctx carrying c as the request scope.
func WithScope(ctx context.Context, c *container.Container) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, c)
}

// ScopeFrom returns the request scope from ctx, or fallback when no
// middleware put one there.
func ScopeFrom(ctx context.Context, fallback *container.Container) *container.Container {
	if c, ok := ctx.Value(scopeCtxKey{}).(*container.Container); ok {
		return c
	}
	return fallback
}
