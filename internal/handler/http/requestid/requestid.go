// Package requestid assigns every HTTP request an id that follows it through
// logs and the X-Request-ID response header, so one user report can be
// matched to the exact log lines it produced.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// contextKey keeps the request id off the string-key namespace.
type contextKey string

const (
	// RequestIDKey stores the request id in a context.
	RequestIDKey contextKey = "request_id"
	// RequestIDHeader carries the id on the wire, inbound and outbound.
	RequestIDHeader = "X-Request-ID"
)

// maxInboundLength caps client-supplied ids. Anything longer is replaced
// rather than propagated into logs.
const maxInboundLength = 128

// FromContext returns the request id, or "" outside a request scope.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// WithRequestID stores the id in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// Middleware adopts a usable inbound X-Request-ID or mints a UUID, then
// echoes the id on the response and stores it in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > maxInboundLength {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
	})
}
