// Package correlation plumbs a per-job correlation identifier through
// context.Context so every log line and metric emitted while processing a
// job can be traced back to the message that triggered it.
package correlation

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

// HeaderName is the HTTP header carrying the correlation identifier.
const HeaderName = "X-Correlation-ID"

// WithID returns a context carrying the given correlation identifier.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the correlation identifier bound to ctx, or "" when
// none is set.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}

// Ensure returns ctx with a correlation identifier bound, generating a new
// one when ctx carries none, along with the identifier in effect.
func Ensure(ctx context.Context) (context.Context, string) {
	if id := FromContext(ctx); id != "" {
		return ctx, id
	}
	id := NewID()
	return WithID(ctx, id), id
}

// NewID generates a fresh correlation identifier.
func NewID() string {
	return uuid.New().String()
}
