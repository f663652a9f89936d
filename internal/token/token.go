package token

import "context"

// Provider supplies a currently valid bearer token, refreshing it internally
// when it is about to expire. Callers never inspect expiry themselves.
type Provider interface {
	Token(ctx context.Context) (string, error)
}
