// Package payment holds the external payment-authorization boundary. The
// actual biometric prompt lives on the device; the backend only verifies
// the attestation the device sends back.
package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// Authorizer confirms a payment for the given amount. A false result means
// the user failed or cancelled the check; an error means the check itself
// could not run. Checkout treats both as authorization failure.
type Authorizer interface {
	Authorize(ctx context.Context, amount decimal.Decimal) (bool, error)
}

// AuthorizerFunc adapts a plain function to the Authorizer interface.
type AuthorizerFunc func(ctx context.Context, amount decimal.Decimal) (bool, error)

func (f AuthorizerFunc) Authorize(ctx context.Context, amount decimal.Decimal) (bool, error) {
	return f(ctx, amount)
}

type attestationKey struct{}

// WithAttestation stores the device attestation token on the request
// context for the authorizer to pick up.
func WithAttestation(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, attestationKey{}, token)
}

// AttestationFromContext returns the token set by WithAttestation.
func AttestationFromContext(ctx context.Context) string {
	token, _ := ctx.Value(attestationKey{}).(string)
	return token
}
