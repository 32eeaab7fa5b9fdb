package payment

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"

	"github.com/nguyentuanlin/PROJECTMOBILE/internal/money"
)

// AttestationAuthorizer verifies the HS256 token the device signs after a
// successful biometric prompt. The token binds the exact amount being
// charged, so a stale attestation cannot authorize a different total.
type AttestationAuthorizer struct {
	secret []byte
}

func NewAttestationAuthorizer(secret string) *AttestationAuthorizer {
	return &AttestationAuthorizer{secret: []byte(secret)}
}

func (a *AttestationAuthorizer) Authorize(ctx context.Context, amount decimal.Decimal) (bool, error) {
	if err := ctx.Err(); err != nil {
		// Cancelled or timed out while waiting: treated as failure upstream.
		return false, err
	}

	tokenString := AttestationFromContext(ctx)
	if tokenString == "" {
		return false, nil
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return false, nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false, nil
	}

	claimedAmount, _ := claims["amount"].(string)
	return claimedAmount == money.Format(amount), nil
}

// SignAttestation produces the token a device would send; used by tests
// and the simulator client.
func SignAttestation(secret string, amount decimal.Decimal) (string, error) {
	claims := jwt.MapClaims{
		"amount": money.Format(amount),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
