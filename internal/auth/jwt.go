// README: Bearer token issuance and verification (HS256 JWT + session liveness).
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Castanheira1/leopardo-api/internal/types"
)

var ErrInvalidToken = errors.New("invalid token")

// Identity is the verified caller attached to each authenticated request.
type Identity struct {
	AccountID types.ID
	Admin     bool
}

type Claims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies bearer tokens. Every issued token carries a jti
// recorded in the session store; a password reset revokes all of an
// account's sessions, so stolen tokens die with the old credential.
type Issuer struct {
	secret   []byte
	ttl      time.Duration
	sessions SessionStore
}

func NewIssuer(secret string, ttl time.Duration, sessions SessionStore) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl, sessions: sessions}
}

func (i *Issuer) Issue(ctx context.Context, accountID types.ID, admin bool) (string, time.Time, error) {
	if accountID == "" {
		return "", time.Time{}, fmt.Errorf("subject is empty")
	}
	now := time.Now()
	expiresAt := now.Add(i.ttl)
	jti := uuid.NewString()

	c := Claims{
		Admin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(accountID),
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	if err := i.sessions.Add(ctx, accountID, jti, i.ttl); err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (i *Issuer) Verify(ctx context.Context, raw string) (Identity, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	accountID := types.ID(claims.Subject)
	live, err := i.sessions.IsLive(ctx, accountID, claims.ID)
	if err != nil {
		return Identity{}, err
	}
	if !live {
		return Identity{}, ErrInvalidToken
	}
	return Identity{AccountID: accountID, Admin: claims.Admin}, nil
}
