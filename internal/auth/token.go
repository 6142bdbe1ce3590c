// Package auth provides bearer-token authentication for the printer portal API.
// Tokens are signed, time-limited JWTs whose subject is the owner's email.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set carried by access tokens. The subject is the
// authenticated owner's email, which every component uses as the ownership
// partition key.
type Claims struct {
	jwt.RegisteredClaims
}

// Tokens issues and verifies access tokens with a shared HMAC secret.
type Tokens struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokens creates a token issuer/verifier.
func NewTokens(secret, issuer string, ttl time.Duration) *Tokens {
	return &Tokens{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// Issue creates a signed access token for the given owner email.
func (t *Tokens) Issue(email string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks the token's signature and expiry and returns the subject
// email. Any failure, including expiry, surfaces as ErrInvalidToken.
func (t *Tokens) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
