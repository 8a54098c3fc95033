package logincode

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

var ErrTokenNotValid = errors.New("the token is not valid")

// TokenIssuer mints the credential handed out when an attempt is allowed,
// and validates credentials presented later. The decision to issue is the
// protocol's; the shape of the token is the issuer's.
type TokenIssuer interface {
	// Issue returns a token asserting that the named user authenticated.
	Issue(ctx context.Context, username string) (string, error)
	// Validate returns the username a valid token was issued to.
	Validate(ctx context.Context, token string) (string, error)
}

// HMACIssuer issues HS256-signed JWTs with a fixed lifetime.
type HMACIssuer struct {
	key []byte
	ttl time.Duration
}

// NewHMACIssuer returns an issuer signing with the given key. Tokens expire
// after `ttl`.
func NewHMACIssuer(key []byte, ttl time.Duration) *HMACIssuer {
	return &HMACIssuer{key: key, ttl: ttl}
}

func (i *HMACIssuer) Issue(ctx context.Context, username string) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(i.ttl).Unix(),
	})
	return tok.SignedString(i.key)
}

func (i *HMACIssuer) Validate(ctx context.Context, token string) (string, error) {
	tok, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.key, nil
	})
	if err != nil || !tok.Valid {
		return "", ErrTokenNotValid
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenNotValid
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrTokenNotValid
	}
	return sub, nil
}
