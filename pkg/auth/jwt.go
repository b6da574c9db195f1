// Package auth issues and verifies the two JWT credentials used by the
// admin back-office: a 15-minute access token carried as a bearer header
// and a 30-day refresh token carried as a cookie.
//
// Tokens are stateless and self-contained. There is no server-side record
// of issued tokens, so a single token cannot be revoked before its expiry;
// invalidation happens only by expiry or by the client discarding it.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ovenfresh/cookieshop/config"
)

const (
	// AccessTokenTTL bounds how long a bearer credential stays usable.
	AccessTokenTTL = 15 * time.Minute
	// RefreshTokenTTL matches the refresh cookie max-age.
	RefreshTokenTTL = 30 * 24 * time.Hour
)

// ErrNoSecret is returned by the Generate functions when JWT_SECRET is unset.
var ErrNoSecret = errors.New("auth: JWT_SECRET not set")

// Claims is the signed payload shared by access and refresh tokens.
type Claims struct {
	UserID  uint `json:"userId"`
	IsAdmin bool `json:"isAdmin"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(config.JWTSecret())
}

// GenerateAccessToken signs a short-lived bearer token for API calls.
func GenerateAccessToken(userID uint, isAdmin bool) (string, error) {
	return generate(userID, isAdmin, AccessTokenTTL)
}

// GenerateRefreshToken signs the long-lived token used to mint new access
// tokens. Issuing one with isAdmin=false produces a token that verification
// treats as non-admin.
func GenerateRefreshToken(userID uint, isAdmin bool) (string, error) {
	return generate(userID, isAdmin, RefreshTokenTTL)
}

func generate(userID uint, isAdmin bool, ttl time.Duration) (string, error) {
	s := secret()
	if len(s) == 0 {
		return "", ErrNoSecret
	}

	claims := Claims{
		UserID:  userID,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s)
}

// VerifyToken validates signature and expiry and returns the claims, or nil
// on any failure (expired, malformed, bad signature). Callers must treat a
// nil result as "unauthenticated"; verification never returns an error.
func VerifyToken(token string) *Claims {
	s := secret()
	if len(s) == 0 {
		return nil
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		return s, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil
	}

	return claims
}

// HashPassword returns a bcrypt hash of the plain-text password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash against the plain-text candidate.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
