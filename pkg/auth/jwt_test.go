package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ovenfresh/cookieshop/config"
	"github.com/ovenfresh/cookieshop/pkg/auth"
)

const testSecret = "test-secret-do-not-use"

func withSecret(t *testing.T, secret string) {
	t.Helper()
	config.Set("JWT_SECRET", secret)
	t.Cleanup(func() { config.Set("JWT_SECRET", testSecret) })
}

func init() {
	config.Set("JWT_SECRET", testSecret)
}

func TestGenerateWithoutSecret(t *testing.T) {
	withSecret(t, "")

	if _, err := auth.GenerateAccessToken(1, true); !errors.Is(err, auth.ErrNoSecret) {
		t.Fatalf("expected ErrNoSecret, got %v", err)
	}
	if _, err := auth.GenerateRefreshToken(1, true); !errors.Is(err, auth.ErrNoSecret) {
		t.Fatalf("expected ErrNoSecret, got %v", err)
	}
}

func TestVerifyWithoutSecret(t *testing.T) {
	token, err := auth.GenerateAccessToken(7, true)
	if err != nil {
		t.Fatal(err)
	}

	withSecret(t, "")
	if claims := auth.VerifyToken(token); claims != nil {
		t.Fatal("expected nil claims when no secret is configured")
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := auth.GenerateAccessToken(42, true)
	if err != nil {
		t.Fatal(err)
	}

	claims := auth.VerifyToken(token)
	if claims == nil {
		t.Fatal("expected valid claims")
	}
	if claims.UserID != 42 {
		t.Errorf("userId = %d, want 42", claims.UserID)
	}
	if !claims.IsAdmin {
		t.Error("expected isAdmin to survive the round trip")
	}
}

func TestNonAdminFlagPreserved(t *testing.T) {
	token, err := auth.GenerateRefreshToken(5, false)
	if err != nil {
		t.Fatal(err)
	}

	claims := auth.VerifyToken(token)
	if claims == nil {
		t.Fatal("expected valid claims")
	}
	if claims.IsAdmin {
		t.Error("token issued with isAdmin=false verified as admin")
	}
}

func TestVerifyGarbage(t *testing.T) {
	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if claims := auth.VerifyToken(token); claims != nil {
			t.Errorf("VerifyToken(%q) = %+v, want nil", token, claims)
		}
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	other := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		UserID:  1,
		IsAdmin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := other.SignedString([]byte("some-other-secret"))
	if err != nil {
		t.Fatal(err)
	}

	if claims := auth.VerifyToken(signed); claims != nil {
		t.Fatal("token signed with a different secret must not verify")
	}
}

func TestVerifyExpired(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		UserID:  1,
		IsAdmin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatal(err)
	}

	if claims := auth.VerifyToken(signed); claims != nil {
		t.Fatal("expired token must not verify")
	}
}

func TestVerifyRejectsUnsignedAlg(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, auth.Claims{
		UserID:  1,
		IsAdmin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}

	if claims := auth.VerifyToken(signed); claims != nil {
		t.Fatal("alg=none token must not verify")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := auth.HashPassword("amir1382")
	if err != nil {
		t.Fatal(err)
	}
	if !auth.CheckPassword(hash, "amir1382") {
		t.Error("correct password rejected")
	}
	if auth.CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}
