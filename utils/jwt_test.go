package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := CreateToken("test-secret", "64f1c0ffee0000000000abcd")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	userId, err := ParseToken("test-secret", token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if userId != "64f1c0ffee0000000000abcd" {
		t.Errorf("got user id %q, want %q", userId, "64f1c0ffee0000000000abcd")
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := CreateToken("test-secret", "user-1")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	if _, err := ParseToken("other-secret", token); err == nil {
		t.Error("token signed with a different secret was accepted")
	}
}

func TestTokenExpired(t *testing.T) {
	claims := jwt.MapClaims{
		"id":  "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing: %v", err)
	}

	if _, err := ParseToken("test-secret", expired); err == nil {
		t.Error("expired token was accepted")
	}
}

func TestTokenGarbage(t *testing.T) {
	if _, err := ParseToken("test-secret", "not.a.token"); err == nil {
		t.Error("garbage token was accepted")
	}
}

func TestTokenMissingIdClaim(t *testing.T) {
	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing: %v", err)
	}

	if _, err := ParseToken("test-secret", token); err == nil {
		t.Error("token without an id claim was accepted")
	}
}
