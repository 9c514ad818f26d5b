package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	SetSigningKey("test-key")

	token, err := GenerateJWT("user-42", time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != "user-42" || claims.Issuer != issuer {
		t.Errorf("claims = %+v", claims)
	}
}

func TestValidateJWTExpired(t *testing.T) {
	SetSigningKey("test-key")

	token, err := GenerateJWT("user-42", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ValidateJWT(token); err == nil || !strings.Contains(err.Error(), "expired") {
		t.Errorf("err = %v; want expiry error", err)
	}
}

func TestValidateJWTWrongKey(t *testing.T) {
	SetSigningKey("key-a")
	token, err := GenerateJWT("user-42", time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	SetSigningKey("key-b")
	if _, err := ValidateJWT(token); err == nil || !strings.Contains(err.Error(), "signature") {
		t.Errorf("err = %v; want signature error", err)
	}
}

func TestValidateJWTRejectsNoneAndMissingUser(t *testing.T) {
	SetSigningKey("test-key")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "x"})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ValidateJWT(raw); err == nil {
		t.Error("unsigned token was accepted")
	}

	anon := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Minute).Unix()},
	})
	raw, err = anon.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ValidateJWT(raw); err == nil {
		t.Error("token without userID was accepted")
	}
}

func TestValidateJWTWithoutKey(t *testing.T) {
	SetSigningKey("")
	if _, err := ValidateJWT("anything"); err == nil {
		t.Error("expected an error when no key is configured")
	}
	if _, err := GenerateJWT("u", time.Minute); err == nil {
		t.Error("expected an error when no key is configured")
	}
}
