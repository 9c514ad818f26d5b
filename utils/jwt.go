package utils

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/golang-jwt/jwt"
)

const issuer = "property_valuation"

type Claims struct {
	UserID string `json:"userID"`
	jwt.StandardClaims
}

var jwtKey atomic.Pointer[[]byte]

// SetSigningKey installs the HS256 key shared with the identity provider.
func SetSigningKey(key string) {
	b := []byte(key)
	jwtKey.Store(&b)
}

func signingKey() ([]byte, error) {
	k := jwtKey.Load()
	if k == nil || len(*k) == 0 {
		return nil, errors.New("jwt signing key not configured")
	}
	return *k, nil
}

// GenerateJWT mints a token for userID. Production tokens come from the
// identity provider; this is used by tests and local tooling.
func GenerateJWT(userID string, ttl time.Duration) (string, error) {
	key, err := signingKey()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := &Claims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(ttl).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

func ValidateJWT(tokenStr string) (*Claims, error) {
	key, err := signingKey()
	if err != nil {
		return nil, err
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return key, nil
	})

	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) {
			switch {
			case ve.Errors&jwt.ValidationErrorExpired != 0:
				return nil, errors.New("token has expired")
			case ve.Errors&jwt.ValidationErrorSignatureInvalid != 0:
				return nil, errors.New("invalid token signature")
			}
		}
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.UserID == "" {
		return nil, errors.New("token has no userID claim")
	}

	return claims, nil
}
