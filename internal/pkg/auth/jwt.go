// Package auth protects the mutating API routes with JSON Web Tokens issued to the
// session host. When no admin password is configured the protection is disabled.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"teenpatti_tracker/internal/pkg/security"
)

// TOKENEXP defines the token expiration duration.
const TOKENEXP = time.Hour * 12

const adminSubject = "admin"

var (
	// ErrAuthDisabled is returned by Login when no admin password is configured.
	ErrAuthDisabled = errors.New("auth: authentication is disabled")
	// ErrInvalidPassword is returned by Login for a wrong password.
	ErrInvalidPassword = errors.New("auth: incorrect password")
)

// Claims represents the JWT claims issued to the admin.
type Claims struct {
	jwt.RegisteredClaims
}

// Issuer creates and validates admin tokens.
type Issuer struct {
	passwordHash string
	secretKey    []byte
	now          func() time.Time
}

// NewIssuer hashes the admin password once at startup. An empty password
// yields a disabled Issuer that lets every request through.
func NewIssuer(adminPassword, secret string) (*Issuer, error) {
	issuer := &Issuer{secretKey: []byte(secret), now: time.Now}
	if adminPassword == "" {
		return issuer, nil
	}
	hash, err := security.HashPassword(adminPassword)
	if err != nil {
		return nil, err
	}
	issuer.passwordHash = hash
	return issuer, nil
}

// Enabled reports whether mutating routes require a token.
func (issuer *Issuer) Enabled() bool {
	return issuer != nil && issuer.passwordHash != ""
}

// Login checks the admin password and returns a signed token.
func (issuer *Issuer) Login(password string) (string, error) {
	if !issuer.Enabled() {
		return "", ErrAuthDisabled
	}
	if err := security.CheckPassword(issuer.passwordHash, password); err != nil {
		return "", ErrInvalidPassword
	}
	return issuer.GenerateToken()
}

// GenerateToken creates a new admin token that expires after TOKENEXP.
func (issuer *Issuer) GenerateToken() (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminSubject,
			IssuedAt:  jwt.NewNumericDate(issuer.now()),
			ExpiresAt: jwt.NewNumericDate(issuer.now().Add(TOKENEXP)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(issuer.secretKey)
}

// ParseToken validates the provided JWT token string and parses its claims.
func (issuer *Issuer) ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return issuer.secretKey, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid && claims.Subject == adminSubject {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
