// Package auth resolves request credentials to an identity and owns the
// role-based authorization gate used by every domain operation.
package auth

import (
	"time"

	"klubkas/pkg/apperr"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the effective permission level, resolved once at login.
type Role string

const (
	RolePengurus Role = "pengurus"
	RoleAnggota  Role = "anggota"
)

// AuthUser is the resolved identity shape shared by every credential source.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// TokenTTL is the session length; the cookie max-age follows it.
const TokenTTL = 7 * 24 * time.Hour

// TokenCodec mints and verifies HS256 access tokens.
type TokenCodec struct {
	secret []byte
}

func NewTokenCodec(secret []byte) *TokenCodec {
	return &TokenCodec{secret: secret}
}

func (tc *TokenCodec) Mint(u AuthUser) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    u.ID,
		"email": u.Email,
		"name":  u.Name,
		"role":  string(u.Role),
		"exp":   time.Now().Add(TokenTTL).Unix(),
	})
	return token.SignedString(tc.secret)
}

// Verify decodes a token back into an AuthUser. Invalid, expired or foreign
// tokens simply fail resolution; they are never an internal error.
func (tc *TokenCodec) Verify(tokenString string) (AuthUser, bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrInvalidKeyType
		}
		return tc.secret, nil
	})
	if err != nil || !token.Valid {
		return AuthUser{}, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return AuthUser{}, false
	}
	id, _ := claims["id"].(string)
	if id == "" {
		return AuthUser{}, false
	}
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	roleName, _ := claims["role"].(string)
	role := RoleAnggota
	if roleName == string(RolePengurus) {
		role = RolePengurus
	}
	return AuthUser{ID: id, Email: email, Name: name, Role: role}, true
}

// RequireAuthenticated is the "any identity" gate.
func RequireAuthenticated(actor AuthUser) error {
	if actor.ID == "" {
		return apperr.New(apperr.Unauthorized, "Not authenticated")
	}
	return nil
}

// RequireOfficer is the officer-only gate. An absent identity is Unauthorized,
// a non-pengurus identity is Forbidden with the operation's own message; the
// two are never collapsed.
func RequireOfficer(actor AuthUser, message string) error {
	if err := RequireAuthenticated(actor); err != nil {
		return err
	}
	if actor.Role != RolePengurus {
		return apperr.New(apperr.Forbidden, message)
	}
	return nil
}
