package auth

import (
	"strings"

	"klubkas/models"
	"klubkas/pkg/apperr"

	"golang.org/x/crypto/bcrypt"
)

// UserStore is the slice of the record store the resolver needs.
type UserStore interface {
	// FindUserByEmail returns nil when no user has the email. The Role
	// relation is populated when a role record exists.
	FindUserByEmail(email string) (*models.User, error)
}

type Service struct {
	store UserStore
	codec *TokenCodec
}

func NewService(store UserStore, codec *TokenCodec) *Service {
	return &Service{store: store, codec: codec}
}

// Login verifies credentials and returns the resolved identity plus a signed
// token. Missing-field and wrong-credential failures are distinct kinds.
func (s *Service) Login(email, password string) (AuthUser, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return AuthUser{}, "", apperr.New(apperr.Validation, "Email dan password wajib diisi")
	}
	user, err := s.store.FindUserByEmail(email)
	if err != nil {
		return AuthUser{}, "", apperr.Wrap(err, "Terjadi kesalahan saat login")
	}
	if user == nil {
		return AuthUser{}, "", apperr.New(apperr.Unauthorized, "Email atau password salah")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return AuthUser{}, "", apperr.New(apperr.Unauthorized, "Email atau password salah")
	}
	u := AuthUser{ID: user.ID, Email: user.Email, Name: user.Name, Role: RoleFor(user)}
	token, err := s.codec.Mint(u)
	if err != nil {
		return AuthUser{}, "", apperr.Wrap(err, "Terjadi kesalahan saat login")
	}
	return u, token, nil
}

// RoleFor derives the effective role from the optional role record: only an
// explicit "pengurus" record grants officer rights, absence means anggota.
func RoleFor(user *models.User) Role {
	if user.Role != nil && user.Role.RoleName == string(RolePengurus) {
		return RolePengurus
	}
	return RoleAnggota
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
