// Package anggota manages the member roster and officer-created login
// accounts for members.
package anggota

import (
	"regexp"
	"strings"
	"time"

	"klubkas/models"
	"klubkas/pkg/apperr"
	"klubkas/pkg/auth"

	"github.com/google/uuid"
)

var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const defaultIuran = 100000

// Store is the slice of the record store the roster needs.
type Store interface {
	// ListMembers returns all members ordered by name ascending.
	ListMembers() ([]models.Member, error)
	// GetMember returns nil when the id is unknown.
	GetMember(id string) (*models.Member, error)
	// FindMemberByEmail returns nil when no member other than excludeID has
	// the email. excludeID may be empty.
	FindMemberByEmail(email, excludeID string) (*models.Member, error)
	CreateMember(m *models.Member) error
	UpdateMember(m *models.Member) error
	// FindUserByEmail returns nil when no login identity has the email.
	FindUserByEmail(email string) (*models.User, error)
	// CreateMemberAccount atomically creates the user with its role record
	// and links the member to it.
	CreateMemberAccount(m *models.Member, u *models.User, r *models.Role) error
}

// MemberData is the roster row shape.
type MemberData struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	StatusKeanggotaan string    `json:"statusKeanggotaan"`
	DefaultIuran      int64     `json:"defaultIuran"`
	JoinedAt          time.Time `json:"joinedAt"`
	HasAccount        bool      `json:"hasAccount"`
}

type CreateInput struct {
	Name              string
	Email             string
	DefaultIuran      int64
	StatusKeanggotaan string
}

type UpdateInput struct {
	Name              *string
	Email             *string
	DefaultIuran      *int64
	StatusKeanggotaan *string
}

type Option func(*Service)

func WithNow(fn func() time.Time) Option {
	return func(s *Service) { s.now = fn }
}

func WithInvalidate(fn func(view string)) Option {
	return func(s *Service) { s.invalidate = fn }
}

type Service struct {
	store      Store
	now        func() time.Time
	invalidate func(view string)
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{store: store, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) signalStale() {
	if s.invalidate != nil {
		s.invalidate("anggota")
	}
}

// List returns the roster, officer only.
func (s *Service) List(actor auth.AuthUser) ([]MemberData, error) {
	if err := auth.RequireOfficer(actor, "Hanya pengurus yang dapat melihat daftar anggota"); err != nil {
		return nil, err
	}
	members, err := s.store.ListMembers()
	if err != nil {
		return nil, apperr.Classify(err, "Terjadi kesalahan saat mengambil daftar anggota")
	}
	out := make([]MemberData, 0, len(members))
	for _, m := range members {
		out = append(out, toMemberData(&m))
	}
	return out, nil
}

// Create adds a roster entry, officer only. Duplicate emails are a Conflict,
// never a second row.
func (s *Service) Create(actor auth.AuthUser, in CreateInput) (*MemberData, error) {
	if err := auth.RequireOfficer(actor, "Hanya pengurus yang dapat menambah anggota"); err != nil {
		return nil, err
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" || in.Email == "" {
		return nil, apperr.New(apperr.Validation, "Nama dan email wajib diisi")
	}
	if !emailRE.MatchString(in.Email) {
		return nil, apperr.NewField("email", "Format email tidak valid")
	}
	if in.StatusKeanggotaan == "" {
		in.StatusKeanggotaan = "aktif"
	}
	if in.StatusKeanggotaan != "aktif" && in.StatusKeanggotaan != "non-aktif" {
		return nil, apperr.NewField("statusKeanggotaan", "Status keanggotaan tidak valid")
	}
	if in.DefaultIuran == 0 {
		in.DefaultIuran = defaultIuran
	}
	existing, err := s.store.FindMemberByEmail(in.Email, "")
	if err != nil {
		return nil, apperr.Classify(err, "Terjadi kesalahan saat menambah anggota")
	}
	if existing != nil {
		return nil, apperr.New(apperr.Conflict, "Email sudah terdaftar")
	}
	email := in.Email
	m := &models.Member{
		ID:                uuid.NewString(),
		Name:              in.Name,
		Email:             &email,
		StatusKeanggotaan: in.StatusKeanggotaan,
		DefaultIuran:      in.DefaultIuran,
		JoinedAt:          s.now(),
	}
	if err := s.store.CreateMember(m); err != nil {
		return nil, apperr.Classify(err, "Terjadi kesalahan saat menambah anggota")
	}
	s.signalStale()
	d := toMemberData(m)
	return &d, nil
}

// Update applies a partial edit, officer only.
func (s *Service) Update(actor auth.AuthUser, id string, in UpdateInput) (*MemberData, error) {
	if err := auth.RequireOfficer(actor, "Hanya pengurus yang dapat mengubah anggota"); err != nil {
		return nil, err
	}
	m, err := s.store.GetMember(id)
	if err != nil {
		return nil, apperr.Classify(err, "Terjadi kesalahan saat mengubah anggota")
	}
	if m == nil {
		return nil, apperr.New(apperr.NotFound, "Anggota tidak ditemukan")
	}
	if in.Email != nil && strings.TrimSpace(*in.Email) != "" {
		email := strings.TrimSpace(*in.Email)
		if !emailRE.MatchString(email) {
			return nil, apperr.NewField("email", "Format email tidak valid")
		}
		other, err := s.store.FindMemberByEmail(email, id)
		if err != nil {
			return nil, apperr.Classify(err, "Terjadi kesalahan saat mengubah anggota")
		}
		if other != nil {
			return nil, apperr.New(apperr.Conflict, "Email sudah terdaftar oleh anggota lain")
		}
		m.Email = &email
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		m.Name = strings.TrimSpace(*in.Name)
	}
	if in.DefaultIuran != nil {
		m.DefaultIuran = *in.DefaultIuran
	}
	if in.StatusKeanggotaan != nil && *in.StatusKeanggotaan != "" {
		if *in.StatusKeanggotaan != "aktif" && *in.StatusKeanggotaan != "non-aktif" {
			return nil, apperr.NewField("statusKeanggotaan", "Status keanggotaan tidak valid")
		}
		m.StatusKeanggotaan = *in.StatusKeanggotaan
	}
	if err := s.store.UpdateMember(m); err != nil {
		return nil, apperr.Classify(err, "Terjadi kesalahan saat mengubah anggota")
	}
	s.signalStale()
	d := toMemberData(m)
	return &d, nil
}

// CreateAccount creates a login identity for a member and links it, officer
// only. The new user gets an anggota role record; linking happens once.
func (s *Service) CreateAccount(actor auth.AuthUser, memberID, password string) (string, error) {
	if err := auth.RequireOfficer(actor, "Hanya pengurus yang dapat membuat akun"); err != nil {
		return "", err
	}
	if len(password) < 6 {
		return "", apperr.NewField("password", "Password minimal 6 karakter")
	}
	m, err := s.store.GetMember(memberID)
	if err != nil {
		return "", apperr.Classify(err, "Terjadi kesalahan saat membuat akun")
	}
	if m == nil {
		return "", apperr.New(apperr.NotFound, "Anggota tidak ditemukan")
	}
	if m.Email == nil || *m.Email == "" {
		return "", apperr.New(apperr.Validation, "Anggota harus memiliki email untuk membuat akun")
	}
	if m.UserID != nil {
		return "", apperr.New(apperr.Conflict, "Anggota sudah memiliki akun")
	}
	existing, err := s.store.FindUserByEmail(*m.Email)
	if err != nil {
		return "", apperr.Classify(err, "Terjadi kesalahan saat membuat akun")
	}
	if existing != nil {
		return "", apperr.New(apperr.Conflict, "Akun dengan email ini sudah ada")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", apperr.Wrap(err, "Terjadi kesalahan saat membuat akun")
	}
	u := &models.User{
		ID:       uuid.NewString(),
		Email:    *m.Email,
		Name:     m.Name,
		Password: hash,
	}
	r := &models.Role{
		ID:       uuid.NewString(),
		UserID:   u.ID,
		RoleName: string(auth.RoleAnggota),
	}
	if err := s.store.CreateMemberAccount(m, u, r); err != nil {
		return "", apperr.Classify(err, "Terjadi kesalahan saat membuat akun")
	}
	s.signalStale()
	return u.ID, nil
}

func toMemberData(m *models.Member) MemberData {
	email := ""
	if m.Email != nil {
		email = *m.Email
	}
	return MemberData{
		ID:                m.ID,
		Name:              m.Name,
		Email:             email,
		StatusKeanggotaan: m.StatusKeanggotaan,
		DefaultIuran:      m.DefaultIuran,
		JoinedAt:          m.JoinedAt,
		HasAccount:        m.UserID != nil,
	}
}
