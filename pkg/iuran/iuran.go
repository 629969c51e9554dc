// Package iuran tracks monthly dues per member. A missing (member, year,
// month) record always reads as belum; writes are composite-key upserts so
// the same key never yields two rows.
package iuran

import (
	"klubkas/models"
	"klubkas/pkg/apperr"
	"klubkas/pkg/auth"

	"github.com/google/uuid"
)

// Store is the slice of the record store the tracker needs.
type Store interface {
	// ListActiveMembers returns aktif members ordered by name ascending.
	ListActiveMembers() ([]models.Member, error)
	// GetMember returns nil when the id is unknown.
	GetMember(id string) (*models.Member, error)
	ListDues(year int) ([]models.DuesStatus, error)
	// UpsertDues inserts by (member, year, month) or, when the key exists,
	// updates status and updatedBy while keeping the stored nilaiIuran.
	UpsertDues(d *models.DuesStatus) error
}

// MonthStatus is one month's payment state.
type MonthStatus struct {
	Status     string `json:"status"`
	NilaiIuran int64  `json:"nilaiIuran"`
}

// MemberDues is one member's row for a year. Dues holds only months that are
// stored; FillMonths completes it.
type MemberDues struct {
	MemberID          string              `json:"memberId"`
	MemberName        string              `json:"memberName"`
	StatusKeanggotaan string              `json:"statusKeanggotaan"`
	DefaultIuran      int64               `json:"defaultIuran"`
	Dues              map[int]MonthStatus `json:"dues"`
}

// FillMonths merges the stored months with belum defaults so all 12 months
// are present. Pure; the absence-means-unpaid rule lives here.
func FillMonths(stored map[int]MonthStatus) map[int]MonthStatus {
	full := make(map[int]MonthStatus, 12)
	for m := 1; m <= 12; m++ {
		if v, ok := stored[m]; ok {
			full[m] = v
		} else {
			full[m] = MonthStatus{Status: models.IuranBelum, NilaiIuran: 0}
		}
	}
	return full
}

type Option func(*Service)

func WithInvalidate(fn func(view string)) Option {
	return func(s *Service) { s.invalidate = fn }
}

type Service struct {
	store      Store
	invalidate func(view string)
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetStatus returns the dues rows of all aktif members for a year, ordered by
// member name. Any authenticated caller may read.
func (s *Service) GetStatus(actor auth.AuthUser, year int) ([]MemberDues, error) {
	if err := auth.RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	members, err := s.store.ListActiveMembers()
	if err != nil {
		return nil, apperr.Classify(err, "Terjadi kesalahan saat mengambil data iuran")
	}
	dues, err := s.store.ListDues(year)
	if err != nil {
		return nil, apperr.Classify(err, "Terjadi kesalahan saat mengambil data iuran")
	}
	byMember := make(map[string]map[int]MonthStatus)
	for _, d := range dues {
		if byMember[d.MemberID] == nil {
			byMember[d.MemberID] = make(map[int]MonthStatus)
		}
		byMember[d.MemberID][d.Month] = MonthStatus{Status: d.Status, NilaiIuran: d.NilaiIuran}
	}
	out := make([]MemberDues, 0, len(members))
	for _, m := range members {
		row := MemberDues{
			MemberID:          m.ID,
			MemberName:        m.Name,
			StatusKeanggotaan: m.StatusKeanggotaan,
			DefaultIuran:      m.DefaultIuran,
			Dues:              byMember[m.ID],
		}
		if row.Dues == nil {
			row.Dues = map[int]MonthStatus{}
		}
		out = append(out, row)
	}
	return out, nil
}

// SetStatus upserts one member-month, officer only. A new record starts with
// nilaiIuran 0; an existing one only changes status and the updatedBy stamp.
func (s *Service) SetStatus(actor auth.AuthUser, memberID string, year, month int, status string) error {
	if err := auth.RequireOfficer(actor, "Hanya pengurus yang dapat mengubah status iuran"); err != nil {
		return err
	}
	if month < 1 || month > 12 {
		return apperr.NewField("month", "Bulan harus di antara 1 dan 12")
	}
	if status != models.IuranLunas && status != models.IuranBelum {
		return apperr.NewField("status", "Status iuran tidak valid")
	}
	member, err := s.store.GetMember(memberID)
	if err != nil {
		return apperr.Classify(err, "Terjadi kesalahan saat mengubah status iuran")
	}
	if member == nil {
		return apperr.New(apperr.NotFound, "Anggota tidak ditemukan")
	}
	d := &models.DuesStatus{
		ID:         uuid.NewString(),
		MemberID:   memberID,
		Year:       year,
		Month:      month,
		Status:     status,
		NilaiIuran: 0,
		UpdatedBy:  stampFor(actor),
	}
	if err := s.store.UpsertDues(d); err != nil {
		return apperr.Classify(err, "Terjadi kesalahan saat mengubah status iuran")
	}
	if s.invalidate != nil {
		s.invalidate("iuran")
	}
	return nil
}

// stampFor mirrors the historical updatedBy convention: the actor's name,
// falling back to email when the name is empty.
func stampFor(actor auth.AuthUser) string {
	if actor.Name != "" {
		return actor.Name
	}
	return actor.Email
}
