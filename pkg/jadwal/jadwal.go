// Package jadwal is the weekly court grid: 7 days by 3 time slots, stored
// sparsely and read as a complete 21-cell week.
package jadwal

import (
	"klubkas/models"
	"klubkas/pkg/apperr"
	"klubkas/pkg/auth"

	"github.com/google/uuid"
)

// TimeSlots in display order.
var TimeSlots = []string{"pagi", "sore", "malam"}

const (
	firstDay = 1 // Monday
	lastDay  = 7 // Sunday
)

// Store is the slice of the record store the grid needs.
type Store interface {
	ListSchedule() ([]models.CourtSchedule, error)
	// UpsertSchedule inserts by (dayOfWeek, timeSlot) or replaces the stored
	// cell's status, occupant and updatedBy when the key exists.
	UpsertSchedule(c *models.CourtSchedule) error
}

// Slot is one cell of the filled-in week. UserName and Contact are nil for
// synthesized vacant cells that have never been stored.
type Slot struct {
	DayOfWeek int     `json:"dayOfWeek"`
	TimeSlot  string  `json:"timeSlot"`
	Status    string  `json:"status"`
	UserName  *string `json:"userName"`
	Contact   *string `json:"contact"`
}

// SlotInput is one cell mutation.
type SlotInput struct {
	Status   string
	UserName string
	Contact  string
}

// FillWeek merges the stored cells into the full 21-cell grid, synthesizing
// vacant cells for every missing (day, slot) pair. Pure.
func FillWeek(stored []models.CourtSchedule) []Slot {
	type key struct {
		day  int
		slot string
	}
	byKey := make(map[key]models.CourtSchedule, len(stored))
	for _, c := range stored {
		byKey[key{c.DayOfWeek, c.TimeSlot}] = c
	}
	week := make([]Slot, 0, (lastDay-firstDay+1)*len(TimeSlots))
	for day := firstDay; day <= lastDay; day++ {
		for _, slot := range TimeSlots {
			if c, ok := byKey[key{day, slot}]; ok {
				name, contact := c.UserName, c.Contact
				week = append(week, Slot{
					DayOfWeek: c.DayOfWeek,
					TimeSlot:  c.TimeSlot,
					Status:    c.Status,
					UserName:  &name,
					Contact:   &contact,
				})
			} else {
				week = append(week, Slot{DayOfWeek: day, TimeSlot: slot, Status: models.SlotVacant})
			}
		}
	}
	return week
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

// GetWeek returns exactly 21 cells for any authenticated caller.
func (s *Service) GetWeek(actor auth.AuthUser) ([]Slot, error) {
	if err := auth.RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	stored, err := s.store.ListSchedule()
	if err != nil {
		return nil, apperr.Classify(err, "Terjadi kesalahan saat mengambil jadwal")
	}
	return FillWeek(stored), nil
}

// SetSlot upserts one cell, officer only. Setting a cell vacant clears the
// occupant server-side regardless of what the caller supplied.
func (s *Service) SetSlot(actor auth.AuthUser, day int, timeSlot string, in SlotInput) error {
	if err := auth.RequireOfficer(actor, "Hanya pengurus yang dapat mengatur jadwal"); err != nil {
		return err
	}
	if day < firstDay || day > lastDay {
		return apperr.NewField("dayOfWeek", "Hari harus di antara 1 dan 7")
	}
	if !validSlot(timeSlot) {
		return apperr.NewField("timeSlot", "Slot waktu tidak valid")
	}
	switch in.Status {
	case models.SlotVacant, models.SlotOccupied, models.SlotCanceled:
	default:
		return apperr.NewField("status", "Status jadwal tidak valid")
	}
	if in.Status == models.SlotVacant {
		in.UserName = ""
		in.Contact = ""
	}
	c := &models.CourtSchedule{
		ID:        uuid.NewString(),
		DayOfWeek: day,
		TimeSlot:  timeSlot,
		Status:    in.Status,
		UserName:  in.UserName,
		Contact:   in.Contact,
		UpdatedBy: stampFor(actor),
	}
	if err := s.store.UpsertSchedule(c); err != nil {
		return apperr.Classify(err, "Terjadi kesalahan saat mengubah jadwal")
	}
	if s.invalidate != nil {
		s.invalidate("jadwal")
	}
	return nil
}

func validSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

func stampFor(actor auth.AuthUser) string {
	if actor.Name != "" {
		return actor.Name
	}
	return actor.Email
}
