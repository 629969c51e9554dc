package jadwal

import (
	"testing"

	"klubkas/models"
	"klubkas/pkg/apperr"
	"klubkas/pkg/auth"
	"klubkas/storage"
)

var (
	officer = auth.AuthUser{ID: "u-officer", Email: "budi@tennis.com", Name: "Budi", Role: auth.RolePengurus}
	member  = auth.AuthUser{ID: "u-member", Email: "dina@tennis.com", Name: "Dina", Role: auth.RoleAnggota}
	anon    auth.AuthUser
)

func TestFillWeekSynthesizesFullGrid(t *testing.T) {
	week := FillWeek(nil)
	if len(week) != 21 {
		t.Fatalf("got %d cells", len(week))
	}
	seen := make(map[string]bool)
	for _, cell := range week {
		if cell.Status != models.SlotVacant {
			t.Errorf("empty grid cell not vacant: %+v", cell)
		}
		if cell.UserName != nil || cell.Contact != nil {
			t.Errorf("synthesized cell carries occupant fields: %+v", cell)
		}
		seen[cell.TimeSlot+string(rune('0'+cell.DayOfWeek))] = true
	}
	if len(seen) != 21 {
		t.Fatalf("duplicate cells in grid: %d unique", len(seen))
	}
	// row-major: day 1 pagi/sore/malam, then day 2
	if week[0].DayOfWeek != 1 || week[0].TimeSlot != "pagi" || week[3].DayOfWeek != 2 {
		t.Errorf("bad grid order: %+v %+v", week[0], week[3])
	}
}

func TestFillWeekMergesStoredCells(t *testing.T) {
	stored := []models.CourtSchedule{
		{DayOfWeek: 3, TimeSlot: "sore", Status: models.SlotOccupied, UserName: "Pak Andi", Contact: "0812-0000-1111"},
	}
	week := FillWeek(stored)
	if len(week) != 21 {
		t.Fatalf("got %d cells", len(week))
	}
	var cell Slot
	for _, c := range week {
		if c.DayOfWeek == 3 && c.TimeSlot == "sore" {
			cell = c
		}
	}
	if cell.Status != models.SlotOccupied {
		t.Fatalf("stored cell lost: %+v", cell)
	}
	if cell.UserName == nil || *cell.UserName != "Pak Andi" {
		t.Errorf("userName = %v", cell.UserName)
	}
	if cell.Contact == nil || *cell.Contact != "0812-0000-1111" {
		t.Errorf("contact = %v", cell.Contact)
	}
}

func TestGetWeekRequiresIdentity(t *testing.T) {
	svc := NewService(storage.NewMemory())
	if _, err := svc.GetWeek(anon); apperr.KindOf(err) != apperr.Unauthorized {
		t.Fatalf("expected Unauthorized, got %v", err)
	}
	week, err := svc.GetWeek(member)
	if err != nil {
		t.Fatal(err)
	}
	if len(week) != 21 {
		t.Fatalf("got %d cells", len(week))
	}
}

func TestSetSlotGatesAndValidation(t *testing.T) {
	svc := NewService(storage.NewMemory())
	in := SlotInput{Status: models.SlotOccupied, UserName: "Pak Andi", Contact: "0812"}

	if err := svc.SetSlot(anon, 1, "pagi", in); apperr.KindOf(err) != apperr.Unauthorized {
		t.Errorf("anonymous: got %v", err)
	}
	if err := svc.SetSlot(member, 1, "pagi", in); apperr.KindOf(err) != apperr.Forbidden {
		t.Errorf("member: got %v", err)
	}
	if err := svc.SetSlot(officer, 0, "pagi", in); apperr.KindOf(err) != apperr.Validation {
		t.Errorf("day 0: got %v", err)
	}
	if err := svc.SetSlot(officer, 8, "pagi", in); apperr.KindOf(err) != apperr.Validation {
		t.Errorf("day 8: got %v", err)
	}
	if err := svc.SetSlot(officer, 1, "siang", in); apperr.KindOf(err) != apperr.Validation {
		t.Errorf("bad slot: got %v", err)
	}
	if err := svc.SetSlot(officer, 1, "pagi", SlotInput{Status: "booked"}); apperr.KindOf(err) != apperr.Validation {
		t.Errorf("bad status: got %v", err)
	}
}

func TestSetSlotVacantClearsOccupant(t *testing.T) {
	store := storage.NewMemory()
	stale := 0
	svc := NewService(store, WithInvalidate(func(string) { stale++ }))

	occupy := SlotInput{Status: models.SlotOccupied, UserName: "Pak Andi", Contact: "0812-0000-1111"}
	if err := svc.SetSlot(officer, 3, "sore", occupy); err != nil {
		t.Fatal(err)
	}
	// the caller's occupant fields are ignored when vacating
	vacate := SlotInput{Status: models.SlotVacant, UserName: "Pak Andi", Contact: "0812-0000-1111"}
	if err := svc.SetSlot(officer, 3, "sore", vacate); err != nil {
		t.Fatal(err)
	}

	week, err := svc.GetWeek(officer)
	if err != nil {
		t.Fatal(err)
	}
	var cell Slot
	for _, c := range week {
		if c.DayOfWeek == 3 && c.TimeSlot == "sore" {
			cell = c
		}
	}
	if cell.Status != models.SlotVacant {
		t.Fatalf("cell = %+v", cell)
	}
	// stored-then-vacated cells keep pointers, pointing at empty strings
	if cell.UserName == nil || *cell.UserName != "" {
		t.Errorf("userName = %v", cell.UserName)
	}
	if cell.Contact == nil || *cell.Contact != "" {
		t.Errorf("contact = %v", cell.Contact)
	}
	if stale != 2 {
		t.Errorf("invalidation fired %d times", stale)
	}
}

func TestSetSlotUpsertKeepsOneRowPerCell(t *testing.T) {
	store := storage.NewMemory()
	svc := NewService(store)

	if err := svc.SetSlot(officer, 5, "malam", SlotInput{Status: models.SlotOccupied, UserName: "Bu Sari", Contact: "0813"}); err != nil {
		t.Fatal(err)
	}
	if err := svc.SetSlot(officer, 5, "malam", SlotInput{Status: models.SlotCanceled, UserName: "Bu Sari", Contact: "0813"}); err != nil {
		t.Fatal(err)
	}
	stored, err := store.ListSchedule()
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 1 {
		t.Fatalf("expected one row per cell, got %d", len(stored))
	}
	if stored[0].Status != models.SlotCanceled || stored[0].UpdatedBy != "Budi" {
		t.Errorf("row = %+v", stored[0])
	}
}
