package ledger

import (
	"testing"
	"time"

	"klubkas/pkg/apperr"
	"klubkas/pkg/auth"
	"klubkas/storage"
)

var (
	officer = auth.AuthUser{ID: "u-officer", Email: "budi@tennis.com", Name: "Budi", Role: auth.RolePengurus}
	member  = auth.AuthUser{ID: "u-member", Email: "dina@tennis.com", Name: "Dina", Role: auth.RoleAnggota}
	anon    auth.AuthUser
)

func newTestService(t *testing.T) (*Service, *storage.Memory, *int) {
	t.Helper()
	store := storage.NewMemory()
	stale := 0
	svc := NewService(store,
		WithNow(func() time.Time { return testNow }),
		WithInvalidate(func(string) { stale++ }),
	)
	return svc, store, &stale
}

func TestCreateRequiresOfficer(t *testing.T) {
	svc, _, _ := newTestService(t)
	if _, err := svc.Create(anon, validInput()); apperr.KindOf(err) != apperr.Unauthorized {
		t.Fatalf("anonymous create: expected Unauthorized, got %v", err)
	}
	if _, err := svc.Create(member, validInput()); apperr.KindOf(err) != apperr.Forbidden {
		t.Fatalf("member create: expected Forbidden, got %v", err)
	}
	if _, err := svc.Create(officer, validInput()); err != nil {
		t.Fatalf("officer create: %v", err)
	}
}

func TestCreateStampsAndSignals(t *testing.T) {
	svc, _, stale := newTestService(t)
	tx, err := svc.Create(officer, validInput())
	if err != nil {
		t.Fatal(err)
	}
	if tx.ID == "" || tx.CreatedBy != officer.ID || tx.UpdatedBy != officer.ID {
		t.Fatalf("bad stamps: %+v", tx)
	}
	if *stale != 1 {
		t.Fatalf("expected one invalidation signal, got %d", *stale)
	}
}

func TestValidationFailureWritesNothing(t *testing.T) {
	svc, _, stale := newTestService(t)
	in := validInput()
	in.Nilai = "1000000000"
	if _, err := svc.Create(officer, in); apperr.KindOf(err) != apperr.Validation {
		t.Fatalf("expected Validation, got %v", err)
	}
	txs, err := svc.ListActive(member, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 0 {
		t.Fatalf("partial write happened: %d rows", len(txs))
	}
	if *stale != 0 {
		t.Fatal("invalidation fired on a failed write")
	}
}

func TestListActiveOrderAndAccess(t *testing.T) {
	svc, _, _ := newTestService(t)
	older := validInput()
	older.TanggalTransaksi = "2026-03-01"
	newer := validInput()
	newer.TanggalTransaksi = "2026-03-12"
	if _, err := svc.Create(officer, older); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(officer, newer); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.ListActive(anon, false); apperr.KindOf(err) != apperr.Unauthorized {
		t.Fatalf("anonymous non-public list: expected Unauthorized, got %v", err)
	}
	txs, err := svc.ListActive(anon, true)
	if err != nil {
		t.Fatalf("public list must admit anonymous callers: %v", err)
	}
	if len(txs) != 2 || !txs[0].TanggalTransaksi.After(txs[1].TanggalTransaksi) {
		t.Fatalf("expected newest-first order, got %+v", txs)
	}
}

func TestSoftDelete(t *testing.T) {
	svc, store, _ := newTestService(t)
	tx, err := svc.Create(officer, validInput())
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.SoftDelete(member, tx.ID); apperr.KindOf(err) != apperr.Forbidden {
		t.Fatalf("member delete: expected Forbidden, got %v", err)
	}
	if err := svc.SoftDelete(officer, tx.ID); err != nil {
		t.Fatal(err)
	}

	txs, _ := svc.ListActive(officer, false)
	if len(txs) != 0 {
		t.Fatal("soft-deleted row still listed")
	}
	d, _ := svc.Dashboard()
	if d.KPI.PenerimaanBulanIni != 0 {
		t.Fatal("soft-deleted row still aggregated")
	}

	// the record survives in storage with the flag set
	raw, err := store.GetTransaction(tx.ID)
	if err != nil || raw == nil {
		t.Fatalf("record physically removed: %v", err)
	}
	if !raw.IsDeleted || raw.UpdatedBy != officer.ID {
		t.Fatalf("bad deleted record: %+v", raw)
	}

	if _, err := svc.Get(officer, tx.ID); apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("Get on deleted row: expected NotFound, got %v", err)
	}
	if err := svc.SoftDelete(officer, tx.ID); apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("double delete: expected NotFound, got %v", err)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	svc, _, _ := newTestService(t)
	if _, err := svc.Update(officer, "missing", validInput()); apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestUpdateRevalidatesWindowAgainstNow(t *testing.T) {
	svc, store, _ := newTestService(t)
	tx, err := svc.Create(officer, validInput())
	if err != nil {
		t.Fatal(err)
	}
	// the same date fails once "now" has moved past the rolling window
	later := NewService(store, WithNow(func() time.Time { return testNow.AddDate(0, 6, 0) }))
	in := validInput()
	if _, err := later.Update(officer, tx.ID, in); apperr.KindOf(err) != apperr.Validation {
		t.Fatalf("expected Validation after window moved, got %v", err)
	}
}
