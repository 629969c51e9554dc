// Package ledger is the financial transaction log: officer-gated writes with
// field validation, soft deletes, and the dashboard aggregation derived from
// active entries.
package ledger

import (
	"time"

	"klubkas/models"
	"klubkas/pkg/apperr"
	"klubkas/pkg/auth"

	"github.com/google/uuid"
)

// Store is the slice of the record store the ledger needs.
type Store interface {
	// ListActiveTransactions returns non-deleted rows ordered by
	// tanggal_transaksi descending.
	ListActiveTransactions() ([]models.Transaction, error)
	// GetTransaction returns the row regardless of its deleted flag, or nil
	// when the id is unknown.
	GetTransaction(id string) (*models.Transaction, error)
	CreateTransaction(t *models.Transaction) error
	UpdateTransaction(t *models.Transaction) error
}

type Option func(*Service)

// WithNow overrides the clock used for the date window and dashboard ranges.
func WithNow(fn func() time.Time) Option {
	return func(s *Service) { s.now = fn }
}

// WithInvalidate installs the view-invalidation signal fired after every
// successful mutation.
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

func (s *Service) signalStale(view string) {
	if s.invalidate != nil {
		s.invalidate(view)
	}
}

// ListActive returns the visible ledger, newest first. Anonymous callers are
// admitted only when the public flag is set.
func (s *Service) ListActive(actor auth.AuthUser, public bool) ([]models.Transaction, error) {
	if !public {
		if err := auth.RequireAuthenticated(actor); err != nil {
			return nil, err
		}
	}
	txs, err := s.store.ListActiveTransactions()
	if err != nil {
		return nil, apperr.Classify(err, "Terjadi kesalahan saat mengambil transaksi")
	}
	return txs, nil
}

// Get returns one visible transaction; soft-deleted rows read as not found.
func (s *Service) Get(actor auth.AuthUser, id string) (*models.Transaction, error) {
	if err := auth.RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	tx, err := s.store.GetTransaction(id)
	if err != nil {
		return nil, apperr.Classify(err, "Terjadi kesalahan saat mengambil transaksi")
	}
	if tx == nil || tx.IsDeleted {
		return nil, apperr.New(apperr.NotFound, "Transaksi tidak ditemukan")
	}
	return tx, nil
}

func (s *Service) Create(actor auth.AuthUser, in Input) (*models.Transaction, error) {
	if err := auth.RequireOfficer(actor, "Hanya pengurus yang dapat menambah transaksi"); err != nil {
		return nil, err
	}
	tanggal, nilai, err := validate(in, s.now())
	if err != nil {
		return nil, err
	}
	tx := &models.Transaction{
		ID:               uuid.NewString(),
		TanggalTransaksi: tanggal,
		Jenis:            in.Jenis,
		Nilai:            nilai,
		Kategori:         in.Kategori,
		Catatan:          in.Catatan,
		CreatedBy:        actor.ID,
		UpdatedBy:        actor.ID,
	}
	if err := s.store.CreateTransaction(tx); err != nil {
		return nil, apperr.Classify(err, "Terjadi kesalahan saat membuat transaksi")
	}
	s.signalStale("transaksi")
	return tx, nil
}

func (s *Service) Update(actor auth.AuthUser, id string, in Input) (*models.Transaction, error) {
	if err := auth.RequireOfficer(actor, "Hanya pengurus yang dapat mengedit transaksi"); err != nil {
		return nil, err
	}
	tanggal, nilai, err := validate(in, s.now())
	if err != nil {
		return nil, err
	}
	tx, err := s.store.GetTransaction(id)
	if err != nil {
		return nil, apperr.Classify(err, "Terjadi kesalahan saat mengupdate transaksi")
	}
	if tx == nil || tx.IsDeleted {
		return nil, apperr.New(apperr.NotFound, "Transaksi tidak ditemukan")
	}
	tx.TanggalTransaksi = tanggal
	tx.Jenis = in.Jenis
	tx.Nilai = nilai
	tx.Kategori = in.Kategori
	tx.Catatan = in.Catatan
	tx.UpdatedBy = actor.ID
	if err := s.store.UpdateTransaction(tx); err != nil {
		return nil, apperr.Classify(err, "Terjadi kesalahan saat mengupdate transaksi")
	}
	s.signalStale("transaksi")
	return tx, nil
}

// SoftDelete hides the row from every read and aggregate; it never removes
// the record and never cascades.
func (s *Service) SoftDelete(actor auth.AuthUser, id string) error {
	if err := auth.RequireOfficer(actor, "Hanya pengurus yang dapat menghapus transaksi"); err != nil {
		return err
	}
	tx, err := s.store.GetTransaction(id)
	if err != nil {
		return apperr.Classify(err, "Terjadi kesalahan saat menghapus transaksi")
	}
	if tx == nil || tx.IsDeleted {
		return apperr.New(apperr.NotFound, "Transaksi tidak ditemukan")
	}
	tx.IsDeleted = true
	tx.UpdatedBy = actor.ID
	if err := s.store.UpdateTransaction(tx); err != nil {
		return apperr.Classify(err, "Terjadi kesalahan saat menghapus transaksi")
	}
	s.signalStale("transaksi")
	return nil
}
