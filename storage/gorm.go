// Package storage implements the domain packages' store interfaces: a GORM
// Postgres store for production and an in-memory store for tests. The handle
// is constructed in main and threaded in explicitly; there is no package
// global.
package storage

import (
	"errors"
	"strings"

	"klubkas/models"
	"klubkas/pkg/apperr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

// isUniqueViolation classifies duplicate-key errors from the driver. A
// concurrent duplicate create loses here rather than producing two rows.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "already exists")
}

func (g *Gorm) FindUserByEmail(email string) (*models.User, error) {
	var u models.User
	err := g.db.Preload("Role").Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (g *Gorm) ListActiveTransactions() ([]models.Transaction, error) {
	var txs []models.Transaction
	err := g.db.Where("is_deleted = ?", false).Order("tanggal_transaksi desc").Find(&txs).Error
	return txs, err
}

func (g *Gorm) GetTransaction(id string) (*models.Transaction, error) {
	var tx models.Transaction
	err := g.db.Where("id = ?", id).First(&tx).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (g *Gorm) CreateTransaction(t *models.Transaction) error {
	return g.db.Create(t).Error
}

func (g *Gorm) UpdateTransaction(t *models.Transaction) error {
	return g.db.Save(t).Error
}

func (g *Gorm) ListActiveMembers() ([]models.Member, error) {
	var ms []models.Member
	err := g.db.Where("status_keanggotaan = ?", "aktif").Order("name asc").Find(&ms).Error
	return ms, err
}

func (g *Gorm) ListMembers() ([]models.Member, error) {
	var ms []models.Member
	err := g.db.Order("name asc").Find(&ms).Error
	return ms, err
}

func (g *Gorm) GetMember(id string) (*models.Member, error) {
	var m models.Member
	err := g.db.Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (g *Gorm) FindMemberByEmail(email, excludeID string) (*models.Member, error) {
	q := g.db.Where("email = ?", email)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var m models.Member
	err := q.First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (g *Gorm) CreateMember(m *models.Member) error {
	if err := g.db.Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return apperr.New(apperr.Conflict, "Email sudah terdaftar")
		}
		return err
	}
	return nil
}

func (g *Gorm) UpdateMember(m *models.Member) error {
	if err := g.db.Save(m).Error; err != nil {
		if isUniqueViolation(err) {
			return apperr.New(apperr.Conflict, "Email sudah terdaftar oleh anggota lain")
		}
		return err
	}
	return nil
}

func (g *Gorm) CreateMemberAccount(m *models.Member, u *models.User, r *models.Role) error {
	err := g.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}
		if err := tx.Create(r).Error; err != nil {
			return err
		}
		m.UserID = &u.ID
		return tx.Save(m).Error
	})
	if isUniqueViolation(err) {
		return apperr.New(apperr.Conflict, "Akun dengan email ini sudah ada")
	}
	return err
}

func (g *Gorm) ListDues(year int) ([]models.DuesStatus, error) {
	var ds []models.DuesStatus
	err := g.db.Where("year = ?", year).Find(&ds).Error
	return ds, err
}

func (g *Gorm) UpsertDues(d *models.DuesStatus) error {
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "member_id"}, {Name: "year"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_by", "updated_at"}),
	}).Create(d).Error
}

func (g *Gorm) ListSchedule() ([]models.CourtSchedule, error) {
	var cs []models.CourtSchedule
	err := g.db.Find(&cs).Error
	return cs, err
}

func (g *Gorm) UpsertSchedule(c *models.CourtSchedule) error {
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "day_of_week"}, {Name: "time_slot"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "user_name", "contact", "updated_by", "updated_at"}),
	}).Create(c).Error
}
