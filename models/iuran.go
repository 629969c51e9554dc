package models

import "time"

// Dues payment status values.
const (
	IuranLunas = "lunas"
	IuranBelum = "belum"
)

// DuesStatus records a member's dues payment for one (year, month).
// At most one row per (member, year, month); a missing row means belum.
type DuesStatus struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	MemberID   string    `gorm:"size:36;not null;uniqueIndex:idx_dues_member_year_month" json:"memberId"`
	Year       int       `gorm:"not null;uniqueIndex:idx_dues_member_year_month" json:"year"`
	Month      int       `gorm:"not null;uniqueIndex:idx_dues_member_year_month" json:"month"`
	Status     string    `gorm:"size:16;not null" json:"status"`
	NilaiIuran int64     `gorm:"not null;default:0" json:"nilaiIuran"`
	UpdatedBy  string    `gorm:"size:255" json:"updatedBy"`
}
