package models

import "time"

// Role marks a user as pengurus. Regular anggota have no role record.
type Role struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	UserID    string    `gorm:"size:36;not null;uniqueIndex" json:"userId"`
	RoleName  string    `gorm:"size:32;not null" json:"roleName"`
}
