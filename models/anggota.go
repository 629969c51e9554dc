package models

import "time"

// Member is a club member on the roster. A member may exist without a login;
// UserID is set once when an account is created for them.
type Member struct {
	ID                string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
	Name              string    `gorm:"size:255;not null" json:"name"`
	Email             *string   `gorm:"size:255;uniqueIndex" json:"email"`
	StatusKeanggotaan string    `gorm:"size:16;not null;default:aktif" json:"statusKeanggotaan"`
	DefaultIuran      int64     `gorm:"not null;default:100000" json:"defaultIuran"`
	JoinedAt          time.Time `gorm:"not null" json:"joinedAt"`
	UserID            *string   `gorm:"size:36;uniqueIndex" json:"userId"`
}
