package models

import "time"

// Court slot status values.
const (
	SlotVacant   = "vacant"
	SlotOccupied = "occupied"
	SlotCanceled = "canceled"
)

// CourtSchedule is one booked cell of the weekly court grid.
// At most one row per (dayOfWeek, timeSlot); a missing row means vacant.
type CourtSchedule struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DayOfWeek int       `gorm:"not null;uniqueIndex:idx_schedule_day_slot" json:"dayOfWeek"` // 1=Mon .. 7=Sun
	TimeSlot  string    `gorm:"size:16;not null;uniqueIndex:idx_schedule_day_slot" json:"timeSlot"`
	Status    string    `gorm:"size:16;not null" json:"status"`
	UserName  string    `gorm:"size:255" json:"userName"`
	Contact   string    `gorm:"size:255" json:"contact"`
	UpdatedBy string    `gorm:"size:255" json:"updatedBy"`
}
