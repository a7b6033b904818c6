package models

import "time"

// Term ids are opaque strings; bookings reference them without a foreign key
// so a submission carrying an unknown term id is stored as-is.
type Term struct {
	ID        string    `gorm:"type:varchar(40);primaryKey" json:"id"`
	Code      string    `gorm:"not null" json:"code"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
