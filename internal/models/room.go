package models

import "time"

type GenderPolicy string

const (
	GenderMale   GenderPolicy = "male"
	GenderFemale GenderPolicy = "female"
)

type RoomType string

const (
	RoomTwoPax  RoomType = "2pax"
	RoomFourPax RoomType = "4pax"
)

type Cooling string

const (
	CoolingAir Cooling = "air"
	CoolingFan Cooling = "fan"
)

// Room is catalog data: seeded at startup and read-only afterwards.
type Room struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	DormID     string       `gorm:"type:varchar(40);not null" json:"dorm_id"`
	DormName   string       `gorm:"not null" json:"dorm_name"`
	Gender     GenderPolicy `gorm:"type:varchar(10);not null" json:"gender"`
	Name       string       `gorm:"not null" json:"name"`
	Type       RoomType     `gorm:"type:varchar(10);not null" json:"type"`
	Capacity   int          `gorm:"not null" json:"capacity"`
	Cooling    Cooling      `gorm:"type:varchar(10);not null" json:"cooling"`
	PriceMonth float64      `gorm:"not null" json:"price_month"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
