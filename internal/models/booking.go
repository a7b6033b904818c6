package models

import "time"

type BookingStatus string

const (
	StatusPending  BookingStatus = "pending"
	StatusApproved BookingStatus = "approved"
	StatusRejected BookingStatus = "rejected"
)

type PayMethod string

const (
	PaySlip   PayMethod = "slip"
	PayOnline PayMethod = "online"
)

type Booking struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	UserID    uint          `gorm:"not null;index" json:"user_id"`
	RoomID    uint          `gorm:"not null;index" json:"room_id"`
	TermID    string        `gorm:"type:varchar(40);not null" json:"term_id"`
	Status    BookingStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Note      string        `json:"note"`
	PayMethod PayMethod     `gorm:"type:varchar(10);not null" json:"pay_method"`
	SlipURL   *string       `json:"slip_url,omitempty"`
	OnlineRef *string       `json:"online_ref,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Room *Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Term *Term `gorm:"foreignKey:TermID;references:ID" json:"term,omitempty"`
}

// BookingStatusEvent records every status a booking has held, including the
// initial pending state. Rejections of already-approved bookings show up here
// as two terminal rows for the same booking.
type BookingStatusEvent struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	BookingID uint          `gorm:"not null;index" json:"booking_id"`
	Status    BookingStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedBy string        `gorm:"type:varchar(120);not null" json:"created_by"`
	CreatedAt time.Time     `json:"created_at"`
}
