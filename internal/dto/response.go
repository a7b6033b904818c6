package dto

import (
	"time"

	"github.com/sittha/dorm-booking/internal/models"
	"github.com/sittha/dorm-booking/internal/service"
)

type RoomResponse struct {
	ID         uint    `json:"id"`
	DormID     string  `json:"dorm_id"`
	DormName   string  `json:"dorm_name"`
	Gender     string  `json:"gender"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Capacity   int     `json:"capacity"`
	Cooling    string  `json:"cooling"`
	PriceMonth float64 `json:"price_month"`
	Occupants  int64   `json:"occupants"`
}

type TermResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type UserSummary struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	StudentID string `json:"student_id"`
	Email     string `json:"email"`
}

type BookingResponse struct {
	ID        uint                 `json:"id"`
	UserID    uint                 `json:"user_id"`
	RoomID    uint                 `json:"room_id"`
	TermID    string               `json:"term_id"`
	Status    models.BookingStatus `json:"status"`
	Note      string               `json:"note"`
	PayMethod models.PayMethod     `json:"pay_method"`
	SlipURL   *string              `json:"slip_url,omitempty"`
	OnlineRef *string              `json:"online_ref,omitempty"`
	CreatedAt time.Time            `json:"created_at"`

	User *UserSummary  `json:"user,omitempty"`
	Room *RoomResponse `json:"room,omitempty"`
	Term *TermResponse `json:"term,omitempty"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToRoomResponse(ro service.RoomOccupancy) RoomResponse {
	r := ro.Room
	return RoomResponse{
		ID:         r.ID,
		DormID:     r.DormID,
		DormName:   r.DormName,
		Gender:     string(r.Gender),
		Name:       r.Name,
		Type:       string(r.Type),
		Capacity:   r.Capacity,
		Cooling:    string(r.Cooling),
		PriceMonth: r.PriceMonth,
		Occupants:  ro.Occupants,
	}
}

func ToTermResponse(t *models.Term) TermResponse {
	return TermResponse{ID: t.ID, Code: t.Code, Name: t.Name}
}

func ToUserSummary(u *models.User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{ID: u.ID, Name: u.Name, StudentID: u.StudentID, Email: u.Email}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		RoomID:    b.RoomID,
		TermID:    b.TermID,
		Status:    b.Status,
		Note:      b.Note,
		PayMethod: b.PayMethod,
		SlipURL:   b.SlipURL,
		OnlineRef: b.OnlineRef,
		CreatedAt: b.CreatedAt,
	}
	resp.User = ToUserSummary(b.User)
	if b.Room != nil {
		room := ToRoomResponse(service.RoomOccupancy{Room: *b.Room})
		resp.Room = &room
	}
	if b.Term != nil {
		term := ToTermResponse(b.Term)
		resp.Term = &term
	}
	return resp
}
