package dto

type RegisterRequest struct {
	StudentID string `json:"student_id" validate:"required,min=4"`
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,min=6"`
	Password  string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SubmitBookingRequest arrives as multipart form fields; the slip file itself
// rides alongside under the "slip" key.
type SubmitBookingRequest struct {
	RoomID    uint   `form:"room_id" validate:"required"`
	TermID    string `form:"term_id" validate:"required"`
	PayMethod string `form:"pay_method" validate:"required,oneof=slip online"`
	Note      string `form:"note"`
}
