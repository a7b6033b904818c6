package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sittha/dorm-booking/internal/models"
	"github.com/sittha/dorm-booking/internal/repository"
	"github.com/sittha/dorm-booking/pkg/rabbitmq"
	"gorm.io/gorm"
)

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrDuplicateBooking = errors.New("user already has a booking for this term")
	ErrRoomFull         = errors.New("room is full")
	ErrMissingSlip      = errors.New("slip file is required for slip payment")
	ErrNotPending       = errors.New("only pending bookings can be approved")
)

// SubmitInput carries a validated booking request. SlipURL is the durable
// reference to an already-staged upload; the caller discards the staged file
// when Submit returns an error.
type SubmitInput struct {
	UserID    uint
	RoomID    uint
	TermID    string
	PayMethod models.PayMethod
	Note      string
	SlipURL   *string
}

type BookingService interface {
	Submit(ctx context.Context, in SubmitInput) (*models.Booking, error)
	Approve(ctx context.Context, bookingID uint, actor string) (*models.Booking, error)
	Reject(ctx context.Context, bookingID uint, actor string) (*models.Booking, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Booking, error)
	ListAll(ctx context.Context) ([]models.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	roomRepo    repository.RoomRepository
	publisher   *rabbitmq.Publisher
}

func NewBookingService(bookingRepo repository.BookingRepository, roomRepo repository.RoomRepository, publisher *rabbitmq.Publisher) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		publisher:   publisher,
	}
}

// bookingEvent is the payload published on booking.* routing keys.
type bookingEvent struct {
	BookingID uint                 `json:"booking_id"`
	UserID    uint                 `json:"user_id"`
	RoomID    uint                 `json:"room_id"`
	TermID    string               `json:"term_id"`
	Status    models.BookingStatus `json:"status"`
}

func (s *bookingService) Submit(ctx context.Context, in SubmitInput) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the room row so concurrent admission and approval serialize.
		room, err := s.roomRepo.FindByIDForUpdate(ctx, tx, in.RoomID)
		if err != nil {
			return ErrRoomNotFound
		}

		// Term ids are recorded as opaque keys and not validated; an unknown
		// term id is accepted and simply joins to nothing downstream.

		// One active booking per student per term.
		_, err = s.bookingRepo.FindActiveByUserAndTerm(ctx, tx, in.UserID, in.TermID)
		if err == nil {
			return ErrDuplicateBooking
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// Only approved bookings count against capacity.
		occupants, err := s.bookingRepo.CountByRoomAndStatus(ctx, tx, room.ID, models.StatusApproved)
		if err != nil {
			return err
		}
		if int(occupants) >= room.Capacity {
			return ErrRoomFull
		}

		// Payment method fields are fixed at creation.
		booking := &models.Booking{
			UserID:    in.UserID,
			RoomID:    in.RoomID,
			TermID:    in.TermID,
			Status:    models.StatusPending,
			Note:      in.Note,
			PayMethod: in.PayMethod,
		}
		switch in.PayMethod {
		case models.PaySlip:
			if in.SlipURL == nil || *in.SlipURL == "" {
				return ErrMissingSlip
			}
			booking.SlipURL = in.SlipURL
		case models.PayOnline:
			ref := newOnlineRef()
			booking.OnlineRef = &ref
		default:
			return fmt.Errorf("unknown pay method %q", in.PayMethod)
		}

		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			return err
		}

		if err := s.bookingRepo.RecordStatusEvent(ctx, tx, &models.BookingStatusEvent{
			BookingID: booking.ID,
			Status:    models.StatusPending,
			CreatedBy: fmt.Sprintf("user:%d", in.UserID),
		}); err != nil {
			return err
		}

		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("booking.submitted", result)
	return result, nil
}

// Approve re-checks capacity under the room lock: any number of bookings may
// be pending at once, so approval is the real admission gate.
func (s *bookingService) Approve(ctx context.Context, bookingID uint, actor string) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the booking row first so a concurrent rejection cannot slip in
		// between the pending check and the status write.
		booking, err := s.bookingRepo.FindByIDForUpdate(ctx, tx, bookingID)
		if err != nil {
			return ErrBookingNotFound
		}
		if booking.Status != models.StatusPending {
			return ErrNotPending
		}

		room, err := s.roomRepo.FindByIDForUpdate(ctx, tx, booking.RoomID)
		if err != nil {
			return ErrRoomNotFound
		}

		occupants, err := s.bookingRepo.CountByRoomAndStatus(ctx, tx, room.ID, models.StatusApproved)
		if err != nil {
			return err
		}
		if int(occupants) >= room.Capacity {
			return ErrRoomFull
		}

		if err := s.bookingRepo.UpdateStatus(ctx, tx, booking.ID, models.StatusApproved); err != nil {
			return err
		}
		if err := s.bookingRepo.RecordStatusEvent(ctx, tx, &models.BookingStatusEvent{
			BookingID: booking.ID,
			Status:    models.StatusApproved,
			CreatedBy: actor,
		}); err != nil {
			return err
		}

		booking.Status = models.StatusApproved
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("booking.approved", result)
	return result, nil
}

// Reject is unconditional: rejecting an already-approved booking is allowed
// and frees the slot on the next occupancy count. The status event trail keeps
// the double transition visible.
func (s *bookingService) Reject(ctx context.Context, bookingID uint, actor string) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindByIDForUpdate(ctx, tx, bookingID)
		if err != nil {
			return ErrBookingNotFound
		}

		if err := s.bookingRepo.UpdateStatus(ctx, tx, booking.ID, models.StatusRejected); err != nil {
			return err
		}
		if err := s.bookingRepo.RecordStatusEvent(ctx, tx, &models.BookingStatusEvent{
			BookingID: booking.ID,
			Status:    models.StatusRejected,
			CreatedBy: actor,
		}); err != nil {
			return err
		}

		booking.Status = models.StatusRejected
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("booking.rejected", result)
	return result, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	return s.bookingRepo.FindByID(ctx, id)
}

func (s *bookingService) ListByUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	return s.bookingRepo.FindByUserID(ctx, userID)
}

func (s *bookingService) ListAll(ctx context.Context) ([]models.Booking, error) {
	return s.bookingRepo.FindAll(ctx)
}

func (s *bookingService) publish(routingKey string, b *models.Booking) {
	if s.publisher == nil || b == nil {
		return
	}
	_ = s.publisher.Publish(routingKey, bookingEvent{
		BookingID: b.ID,
		UserID:    b.UserID,
		RoomID:    b.RoomID,
		TermID:    b.TermID,
		Status:    b.Status,
	})
}

// newOnlineRef generates the opaque placeholder standing in for a payment
// gateway transaction id.
func newOnlineRef() string {
	short := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("ONL-%d-%s", time.Now().UnixMilli(), short)
}
