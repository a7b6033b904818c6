package service

import (
	"context"

	"github.com/sittha/dorm-booking/internal/models"
	"github.com/sittha/dorm-booking/internal/repository"
)

// RoomOccupancy pairs a room with its current count of approved bookings.
type RoomOccupancy struct {
	Room      models.Room
	Occupants int64
}

type CatalogService interface {
	ListRooms(ctx context.Context, filter repository.RoomFilter) ([]RoomOccupancy, error)
	ListTerms(ctx context.Context) ([]models.Term, error)
}

type catalogService struct {
	roomRepo    repository.RoomRepository
	termRepo    repository.TermRepository
	bookingRepo repository.BookingRepository
}

func NewCatalogService(roomRepo repository.RoomRepository, termRepo repository.TermRepository, bookingRepo repository.BookingRepository) CatalogService {
	return &catalogService{
		roomRepo:    roomRepo,
		termRepo:    termRepo,
		bookingRepo: bookingRepo,
	}
}

// ListRooms recomputes occupancy per room on every call. The ledger is small;
// a stale cached count here could leak a full room as available.
func (s *catalogService) ListRooms(ctx context.Context, filter repository.RoomFilter) ([]RoomOccupancy, error) {
	rooms, err := s.roomRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]RoomOccupancy, 0, len(rooms))
	for _, room := range rooms {
		occupants, err := s.bookingRepo.CountByRoomAndStatus(ctx, s.bookingRepo.GetDB(), room.ID, models.StatusApproved)
		if err != nil {
			return nil, err
		}
		result = append(result, RoomOccupancy{Room: room, Occupants: occupants})
	}
	return result, nil
}

func (s *catalogService) ListTerms(ctx context.Context) ([]models.Term, error) {
	return s.termRepo.FindAll(ctx)
}
