package service

import (
	"context"
	"testing"

	"github.com/sittha/dorm-booking/internal/models"
	"github.com/sittha/dorm-booking/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --- Mock RoomRepository ---

type mockRoomRepo struct {
	findByIDFn func(ctx context.Context, id uint) (*models.Room, error)
	listFn     func(ctx context.Context, filter repository.RoomFilter) ([]models.Room, error)
}

func (m *mockRoomRepo) FindByID(ctx context.Context, id uint) (*models.Room, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockRoomRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockRoomRepo) List(ctx context.Context, filter repository.RoomFilter) ([]models.Room, error) {
	return m.listFn(ctx, filter)
}

// --- Mock TermRepository ---

type mockTermRepo struct {
	findAllFn func(ctx context.Context) ([]models.Term, error)
}

func (m *mockTermRepo) FindByID(ctx context.Context, id string) (*models.Term, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockTermRepo) FindAll(ctx context.Context) ([]models.Term, error) {
	return m.findAllFn(ctx)
}

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	countFn func(ctx context.Context, tx *gorm.DB, roomID uint, status models.BookingStatus) (int64, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, tx *gorm.DB, b *models.Booking) error {
	return nil
}
func (m *mockBookingRepo) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockBookingRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Booking, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockBookingRepo) FindByUserID(ctx context.Context, userID uint) ([]models.Booking, error) {
	return nil, nil
}
func (m *mockBookingRepo) FindAll(ctx context.Context) ([]models.Booking, error) {
	return nil, nil
}
func (m *mockBookingRepo) FindActiveByUserAndTerm(ctx context.Context, tx *gorm.DB, userID uint, termID string) (*models.Booking, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockBookingRepo) CountByRoomAndStatus(ctx context.Context, tx *gorm.DB, roomID uint, status models.BookingStatus) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx, tx, roomID, status)
	}
	return 0, nil
}
func (m *mockBookingRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, bookingID uint, status models.BookingStatus) error {
	return nil
}
func (m *mockBookingRepo) RecordStatusEvent(ctx context.Context, tx *gorm.DB, event *models.BookingStatusEvent) error {
	return nil
}
func (m *mockBookingRepo) GetDB() *gorm.DB { return nil }

// --- Tests ---

func TestListRooms_AttachesOccupancy(t *testing.T) {
	roomRepo := &mockRoomRepo{
		listFn: func(ctx context.Context, filter repository.RoomFilter) ([]models.Room, error) {
			return []models.Room{
				{ID: 1, Name: "Room 1", Capacity: 2},
				{ID: 2, Name: "Room 2", Capacity: 4},
			}, nil
		},
	}
	bookingRepo := &mockBookingRepo{
		countFn: func(ctx context.Context, tx *gorm.DB, roomID uint, status models.BookingStatus) (int64, error) {
			assert.Equal(t, models.StatusApproved, status, "only approved bookings count as occupants")
			if roomID == 1 {
				return 2, nil
			}
			return 0, nil
		},
	}

	svc := NewCatalogService(roomRepo, &mockTermRepo{}, bookingRepo)
	rooms, err := svc.ListRooms(context.Background(), repository.RoomFilter{})

	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, int64(2), rooms[0].Occupants)
	assert.Equal(t, int64(0), rooms[1].Occupants)
}

func TestListRooms_ForwardsFilter(t *testing.T) {
	var captured repository.RoomFilter
	roomRepo := &mockRoomRepo{
		listFn: func(ctx context.Context, filter repository.RoomFilter) ([]models.Room, error) {
			captured = filter
			return nil, nil
		},
	}

	svc := NewCatalogService(roomRepo, &mockTermRepo{}, &mockBookingRepo{})
	_, err := svc.ListRooms(context.Background(), repository.RoomFilter{
		Gender: "male", Type: "4pax", Cooling: "fan", Query: "building d",
	})

	require.NoError(t, err)
	assert.Equal(t, "male", captured.Gender)
	assert.Equal(t, "4pax", captured.Type)
	assert.Equal(t, "fan", captured.Cooling)
	assert.Equal(t, "building d", captured.Query)
}

func TestListTerms(t *testing.T) {
	termRepo := &mockTermRepo{
		findAllFn: func(ctx context.Context) ([]models.Term, error) {
			return []models.Term{{ID: "1", Code: "2/2025", Name: "Semester 2/2025"}}, nil
		},
	}

	svc := NewCatalogService(&mockRoomRepo{}, termRepo, &mockBookingRepo{})
	terms, err := svc.ListTerms(context.Background())

	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.Equal(t, "2/2025", terms[0].Code)
}
