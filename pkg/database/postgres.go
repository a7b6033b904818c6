package database

import (
	"log"
	"time"

	"github.com/sittha/dorm-booking/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Term ids on bookings are opaque: a booking may reference a term the
		// catalog has never seen, so no FK constraints are created.
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Term{},
		&models.Booking{},
		&models.BookingStatusEvent{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Partial unique index: at most one non-rejected booking per student and
	// term, even under concurrent submissions.
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_booking_active_term
		ON bookings (user_id, term_id)
		WHERE status <> 'rejected'
	`)

	return db
}
