package database

import (
	"fmt"
	"log"

	"github.com/sittha/dorm-booking/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedBuilding struct {
	id     string
	name   string
	gender models.GenderPolicy
}

// Seed fills an empty database with the bootstrap admin account, the term
// catalog, and rooms spread across four gender-assigned buildings.
func Seed(db *gorm.DB, adminEmail, adminPassword string) error {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}
		admin := models.User{
			Role:         models.RoleAdmin,
			StudentID:    "A0000000",
			Name:         "Admin",
			Email:        adminEmail,
			Phone:        "000-000-0000",
			PasswordHash: string(hash),
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
		log.Printf("[Seed] created admin account %s", adminEmail)
	}

	var termCount int64
	db.Model(&models.Term{}).Count(&termCount)
	if termCount == 0 {
		terms := []models.Term{
			{ID: "1", Code: "2/2025", Name: "Semester 2/2025"},
			{ID: "2", Code: "1/2026", Name: "Semester 1/2026"},
		}
		if err := db.Create(&terms).Error; err != nil {
			return fmt.Errorf("seed terms: %w", err)
		}
	}

	var roomCount int64
	db.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		buildings := []seedBuilding{
			{id: "B1", name: "Building A (Female)", gender: models.GenderFemale},
			{id: "B2", name: "Building B (Male)", gender: models.GenderMale},
			{id: "B3", name: "Building C (Female)", gender: models.GenderFemale},
			{id: "B4", name: "Building D (Male)", gender: models.GenderMale},
		}

		var rooms []models.Room
		for _, b := range buildings {
			for i := 1; i <= 6; i++ {
				capacity := 2
				roomType := models.RoomTwoPax
				if i%2 == 0 {
					capacity = 4
					roomType = models.RoomFourPax
				}
				cooling := models.CoolingAir
				price := 4200.0
				if i%3 == 0 {
					cooling = models.CoolingFan
					price = 3200.0
				}
				rooms = append(rooms, models.Room{
					DormID:     b.id,
					DormName:   b.name,
					Gender:     b.gender,
					Name:       fmt.Sprintf("Room %d", i),
					Type:       roomType,
					Capacity:   capacity,
					Cooling:    cooling,
					PriceMonth: price,
				})
			}
		}
		if err := db.Create(&rooms).Error; err != nil {
			return fmt.Errorf("seed rooms: %w", err)
		}
		log.Printf("[Seed] created %d rooms", len(rooms))
	}

	return nil
}
