package models

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Role         Role      `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	StudentID    string    `gorm:"type:varchar(40);not null;uniqueIndex" json:"student_id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"not null;uniqueIndex" json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
