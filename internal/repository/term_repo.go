package repository

import (
	"context"

	"github.com/sittha/dorm-booking/internal/models"
	"gorm.io/gorm"
)

type TermRepository interface {
	FindByID(ctx context.Context, id string) (*models.Term, error)
	FindAll(ctx context.Context) ([]models.Term, error)
}

type termRepository struct {
	db *gorm.DB
}

func NewTermRepository(db *gorm.DB) TermRepository {
	return &termRepository{db: db}
}

func (r *termRepository) FindByID(ctx context.Context, id string) (*models.Term, error) {
	var term models.Term
	if err := r.db.WithContext(ctx).First(&term, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &term, nil
}

func (r *termRepository) FindAll(ctx context.Context) ([]models.Term, error) {
	var terms []models.Term
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&terms).Error; err != nil {
		return nil, err
	}
	return terms, nil
}
