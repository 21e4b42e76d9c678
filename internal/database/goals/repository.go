// Package goals provides database operations for yearly reading goals.
//
// # Usage
//
//	repo := goals.NewRepository(db)
//	goal, err := repo.GetByYear(2026)
package goals

import (
	"errors"

	"gorm.io/gorm"

	"booktrail/internal/entities"
)

// Repository handles all reading-goal database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new goals repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetByYear retrieves the goal for a year. Returns (nil, nil) when no goal
// has been set for that year.
func (r *Repository) GetByYear(year int) (*entities.ReadingGoal, error) {
	var goal entities.ReadingGoal
	err := r.db.Where("year = ?", year).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// Upsert creates or updates the goal for a year.
func (r *Repository) Upsert(year, targetBooks int) (*entities.ReadingGoal, error) {
	var goal entities.ReadingGoal
	result := r.db.Where("year = ?", year).First(&goal)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		goal = entities.ReadingGoal{
			Year:        year,
			TargetBooks: targetBooks,
		}
		if err := r.db.Create(&goal).Error; err != nil {
			return nil, err
		}
		return &goal, nil
	} else if result.Error != nil {
		return nil, result.Error
	}

	goal.TargetBooks = targetBooks
	if err := r.db.Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}
