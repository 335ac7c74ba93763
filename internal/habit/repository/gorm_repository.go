package repository

import (
	"errors"

	"github.com/CHANDANgig/Personalized-To-do-list-app/internal/habit/domain"

	"gorm.io/gorm"
)

// gormHabitRepository implements HabitRepository using GORM
type gormHabitRepository struct {
	db *gorm.DB
}

// NewGormHabitRepository creates a new GORM-based HabitRepository
func NewGormHabitRepository(db *gorm.DB) HabitRepository {
	return &gormHabitRepository{db: db}
}

func (r *gormHabitRepository) Create(habit *domain.Habit) error {
	return r.db.Create(habit).Error
}

func (r *gormHabitRepository) FindByID(id string) (*domain.Habit, error) {
	var habit domain.Habit
	err := r.db.Where("id = ?", id).First(&habit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &habit, nil
}

func (r *gormHabitRepository) FindByUserID(userID string) ([]*domain.Habit, error) {
	var habits []*domain.Habit
	err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC").Find(&habits).Error
	return habits, err
}

func (r *gormHabitRepository) Update(habit *domain.Habit) error {
	return r.db.Save(habit).Error
}

func (r *gormHabitRepository) Delete(id string) error {
	return r.db.Delete(&domain.Habit{}, "id = ?", id).Error
}
