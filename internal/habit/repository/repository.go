package repository

import "github.com/CHANDANgig/Personalized-To-do-list-app/internal/habit/domain"

// HabitRepository defines the interface for habit data access
type HabitRepository interface {
	// Create persists a new habit
	Create(habit *domain.Habit) error

	// FindByID finds a habit by its ID; returns (nil, nil) when absent
	FindByID(id string) (*domain.Habit, error)

	// FindByUserID returns the user's habits in insertion order
	FindByUserID(userID string) ([]*domain.Habit, error)

	// Update persists the full habit row (write-through)
	Update(habit *domain.Habit) error

	// Delete removes a habit by ID; deleting an absent id is not an error
	Delete(id string) error
}
