package repository

import "github.com/CHANDANgig/Personalized-To-do-list-app/internal/task/domain"

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create persists a new task
	Create(task *domain.Task) error

	// FindByID finds a task by its ID; returns (nil, nil) when absent
	FindByID(id string) (*domain.Task, error)

	// FindByUserID returns the user's tasks newest-first
	FindByUserID(userID string) ([]*domain.Task, error)

	// Update persists the full task row (write-through)
	Update(task *domain.Task) error

	// Delete removes a task by ID; deleting an absent id is not an error
	Delete(id string) error
}
