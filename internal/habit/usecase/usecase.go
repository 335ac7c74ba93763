package usecase

import "github.com/CHANDANgig/Personalized-To-do-list-app/internal/habit/domain"

// HabitUsecase defines the interface for habit business logic.
// Mutations on unknown ids are silent no-ops returning (nil, nil).
type HabitUsecase interface {
	// Add creates a habit from a trimmed name. A name that trims empty
	// is a no-op returning (nil, nil). Goals <= 0 fall back to the
	// default monthly target.
	Add(userID, name string, goal int, category string) (*domain.Habit, error)

	// ToggleDay marks or unmarks a day of the current month. Toggling
	// the same day twice restores the prior state.
	ToggleDay(userID, id string, day int) (*domain.Habit, error)

	// Edit renames the habit in place.
	Edit(userID, id, newName string) (*domain.Habit, error)

	// Delete removes the habit; deleting an absent id is a no-op.
	Delete(userID, id string) error

	// List returns the user's habits in insertion order.
	List(userID string) ([]*domain.Habit, error)
}

// Notifier pushes collection-change events to connected clients.
type Notifier interface {
	Publish(userID, name string, payload interface{})
}
