package usecase

import "github.com/CHANDANgig/Personalized-To-do-list-app/internal/task/domain"

// TaskUsecase defines the interface for task business logic.
//
// Mutations by id on an unknown id are silent no-ops returning
// (nil, nil), never errors. Every successful mutation is written
// through to the repository before the call returns.
type TaskUsecase interface {
	// Add creates a task from trimmed text. Text that trims empty is a
	// no-op returning (nil, nil).
	Add(userID, text, priority, category string) (*domain.Task, error)

	// Toggle flips Completed, stamping CompletedAt on the way up and
	// clearing it on the way down.
	Toggle(userID, id string) (*domain.Task, error)

	// Edit replaces the task text in place; timestamps are untouched.
	Edit(userID, id, newText string) (*domain.Task, error)

	// Delete removes the task; deleting an absent id is a no-op.
	Delete(userID, id string) error

	// List returns the user's tasks newest-first.
	List(userID string) ([]*domain.Task, error)

	// Search returns tasks whose text loosely matches the query.
	Search(userID, query string) ([]*domain.Task, error)
}

// Notifier pushes collection-change events to connected clients.
// *sse.Manager satisfies it.
type Notifier interface {
	Publish(userID, name string, payload interface{})
}
