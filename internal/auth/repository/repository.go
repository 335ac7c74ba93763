package repository

import authdomain "github.com/CHANDANgig/Personalized-To-do-list-app/internal/auth/domain"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user
	Create(user *authdomain.User) error

	// FindByEmail finds a user by email; returns (nil, nil) when absent
	FindByEmail(email string) (*authdomain.User, error)

	// FindByID finds a user by id; returns (nil, nil) when absent
	FindByID(id string) (*authdomain.User, error)

	// Update persists changes to an existing user
	Update(user *authdomain.User) error
}
