package store

import "github.com/odmforest/treesurvey/pkg/model"

// UsersStore abstracts user account storage.
type UsersStore interface {
	// CreateUser inserts a new user and fills in its generated id.
	// Returns ErrConflict if the username or email is already taken.
	CreateUser(user *model.User) error

	// FindUserByEmail retrieves a user by exact email match.
	// Returns ErrNotFound if no such user exists.
	FindUserByEmail(email string) (*model.User, error)
}
