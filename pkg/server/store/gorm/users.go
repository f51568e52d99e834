package gorm

import (
	"gorm.io/gorm"

	"github.com/odmforest/treesurvey/pkg/model"
	"github.com/odmforest/treesurvey/pkg/server/store"
)

// Ensure UsersStore implements store.UsersStore
var _ store.UsersStore = (*UsersStore)(nil)

// UsersStore implements store.UsersStore using GORM
type UsersStore struct {
	db *gorm.DB
}

// NewUsersStore creates a new UsersStore
func NewUsersStore(db *gorm.DB) *UsersStore {
	return &UsersStore{db: db}
}

// CreateUser inserts a user, mapping unique violations on username/email
// to store.ErrConflict.
func (s *UsersStore) CreateUser(user *model.User) error {
	return translate(s.db.Create(user).Error)
}

// FindUserByEmail retrieves a user by exact email match.
func (s *UsersStore) FindUserByEmail(email string) (*model.User, error) {
	var user model.User
	tx := s.db.Where("email = ?", email).First(&user)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return &user, nil
}
