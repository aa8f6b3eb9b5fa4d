package repository

import (
	"errors"

	"github.com/payflow-dev/payflow/models"
	"github.com/payflow-dev/payflow/services"

	"gorm.io/gorm"
)

// GormUserRepository is the Postgres-backed credential store.
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository on the given database.
func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Create inserts a new user. The unique index on username turns a
// concurrent duplicate into ErrDuplicateUser.
func (r *GormUserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return services.ErrDuplicateUser
		}
		return err
	}
	return nil
}

// FindByUsername loads a user by username or returns ErrUserNotFound.
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
