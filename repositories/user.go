package repositories

import (
	"github.com/bedrock/sor-api/models"
	"gorm.io/gorm"
)

// UserRepository handles database operations for API users.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository over the given handle.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByUsername retrieves a user by username.
func (r *UserRepository) FindByUsername(username string) (models.User, error) {
	var user models.User
	result := r.db.Where("username = ?", username).First(&user)
	return user, notFound(result.Error)
}

// Create inserts a new user.
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// Save updates an existing user.
func (r *UserRepository) Save(user *models.User) error {
	return r.db.Save(user).Error
}
