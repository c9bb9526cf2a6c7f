package repositories

import (
	"github.com/bedrock/sor-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EnvironmentRepository handles database operations for environments.
type EnvironmentRepository struct {
	db *gorm.DB
}

// NewEnvironmentRepository creates a new environment repository over the
// given handle.
func NewEnvironmentRepository(db *gorm.DB) *EnvironmentRepository {
	return &EnvironmentRepository{db: db}
}

// FindAll retrieves all environments in store order.
func (r *EnvironmentRepository) FindAll() ([]models.Environment, error) {
	var environments []models.Environment
	result := r.db.Find(&environments)
	return environments, result.Error
}

// FindByID retrieves an environment by its id.
func (r *EnvironmentRepository) FindByID(id uint) (models.Environment, error) {
	var environment models.Environment
	result := r.db.First(&environment, id)
	return environment, notFound(result.Error)
}

// Save inserts or updates the environment row.
func (r *EnvironmentRepository) Save(environment *models.Environment) error {
	return r.db.Omit(clause.Associations).Save(environment).Error
}

// Delete removes an environment along with its server links.
func (r *EnvironmentRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var environment models.Environment
		if err := tx.First(&environment, id).Error; err != nil {
			return notFound(err)
		}
		if err := tx.Model(&environment).Association("Servers").Clear(); err != nil {
			return err
		}
		return tx.Delete(&environment).Error
	})
}
