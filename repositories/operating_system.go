package repositories

import (
	"github.com/bedrock/sor-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OperatingSystemRepository handles database operations for operating
// systems.
type OperatingSystemRepository struct {
	db *gorm.DB
}

// NewOperatingSystemRepository creates a new operating system repository
// over the given handle.
func NewOperatingSystemRepository(db *gorm.DB) *OperatingSystemRepository {
	return &OperatingSystemRepository{db: db}
}

// FindAll retrieves all operating systems in store order.
func (r *OperatingSystemRepository) FindAll() ([]models.OperatingSystem, error) {
	var systems []models.OperatingSystem
	result := r.db.Find(&systems)
	return systems, result.Error
}

// FindByID retrieves an operating system by its id.
func (r *OperatingSystemRepository) FindByID(id uint) (models.OperatingSystem, error) {
	var os models.OperatingSystem
	result := r.db.First(&os, id)
	return os, notFound(result.Error)
}

// Save inserts or updates the operating system row.
func (r *OperatingSystemRepository) Save(os *models.OperatingSystem) error {
	return r.db.Omit(clause.Associations).Save(os).Error
}

// Delete refuses to remove an operating system that servers still
// reference.
func (r *OperatingSystemRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var os models.OperatingSystem
		if err := tx.First(&os, id).Error; err != nil {
			return notFound(err)
		}
		check := referenceCheck{&models.Server{}, "operating_system_id"}
		if err := check.blocked(tx, id); err != nil {
			return err
		}
		return tx.Delete(&os).Error
	})
}
