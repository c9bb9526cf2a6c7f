package repositories

import (
	"github.com/bedrock/sor-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OwnerRepository handles database operations for owners.
type OwnerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository creates a new owner repository over the given handle.
func NewOwnerRepository(db *gorm.DB) *OwnerRepository {
	return &OwnerRepository{db: db}
}

// FindAll retrieves all owners in store order.
func (r *OwnerRepository) FindAll() ([]models.Owner, error) {
	var owners []models.Owner
	result := r.db.Find(&owners)
	return owners, result.Error
}

// FindByID retrieves an owner by its id.
func (r *OwnerRepository) FindByID(id uint) (models.Owner, error) {
	var owner models.Owner
	result := r.db.First(&owner, id)
	return owner, notFound(result.Error)
}

// Save inserts or updates the owner row.
func (r *OwnerRepository) Save(owner *models.Owner) error {
	return r.db.Omit(clause.Associations).Save(owner).Error
}

// Delete refuses to remove an owner that domains, servers or products still
// reference, leaving everything unchanged in that case.
func (r *OwnerRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var owner models.Owner
		if err := tx.First(&owner, id).Error; err != nil {
			return notFound(err)
		}
		checks := []referenceCheck{
			{&models.Domain{}, "owner_id"},
			{&models.Server{}, "owner_id"},
			{&models.Product{}, "owner_id"},
		}
		for _, check := range checks {
			if err := check.blocked(tx, id); err != nil {
				return err
			}
		}
		return tx.Delete(&owner).Error
	})
}
