package repositories

import (
	"github.com/bedrock/sor-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DomainRepository handles database operations for domains.
type DomainRepository struct {
	db *gorm.DB
}

// NewDomainRepository creates a new domain repository over the given handle.
func NewDomainRepository(db *gorm.DB) *DomainRepository {
	return &DomainRepository{db: db}
}

// FindAll retrieves all domains with their owners, in store order.
func (r *DomainRepository) FindAll() ([]models.Domain, error) {
	var domains []models.Domain
	result := r.db.Preload("Owner").Find(&domains)
	return domains, result.Error
}

// FindByID retrieves a domain with its owner by id.
func (r *DomainRepository) FindByID(id uint) (models.Domain, error) {
	var domain models.Domain
	result := r.db.Preload("Owner").First(&domain, id)
	return domain, notFound(result.Error)
}

// Save inserts or updates the domain row.
func (r *DomainRepository) Save(domain *models.Domain) error {
	return r.db.Omit(clause.Associations).Save(domain).Error
}

// Delete refuses to remove a domain that servers still reference.
func (r *DomainRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var domain models.Domain
		if err := tx.First(&domain, id).Error; err != nil {
			return notFound(err)
		}
		check := referenceCheck{&models.Server{}, "domain_id"}
		if err := check.blocked(tx, id); err != nil {
			return err
		}
		return tx.Delete(&domain).Error
	})
}
