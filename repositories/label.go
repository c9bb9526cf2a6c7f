package repositories

import (
	"github.com/bedrock/sor-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LabelRepository handles database operations for labels.
type LabelRepository struct {
	db *gorm.DB
}

// NewLabelRepository creates a new label repository over the given handle.
func NewLabelRepository(db *gorm.DB) *LabelRepository {
	return &LabelRepository{db: db}
}

// FindAll retrieves all labels in store order.
func (r *LabelRepository) FindAll() ([]models.Label, error) {
	var labels []models.Label
	result := r.db.Find(&labels)
	return labels, result.Error
}

// FindByID retrieves a label by its id.
func (r *LabelRepository) FindByID(id uint) (models.Label, error) {
	var label models.Label
	result := r.db.First(&label, id)
	return label, notFound(result.Error)
}

// Save inserts or updates the label row.
func (r *LabelRepository) Save(label *models.Label) error {
	return r.db.Omit(clause.Associations).Save(label).Error
}

// Delete removes a label along with its server links.
func (r *LabelRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var label models.Label
		if err := tx.First(&label, id).Error; err != nil {
			return notFound(err)
		}
		if err := tx.Model(&label).Association("Servers").Clear(); err != nil {
			return err
		}
		return tx.Delete(&label).Error
	})
}
