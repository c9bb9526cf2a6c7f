package repositories

import (
	"github.com/bedrock/sor-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductRepository handles database operations for products.
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository over the given
// handle.
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// FindAll retrieves all products with their owners, in store order.
func (r *ProductRepository) FindAll() ([]models.Product, error) {
	var products []models.Product
	result := r.db.Preload("Owner").Find(&products)
	return products, result.Error
}

// FindByID retrieves a product with its owner by id.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var product models.Product
	result := r.db.Preload("Owner").First(&product, id)
	return product, notFound(result.Error)
}

// Save inserts or updates the product row.
func (r *ProductRepository) Save(product *models.Product) error {
	return r.db.Omit(clause.Associations).Save(product).Error
}

// Delete removes a product. Nothing references products, so no protection
// applies.
func (r *ProductRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
