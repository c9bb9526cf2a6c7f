package repositories

import (
	"github.com/bedrock/sor-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ClusterRepository handles database operations for clusters.
type ClusterRepository struct {
	db *gorm.DB
}

// NewClusterRepository creates a new cluster repository over the given
// handle.
func NewClusterRepository(db *gorm.DB) *ClusterRepository {
	return &ClusterRepository{db: db}
}

// FindAll retrieves all clusters in store order.
func (r *ClusterRepository) FindAll() ([]models.Cluster, error) {
	var clusters []models.Cluster
	result := r.db.Find(&clusters)
	return clusters, result.Error
}

// FindByID retrieves a cluster by its id.
func (r *ClusterRepository) FindByID(id uint) (models.Cluster, error) {
	var cluster models.Cluster
	result := r.db.First(&cluster, id)
	return cluster, notFound(result.Error)
}

// Save inserts or updates the cluster row.
func (r *ClusterRepository) Save(cluster *models.Cluster) error {
	return r.db.Omit(clause.Associations).Save(cluster).Error
}

// Delete refuses to remove a cluster that servers still reference.
func (r *ClusterRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var cluster models.Cluster
		if err := tx.First(&cluster, id).Error; err != nil {
			return notFound(err)
		}
		check := referenceCheck{&models.Server{}, "cluster_id"}
		if err := check.blocked(tx, id); err != nil {
			return err
		}
		return tx.Delete(&cluster).Error
	})
}
