package repositories

import (
	"github.com/bedrock/sor-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ServerRepository handles database operations for servers, including the
// two many-to-many link sets.
type ServerRepository struct {
	db *gorm.DB
}

// NewServerRepository creates a new server repository over the given
// handle.
func NewServerRepository(db *gorm.DB) *ServerRepository {
	return &ServerRepository{db: db}
}

func (r *ServerRepository) detailQuery() *gorm.DB {
	return r.db.
		Preload("Owner").
		Preload("Domain").
		Preload("Cluster").
		Preload("OperatingSystem").
		Preload("Environments").
		Preload("Labels")
}

// FindAll retrieves all servers with their relations, in store order.
func (r *ServerRepository) FindAll() ([]models.Server, error) {
	var servers []models.Server
	result := r.detailQuery().Find(&servers)
	return servers, result.Error
}

// FindByID retrieves a server with all its relations by id.
func (r *ServerRepository) FindByID(id uint) (models.Server, error) {
	var server models.Server
	result := r.detailQuery().First(&server, id)
	return server, notFound(result.Error)
}

// IPTaken reports whether a server other than excludeID already holds the
// given address. Pass excludeID zero when creating.
func (r *ServerRepository) IPTaken(ip string, excludeID uint) (bool, error) {
	var n int64
	err := r.db.Model(&models.Server{}).
		Where("ip_address = ? AND id <> ?", ip, excludeID).
		Count(&n).Error
	return n > 0, err
}

// CreateWithLinks inserts the server row, then attaches the given link
// sets, atomically. The row write precedes the links because the join rows
// need the server's id.
func (r *ServerRepository) CreateWithLinks(server *models.Server, links map[string][]uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(server).Error; err != nil {
			return err
		}
		return replaceLinks(tx, server, links)
	})
}

// UpdateWithLinks saves the server row once, then replaces each supplied
// link set wholesale, atomically. Link sets not supplied are left alone.
func (r *ServerRepository) UpdateWithLinks(server *models.Server, links map[string][]uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(server).Error; err != nil {
			return err
		}
		return replaceLinks(tx, server, links)
	})
}

func replaceLinks(tx *gorm.DB, server *models.Server, links map[string][]uint) error {
	for name, ids := range links {
		assoc := tx.Model(server).Association(name)
		if len(ids) == 0 {
			if err := assoc.Clear(); err != nil {
				return err
			}
			continue
		}
		switch name {
		case "Environments":
			environments := make([]models.Environment, len(ids))
			for i, id := range ids {
				environments[i] = models.Environment{ID: id}
			}
			if err := assoc.Replace(&environments); err != nil {
				return err
			}
		case "Labels":
			labels := make([]models.Label, len(ids))
			for i, id := range ids {
				labels[i] = models.Label{ID: id}
			}
			if err := assoc.Replace(&labels); err != nil {
				return err
			}
		}
	}
	return nil
}

// Delete removes a server along with its environment and label links.
func (r *ServerRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var server models.Server
		if err := tx.First(&server, id).Error; err != nil {
			return notFound(err)
		}
		if err := tx.Model(&server).Association("Environments").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&server).Association("Labels").Clear(); err != nil {
			return err
		}
		return tx.Delete(&server).Error
	})
}
