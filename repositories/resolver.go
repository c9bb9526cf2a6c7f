package repositories

import (
	"errors"
	"fmt"

	"github.com/bedrock/sor-api/mapping"
	"github.com/bedrock/sor-api/models"
	"gorm.io/gorm"
)

// NameResolver resolves unique names to rows for the mapping codec.
type NameResolver struct {
	db *gorm.DB
}

// NewNameResolver creates a name resolver over the given database handle.
func NewNameResolver(db *gorm.DB) *NameResolver {
	return &NameResolver{db: db}
}

// ResolveName looks a row of the given kind up by exact name match.
func (r *NameResolver) ResolveName(kind mapping.Kind, name string) (mapping.Ref, error) {
	var model any
	switch kind {
	case mapping.KindLabel:
		model = &models.Label{}
	case mapping.KindOwner:
		model = &models.Owner{}
	case mapping.KindCluster:
		model = &models.Cluster{}
	case mapping.KindEnvironment:
		model = &models.Environment{}
	case mapping.KindDomain:
		model = &models.Domain{}
	case mapping.KindOperatingSystem:
		model = &models.OperatingSystem{}
	case mapping.KindServer:
		model = &models.Server{}
	case mapping.KindProduct:
		model = &models.Product{}
	default:
		return mapping.Ref{}, fmt.Errorf("unknown entity kind %q", kind)
	}

	var row struct{ ID uint }
	result := r.db.Model(model).Select("id").Where("name = ?", name).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return mapping.Ref{}, mapping.ErrNameNotFound
		}
		return mapping.Ref{}, result.Error
	}
	return mapping.Ref{ID: row.ID, Name: name}, nil
}
