package mapping

import "github.com/bedrock/sor-api/models"

// ClusterStore persists clusters for the cluster mapper.
type ClusterStore interface {
	Save(cluster *models.Cluster) error
}

// ClusterMapper converts clusters to and from their external mapping.
type ClusterMapper struct {
	resolver Resolver
	store    ClusterStore
}

// NewClusterMapper creates a cluster mapper over the given store.
func NewClusterMapper(resolver Resolver, store ClusterStore) *ClusterMapper {
	return &ClusterMapper{resolver: resolver, store: store}
}

// ToExternal renders a cluster as its flat external mapping.
func (m *ClusterMapper) ToExternal(c models.Cluster) map[string]any {
	return map[string]any{
		"id":          c.ID,
		"name":        c.Name,
		"description": c.Description,
	}
}

func (m *ClusterMapper) validate(p map[string]any, existingID uint) (map[string]any, FieldErrors, error) {
	errs := FieldErrors{}
	resolved := map[string]any{}

	if err := uniqueName(m.resolver, KindCluster, p, errs, resolved, 25, existingID); err != nil {
		return nil, nil, err
	}
	if desc, ok := optionalString(p, errs, "description", 0); ok {
		resolved["description"] = desc
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}
	return resolved, nil, nil
}

// Create validates the payload and inserts a new cluster on full success.
func (m *ClusterMapper) Create(p map[string]any) (models.Cluster, FieldErrors, error) {
	resolved, errs, err := m.validate(p, 0)
	if err != nil || len(errs) > 0 {
		return models.Cluster{}, errs, err
	}
	direct, _ := SplitRelations(KindCluster, resolved)
	var cluster models.Cluster
	applyCluster(&cluster, direct)
	if err := m.store.Save(&cluster); err != nil {
		return models.Cluster{}, nil, err
	}
	return cluster, nil, nil
}

// Update assigns every validated payload field onto the existing cluster
// and persists it once.
func (m *ClusterMapper) Update(p map[string]any, cluster models.Cluster) (models.Cluster, FieldErrors, error) {
	resolved, errs, err := m.validate(p, cluster.ID)
	if err != nil || len(errs) > 0 {
		return models.Cluster{}, errs, err
	}
	direct, _ := SplitRelations(KindCluster, resolved)
	applyCluster(&cluster, direct)
	if err := m.store.Save(&cluster); err != nil {
		return models.Cluster{}, nil, err
	}
	return cluster, nil, nil
}

func applyCluster(c *models.Cluster, values map[string]any) {
	for field, v := range values {
		switch field {
		case "name":
			c.Name = v.(string)
		case "description":
			c.Description = v.(string)
		}
	}
}
