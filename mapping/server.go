package mapping

import "github.com/bedrock/sor-api/models"

// ServerStore persists servers for the server mapper. Implementations
// apply the row write and the link replacements atomically.
type ServerStore interface {
	CreateWithLinks(server *models.Server, links map[string][]uint) error
	UpdateWithLinks(server *models.Server, links map[string][]uint) error
	IPTaken(ip string, excludeID uint) (bool, error)
}

var (
	serverOwnerField        = SingleRef{Field: "owner", Target: KindOwner}
	serverDomainField       = SingleRef{Field: "domain", Target: KindDomain}
	serverClusterField      = SingleRef{Field: "cluster", Target: KindCluster}
	serverOSField           = SingleRef{Field: "operating_system", Target: KindOperatingSystem}
	serverEnvironmentsField = MultiRef{Field: "environments", Target: KindEnvironment}
	serverLabelsField       = MultiRef{Field: "labels", Target: KindLabel}
)

// ServerMapper converts servers to and from their external mapping. This is
// the richest mapper: four single references, two link sets, and the
// deferred many-to-many create/update split.
type ServerMapper struct {
	resolver Resolver
	store    ServerStore
}

// NewServerMapper creates a server mapper over the given store.
func NewServerMapper(resolver Resolver, store ServerStore) *ServerMapper {
	return &ServerMapper{resolver: resolver, store: store}
}

// ToExternal renders a server as its flat external mapping. All relations
// must be loaded. Relation fields carry names, enum fields their stored
// codes, and fqdn is computed on the way out.
func (m *ServerMapper) ToExternal(s models.Server) map[string]any {
	out := map[string]any{
		"id":               s.ID,
		"name":             s.Name,
		"ip_address":       s.IPAddress,
		"category":         string(s.Category),
		"owner":            serverOwnerField.ToExternal(s.Owner),
		"domain":           serverDomainField.ToExternal(s.Domain),
		"cluster":          nil,
		"environments":     serverEnvironmentsField.ToExternal(Nameds(s.Environments)),
		"operating_system": serverOSField.ToExternal(s.OperatingSystem),
		"labels":           serverLabelsField.ToExternal(Nameds(s.Labels)),
		"description":      s.Description,
		"status":           string(s.Status),
		"fqdn":             s.FQDN(),
	}
	if s.Cluster != nil {
		out["cluster"] = serverClusterField.ToExternal(*s.Cluster)
	}
	return out
}

func (m *ServerMapper) validate(p map[string]any, existingID uint) (map[string]any, FieldErrors, error) {
	errs := FieldErrors{}
	resolved := map[string]any{}

	if err := uniqueName(m.resolver, KindServer, p, errs, resolved, 25, existingID); err != nil {
		return nil, nil, err
	}
	if ip, ok := requiredIP(p, errs, "ip_address"); ok {
		taken, err := m.store.IPTaken(ip, existingID)
		if err != nil {
			return nil, nil, err
		}
		if taken {
			errs.Add("ip_address", msgUnique)
		} else {
			resolved["ip_address"] = ip
		}
	}
	if category, ok := enumString(p, errs, "category", models.ServerCategoryChoices(), false); ok {
		resolved["category"] = models.ServerCategory(category)
	}
	if err := resolveOne(m.resolver, p, errs, resolved, serverOwnerField, true); err != nil {
		return nil, nil, err
	}
	if err := resolveOne(m.resolver, p, errs, resolved, serverDomainField, true); err != nil {
		return nil, nil, err
	}
	// The cluster is the one nullable reference: an explicit null detaches
	// the server from its cluster.
	if v, ok := p["cluster"]; ok {
		if v == nil {
			resolved["cluster"] = nil
		} else {
			ref, err := serverClusterField.FromExternal(m.resolver, v)
			if cErr := collect(errs, "cluster", err); cErr != nil {
				return nil, nil, cErr
			} else if err == nil {
				resolved["cluster"] = ref
			}
		}
	}
	if err := resolveMany(m.resolver, p, errs, resolved, serverEnvironmentsField, true); err != nil {
		return nil, nil, err
	}
	if err := resolveOne(m.resolver, p, errs, resolved, serverOSField, true); err != nil {
		return nil, nil, err
	}
	if err := resolveMany(m.resolver, p, errs, resolved, serverLabelsField, false); err != nil {
		return nil, nil, err
	}
	if desc, ok := optionalString(p, errs, "description", 0); ok {
		resolved["description"] = desc
	}
	if status, ok := enumString(p, errs, "status", models.StatusChoices(), false); ok {
		resolved["status"] = models.Status(status)
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}
	return resolved, nil, nil
}

// Create validates the payload and, on full success, inserts the server row
// with its scalar and single-reference fields, then attaches the deferred
// link sets. Nothing is persisted when any field fails.
func (m *ServerMapper) Create(p map[string]any) (models.Server, FieldErrors, error) {
	resolved, errs, err := m.validate(p, 0)
	if err != nil || len(errs) > 0 {
		return models.Server{}, errs, err
	}
	direct, deferred := SplitRelations(KindServer, resolved)
	server := models.Server{Category: models.ServerCategoryWeb, Status: models.StatusInactive}
	applyServer(&server, direct)
	if err := m.store.CreateWithLinks(&server, linkIDs(KindServer, deferred)); err != nil {
		return models.Server{}, nil, err
	}
	return server, nil, nil
}

// Update assigns every directly assignable payload field onto the existing
// server, persists it once, then replaces each link set present in the
// payload wholesale. Links absent from a supplied list are dropped.
func (m *ServerMapper) Update(p map[string]any, server models.Server) (models.Server, FieldErrors, error) {
	resolved, errs, err := m.validate(p, server.ID)
	if err != nil || len(errs) > 0 {
		return models.Server{}, errs, err
	}
	direct, deferred := SplitRelations(KindServer, resolved)
	applyServer(&server, direct)
	if err := m.store.UpdateWithLinks(&server, linkIDs(KindServer, deferred)); err != nil {
		return models.Server{}, nil, err
	}
	return server, nil, nil
}

func applyServer(s *models.Server, values map[string]any) {
	for field, v := range values {
		switch field {
		case "name":
			s.Name = v.(string)
		case "ip_address":
			s.IPAddress = v.(string)
		case "category":
			s.Category = v.(models.ServerCategory)
		case "owner":
			s.OwnerID = v.(Ref).ID
		case "domain":
			s.DomainID = v.(Ref).ID
		case "cluster":
			if v == nil {
				s.ClusterID = nil
				s.Cluster = nil
			} else {
				id := v.(Ref).ID
				s.ClusterID = &id
			}
		case "operating_system":
			s.OperatingSystemID = v.(Ref).ID
		case "description":
			s.Description = v.(string)
		case "status":
			s.Status = v.(models.Status)
		}
	}
}
