package mapping

import "github.com/bedrock/sor-api/models"

// DomainStore persists domains for the domain mapper.
type DomainStore interface {
	Save(domain *models.Domain) error
}

var domainOwnerField = SingleRef{Field: "owner", Target: KindOwner}

// DomainMapper converts domains to and from their external mapping. The
// owner relation is addressed by the owner's unique name.
type DomainMapper struct {
	resolver Resolver
	store    DomainStore
}

// NewDomainMapper creates a domain mapper over the given store.
func NewDomainMapper(resolver Resolver, store DomainStore) *DomainMapper {
	return &DomainMapper{resolver: resolver, store: store}
}

// ToExternal renders a domain as its flat external mapping. The owner
// relation must be loaded.
func (m *DomainMapper) ToExternal(d models.Domain) map[string]any {
	return map[string]any{
		"id":          d.ID,
		"name":        d.Name,
		"location":    d.Location,
		"owner":       domainOwnerField.ToExternal(d.Owner),
		"description": d.Description,
		"status":      string(d.Status),
	}
}

func (m *DomainMapper) validate(p map[string]any, existingID uint) (map[string]any, FieldErrors, error) {
	errs := FieldErrors{}
	resolved := map[string]any{}

	if err := uniqueName(m.resolver, KindDomain, p, errs, resolved, 253, existingID); err != nil {
		return nil, nil, err
	}
	if location, ok := optionalString(p, errs, "location", 50); ok {
		resolved["location"] = location
	}
	if err := resolveOne(m.resolver, p, errs, resolved, domainOwnerField, true); err != nil {
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

// Create validates the payload and inserts a new domain on full success.
// The status defaults to ACTIVE when absent.
func (m *DomainMapper) Create(p map[string]any) (models.Domain, FieldErrors, error) {
	resolved, errs, err := m.validate(p, 0)
	if err != nil || len(errs) > 0 {
		return models.Domain{}, errs, err
	}
	direct, _ := SplitRelations(KindDomain, resolved)
	domain := models.Domain{Status: models.StatusActive}
	applyDomain(&domain, direct)
	if err := m.store.Save(&domain); err != nil {
		return models.Domain{}, nil, err
	}
	return domain, nil, nil
}

// Update assigns every validated payload field onto the existing domain and
// persists it once.
func (m *DomainMapper) Update(p map[string]any, domain models.Domain) (models.Domain, FieldErrors, error) {
	resolved, errs, err := m.validate(p, domain.ID)
	if err != nil || len(errs) > 0 {
		return models.Domain{}, errs, err
	}
	direct, _ := SplitRelations(KindDomain, resolved)
	applyDomain(&domain, direct)
	if err := m.store.Save(&domain); err != nil {
		return models.Domain{}, nil, err
	}
	return domain, nil, nil
}

func applyDomain(d *models.Domain, values map[string]any) {
	for field, v := range values {
		switch field {
		case "name":
			d.Name = v.(string)
		case "location":
			d.Location = v.(string)
		case "owner":
			d.OwnerID = v.(Ref).ID
		case "description":
			d.Description = v.(string)
		case "status":
			d.Status = v.(models.Status)
		}
	}
}
