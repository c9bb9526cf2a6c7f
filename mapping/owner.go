package mapping

import "github.com/bedrock/sor-api/models"

// OwnerStore persists owners for the owner mapper.
type OwnerStore interface {
	Save(owner *models.Owner) error
}

// OwnerMapper converts owners to and from their external mapping.
type OwnerMapper struct {
	resolver Resolver
	store    OwnerStore
}

// NewOwnerMapper creates an owner mapper over the given store.
func NewOwnerMapper(resolver Resolver, store OwnerStore) *OwnerMapper {
	return &OwnerMapper{resolver: resolver, store: store}
}

// ToExternal renders an owner as its flat external mapping.
func (m *OwnerMapper) ToExternal(o models.Owner) map[string]any {
	return map[string]any{
		"id":          o.ID,
		"name":        o.Name,
		"email":       o.Email,
		"description": o.Description,
	}
}

func (m *OwnerMapper) validate(p map[string]any, existingID uint) (map[string]any, FieldErrors, error) {
	errs := FieldErrors{}
	resolved := map[string]any{}

	if err := uniqueName(m.resolver, KindOwner, p, errs, resolved, 25, existingID); err != nil {
		return nil, nil, err
	}
	if email, ok := requiredEmail(p, errs, "email"); ok {
		resolved["email"] = email
	}
	if desc, ok := optionalString(p, errs, "description", 0); ok {
		resolved["description"] = desc
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}
	return resolved, nil, nil
}

// Create validates the payload and inserts a new owner on full success.
func (m *OwnerMapper) Create(p map[string]any) (models.Owner, FieldErrors, error) {
	resolved, errs, err := m.validate(p, 0)
	if err != nil || len(errs) > 0 {
		return models.Owner{}, errs, err
	}
	direct, _ := SplitRelations(KindOwner, resolved)
	var owner models.Owner
	applyOwner(&owner, direct)
	if err := m.store.Save(&owner); err != nil {
		return models.Owner{}, nil, err
	}
	return owner, nil, nil
}

// Update assigns every validated payload field onto the existing owner and
// persists it once.
func (m *OwnerMapper) Update(p map[string]any, owner models.Owner) (models.Owner, FieldErrors, error) {
	resolved, errs, err := m.validate(p, owner.ID)
	if err != nil || len(errs) > 0 {
		return models.Owner{}, errs, err
	}
	direct, _ := SplitRelations(KindOwner, resolved)
	applyOwner(&owner, direct)
	if err := m.store.Save(&owner); err != nil {
		return models.Owner{}, nil, err
	}
	return owner, nil, nil
}

func applyOwner(o *models.Owner, values map[string]any) {
	for field, v := range values {
		switch field {
		case "name":
			o.Name = v.(string)
		case "email":
			o.Email = v.(string)
		case "description":
			o.Description = v.(string)
		}
	}
}
