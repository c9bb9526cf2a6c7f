package mapping

import "github.com/bedrock/sor-api/models"

// EnvironmentStore persists environments for the environment mapper.
type EnvironmentStore interface {
	Save(environment *models.Environment) error
}

// EnvironmentMapper converts environments to and from their external mapping.
type EnvironmentMapper struct {
	resolver Resolver
	store    EnvironmentStore
}

// NewEnvironmentMapper creates an environment mapper over the given store.
func NewEnvironmentMapper(resolver Resolver, store EnvironmentStore) *EnvironmentMapper {
	return &EnvironmentMapper{resolver: resolver, store: store}
}

// ToExternal renders an environment as its flat external mapping. The
// category is emitted as its stored code.
func (m *EnvironmentMapper) ToExternal(e models.Environment) map[string]any {
	return map[string]any{
		"id":          e.ID,
		"name":        e.Name,
		"category":    string(e.Category),
		"description": e.Description,
	}
}

func (m *EnvironmentMapper) validate(p map[string]any, existingID uint) (map[string]any, FieldErrors, error) {
	errs := FieldErrors{}
	resolved := map[string]any{}

	if err := uniqueName(m.resolver, KindEnvironment, p, errs, resolved, 25, existingID); err != nil {
		return nil, nil, err
	}
	if category, ok := enumString(p, errs, "category", models.EnvironmentCategoryChoices(), false); ok {
		resolved["category"] = models.EnvironmentCategory(category)
	}
	if desc, ok := optionalString(p, errs, "description", 0); ok {
		resolved["description"] = desc
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}
	return resolved, nil, nil
}

// Create validates the payload and inserts a new environment on full
// success. The category defaults to DEV when absent.
func (m *EnvironmentMapper) Create(p map[string]any) (models.Environment, FieldErrors, error) {
	resolved, errs, err := m.validate(p, 0)
	if err != nil || len(errs) > 0 {
		return models.Environment{}, errs, err
	}
	direct, _ := SplitRelations(KindEnvironment, resolved)
	environment := models.Environment{Category: models.EnvironmentDev}
	applyEnvironment(&environment, direct)
	if err := m.store.Save(&environment); err != nil {
		return models.Environment{}, nil, err
	}
	return environment, nil, nil
}

// Update assigns every validated payload field onto the existing
// environment and persists it once.
func (m *EnvironmentMapper) Update(p map[string]any, environment models.Environment) (models.Environment, FieldErrors, error) {
	resolved, errs, err := m.validate(p, environment.ID)
	if err != nil || len(errs) > 0 {
		return models.Environment{}, errs, err
	}
	direct, _ := SplitRelations(KindEnvironment, resolved)
	applyEnvironment(&environment, direct)
	if err := m.store.Save(&environment); err != nil {
		return models.Environment{}, nil, err
	}
	return environment, nil, nil
}

func applyEnvironment(e *models.Environment, values map[string]any) {
	for field, v := range values {
		switch field {
		case "name":
			e.Name = v.(string)
		case "category":
			e.Category = v.(models.EnvironmentCategory)
		case "description":
			e.Description = v.(string)
		}
	}
}
