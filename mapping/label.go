package mapping

import "github.com/bedrock/sor-api/models"

// LabelStore persists labels for the label mapper.
type LabelStore interface {
	Save(label *models.Label) error
}

// LabelMapper converts labels to and from their external mapping.
type LabelMapper struct {
	resolver Resolver
	store    LabelStore
}

// NewLabelMapper creates a label mapper over the given store.
func NewLabelMapper(resolver Resolver, store LabelStore) *LabelMapper {
	return &LabelMapper{resolver: resolver, store: store}
}

// ToExternal renders a label as its flat external mapping.
func (m *LabelMapper) ToExternal(l models.Label) map[string]any {
	return map[string]any{
		"id":   l.ID,
		"name": l.Name,
	}
}

func (m *LabelMapper) validate(p map[string]any, existingID uint) (map[string]any, FieldErrors, error) {
	errs := FieldErrors{}
	resolved := map[string]any{}

	if err := uniqueName(m.resolver, KindLabel, p, errs, resolved, 25, existingID); err != nil {
		return nil, nil, err
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}
	return resolved, nil, nil
}

// Create validates the payload and inserts a new label on full success.
func (m *LabelMapper) Create(p map[string]any) (models.Label, FieldErrors, error) {
	resolved, errs, err := m.validate(p, 0)
	if err != nil || len(errs) > 0 {
		return models.Label{}, errs, err
	}
	direct, _ := SplitRelations(KindLabel, resolved)
	var label models.Label
	applyLabel(&label, direct)
	if err := m.store.Save(&label); err != nil {
		return models.Label{}, nil, err
	}
	return label, nil, nil
}

// Update assigns every validated payload field onto the existing label and
// persists it once.
func (m *LabelMapper) Update(p map[string]any, label models.Label) (models.Label, FieldErrors, error) {
	resolved, errs, err := m.validate(p, label.ID)
	if err != nil || len(errs) > 0 {
		return models.Label{}, errs, err
	}
	direct, _ := SplitRelations(KindLabel, resolved)
	applyLabel(&label, direct)
	if err := m.store.Save(&label); err != nil {
		return models.Label{}, nil, err
	}
	return label, nil, nil
}

func applyLabel(l *models.Label, values map[string]any) {
	for field, v := range values {
		switch field {
		case "name":
			l.Name = v.(string)
		}
	}
}
