package mapping

import "github.com/bedrock/sor-api/models"

// OperatingSystemStore persists operating systems for the mapper.
type OperatingSystemStore interface {
	Save(os *models.OperatingSystem) error
}

// OperatingSystemMapper converts operating systems to and from their
// external mapping. Names are unique here as for every other kind, so the
// name lookup is never ambiguous.
type OperatingSystemMapper struct {
	resolver Resolver
	store    OperatingSystemStore
}

// NewOperatingSystemMapper creates an operating system mapper over the
// given store.
func NewOperatingSystemMapper(resolver Resolver, store OperatingSystemStore) *OperatingSystemMapper {
	return &OperatingSystemMapper{resolver: resolver, store: store}
}

// ToExternal renders an operating system as its flat external mapping.
func (m *OperatingSystemMapper) ToExternal(o models.OperatingSystem) map[string]any {
	return map[string]any{
		"id":           o.ID,
		"name":         o.Name,
		"family":       string(o.Family),
		"architecture": string(o.Architecture),
		"version":      o.Version,
	}
}

func (m *OperatingSystemMapper) validate(p map[string]any, existingID uint) (map[string]any, FieldErrors, error) {
	errs := FieldErrors{}
	resolved := map[string]any{}

	if err := uniqueName(m.resolver, KindOperatingSystem, p, errs, resolved, 100, existingID); err != nil {
		return nil, nil, err
	}
	if family, ok := enumString(p, errs, "family", models.OSFamilyChoices(), false); ok {
		resolved["family"] = models.OSFamily(family)
	}
	if arch, ok := enumString(p, errs, "architecture", models.OSArchitectureChoices(), false); ok {
		resolved["architecture"] = models.OSArchitecture(arch)
	}
	if version, ok := requiredString(p, errs, "version", 20); ok {
		resolved["version"] = version
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}
	return resolved, nil, nil
}

// Create validates the payload and inserts a new operating system on full
// success. Family defaults to LINUX and architecture to 64 when absent.
func (m *OperatingSystemMapper) Create(p map[string]any) (models.OperatingSystem, FieldErrors, error) {
	resolved, errs, err := m.validate(p, 0)
	if err != nil || len(errs) > 0 {
		return models.OperatingSystem{}, errs, err
	}
	direct, _ := SplitRelations(KindOperatingSystem, resolved)
	os := models.OperatingSystem{Family: models.OSFamilyLinux, Architecture: models.OSArch64}
	applyOperatingSystem(&os, direct)
	if err := m.store.Save(&os); err != nil {
		return models.OperatingSystem{}, nil, err
	}
	return os, nil, nil
}

// Update assigns every validated payload field onto the existing operating
// system and persists it once.
func (m *OperatingSystemMapper) Update(p map[string]any, os models.OperatingSystem) (models.OperatingSystem, FieldErrors, error) {
	resolved, errs, err := m.validate(p, os.ID)
	if err != nil || len(errs) > 0 {
		return models.OperatingSystem{}, errs, err
	}
	direct, _ := SplitRelations(KindOperatingSystem, resolved)
	applyOperatingSystem(&os, direct)
	if err := m.store.Save(&os); err != nil {
		return models.OperatingSystem{}, nil, err
	}
	return os, nil, nil
}

func applyOperatingSystem(o *models.OperatingSystem, values map[string]any) {
	for field, v := range values {
		switch field {
		case "name":
			o.Name = v.(string)
		case "family":
			o.Family = v.(models.OSFamily)
		case "architecture":
			o.Architecture = v.(models.OSArchitecture)
		case "version":
			o.Version = v.(string)
		}
	}
}
