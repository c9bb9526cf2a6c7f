package mapping

import "github.com/bedrock/sor-api/models"

// ProductStore persists products for the product mapper.
type ProductStore interface {
	Save(product *models.Product) error
}

var productOwnerField = SingleRef{Field: "owner", Target: KindOwner}

// ProductMapper converts products to and from their external mapping.
type ProductMapper struct {
	resolver Resolver
	store    ProductStore
}

// NewProductMapper creates a product mapper over the given store.
func NewProductMapper(resolver Resolver, store ProductStore) *ProductMapper {
	return &ProductMapper{resolver: resolver, store: store}
}

// ToExternal renders a product as its flat external mapping. The owner
// relation must be loaded.
func (m *ProductMapper) ToExternal(p models.Product) map[string]any {
	out := map[string]any{
		"id":         p.ID,
		"name":       p.Name,
		"port":       nil,
		"version":    p.Version,
		"owner":      productOwnerField.ToExternal(p.Owner),
		"link":       p.Link,
		"repository": p.Repository,
	}
	if p.Port != nil {
		out["port"] = *p.Port
	}
	return out
}

func (m *ProductMapper) validate(p map[string]any, existingID uint) (map[string]any, FieldErrors, error) {
	errs := FieldErrors{}
	resolved := map[string]any{}

	if err := uniqueName(m.resolver, KindProduct, p, errs, resolved, 50, existingID); err != nil {
		return nil, nil, err
	}
	if port, ok := optionalInt(p, errs, "port"); ok {
		if port == nil {
			resolved["port"] = nil
		} else {
			resolved["port"] = *port
		}
	}
	if version, ok := requiredString(p, errs, "version", 20); ok {
		resolved["version"] = version
	}
	if err := resolveOne(m.resolver, p, errs, resolved, productOwnerField, true); err != nil {
		return nil, nil, err
	}
	if link, ok := optionalURL(p, errs, "link"); ok {
		resolved["link"] = link
	}
	if repo, ok := optionalURL(p, errs, "repository"); ok {
		resolved["repository"] = repo
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}
	return resolved, nil, nil
}

// Create validates the payload and inserts a new product on full success.
func (m *ProductMapper) Create(p map[string]any) (models.Product, FieldErrors, error) {
	resolved, errs, err := m.validate(p, 0)
	if err != nil || len(errs) > 0 {
		return models.Product{}, errs, err
	}
	direct, _ := SplitRelations(KindProduct, resolved)
	var product models.Product
	applyProduct(&product, direct)
	if err := m.store.Save(&product); err != nil {
		return models.Product{}, nil, err
	}
	return product, nil, nil
}

// Update assigns every validated payload field onto the existing product
// and persists it once.
func (m *ProductMapper) Update(p map[string]any, product models.Product) (models.Product, FieldErrors, error) {
	resolved, errs, err := m.validate(p, product.ID)
	if err != nil || len(errs) > 0 {
		return models.Product{}, errs, err
	}
	direct, _ := SplitRelations(KindProduct, resolved)
	applyProduct(&product, direct)
	if err := m.store.Save(&product); err != nil {
		return models.Product{}, nil, err
	}
	return product, nil, nil
}

func applyProduct(p *models.Product, values map[string]any) {
	for field, v := range values {
		switch field {
		case "name":
			p.Name = v.(string)
		case "port":
			if v == nil {
				p.Port = nil
			} else {
				port := v.(int)
				p.Port = &port
			}
		case "version":
			p.Version = v.(string)
		case "owner":
			p.OwnerID = v.(Ref).ID
		case "link":
			p.Link = v.(string)
		case "repository":
			p.Repository = v.(string)
		}
	}
}
