package v1

import "github.com/bedrock/sor-api/mapping"

// crudRepo is the repository surface the generic resource builder needs.
type crudRepo[T any] interface {
	FindAll() ([]T, error)
	FindByID(id uint) (T, error)
	Delete(id uint) error
}

// crudMapper is the mapper surface the generic resource builder needs.
type crudMapper[T any] interface {
	ToExternal(T) map[string]any
	Create(map[string]any) (T, mapping.FieldErrors, error)
	Update(map[string]any, T) (T, mapping.FieldErrors, error)
}

// newResource wires one entity kind's repository and mapper into the
// generic handler set. Created and updated rows are re-read through the
// repository so responses carry freshly loaded relations.
func newResource[T any](path string, repo crudRepo[T], m crudMapper[T], id func(T) uint) resource {
	return resource{
		path: path,
		list: func() ([]map[string]any, error) {
			items, err := repo.FindAll()
			if err != nil {
				return nil, err
			}
			out := make([]map[string]any, len(items))
			for i, item := range items {
				out[i] = m.ToExternal(item)
			}
			return out, nil
		},
		get: func(rowID uint) (map[string]any, error) {
			item, err := repo.FindByID(rowID)
			if err != nil {
				return nil, err
			}
			return m.ToExternal(item), nil
		},
		create: func(payload map[string]any) (map[string]any, mapping.FieldErrors, error) {
			created, fieldErrs, err := m.Create(payload)
			if err != nil || len(fieldErrs) > 0 {
				return nil, fieldErrs, err
			}
			fresh, err := repo.FindByID(id(created))
			if err != nil {
				return nil, nil, err
			}
			return m.ToExternal(fresh), nil, nil
		},
		update: func(rowID uint, payload map[string]any) (map[string]any, mapping.FieldErrors, error) {
			existing, err := repo.FindByID(rowID)
			if err != nil {
				return nil, nil, err
			}
			updated, fieldErrs, err := m.Update(payload, existing)
			if err != nil || len(fieldErrs) > 0 {
				return nil, fieldErrs, err
			}
			fresh, err := repo.FindByID(id(updated))
			if err != nil {
				return nil, nil, err
			}
			return m.ToExternal(fresh), nil, nil
		},
		remove: func(rowID uint) error {
			return repo.Delete(rowID)
		},
	}
}
