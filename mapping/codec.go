package mapping

import (
	"errors"
	"fmt"
	"math"
)

// SingleRef is the external form of a many-to-one relation: the related
// row's unique name.
type SingleRef struct {
	Field  string
	Target Kind
}

// ToExternal renders the related entity as its name.
func (f SingleRef) ToExternal(related Named) any {
	return related.RefName()
}

// FromExternal resolves an inbound value to the referenced row. The value
// must be a non-empty string naming an existing row of the target kind.
func (f SingleRef) FromExternal(r Resolver, value any) (Ref, error) {
	s, ok := value.(string)
	if !ok {
		return Ref{}, fieldErrorf("Incorrect Type. Expected a str but got %s", typeName(value))
	}
	if s == "" {
		return Ref{}, fieldErrorf("%s value cannot be empty", f.Field)
	}
	ref, err := r.ResolveName(f.Target, s)
	if err != nil {
		if errors.Is(err, ErrNameNotFound) {
			return Ref{}, fieldErrorf("%s %s matching query does not exist", f.Target, s)
		}
		return Ref{}, err
	}
	return ref, nil
}

// MultiRef is the external form of a many-to-many relation: the list of the
// linked rows' unique names.
type MultiRef struct {
	Field  string
	Target Kind
}

// ToExternal renders the linked entities as their name list, in store order.
func (f MultiRef) ToExternal(related []Named) any {
	names := make([]string, len(related))
	for i, item := range related {
		names[i] = item.RefName()
	}
	return names
}

// FromExternal resolves an inbound value to the referenced rows. The value
// must be a list of strings and every element must resolve; one unknown
// name fails the whole field.
func (f MultiRef) FromExternal(r Resolver, value any) ([]Ref, error) {
	list, ok := asList(value)
	if !ok {
		return nil, fieldErrorf("Incorrect Type. Expected a list but got %s", typeName(value))
	}
	refs := make([]Ref, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, fieldErrorf("Incorrect Value Type. Expected %s value in str type", f.Field)
		}
		ref, err := r.ResolveName(f.Target, s)
		if err != nil {
			if errors.Is(err, ErrNameNotFound) {
				return nil, fieldErrorf("%s %s matching query does not exist", f.Target, s)
			}
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// resolveOne resolves a single-reference payload field into resolved,
// recording field errors and returning only internal failures.
func resolveOne(r Resolver, p map[string]any, errs FieldErrors, resolved map[string]any, f SingleRef, required bool) error {
	v, ok := p[f.Field]
	if !ok {
		if required {
			errs.Add(f.Field, msgRequired)
		}
		return nil
	}
	ref, err := f.FromExternal(r, v)
	if err != nil {
		return collect(errs, f.Field, err)
	}
	resolved[f.Field] = ref
	return nil
}

// resolveMany is the multi-reference counterpart of resolveOne.
func resolveMany(r Resolver, p map[string]any, errs FieldErrors, resolved map[string]any, f MultiRef, required bool) error {
	v, ok := p[f.Field]
	if !ok {
		if required {
			errs.Add(f.Field, msgRequired)
		}
		return nil
	}
	refs, err := f.FromExternal(r, v)
	if err != nil {
		return collect(errs, f.Field, err)
	}
	resolved[f.Field] = refs
	return nil
}

// nameTaken reports whether a row of the given kind other than selfID
// already holds name. Pass selfID zero when creating.
func nameTaken(r Resolver, kind Kind, name string, selfID uint) (bool, error) {
	ref, err := r.ResolveName(kind, name)
	if err != nil {
		if errors.Is(err, ErrNameNotFound) {
			return false, nil
		}
		return false, err
	}
	return ref.ID != selfID, nil
}

// uniqueName runs the name validation shared by every mapper: required,
// length-capped, unique within the kind.
func uniqueName(r Resolver, kind Kind, p map[string]any, errs FieldErrors, resolved map[string]any, maxLen int, selfID uint) error {
	name, ok := requiredString(p, errs, "name", maxLen)
	if !ok {
		return nil
	}
	taken, err := nameTaken(r, kind, name, selfID)
	if err != nil {
		return err
	}
	if taken {
		errs.Add("name", msgUnique)
		return nil
	}
	resolved["name"] = name
	return nil
}

// asList normalizes the two sequence shapes mappers see: []any from decoded
// JSON and []string from round-tripped external mappings.
func asList(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, true
	}
	return nil, false
}

// typeName maps a decoded JSON value to the type name used in error text.
func typeName(v any) string {
	switch t := v.(type) {
	case nil:
		return "NoneType"
	case string:
		return "str"
	case bool:
		return "bool"
	case float64:
		if t == math.Trunc(t) {
			return "int"
		}
		return "float"
	case []any:
		return "list"
	case map[string]any:
		return "dict"
	default:
		return fmt.Sprintf("%T", v)
	}
}
