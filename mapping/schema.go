package mapping

// FieldKind tells how a declared field relates to other entities.
type FieldKind int

const (
	FieldScalar FieldKind = iota
	FieldManyToOne
	FieldManyToMany
)

// FieldSpec declares one external field of an entity kind. The tables below
// are the single source of truth for which payload fields are assigned
// directly on the row and which are deferred many-to-many link sets.
type FieldSpec struct {
	Name        string
	Kind        FieldKind
	Target      Kind   // relation target, empty for scalars
	Association string // gorm association name, set for many-to-many fields
	Required    bool
}

// Schemas declares the external field table per entity kind.
var Schemas = map[Kind][]FieldSpec{
	KindLabel: {
		{Name: "name", Kind: FieldScalar, Required: true},
	},
	KindOwner: {
		{Name: "name", Kind: FieldScalar, Required: true},
		{Name: "email", Kind: FieldScalar, Required: true},
		{Name: "description", Kind: FieldScalar},
	},
	KindCluster: {
		{Name: "name", Kind: FieldScalar, Required: true},
		{Name: "description", Kind: FieldScalar},
	},
	KindEnvironment: {
		{Name: "name", Kind: FieldScalar, Required: true},
		{Name: "category", Kind: FieldScalar},
		{Name: "description", Kind: FieldScalar},
	},
	KindDomain: {
		{Name: "name", Kind: FieldScalar, Required: true},
		{Name: "location", Kind: FieldScalar},
		{Name: "owner", Kind: FieldManyToOne, Target: KindOwner, Required: true},
		{Name: "description", Kind: FieldScalar},
		{Name: "status", Kind: FieldScalar},
	},
	KindOperatingSystem: {
		{Name: "name", Kind: FieldScalar, Required: true},
		{Name: "family", Kind: FieldScalar},
		{Name: "architecture", Kind: FieldScalar},
		{Name: "version", Kind: FieldScalar, Required: true},
	},
	KindServer: {
		{Name: "name", Kind: FieldScalar, Required: true},
		{Name: "ip_address", Kind: FieldScalar, Required: true},
		{Name: "category", Kind: FieldScalar},
		{Name: "owner", Kind: FieldManyToOne, Target: KindOwner, Required: true},
		{Name: "domain", Kind: FieldManyToOne, Target: KindDomain, Required: true},
		{Name: "cluster", Kind: FieldManyToOne, Target: KindCluster},
		{Name: "environments", Kind: FieldManyToMany, Target: KindEnvironment, Association: "Environments", Required: true},
		{Name: "operating_system", Kind: FieldManyToOne, Target: KindOperatingSystem, Required: true},
		{Name: "labels", Kind: FieldManyToMany, Target: KindLabel, Association: "Labels"},
		{Name: "description", Kind: FieldScalar},
		{Name: "status", Kind: FieldScalar},
	},
	KindProduct: {
		{Name: "name", Kind: FieldScalar, Required: true},
		{Name: "port", Kind: FieldScalar},
		{Name: "version", Kind: FieldScalar, Required: true},
		{Name: "owner", Kind: FieldManyToOne, Target: KindOwner, Required: true},
		{Name: "link", Kind: FieldScalar},
		{Name: "repository", Kind: FieldScalar},
	},
}

func fieldSpec(kind Kind, field string) (FieldSpec, bool) {
	for _, spec := range Schemas[kind] {
		if spec.Name == field {
			return spec, true
		}
	}
	return FieldSpec{}, false
}

// SplitRelations partitions validated payload values into those assigned
// directly on the row and many-to-many values deferred until the row
// exists. Fields not declared in the schema are dropped.
func SplitRelations(kind Kind, values map[string]any) (direct, deferred map[string]any) {
	direct = map[string]any{}
	deferred = map[string]any{}
	for field, v := range values {
		spec, ok := fieldSpec(kind, field)
		if !ok {
			continue
		}
		if spec.Kind == FieldManyToMany {
			deferred[field] = v
		} else {
			direct[field] = v
		}
	}
	return direct, deferred
}

// linkIDs translates deferred relation values into association-name to
// id-list form, keyed per the declared schema.
func linkIDs(kind Kind, deferred map[string]any) map[string][]uint {
	links := map[string][]uint{}
	for field, v := range deferred {
		spec, ok := fieldSpec(kind, field)
		if !ok || spec.Association == "" {
			continue
		}
		refs := v.([]Ref)
		ids := make([]uint, len(refs))
		for i, ref := range refs {
			ids[i] = ref.ID
		}
		links[spec.Association] = ids
	}
	return links
}
