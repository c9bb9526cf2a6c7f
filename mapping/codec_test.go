package mapping_test

import (
	"testing"

	"github.com/bedrock/sor-api/mapping"
	"github.com/bedrock/sor-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeResolver resolves names from an in-memory table.
type fakeResolver struct {
	refs map[mapping.Kind]map[string]uint
}

func (r *fakeResolver) ResolveName(kind mapping.Kind, name string) (mapping.Ref, error) {
	if id, ok := r.refs[kind][name]; ok {
		return mapping.Ref{ID: id, Name: name}, nil
	}
	return mapping.Ref{}, mapping.ErrNameNotFound
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{refs: map[mapping.Kind]map[string]uint{
		mapping.KindOwner:       {"OWNERA": 1, "OWNERB": 2},
		mapping.KindEnvironment: {"ENVA": 1, "ENVB": 2},
	}}
}

func TestSingleRefFromExternal(t *testing.T) {
	field := mapping.SingleRef{Field: "owner", Target: mapping.KindOwner}
	resolver := newFakeResolver()

	ref, err := field.FromExternal(resolver, "OWNERA")
	require.NoError(t, err)
	assert.Equal(t, mapping.Ref{ID: 1, Name: "OWNERA"}, ref)
}

func TestSingleRefFromExternalRejectsNonString(t *testing.T) {
	field := mapping.SingleRef{Field: "owner", Target: mapping.KindOwner}
	resolver := newFakeResolver()

	_, err := field.FromExternal(resolver, float64(3))
	require.Error(t, err)
	assert.True(t, mapping.IsFieldError(err))
	assert.Equal(t, "Incorrect Type. Expected a str but got int", err.Error())

	_, err = field.FromExternal(resolver, []any{"OWNERA"})
	require.Error(t, err)
	assert.Equal(t, "Incorrect Type. Expected a str but got list", err.Error())
}

func TestSingleRefFromExternalRejectsEmpty(t *testing.T) {
	field := mapping.SingleRef{Field: "owner", Target: mapping.KindOwner}

	_, err := field.FromExternal(newFakeResolver(), "")
	require.Error(t, err)
	assert.Equal(t, "owner value cannot be empty", err.Error())
}

func TestSingleRefFromExternalUnknownName(t *testing.T) {
	field := mapping.SingleRef{Field: "owner", Target: mapping.KindOwner}

	_, err := field.FromExternal(newFakeResolver(), "NOEXIST")
	require.Error(t, err)
	assert.True(t, mapping.IsFieldError(err))
	assert.Equal(t, "Owner NOEXIST matching query does not exist", err.Error())
}

func TestSingleRefToExternal(t *testing.T) {
	field := mapping.SingleRef{Field: "owner", Target: mapping.KindOwner}
	assert.Equal(t, "OWNERA", field.ToExternal(models.Owner{Name: "OWNERA"}))
}

func TestMultiRefFromExternal(t *testing.T) {
	field := mapping.MultiRef{Field: "environments", Target: mapping.KindEnvironment}
	resolver := newFakeResolver()

	refs, err := field.FromExternal(resolver, []any{"ENVB", "ENVA"})
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "ENVB", refs[0].Name)
	assert.Equal(t, "ENVA", refs[1].Name)
}

func TestMultiRefFromExternalAcceptsStringSlice(t *testing.T) {
	field := mapping.MultiRef{Field: "environments", Target: mapping.KindEnvironment}

	refs, err := field.FromExternal(newFakeResolver(), []string{"ENVA"})
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, uint(1), refs[0].ID)
}

func TestMultiRefFromExternalRejectsNonList(t *testing.T) {
	field := mapping.MultiRef{Field: "environments", Target: mapping.KindEnvironment}

	_, err := field.FromExternal(newFakeResolver(), "ENVA")
	require.Error(t, err)
	assert.Equal(t, "Incorrect Type. Expected a list but got str", err.Error())
}

func TestMultiRefFromExternalRejectsNonStringElement(t *testing.T) {
	field := mapping.MultiRef{Field: "environments", Target: mapping.KindEnvironment}

	_, err := field.FromExternal(newFakeResolver(), []any{"ENVA", float64(2)})
	require.Error(t, err)
	assert.Equal(t, "Incorrect Value Type. Expected environments value in str type", err.Error())
}

func TestMultiRefFromExternalAllOrNothing(t *testing.T) {
	field := mapping.MultiRef{Field: "environments", Target: mapping.KindEnvironment}

	refs, err := field.FromExternal(newFakeResolver(), []any{"ENVA", "NOT_REAL"})
	require.Error(t, err)
	assert.Nil(t, refs)
	assert.Equal(t, "Environment NOT_REAL matching query does not exist", err.Error())
}

func TestMultiRefToExternal(t *testing.T) {
	field := mapping.MultiRef{Field: "labels", Target: mapping.KindLabel}
	labels := []models.Label{{Name: "a"}, {Name: "b"}}
	assert.Equal(t, []string{"a", "b"}, field.ToExternal(mapping.Nameds(labels)))
}

func TestSplitRelations(t *testing.T) {
	values := map[string]any{
		"name":         "web01",
		"owner":        mapping.Ref{ID: 1, Name: "OWNERA"},
		"environments": []mapping.Ref{{ID: 1, Name: "ENVA"}},
		"labels":       []mapping.Ref{},
		"unknown":      "dropped",
	}

	direct, deferred := mapping.SplitRelations(mapping.KindServer, values)

	assert.Equal(t, map[string]any{
		"name":  "web01",
		"owner": mapping.Ref{ID: 1, Name: "OWNERA"},
	}, direct)
	assert.Equal(t, map[string]any{
		"environments": []mapping.Ref{{ID: 1, Name: "ENVA"}},
		"labels":       []mapping.Ref{},
	}, deferred)
}

func TestSchemasDeclareEveryKind(t *testing.T) {
	kinds := []mapping.Kind{
		mapping.KindLabel, mapping.KindOwner, mapping.KindCluster,
		mapping.KindEnvironment, mapping.KindDomain, mapping.KindOperatingSystem,
		mapping.KindServer, mapping.KindProduct,
	}
	for _, kind := range kinds {
		assert.NotEmpty(t, mapping.Schemas[kind], "schema missing for %s", kind)
	}
}
