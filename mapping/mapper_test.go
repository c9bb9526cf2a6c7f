package mapping_test

import (
	"testing"

	"github.com/bedrock/sor-api/database"
	"github.com/bedrock/sor-api/mapping"
	"github.com/bedrock/sor-api/models"
	"github.com/bedrock/sor-api/repositories"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// The in-memory database vanishes when its last connection closes.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	return db
}

// serverGraph holds one of everything a server payload can reference.
type serverGraph struct {
	owner  models.Owner
	domain models.Domain
	clusterA,
	clusterB models.Cluster
	envA, envB models.Environment
	os         models.OperatingSystem
	labelA,
	labelB models.Label
}

func seedServerGraph(t *testing.T, db *gorm.DB) serverGraph {
	t.Helper()
	g := serverGraph{
		owner:    models.Owner{Name: "PLATFORM", Email: "platform@example.com"},
		domain:   models.Domain{Name: "example.com", Status: models.StatusActive},
		clusterA: models.Cluster{Name: "east"},
		clusterB: models.Cluster{Name: "west"},
		envA:     models.Environment{Name: "dev", Category: models.EnvironmentDev},
		envB:     models.Environment{Name: "prod", Category: models.EnvironmentProd},
		os:       models.OperatingSystem{Name: "debian-12", Version: "12.5"},
		labelA:   models.Label{Name: "critical"},
		labelB:   models.Label{Name: "legacy"},
	}
	require.NoError(t, db.Create(&g.owner).Error)
	g.domain.OwnerID = g.owner.ID
	require.NoError(t, db.Create(&g.domain).Error)
	require.NoError(t, db.Create(&g.clusterA).Error)
	require.NoError(t, db.Create(&g.clusterB).Error)
	require.NoError(t, db.Create(&g.envA).Error)
	require.NoError(t, db.Create(&g.envB).Error)
	require.NoError(t, db.Create(&g.os).Error)
	require.NoError(t, db.Create(&g.labelA).Error)
	require.NoError(t, db.Create(&g.labelB).Error)
	return g
}

func serverPayload(g serverGraph) map[string]any {
	return map[string]any{
		"name":             "web01",
		"ip_address":       "10.0.0.1",
		"owner":            g.owner.Name,
		"domain":           g.domain.Name,
		"cluster":          g.clusterA.Name,
		"environments":     []any{g.envA.Name, g.envB.Name},
		"operating_system": g.os.Name,
		"labels":           []any{g.labelA.Name},
	}
}

func newServerMapper(db *gorm.DB) (*mapping.ServerMapper, *repositories.ServerRepository) {
	repo := repositories.NewServerRepository(db)
	return mapping.NewServerMapper(repositories.NewNameResolver(db), repo), repo
}

func TestOwnerMapperCreate(t *testing.T) {
	db := testDB(t)
	m := mapping.NewOwnerMapper(repositories.NewNameResolver(db), repositories.NewOwnerRepository(db))

	owner, errs, err := m.Create(map[string]any{
		"name":  "NETWORK",
		"email": "network@example.com",
	})
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.NotZero(t, owner.ID)

	out := m.ToExternal(owner)
	assert.Equal(t, "NETWORK", out["name"])
	assert.Equal(t, "network@example.com", out["email"])
}

func TestOwnerMapperCreateDuplicateName(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.Create(&models.Owner{Name: "NETWORK", Email: "a@example.com"}).Error)
	m := mapping.NewOwnerMapper(repositories.NewNameResolver(db), repositories.NewOwnerRepository(db))

	_, errs, err := m.Create(map[string]any{
		"name":  "NETWORK",
		"email": "b@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, mapping.FieldErrors{"name": {"This field must be unique."}}, errs)
}

func TestOwnerMapperCollectsAllFieldErrors(t *testing.T) {
	db := testDB(t)
	m := mapping.NewOwnerMapper(repositories.NewNameResolver(db), repositories.NewOwnerRepository(db))

	_, errs, err := m.Create(map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, mapping.FieldErrors{
		"name":  {"This field is required."},
		"email": {"This field is required."},
	}, errs)
}

func TestOwnerMapperUpdateKeepsOwnName(t *testing.T) {
	db := testDB(t)
	owner := models.Owner{Name: "NETWORK", Email: "a@example.com"}
	require.NoError(t, db.Create(&owner).Error)
	m := mapping.NewOwnerMapper(repositories.NewNameResolver(db), repositories.NewOwnerRepository(db))

	updated, errs, err := m.Update(map[string]any{
		"name":  "NETWORK",
		"email": "new@example.com",
	}, owner)
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.Equal(t, "new@example.com", updated.Email)
}

func TestEnvironmentMapperDefaultsCategory(t *testing.T) {
	db := testDB(t)
	m := mapping.NewEnvironmentMapper(repositories.NewNameResolver(db), repositories.NewEnvironmentRepository(db))

	env, errs, err := m.Create(map[string]any{"name": "sandbox"})
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.Equal(t, models.EnvironmentDev, env.Category)
}

func TestEnvironmentMapperRejectsUnknownCategory(t *testing.T) {
	db := testDB(t)
	m := mapping.NewEnvironmentMapper(repositories.NewNameResolver(db), repositories.NewEnvironmentRepository(db))

	_, errs, err := m.Create(map[string]any{"name": "sandbox", "category": "QA"})
	require.NoError(t, err)
	assert.Equal(t, []string{`"QA" is not a valid choice.`}, errs["category"])
}

func TestDomainMapperResolvesOwnerByName(t *testing.T) {
	db := testDB(t)
	owner := models.Owner{Name: "PLATFORM", Email: "platform@example.com"}
	require.NoError(t, db.Create(&owner).Error)
	m := mapping.NewDomainMapper(repositories.NewNameResolver(db), repositories.NewDomainRepository(db))

	domain, errs, err := m.Create(map[string]any{
		"name":  "example.org",
		"owner": "PLATFORM",
	})
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.Equal(t, owner.ID, domain.OwnerID)
	assert.Equal(t, models.StatusActive, domain.Status)
}

func TestDomainMapperUnknownOwner(t *testing.T) {
	db := testDB(t)
	m := mapping.NewDomainMapper(repositories.NewNameResolver(db), repositories.NewDomainRepository(db))

	_, errs, err := m.Create(map[string]any{
		"name":  "example.org",
		"owner": "NOBODY",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Owner NOBODY matching query does not exist"}, errs["owner"])
}

func TestServerMapperCreateWithLinks(t *testing.T) {
	db := testDB(t)
	g := seedServerGraph(t, db)
	m, repo := newServerMapper(db)

	server, errs, err := m.Create(serverPayload(g))
	require.NoError(t, err)
	require.Empty(t, errs)

	loaded, err := repo.FindByID(server.ID)
	require.NoError(t, err)
	out := m.ToExternal(loaded)
	assert.Equal(t, "web01", out["name"])
	assert.Equal(t, "PLATFORM", out["owner"])
	assert.Equal(t, "example.com", out["domain"])
	assert.Equal(t, "east", out["cluster"])
	assert.Equal(t, "debian-12", out["operating_system"])
	assert.ElementsMatch(t, []string{"dev", "prod"}, out["environments"])
	assert.Equal(t, []string{"critical"}, out["labels"])
	assert.Equal(t, "web01.example.com", out["fqdn"])
	assert.Equal(t, "WEB", out["category"])
	assert.Equal(t, "INACTIVE", out["status"])
}

func TestServerMapperUnknownNameInListPersistsNothing(t *testing.T) {
	db := testDB(t)
	g := seedServerGraph(t, db)
	m, _ := newServerMapper(db)

	p := serverPayload(g)
	p["labels"] = []any{g.labelA.Name, "no-such-label"}

	_, errs, err := m.Create(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"Label no-such-label matching query does not exist"}, errs["labels"])

	var servers, links int64
	require.NoError(t, db.Model(&models.Server{}).Count(&servers).Error)
	require.NoError(t, db.Table("server_labels").Count(&links).Error)
	assert.Zero(t, servers)
	assert.Zero(t, links)
}

func TestServerMapperUpdateReplacesLinkSets(t *testing.T) {
	db := testDB(t)
	g := seedServerGraph(t, db)
	m, repo := newServerMapper(db)

	server, errs, err := m.Create(serverPayload(g))
	require.NoError(t, err)
	require.Empty(t, errs)

	p := serverPayload(g)
	p["environments"] = []any{g.envB.Name}
	p["labels"] = []any{}

	loaded, err := repo.FindByID(server.ID)
	require.NoError(t, err)
	_, errs, err = m.Update(p, loaded)
	require.NoError(t, err)
	require.Empty(t, errs)

	loaded, err = repo.FindByID(server.ID)
	require.NoError(t, err)
	out := m.ToExternal(loaded)
	assert.Equal(t, []string{"prod"}, out["environments"])
	assert.Equal(t, []string{}, out["labels"])
}

func TestServerMapperExternalRoundTrip(t *testing.T) {
	db := testDB(t)
	g := seedServerGraph(t, db)
	m, repo := newServerMapper(db)

	server, errs, err := m.Create(serverPayload(g))
	require.NoError(t, err)
	require.Empty(t, errs)

	loaded, err := repo.FindByID(server.ID)
	require.NoError(t, err)
	before := m.ToExternal(loaded)

	_, errs, err = m.Update(before, loaded)
	require.NoError(t, err)
	require.Empty(t, errs)

	loaded, err = repo.FindByID(server.ID)
	require.NoError(t, err)
	assert.Equal(t, before, m.ToExternal(loaded))
}

func TestServerMapperClusterDetach(t *testing.T) {
	db := testDB(t)
	g := seedServerGraph(t, db)
	m, repo := newServerMapper(db)

	server, errs, err := m.Create(serverPayload(g))
	require.NoError(t, err)
	require.Empty(t, errs)

	p := serverPayload(g)
	p["cluster"] = nil

	loaded, err := repo.FindByID(server.ID)
	require.NoError(t, err)
	_, errs, err = m.Update(p, loaded)
	require.NoError(t, err)
	require.Empty(t, errs)

	loaded, err = repo.FindByID(server.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded.ClusterID)
	assert.Nil(t, m.ToExternal(loaded)["cluster"])
}

func TestServerMapperDuplicateIP(t *testing.T) {
	db := testDB(t)
	g := seedServerGraph(t, db)
	m, _ := newServerMapper(db)

	_, errs, err := m.Create(serverPayload(g))
	require.NoError(t, err)
	require.Empty(t, errs)

	p := serverPayload(g)
	p["name"] = "web02"

	_, errs, err = m.Create(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"This field must be unique."}, errs["ip_address"])
}

func TestProductMapperPortHandling(t *testing.T) {
	db := testDB(t)
	owner := models.Owner{Name: "PLATFORM", Email: "platform@example.com"}
	require.NoError(t, db.Create(&owner).Error)
	m := mapping.NewProductMapper(repositories.NewNameResolver(db), repositories.NewProductRepository(db))

	product, errs, err := m.Create(map[string]any{
		"name":    "inventory-api",
		"version": "1.0.0",
		"owner":   "PLATFORM",
		"port":    float64(8080),
	})
	require.NoError(t, err)
	require.Empty(t, errs)
	require.NotNil(t, product.Port)
	assert.Equal(t, 8080, *product.Port)
	assert.Equal(t, 8080, m.ToExternal(product)["port"])

	updated, errs, err := m.Update(map[string]any{
		"name":    "inventory-api",
		"version": "1.0.0",
		"owner":   "PLATFORM",
		"port":    nil,
	}, product)
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.Nil(t, updated.Port)
}

func TestProductMapperRejectsBadLink(t *testing.T) {
	db := testDB(t)
	owner := models.Owner{Name: "PLATFORM", Email: "platform@example.com"}
	require.NoError(t, db.Create(&owner).Error)
	m := mapping.NewProductMapper(repositories.NewNameResolver(db), repositories.NewProductRepository(db))

	_, errs, err := m.Create(map[string]any{
		"name":    "inventory-api",
		"version": "1.0.0",
		"owner":   "PLATFORM",
		"link":    "not a url",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Enter a valid URL."}, errs["link"])
}
