package v1

import (
	"github.com/bedrock/sor-api/mapping"
	"github.com/bedrock/sor-api/middleware"
	"github.com/bedrock/sor-api/models"
	"github.com/bedrock/sor-api/repositories"
	"github.com/bedrock/sor-api/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps carries the store and service wiring behind the HTTP surface.
type Deps struct {
	Auth      *services.AuthService
	resources []resource
}

// NewDeps builds the repositories and mappers for all eight entity kinds
// over one database handle.
func NewDeps(db *gorm.DB, auth *services.AuthService) Deps {
	resolver := repositories.NewNameResolver(db)

	labels := repositories.NewLabelRepository(db)
	owners := repositories.NewOwnerRepository(db)
	clusters := repositories.NewClusterRepository(db)
	environments := repositories.NewEnvironmentRepository(db)
	domains := repositories.NewDomainRepository(db)
	systems := repositories.NewOperatingSystemRepository(db)
	servers := repositories.NewServerRepository(db)
	products := repositories.NewProductRepository(db)

	return Deps{
		Auth: auth,
		resources: []resource{
			newResource("labels", labels, mapping.NewLabelMapper(resolver, labels),
				func(l models.Label) uint { return l.ID }),
			newResource("owners", owners, mapping.NewOwnerMapper(resolver, owners),
				func(o models.Owner) uint { return o.ID }),
			newResource("clusters", clusters, mapping.NewClusterMapper(resolver, clusters),
				func(c models.Cluster) uint { return c.ID }),
			newResource("environments", environments, mapping.NewEnvironmentMapper(resolver, environments),
				func(e models.Environment) uint { return e.ID }),
			newResource("domains", domains, mapping.NewDomainMapper(resolver, domains),
				func(d models.Domain) uint { return d.ID }),
			newResource("operating_systems", systems, mapping.NewOperatingSystemMapper(resolver, systems),
				func(o models.OperatingSystem) uint { return o.ID }),
			newResource("servers", servers, mapping.NewServerMapper(resolver, servers),
				func(s models.Server) uint { return s.ID }),
			newResource("products", products, mapping.NewProductMapper(resolver, products),
				func(p models.Product) uint { return p.ID }),
		},
	}
}

// RegisterRoutes mounts every API route on the engine. Reads are open;
// writes require an authenticated caller.
func RegisterRoutes(router *gin.Engine, deps Deps) {
	router.GET("/health/", HealthCheck)

	router.POST("/token/", obtainToken(deps.Auth))
	router.POST("/token/refresh/", refreshToken(deps.Auth))

	public := router.Group("")
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Auth))
	for _, rs := range deps.resources {
		rs.register(public, protected)
	}
}
