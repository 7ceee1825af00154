// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	catechistsfeature "github.com/pablutus/catequesis/internal/app/features/catechists"
	groupsfeature "github.com/pablutus/catequesis/internal/app/features/groups"
	healthfeature "github.com/pablutus/catequesis/internal/app/features/health"
	parishesfeature "github.com/pablutus/catequesis/internal/app/features/parishes"
	reportsfeature "github.com/pablutus/catequesis/internal/app/features/reports"
	statsfeature "github.com/pablutus/catequesis/internal/app/features/stats"
	studentsfeature "github.com/pablutus/catequesis/internal/app/features/students"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// The catechesis API is mounted feature by feature under /api, plus the
// health endpoint and the static frontend assets.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.CatequesisMongoDatabase

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.CatequesisMongoClient, appCfg.MongoDatabase, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	parishesHandler := parishesfeature.NewHandler(db, logger)
	r.Mount("/api/parroquias", parishesfeature.Routes(parishesHandler))

	catechistsHandler := catechistsfeature.NewHandler(db, logger)
	r.Mount("/api/catequistas", catechistsfeature.Routes(catechistsHandler))

	groupsHandler := groupsfeature.NewHandler(db, logger)
	r.Mount("/api/grupos", groupsfeature.Routes(groupsHandler))

	studentsHandler := studentsfeature.NewHandler(db, logger)
	r.Mount("/api/catequizandos", studentsfeature.Routes(studentsHandler))

	statsHandler := statsfeature.NewHandler(db, logger)
	r.Mount("/api/estadisticas", statsfeature.Routes(statsHandler))

	reportsHandler := reportsfeature.NewHandler(db, logger)
	r.Mount("/api/reportes", reportsfeature.Routes(reportsHandler))

	return r, nil
}
