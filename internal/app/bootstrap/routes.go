// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	apiindexfeature "github.com/modshelf/modshelf/internal/app/features/apiindex"
	categoriesfeature "github.com/modshelf/modshelf/internal/app/features/categories"
	healthfeature "github.com/modshelf/modshelf/internal/app/features/health"
	modsfeature "github.com/modshelf/modshelf/internal/app/features/mods"
	statsfeature "github.com/modshelf/modshelf/internal/app/features/stats"
	modstore "github.com/modshelf/modshelf/internal/app/store/mods"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. Modshelf mounts the catalog features
// under /api and a health endpoint at /health, with CORS applied to the
// whole tree so the browser frontend can call it cross-origin.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	store := modstore.New(deps.MongoDatabase)

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   splitOrigins(appCfg.AllowedOrigins),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
	}))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	modsHandler := modsfeature.NewHandler(store, logger)
	categoriesHandler := categoriesfeature.NewHandler(store, logger)
	statsHandler := statsfeature.NewHandler(store, logger)

	r.Route("/api", func(api chi.Router) {
		api.Mount("/", apiindexfeature.Routes(apiindexfeature.NewHandler()))
		api.Mount("/mods", modsfeature.Routes(modsHandler))
		api.Mount("/categories", categoriesfeature.Routes(categoriesHandler))
		api.Mount("/stats", statsfeature.Routes(statsHandler))
	})

	return r, nil
}

// splitOrigins turns the comma-separated allowed_origins config value into
// the slice the CORS middleware expects.
func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}
