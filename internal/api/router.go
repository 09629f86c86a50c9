package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "fileharbor/docs"
	"fileharbor/internal/api/handlers"
	"fileharbor/internal/api/middleware"
	"fileharbor/internal/auth"
	"fileharbor/internal/config"
	"fileharbor/internal/utils"
)

func SetupRouter(cfg config.Config, resolver auth.Resolver, h *handlers.Handler) http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(config.CorsConfig(cfg.AllowedOrigins))

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.JSONResponse(w, http.StatusOK, map[string]bool{"ok": true})
	})

	mainMux.Handle("/metrics", promhttp.Handler())
	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	// ---------- PROTECTED ROUTES ----------
	apiMux := http.NewServeMux()
	apiMux.HandleFunc("POST /files", h.Upload)
	apiMux.HandleFunc("GET /files", h.List)
	apiMux.HandleFunc("GET /files/search-content", h.SearchContent)
	apiMux.HandleFunc("GET /files/{id}/download", h.Download)
	apiMux.HandleFunc("DELETE /files/{id}", h.Delete)
	apiMux.HandleFunc("GET /admin/files", h.AdminList)

	mainMux.Handle("/api/",
		http.StripPrefix(
			"/api",
			middleware.Auth(resolver)(apiMux),
		),
	)

	handler := c.Handler(mainMux)
	handler = middleware.Metrics()(handler)
	handler = middleware.Logger(handler)
	return handler
}
