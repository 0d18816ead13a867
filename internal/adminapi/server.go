// Package adminapi implements the resolver's optional, off-by-default
// HTTP observability surface: health and statistics, with Swagger UI.
// It is read-only by design — there is no mutable configuration or
// state for it to expose a write path for.
package adminapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/tugunchinov/cacheresolver/internal/adminapi/docs"
	"github.com/tugunchinov/cacheresolver/internal/audit"
	"github.com/tugunchinov/cacheresolver/internal/resolver"
)

// Server is the admin HTTP server.
type Server struct {
	httpServer *http.Server
	startTime  time.Time
}

// New builds the admin API bound to addr, reporting resolver statistics
// from res and instance history from store.
func New(addr string, res *resolver.Resolver, store *audit.Store, log *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(slogRequestLogger(log))

	h := &handler{resolver: res, store: store, startTime: time.Now()}
	registerRoutes(engine, h)

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           engine,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		startTime: h.startTime,
	}
}

// ListenAndServe blocks serving the admin API.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the admin API.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func registerRoutes(r *gin.Engine, h *handler) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.GET("/health", h.health)
	v1.GET("/stats", h.stats)
}
