package web

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"hubwiki/internal/cache"
	"hubwiki/internal/config"
	"hubwiki/internal/models"
	"hubwiki/internal/remote"
	"hubwiki/internal/render"
	"hubwiki/internal/sanitize"
)

// Server holds the dependencies for the web server.
type Server struct {
	logger      *zap.Logger
	client      *remote.Client
	pages       *cache.Cache[*models.WikiPage]
	revisions   *cache.Cache[*models.RevisionList]
	compares    *cache.Cache[*models.RevisionPair]
	sanitizer   *sanitize.Sanitizer
	renderer    *render.Renderer
	corsOrigins []string
	handler     http.Handler
}

// NewServer creates a new server with the given dependencies.
func NewServer(cfg *config.Config, client *remote.Client, logger *zap.Logger) (*Server, error) {
	origin, err := url.Parse(cfg.PublicOrigin)
	if err != nil {
		return nil, err
	}

	s := &Server{
		logger:      logger,
		client:      client,
		pages:       cache.New[*models.WikiPage](cfg.CacheTTL, logger),
		revisions:   cache.New[*models.RevisionList](cfg.CacheTTL, logger),
		compares:    cache.New[*models.RevisionPair](cfg.CacheTTL, logger),
		sanitizer:   sanitize.New(sanitize.Default(), origin),
		renderer:    render.New(),
		corsOrigins: splitOrigins(cfg.CORSOrigins),
	}
	s.handler = s.routes()
	return s, nil
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func splitOrigins(origins string) []string {
	var out []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
