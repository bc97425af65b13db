package web

import (
	"net/http"

	"github.com/rs/cors"

	"hubwiki/internal/web/controller"
	"hubwiki/internal/web/middleware"
)

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	wikiController := controller.Wiki{Client: s.client, Pages: s.pages, Sanitizer: s.sanitizer, Logger: s.logger}
	wikiController.Register(mux)

	historyController := controller.History{Client: s.client, Revisions: s.revisions, Logger: s.logger}
	historyController.Register(mux)

	diffController := controller.Diff{Client: s.client, Compares: s.compares, Logger: s.logger}
	diffController.Register(mux)

	previewController := controller.Preview{Renderer: s.renderer, Sanitizer: s.sanitizer, Logger: s.logger}
	previewController.Register(mux)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: s.corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	var handler http.Handler = mux
	handler = corsHandler.Handler(handler)
	handler = middleware.AccessLog(s.logger)(handler)
	handler = middleware.Recovery(s.logger)(handler)
	return handler
}
