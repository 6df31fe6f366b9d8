// Package api exposes scoring, submission and verification over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Ajugbo/aiq-platform/internal/certificate"
	"github.com/Ajugbo/aiq-platform/internal/session"
	"github.com/Ajugbo/aiq-platform/internal/store"
)

// Deps are the services the handlers call.
type Deps struct {
	Store       store.ResultStore
	Sessions    *session.Service
	Verifier    *certificate.Verifier
	CORSOrigins []string
	// Quiet disables request logging.
	Quiet bool
}

// NewRouter builds the HTTP handler tree.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP)
	if !d.Quiet {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	if len(d.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: d.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
			ExposedHeaders: []string{"Content-Length"},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", HealthHandler())

	r.Route("/api", func(ar chi.Router) {
		ar.Post("/evaluate", EvaluateHandler())
		ar.Post("/aggregate", AggregateHandler())
		ar.Post("/sessions", SubmitHandler(d.Sessions))
		ar.Get("/result", ResultHandler(d.Store))
		ar.Get("/verify/{code}", VerifyHandler(d.Verifier))
	})

	return r
}
