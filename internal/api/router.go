package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/quanticedge/profile-portal/internal/api/handlers"
	"github.com/quanticedge/profile-portal/internal/api/middleware"
	"github.com/quanticedge/profile-portal/internal/config"
	"github.com/quanticedge/profile-portal/internal/service"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS(cfg.CORSOrigin))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	authHandler := handlers.NewAuthHandler(services.Auth)
	userDataHandler := handlers.NewUserDataHandler(services.User)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/otherinfo", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Token))
			r.Get("/getAllData", userDataHandler.GetAllData)
			// admin-only; was open to anyone before the rewrite
			r.Delete("/deleteData/{id}", userDataHandler.DeleteData)
		})
	})

	return r
}
