package main

import (
	"net/http"

	"github.com/RoxyKang/share-my-place-backend/internal/api"
	apiMiddleware "github.com/RoxyKang/share-my-place-backend/internal/api/middleware"
	"github.com/RoxyKang/share-my-place-backend/internal/api/shared"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(app.metrics.Handler)
	r.Use(apiMiddleware.CORS)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Timeout(app.config.Server.RequestTimeout()))

		r.Route("/users", func(r chi.Router) {
			r.Get("/", app.userHandler.ListUsers)
			r.Post("/signup", app.userHandler.SignUp)
			r.Post("/login", app.userHandler.Login)
		})

		r.Route("/places", func(r chi.Router) {
			r.Get("/{pid}", app.placeHandler.GetPlace)
			r.Get("/user/{uid}", app.placeHandler.GetPlacesByUser)

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Post("/", app.placeHandler.CreatePlace)
				r.Patch("/{pid}", app.placeHandler.UpdatePlace)
				r.Delete("/{pid}", app.placeHandler.DeletePlace)
			})
		})
	})

	r.Handle("/"+app.images.Dir()+"/*",
		http.StripPrefix("/"+app.images.Dir()+"/", http.FileServer(app.images.FileSystem())))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, api.MsgRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, api.MsgRouteNotFound)
	})

	return r
}
