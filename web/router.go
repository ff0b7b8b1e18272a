package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mww/cfb_rankings/controller"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render, adminPassword string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Group(func(r chi.Router) {
		// Set a timeout value on the request context (ctx), that will signal
		// through ctx.Done() that the request has timed out and further
		// processing should be stopped.
		r.Use(middleware.Timeout(10 * time.Second))

		r.Get("/", rootHandler(ctrl, render))

		r.Route("/seasons/{year:\\d{4}}", func(r chi.Router) {
			r.Get("/teams", teamsHandler(ctrl, render))
			r.Get("/schedule", scheduleHandler(ctrl, render))
			r.Get("/rankings", rankingsHandler(ctrl, render))
		})

		r.Post("/games/{gameID:\\d+}/toggle", toggleGameHandler(ctrl, render))
	})

	if adminPassword != "" {
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.BasicAuth("cfb", map[string]string{"admin": adminPassword}))
			// Syncing a season makes several calls to CFBD so it gets a longer timeout.
			r.Use(middleware.Timeout(2 * time.Minute))

			r.Post("/seasons/{year:\\d{4}}/sync", syncSeasonHandler(ctrl, render))
			r.Post("/seasons/{year:\\d{4}}/reset", resetResultsHandler(ctrl, render))
		})
	}

	return r
}
