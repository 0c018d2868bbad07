package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/unrolled/render"

	"github.com/gregkash16/ncx-sub000/controller"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(15 * time.Second))

	// The panels consuming the API are served from other origins.
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Discord-Id"},
	}).Handler)

	r.Get("/healthz", healthHandler(render))

	r.Route("/api", func(r chi.Router) {
		r.Get("/report", reportQueryHandler(ctrl, render))
		r.Post("/report", reportSubmitHandler(ctrl, render))
		r.Get("/matches", matchesHandler(ctrl, render))
		r.Get("/standings", standingsHandler(ctrl, render))
		r.Get("/stats", statsHandler(ctrl, render))
		r.Get("/lists", listsHandler(ctrl, render))

		r.Route("/sync", func(r chi.Router) {
			// Full resyncs read every workbook range, so give them room.
			r.Use(middleware.Timeout(2 * time.Minute))
			r.Post("/", syncHandler(ctrl, render))
		})
	})

	return r
}
