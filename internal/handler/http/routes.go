package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"calhub/internal/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/ping", h.ping)
		r.Handle("/metrics", metrics.Handler())
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api", func(r chi.Router) {
			r.Post("/sync", h.syncAll)
			r.Post("/sync/{calendarID}", h.syncCalendar)

			r.Get("/events", h.eventsForRange)
			r.Get("/events/today", h.eventsForToday)
			r.Get("/events/week", h.eventsForWeek)

			r.Get("/calendars", h.listCalendars)
			r.Post("/calendars", h.addCalendar)
			r.Get("/calendars/{calendarID}", h.getCalendar)
			r.Patch("/calendars/{calendarID}", h.toggleCalendar)
			r.Delete("/calendars/{calendarID}", h.deleteCalendar)

			r.Post("/google/tokens", h.connectGoogleAccount)
			r.Get("/google/tokens/{accountEmail}", h.googleTokenStatus)
			r.Delete("/google/tokens/{accountEmail}", h.disconnectGoogleAccount)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
