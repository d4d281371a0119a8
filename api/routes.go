package api

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the REST API, the upload passthrough, and the static
// front-end bundle.
func setupRoutes(r chi.Router, handlers *routeHandlers, publicDir string) {
	r.Group(func(r chi.Router) {
		r.Use(HTTPLoggingMiddleware)

		// Journal entry endpoints
		r.Get("/api/journalEntries", handlers.journalEntryHandler.getAllEntries())
		r.Post("/api/journalEntries", handlers.journalEntryHandler.createEntry())
		r.Put("/api/journalEntries/{entryID}", handlers.journalEntryHandler.updateEntry())
		r.Delete("/api/journalEntries/{entryID}", handlers.journalEntryHandler.deleteEntry())

		// Contact form relay
		r.Post("/api/contact", handlers.contactHandler.submitContact())

		// Stored entry images
		r.Get("/uploads/{name}", handlers.journalEntryHandler.serveUpload())
	})

	// Static front-end bundle (home, journal, resources, doodle, slideshow
	// pages), when one is deployed alongside the server.
	if publicDir != "" {
		if _, err := os.Stat(publicDir); err == nil {
			r.Handle("/*", http.FileServer(http.Dir(publicDir)))
		}
	}
}
