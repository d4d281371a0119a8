package api

import (
	"github.com/sHiNy2005-beep/journalreact/database"
	"github.com/sHiNy2005-beep/journalreact/uploads"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	journalEntryHandler journalEntryHandler
	contactHandler      contactHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, uploadStore uploads.Store, sender ContactSender) *routeHandlers {
	return &routeHandlers{
		journalEntryHandler: newJournalEntryHandler(database.JournalEntryRepo(), uploadStore),
		contactHandler:      newContactHandler(sender),
	}
}
