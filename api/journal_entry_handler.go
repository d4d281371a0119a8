package api

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sHiNy2005-beep/journalreact/errs"
	"github.com/sHiNy2005-beep/journalreact/models"
	"github.com/sHiNy2005-beep/journalreact/uploads"
)

// entryRepository is the slice of database.JournalEntryRepo the handler
// needs; tests substitute an in-memory implementation.
type entryRepository interface {
	FindAll() ([]*models.JournalEntry, error)
	FindByID(id uuid.UUID) (*models.JournalEntry, error)
	Add(entry *models.JournalEntry) error
	Update(entry *models.JournalEntry) error
	Delete(id uuid.UUID) error
}

type journalEntryHandler struct {
	responder Responder
	logger    zerolog.Logger
	repo      entryRepository
	uploads   uploads.Store
}

func newJournalEntryHandler(repo entryRepository, uploadStore uploads.Store) journalEntryHandler {
	logger := log.With().Str("handlerName", "journalEntryHandler").Logger()

	return journalEntryHandler{
		responder: NewResponder(logger),
		logger:    logger,
		repo:      repo,
		uploads:   uploadStore,
	}
}

// JournalEntryCollection is the list response: the entries plus a total, so
// clients that expect a bare array can still find them under "entries".
type JournalEntryCollection struct {
	Entries []*models.JournalEntry `json:"entries"`
	Total   int                    `json:"total"`
}

// getAllEntries returns every journal entry, newest first.
func (h journalEntryHandler) getAllEntries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := h.repo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find journal entries", "journal_entries", err))
			return
		}

		if entries == nil {
			entries = []*models.JournalEntry{}
		}

		h.responder.WriteJSON(w, JournalEntryCollection{
			Entries: entries,
			Total:   len(entries),
		})
	}
}

// createEntry creates a journal entry from a JSON body or a multipart form.
// When the form carries an image file it is stored and takes precedence over
// any textual img_name value.
func (h journalEntryHandler) createEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, imgName, apiErr := h.readEntryRequest(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		entry := models.JournalEntry{
			Title:     strings.TrimSpace(req.Title),
			Date:      strings.TrimSpace(req.Date),
			Summary:   strings.TrimSpace(req.Summary),
			Mood:      strings.TrimSpace(req.Mood),
			ImgName:   imgName,
			DateAdded: time.Now(),
		}
		if entry.ID == uuid.Nil {
			entry.ID = uuid.New()
		}

		if err := h.repo.Add(&entry); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create journal entry", "journal_entry", err))
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, entry)
	}
}

// updateEntry overwrites an existing entry's fields. The entry keeps its
// stored image unless the request brings a new file or img_name value.
func (h journalEntryHandler) updateEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID, apiErr := entryIDParam(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		existing, err := h.repo.FindByID(entryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find journal entry", "journal_entry", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("journal entry not found"))
			return
		}

		req, imgName, apiErr := h.readEntryRequest(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		existing.Title = strings.TrimSpace(req.Title)
		existing.Date = strings.TrimSpace(req.Date)
		existing.Summary = strings.TrimSpace(req.Summary)
		existing.Mood = strings.TrimSpace(req.Mood)
		if imgName != "" {
			existing.ImgName = imgName
		}
		now := time.Now()
		existing.DateEdited = &now

		if err := h.repo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update journal entry", "journal_entry", err))
			return
		}

		h.responder.WriteJSON(w, existing)
	}
}

// deleteEntry removes an entry and, best effort, its stored upload.
func (h journalEntryHandler) deleteEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID, apiErr := entryIDParam(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		existing, err := h.repo.FindByID(entryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find journal entry", "journal_entry", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("journal entry not found"))
			return
		}

		if err := h.repo.Delete(entryID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete journal entry", "journal_entry", err))
			return
		}

		if name, ok := strings.CutPrefix(existing.ImgName, "uploads/"); ok {
			if err := h.uploads.Remove(r.Context(), name); err != nil {
				h.logger.Warn().Err(err).Str("img_name", existing.ImgName).Msg("Failed to remove stored upload")
			}
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "journal entry deleted successfully",
		})
	}
}

// serveUpload streams a stored image back at /uploads/{name}.
func (h journalEntryHandler) serveUpload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		body, contentType, err := h.uploads.Open(r.Context(), name)
		if err != nil {
			if err == uploads.ErrNotFound {
				h.responder.WriteError(w, errs.NewNotFoundError("upload not found"))
				return
			}
			h.responder.WriteError(w, errs.NewInternalError("could not read upload"))
			return
		}
		defer body.Close()

		w.Header().Set("Content-Type", contentType)
		if _, err := io.Copy(w, body); err != nil {
			h.logger.Error().Err(err).Str("name", name).Msg("Error streaming upload")
		}
	}
}

func entryIDParam(r *http.Request) (uuid.UUID, *errs.ApiErr) {
	idStr := chi.URLParam(r, "entryID")
	if idStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing entryID")
	}
	entryID, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid entryID")
	}
	return entryID, nil
}

// readEntryRequest decodes a create/update body, runs validation, and stores
// an uploaded image when one is attached. The returned imgName is the stored
// "uploads/..." reference for a new file, the validated img_name field
// otherwise, or "" when the request carries neither.
func (h journalEntryHandler) readEntryRequest(r *http.Request) (journalEntryRequest, string, *errs.ApiErr) {
	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if contentType == "multipart/form-data" {
		return h.readMultipartRequest(r)
	}

	var req journalEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error().Err(err).Msg("Failed to decode journal entry request body")
		return journalEntryRequest{}, "", errs.NewBadRequestError("malformed request body")
	}

	if fieldErrs := validateEntryRequest(req); len(fieldErrs) > 0 {
		return journalEntryRequest{}, "", errs.NewValidationError(fieldErrs)
	}

	return req, strings.TrimSpace(req.ImgName), nil
}

func (h journalEntryHandler) readMultipartRequest(r *http.Request) (journalEntryRequest, string, *errs.ApiErr) {
	if err := r.ParseMultipartForm(uploads.MaxImageSize + 1<<20); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse multipart form")
		return journalEntryRequest{}, "", errs.NewMaxBodySizeExceededError(uploads.MaxImageSize)
	}

	req := journalEntryRequest{
		Title:   r.FormValue("title"),
		Date:    r.FormValue("date"),
		Summary: r.FormValue("summary"),
		Mood:    r.FormValue("mood"),
		ImgName: r.FormValue("img_name"),
	}

	fieldErrs := validateEntryRequest(req)

	file, header, err := r.FormFile("img")
	if err != nil && err != http.ErrMissingFile {
		return journalEntryRequest{}, "", errs.NewBadRequestError("could not read uploaded file")
	}

	if err == http.ErrMissingFile {
		if len(fieldErrs) > 0 {
			return journalEntryRequest{}, "", errs.NewValidationError(fieldErrs)
		}
		return req, strings.TrimSpace(req.ImgName), nil
	}
	defer file.Close()

	fieldErrs = append(fieldErrs, validateImageUpload(header)...)
	if len(fieldErrs) > 0 {
		return journalEntryRequest{}, "", errs.NewValidationError(fieldErrs)
	}

	storedName, apiErr := h.storeUpload(r.Context(), header, file)
	if apiErr != nil {
		return journalEntryRequest{}, "", apiErr
	}

	// The file wins over any img_name value sent alongside it.
	return req, storedName, nil
}

func (h journalEntryHandler) storeUpload(ctx context.Context, header *multipart.FileHeader, file io.Reader) (string, *errs.ApiErr) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	name := uuid.NewString() + ext

	limited := io.LimitReader(file, uploads.MaxImageSize)
	if err := h.uploads.Save(ctx, name, header.Header.Get("Content-Type"), limited); err != nil {
		h.logger.Error().Err(err).Str("name", name).Msg("Failed to store upload")
		return "", errs.NewInternalError("could not store uploaded image")
	}

	return "uploads/" + name, nil
}
