package api

import (
	"fmt"
	"mime/multipart"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sHiNy2005-beep/journalreact/errs"
	"github.com/sHiNy2005-beep/journalreact/uploads"
)

const (
	maxTitleLen   = 200
	maxSummaryLen = 5000
	maxMoodLen    = 200
	maxImgNameLen = 1000
)

// journalEntryRequest carries the writable fields of an entry, whether they
// arrived as JSON or as multipart form values.
type journalEntryRequest struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Summary string `json:"summary"`
	Mood    string `json:"mood"`
	ImgName string `json:"img_name"`
}

func fieldError(field, message string) errs.FieldError {
	return errs.FieldError{Path: []string{"body", field}, Message: message}
}

// parseEntryDate accepts the date input formats the front-end produces:
// a plain calendar date or a full RFC 3339 timestamp.
func parseEntryDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// validateEntryRequest checks the request against the entry field
// constraints and returns one FieldError per offending field, in field order.
func validateEntryRequest(req journalEntryRequest) []errs.FieldError {
	var fieldErrs []errs.FieldError

	title := strings.TrimSpace(req.Title)
	switch {
	case title == "":
		fieldErrs = append(fieldErrs, fieldError("title", "title is required"))
	case utf8.RuneCountInString(title) > maxTitleLen:
		fieldErrs = append(fieldErrs, fieldError("title", fmt.Sprintf("title must be %d characters or less", maxTitleLen)))
	}

	if strings.TrimSpace(req.Date) == "" {
		fieldErrs = append(fieldErrs, fieldError("date", "date is required"))
	} else if _, ok := parseEntryDate(req.Date); !ok {
		fieldErrs = append(fieldErrs, fieldError("date", "date is invalid"))
	}

	summary := strings.TrimSpace(req.Summary)
	switch {
	case summary == "":
		fieldErrs = append(fieldErrs, fieldError("summary", "summary is required"))
	case utf8.RuneCountInString(summary) > maxSummaryLen:
		fieldErrs = append(fieldErrs, fieldError("summary", fmt.Sprintf("summary must be %d characters or less", maxSummaryLen)))
	}

	if utf8.RuneCountInString(strings.TrimSpace(req.Mood)) > maxMoodLen {
		fieldErrs = append(fieldErrs, fieldError("mood", fmt.Sprintf("mood must be %d characters or less", maxMoodLen)))
	}

	if utf8.RuneCountInString(req.ImgName) > maxImgNameLen {
		fieldErrs = append(fieldErrs, fieldError("img_name", fmt.Sprintf("image reference must be %d characters or less", maxImgNameLen)))
	}

	return fieldErrs
}

// validateImageUpload checks an uploaded file's declared type and size.
func validateImageUpload(header *multipart.FileHeader) []errs.FieldError {
	var fieldErrs []errs.FieldError
	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		fieldErrs = append(fieldErrs, fieldError("img", "uploaded file must be an image"))
	}
	if header.Size > uploads.MaxImageSize {
		fieldErrs = append(fieldErrs, fieldError("img", "image must be 5MB or smaller"))
	}
	return fieldErrs
}
