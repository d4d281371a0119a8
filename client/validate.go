package client

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxTitleLen   = 200
	maxSummaryLen = 5000
	maxMoodLen    = 200
	maxImgNameLen = 1000

	// MaxImageSize is the largest accepted image upload, 5 MiB.
	MaxImageSize = 5 * 1024 * 1024
)

// Fields holds the writable values of a journal entry as the user typed them.
type Fields struct {
	Title   string
	Date    string
	Summary string
	Mood    string
	ImgName string
}

// parseDate parses the date formats entries carry: a plain calendar date or
// an RFC 3339 timestamp. The zero time reports an unparseable value.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

// Validate checks candidate fields (and an attached image file, when there
// is one) before submission. The result maps field names to human-readable
// messages; an empty map means valid. The server may reject with additional
// field errors in the same shape, merged by key.
func Validate(f Fields, file *File) map[string]string {
	errs := make(map[string]string)

	title := strings.TrimSpace(f.Title)
	if title == "" {
		errs["title"] = "Title is required."
	} else if utf8.RuneCountInString(title) > maxTitleLen {
		errs["title"] = fmt.Sprintf("Title must be %d characters or less.", maxTitleLen)
	}

	if strings.TrimSpace(f.Date) == "" {
		errs["date"] = "Date is required."
	} else if parseDate(f.Date).IsZero() {
		errs["date"] = "Invalid date."
	}

	summary := strings.TrimSpace(f.Summary)
	if summary == "" {
		errs["summary"] = "Summary is required."
	} else if utf8.RuneCountInString(summary) > maxSummaryLen {
		errs["summary"] = fmt.Sprintf("Summary must be %d characters or less.", maxSummaryLen)
	}

	if utf8.RuneCountInString(strings.TrimSpace(f.Mood)) > maxMoodLen {
		errs["mood"] = fmt.Sprintf("Mood must be %d characters or less.", maxMoodLen)
	}

	if utf8.RuneCountInString(strings.TrimSpace(f.ImgName)) > maxImgNameLen {
		errs["img_name"] = "Image URL too long."
	}

	if file != nil {
		if !strings.HasPrefix(file.ContentType, "image/") {
			errs["img"] = "Uploaded file must be an image."
		} else if file.Size > MaxImageSize {
			errs["img"] = "Image must be 5MB or smaller."
		}
	}

	return errs
}
