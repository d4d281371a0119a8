// Package client is the Go SDK for the journal API: a thin REST client, the
// local entry validator and image-URL normalizer, and a Store that keeps an
// ordered feed reconciled against the server (optimistic adds, confirmed
// edits and deletes).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
)

// Config carries the explicit construction-time settings; there is no
// ambient process-wide state.
type Config struct {
	// BaseURL of the API server, e.g. "http://localhost:3002".
	BaseURL string
}

type Client struct {
	baseURL     string
	http        *http.Client
	listRetries uint64
}

// New constructs a Client for the given configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	c := &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		http:        &http.Client{},
		listRetries: 2,
	}

	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// BaseURL returns the configured server base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// listResponse covers both list body shapes servers produce: a bare array
// or an object wrapping it under "entries".
type listResponse struct {
	Entries []Entry `json:"entries"`
}

// List fetches every journal entry. Transient failures (transport errors,
// 5xx responses) are retried a bounded number of times with exponential
// backoff before the last error is returned.
func (c *Client) List(ctx context.Context) ([]Entry, error) {
	var entries []Entry

	op := func() error {
		var err error
		entries, err = c.list(ctx)
		if err != nil && !retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 100 * time.Millisecond
	if err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(exp, c.listRetries), ctx)); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) list(ctx context.Context) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/journalEntries", nil)
	if err != nil {
		return nil, err
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	// A bare array and {entries:[...]} are both accepted.
	var entries []Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		var wrapped listResponse
		if err := json.Unmarshal(body, &wrapped); err != nil {
			return nil, &ServerError{Status: http.StatusOK, Message: "unrecognized list response"}
		}
		entries = wrapped.Entries
	}

	for i := range entries {
		c.fillImageURL(&entries[i])
	}
	return entries, nil
}

// Create submits a new entry. When a file is attached it is sent as a
// multipart form and takes precedence over the textual ImgName.
func (c *Client) Create(ctx context.Context, f Fields, file *File) (*Entry, error) {
	return c.send(ctx, http.MethodPost, c.baseURL+"/api/journalEntries", f, file)
}

// Update overwrites the entry with the given identifier.
func (c *Client) Update(ctx context.Context, id string, f Fields, file *File) (*Entry, error) {
	return c.send(ctx, http.MethodPut, c.baseURL+"/api/journalEntries/"+id, f, file)
}

// Delete removes the entry with the given identifier.
func (c *Client) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/journalEntries/"+id, nil)
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}

func (c *Client) send(ctx context.Context, method, url string, f Fields, file *File) (*Entry, error) {
	var body io.Reader
	var contentType string
	var err error

	if file != nil {
		body, contentType, err = multipartBody(f, file)
	} else {
		body, contentType, err = jsonBody(f)
	}
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	respBody, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var entry Entry
	if err := json.Unmarshal(respBody, &entry); err != nil {
		return nil, &ServerError{Status: http.StatusOK, Message: "unrecognized entry response"}
	}
	c.fillImageURL(&entry)
	return &entry, nil
}

func jsonBody(f Fields) (io.Reader, string, error) {
	payload, err := json.Marshal(map[string]string{
		"title":    f.Title,
		"date":     f.Date,
		"summary":  f.Summary,
		"mood":     f.Mood,
		"img_name": f.ImgName,
	})
	if err != nil {
		return nil, "", err
	}
	return bytes.NewReader(payload), "application/json", nil
}

func multipartBody(f Fields, file *File) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range map[string]string{
		"title":   f.Title,
		"date":    f.Date,
		"summary": f.Summary,
		"mood":    f.Mood,
	} {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="img"; filename="%s"`, file.Name))
	hdr.Set("Content-Type", file.ContentType)
	part, err := w.CreatePart(hdr)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// errorBody is the failure payload the server produces: a message plus an
// optional ordered list of per-field details.
type errorBody struct {
	Message string `json:"message"`
	Details []struct {
		Path    []string `json:"path"`
		Message string   `json:"message"`
	} `json:"details"`
}

// do executes the request and translates failures into the client's error
// taxonomy: TransportError when the request never completed, ValidationError
// when the response carries field details, ServerError otherwise.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && len(eb.Details) > 0 {
		fields := make(map[string]string, len(eb.Details))
		for _, d := range eb.Details {
			if len(d.Path) == 0 {
				continue
			}
			// The field key is the last path segment, e.g. ["body","mood"].
			fields[d.Path[len(d.Path)-1]] = d.Message
		}
		return nil, &ValidationError{Message: eb.Message, Fields: fields}
	}

	message := eb.Message
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	return nil, &ServerError{Status: resp.StatusCode, Message: message}
}

// fillImageURL computes the display URL for an entry that carries a stored
// reference but no pre-resolved one.
func (c *Client) fillImageURL(e *Entry) {
	if e.ImgName != "" && e.ImgURL == "" {
		e.ImgURL = NormalizeImageURL(e.ImgName, c.baseURL)
	}
}

// retryable reports whether a List failure is worth retrying: transport
// errors and 5xx responses are, anything the server actively rejected is not.
func retryable(err error) bool {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return true
	}
	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		return serverErr.Status >= 500
	}
	return false
}
