package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(Config{BaseURL: srv.URL}, WithHTTPClient(srv.Client()), WithListRetries(0))
	require.NoError(t, err)
	return c, srv
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestList_BareArray(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/journalEntries", r.URL.Path)
		w.Write([]byte(`[{"id":"e1","title":"One","date":"2025-10-01","summary":"s"}]`))
	}))

	entries, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "e1", entries[0].ID)
}

func TestList_WrappedShape(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"entries":[{"_id":"m1","title":"One","date":"2025-10-01","summary":"s"}],"total":1}`))
	}))

	entries, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "m1", entries[0].ID)
}

func TestList_NumericMongoID(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"_id":7,"title":"One","date":"2025-10-01","summary":"s"}]`))
	}))

	entries, err := c.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "7", entries[0].ID)
}

func TestList_FillsImageURL(t *testing.T) {
	c, srv := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"e1","title":"One","date":"2025-10-01","summary":"s","img_name":"uploads/x.png"}]`))
	}))

	entries, err := c.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/uploads/x.png", entries[0].ImgURL)
}

func TestList_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL}, WithHTTPClient(srv.Client()), WithListRetries(2))
	require.NoError(t, err)

	entries, err := c.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, int32(2), calls.Load())
}

func TestList_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL}, WithHTTPClient(srv.Client()), WithListRetries(3))
	require.NoError(t, err)

	_, err = c.List(context.Background())
	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusNotFound, serverErr.Status)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCreate_JSONBody(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "A day", body["title"])
		assert.Equal(t, "uploads/x.png", body["img_name"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"e9","title":"A day","date":"2025-10-01","summary":"s","img_name":"uploads/x.png"}`))
	}))

	saved, err := c.Create(context.Background(), Fields{Title: "A day", Date: "2025-10-01", Summary: "s", ImgName: "uploads/x.png"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "e9", saved.ID)
	assert.Equal(t, c.BaseURL()+"/uploads/x.png", saved.ImgURL)
}

func TestCreate_MultipartFileTakesPrecedence(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "A day", r.FormValue("title"))

		file, header, err := r.FormFile("img")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "photo.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"e9","title":"A day","date":"2025-10-01","summary":"s","img_name":"uploads/abc.png"}`))
	}))

	file := &File{Name: "photo.png", ContentType: "image/png", Size: 4, Content: strings.NewReader("PNG!")}
	saved, err := c.Create(context.Background(), Fields{Title: "A day", Date: "2025-10-01", Summary: "s"}, file)
	require.NoError(t, err)
	assert.Equal(t, "uploads/abc.png", saved.ImgName)
}

func TestUpdate_TargetsEntryPath(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/journalEntries/e1", r.URL.Path)
		w.Write([]byte(`{"id":"e1","title":"New","date":"2025-10-01","summary":"s"}`))
	}))

	saved, err := c.Update(context.Background(), "e1", Fields{Title: "New", Date: "2025-10-01", Summary: "s"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "New", saved.Title)
}

func TestDelete_TargetsEntryPath(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/journalEntries/e1", r.URL.Path)
		w.Write([]byte(`{"status":"success"}`))
	}))

	require.NoError(t, c.Delete(context.Background(), "e1"))
}

func TestErrorTranslation_ValidationDetails(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"validation failed","details":[{"path":["body","mood"],"message":"too long"}]}`))
	}))

	_, err := c.Create(context.Background(), Fields{Title: "t", Date: "2025-10-01", Summary: "s"}, nil)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, map[string]string{"mood": "too long"}, valErr.Fields)
}

func TestErrorTranslation_ServerError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	}))

	_, err := c.Create(context.Background(), Fields{Title: "t", Date: "2025-10-01", Summary: "s"}, nil)
	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusInternalServerError, serverErr.Status)
	assert.Equal(t, "boom", serverErr.Message)
}

func TestErrorTranslation_UnrecognizedErrorBody(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>bad gateway</html>`))
	}))

	_, err := c.Create(context.Background(), Fields{Title: "t", Date: "2025-10-01", Summary: "s"}, nil)
	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusBadGateway, serverErr.Status)
}

func TestErrorTranslation_Transport(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listening anymore

	c, err := New(Config{BaseURL: srv.URL}, WithListRetries(0))
	require.NoError(t, err)

	_, err = c.Create(context.Background(), Fields{Title: "t", Date: "2025-10-01", Summary: "s"}, nil)
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
}
