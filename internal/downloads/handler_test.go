package downloads_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"docuvault/internal/documents"
	"docuvault/internal/downloads"
	"docuvault/pkg/routes"
)

type fakeSystem struct {
	token    string
	tokenErr error
	openErr  error
	reader   io.ReadCloser
}

func (f *fakeSystem) Handler(routes.Middleware, string) *downloads.Handler { return nil }

func (f *fakeSystem) CreateToken(context.Context, uuid.UUID) (string, error) {
	return f.token, f.tokenErr
}

func (f *fakeSystem) Open(
	context.Context,
	uuid.UUID,
	string,
) (*documents.Document, io.ReadCloser, error) {
	if f.openErr != nil {
		return nil, nil, f.openErr
	}
	return &documents.Document{FileName: "report", FileExtension: "pdf"}, f.reader, nil
}

func newTestHandler(sys downloads.System, basePath string) *downloads.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return downloads.NewHandler(sys, logger, nil, basePath)
}

func TestGenerateLinkUsesBasePath(t *testing.T) {
	h := newTestHandler(&fakeSystem{token: "signed-token"}, "/v1")
	id := uuid.New()

	r := httptest.NewRequest("POST", "/downloads/"+id.String()+"/link", nil)
	r.SetPathValue("documentId", id.String())
	w := httptest.NewRecorder()

	h.GenerateLink(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	want := fmt.Sprintf("http://%s/v1/downloads/%s?token=signed-token", r.Host, id)
	if body["link"] != want {
		t.Errorf("link = %q, want %q", body["link"], want)
	}
}

func TestDownloadRejectsMissingToken(t *testing.T) {
	h := newTestHandler(&fakeSystem{}, "/api")
	id := uuid.New()

	r := httptest.NewRequest("GET", "/downloads/"+id.String(), nil)
	r.SetPathValue("documentId", id.String())
	w := httptest.NewRecorder()

	h.Download(w, r)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestDownloadRejectsInvalidToken(t *testing.T) {
	h := newTestHandler(&fakeSystem{openErr: downloads.ErrInvalidToken}, "/api")
	id := uuid.New()

	r := httptest.NewRequest("GET", "/downloads/"+id.String()+"?token=bad", nil)
	r.SetPathValue("documentId", id.String())
	w := httptest.NewRecorder()

	h.Download(w, r)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
}
