package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	catalogdomain "github.com/tapestack/tapestack/services/catalog/domain"
	rentaldomain "github.com/tapestack/tapestack/services/rental/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrDueDateNotFuture", rentaldomain.ErrDueDateNotFuture, http.StatusBadRequest},
		{"ErrNotBorrower", rentaldomain.ErrNotBorrower, http.StatusForbidden},
		{"ErrRentalNotFound", rentaldomain.ErrRentalNotFound, http.StatusNotFound},
		{"ErrVHSNotFound", catalogdomain.ErrVHSNotFound, http.StatusNotFound},
		{"ErrOutOfStock", rentaldomain.ErrOutOfStock, http.StatusConflict},
		{"ErrAlreadyReturned", rentaldomain.ErrAlreadyReturned, http.StatusConflict},
		{"ErrConcurrentUpdate", rentaldomain.ErrConcurrentUpdate, http.StatusConflict},
		{"ErrVHSAlreadyExists", catalogdomain.ErrVHSAlreadyExists, http.StatusConflict},
		{"ErrNotReturned", rentaldomain.ErrNotReturned, http.StatusUnprocessableEntity},
		{"ErrRateUnavailable", rentaldomain.ErrRateUnavailable, http.StatusUnprocessableEntity},
		{"ErrInvalidVHS", catalogdomain.ErrInvalidVHS, http.StatusUnprocessableEntity},
		{"wrapped ErrRentalNotFound", fmt.Errorf("load rental: %w", rentaldomain.ErrRentalNotFound), http.StatusNotFound},
		{"wrapped ErrOutOfStock", fmt.Errorf("create rental: %w", rentaldomain.ErrOutOfStock), http.StatusConflict},
		{"double-wrapped ErrVHSNotFound", fmt.Errorf("lookup vhs: %w", fmt.Errorf("get vhs: %w", catalogdomain.ErrVHSNotFound)), http.StatusNotFound},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, rentaldomain.ErrRentalNotFound)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatal("response body missing 'error' key")
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, rentaldomain.ErrRentalNotFound)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}
