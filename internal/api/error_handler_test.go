package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskdeck/task-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(err, c)

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, body.Error
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"task not found", domain.ErrTaskNotFound, http.StatusNotFound, "task not found"},
		{"email taken", domain.ErrEmailTaken, http.StatusConflict, "email already registered"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, "invalid credentials"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := renderError(t, tt.err)
			if code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, code)
			}
			if msg != tt.wantMsg {
				t.Fatalf("expected message %q, got %q", tt.wantMsg, msg)
			}
		})
	}
}

func TestErrorHandler_AuthFailuresAreIndistinguishable(t *testing.T) {
	// Bad password and unknown identity must render identically so callers
	// cannot enumerate registered emails.
	codeA, msgA := renderError(t, domain.ErrInvalidCredentials)
	codeB, msgB := renderError(t, domain.ErrUnauthorized)
	if codeA != codeB || msgA != msgB {
		t.Fatalf("auth failures differ: %d %q vs %d %q", codeA, msgA, codeB, msgB)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "invalid authentication credentials"))
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if msg != "invalid authentication credentials" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	code, msg := renderError(t, errors.New("pq: connection refused at 10.0.0.3"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
	if strings.Contains(msg, "10.0.0.3") {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}
