package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jaekwang-park/todo-rest-api/internal/http/response"
	"github.com/jaekwang-park/todo-rest-api/internal/validation"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return body
}

func TestWriteData(t *testing.T) {
	w := httptest.NewRecorder()

	response.WriteData(w, http.StatusCreated, map[string]string{"title": "x"})

	if w.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}

	body := decode(t, w)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", body)
	}
	if data["title"] != "x" {
		t.Errorf("expected title=x, got %v", data["title"])
	}
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name        string
		write       func(w http.ResponseWriter)
		wantStatus  int
		wantKind    string
		wantMessage string
		wantDetails bool
	}{
		{
			name:        "not found",
			write:       func(w http.ResponseWriter) { response.NotFound(w, "Todo not found") },
			wantStatus:  http.StatusNotFound,
			wantKind:    "NotFound",
			wantMessage: "Todo not found",
		},
		{
			name:        "method not allowed",
			write:       response.MethodNotAllowed,
			wantStatus:  http.StatusMethodNotAllowed,
			wantKind:    "MethodNotAllowed",
			wantMessage: "method not allowed",
		},
		{
			name:        "internal",
			write:       response.InternalError,
			wantStatus:  http.StatusInternalServerError,
			wantKind:    "InternalServerError",
			wantMessage: "internal server error",
		},
		{
			name: "validation",
			write: func(w http.ResponseWriter) {
				response.ValidationFailed(w, []validation.FieldError{{Path: "title", Message: "is required"}})
			},
			wantStatus:  http.StatusBadRequest,
			wantKind:    "ValidationError",
			wantMessage: "Request validation failed",
			wantDetails: true,
		},
		{
			name:        "payload too large",
			write:       func(w http.ResponseWriter) { response.PayloadTooLarge(w, 1024) },
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantKind:    "PayloadTooLarge",
			wantMessage: "Payload too large",
			wantDetails: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.write(w)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			body := decode(t, w)
			if body["error"] != tt.wantKind {
				t.Errorf("expected error=%s, got %v", tt.wantKind, body["error"])
			}
			if body["message"] != tt.wantMessage {
				t.Errorf("expected message=%q, got %v", tt.wantMessage, body["message"])
			}
			if _, ok := body["details"]; ok != tt.wantDetails {
				t.Errorf("details present=%v, want %v", ok, tt.wantDetails)
			}
		})
	}
}

func TestValidationFailed_DetailsShape(t *testing.T) {
	w := httptest.NewRecorder()
	response.ValidationFailed(w, []validation.FieldError{
		{Path: "description", Message: "is required"},
		{Path: "completed", Message: "is required"},
	})

	var body response.ErrorResponse
	var details []validation.FieldError
	body.Details = &details
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(details) != 2 || details[0].Path != "description" || details[1].Path != "completed" {
		t.Errorf("unexpected details %+v", details)
	}
}

func TestPayloadTooLarge_Limit(t *testing.T) {
	w := httptest.NewRecorder()
	response.PayloadTooLarge(w, 2048)

	body := decode(t, w)
	details, ok := body["details"].(map[string]any)
	if !ok {
		t.Fatalf("expected details object, got %v", body["details"])
	}
	if details["limit_bytes"] != float64(2048) {
		t.Errorf("expected limit_bytes=2048, got %v", details["limit_bytes"])
	}
}
