// Package response writes the JSON envelopes shared by handlers and
// middleware: {"data": ...} on success and {"error", "message", "details"}
// on failure.
package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jaekwang-park/todo-rest-api/internal/validation"
)

// Error kinds reported in the "error" field.
const (
	KindValidation         = "ValidationError"
	KindNotFound           = "NotFound"
	KindMethodNotAllowed   = "MethodNotAllowed"
	KindPayloadTooLarge    = "PayloadTooLarge"
	KindServiceUnavailable = "ServiceUnavailable"
	KindInternal           = "InternalServerError"
)

const MsgValidationFailed = "Request validation failed"

type DataResponse struct {
	Data any `json:"data"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func WriteData(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, DataResponse{Data: data})
}

func WriteError(w http.ResponseWriter, status int, kind, message string) {
	WriteJSON(w, status, ErrorResponse{Error: kind, Message: message})
}

func WriteErrorDetails(w http.ResponseWriter, status int, kind, message string, details any) {
	WriteJSON(w, status, ErrorResponse{Error: kind, Message: message, Details: details})
}

func ValidationFailed(w http.ResponseWriter, errs []validation.FieldError) {
	WriteErrorDetails(w, http.StatusBadRequest, KindValidation, MsgValidationFailed, errs)
}

func NotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, KindNotFound, message)
}

func MethodNotAllowed(w http.ResponseWriter) {
	WriteError(w, http.StatusMethodNotAllowed, KindMethodNotAllowed, "method not allowed")
}

func PayloadTooLarge(w http.ResponseWriter, limit int64) {
	WriteErrorDetails(w, http.StatusRequestEntityTooLarge, KindPayloadTooLarge, "Payload too large",
		map[string]int64{"limit_bytes": limit})
}

// InternalError never exposes the underlying cause; callers log it.
func InternalError(w http.ResponseWriter) {
	WriteError(w, http.StatusInternalServerError, KindInternal, "internal server error")
}
