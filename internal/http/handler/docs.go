package handler

import (
	"log/slog"
	"net/http"

	"github.com/swaggo/swag"

	"github.com/jaekwang-park/todo-rest-api/internal/http/response"
)

type indexLinks struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Health  string `json:"health"`
	Docs    string `json:"docs"`
	OpenAPI string `json:"openapi"`
	Schema  string `json:"schema"`
	Todos   string `json:"todos"`
}

// DocsHandler serves the service index, the OpenAPI document and the Todo
// JSON schema.
type DocsHandler struct {
	info   ServiceInfo
	schema []byte
	logger *slog.Logger
}

func NewDocsHandler(info ServiceInfo, todoSchema []byte, logger *slog.Logger) *DocsHandler {
	return &DocsHandler{info: info, schema: todoSchema, logger: logger}
}

func (h *DocsHandler) Index(w http.ResponseWriter, r *http.Request) {
	response.WriteData(w, http.StatusOK, indexLinks{
		Service: h.info.Name,
		Version: h.info.Version,
		Health:  "/health",
		Docs:    "/docs/index.html",
		OpenAPI: "/openapi.json",
		Schema:  "/schemas/todo.json",
		Todos:   "/api/todos",
	})
}

// OpenAPI writes the registered swagger document.
func (h *DocsHandler) OpenAPI(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		h.logger.Error("failed to render openapi document", "error", err)
		response.InternalError(w)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}

func (h *DocsHandler) TodoSchema(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/schema+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.schema)
}
