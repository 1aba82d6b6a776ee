package http

import (
	"log/slog"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/jaekwang-park/todo-rest-api/docs"
	"github.com/jaekwang-park/todo-rest-api/internal/http/handler"
	"github.com/jaekwang-park/todo-rest-api/internal/http/response"
	"github.com/jaekwang-park/todo-rest-api/internal/middleware"
	"github.com/jaekwang-park/todo-rest-api/internal/service"
	"github.com/jaekwang-park/todo-rest-api/internal/validation"
)

// Deps are the collaborators the routes need.
type Deps struct {
	Todos         *service.TodoService
	DB            handler.Pinger
	DBPingTimeout time.Duration
	Info          handler.ServiceInfo
	Logger        *slog.Logger
}

func NewRouter(deps Deps) http.Handler {
	mux := http.NewServeMux()

	// Health checks stay outside /api for load balancer probes
	mux.Handle("/health", handler.NewHealthHandler(deps.Info))
	mux.Handle("/health/db", handler.NewDBHealthHandler(deps.DB, deps.DBPingTimeout, deps.Logger))

	todos := handler.NewTodoHandler(deps.Todos, deps.Logger)
	mux.Handle("GET /api/todos", middleware.ValidateQuery(http.HandlerFunc(todos.List)))
	mux.Handle("POST /api/todos", withBody(todos.Create, validation.CreateTodo))
	mux.Handle("/api/todos", methodNotAllowed("GET, POST"))

	mux.Handle("GET /api/todos/{id}", middleware.RequireID(http.HandlerFunc(todos.Get)))
	mux.Handle("PUT /api/todos/{id}", middleware.RequireID(withBody(todos.Replace, validation.ReplaceTodo)))
	mux.Handle("PATCH /api/todos/{id}", middleware.RequireID(withBody(todos.Patch, validation.PatchTodo)))
	mux.Handle("DELETE /api/todos/{id}", middleware.RequireID(http.HandlerFunc(todos.Delete)))
	mux.Handle("/api/todos/{id}", methodNotAllowed("GET, PUT, PATCH, DELETE"))

	docsHandler := handler.NewDocsHandler(deps.Info, docs.TodoSchemaJSON(), deps.Logger)
	mux.HandleFunc("GET /{$}", docsHandler.Index)
	mux.HandleFunc("GET /openapi.json", docsHandler.OpenAPI)
	mux.HandleFunc("GET /schemas/todo.json", docsHandler.TodoSchema)
	mux.Handle("GET /docs", http.RedirectHandler("/docs/index.html", http.StatusMovedPermanently))
	mux.Handle("GET /docs/{$}", http.RedirectHandler("/docs/index.html", http.StatusMovedPermanently))
	mux.Handle("GET /docs/", httpSwagger.Handler(httpSwagger.URL("/openapi.json")))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Resource not found")
	})

	return mux
}

func withBody(h http.HandlerFunc, schema validation.Schema) http.Handler {
	return middleware.ValidateBody(schema)(h)
}

func methodNotAllowed(allow string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		response.MethodNotAllowed(w)
	})
}
