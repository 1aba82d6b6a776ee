// Package docs holds the OpenAPI document served at /openapi.json and
// /docs/, and the published Todo JSON schema.
package docs

import (
	"bytes"
	_ "embed"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/swaggo/swag"
)

//go:embed todo.schema.json
var todoSchema []byte

const todoSchemaURL = "todo.schema.json"

// TodoSchemaJSON returns the raw Todo JSON schema document.
func TodoSchemaJSON() []byte {
	return todoSchema
}

// TodoSchema compiles the Todo JSON schema with format assertions enabled.
func TodoSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	if err := compiler.AddResource(todoSchemaURL, bytes.NewReader(todoSchema)); err != nil {
		return nil, fmt.Errorf("failed to load todo schema: %w", err)
	}
	schema, err := compiler.Compile(todoSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile todo schema: %w", err)
	}
	return schema, nil
}

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Todo REST API",
	Description:      "CRUD over a single Todo resource with health and documentation endpoints.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "schemes": {{ marshal .Schemes }},
    "consumes": ["application/json"],
    "produces": ["application/json"],
    "paths": {
        "/api/todos": {
            "get": {
                "summary": "List todos",
                "description": "Newest first by id.",
                "tags": ["todos"],
                "parameters": [
                    {"name": "limit", "in": "query", "type": "integer", "minimum": 1, "default": 50},
                    {"name": "offset", "in": "query", "type": "integer", "minimum": 0, "default": 0}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TodoList"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "post": {
                "summary": "Create a todo",
                "tags": ["todos"],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTodo"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/TodoData"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}},
                    "413": {"description": "Payload Too Large", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/todos/{id}": {
            "parameters": [
                {"name": "id", "in": "path", "required": true, "type": "integer", "minimum": 1}
            ],
            "get": {
                "summary": "Get a todo",
                "tags": ["todos"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TodoData"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "put": {
                "summary": "Replace a todo",
                "tags": ["todos"],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReplaceTodo"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TodoData"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}},
                    "413": {"description": "Payload Too Large", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "patch": {
                "summary": "Update some fields of a todo",
                "tags": ["todos"],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PatchTodo"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TodoData"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}},
                    "413": {"description": "Payload Too Large", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "delete": {
                "summary": "Delete a todo",
                "tags": ["todos"],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/health": {
            "get": {
                "summary": "Liveness",
                "tags": ["health"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health/db": {
            "get": {
                "summary": "Database connectivity",
                "tags": ["health"],
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        }
    },
    "definitions": {
        "Todo": {
            "type": "object",
            "required": ["id", "title", "description", "completed", "created_at", "updated_at"],
            "properties": {
                "id": {"type": "integer", "format": "int64"},
                "title": {"type": "string"},
                "description": {"type": "string", "x-nullable": true},
                "completed": {"type": "boolean"},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "TodoData": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/Todo"}}
        },
        "TodoList": {
            "type": "object",
            "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/Todo"}}}
        },
        "CreateTodo": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "title": {"type": "string", "minLength": 1},
                "description": {"type": "string", "x-nullable": true},
                "completed": {"type": "boolean", "default": false}
            }
        },
        "ReplaceTodo": {
            "type": "object",
            "required": ["title", "description", "completed"],
            "properties": {
                "title": {"type": "string", "minLength": 1},
                "description": {"type": "string", "x-nullable": true},
                "completed": {"type": "boolean"}
            }
        },
        "PatchTodo": {
            "type": "object",
            "minProperties": 1,
            "properties": {
                "title": {"type": "string", "minLength": 1},
                "description": {"type": "string", "x-nullable": true},
                "completed": {"type": "boolean"}
            }
        },
        "FieldError": {
            "type": "object",
            "properties": {
                "path": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "Error": {
            "type": "object",
            "required": ["error", "message"],
            "properties": {
                "error": {"type": "string", "enum": ["ValidationError", "NotFound", "MethodNotAllowed", "PayloadTooLarge", "ServiceUnavailable", "InternalServerError"]},
                "message": {"type": "string"},
                "details": {}
            }
        }
    }
}`
