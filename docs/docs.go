// Package docs is generated by swag from the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/tasks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "List tasks",
                "parameters": [
                    {"type": "boolean", "description": "Include completed tasks", "name": "all", "in": "query"},
                    {"type": "integer", "description": "Page size (default: 50)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Page offset (default: 0)", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Create a task",
                "parameters": [
                    {"description": "Task data", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.createReq"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/tasks/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Get task detail",
                "parameters": [{"type": "string", "description": "Task ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Delete a task",
                "parameters": [{"type": "string", "description": "Task ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/schedule/run": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Schedule"],
                "summary": "Run the scheduler",
                "parameters": [
                    {"description": "Horizon override", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/http.runReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "409": {"description": "Run in progress", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "502": {"description": "Calendar or store unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/schedule/latest": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Schedule"],
                "summary": "Latest run report",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "No run yet", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/schedule/bookings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Schedule"],
                "summary": "List bookings",
                "parameters": [
                    {"type": "string", "description": "Range start", "name": "from", "in": "query"},
                    {"type": "string", "description": "Range end", "name": "to", "in": "query"},
                    {"type": "string", "description": "planned or locked", "name": "status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/meetings": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Schedule"],
                "summary": "Add meetings",
                "parameters": [
                    {"description": "Meetings", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.meetingsReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}
        },
        "/ready": {
            "get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}, "503": {"description": "Dependency unavailable"}}}
        },
        "/live": {
            "get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}
        }
    },
    "definitions": {
        "http.createReq": {
            "type": "object",
            "required": ["name", "required_minutes"],
            "properties": {
                "name": {"type": "string"},
                "notes": {"type": "string"},
                "priority": {"type": "string", "example": "HIGH"},
                "required_minutes": {"type": "integer"},
                "min_chunk_minutes": {"type": "integer"},
                "max_chunk_minutes": {"type": "integer"},
                "schedule_after": {"type": "string", "example": "tomorrow"},
                "due": {"type": "string", "example": "2025-10-03T17:00:00Z"}
            }
        },
        "http.runReq": {
            "type": "object",
            "properties": {"days": {"type": "integer"}}
        },
        "http.meetingsReq": {
            "type": "object",
            "required": ["meetings"],
            "properties": {
                "meetings": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "required": ["start", "end"],
                        "properties": {
                            "start": {"type": "string"},
                            "end": {"type": "string"},
                            "summary": {"type": "string"}
                        }
                    }
                }
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "data": {},
                "error_code": {"type": "integer"},
                "errors": {},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Task Scheduler API",
	Description:      "Splits tasks into chunks and books them into free calendar time, reconciling with meetings on every run.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
