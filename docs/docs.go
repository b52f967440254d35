// Package docs registers the swagger specification served at /swagger.
// Regenerate with swag init -g cmd/api/main.go when routes change.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        }
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "Service healthy"}}
            }
        },
        "/schedules": {
            "post": {
                "tags": ["schedules"],
                "summary": "Assemble a schedule",
                "responses": {
                    "200": {"description": "Assembled schedule"},
                    "400": {"description": "Invalid request data"},
                    "503": {"description": "Catalog not loaded yet"}
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["courses"],
                "summary": "List courses",
                "responses": {
                    "200": {"description": "Courses retrieved successfully"},
                    "503": {"description": "Catalog not loaded yet"}
                }
            }
        },
        "/courses/{id}": {
            "get": {
                "tags": ["courses"],
                "summary": "Get course details",
                "responses": {
                    "200": {"description": "Course retrieved successfully"},
                    "404": {"description": "Course not found"}
                }
            }
        },
        "/courses/eligible": {
            "post": {
                "tags": ["courses"],
                "summary": "List eligible courses",
                "responses": {
                    "200": {"description": "Eligible courses"},
                    "400": {"description": "Invalid request data"}
                }
            }
        },
        "/core-tags": {
            "get": {
                "tags": ["courses"],
                "summary": "List core requirement tags",
                "responses": {
                    "200": {"description": "Core tags"},
                    "503": {"description": "Catalog not loaded yet"}
                }
            }
        },
        "/catalog/refresh": {
            "post": {
                "tags": ["catalog"],
                "summary": "Refresh the catalog",
                "responses": {
                    "200": {"description": "Catalog refreshed"},
                    "502": {"description": "Catalog source invalid or unreadable"}
                }
            }
        },
        "/sessions": {
            "post": {
                "tags": ["sessions"],
                "summary": "Start a session",
                "responses": {"201": {"description": "Session created"}}
            }
        },
        "/sessions/{id}/history": {
            "get": {
                "tags": ["sessions"],
                "summary": "Get session history",
                "responses": {
                    "200": {"description": "Session history"},
                    "404": {"description": "Session not found"}
                }
            },
            "put": {
                "tags": ["sessions"],
                "summary": "Replace session history",
                "responses": {"200": {"description": "Updated history"}}
            },
            "post": {
                "tags": ["sessions"],
                "summary": "Append to session history",
                "responses": {"200": {"description": "Updated history"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "CoursePilot API",
	Description:      "Schedule assembly service: builds conflict-free weekly class schedules from the course catalog.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
