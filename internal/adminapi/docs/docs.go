// Package docs holds the Swagger specification for the admin API, written
// by hand in the shape `swag init` produces: a minimal OpenAPI 2.0 document
// registered with swaggo/swag's global spec registry so gin-swagger can
// serve it without a separate file on disk.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{.Description}}",
        "version": "{{.Version}}"
    },
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "tags": ["system"],
                "summary": "Health check",
                "responses": {"200": {"description": "ok"}}
            }
        },
        "/stats": {
            "get": {
                "tags": ["system"],
                "summary": "Resolver and process statistics",
                "responses": {"200": {"description": "ok"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "cacheresolver admin API",
	Description:      "Read-only health and statistics endpoints for the caching DNS resolver.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
