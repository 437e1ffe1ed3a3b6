// Package docs registers the swagger spec served at /swagger/*.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Admin login",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/auth/profile": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["auth"],
                "summary": "Admin profile",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/users": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["users"],
                "summary": "List users",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/users/{userId}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["users"],
                "summary": "Get user",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/users/{userId}/toggle-status": {
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["users"],
                "summary": "Toggle user status",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/devices/pending": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["devices"],
                "summary": "Pending device verifications",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/devices/verify": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["devices"],
                "summary": "Verify a device",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/devices/revoke": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["devices"],
                "summary": "Revoke a device verification",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/dashboard/stats": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["dashboard"],
                "summary": "Dashboard statistics",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/transactions": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["transactions"],
                "summary": "List transactions",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Wallet Admin API",
	Description:      "Administrative back office for the savings/wallet platform",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
