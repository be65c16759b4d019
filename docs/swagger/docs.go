// Package swagger registers the OpenAPI document served under /swagger.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/locations/search": {
            "get": {
                "description": "Finds Sparkasse branches, ATMs and self-service points around a coordinate, sorted by distance. Facilities are matched with OR semantics; unknown facility ids are ignored.",
                "produces": ["application/json"],
                "tags": ["Locations"],
                "summary": "Search branches and ATMs",
                "parameters": [
                    {"type": "number", "description": "Latitude of the search center (-90..90)", "name": "latitude", "in": "query", "required": true},
                    {"type": "number", "description": "Longitude of the search center (-180..180)", "name": "longitude", "in": "query", "required": true},
                    {"type": "number", "default": 5, "description": "Search radius in km (0.1..50)", "name": "radius_km", "in": "query"},
                    {"enum": ["ATM", "BRANCH", "SELF_SERVICE"], "type": "string", "description": "Location type", "name": "type_group", "in": "query"},
                    {"type": "boolean", "description": "Only locations open right now", "name": "open_now", "in": "query"},
                    {"type": "string", "description": "Comma-separated facility ids, e.g. 1,4", "name": "facilities", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Maximum number of results (1..50)", "name": "limit", "in": "query"},
                    {"type": "integer", "default": 1, "description": "Page number, echoed back", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "504": {"description": "Gateway Timeout", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Same as the GET variant with the query passed as a JSON document.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Locations"],
                "summary": "Search branches and ATMs (JSON body)",
                "parameters": [
                    {"description": "Search query", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SearchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/locations/{id}": {
            "get": {
                "description": "Returns the full record of a single location.",
                "produces": ["application/json"],
                "tags": ["Locations"],
                "summary": "Location details",
                "parameters": [
                    {"type": "integer", "description": "Location id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/facilities": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reference"],
                "summary": "Facility catalog",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}}
            }
        },
        "/api/v1/object-types": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reference"],
                "summary": "Object types",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}}
            }
        },
        "/api/v1/configuration": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reference"],
                "summary": "Region configuration",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}}
            }
        },
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}
            }
        }
    },
    "definitions": {
        "dto.SearchRequest": {
            "type": "object",
            "required": ["latitude", "longitude"],
            "properties": {
                "latitude": {"type": "number", "maximum": 90, "minimum": -90},
                "longitude": {"type": "number", "maximum": 180, "minimum": -180},
                "radius_km": {"type": "number", "maximum": 50, "minimum": 0.1},
                "type_group": {"type": "string", "enum": ["ATM", "BRANCH", "SELF_SERVICE"]},
                "open_now": {"type": "boolean"},
                "facilities": {"type": "array", "items": {"type": "integer"}},
                "limit": {"type": "integer", "maximum": 50, "minimum": 1},
                "page": {"type": "integer", "minimum": 1}
            }
        },
        "errors.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"$ref": "#/definitions/errors.AppError"}}
        },
        "utils.Meta": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "page": {"type": "integer"},
                "limit": {"type": "integer"}
            }
        },
        "utils.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "meta": {"$ref": "#/definitions/utils.Meta"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Branch Finder API",
	Description:      "Finds Sparkasse branches, ATMs and self-service points near a coordinate.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
