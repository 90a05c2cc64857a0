// Package docs registers the OpenAPI description served under /swagger.
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
        "/prefectures": {
            "get": {
                "summary": "List prefectures",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Prefecture"}}}
                }
            }
        },
        "/prefectures/distance": {
            "get": {
                "summary": "Straight-line distance between two prefectures",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "origin prefecture id", "name": "from", "in": "query", "required": true},
                    {"type": "string", "description": "destination prefecture id", "name": "to", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PrefectureDistance"}}
                }
            }
        },
        "/geocode": {
            "get": {
                "summary": "Geocode an address",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "prefecture id", "name": "prefecture_id", "in": "query", "required": true},
                    {"type": "string", "description": "address below the prefecture", "name": "address", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Coordinate"}},
                    "502": {"description": "Bad Gateway", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/estimates/quote": {
            "post": {
                "summary": "Price a move without registering it",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Estimate"}}
                }
            }
        },
        "/estimates": {
            "post": {
                "summary": "Price a move and register the customer",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Estimate"}}
                }
            }
        }
    },
    "definitions": {
        "models.Coordinate": {
            "type": "object",
            "properties": {"lat": {"type": "string"}, "lon": {"type": "string"}}
        },
        "models.Prefecture": {
            "type": "object",
            "properties": {"prefecture_id": {"type": "string"}, "prefecture_name": {"type": "string"}}
        },
        "models.PrefectureDistance": {
            "type": "object",
            "properties": {
                "prefecture_id_from": {"type": "string"},
                "prefecture_id_to": {"type": "string"},
                "distance": {"type": "number"}
            }
        },
        "models.Estimate": {
            "type": "object",
            "properties": {
                "customer_id": {"type": "integer"},
                "route_distance_m": {"type": "number"},
                "prefecture_distance_km": {"type": "number"},
                "boxes": {"type": "integer"},
                "distance_price": {"type": "integer"},
                "truck_price": {"type": "integer"},
                "season_factor": {"type": "number"},
                "option_price": {"type": "integer"},
                "total_price": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Moving Estimate API",
	Description:      "Prices moves from prefecture addresses, driving distance and season.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
