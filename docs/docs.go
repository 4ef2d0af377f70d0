// Package docs registers the swagger description served at /swagger.
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
        "/api/chat": {
            "post": {
                "description": "Routes the farmer's question to one specialist advisor, which may read live sensor data before answering.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Ask the orchard advisor",
                "parameters": [
                    {
                        "description": "Farmer question",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.chatReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.chatResp"}},
                    "400": {"description": "Device ID is required", "schema": {"$ref": "#/definitions/response.DetailResp"}},
                    "422": {"description": "Invalid request body", "schema": {"$ref": "#/definitions/response.DetailResp"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Agent error", "schema": {"$ref": "#/definitions/response.DetailResp"}}
                }
            }
        },
        "/api/sensor-data/{device_id}": {
            "get": {
                "description": "Returns the newest readings of a device with a structured summary, for dashboards.",
                "produces": ["application/json"],
                "tags": ["Sensor"],
                "summary": "Raw sensor readings",
                "parameters": [
                    {"type": "string", "description": "Sensor device ID", "name": "device_id", "in": "path", "required": true},
                    {"type": "integer", "description": "Number of readings, unbounded; 0 returns none (default: 10)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.listResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.DetailResp"}},
                    "500": {"description": "Failed to fetch sensor data", "schema": {"$ref": "#/definitions/response.DetailResp"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy and whether a language model provider is configured",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API is ready to serve traffic",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "No language model provider", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/test/classify": {
            "post": {
                "description": "Classify a farmer question and show which advisor would handle it. No sensor data is fetched and no answer is generated.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["test"],
                "summary": "Test question routing",
                "parameters": [
                    {
                        "description": "Question to classify",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/test.ClassifyRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/test.ClassifyResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/test.ClassifyResponse"}}
                }
            }
        },
        "/test/health": {
            "get": {
                "description": "Check if test endpoints are available",
                "produces": ["application/json"],
                "tags": ["test"],
                "summary": "Test health check",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/test.HealthCheckResponse"}}}
            }
        }
    },
    "definitions": {
        "http.chatReq": {
            "type": "object",
            "properties": {
                "conversation_id": {"type": "string"},
                "device_id": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "http.chatResp": {
            "type": "object",
            "properties": {
                "advisor_used": {"type": "string"},
                "conversation_id": {"type": "string"},
                "device_id": {"type": "string"},
                "response": {"type": "string"},
                "sensor_data_used": {"type": "boolean"}
            }
        },
        "http.listResp": {
            "type": "object",
            "properties": {
                "device_id": {"type": "string"},
                "readings": {"type": "array", "items": {"type": "object", "additionalProperties": true}},
                "summary": {"type": "object", "additionalProperties": true},
                "total_readings": {"type": "integer"}
            }
        },
        "response.DetailResp": {
            "type": "object",
            "properties": {"detail": {"type": "string"}}
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "data": {},
                "error_code": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "test.ClassifyRequest": {
            "type": "object",
            "required": ["message"],
            "properties": {"message": {"type": "string"}}
        },
        "test.ClassifyResponse": {
            "type": "object",
            "properties": {
                "advisor": {"type": "string"},
                "details": {"type": "string"},
                "error": {"type": "string"},
                "fallback": {"type": "boolean"},
                "message": {"type": "string"},
                "raw": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "test.HealthCheckResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "status": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8000",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Apple Orchard Advisor API",
	Description:      "Multi-advisor assistant for apple growers, grounded in live orchard sensor data.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
