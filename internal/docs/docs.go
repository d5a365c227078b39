// Package docs registers the Swagger document served under /swagger/.
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
        "/health": {
            "get": {
                "tags": ["system"],
                "summary": "Service health and connected observer count",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/goals": {
            "get": {
                "tags": ["goals"],
                "summary": "List goals with their progress history",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/goal.Goal"}}}
                }
            },
            "post": {
                "tags": ["goals"],
                "summary": "Create a goal",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "goal", "required": true, "schema": {"$ref": "#/definitions/goal.CreateGoalDTO"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/goal.Goal"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/goals/{id}": {
            "get": {
                "tags": ["goals"],
                "summary": "Get a goal",
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/goal.Goal"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "put": {
                "tags": ["goals"],
                "summary": "Edit goal fields; progress is not editable here",
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true},
                    {"in": "body", "name": "goal", "required": true, "schema": {"$ref": "#/definitions/goal.UpdateGoalDTO"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/goal.Goal"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["goals"],
                "summary": "Delete a goal and its progress history",
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/goals/{id}/update": {
            "post": {
                "tags": ["progress"],
                "summary": "Record a free-text progress update",
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true},
                    {"in": "body", "name": "update", "required": true, "schema": {"$ref": "#/definitions/progress.UpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/progress.UpdateResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/goals/{id}/progress": {
            "get": {
                "tags": ["progress"],
                "summary": "Progress history, newest first",
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/goal.ProgressEntry"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/dashboard": {
            "get": {
                "tags": ["goals"],
                "summary": "All goals plus aggregate statistics",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/goal.DashboardResponse"}}}
            }
        },
        "/ws": {
            "get": {
                "tags": ["realtime"],
                "summary": "WebSocket stream of {type, data} events",
                "responses": {"101": {"description": "Switching Protocols"}}
            }
        }
    },
    "definitions": {
        "ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "goal.Goal": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "category": {"type": "string"},
                "target_date": {"type": "string", "format": "date-time"},
                "progress_percentage": {"type": "number"},
                "status": {"type": "string", "enum": ["active", "completed", "paused", "cancelled"]},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"},
                "progress_entries": {"type": "array", "items": {"$ref": "#/definitions/goal.ProgressEntry"}}
            }
        },
        "goal.ProgressEntry": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "goal_id": {"type": "string", "format": "uuid"},
                "text": {"type": "string"},
                "progress_percentage": {"type": "number"},
                "sentiment": {"type": "string", "enum": ["positive", "negative", "neutral"]},
                "key_insights": {"type": "array", "items": {"type": "string"}},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "goal.CreateGoalDTO": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "category": {"type": "string"},
                "target_date": {"type": "string", "format": "date-time"}
            }
        },
        "goal.UpdateGoalDTO": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "category": {"type": "string"},
                "target_date": {"type": "string", "format": "date-time"},
                "status": {"type": "string", "enum": ["active", "completed", "paused", "cancelled"]}
            }
        },
        "goal.DashboardResponse": {
            "type": "object",
            "properties": {
                "goals": {"type": "array", "items": {"$ref": "#/definitions/goal.Goal"}},
                "statistics": {
                    "type": "object",
                    "properties": {
                        "total_goals": {"type": "integer"},
                        "completed_goals": {"type": "integer"},
                        "active_goals": {"type": "integer"},
                        "average_progress": {"type": "number"},
                        "goals_by_category": {"type": "object", "additionalProperties": {"type": "integer"}}
                    }
                },
                "last_updated": {"type": "string", "format": "date-time"}
            }
        },
        "progress.UpdateRequest": {
            "type": "object",
            "required": ["text"],
            "properties": {"text": {"type": "string"}}
        },
        "progress.UpdateResult": {
            "type": "object",
            "properties": {
                "progress": {"$ref": "#/definitions/goal.ProgressEntry"},
                "feedback": {"type": "string"},
                "analysis": {
                    "type": "object",
                    "properties": {
                        "progress_percentage": {"type": "number"},
                        "sentiment": {"type": "string"},
                        "insights": {"type": "array", "items": {"type": "string"}},
                        "rule": {"type": "string"},
                        "processed_at": {"type": "string", "format": "date-time"}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Goal Pulse API",
	Description:      "Goal tracking with free-text progress analysis and live updates.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
