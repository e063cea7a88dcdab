// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with `swag init -g cmd/api/main.go` after changing handler annotations.
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
        "/plants": {
            "get": {
                "tags": ["plants"],
                "summary": "List plants",
                "description": "List plants, newest first, with watering urgency evaluated for today",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/PlantList"}}
                }
            },
            "post": {
                "tags": ["plants"],
                "summary": "Create a new plant",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/CreatePlantRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Plant"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/plants/{id}": {
            "get": {
                "tags": ["plants"],
                "summary": "Get plant by ID",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Plant"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "patch": {
                "tags": ["plants"],
                "summary": "Update a plant",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/UpdatePlantRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Plant"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/plants/{id}/water": {
            "post": {
                "tags": ["plants"],
                "summary": "Record a watering",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true},
                    {"in": "body", "name": "request", "schema": {"$ref": "#/definitions/RecordWateringRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Plant"}},
                    "400": {"description": "Watering dated in the future", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/reminders": {
            "get": {
                "tags": ["reminders"],
                "summary": "List reminders",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "query", "name": "status", "type": "string", "enum": ["pending", "completed", "all"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ReminderList"}}
                }
            },
            "post": {
                "tags": ["reminders"],
                "summary": "Create a reminder",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/CreateReminderRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Reminder"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Plant not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/reminders/feed": {
            "get": {
                "tags": ["reminders"],
                "summary": "Reminder feed",
                "description": "Pending reminders classified against today, overdue first",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/FeedResponse"}}
                }
            }
        },
        "/reminders/{id}": {
            "get": {
                "tags": ["reminders"],
                "summary": "Get reminder by ID",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Reminder"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/reminders/{id}/complete": {
            "post": {
                "tags": ["reminders"],
                "summary": "Complete a reminder",
                "description": "Mark a pending reminder completed. Recurring care schedules its next occurrence.",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CompletionResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "409": {"description": "Already completed", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/journal": {
            "get": {
                "tags": ["journal"],
                "summary": "List journal entries",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "query", "name": "plant_id", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["journal"],
                "summary": "Add a journal entry",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/CreateJournalEntryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "404": {"description": "Plant not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/calendar/{year}/{month}": {
            "get": {
                "tags": ["calendar"],
                "summary": "Month grid",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "year", "type": "integer", "required": true},
                    {"in": "path", "name": "month", "type": "integer", "required": true},
                    {"in": "query", "name": "journal", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/MonthView"}},
                    "400": {"description": "Invalid date", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/calendar/{year}/{month}/{day}": {
            "get": {
                "tags": ["calendar"],
                "summary": "Calendar day",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "year", "type": "integer", "required": true},
                    {"in": "path", "name": "month", "type": "integer", "required": true},
                    {"in": "path", "name": "day", "type": "integer", "required": true},
                    {"in": "query", "name": "journal", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CalendarDay"}},
                    "400": {"description": "Invalid date", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/care-types": {
            "get": {
                "tags": ["calendar"],
                "summary": "Care type descriptors",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "Plant": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "species": {"type": "string"},
                "variety": {"type": "string"},
                "emoji": {"type": "string"},
                "water_frequency_days": {"type": "integer"},
                "light": {"type": "string"},
                "humidity": {"type": "integer"},
                "care_intervals": {"type": "object", "additionalProperties": {"type": "integer"}},
                "health": {"type": "integer"},
                "notes": {"type": "string"},
                "purchase_date": {"type": "string", "format": "date-time"},
                "price": {"type": "number"},
                "photo_url": {"type": "string"},
                "last_watered": {"type": "string", "format": "date-time"},
                "next_water": {"type": "string", "format": "date-time"},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "PlantSummary": {
            "allOf": [
                {"$ref": "#/definitions/Plant"},
                {
                    "type": "object",
                    "properties": {
                        "urgency": {"type": "string", "enum": ["none", "overdue", "due_today", "upcoming"]},
                        "urgent": {"type": "boolean"},
                        "water_label": {"type": "string"}
                    }
                }
            ]
        },
        "PlantList": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/PlantSummary"}},
                "total": {"type": "integer"}
            }
        },
        "CreatePlantRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "example": "Monstera"},
                "species": {"type": "string"},
                "variety": {"type": "string"},
                "emoji": {"type": "string"},
                "water_frequency_days": {"type": "integer", "example": 7},
                "light": {"type": "string"},
                "humidity": {"type": "integer"},
                "health": {"type": "integer"},
                "notes": {"type": "string"},
                "care_intervals": {"type": "object", "additionalProperties": {"type": "integer"}},
                "purchase_date": {"type": "string", "example": "2026-01-15"},
                "price": {"type": "number"},
                "photo_url": {"type": "string"},
                "last_watered": {"type": "string", "example": "2026-02-11"}
            }
        },
        "UpdatePlantRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "species": {"type": "string"},
                "variety": {"type": "string"},
                "emoji": {"type": "string"},
                "water_frequency_days": {"type": "integer"},
                "light": {"type": "string"},
                "humidity": {"type": "integer"},
                "health": {"type": "integer"},
                "notes": {"type": "string"},
                "care_intervals": {"type": "object", "additionalProperties": {"type": "integer"}},
                "photo_url": {"type": "string"}
            }
        },
        "RecordWateringRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "2026-02-18"}
            }
        },
        "Reminder": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "plant_id": {"type": "integer"},
                "plant_name": {"type": "string"},
                "plant_emoji": {"type": "string"},
                "type": {"type": "string", "example": "watering"},
                "due_date": {"type": "string", "format": "date-time"},
                "status": {"type": "string", "enum": ["pending", "completed"]},
                "completed_at": {"type": "string", "format": "date-time"},
                "predecessor_id": {"type": "integer"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "ReminderList": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/Reminder"}},
                "total": {"type": "integer"}
            }
        },
        "CreateReminderRequest": {
            "type": "object",
            "required": ["plant_id", "type", "due_date"],
            "properties": {
                "plant_id": {"type": "integer"},
                "type": {"type": "string", "example": "fertilizing"},
                "due_date": {"type": "string", "example": "2026-03-01"}
            }
        },
        "FeedItem": {
            "allOf": [
                {"$ref": "#/definitions/Reminder"},
                {
                    "type": "object",
                    "properties": {
                        "urgency": {"type": "string", "enum": ["overdue", "due_today", "upcoming"]},
                        "urgent": {"type": "boolean"},
                        "time_label": {"type": "string", "example": "Today"}
                    }
                }
            ]
        },
        "FeedResponse": {
            "type": "object",
            "properties": {
                "today": {"type": "string", "example": "2026-02-18"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/FeedItem"}},
                "urgent_count": {"type": "integer"}
            }
        },
        "CompletionResponse": {
            "type": "object",
            "properties": {
                "completed": {"$ref": "#/definitions/Reminder"},
                "successor": {"$ref": "#/definitions/Reminder"},
                "reminders": {"type": "array", "items": {"$ref": "#/definitions/Reminder"}}
            }
        },
        "CreateJournalEntryRequest": {
            "type": "object",
            "required": ["plant_id", "tag"],
            "properties": {
                "plant_id": {"type": "integer"},
                "tag": {"type": "string", "example": "growth"},
                "text": {"type": "string"},
                "date": {"type": "string", "example": "2026-02-18"}
            }
        },
        "CareEvent": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "enum": ["reminder", "schedule", "journal"]},
                "type": {"type": "string"},
                "plant_id": {"type": "integer"},
                "plant_name": {"type": "string"},
                "plant_emoji": {"type": "string"},
                "due_date": {"type": "string", "format": "date-time"},
                "reminder_id": {"type": "integer"},
                "note": {"type": "string"}
            }
        },
        "CalendarDay": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "2026-02-18"},
                "day": {"type": "integer"},
                "weekday": {"type": "string"},
                "events": {"type": "array", "items": {"$ref": "#/definitions/CareEvent"}}
            }
        },
        "MonthView": {
            "type": "object",
            "properties": {
                "year": {"type": "integer"},
                "month": {"type": "integer"},
                "month_name": {"type": "string"},
                "leading_blanks": {"type": "integer"},
                "days": {"type": "array", "items": {"$ref": "#/definitions/CalendarDay"}}
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
	Title:            "PlantCare API",
	Description:      "Plant care tracker: plants, reminders, journal and calendar",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
