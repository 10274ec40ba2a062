// Package docs registers the OpenAPI document served at /swagger.
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
        "/auth/signup": {
            "post": {
                "tags": ["Auth"],
                "summary": "Sign up",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/models.SignupRequest"}}],
                "responses": {"201": {"description": "Created"}, "422": {"description": "Validation error"}}
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Log in",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/models.LoginRequest"}}],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/auth/forgot": {
            "post": {
                "tags": ["Auth"],
                "summary": "Forgot password",
                "responses": {"202": {"description": "Accepted"}}
            }
        },
        "/leads": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Leads"],
                "summary": "List leads",
                "parameters": [
                    {"type": "string", "in": "query", "name": "q"},
                    {"type": "string", "in": "query", "name": "status"},
                    {"type": "string", "in": "query", "name": "channel"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Leads"],
                "summary": "Create lead",
                "parameters": [{"in": "body", "name": "lead", "required": true, "schema": {"$ref": "#/definitions/models.Lead"}}],
                "responses": {"201": {"description": "Created"}, "422": {"description": "Validation error"}}
            }
        },
        "/leads/board": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Leads"], "summary": "Lead board", "responses": {"200": {"description": "OK"}}}
        },
        "/leads/{id}": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["Leads"],
                "summary": "Update lead",
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}, "422": {"description": "Validation error"}}
            }
        },
        "/leads/{id}/status": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["Leads"],
                "summary": "Change lead status",
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/leads/{id}/convert": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Leads"],
                "summary": "Convert lead to booking",
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"201": {"description": "Created"}, "409": {"description": "Already booked"}}
            }
        },
        "/bookings": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Bookings"], "summary": "List bookings", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Bookings"], "summary": "Create booking", "responses": {"201": {"description": "Created"}, "422": {"description": "Validation error"}}}
        },
        "/bookings/{id}/voucher": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Bookings"],
                "summary": "Download booking voucher",
                "produces": ["application/pdf"],
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/inbox/{id}/reply": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Inbox"],
                "summary": "Reply to a conversation",
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/team/invite": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["Team"], "summary": "Invite team member", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        },
        "/settings": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["Workspace"], "summary": "Save workspace settings", "responses": {"200": {"description": "OK"}, "422": {"description": "Validation error"}}}
        },
        "/onboarding": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["Workspace"], "summary": "Complete onboarding", "responses": {"200": {"description": "OK"}}}
        },
        "/billing/checkout": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["Billing"], "summary": "Start plan checkout", "responses": {"200": {"description": "OK"}, "502": {"description": "Checkout unavailable"}}}
        }
    },
    "definitions": {
        "models.SignupRequest": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "company": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"}}
        },
        "models.LoginRequest": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "models.Lead": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "status": {"type": "string", "enum": ["New", "Contacted", "Qualified", "Booked", "Lost"]},
                "channel": {"type": "string", "enum": ["Website", "WhatsApp", "Email", "Referral", "Social Media", "Walk-in"]},
                "tour_interest": {"type": "string"},
                "notes": {"type": "string"},
                "last_activity": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Tour CRM API",
	Description:      "Leads, bookings, tours, inbox, team and workspace views of the tour CRM.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
