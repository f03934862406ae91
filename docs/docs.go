// Package docs registers the OpenAPI document served at /swagger/. The
// document is kept by hand next to the swag annotations on the handlers;
// update both when a route changes.
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
        "/": {
            "get": {
                "description": "Lists every event, newest start date first. Undated events come last.",
                "produces": ["application/json"],
                "tags": ["Events"],
                "summary": "List events",
                "parameters": [
                    {"type": "string", "description": "Ruleset name, matched case-insensitively", "name": "system", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/event.Response"}}}
                }
            }
        },
        "/add/": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "The caller becomes the organizer.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Events"],
                "summary": "Create an event",
                "parameters": [
                    {"description": "Event fields", "name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/event.Input"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/event.Response"}},
                    "400": {"description": "Validation error", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            }
        },
        "/events/{id}/join/": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Join Requests"],
                "summary": "Ask to join an event",
                "parameters": [
                    {"type": "integer", "description": "Event ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/joinrequest.Response"}},
                    "400": {"description": "Organizer, duplicate request or event full", "schema": {"$ref": "#/definitions/joinrequest.DuplicateResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            }
        },
        "/events/{id}/requests/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Organizer only. Oldest request first.",
                "produces": ["application/json"],
                "tags": ["Join Requests"],
                "summary": "List an event's join requests",
                "parameters": [
                    {"type": "integer", "description": "Event ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/joinrequest.Response"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            }
        },
        "/events/{id}/requests/{request_id}/{action}/": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Organizer only. action is approve or reject.",
                "produces": ["application/json"],
                "tags": ["Join Requests"],
                "summary": "Approve or reject a join request of an event",
                "parameters": [
                    {"type": "integer", "description": "Event ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Join request ID", "name": "request_id", "in": "path", "required": true},
                    {"type": "string", "description": "approve or reject", "name": "action", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/joinrequest.Response"}},
                    "400": {"description": "Unknown action or event full", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            }
        },
        "/requests/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Join Requests"],
                "summary": "List the caller's join requests",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/joinrequest.Response"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            }
        },
        "/requests/{id}/": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "description": "Organizer only. Approving fails when the event is full.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Join Requests"],
                "summary": "Approve or reject a join request",
                "parameters": [
                    {"type": "integer", "description": "Join request ID", "name": "id", "in": "path", "required": true},
                    {"description": "approved or rejected", "name": "decision", "in": "body", "required": true, "schema": {"$ref": "#/definitions/joinrequest.DecisionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/joinrequest.Response"}},
                    "400": {"description": "Invalid status or event full", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            }
        },
        "/signup/": {
            "post": {
                "description": "Create a new user with username, password and an optional email.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "User registration details", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/auth.SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/auth.MessageResponse"}},
                    "400": {"description": "Missing fields or username taken", "schema": {"$ref": "#/definitions/auth.SignupErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            }
        },
        "/systems/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Systems"],
                "summary": "List rulesets",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Ruleset"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Systems"],
                "summary": "Create a ruleset",
                "parameters": [
                    {"description": "Ruleset", "name": "ruleset", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ruleset.CreateRulesetRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Ruleset"}},
                    "400": {"description": "Validation error or duplicate name", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            }
        },
        "/systems/{id}/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Systems"],
                "summary": "Get a ruleset",
                "parameters": [
                    {"type": "integer", "description": "Ruleset ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Ruleset"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Systems"],
                "summary": "Replace a ruleset",
                "parameters": [
                    {"type": "integer", "description": "Ruleset ID", "name": "id", "in": "path", "required": true},
                    {"description": "Ruleset", "name": "ruleset", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ruleset.CreateRulesetRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Ruleset"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Events using it keep existing with no system.",
                "tags": ["Systems"],
                "summary": "Delete a ruleset",
                "parameters": [
                    {"type": "integer", "description": "Ruleset ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Systems"],
                "summary": "Partially update a ruleset",
                "parameters": [
                    {"type": "integer", "description": "Ruleset ID", "name": "id", "in": "path", "required": true},
                    {"description": "Ruleset", "name": "ruleset", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ruleset.UpdateRulesetRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Ruleset"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            }
        },
        "/token/": {
            "post": {
                "description": "Exchange username and password for an access and a refresh token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Obtain a token pair",
                "parameters": [
                    {"description": "Login credentials", "name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/auth.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.TokenPairResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            }
        },
        "/token/blacklist/": {
            "post": {
                "description": "Revokes the refresh token so it can no longer be refreshed.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Blacklist a refresh token",
                "parameters": [
                    {"description": "Refresh Token Request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/auth.RefreshTokenRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Invalid, expired or already blacklisted refresh token", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            }
        },
        "/token/refresh/": {
            "post": {
                "description": "Refreshes the access token using a valid refresh token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Refresh Access Token",
                "parameters": [
                    {"description": "Refresh Token Request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/auth.RefreshTokenRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.AccessTokenResponse"}},
                    "401": {"description": "Invalid, expired or blacklisted refresh token", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            }
        },
        "/{id}/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Events"],
                "summary": "Get an event",
                "parameters": [
                    {"type": "integer", "description": "Event ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/event.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Organizer only. Fields missing from the body are reset to their defaults.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Events"],
                "summary": "Replace an event",
                "parameters": [
                    {"type": "integer", "description": "Event ID", "name": "id", "in": "path", "required": true},
                    {"description": "Event fields", "name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/event.Input"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/event.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Organizer only. Deletes the event's join requests too.",
                "tags": ["Events"],
                "summary": "Delete an event",
                "parameters": [
                    {"type": "integer", "description": "Event ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "description": "Organizer only. Only fields present in the body change.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Events"],
                "summary": "Partially update an event",
                "parameters": [
                    {"type": "integer", "description": "Event ID", "name": "id", "in": "path", "required": true},
                    {"description": "Event fields", "name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/event.Input"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/event.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "auth.AccessTokenResponse": {
            "type": "object",
            "properties": {"access": {"type": "string"}}
        },
        "auth.LoginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string", "example": "password123"},
                "username": {"type": "string", "example": "dungeonmaster"}
            }
        },
        "auth.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "auth.RefreshTokenRequest": {
            "type": "object",
            "required": ["refresh"],
            "properties": {"refresh": {"type": "string", "example": "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."}}
        },
        "auth.SignupErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "auth.SignupRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "maxLength": 254, "example": "dm@example.com"},
                "password": {"type": "string", "example": "password123"},
                "username": {"type": "string", "example": "dungeonmaster"}
            }
        },
        "auth.TokenPairResponse": {
            "type": "object",
            "properties": {
                "access": {"type": "string"},
                "refresh": {"type": "string"}
            }
        },
        "event.Input": {
            "type": "object",
            "properties": {
                "date_end": {"type": "string"},
                "date_start": {"type": "string"},
                "description": {"type": "string"},
                "game_setting": {"type": "string", "maxLength": 200},
                "location": {"type": "string", "maxLength": 200},
                "max_players": {"type": "integer", "maximum": 100, "minimum": 1},
                "online": {"type": "boolean"},
                "system": {"type": "string", "maxLength": 100},
                "title": {"type": "string", "maxLength": 200}
            }
        },
        "event.Response": {
            "type": "object",
            "properties": {
                "created": {"type": "string"},
                "date_end": {"type": "string"},
                "date_start": {"type": "string"},
                "description": {"type": "string"},
                "game_setting": {"type": "string"},
                "has_space": {"type": "boolean"},
                "id": {"type": "integer"},
                "location": {"type": "string"},
                "max_players": {"type": "integer"},
                "online": {"type": "boolean"},
                "organizer": {"type": "string"},
                "players": {"type": "array", "items": {"type": "string"}},
                "slots_taken": {"type": "integer"},
                "system": {"type": "string"},
                "title": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "joinrequest.DecisionRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {"status": {"type": "string"}}
        },
        "joinrequest.DuplicateResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "joinrequest.Response": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "event": {"type": "integer"},
                "id": {"type": "integer"},
                "status": {"$ref": "#/definitions/models.RequestStatus"},
                "user": {"type": "string"}
            }
        },
        "models.RequestStatus": {
            "type": "string",
            "enum": ["pending", "approved", "rejected"],
            "x-enum-varnames": ["StatusPending", "StatusApproved", "StatusRejected"]
        },
        "models.Ruleset": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "responses.ErrorResponse": {
            "type": "object",
            "properties": {"detail": {"type": "string"}}
        },
        "ruleset.CreateRulesetRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string", "maxLength": 100}}
        },
        "ruleset.UpdateRulesetRequest": {
            "type": "object",
            "properties": {"name": {"type": "string", "maxLength": 100, "minLength": 1}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo is the registered spec; main may override Host or BasePath.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8088",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Questboard REST API",
	Description:      "Tabletop session listings and join requests.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
