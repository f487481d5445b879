// Package docs registers the OpenAPI description served under /swagger.
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
        "/register": {
            "post": {
                "tags": ["Users"],
                "summary": "Register a user",
                "parameters": [{"in": "body", "name": "user", "required": true, "schema": {"$ref": "#/definitions/handler.RegisterRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.AuthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "tags": ["Users"],
                "summary": "Log in",
                "parameters": [{"in": "body", "name": "credentials", "required": true, "schema": {"$ref": "#/definitions/handler.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AuthResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Users"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.UserResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/projects": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Projects"],
                "summary": "List projects",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.ProjectSummaryResponse"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Projects"],
                "summary": "Create a project",
                "parameters": [{"in": "body", "name": "project", "required": true, "schema": {"$ref": "#/definitions/input.Project"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ProjectDetailResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/projects/{projectId}": {
            "parameters": [{"type": "string", "name": "projectId", "in": "path", "required": true}],
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Projects"],
                "summary": "Get a project",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ProjectDetailResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["Projects"],
                "summary": "Update a project",
                "parameters": [{"in": "body", "name": "project", "required": true, "schema": {"$ref": "#/definitions/input.Project"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ProjectDetailResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Projects"],
                "summary": "Delete a project (OWNER only)",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/projects/{projectId}/tasks": {
            "parameters": [{"type": "string", "name": "projectId", "in": "path", "required": true}],
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "List tasks of a project",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.TaskListItem"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Create a task",
                "parameters": [{"in": "body", "name": "task", "required": true, "schema": {"$ref": "#/definitions/input.Task"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.TaskResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/projects/{projectId}/tasks/{taskId}": {
            "parameters": [
                {"type": "string", "name": "projectId", "in": "path", "required": true},
                {"type": "string", "name": "taskId", "in": "path", "required": true}
            ],
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Get a task with its comments",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.TaskDetailResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Update a task",
                "parameters": [{"in": "body", "name": "task", "required": true, "schema": {"$ref": "#/definitions/input.Task"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.TaskResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Delete a task",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/projects/{projectId}/tasks/{taskId}/comments": {
            "parameters": [
                {"type": "string", "name": "projectId", "in": "path", "required": true},
                {"type": "string", "name": "taskId", "in": "path", "required": true}
            ],
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Comments"],
                "summary": "List comments of a task",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.CommentResponse"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Comments"],
                "summary": "Comment on a task",
                "parameters": [{"in": "body", "name": "comment", "required": true, "schema": {"$ref": "#/definitions/input.Comment"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.CommentResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/projects/{projectId}/tasks/{taskId}/comments/{commentId}": {
            "parameters": [
                {"type": "string", "name": "projectId", "in": "path", "required": true},
                {"type": "string", "name": "taskId", "in": "path", "required": true},
                {"type": "string", "name": "commentId", "in": "path", "required": true}
            ],
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Comments"],
                "summary": "Delete one of your comments",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/tags": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tags"],
                "summary": "List tags",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.TagResponse"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tags"],
                "summary": "Create a tag",
                "parameters": [{"in": "body", "name": "tag", "required": true, "schema": {"$ref": "#/definitions/input.Tag"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.TagResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.RegisterRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {"email": {"type": "string"}, "name": {"type": "string", "minLength": 2}, "password": {"type": "string", "minLength": 6}}
        },
        "handler.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.UserResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "email": {"type": "string"}, "image": {"type": "string"}, "createdAt": {"type": "string"}}
        },
        "handler.AuthResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "user": {"$ref": "#/definitions/handler.UserResponse"}}
        },
        "handler.UserSummary": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "image": {"type": "string"}}
        },
        "handler.FieldError": {
            "type": "object",
            "properties": {"field": {"type": "string"}, "code": {"type": "string"}, "message": {"type": "string"}}
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}, "details": {"type": "array", "items": {"$ref": "#/definitions/handler.FieldError"}}}
        },
        "handler.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handler.MemberResponse": {
            "type": "object",
            "properties": {
                "role": {"type": "string", "enum": ["OWNER", "MEMBER"]},
                "createdAt": {"type": "string"},
                "user": {"type": "object", "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "email": {"type": "string"}, "image": {"type": "string"}}}
            }
        },
        "handler.ProjectSummaryResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "description": {"type": "string"}, "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}, "taskCount": {"type": "integer"}}
        },
        "handler.ProjectDetailResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "name": {"type": "string"}, "description": {"type": "string"}, "createdAt": {"type": "string"}, "updatedAt": {"type": "string"},
                "members": {"type": "array", "items": {"$ref": "#/definitions/handler.MemberResponse"}},
                "taskCount": {"type": "integer"}
            }
        },
        "handler.TagResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "color": {"type": "string"}}
        },
        "handler.TaskResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "projectId": {"type": "string"}, "title": {"type": "string"}, "description": {"type": "string"},
                "status": {"type": "string", "enum": ["TODO", "IN_PROGRESS", "DONE", "ON_HOLD"]},
                "priority": {"type": "string", "enum": ["HIGH", "MEDIUM", "LOW"]},
                "dueDate": {"type": "string"}, "assigneeId": {"type": "string"}, "creatorId": {"type": "string"},
                "createdAt": {"type": "string"}, "updatedAt": {"type": "string"},
                "assignee": {"$ref": "#/definitions/handler.UserSummary"},
                "creator": {"$ref": "#/definitions/handler.UserSummary"},
                "tags": {"type": "array", "items": {"$ref": "#/definitions/handler.TagResponse"}}
            }
        },
        "handler.TaskListItem": {
            "allOf": [{"$ref": "#/definitions/handler.TaskResponse"}, {"type": "object", "properties": {"commentCount": {"type": "integer"}}}]
        },
        "handler.TaskDetailResponse": {
            "allOf": [{"$ref": "#/definitions/handler.TaskResponse"}, {"type": "object", "properties": {"comments": {"type": "array", "items": {"$ref": "#/definitions/handler.CommentResponse"}}}}]
        },
        "handler.CommentResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "taskId": {"type": "string"}, "content": {"type": "string"}, "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}, "author": {"$ref": "#/definitions/handler.UserSummary"}}
        },
        "input.Project": {
            "type": "object",
            "properties": {"name": {"type": "string", "minLength": 1}, "description": {"type": "string"}}
        },
        "input.Task": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "minLength": 1},
                "description": {"type": "string"},
                "status": {"type": "string", "enum": ["TODO", "IN_PROGRESS", "DONE", "ON_HOLD"]},
                "priority": {"type": "string", "enum": ["HIGH", "MEDIUM", "LOW"]},
                "dueDate": {"type": "string", "format": "date-time"},
                "assigneeId": {"type": "string", "format": "uuid"},
                "tagIds": {"type": "array", "items": {"type": "string", "format": "uuid"}}
            }
        },
        "input.Comment": {
            "type": "object",
            "required": ["content"],
            "properties": {"content": {"type": "string", "minLength": 1}}
        },
        "input.Tag": {
            "type": "object",
            "required": ["name", "color"],
            "properties": {"name": {"type": "string"}, "color": {"type": "string", "example": "#1f6feb"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Taskboard API",
	Description:      "Team projects, tasks, tags and comments with per-project membership.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
