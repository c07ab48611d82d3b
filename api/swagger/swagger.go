package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "SOPHIA Course Service",
        "description": "Course catalog, lessons, quizzes, and engagement API",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Courses", "description": "Course catalog"},
        {"name": "Lessons", "description": "Lessons and lesson resources"},
        {"name": "Quizzes", "description": "Quizzes, questions, and options"},
        {"name": "Submissions", "description": "Quiz submissions and answers"},
        {"name": "Tags", "description": "Tags and course-tag associations"},
        {"name": "Engagement", "description": "Comments, reviews, and certificates"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Store unreachable"}
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses",
                "parameters": [
                    {"name": "idInstructor", "in": "query", "type": "string"},
                    {"name": "idCategory", "in": "query", "type": "string"},
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "size", "in": "query", "type": "integer"},
                    {"name": "sortField", "in": "query", "type": "array", "items": {"type": "string"}, "collectionFormat": "multi"},
                    {"name": "sortDirection", "in": "query", "type": "string", "enum": ["ASC", "DESC"]},
                    {"name": "light", "in": "query", "type": "boolean", "default": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/PaginatedEnvelope"}},
                    "400": {"description": "Invalid filter or sort field", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "post": {
                "tags": ["Courses"],
                "summary": "Create course",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCourseInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/courses/{id}": {
            "get": {
                "tags": ["Courses"],
                "summary": "Get course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "light", "in": "query", "type": "boolean", "default": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "put": {
                "tags": ["Courses"],
                "summary": "Update course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateCourseInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "delete": {
                "tags": ["Courses"],
                "summary": "Delete course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/quiz-submissions": {
            "get": {
                "tags": ["Submissions"],
                "summary": "List quiz submissions",
                "parameters": [
                    {"name": "idQuiz", "in": "query", "type": "string"},
                    {"name": "idStudent", "in": "query", "type": "string"},
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "scoreMin", "in": "query", "type": "number"},
                    {"name": "scoreMax", "in": "query", "type": "number"},
                    {"name": "attemptMin", "in": "query", "type": "integer"},
                    {"name": "attemptMax", "in": "query", "type": "integer"},
                    {"name": "submittedAtStart", "in": "query", "type": "string", "format": "date-time"},
                    {"name": "submittedAtEnd", "in": "query", "type": "string", "format": "date-time"},
                    {"name": "gradedAtStart", "in": "query", "type": "string", "format": "date-time"},
                    {"name": "gradedAtEnd", "in": "query", "type": "string", "format": "date-time"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "size", "in": "query", "type": "integer"},
                    {"name": "sortField", "in": "query", "type": "array", "items": {"type": "string"}, "collectionFormat": "multi"},
                    {"name": "sortDirection", "in": "query", "type": "string", "enum": ["ASC", "DESC"]},
                    {"name": "light", "in": "query", "type": "boolean", "default": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/PaginatedEnvelope"}},
                    "400": {"description": "Invalid filter or sort field", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "post": {
                "tags": ["Submissions"],
                "summary": "Create quiz submission",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSubmissionInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/quiz-submissions/{id}": {
            "get": {
                "tags": ["Submissions"],
                "summary": "Get quiz submission",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "light", "in": "query", "type": "boolean", "default": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "put": {
                "tags": ["Submissions"],
                "summary": "Update quiz submission",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateSubmissionInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "delete": {
                "tags": ["Submissions"],
                "summary": "Delete quiz submission",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/tags": {
            "get": {
                "tags": ["Tags"],
                "summary": "List tags",
                "parameters": [
                    {"name": "name", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "size", "in": "query", "type": "integer"},
                    {"name": "sortField", "in": "query", "type": "array", "items": {"type": "string"}, "collectionFormat": "multi"},
                    {"name": "sortDirection", "in": "query", "type": "string", "enum": ["ASC", "DESC"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/PaginatedEnvelope"}}
                }
            },
            "post": {
                "tags": ["Tags"],
                "summary": "Create tag",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTagInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        }
    },
    "definitions": {
        "CreateCourseInput": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "idInstructor": {"type": "string"},
                "idCategory": {"type": "string"},
                "status": {"type": "string"}
            },
            "required": ["title", "idInstructor"]
        },
        "UpdateCourseInput": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "idCategory": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "CreateSubmissionInput": {
            "type": "object",
            "properties": {
                "idQuiz": {"type": "string"},
                "idStudent": {"type": "string"},
                "attemptNumber": {"type": "integer"}
            },
            "required": ["idQuiz", "idStudent"]
        },
        "UpdateSubmissionInput": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "score": {"type": "number"},
                "submittedAt": {"type": "string", "format": "date-time"},
                "gradedAt": {"type": "string", "format": "date-time"},
                "feedback": {"type": "string"},
                "aiFeedback": {"type": "string"}
            }
        },
        "CreateTagInput": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}
            },
            "required": ["name"]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "Envelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "timestamp": {"type": "string", "format": "date-time"}
            }
        },
        "PaginatedEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {"type": "array", "items": {"type": "object"}},
                "page": {"type": "integer"},
                "size": {"type": "integer"},
                "total": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "hasNext": {"type": "boolean"},
                "hasPrev": {"type": "boolean"},
                "timestamp": {"type": "string", "format": "date-time"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
