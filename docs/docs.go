// Package docs registers the Swagger document served at /swagger/*.
// The authoritative contract lives in api/openapi.yml; this document mirrors
// its surface for the interactive UI.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/orders": {
            "post": {
                "tags": ["orders"],
                "summary": "Register a new agency order",
                "responses": {
                    "201": {"description": "Created"},
                    "422": {"description": "Validation failed", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/orders/{id}": {
            "get": {
                "tags": ["orders"],
                "summary": "Retrieve an order with derived totals",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/orders/{id}/status": {
            "post": {
                "tags": ["orders"],
                "summary": "Request an order status transition",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Transition denied", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/orders/{id}/payments": {
            "get": {
                "tags": ["payments"],
                "summary": "List an order's payment ledger",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/payments": {
            "post": {
                "tags": ["payments"],
                "summary": "Create a payment against an order",
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Overpayment or locked order", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/payments/{id}/confirm-cash": {
            "post": {
                "tags": ["payments"],
                "summary": "Confirm a CASH payment",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Transition denied", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/payments/{id}/vnpay-session": {
            "post": {
                "tags": ["payments"],
                "summary": "Create a VNPay checkout session",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/payments/{id}/vnpay-result": {
            "post": {
                "tags": ["payments"],
                "summary": "Apply the authoritative VNPay callback outcome",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/payments/{id}": {
            "delete": {
                "tags": ["payments"],
                "summary": "Delete an UNPAID payment",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "204": {"description": "No Content"},
                    "409": {"description": "Payment immutable", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/deliveries": {
            "post": {
                "tags": ["deliveries"],
                "summary": "Create the delivery for a confirmed order",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/deliveries/{id}": {
            "put": {
                "tags": ["deliveries"],
                "summary": "Edit employee or expected date",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Delivery immutable", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/deliveries/{id}/status": {
            "post": {
                "tags": ["deliveries"],
                "summary": "Request a delivery status transition",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Transition denied", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/release-notes": {
            "post": {
                "tags": ["release-notes"],
                "summary": "Create a warehouse release note",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/release-notes/{id}/status": {
            "post": {
                "tags": ["release-notes"],
                "summary": "Advance a release note and its vehicles",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Transition denied", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/release-notes/{id}": {
            "delete": {
                "tags": ["release-notes"],
                "summary": "Delete a PENDING_APPROVAL release note",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/import-requests": {
            "post": {
                "tags": ["import-requests"],
                "summary": "File a vehicle import request",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/import-requests/{id}/status": {
            "post": {
                "tags": ["import-requests"],
                "summary": "Approve or reject an import request",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Transition denied", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/appointments": {
            "post": {
                "tags": ["appointments"],
                "summary": "Schedule a test-drive appointment",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/appointments/{id}": {
            "put": {
                "tags": ["appointments"],
                "summary": "Edit a SCHEDULED appointment",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["appointments"],
                "summary": "Delete a SCHEDULED appointment",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/appointments/{id}/status": {
            "post": {
                "tags": ["appointments"],
                "summary": "Request an appointment status transition",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Transition denied", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        }
    },
    "definitions": {
        "Error": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"},
                "violations": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "field": {"type": "string"},
                            "message": {"type": "string"}
                        }
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Dealership Fulfillment API",
	Description:      "Commerce fulfillment lifecycle for a dealer/manufacturer console.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
