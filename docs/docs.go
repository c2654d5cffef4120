package docs

import "github.com/swaggo/swag"

const docTemplate = `{
  "swagger": "2.0",
  "info": {
    "title": "Email Categorization Service",
    "description": "Categorizes supplier emails for Almosafer/Seera Group, extracts booking details, derives priority and days to check-in, and updates the case in Informatica.",
    "version": "1.0.0"
  },
  "basePath": "/",
  "paths": {
    "/health": {
      "get": {
        "tags": ["health"],
        "summary": "Health check",
        "produces": ["application/json"],
        "responses": {
          "200": {"description": "OK", "schema": {"type": "object", "properties": {"status": {"type": "string"}}}}
        }
      }
    },
    "/categorize": {
      "post": {
        "tags": ["categorize"],
        "summary": "Categorize a supplier email",
        "consumes": ["application/json"],
        "produces": ["application/json"],
        "parameters": [
          {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/models.CategorizeRequest"}}
        ],
        "responses": {
          "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CategorizationResult"}},
          "400": {"description": "Malformed request body", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
          "422": {"description": "Missing or blank field", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
          "500": {"description": "Categorization failed", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
        }
      }
    }
  },
  "definitions": {
    "models.CategorizeRequest": {
      "type": "object",
      "required": ["casenumber", "email_subject", "email_body"],
      "properties": {
        "casenumber": {"type": "string", "description": "Salesforce case number"},
        "email_subject": {"type": "string"},
        "email_body": {"type": "string"}
      }
    },
    "models.NotifierOutcome": {
      "type": "object",
      "properties": {
        "success": {"type": "boolean"},
        "status": {"type": "string", "enum": ["success", "failed", "invalid_input", "skipped"]},
        "message": {"type": "string"},
        "status_code": {"type": "integer"},
        "response": {},
        "error": {"type": "string"}
      }
    },
    "models.CategorizationResult": {
      "type": "object",
      "properties": {
        "category": {"type": "string", "enum": ["STOP_SALE","BOOK_OUT","PAYMENT_ISSUE","NO_CONTRACT","HOTEL_NON_OPERATIONAL","WRONG_INFORMATION","REQUIRED_INFORMATION","SANCTIONS","RATE_ISSUE","NOT_REACHABLE","REFUSED_TO_HELP","DUPLICITY_NOTIFICATION","BOOKING_CONFIRMATION_NOTIFICATION","INVOICE","CREDIT_NOTE","CANCELLATION_WITHOUT_NOTIFICATION","CANCELLATION_NOTIFICATION","ACKNOWLEDGMENT","SURVEY_FEEDBACK","OTHER"]},
        "hotel_name": {"type": "string"},
        "city_name": {"type": "string"},
        "supplier_name": {"type": "string"},
        "check_in_date": {"type": "string"},
        "check_out_date": {"type": "string"},
        "hotel_confirmation_number": {"type": "string"},
        "agent_reference_id": {"type": "string"},
        "ai_category": {"type": "string"},
        "references": {"type": "array", "items": {"type": "string"}},
        "priority": {"type": "integer", "minimum": 1, "maximum": 4},
        "days": {"type": "integer"},
        "informatica_update": {"$ref": "#/definitions/models.NotifierOutcome"}
      }
    },
    "handlers.ErrorResponse": {
      "type": "object",
      "properties": {
        "detail": {"type": "string"},
        "error": {
          "type": "object",
          "properties": {
            "code": {"type": "string"},
            "message": {"type": "string"},
            "details": {}
          }
        }
      }
    }
  }
}`

func init() {
	swag.Register(swag.Name, &s{})
}

type s struct{}

func (s *s) ReadDoc() string {
	return docTemplate
}
