// Package hrms registers the HRMS OpenAPI document with swag so that
// /swagger/doc.json can serve it. Keep the paths in step with the
// annotations in internal/hrms/http.
package hrms

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "AussieBroadWAN Team",
            "url": "https://github.com/aussiebroadwan/hrms"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "description": "HS256 signed token from /api/auth/login. Format: \"Bearer {token}\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/api/auth/login": {"post": {"tags": ["Auth"], "summary": "Log in"}},
        "/api/auth/me": {"get": {"tags": ["Auth"], "summary": "Current employee", "security": [{"BearerAuth": []}]}},
        "/api/auth/password": {"put": {"tags": ["Auth"], "summary": "Change own password", "security": [{"BearerAuth": []}]}},
        "/api/employees": {
            "get": {"tags": ["Employees"], "summary": "List employees", "security": [{"BearerAuth": []}]},
            "post": {"tags": ["Employees"], "summary": "Create an employee", "security": [{"BearerAuth": []}]}
        },
        "/api/employees/{id}": {
            "get": {"tags": ["Employees"], "summary": "Get an employee", "security": [{"BearerAuth": []}]},
            "put": {"tags": ["Employees"], "summary": "Update an employee", "security": [{"BearerAuth": []}]},
            "delete": {"tags": ["Employees"], "summary": "Delete an employee", "security": [{"BearerAuth": []}]}
        },
        "/api/attendance": {
            "get": {"tags": ["Attendance"], "summary": "List attendance", "security": [{"BearerAuth": []}]},
            "put": {"tags": ["Attendance"], "summary": "Set attendance", "security": [{"BearerAuth": []}]}
        },
        "/api/attendance/check-in": {"post": {"tags": ["Attendance"], "summary": "Check in for today", "security": [{"BearerAuth": []}]}},
        "/api/attendance/check-out": {"post": {"tags": ["Attendance"], "summary": "Check out for today", "security": [{"BearerAuth": []}]}},
        "/api/attendance/me": {"get": {"tags": ["Attendance"], "summary": "Own attendance", "security": [{"BearerAuth": []}]}},
        "/api/events": {
            "get": {"tags": ["Events"], "summary": "List events", "security": [{"BearerAuth": []}]},
            "post": {"tags": ["Events"], "summary": "Create an event", "security": [{"BearerAuth": []}]}
        },
        "/api/events/{id}": {
            "put": {"tags": ["Events"], "summary": "Replace an event", "security": [{"BearerAuth": []}]},
            "delete": {"tags": ["Events"], "summary": "Delete an event", "security": [{"BearerAuth": []}]}
        },
        "/api/payroll": {
            "get": {"tags": ["Payroll"], "summary": "List payslips", "security": [{"BearerAuth": []}]},
            "post": {"tags": ["Payroll"], "summary": "Create a payslip", "security": [{"BearerAuth": []}]}
        },
        "/api/payroll/generate": {"post": {"tags": ["Payroll"], "summary": "Generate payroll", "security": [{"BearerAuth": []}]}},
        "/api/payroll/me": {"get": {"tags": ["Payroll"], "summary": "Own payslips", "security": [{"BearerAuth": []}]}},
        "/api/payroll/{id}/pay": {"post": {"tags": ["Payroll"], "summary": "Mark a payslip paid", "security": [{"BearerAuth": []}]}},
        "/api/appraisals": {
            "get": {"tags": ["Appraisals"], "summary": "List appraisals", "security": [{"BearerAuth": []}]},
            "post": {"tags": ["Appraisals"], "summary": "Submit an appraisal", "security": [{"BearerAuth": []}]}
        },
        "/api/appraisals/me": {"get": {"tags": ["Appraisals"], "summary": "Own appraisals", "security": [{"BearerAuth": []}]}},
        "/api/appraisals/{id}": {"put": {"tags": ["Appraisals"], "summary": "Edit an appraisal", "security": [{"BearerAuth": []}]}},
        "/api/appraisals/{id}/acknowledge": {"post": {"tags": ["Appraisals"], "summary": "Acknowledge an appraisal", "security": [{"BearerAuth": []}]}},
        "/api/dashboard/admin": {"get": {"tags": ["Dashboard"], "summary": "Organisation dashboard", "security": [{"BearerAuth": []}]}},
        "/api/dashboard/hr": {"get": {"tags": ["Dashboard"], "summary": "Organisation dashboard", "security": [{"BearerAuth": []}]}},
        "/api/dashboard/employee": {"get": {"tags": ["Dashboard"], "summary": "Personal dashboard", "security": [{"BearerAuth": []}]}},
        "/livez": {"get": {"tags": ["Health"], "summary": "Liveness probe"}},
        "/readyz": {"get": {"tags": ["Health"], "summary": "Readiness probe"}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "HRMS API",
	Description:      "Employee records, attendance, calendar events, payroll, appraisals and role based dashboards.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
