package api

import "github.com/schoolhealth/monitor-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: store.ErrInvalidCredential.Error(),
		1001: "invalid authorization format",
		1003: "invalid token",
		1004: "administrator privilege required",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "this account has been registered or has been taken",
		1101: "account not found",

		1200: store.ErrReportNotFound.Error(),
		1201: store.ErrInvalidStatusTransition.Error(),
		1202: "unknown building or room",

		1300: store.ErrActionNotFound.Error(),

		1400: "query dashboard metrics error",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidCredential          = errorJSON(1000)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)
	errorAdminOnly                  = errorJSON(1004)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken    = errorJSON(1100)
	errorAccountNotFound = errorJSON(1101)

	errorReportNotFound          = errorJSON(1200)
	errorInvalidStatusTransition = errorJSON(1201)
	errorUnknownLocation         = errorJSON(1202)

	errorActionNotFound = errorJSON(1300)

	errorDashboardMetrics = errorJSON(1400)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
