// Package response centralizes the {success, ...} envelope and the mapping
// from coded errors to HTTP statuses.
package response

import (
	"encoding/json"
	"net/http"

	"hirepulse/internal/common"
)

// ErrorCollector receives the code of every error response written.
type ErrorCollector interface {
	ObserveError(code string)
}

var errorCollector ErrorCollector

func SetErrorCollector(c ErrorCollector) {
	errorCollector = c
}

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorBody struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Error   string            `json:"error,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func Error(w http.ResponseWriter, err error) {
	code := common.CodeOf(err)
	if errorCollector != nil {
		errorCollector.ObserveError(string(code))
	}
	body := errorBody{Message: err.Error()}
	if coded, ok := err.(*common.Error); ok {
		body.Message = coded.Message
		body.Fields = coded.Fields
		// The underlying driver error text is echoed verbatim; clients
		// parse it.
		if cause := coded.Cause(); cause != nil {
			body.Error = cause.Error()
		}
	}
	JSON(w, statusFor(code), body)
}

func statusFor(code common.Code) int {
	switch code {
	case common.CodeUnauthorized:
		return http.StatusUnauthorized
	case common.CodeForbidden:
		return http.StatusForbidden
	case common.CodeNotFound:
		return http.StatusNotFound
	// Duplicate applications surface as 400, not 409.
	case common.CodeValidation, common.CodeConflict:
		return http.StatusBadRequest
	case common.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
