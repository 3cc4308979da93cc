package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"hirepulse/internal/common"
)

var validate = validator.New()

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return common.NewError(common.CodeValidation, "invalid JSON body", err)
	}
	if err := validate.Struct(dst); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			fields := make(map[string]string, len(fieldErrors))
			for _, fe := range fieldErrors {
				fields[strings.ToLower(fe.Field())] = "failed " + fe.Tag() + " validation"
			}
			return common.NewValidationError("invalid request", fields)
		}
		return common.NewError(common.CodeValidation, "invalid request", err)
	}
	return nil
}

// idFromPath parses the uuid at the given segment index, counting from the
// leading "api" segment: /api/jobs/{id} puts the id at index 2.
func idFromPath(r *http.Request, index int) (common.UUID, error) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if index >= len(parts) {
		return common.UUID{}, common.NewValidationError("invalid path", map[string]string{"id": "id is required"})
	}
	parsed, err := common.ParseUUID(parts[index])
	if err != nil {
		return common.UUID{}, common.NewValidationError("invalid path", map[string]string{"id": "invalid uuid"})
	}
	return parsed, nil
}

func errUnauthorized() error {
	return common.NewError(common.CodeUnauthorized, "No token provided", nil)
}
