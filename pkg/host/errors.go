package host

import (
	"encoding/json"
	"net/http"

	"github.com/mlenz/regionmap/pkg/errors"
)

// errorResponse is the JSON body for failed requests.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusFor maps engine error codes to HTTP statuses.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidMap, errors.ErrCodeInvalidMode,
		errors.ErrCodeInvalidRegion, errors.ErrCodeInvalidTier, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidValues, errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeRegionNotFound, errors.ErrCodeFileNotFound,
		errors.ErrCodeSessionNotFound, errors.ErrCodeStateNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	writeJSON(w, statusFor(code), errorResponse{
		Code:    string(code),
		Message: errors.UserMessage(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
