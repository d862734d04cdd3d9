package server

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/planforge/pkg/plan"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error struct {
		Code    plan.Code `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a structured error to its HTTP status and writes it.
func writeError(w http.ResponseWriter, perr *plan.Error) {
	var body errorBody
	body.Error.Code = perr.Code
	body.Error.Message = perr.Message
	writeJSON(w, statusFor(perr.Code), body)
}

// writeBadRequest reports a malformed request body.
func writeBadRequest(w http.ResponseWriter, err error) {
	var body errorBody
	body.Error.Code = plan.ErrCodeInvalidInput
	body.Error.Message = err.Error()
	writeJSON(w, http.StatusBadRequest, body)
}

// statusFor maps error codes to HTTP statuses. Geometry failures are
// semantic problems with a well-formed request, reported as 422.
func statusFor(code plan.Code) int {
	switch code {
	case plan.ErrCodeNotFound:
		return http.StatusNotFound
	case plan.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case plan.ErrCodeAlreadyLinked, plan.ErrCodeThicknessConflict:
		return http.StatusConflict
	case plan.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusUnprocessableEntity
	}
}
