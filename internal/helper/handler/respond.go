package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "helperhub/pkg/domain-errors"
)

type errorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// writeError translates a coded domain error into the JSON error envelope.
// Causes are never serialized; only code, message and details cross the wire.
func writeError(w http.ResponseWriter, err error) {
	var derr *dErrors.Error
	if !errors.As(err, &derr) {
		derr = dErrors.New(dErrors.CodeInternal, "internal error")
	}
	writeJSON(w, statusOf(derr.Code), errorBody{
		Code:    string(derr.Code),
		Message: derr.Message,
		Details: derr.Details,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// statusOf maps the error taxonomy onto HTTP statuses. Validation codes are
// 422 so clients can distinguish malformed JSON (400) from rejected values.
func statusOf(code dErrors.Code) int {
	switch code {
	case dErrors.CodeEmailAlreadyInUse,
		dErrors.CodePhoneAlreadyInUse,
		dErrors.CodePasswordAlreadySet,
		dErrors.CodeEmailAlreadyConfirmed:
		return http.StatusConflict
	case dErrors.CodeTokenInvalid:
		return http.StatusBadRequest
	case dErrors.CodeTokenExpired:
		return http.StatusGone
	case dErrors.CodeSaveFailed, dErrors.CodeInternal:
		return http.StatusInternalServerError
	default:
		if code.IsValidation() {
			return http.StatusUnprocessableEntity
		}
		return http.StatusInternalServerError
	}
}
