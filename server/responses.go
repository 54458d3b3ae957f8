package server

import (
	"encoding/json"
	"net/http"

	"github.com/jrsteele09/go-profile-server/github"
	"github.com/jrsteele09/go-profile-server/internal/errors"
	"github.com/rs/zerolog/log"
)

const serverErrorText = "Server Error"

type messageResponse struct {
	Msg string `json:"msg"`
}

type errorsResponse struct {
	Errors []errors.FieldError `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Err(err).Msg("failed to encode response")
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Msg: msg})
}

func writeFieldErrors(w http.ResponseWriter, status int, fields ...errors.FieldError) {
	writeJSON(w, status, errorsResponse{Errors: fields})
}

func writeServerError(w http.ResponseWriter) {
	http.Error(w, serverErrorText, http.StatusInternalServerError)
}

// decodeJSON reads the request body into v. A malformed body is a validation failure.
func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.NewValidationError("body", "Request body must be valid JSON")
	}
	return nil
}

// writeError maps a service error onto an HTTP response. Store failures and
// anything unrecognised are logged and reported as a bare 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *errors.ValidationError
	switch {
	case errors.As(err, &ve):
		writeFieldErrors(w, http.StatusBadRequest, ve.Fields...)
	case errors.Is(err, errors.ErrValidationFailed):
		writeFieldErrors(w, http.StatusBadRequest, errors.FieldError{Message: err.Error()})
	case errors.Is(err, errors.ErrInvalidCredentials):
		writeFieldErrors(w, http.StatusUnauthorized, errors.FieldError{Message: "Invalid Credentials"})
	case errors.Is(err, errors.ErrUnauthenticated):
		writeMessage(w, http.StatusUnauthorized, "Token is not valid")
	case errors.Is(err, errors.ErrUserExists):
		writeFieldErrors(w, http.StatusConflict, errors.FieldError{Field: "email", Message: "User already exists"})
	case errors.Is(err, errors.ErrConflict):
		writeMessage(w, http.StatusConflict, "Conflict")
	case errors.Is(err, github.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "No Github profile found")
	case errors.Is(err, errors.ErrProfileNotFound):
		writeMessage(w, http.StatusNotFound, "Profile not found")
	case errors.Is(err, errors.ErrEntryNotFound):
		writeMessage(w, http.StatusNotFound, "Entry not found")
	case errors.Is(err, errors.ErrUserNotFound):
		writeMessage(w, http.StatusNotFound, "User not found")
	case errors.Is(err, errors.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "Not found")
	default:
		log.Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
		writeServerError(w)
	}
}
