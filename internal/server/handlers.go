package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// pathUUID parses a UUID path segment, writing a 400 response on failure.
// The second return value reports whether parsing succeeded.
func (s *Server) pathUUID(w http.ResponseWriter, r *http.Request, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid "+label)
		return uuid.Nil, false
	}
	return id, true
}

// decodeValid decodes the JSON body into dst and runs struct validation.
// On failure it writes a 400 response and returns false.
func (s *Server) decodeValid(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

// validationMessage flattens the first validator failure into a readable
// message like "job_title failed on 'required'".
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return "Validation failed: " + fe.Field() + " failed on '" + fe.Tag() + "'"
	}
	return "Validation failed"
}

// storeError writes a 500 response for a persistence failure
func (s *Server) storeError(w http.ResponseWriter, err error) {
	s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
}
