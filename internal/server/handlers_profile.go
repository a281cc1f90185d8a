package server

import (
	"net/http"

	"github.com/harshtikone/resumeforge/internal/types"
)

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}

	profile, err := s.store.GetProfile(r.Context(), userID)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

func (s *Server) handleUpsertProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}

	var req types.CareerProfile
	if !s.decodeValid(w, r, &req) {
		return
	}
	req.UserID = userID
	if req.PreferredTone == "" {
		req.PreferredTone = types.ToneNeutral
	}

	profile, err := s.store.UpsertProfile(r.Context(), &req)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}
