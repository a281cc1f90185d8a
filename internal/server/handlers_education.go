package server

import (
	"net/http"

	"github.com/harshtikone/resumeforge/internal/types"
)

func (s *Server) handleListEducation(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}

	items, err := s.store.ListEducation(r.Context(), userID)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"education": items,
		"count":     len(items),
	})
}

func (s *Server) handleGetEducation(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}
	itemID, ok := s.pathUUID(w, r, "item_id", "education ID")
	if !ok {
		return
	}

	item, err := s.store.GetEducation(r.Context(), userID, itemID)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if item == nil {
		s.errorResponse(w, http.StatusNotFound, "Education not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, item)
}

func (s *Server) handleCreateEducation(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}

	var req types.EducationItem
	if !s.decodeValid(w, r, &req) {
		return
	}
	req.UserID = userID

	item, err := s.store.CreateEducation(r.Context(), &req)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, item)
}

func (s *Server) handleUpdateEducation(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}
	itemID, ok := s.pathUUID(w, r, "item_id", "education ID")
	if !ok {
		return
	}

	var req types.EducationItem
	if !s.decodeValid(w, r, &req) {
		return
	}
	req.ID = itemID
	req.UserID = userID

	item, err := s.store.UpdateEducation(r.Context(), &req)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if item == nil {
		s.errorResponse(w, http.StatusNotFound, "Education not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, item)
}

func (s *Server) handleDeleteEducation(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}
	itemID, ok := s.pathUUID(w, r, "item_id", "education ID")
	if !ok {
		return
	}

	deleted, err := s.store.DeleteEducation(r.Context(), userID, itemID)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Education not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
