package server

import (
	"net/http"

	"github.com/harshtikone/resumeforge/internal/types"
)

func (s *Server) handleListExperiences(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}

	items, err := s.store.ListExperiences(r.Context(), userID)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"experiences": items,
		"count":       len(items),
	})
}

func (s *Server) handleGetExperience(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}
	itemID, ok := s.pathUUID(w, r, "item_id", "experience ID")
	if !ok {
		return
	}

	item, err := s.store.GetExperience(r.Context(), userID, itemID)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if item == nil {
		s.errorResponse(w, http.StatusNotFound, "Experience not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, item)
}

func (s *Server) handleCreateExperience(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}

	var req types.ExperienceItem
	if !s.decodeValid(w, r, &req) {
		return
	}
	req.UserID = userID

	item, err := s.store.CreateExperience(r.Context(), &req)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, item)
}

func (s *Server) handleUpdateExperience(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}
	itemID, ok := s.pathUUID(w, r, "item_id", "experience ID")
	if !ok {
		return
	}

	var req types.ExperienceItem
	if !s.decodeValid(w, r, &req) {
		return
	}
	req.ID = itemID
	req.UserID = userID

	item, err := s.store.UpdateExperience(r.Context(), &req)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if item == nil {
		s.errorResponse(w, http.StatusNotFound, "Experience not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, item)
}

func (s *Server) handleDeleteExperience(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}
	itemID, ok := s.pathUUID(w, r, "item_id", "experience ID")
	if !ok {
		return
	}

	deleted, err := s.store.DeleteExperience(r.Context(), userID, itemID)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Experience not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
