package server

import (
	"net/http"

	"github.com/harshtikone/resumeforge/internal/types"
)

func (s *Server) handleListSkills(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}

	items, err := s.store.ListSkills(r.Context(), userID)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"skills": items,
		"count":  len(items),
	})
}

func (s *Server) handleGetSkill(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}
	itemID, ok := s.pathUUID(w, r, "item_id", "skill ID")
	if !ok {
		return
	}

	item, err := s.store.GetSkill(r.Context(), userID, itemID)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if item == nil {
		s.errorResponse(w, http.StatusNotFound, "Skill not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, item)
}

func (s *Server) handleCreateSkill(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}

	var req types.SkillItem
	if !s.decodeValid(w, r, &req) {
		return
	}
	req.UserID = userID

	item, err := s.store.CreateSkill(r.Context(), &req)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, item)
}

func (s *Server) handleUpdateSkill(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}
	itemID, ok := s.pathUUID(w, r, "item_id", "skill ID")
	if !ok {
		return
	}

	var req types.SkillItem
	if !s.decodeValid(w, r, &req) {
		return
	}
	req.ID = itemID
	req.UserID = userID

	item, err := s.store.UpdateSkill(r.Context(), &req)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if item == nil {
		s.errorResponse(w, http.StatusNotFound, "Skill not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, item)
}

func (s *Server) handleDeleteSkill(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}
	itemID, ok := s.pathUUID(w, r, "item_id", "skill ID")
	if !ok {
		return
	}

	deleted, err := s.store.DeleteSkill(r.Context(), userID, itemID)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Skill not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
