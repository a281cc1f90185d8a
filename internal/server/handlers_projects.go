package server

import (
	"net/http"

	"github.com/harshtikone/resumeforge/internal/types"
)

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}

	items, err := s.store.ListProjects(r.Context(), userID)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"projects": items,
		"count":    len(items),
	})
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}
	itemID, ok := s.pathUUID(w, r, "item_id", "project ID")
	if !ok {
		return
	}

	item, err := s.store.GetProject(r.Context(), userID, itemID)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if item == nil {
		s.errorResponse(w, http.StatusNotFound, "Project not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, item)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}

	var req types.ProjectItem
	if !s.decodeValid(w, r, &req) {
		return
	}
	req.UserID = userID

	item, err := s.store.CreateProject(r.Context(), &req)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, item)
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}
	itemID, ok := s.pathUUID(w, r, "item_id", "project ID")
	if !ok {
		return
	}

	var req types.ProjectItem
	if !s.decodeValid(w, r, &req) {
		return
	}
	req.ID = itemID
	req.UserID = userID

	item, err := s.store.UpdateProject(r.Context(), &req)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if item == nil {
		s.errorResponse(w, http.StatusNotFound, "Project not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, item)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}
	itemID, ok := s.pathUUID(w, r, "item_id", "project ID")
	if !ok {
		return
	}

	deleted, err := s.store.DeleteProject(r.Context(), userID, itemID)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Project not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
