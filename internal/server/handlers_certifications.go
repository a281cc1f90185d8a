package server

import (
	"net/http"

	"github.com/harshtikone/resumeforge/internal/types"
)

func (s *Server) handleListCertifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}

	items, err := s.store.ListCertifications(r.Context(), userID)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"certifications": items,
		"count":          len(items),
	})
}

func (s *Server) handleGetCertification(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}
	itemID, ok := s.pathUUID(w, r, "item_id", "certification ID")
	if !ok {
		return
	}

	item, err := s.store.GetCertification(r.Context(), userID, itemID)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if item == nil {
		s.errorResponse(w, http.StatusNotFound, "Certification not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, item)
}

func (s *Server) handleCreateCertification(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}

	var req types.CertificationItem
	if !s.decodeValid(w, r, &req) {
		return
	}
	req.UserID = userID

	item, err := s.store.CreateCertification(r.Context(), &req)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, item)
}

func (s *Server) handleUpdateCertification(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}
	itemID, ok := s.pathUUID(w, r, "item_id", "certification ID")
	if !ok {
		return
	}

	var req types.CertificationItem
	if !s.decodeValid(w, r, &req) {
		return
	}
	req.ID = itemID
	req.UserID = userID

	item, err := s.store.UpdateCertification(r.Context(), &req)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if item == nil {
		s.errorResponse(w, http.StatusNotFound, "Certification not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, item)
}

func (s *Server) handleDeleteCertification(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}
	itemID, ok := s.pathUUID(w, r, "item_id", "certification ID")
	if !ok {
		return
	}

	deleted, err := s.store.DeleteCertification(r.Context(), userID, itemID)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Certification not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
