package server

import (
	"net/http"
	"strconv"
)

func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	records, err := s.store.ListHistory(r.Context(), userID, limit)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"history": records,
		"count":   len(records),
	})
}

func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}
	itemID, ok := s.pathUUID(w, r, "item_id", "history ID")
	if !ok {
		return
	}

	record, err := s.store.GetHistory(r.Context(), userID, itemID)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "History record not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

func (s *Server) handleDeleteHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}
	itemID, ok := s.pathUUID(w, r, "item_id", "history ID")
	if !ok {
		return
	}

	deleted, err := s.store.DeleteHistory(r.Context(), userID, itemID)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "History record not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
