package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshtikone/resumeforge/internal/types"
)

func TestHandleHealth(t *testing.T) {
	s := newTestServer(newFakeStore(), nil)

	w := httptest.NewRecorder()
	s.handleHealth(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHandleUpsertProfile_RoundTrip(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(store, nil)
	userID := uuid.New()

	body := `{"full_name":"Jane Doe","city":"Austin","state":"TX","preferred_tone":"formal"}`
	w := httptest.NewRecorder()
	s.handleUpsertProfile(w, userRequest(http.MethodPut, "/users/x/profile", userID, body))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	s.handleGetProfile(w, userRequest(http.MethodGet, "/users/x/profile", userID, ""))
	require.Equal(t, http.StatusOK, w.Code)

	var got types.CareerProfile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Jane Doe", got.FullName)
	assert.Equal(t, "formal", got.PreferredTone)
	assert.Equal(t, userID, got.UserID)
}

func TestHandleUpsertProfile_DefaultsTone(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(store, nil)
	userID := uuid.New()

	w := httptest.NewRecorder()
	s.handleUpsertProfile(w, userRequest(http.MethodPut, "/users/x/profile", userID, `{"full_name":"Jane"}`))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, types.ToneNeutral, store.profiles[userID].PreferredTone)
}

func TestHandleUpsertProfile_MissingName(t *testing.T) {
	s := newTestServer(newFakeStore(), nil)

	w := httptest.NewRecorder()
	s.handleUpsertProfile(w, userRequest(http.MethodPut, "/users/x/profile", uuid.New(), `{"city":"Austin"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "FullName")
}

func TestHandleGetProfile_NotFound(t *testing.T) {
	s := newTestServer(newFakeStore(), nil)

	w := httptest.NewRecorder()
	s.handleGetProfile(w, userRequest(http.MethodGet, "/users/x/profile", uuid.New(), ""))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleGetProfile_InvalidUserID(t *testing.T) {
	s := newTestServer(newFakeStore(), nil)

	r := httptest.NewRequest(http.MethodGet, "/users/nope/profile", nil)
	r.SetPathValue("id", "nope")
	w := httptest.NewRecorder()
	s.handleGetProfile(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCreateExperience(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(store, nil)
	userID := uuid.New()

	body := `{"job_title":"Engineer","company_name":"Acme","description":["Built things"]}`
	w := httptest.NewRecorder()
	s.handleCreateExperience(w, userRequest(http.MethodPost, "/users/x/experiences", userID, body))
	require.Equal(t, http.StatusCreated, w.Code)

	var got types.ExperienceItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, []string{"Built things"}, got.Bullets)
}

func TestHandleCreateExperience_MissingTitle(t *testing.T) {
	s := newTestServer(newFakeStore(), nil)

	w := httptest.NewRecorder()
	s.handleCreateExperience(w, userRequest(http.MethodPost, "/users/x/experiences", uuid.New(), `{"company_name":"Acme"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleUpdateExperience_WrongOwner(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(store, nil)

	owner := uuid.New()
	itemID := uuid.New()
	store.experiences[itemID] = types.ExperienceItem{ID: itemID, UserID: owner, JobTitle: "Engineer", Company: "Acme"}

	r := userRequest(http.MethodPut, "/users/x/experiences/y", uuid.New(), `{"job_title":"Other","company_name":"Acme"}`)
	r.SetPathValue("item_id", itemID.String())
	w := httptest.NewRecorder()
	s.handleUpdateExperience(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Engineer", store.experiences[itemID].JobTitle)
}

func TestHandleDeleteExperience(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(store, nil)

	userID := uuid.New()
	itemID := uuid.New()
	store.experiences[itemID] = types.ExperienceItem{ID: itemID, UserID: userID, JobTitle: "Engineer", Company: "Acme"}

	r := userRequest(http.MethodDelete, "/users/x/experiences/y", userID, "")
	r.SetPathValue("item_id", itemID.String())
	w := httptest.NewRecorder()
	s.handleDeleteExperience(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.experiences)

	// Second delete reports not found
	r = userRequest(http.MethodDelete, "/users/x/experiences/y", userID, "")
	r.SetPathValue("item_id", itemID.String())
	w = httptest.NewRecorder()
	s.handleDeleteExperience(w, r)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleListSkills_Empty(t *testing.T) {
	s := newTestServer(newFakeStore(), nil)

	w := httptest.NewRecorder()
	s.handleListSkills(w, userRequest(http.MethodGet, "/users/x/skills", uuid.New(), ""))

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(0), resp["count"])
}

func TestHandleCreateSkill_InvalidProficiency(t *testing.T) {
	s := newTestServer(newFakeStore(), nil)

	w := httptest.NewRecorder()
	s.handleCreateSkill(w, userRequest(http.MethodPost, "/users/x/skills", uuid.New(), `{"skill_name":"Go","proficiency":"Wizard"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleListHistory_InvalidLimit(t *testing.T) {
	s := newTestServer(newFakeStore(), nil)

	w := httptest.NewRecorder()
	s.handleListHistory(w, userRequest(http.MethodGet, "/users/x/history?limit=abc", uuid.New(), ""))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleDeleteHistory(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(store, nil)

	userID := uuid.New()
	recID := uuid.New()
	store.history[recID] = types.HistoryRecord{ID: recID, UserID: userID}

	r := userRequest(http.MethodDelete, "/users/x/history/y", userID, "")
	r.SetPathValue("item_id", recID.String())
	w := httptest.NewRecorder()
	s.handleDeleteHistory(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.history)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrProfileNotFound{}))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrItemNotFound{Kind: "experience"}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{}))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(&ErrUpstream{Service: "tailoring"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
}
