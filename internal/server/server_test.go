package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harshtikone/resumeforge/internal/config"
	"github.com/harshtikone/resumeforge/internal/llm"
	"github.com/harshtikone/resumeforge/internal/types"
)

// fakeStore is an in-memory Store for handler tests
type fakeStore struct {
	profiles       map[uuid.UUID]*types.CareerProfile
	experiences    map[uuid.UUID]types.ExperienceItem
	projects       map[uuid.UUID]types.ProjectItem
	skills         map[uuid.UUID]types.SkillItem
	education      map[uuid.UUID]types.EducationItem
	certifications map[uuid.UUID]types.CertificationItem
	history        map[uuid.UUID]types.HistoryRecord
	err            error // when set, every method fails with it
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		profiles:       make(map[uuid.UUID]*types.CareerProfile),
		experiences:    make(map[uuid.UUID]types.ExperienceItem),
		projects:       make(map[uuid.UUID]types.ProjectItem),
		skills:         make(map[uuid.UUID]types.SkillItem),
		education:      make(map[uuid.UUID]types.EducationItem),
		certifications: make(map[uuid.UUID]types.CertificationItem),
		history:        make(map[uuid.UUID]types.HistoryRecord),
	}
}

func (f *fakeStore) UpsertProfile(_ context.Context, p *types.CareerProfile) (*types.CareerProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	cp := *p
	cp.UpdatedAt = time.Now()
	f.profiles[p.UserID] = &cp
	return &cp, nil
}

func (f *fakeStore) GetProfile(_ context.Context, userID uuid.UUID) (*types.CareerProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profiles[userID], nil
}

func (f *fakeStore) ListExperiences(_ context.Context, userID uuid.UUID) ([]types.ExperienceItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []types.ExperienceItem
	for _, e := range f.experiences {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) GetExperience(_ context.Context, userID, id uuid.UUID) (*types.ExperienceItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	if e, ok := f.experiences[id]; ok && e.UserID == userID {
		return &e, nil
	}
	return nil, nil
}

func (f *fakeStore) CreateExperience(_ context.Context, e *types.ExperienceItem) (*types.ExperienceItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	e.ID = uuid.New()
	f.experiences[e.ID] = *e
	return e, nil
}

func (f *fakeStore) UpdateExperience(_ context.Context, e *types.ExperienceItem) (*types.ExperienceItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	if old, ok := f.experiences[e.ID]; !ok || old.UserID != e.UserID {
		return nil, nil
	}
	f.experiences[e.ID] = *e
	return e, nil
}

func (f *fakeStore) DeleteExperience(_ context.Context, userID, id uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if e, ok := f.experiences[id]; ok && e.UserID == userID {
		delete(f.experiences, id)
		return true, nil
	}
	return false, nil
}

func (f *fakeStore) ListProjects(_ context.Context, userID uuid.UUID) ([]types.ProjectItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []types.ProjectItem
	for _, p := range f.projects {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) GetProject(_ context.Context, userID, id uuid.UUID) (*types.ProjectItem, error) {
	if p, ok := f.projects[id]; ok && p.UserID == userID {
		return &p, nil
	}
	return nil, nil
}

func (f *fakeStore) CreateProject(_ context.Context, p *types.ProjectItem) (*types.ProjectItem, error) {
	p.ID = uuid.New()
	f.projects[p.ID] = *p
	return p, nil
}

func (f *fakeStore) UpdateProject(_ context.Context, p *types.ProjectItem) (*types.ProjectItem, error) {
	if old, ok := f.projects[p.ID]; !ok || old.UserID != p.UserID {
		return nil, nil
	}
	f.projects[p.ID] = *p
	return p, nil
}

func (f *fakeStore) DeleteProject(_ context.Context, userID, id uuid.UUID) (bool, error) {
	if p, ok := f.projects[id]; ok && p.UserID == userID {
		delete(f.projects, id)
		return true, nil
	}
	return false, nil
}

func (f *fakeStore) ListSkills(_ context.Context, userID uuid.UUID) ([]types.SkillItem, error) {
	var out []types.SkillItem
	for _, sk := range f.skills {
		if sk.UserID == userID {
			out = append(out, sk)
		}
	}
	return out, nil
}

func (f *fakeStore) GetSkill(_ context.Context, userID, id uuid.UUID) (*types.SkillItem, error) {
	if sk, ok := f.skills[id]; ok && sk.UserID == userID {
		return &sk, nil
	}
	return nil, nil
}

func (f *fakeStore) CreateSkill(_ context.Context, sk *types.SkillItem) (*types.SkillItem, error) {
	sk.ID = uuid.New()
	f.skills[sk.ID] = *sk
	return sk, nil
}

func (f *fakeStore) UpdateSkill(_ context.Context, sk *types.SkillItem) (*types.SkillItem, error) {
	if old, ok := f.skills[sk.ID]; !ok || old.UserID != sk.UserID {
		return nil, nil
	}
	f.skills[sk.ID] = *sk
	return sk, nil
}

func (f *fakeStore) DeleteSkill(_ context.Context, userID, id uuid.UUID) (bool, error) {
	if sk, ok := f.skills[id]; ok && sk.UserID == userID {
		delete(f.skills, id)
		return true, nil
	}
	return false, nil
}

func (f *fakeStore) ListEducation(_ context.Context, userID uuid.UUID) ([]types.EducationItem, error) {
	var out []types.EducationItem
	for _, e := range f.education {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) GetEducation(_ context.Context, userID, id uuid.UUID) (*types.EducationItem, error) {
	if e, ok := f.education[id]; ok && e.UserID == userID {
		return &e, nil
	}
	return nil, nil
}

func (f *fakeStore) CreateEducation(_ context.Context, e *types.EducationItem) (*types.EducationItem, error) {
	e.ID = uuid.New()
	f.education[e.ID] = *e
	return e, nil
}

func (f *fakeStore) UpdateEducation(_ context.Context, e *types.EducationItem) (*types.EducationItem, error) {
	if old, ok := f.education[e.ID]; !ok || old.UserID != e.UserID {
		return nil, nil
	}
	f.education[e.ID] = *e
	return e, nil
}

func (f *fakeStore) DeleteEducation(_ context.Context, userID, id uuid.UUID) (bool, error) {
	if e, ok := f.education[id]; ok && e.UserID == userID {
		delete(f.education, id)
		return true, nil
	}
	return false, nil
}

func (f *fakeStore) ListCertifications(_ context.Context, userID uuid.UUID) ([]types.CertificationItem, error) {
	var out []types.CertificationItem
	for _, c := range f.certifications {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) GetCertification(_ context.Context, userID, id uuid.UUID) (*types.CertificationItem, error) {
	if c, ok := f.certifications[id]; ok && c.UserID == userID {
		return &c, nil
	}
	return nil, nil
}

func (f *fakeStore) CreateCertification(_ context.Context, c *types.CertificationItem) (*types.CertificationItem, error) {
	c.ID = uuid.New()
	f.certifications[c.ID] = *c
	return c, nil
}

func (f *fakeStore) UpdateCertification(_ context.Context, c *types.CertificationItem) (*types.CertificationItem, error) {
	if old, ok := f.certifications[c.ID]; !ok || old.UserID != c.UserID {
		return nil, nil
	}
	f.certifications[c.ID] = *c
	return c, nil
}

func (f *fakeStore) DeleteCertification(_ context.Context, userID, id uuid.UUID) (bool, error) {
	if c, ok := f.certifications[id]; ok && c.UserID == userID {
		delete(f.certifications, id)
		return true, nil
	}
	return false, nil
}

func (f *fakeStore) InsertHistory(_ context.Context, h *types.HistoryRecord) (*types.HistoryRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	h.ID = uuid.New()
	h.CreatedAt = time.Now()
	f.history[h.ID] = *h
	return h, nil
}

func (f *fakeStore) ListHistory(_ context.Context, userID uuid.UUID, _ int) ([]types.HistoryRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []types.HistoryRecord
	for _, h := range f.history {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeStore) GetHistory(_ context.Context, userID, id uuid.UUID) (*types.HistoryRecord, error) {
	if h, ok := f.history[id]; ok && h.UserID == userID {
		return &h, nil
	}
	return nil, nil
}

func (f *fakeStore) DeleteHistory(_ context.Context, userID, id uuid.UUID) (bool, error) {
	if h, ok := f.history[id]; ok && h.UserID == userID {
		delete(f.history, id)
		return true, nil
	}
	return false, nil
}

// fakeLLM returns a canned response for every prompt
type fakeLLM struct {
	response string
	err      error
}

func (f *fakeLLM) GenerateJSON(_ context.Context, _ string) (string, error) {
	return f.response, f.err
}

func (f *fakeLLM) Close() error { return nil }

var _ llm.Client = (*fakeLLM)(nil)

// newTestServer builds a server over the fake store without starting it
func newTestServer(store Store, llmClient llm.Client) *Server {
	return New(config.Default(), store, llmClient)
}

func userRequest(method, path string, userID uuid.UUID, body string) *http.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	r := httptest.NewRequest(method, path, rd)
	r.SetPathValue("id", userID.String())
	return r
}
