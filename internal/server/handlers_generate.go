package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/harshtikone/resumeforge/internal/export"
	"github.com/harshtikone/resumeforge/internal/ingestion"
	"github.com/harshtikone/resumeforge/internal/keywords"
	"github.com/harshtikone/resumeforge/internal/llm"
	"github.com/harshtikone/resumeforge/internal/pagefit"
	"github.com/harshtikone/resumeforge/internal/rendering"
	"github.com/harshtikone/resumeforge/internal/selection"
	"github.com/harshtikone/resumeforge/internal/types"
)

// GenerateRequest is the shared payload for preview and tailored generation.
// JobURL is consulted only when JobDescription is empty.
type GenerateRequest struct {
	JobTitle       string `json:"job_title"`
	CompanyName    string `json:"company_name"`
	JobDescription string `json:"job_description"`
	JobURL         string `json:"job_url" validate:"omitempty,url"`
}

// careerData is everything stored for one user, loaded in one shot
type careerData struct {
	Profile        *types.CareerProfile
	Experiences    []types.ExperienceItem
	Projects       []types.ProjectItem
	Skills         []types.SkillItem
	Education      []types.EducationItem
	Certifications []types.CertificationItem
}

// loadCareerData fetches the profile and all six item lists concurrently
func (s *Server) loadCareerData(ctx context.Context, userID uuid.UUID) (*careerData, error) {
	var data careerData
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		data.Profile, err = s.store.GetProfile(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		data.Experiences, err = s.store.ListExperiences(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		data.Projects, err = s.store.ListProjects(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		data.Skills, err = s.store.ListSkills(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		data.Education, err = s.store.ListEducation(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		data.Certifications, err = s.store.ListCertifications(ctx, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load career data: %w", err)
	}
	return &data, nil
}

// resolveJobDescription returns the posting text, fetching it from the job URL
// when no inline description was supplied.
func (s *Server) resolveJobDescription(ctx context.Context, req *GenerateRequest) (string, error) {
	if req.JobDescription != "" || req.JobURL == "" {
		return req.JobDescription, nil
	}
	text, err := ingestion.FetchJobDescription(ctx, req.JobURL)
	if err != nil {
		return "", &ErrUpstream{Service: "job posting fetch", Cause: err}
	}
	return text, nil
}

// selectItems runs keyword extraction and relevance selection over the stored
// items. With no keywords the lists pass through uncapped.
func (s *Server) selectItems(data *careerData, jobDescription string) (kws []string, exps []types.ExperienceItem, projs []types.ProjectItem, certs []types.CertificationItem) {
	kws = keywords.ExtractTop(jobDescription, s.cfg.MaxKeywords)
	caps := s.cfg.Caps()
	exps = selection.Experiences(data.Experiences, kws, caps)
	projs = selection.Projects(data.Projects, kws, caps)
	certs = selection.Certifications(data.Certifications, kws, caps)
	return kws, exps, projs, certs
}

func itemIDs[T any](items []T, id func(T) uuid.UUID) []uuid.UUID {
	ids := make([]uuid.UUID, len(items))
	for i, item := range items {
		ids[i] = id(item)
	}
	return ids
}

func (s *Server) handlePreviewResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}

	var req GenerateRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	jobDescription, err := s.resolveJobDescription(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	data, err := s.loadCareerData(r.Context(), userID)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if data.Profile == nil {
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}

	kws, exps, projs, certs := s.selectItems(data, jobDescription)

	fitted := pagefit.Fit(rendering.Input{
		Profile:        data.Profile,
		Experiences:    exps,
		Projects:       projs,
		Skills:         data.Skills,
		Education:      data.Education,
		Certifications: certs,
		JobTitle:       req.JobTitle,
		CompanyName:    req.CompanyName,
	}, s.cfg.FitOptions())

	lines := rendering.ResumeLines(rendering.Input{
		Profile:        data.Profile,
		Experiences:    fitted.Experiences,
		Projects:       fitted.Projects,
		Skills:         data.Skills,
		Education:      data.Education,
		Certifications: certs,
		JobTitle:       req.JobTitle,
		CompanyName:    req.CompanyName,
	})

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"lines":                lines,
		"line_count":           fitted.Lines,
		"keywords":             kws,
		"ats_score":            types.ApproxMatchScore(kws),
		"selected_experiences": itemIDs(fitted.Experiences, func(e types.ExperienceItem) uuid.UUID { return e.ID }),
		"selected_projects":    itemIDs(fitted.Projects, func(p types.ProjectItem) uuid.UUID { return p.ID }),
	})
}

func (s *Server) handleGenerateResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "id", "user ID")
	if !ok {
		return
	}
	if s.llm == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Generative collaborator is not configured")
		return
	}

	var req GenerateRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	jobDescription, err := s.resolveJobDescription(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if jobDescription == "" {
		s.errorResponse(w, http.StatusBadRequest, "job_description or job_url is required")
		return
	}

	data, err := s.loadCareerData(r.Context(), userID)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if data.Profile == nil {
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}

	kws, exps, projs, certs := s.selectItems(data, jobDescription)

	result, err := llm.Tailor(r.Context(), s.llm, llm.TailorRequest{
		Profile:        data.Profile,
		Experiences:    exps,
		Projects:       projs,
		JobTitle:       req.JobTitle,
		CompanyName:    req.CompanyName,
		JobDescription: jobDescription,
	})
	if err != nil {
		upstream := &ErrUpstream{Service: "tailoring", Cause: err}
		s.errorResponse(w, HTTPStatus(upstream), upstream.Error())
		return
	}

	exps = llm.ApplyOptimizedExperiences(exps, result.OptimizedExperiences)
	projs = llm.ApplyOptimizedProjects(projs, result.OptimizedProjects)

	fitted := pagefit.Fit(rendering.Input{
		Profile:         data.Profile,
		Experiences:     exps,
		Projects:        projs,
		Skills:          data.Skills,
		Education:       data.Education,
		Certifications:  certs,
		SummaryOverride: result.Summary,
		JobTitle:        req.JobTitle,
		CompanyName:     req.CompanyName,
	}, s.cfg.FitOptions())

	lines := rendering.ResumeLines(rendering.Input{
		Profile:         data.Profile,
		Experiences:     fitted.Experiences,
		Projects:        fitted.Projects,
		Skills:          data.Skills,
		Education:       data.Education,
		Certifications:  certs,
		SummaryOverride: result.Summary,
		JobTitle:        req.JobTitle,
		CompanyName:     req.CompanyName,
	})

	record, err := s.store.InsertHistory(r.Context(), &types.HistoryRecord{
		UserID:                userID,
		JobTitle:              req.JobTitle,
		CompanyName:           req.CompanyName,
		JobDescription:        jobDescription,
		SelectedExperienceIDs: itemIDs(fitted.Experiences, func(e types.ExperienceItem) uuid.UUID { return e.ID }),
		SelectedProjectIDs:    itemIDs(fitted.Projects, func(p types.ProjectItem) uuid.UUID { return p.ID }),
		SummaryUsed:           result.Summary,
		MatchScore:            types.ApproxMatchScore(kws),
		Keywords:              kws,
	})
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"lines":        lines,
		"line_count":   fitted.Lines,
		"summary":      result.Summary,
		"cover_letter": result.CoverLetter,
		"keywords":     kws,
		"ats_score":    record.MatchScore,
		"history_id":   record.ID,
	})
}

// ExportRequest wraps previously generated content for download. Resume
// exports send the rendered lines back; cover letter exports send the text.
type ExportRequest struct {
	Artifact    string   `json:"artifact" validate:"required,oneof=resume cover_letter"`
	Lines       []string `json:"lines"`
	Text        string   `json:"text"`
	CompanyName string   `json:"company_name"`
}

func (s *Server) handleExportArtifact(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.pathUUID(w, r, "id", "user ID"); !ok {
		return
	}

	var req ExportRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	var artifact export.Artifact
	switch req.Artifact {
	case "resume":
		if len(req.Lines) == 0 {
			s.errorResponse(w, http.StatusBadRequest, "lines is required for resume export")
			return
		}
		artifact = export.ResumeArtifact(req.Lines, req.CompanyName)
	case "cover_letter":
		if req.Text == "" {
			s.errorResponse(w, http.StatusBadRequest, "text is required for cover letter export")
			return
		}
		artifact = export.CoverLetterArtifact(req.Text, req.CompanyName)
	}

	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+artifact.Filename)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact.Data)
}

// FetchPostingRequest asks the server to pull a job posting's text
type FetchPostingRequest struct {
	URL string `json:"url" validate:"required,url"`
}

func (s *Server) handleFetchJobPosting(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.pathUUID(w, r, "id", "user ID"); !ok {
		return
	}

	var req FetchPostingRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	text, err := ingestion.FetchJobDescription(r.Context(), req.URL)
	if err != nil {
		upstream := &ErrUpstream{Service: "job posting fetch", Cause: err}
		s.errorResponse(w, HTTPStatus(upstream), upstream.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"job_description": text})
}
