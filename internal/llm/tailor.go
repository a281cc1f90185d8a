package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/harshtikone/resumeforge/internal/prompts"
	"github.com/harshtikone/resumeforge/internal/schemas"
	"github.com/harshtikone/resumeforge/internal/types"
)

// ErrMalformedResponse indicates the provider answered but the payload did
// not match the expected JSON shape. Callers must treat this as a
// collaborator failure and leave the selected items untouched.
var ErrMalformedResponse = errors.New("malformed tailoring response")

// TailorRequest carries the already-selected items and job context for one
// tailoring call.
type TailorRequest struct {
	Profile        *types.CareerProfile
	Experiences    []types.ExperienceItem
	Projects       []types.ProjectItem
	JobTitle       string
	CompanyName    string
	JobDescription string
}

// OptimizedItem is one rewritten item in the provider's response. Items are
// matched back to their source by the stable id echoed through the prompt,
// not by position, so reordering in the response cannot corrupt unrelated
// items.
type OptimizedItem struct {
	ID      string   `json:"id"`
	Bullets []string `json:"bullets"`
}

// TailorResult is the parsed and validated tailoring payload.
type TailorResult struct {
	Summary              string          `json:"summary"`
	CoverLetter          string          `json:"cover_letter"`
	OptimizedExperiences []OptimizedItem `json:"optimized_experiences"`
	OptimizedProjects    []OptimizedItem `json:"optimized_projects"`
}

// experienceContext is the per-item prompt payload for experiences.
type experienceContext struct {
	ID              string   `json:"id"`
	JobTitle        string   `json:"job_title"`
	CompanyName     string   `json:"company_name"`
	Location        string   `json:"location,omitempty"`
	StartDate       string   `json:"start_date,omitempty"`
	EndDate         string   `json:"end_date,omitempty"`
	OriginalBullets []string `json:"original_bullets"`
}

// projectContext is the per-item prompt payload for projects.
type projectContext struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"project_name"`
	OriginalDescription  string   `json:"original_description"`
	OriginalImpact       string   `json:"original_impact,omitempty"`
	OriginalTechnologies []string `json:"original_technologies,omitempty"`
}

// Tailor asks the provider for a tailored summary, cover letter and
// optimized bullets for the selected items.
func Tailor(ctx context.Context, client Client, req TailorRequest) (*TailorResult, error) {
	prompt, err := BuildTailorPrompt(req)
	if err != nil {
		return nil, fmt.Errorf("failed to build tailoring prompt: %w", err)
	}

	raw, err := client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("tailoring request failed: %w", err)
	}

	return ParseTailorResponse(raw)
}

// BuildTailorPrompt renders the tailoring prompt template with the request's
// job context, profile context and item payloads.
func BuildTailorPrompt(req TailorRequest) (string, error) {
	if req.Profile == nil {
		return "", fmt.Errorf("profile is required")
	}

	template, err := prompts.Get("tailor.json", "tailor-resume")
	if err != nil {
		return "", err
	}

	expCtx := make([]experienceContext, 0, len(req.Experiences))
	for _, exp := range req.Experiences {
		end := ""
		if exp.IsCurrent {
			end = "Present"
		} else if exp.EndDate != nil {
			end = *exp.EndDate
		}
		expCtx = append(expCtx, experienceContext{
			ID:              exp.ID.String(),
			JobTitle:        exp.JobTitle,
			CompanyName:     exp.Company,
			Location:        exp.Location,
			StartDate:       exp.StartDate,
			EndDate:         end,
			OriginalBullets: exp.Bullets,
		})
	}

	projCtx := make([]projectContext, 0, len(req.Projects))
	for _, proj := range req.Projects {
		projCtx = append(projCtx, projectContext{
			ID:                   proj.ID.String(),
			Name:                 proj.Name,
			OriginalDescription:  proj.Description,
			OriginalImpact:       proj.Impact,
			OriginalTechnologies: proj.Technologies,
		})
	}

	expJSON, err := json.MarshalIndent(expCtx, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal experience context: %w", err)
	}
	projJSON, err := json.MarshalIndent(projCtx, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal project context: %w", err)
	}

	tone := req.Profile.PreferredTone
	if tone == "" {
		tone = types.ToneNeutral
	}
	writingSample := req.Profile.WritingSample
	if writingSample == "" {
		writingSample = "(no sample provided)"
	}
	jobDescription := req.JobDescription
	if jobDescription == "" {
		jobDescription = "(not provided)"
	}

	jobContext := fmt.Sprintf("Job title: %s\nCompany: %s\n\nJob description:\n%s",
		req.JobTitle, req.CompanyName, jobDescription)
	profileContext := fmt.Sprintf("Candidate:\nName: %s\nLocation: %s\nBase summary (if any): %s",
		req.Profile.FullName, locationLine(req.Profile), orPlaceholder(req.Profile.BaseSummary, "(none yet)"))

	return prompts.Format(template, map[string]string{
		"JobContext":     jobContext,
		"ProfileContext": profileContext,
		"Tone":           tone,
		"WritingSample":  writingSample,
		"HeaderBlock":    headerBlock(req.Profile),
		"Experiences":    string(expJSON),
		"Projects":       string(projJSON),
	}), nil
}

// ParseTailorResponse validates and decodes a raw provider payload. Any
// structural problem is reported as ErrMalformedResponse so callers can
// distinguish collaborator faults from transport errors.
func ParseTailorResponse(raw string) (*TailorResult, error) {
	cleaned := ExtractJSONObject(CleanJSONBlock(raw))

	if err := schemas.Validate(schemas.TailorResponseSchema, cleaned); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	var result TailorResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return &result, nil
}

// headerBlock builds the two-line resume header used at the top of both the
// resume and the cover letter.
func headerBlock(p *types.CareerProfile) string {
	var parts []string
	if loc := locationLine(p); loc != "" {
		parts = append(parts, loc)
	}
	for _, v := range []string{p.Phone, p.LinkedInURL, p.GitHubURL, p.PortfolioURL} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return p.FullName + "\n" + strings.Join(parts, " | ")
}

func locationLine(p *types.CareerProfile) string {
	loc := p.City
	if p.State != "" {
		if loc != "" {
			loc += ", "
		}
		loc += p.State
	}
	return loc
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
