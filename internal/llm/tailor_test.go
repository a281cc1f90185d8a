package llm

import (
	"testing"

	"github.com/google/uuid"
	"github.com/harshtikone/resumeforge/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tailorProfile() *types.CareerProfile {
	return &types.CareerProfile{
		FullName: "Jane Doe",
		City:     "Buffalo",
		State:    "NY",
		Phone:    "716-555-0100",
	}
}

func TestBuildTailorPrompt_IncludesItemIDs(t *testing.T) {
	expID := uuid.New()
	projID := uuid.New()
	req := TailorRequest{
		Profile: tailorProfile(),
		Experiences: []types.ExperienceItem{
			{ID: expID, JobTitle: "Engineer", Company: "Acme",
				Bullets: []string{"Did things"}},
		},
		Projects: []types.ProjectItem{
			{ID: projID, Name: "Recommender", Description: "Suggests movies"},
		},
		JobTitle:       "ML Engineer",
		CompanyName:    "Beta Corp",
		JobDescription: "Build ML pipelines",
	}

	prompt, err := BuildTailorPrompt(req)
	require.NoError(t, err)

	assert.Contains(t, prompt, expID.String())
	assert.Contains(t, prompt, projID.String())
	assert.Contains(t, prompt, "ML Engineer")
	assert.Contains(t, prompt, "Beta Corp")
	assert.Contains(t, prompt, "Jane Doe\nBuffalo, NY | 716-555-0100")
	// No unexpanded placeholders survive
	assert.NotContains(t, prompt, "{{.")
}

func TestBuildTailorPrompt_RequiresProfile(t *testing.T) {
	_, err := BuildTailorPrompt(TailorRequest{})
	assert.Error(t, err)
}

func TestParseTailorResponse_Valid(t *testing.T) {
	raw := "```json\n{\"summary\": \"Short summary.\", \"cover_letter\": \"Dear team...\", " +
		"\"optimized_experiences\": [{\"id\": \"exp-1\", \"bullets\": [\"Better bullet\"]}]}\n```"

	result, err := ParseTailorResponse(raw)
	require.NoError(t, err)

	assert.Equal(t, "Short summary.", result.Summary)
	assert.Equal(t, "Dear team...", result.CoverLetter)
	require.Len(t, result.OptimizedExperiences, 1)
	assert.Equal(t, []string{"Better bullet"}, result.OptimizedExperiences[0].Bullets)
}

func TestParseTailorResponse_SalvagesSurroundingProse(t *testing.T) {
	raw := "Here you go:\n{\"summary\": \"s\", \"cover_letter\": \"c\"}\nHope that helps!"

	result, err := ParseTailorResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, "s", result.Summary)
}

func TestParseTailorResponse_Malformed(t *testing.T) {
	_, err := ParseTailorResponse("not json at all")
	assert.ErrorIs(t, err, ErrMalformedResponse)

	_, err = ParseTailorResponse(`{"summary": "missing cover letter"}`)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestApplyOptimizedExperiences_MatchesByID(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	items := []types.ExperienceItem{
		{ID: first, Bullets: []string{"old 1"}},
		{ID: second, Bullets: []string{"old 2"}},
	}

	// Response order is reversed; ids still route the bullets correctly.
	got := ApplyOptimizedExperiences(items, []OptimizedItem{
		{ID: second.String(), Bullets: []string{"new 2a", "new 2b"}},
	})

	assert.Equal(t, []string{"old 1"}, got[0].Bullets)
	assert.Equal(t, []string{"new 2a", "new 2b"}, got[1].Bullets)
	// Input untouched
	assert.Equal(t, []string{"old 2"}, items[1].Bullets)
}

func TestApplyOptimizedExperiences_EmptyBulletsIgnored(t *testing.T) {
	id := uuid.New()
	items := []types.ExperienceItem{{ID: id, Bullets: []string{"keep me"}}}

	got := ApplyOptimizedExperiences(items, []OptimizedItem{{ID: id.String()}})

	assert.Equal(t, []string{"keep me"}, got[0].Bullets)
}

func TestApplyOptimizedProjects_JoinsBullets(t *testing.T) {
	id := uuid.New()
	items := []types.ProjectItem{{ID: id, Description: "old"}}

	got := ApplyOptimizedProjects(items, []OptimizedItem{
		{ID: id.String(), Bullets: []string{"First part.", "Second part."}},
	})

	assert.Equal(t, "First part. Second part.", got[0].Description)
}

func TestCleanJSONBlock(t *testing.T) {
	assert.Equal(t, `{"a":1}`, CleanJSONBlock("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, CleanJSONBlock("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, CleanJSONBlock(`{"a":1}`))
}

func TestExtractJSONObject(t *testing.T) {
	assert.Equal(t, `{"a":1}`, ExtractJSONObject(`noise {"a":1} more noise`))
	assert.Equal(t, "no braces", ExtractJSONObject("no braces"))
}
