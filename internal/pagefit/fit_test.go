package pagefit

import (
	"strings"
	"testing"

	"github.com/harshtikone/resumeforge/internal/rendering"
	"github.com/harshtikone/resumeforge/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profile() *types.CareerProfile {
	return &types.CareerProfile{FullName: "Jane Doe", City: "Buffalo", State: "NY"}
}

func experienceWithBullets(title string, n int) types.ExperienceItem {
	bullets := make([]string, n)
	for i := range bullets {
		bullets[i] = "Did a thing"
	}
	return types.ExperienceItem{JobTitle: title, Company: "Acme", Location: "Remote",
		StartDate: "2020-01-01", Bullets: bullets}
}

func TestFit_UnderBudgetUnchanged(t *testing.T) {
	in := rendering.Input{
		Profile:     profile(),
		Experiences: []types.ExperienceItem{experienceWithBullets("Engineer", 3)},
	}

	got := Fit(in, Options{})

	assert.Equal(t, in.Experiences, got.Experiences)
	assert.LessOrEqual(t, got.Lines, DefaultMaxLines)
}

func TestFit_TrimsLargestBulletListFirst(t *testing.T) {
	// Experience scenario: bullet counts [1,2,3,4,5]; trimming must start at
	// the 5-bullet item, then the 4-bullet item, never touching the 1-bullet
	// item.
	in := rendering.Input{
		Profile: profile(),
		Experiences: []types.ExperienceItem{
			experienceWithBullets("E1", 1),
			experienceWithBullets("E2", 2),
			experienceWithBullets("E3", 3),
			experienceWithBullets("E4", 4),
			experienceWithBullets("E5", 5),
		},
	}

	full := len(rendering.ResumeLines(in))
	got := Fit(in, Options{MaxLines: full - 2})

	require.Len(t, got.Experiences, 5)
	// First removal hits the 5-bullet item; the resulting 4-4 tie goes to
	// the earlier index, so E4 loses the second bullet.
	assert.Len(t, got.Experiences[0].Bullets, 1)
	assert.Len(t, got.Experiences[3].Bullets, 3)
	assert.Len(t, got.Experiences[4].Bullets, 4)
	assert.Equal(t, full-2, got.Lines)
}

func TestFit_TrimOrderAcrossItems(t *testing.T) {
	in := rendering.Input{
		Profile: profile(),
		Experiences: []types.ExperienceItem{
			experienceWithBullets("E1", 1),
			experienceWithBullets("E4", 4),
			experienceWithBullets("E5", 5),
		},
	}

	full := len(rendering.ResumeLines(in))
	// Force exactly three single-line removals.
	got := Fit(in, Options{MaxLines: full - 3})

	// 5→4 first, then the tie at 4 goes to the earliest index (E4 4→3),
	// then E5 again — E1 keeps its lone bullet throughout.
	assert.Len(t, got.Experiences[0].Bullets, 1)
	assert.Len(t, got.Experiences[1].Bullets, 3)
	assert.Len(t, got.Experiences[2].Bullets, 3)
	assert.Equal(t, full-3, got.Lines)
}

func TestFit_NeverRemovesLastBullet(t *testing.T) {
	in := rendering.Input{
		Profile: profile(),
		Experiences: []types.ExperienceItem{
			experienceWithBullets("E1", 1),
			experienceWithBullets("E2", 1),
		},
	}

	got := Fit(in, Options{MaxLines: 1})

	for _, exp := range got.Experiences {
		assert.NotEmpty(t, exp.Bullets)
	}
}

func TestFit_ShortensLongProjectDescription(t *testing.T) {
	long := strings.Repeat("x", 100) + ". " + strings.Repeat("y", 100)
	in := rendering.Input{
		Profile:     profile(),
		Experiences: []types.ExperienceItem{experienceWithBullets("E1", 1)},
		Projects: []types.ProjectItem{
			{Name: "Big", Description: long},
		},
	}

	got := Fit(in, Options{MaxLines: 1})

	require.Len(t, got.Projects, 1)
	assert.Equal(t, strings.Repeat("x", 100)+".", got.Projects[0].Description)
}

func TestFit_UnsplittableDescriptionLeftAlone(t *testing.T) {
	// 200 chars, over threshold, but no ". " separator: no mutation is
	// possible and the reducer stops rather than spinning.
	long := strings.Repeat("z", 200)
	in := rendering.Input{
		Profile:  profile(),
		Projects: []types.ProjectItem{{Name: "Solid", Description: long}},
	}

	got := Fit(in, Options{MaxLines: 1})

	assert.Equal(t, long, got.Projects[0].Description)
}

func TestFit_ShortDescriptionNeverShortened(t *testing.T) {
	desc := "Short one. With two sentences." // under the 120-char threshold
	in := rendering.Input{
		Profile:  profile(),
		Projects: []types.ProjectItem{{Name: "Small", Description: desc}},
	}

	got := Fit(in, Options{MaxLines: 1})

	assert.Equal(t, desc, got.Projects[0].Description)
}

func TestFit_TerminatesOnPathologicalInput(t *testing.T) {
	// Every experience has exactly one bullet and every description is
	// short: zero mutations are possible, the loop must exit immediately.
	experiences := make([]types.ExperienceItem, 40)
	for i := range experiences {
		experiences[i] = experienceWithBullets("E", 1)
	}
	in := rendering.Input{
		Profile:     profile(),
		Experiences: experiences,
		Projects:    []types.ProjectItem{{Name: "P", Description: "tiny"}},
	}

	got := Fit(in, Options{MaxLines: 5, MaxIterations: DefaultMaxIterations})

	assert.Greater(t, got.Lines, 5) // over budget is accepted output
	for _, exp := range got.Experiences {
		assert.Len(t, exp.Bullets, 1)
	}
}

func TestFit_DoesNotMutateInput(t *testing.T) {
	in := rendering.Input{
		Profile: profile(),
		Experiences: []types.ExperienceItem{
			experienceWithBullets("E5", 5),
		},
	}

	full := len(rendering.ResumeLines(in))
	_ = Fit(in, Options{MaxLines: full - 2})

	assert.Len(t, in.Experiences[0].Bullets, 5)
}
