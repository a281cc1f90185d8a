// Package selection ranks career items by relevance and truncates each
// category to its cap.
package selection

import (
	"sort"

	"github.com/harshtikone/resumeforge/internal/ranking"
	"github.com/harshtikone/resumeforge/internal/types"
)

// Default per-category selection caps.
const (
	DefaultMaxExperiences   = 3
	DefaultMaxProjects      = 2
	DefaultMaxCertification = 3
)

// Caps configures how many items of each category a generated resume keeps.
// Skills and education are never filtered by relevance.
type Caps struct {
	Experiences    int
	Projects       int
	Certifications int
}

// DefaultCaps returns the documented default caps (3/2/3).
func DefaultCaps() Caps {
	return Caps{
		Experiences:    DefaultMaxExperiences,
		Projects:       DefaultMaxProjects,
		Certifications: DefaultMaxCertification,
	}
}

// Scored pairs an item with its transient relevance score. Scores are
// computed fresh per pass and never persisted.
type Scored[T any] struct {
	Item  T
	Score int
}

// TopByRelevance scores items against the keyword set, stable-sorts them by
// descending score and returns at most limit items. An empty keyword set
// disables selection entirely: the input is returned unchanged, in order and
// untruncated. Ties keep the pre-sort relative order, so reverse-chronological
// input stays reverse-chronological among equals.
func TopByRelevance[T any](items []T, kws []string, limit int, text func(T) string) []T {
	if len(kws) == 0 {
		return items
	}

	scored := make([]Scored[T], len(items))
	for i, item := range items {
		scored[i] = Scored[T]{Item: item, Score: ranking.Score(text(item), kws)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if limit > len(scored) {
		limit = len(scored)
	}
	out := make([]T, limit)
	for i := range out {
		out[i] = scored[i].Item
	}
	return out
}

// Experiences returns the top experiences for the keyword set.
func Experiences(items []types.ExperienceItem, kws []string, caps Caps) []types.ExperienceItem {
	return TopByRelevance(items, kws, caps.Experiences, ranking.ExperienceText)
}

// Projects returns the top projects for the keyword set.
func Projects(items []types.ProjectItem, kws []string, caps Caps) []types.ProjectItem {
	return TopByRelevance(items, kws, caps.Projects, ranking.ProjectText)
}

// Certifications returns the top certifications for the keyword set.
func Certifications(items []types.CertificationItem, kws []string, caps Caps) []types.CertificationItem {
	return TopByRelevance(items, kws, caps.Certifications, ranking.CertificationText)
}
