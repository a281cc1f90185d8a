package llm

import (
	"strings"

	"github.com/harshtikone/resumeforge/internal/types"
)

// ApplyOptimizedExperiences returns a copy of items with bullets replaced by
// the optimized versions, matched by item id. Items without a matching
// optimization, or whose optimization has no bullets, are left unchanged.
func ApplyOptimizedExperiences(items []types.ExperienceItem, optimized []OptimizedItem) []types.ExperienceItem {
	byID := indexByID(optimized)
	out := make([]types.ExperienceItem, len(items))
	for i, item := range items {
		out[i] = item
		if opt, ok := byID[item.ID.String()]; ok && len(opt.Bullets) > 0 {
			out[i].Bullets = append([]string(nil), opt.Bullets...)
		}
	}
	return out
}

// ApplyOptimizedProjects returns a copy of items with descriptions rebuilt
// from the optimized bullets (space-joined, since projects store a single
// description string), matched by item id.
func ApplyOptimizedProjects(items []types.ProjectItem, optimized []OptimizedItem) []types.ProjectItem {
	byID := indexByID(optimized)
	out := make([]types.ProjectItem, len(items))
	for i, item := range items {
		out[i] = item
		if opt, ok := byID[item.ID.String()]; ok && len(opt.Bullets) > 0 {
			out[i].Description = strings.Join(opt.Bullets, " ")
		}
	}
	return out
}

func indexByID(optimized []OptimizedItem) map[string]OptimizedItem {
	byID := make(map[string]OptimizedItem, len(optimized))
	for _, opt := range optimized {
		if opt.ID != "" {
			byID[opt.ID] = opt
		}
	}
	return byID
}
