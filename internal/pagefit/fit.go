// Package pagefit iteratively trims selected content until the rendered
// resume fits the page budget.
package pagefit

import (
	"strings"

	"github.com/harshtikone/resumeforge/internal/rendering"
	"github.com/harshtikone/resumeforge/internal/types"
)

const (
	// DefaultMaxLines is the rendered line ceiling before trimming engages.
	DefaultMaxLines = 70
	// DefaultMaxIterations bounds the trim loop so pathological input
	// (all single-bullet experiences, all short descriptions) terminates.
	DefaultMaxIterations = 200
	// minShortenLength is the exclusive project-description length below
	// which sentence shortening is never attempted.
	minShortenLength = 120
)

// Options configures the reducer. Zero values fall back to the defaults.
type Options struct {
	MaxLines      int
	MaxIterations int
}

// Result holds the trimmed copies of the mutable item lists. The input lists
// are never modified.
type Result struct {
	Experiences []types.ExperienceItem
	Projects    []types.ProjectItem

	// Lines is the rendered line count of the fitted content. It may still
	// exceed MaxLines when every allowed mutation was exhausted; that is
	// best-effort output, not an error.
	Lines int
}

// Fit shrinks the experience bullet lists and project descriptions until the
// rendered resume is within the line budget or nothing more can be removed.
// Each round removes the last bullet of the experience with the most bullets
// (only while it has more than one; ties go to the earliest index), then
// falls back to cutting the longest over-length project description to its
// first sentence. Rendering is re-run after every mutation as the oracle.
func Fit(in rendering.Input, opts Options) Result {
	if opts.MaxLines <= 0 {
		opts.MaxLines = DefaultMaxLines
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}

	// Work on deep copies so callers keep their full content.
	fitted := in
	fitted.Experiences = copyExperiences(in.Experiences)
	fitted.Projects = copyProjects(in.Projects)

	lineCount := len(rendering.ResumeLines(fitted))
	for i := 0; lineCount > opts.MaxLines && i < opts.MaxIterations; i++ {
		if !trimOnce(fitted.Experiences, fitted.Projects) {
			break
		}
		lineCount = len(rendering.ResumeLines(fitted))
	}

	return Result{
		Experiences: fitted.Experiences,
		Projects:    fitted.Projects,
		Lines:       lineCount,
	}
}

// trimOnce applies a single mutation in place and reports whether one was
// possible.
func trimOnce(experiences []types.ExperienceItem, projects []types.ProjectItem) bool {
	// First priority: drop the last bullet of the experience that currently
	// has the most bullets, keeping at least one per item.
	maxBullets := 0
	expIdx := -1
	for i, exp := range experiences {
		if n := len(exp.Bullets); n > maxBullets && n > 1 {
			maxBullets = n
			expIdx = i
		}
	}
	if expIdx >= 0 {
		bullets := experiences[expIdx].Bullets
		experiences[expIdx].Bullets = bullets[:len(bullets)-1]
		return true
	}

	// Fallback: shorten the longest project description that is both over
	// the length threshold and splittable into sentences.
	longest := 0
	projIdx := -1
	for i, p := range projects {
		if n := len(p.Description); n > longest && n > minShortenLength {
			longest = n
			projIdx = i
		}
	}
	if projIdx >= 0 {
		sentences := strings.Split(projects[projIdx].Description, ". ")
		if len(sentences) > 1 {
			projects[projIdx].Description = sentences[0] + "."
			return true
		}
	}

	return false
}

func copyExperiences(items []types.ExperienceItem) []types.ExperienceItem {
	out := make([]types.ExperienceItem, len(items))
	for i, item := range items {
		out[i] = item
		out[i].Bullets = append([]string(nil), item.Bullets...)
	}
	return out
}

func copyProjects(items []types.ProjectItem) []types.ProjectItem {
	return append([]types.ProjectItem(nil), items...)
}
