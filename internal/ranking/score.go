// Package ranking scores stored career items against a keyword set.
package ranking

import (
	"strings"

	"github.com/harshtikone/resumeforge/internal/types"
)

// Score counts how many keywords appear in the text blob. Matching is
// case-insensitive substring containment, so partial-word hits count (the
// keyword "data" matches "database"). Each keyword contributes at most 1
// regardless of how often it occurs.
func Score(text string, kws []string) int {
	lower := strings.ToLower(text)
	score := 0
	for _, kw := range kws {
		if strings.Contains(lower, kw) {
			score++
		}
	}
	return score
}

// ExperienceText builds the relevance blob for an experience item: title,
// company, location, every bullet and every technology tag, space-joined with
// empty fields skipped.
func ExperienceText(exp types.ExperienceItem) string {
	parts := make([]string, 0, 3+len(exp.Bullets)+len(exp.Technologies))
	parts = appendNonEmpty(parts, exp.JobTitle, exp.Company, exp.Location)
	parts = appendNonEmpty(parts, exp.Bullets...)
	parts = appendNonEmpty(parts, exp.Technologies...)
	return strings.Join(parts, " ")
}

// ProjectText builds the relevance blob for a project item.
func ProjectText(proj types.ProjectItem) string {
	parts := make([]string, 0, 3+len(proj.Technologies))
	parts = appendNonEmpty(parts, proj.Name, proj.Description, proj.Impact)
	parts = appendNonEmpty(parts, proj.Technologies...)
	return strings.Join(parts, " ")
}

// CertificationText builds the relevance blob for a certification item.
func CertificationText(cert types.CertificationItem) string {
	parts := appendNonEmpty(nil, cert.Name, cert.Organization)
	if cert.CredentialID != nil {
		parts = appendNonEmpty(parts, *cert.CredentialID)
	}
	return strings.Join(parts, " ")
}

func appendNonEmpty(dst []string, values ...string) []string {
	for _, v := range values {
		if v != "" {
			dst = append(dst, v)
		}
	}
	return dst
}
