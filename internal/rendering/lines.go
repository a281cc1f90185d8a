// Package rendering converts a profile plus selected career items into the
// flat, ordered line sequence of the single-page resume template.
package rendering

import (
	"fmt"
	"strings"

	"github.com/harshtikone/resumeforge/internal/types"
)

// Section header lines emitted by the template.
const (
	HeaderSummary        = "SUMMARY"
	HeaderSkills         = "SKILLS"
	HeaderEducation      = "EDUCATION"
	HeaderExperience     = "EXPERIENCE"
	HeaderProjects       = "PROJECTS"
	HeaderCertifications = "CERTIFICATIONS & ACHIEVEMENTS"
)

// DefaultSkillCategory is the grouping bucket for skills with no category.
const DefaultSkillCategory = "Skills"

// Input carries everything the renderer needs. JobTitle and CompanyName give
// job context only; the template deliberately has no explicit target-role
// line, targeting is implicit in which items were selected.
type Input struct {
	Profile        *types.CareerProfile
	Experiences    []types.ExperienceItem
	Projects       []types.ProjectItem
	Education      []types.EducationItem
	Skills         []types.SkillItem
	Certifications []types.CertificationItem

	// SummaryOverride replaces the profile's base summary when non-empty
	// (typically tailored text from the generative collaborator).
	SummaryOverride string
	JobTitle        string
	CompanyName     string
}

// ResumeLines renders the resume as an ordered sequence of display lines.
// It is a pure function of its input: identical inputs always produce an
// identical sequence. Blocks whose backing list is empty are omitted
// entirely, header included.
func ResumeLines(in Input) []string {
	if in.Profile == nil {
		return nil
	}

	var lines []string

	// Header: name plus pipe-joined contact line, absent fields skipped.
	lines = append(lines, in.Profile.FullName)
	lines = append(lines, contactLine(in.Profile))
	lines = append(lines, "")

	// Summary: the tailored override wins, else the stored base summary,
	// else the block is omitted.
	summary := in.SummaryOverride
	if summary == "" {
		summary = in.Profile.BaseSummary
	}
	if summary != "" {
		lines = append(lines, HeaderSummary, summary, "")
	}

	lines = appendSkills(lines, in.Skills)
	lines = appendEducation(lines, in.Education)
	lines = appendExperience(lines, in.Experiences)
	lines = appendProjects(lines, in.Projects)
	lines = appendCertifications(lines, in.Certifications)

	return lines
}

// contactLine joins the present contact fields with " | " in fixed order:
// city/state, phone, linkedin, github, portfolio.
func contactLine(p *types.CareerProfile) string {
	var parts []string
	if p.City != "" || p.State != "" {
		cityState := p.City
		if p.State != "" {
			cityState += ", " + p.State
		}
		parts = append(parts, cityState)
	}
	for _, v := range []string{p.Phone, p.LinkedInURL, p.GitHubURL, p.PortfolioURL} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " | ")
}

func appendSkills(lines []string, skills []types.SkillItem) []string {
	if len(skills) == 0 {
		return lines
	}
	lines = append(lines, HeaderSkills)

	// Group by category, preserving category discovery order.
	byCategory := make(map[string][]string)
	var categories []string
	for _, s := range skills {
		if s.Name == "" {
			continue
		}
		cat := s.Category
		if cat == "" {
			cat = DefaultSkillCategory
		}
		if _, seen := byCategory[cat]; !seen {
			categories = append(categories, cat)
		}
		byCategory[cat] = append(byCategory[cat], s.Name)
	}

	for _, cat := range categories {
		unique := dedupe(byCategory[cat])
		if len(unique) > 0 {
			lines = append(lines, fmt.Sprintf("%s: %s", cat, strings.Join(unique, ", ")))
		}
	}

	return append(lines, "")
}

func appendEducation(lines []string, education []types.EducationItem) []string {
	if len(education) == 0 {
		return lines
	}
	lines = append(lines, HeaderEducation)
	for _, e := range education {
		degreeLine := joinNonEmpty(", ", e.Degree, e.Major)
		uniLine := joinNonEmpty(" – ", e.University, e.Location)

		if degreeLine != "" {
			lines = append(lines, degreeLine)
		} else if e.University != "" {
			lines = append(lines, e.University)
		}
		if uniLine != "" {
			lines = append(lines, uniLine)
		}

		var extras []string
		if e.GraduationDate != "" {
			extras = append(extras, "Graduation: "+FormatDateShort(e.GraduationDate))
		}
		if e.GPA != nil && *e.GPA != "" {
			extras = append(extras, "GPA: "+*e.GPA)
		}
		if len(extras) > 0 {
			lines = append(lines, strings.Join(extras, " | "))
		}

		if len(e.Coursework) > 0 {
			lines = append(lines, "Relevant coursework: "+strings.Join(e.Coursework, ", "))
		}

		lines = append(lines, "")
	}
	return lines
}

func appendExperience(lines []string, experiences []types.ExperienceItem) []string {
	if len(experiences) == 0 {
		return lines
	}
	lines = append(lines, HeaderExperience)
	for _, exp := range experiences {
		// The header is the one spot where a missing required field gets a
		// visible placeholder instead of silent omission, so the line shape
		// never breaks.
		location := exp.Location
		if location == "" {
			location = "Location"
		}
		lines = append(lines, fmt.Sprintf("%s · %s (%s)", exp.JobTitle, exp.Company, location))

		start := FormatDateShort(exp.StartDate)
		if start == "" {
			start = "Start"
		}
		end := "End"
		if exp.IsCurrent {
			end = "Present"
		} else if exp.EndDate != nil {
			if formatted := FormatDateShort(*exp.EndDate); formatted != "" {
				end = formatted
			}
		}
		lines = append(lines, fmt.Sprintf("%s – %s", start, end))

		for _, bullet := range exp.Bullets {
			lines = append(lines, "- "+bullet)
		}
		lines = append(lines, "")
	}
	return lines
}

func appendProjects(lines []string, projects []types.ProjectItem) []string {
	if len(projects) == 0 {
		return lines
	}
	lines = append(lines, HeaderProjects)
	for _, p := range projects {
		lines = append(lines, p.Name)
		if p.Description != "" {
			lines = append(lines, "- "+p.Description)
		}
		if p.Impact != "" {
			lines = append(lines, "- Impact: "+p.Impact)
		}
		if len(p.Technologies) > 0 {
			lines = append(lines, "- Tech: "+strings.Join(p.Technologies, ", "))
		}
		lines = append(lines, "")
	}
	return lines
}

func appendCertifications(lines []string, certs []types.CertificationItem) []string {
	if len(certs) == 0 {
		return lines
	}
	lines = append(lines, HeaderCertifications)
	for _, c := range certs {
		if c.Name != "" {
			lines = append(lines, "- "+c.Name)
		}
		orgLine := joinNonEmpty(" | ", c.Organization, FormatDateShort(c.IssueDate))
		if orgLine != "" {
			lines = append(lines, "  "+orgLine)
		}
	}
	return append(lines, "")
}

// joinNonEmpty joins the non-empty values with sep.
func joinNonEmpty(sep string, values ...string) string {
	var parts []string
	for _, v := range values {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}

// dedupe removes duplicates while preserving first-occurrence order.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
