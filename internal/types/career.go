// Package types defines the career data model shared across the pipeline.
package types

import (
	"time"

	"github.com/google/uuid"
)

// TonePreference values accepted for CareerProfile.PreferredTone
const (
	ToneNeutral   = "neutral"
	ToneFormal    = "formal"
	ToneFriendly  = "friendly"
	ToneConfident = "confident"
)

// ProficiencyLevel values accepted for SkillItem.Proficiency
const (
	ProficiencyBeginner     = "Beginner"
	ProficiencyIntermediate = "Intermediate"
	ProficiencyAdvanced     = "Advanced"
	ProficiencyExpert       = "Expert"
)

// CareerProfile holds the candidate's identity, contact details and writing
// preferences. Exactly one profile exists per user.
type CareerProfile struct {
	UserID       uuid.UUID `json:"user_id"`
	FullName     string    `json:"full_name" validate:"required"`
	City         string    `json:"city,omitempty"`
	State        string    `json:"state,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	LinkedInURL  string    `json:"linkedin_url,omitempty" validate:"omitempty,url"`
	GitHubURL    string    `json:"github_url,omitempty" validate:"omitempty,url"`
	PortfolioURL string    `json:"portfolio_url,omitempty" validate:"omitempty,url"`

	// BaseSummary is the fallback SUMMARY text when no tailored summary exists.
	BaseSummary   string `json:"professional_summary,omitempty"`
	PreferredTone string `json:"preferred_tone,omitempty" validate:"omitempty,oneof=neutral formal friendly confident"`
	WritingSample string `json:"writing_sample,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// ExperienceItem is a single work-history entry.
type ExperienceItem struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	JobTitle string    `json:"job_title" validate:"required"`
	Company  string    `json:"company_name" validate:"required"`
	Location string    `json:"location,omitempty"`

	// Dates use YYYY-MM-DD (or YYYY-MM) strings as stored. EndDate is ignored
	// while IsCurrent is set.
	StartDate string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	IsCurrent bool   `json:"is_current"`

	Bullets      []string `json:"description"`
	Technologies []string `json:"technologies,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// ProjectItem is a personal or professional project entry.
type ProjectItem struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"project_name" validate:"required"`
	Description  string    `json:"description,omitempty"`
	Impact       string    `json:"impact,omitempty"`
	Technologies []string  `json:"technologies,omitempty"`
	Links        []string  `json:"links,omitempty" validate:"omitempty,dive,url"`
	StartDate    string    `json:"start_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// SkillItem is a single named skill. Category is free text used as a grouping
// key when rendering; an empty category falls into the default bucket.
type SkillItem struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"skill_name" validate:"required"`
	Category    string    `json:"category,omitempty"`
	Proficiency string    `json:"proficiency,omitempty" validate:"omitempty,oneof=Beginner Intermediate Advanced Expert"`
	Years       *float64  `json:"years_of_experience,omitempty" validate:"omitempty,gte=0"`

	CreatedAt time.Time `json:"created_at"`
}

// EducationItem is a degree or program entry.
type EducationItem struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Degree         string    `json:"degree,omitempty"`
	Major          string    `json:"major,omitempty"`
	University     string    `json:"university" validate:"required"`
	Location       string    `json:"location,omitempty"`
	GraduationDate string    `json:"graduation_date,omitempty"`
	GPA            *string   `json:"gpa,omitempty"`
	Coursework     []string  `json:"relevant_coursework,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// CertificationItem is a certification or achievement entry.
type CertificationItem struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"certification_name" validate:"required"`
	Organization string    `json:"issuing_organization,omitempty"`
	IssueDate    string    `json:"issue_date,omitempty"`
	CredentialID *string   `json:"credential_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
