package types

import (
	"time"

	"github.com/google/uuid"
)

// HistoryRecord is an append-only snapshot of a resume-generation event.
// It records what the resume was targeted at and which stored items were
// selected, never the rendered lines themselves.
type HistoryRecord struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	JobTitle       string    `json:"job_title,omitempty"`
	CompanyName    string    `json:"company_name,omitempty"`
	JobDescription string    `json:"job_description,omitempty"`

	SelectedExperienceIDs []uuid.UUID `json:"selected_experiences"`
	SelectedProjectIDs    []uuid.UUID `json:"selected_projects"`

	// SummaryUsed is the SUMMARY text that went into the render, whether
	// tailored or the profile's base summary.
	SummaryUsed string   `json:"customized_summary,omitempty"`
	MatchScore  *int     `json:"ats_score,omitempty"`
	Keywords    []string `json:"keyword_matches"`

	CreatedAt time.Time `json:"created_at"`
}

// ApproxMatchScore computes the stored match score from the keyword count.
// Returns nil when no keywords were extracted (no targeting possible).
func ApproxMatchScore(keywords []string) *int {
	if len(keywords) == 0 {
		return nil
	}
	score := len(keywords) * 3
	if score > 100 {
		score = 100
	}
	return &score
}
