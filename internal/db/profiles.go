package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/harshtikone/resumeforge/internal/types"
)

// UpsertProfile creates or replaces the career profile for a user. There is at
// most one profile per user, keyed by user_id.
func (db *DB) UpsertProfile(ctx context.Context, p *types.CareerProfile) (*types.CareerProfile, error) {
	var out types.CareerProfile
	err := db.pool.QueryRow(ctx,
		`INSERT INTO career_profiles
		     (user_id, full_name, city, state, phone, linkedin_url, github_url,
		      portfolio_url, professional_summary, preferred_tone, writing_sample)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (user_id) DO UPDATE SET
		     full_name = $2,
		     city = $3,
		     state = $4,
		     phone = $5,
		     linkedin_url = $6,
		     github_url = $7,
		     portfolio_url = $8,
		     professional_summary = $9,
		     preferred_tone = $10,
		     writing_sample = $11,
		     updated_at = NOW()
		 RETURNING user_id, full_name, city, state, phone, linkedin_url, github_url,
		           portfolio_url, professional_summary, preferred_tone, writing_sample, updated_at`,
		p.UserID, p.FullName, p.City, p.State, p.Phone, p.LinkedInURL, p.GitHubURL,
		p.PortfolioURL, p.BaseSummary, p.PreferredTone, p.WritingSample,
	).Scan(&out.UserID, &out.FullName, &out.City, &out.State, &out.Phone,
		&out.LinkedInURL, &out.GitHubURL, &out.PortfolioURL, &out.BaseSummary,
		&out.PreferredTone, &out.WritingSample, &out.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}
	return &out, nil
}

// GetProfile retrieves the career profile for a user, or nil if none exists
func (db *DB) GetProfile(ctx context.Context, userID uuid.UUID) (*types.CareerProfile, error) {
	var p types.CareerProfile
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, full_name, city, state, phone, linkedin_url, github_url,
		        portfolio_url, professional_summary, preferred_tone, writing_sample, updated_at
		 FROM career_profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &p.FullName, &p.City, &p.State, &p.Phone,
		&p.LinkedInURL, &p.GitHubURL, &p.PortfolioURL, &p.BaseSummary,
		&p.PreferredTone, &p.WritingSample, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}
