package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/harshtikone/resumeforge/internal/types"
)

const experienceColumns = `id, user_id, job_title, company_name, location,
	start_date, end_date, is_current, description, technologies, created_at`

func scanExperience(row pgx.Row) (*types.ExperienceItem, error) {
	var e types.ExperienceItem
	err := row.Scan(&e.ID, &e.UserID, &e.JobTitle, &e.Company, &e.Location,
		&e.StartDate, &e.EndDate, &e.IsCurrent, &e.Bullets, &e.Technologies, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ListExperiences retrieves all work-history entries for a user, most recent
// role first. Current roles sort ahead of ended ones with the same start date.
func (db *DB) ListExperiences(ctx context.Context, userID uuid.UUID) ([]types.ExperienceItem, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+experienceColumns+`
		 FROM experiences WHERE user_id = $1
		 ORDER BY start_date DESC, is_current DESC, created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	defer rows.Close()

	var items []types.ExperienceItem
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		items = append(items, *e)
	}
	return items, nil
}

// GetExperience retrieves a single entry scoped to its owner, or nil if absent
func (db *DB) GetExperience(ctx context.Context, userID, id uuid.UUID) (*types.ExperienceItem, error) {
	e, err := scanExperience(db.pool.QueryRow(ctx,
		`SELECT `+experienceColumns+`
		 FROM experiences WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get experience: %w", err)
	}
	return e, nil
}

// CreateExperience inserts a new work-history entry and returns it with its ID
func (db *DB) CreateExperience(ctx context.Context, e *types.ExperienceItem) (*types.ExperienceItem, error) {
	out, err := scanExperience(db.pool.QueryRow(ctx,
		`INSERT INTO experiences
		     (user_id, job_title, company_name, location, start_date, end_date,
		      is_current, description, technologies)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+experienceColumns,
		e.UserID, e.JobTitle, e.Company, e.Location, e.StartDate, e.EndDate,
		e.IsCurrent, emptyIfNil(e.Bullets), emptyIfNil(e.Technologies),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create experience: %w", err)
	}
	return out, nil
}

// UpdateExperience replaces an entry's fields. Returns nil if the entry does
// not exist or belongs to another user.
func (db *DB) UpdateExperience(ctx context.Context, e *types.ExperienceItem) (*types.ExperienceItem, error) {
	out, err := scanExperience(db.pool.QueryRow(ctx,
		`UPDATE experiences SET
		     job_title = $3,
		     company_name = $4,
		     location = $5,
		     start_date = $6,
		     end_date = $7,
		     is_current = $8,
		     description = $9,
		     technologies = $10
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+experienceColumns,
		e.ID, e.UserID, e.JobTitle, e.Company, e.Location, e.StartDate, e.EndDate,
		e.IsCurrent, emptyIfNil(e.Bullets), emptyIfNil(e.Technologies),
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update experience: %w", err)
	}
	return out, nil
}

// DeleteExperience removes an entry scoped to its owner. Returns false if
// nothing was deleted.
func (db *DB) DeleteExperience(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM experiences WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete experience: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
