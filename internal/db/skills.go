package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/harshtikone/resumeforge/internal/types"
)

const skillColumns = `id, user_id, skill_name, category, proficiency,
	years_of_experience, created_at`

func scanSkill(row pgx.Row) (*types.SkillItem, error) {
	var s types.SkillItem
	err := row.Scan(&s.ID, &s.UserID, &s.Name, &s.Category, &s.Proficiency,
		&s.Years, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSkills retrieves all skills for a user in insertion order, which keeps
// category grouping stable across renders.
func (db *DB) ListSkills(ctx context.Context, userID uuid.UUID) ([]types.SkillItem, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+skillColumns+`
		 FROM skills WHERE user_id = $1
		 ORDER BY created_at ASC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var items []types.SkillItem
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		items = append(items, *s)
	}
	return items, nil
}

// GetSkill retrieves a single skill scoped to its owner, or nil if absent
func (db *DB) GetSkill(ctx context.Context, userID, id uuid.UUID) (*types.SkillItem, error) {
	s, err := scanSkill(db.pool.QueryRow(ctx,
		`SELECT `+skillColumns+`
		 FROM skills WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	return s, nil
}

// CreateSkill inserts a new skill and returns it with its ID
func (db *DB) CreateSkill(ctx context.Context, s *types.SkillItem) (*types.SkillItem, error) {
	out, err := scanSkill(db.pool.QueryRow(ctx,
		`INSERT INTO skills
		     (user_id, skill_name, category, proficiency, years_of_experience)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+skillColumns,
		s.UserID, s.Name, s.Category, s.Proficiency, s.Years,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return out, nil
}

// UpdateSkill replaces a skill's fields. Returns nil if the skill does not
// exist or belongs to another user.
func (db *DB) UpdateSkill(ctx context.Context, s *types.SkillItem) (*types.SkillItem, error) {
	out, err := scanSkill(db.pool.QueryRow(ctx,
		`UPDATE skills SET
		     skill_name = $3,
		     category = $4,
		     proficiency = $5,
		     years_of_experience = $6
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+skillColumns,
		s.ID, s.UserID, s.Name, s.Category, s.Proficiency, s.Years,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}
	return out, nil
}

// DeleteSkill removes a skill scoped to its owner. Returns false if nothing
// was deleted.
func (db *DB) DeleteSkill(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM skills WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete skill: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
