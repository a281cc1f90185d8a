package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/harshtikone/resumeforge/internal/types"
)

const educationColumns = `id, user_id, degree, major, university, location,
	graduation_date, gpa, relevant_coursework, created_at`

func scanEducation(row pgx.Row) (*types.EducationItem, error) {
	var e types.EducationItem
	err := row.Scan(&e.ID, &e.UserID, &e.Degree, &e.Major, &e.University,
		&e.Location, &e.GraduationDate, &e.GPA, &e.Coursework, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ListEducation retrieves all education entries for a user, most recent
// graduation first.
func (db *DB) ListEducation(ctx context.Context, userID uuid.UUID) ([]types.EducationItem, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+educationColumns+`
		 FROM education WHERE user_id = $1
		 ORDER BY graduation_date DESC, created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list education: %w", err)
	}
	defer rows.Close()

	var items []types.EducationItem
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan education: %w", err)
		}
		items = append(items, *e)
	}
	return items, nil
}

// GetEducation retrieves a single entry scoped to its owner, or nil if absent
func (db *DB) GetEducation(ctx context.Context, userID, id uuid.UUID) (*types.EducationItem, error) {
	e, err := scanEducation(db.pool.QueryRow(ctx,
		`SELECT `+educationColumns+`
		 FROM education WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get education: %w", err)
	}
	return e, nil
}

// CreateEducation inserts a new education entry and returns it with its ID
func (db *DB) CreateEducation(ctx context.Context, e *types.EducationItem) (*types.EducationItem, error) {
	out, err := scanEducation(db.pool.QueryRow(ctx,
		`INSERT INTO education
		     (user_id, degree, major, university, location, graduation_date, gpa, relevant_coursework)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+educationColumns,
		e.UserID, e.Degree, e.Major, e.University, e.Location,
		e.GraduationDate, e.GPA, emptyIfNil(e.Coursework),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create education: %w", err)
	}
	return out, nil
}

// UpdateEducation replaces an entry's fields. Returns nil if the entry does
// not exist or belongs to another user.
func (db *DB) UpdateEducation(ctx context.Context, e *types.EducationItem) (*types.EducationItem, error) {
	out, err := scanEducation(db.pool.QueryRow(ctx,
		`UPDATE education SET
		     degree = $3,
		     major = $4,
		     university = $5,
		     location = $6,
		     graduation_date = $7,
		     gpa = $8,
		     relevant_coursework = $9
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+educationColumns,
		e.ID, e.UserID, e.Degree, e.Major, e.University, e.Location,
		e.GraduationDate, e.GPA, emptyIfNil(e.Coursework),
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update education: %w", err)
	}
	return out, nil
}

// DeleteEducation removes an entry scoped to its owner. Returns false if
// nothing was deleted.
func (db *DB) DeleteEducation(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM education WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete education: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
