package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/harshtikone/resumeforge/internal/types"
)

const projectColumns = `id, user_id, project_name, description, impact,
	technologies, links, start_date, created_at`

func scanProject(row pgx.Row) (*types.ProjectItem, error) {
	var p types.ProjectItem
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.Impact,
		&p.Technologies, &p.Links, &p.StartDate, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProjects retrieves all project entries for a user, most recent first
func (db *DB) ListProjects(ctx context.Context, userID uuid.UUID) ([]types.ProjectItem, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+projectColumns+`
		 FROM projects WHERE user_id = $1
		 ORDER BY start_date DESC, created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var items []types.ProjectItem
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		items = append(items, *p)
	}
	return items, nil
}

// GetProject retrieves a single project scoped to its owner, or nil if absent
func (db *DB) GetProject(ctx context.Context, userID, id uuid.UUID) (*types.ProjectItem, error) {
	p, err := scanProject(db.pool.QueryRow(ctx,
		`SELECT `+projectColumns+`
		 FROM projects WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// CreateProject inserts a new project entry and returns it with its ID
func (db *DB) CreateProject(ctx context.Context, p *types.ProjectItem) (*types.ProjectItem, error) {
	out, err := scanProject(db.pool.QueryRow(ctx,
		`INSERT INTO projects
		     (user_id, project_name, description, impact, technologies, links, start_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+projectColumns,
		p.UserID, p.Name, p.Description, p.Impact,
		emptyIfNil(p.Technologies), emptyIfNil(p.Links), p.StartDate,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return out, nil
}

// UpdateProject replaces a project's fields. Returns nil if the project does
// not exist or belongs to another user.
func (db *DB) UpdateProject(ctx context.Context, p *types.ProjectItem) (*types.ProjectItem, error) {
	out, err := scanProject(db.pool.QueryRow(ctx,
		`UPDATE projects SET
		     project_name = $3,
		     description = $4,
		     impact = $5,
		     technologies = $6,
		     links = $7,
		     start_date = $8
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+projectColumns,
		p.ID, p.UserID, p.Name, p.Description, p.Impact,
		emptyIfNil(p.Technologies), emptyIfNil(p.Links), p.StartDate,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return out, nil
}

// DeleteProject removes a project scoped to its owner. Returns false if
// nothing was deleted.
func (db *DB) DeleteProject(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM projects WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete project: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
