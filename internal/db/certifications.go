package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/harshtikone/resumeforge/internal/types"
)

const certificationColumns = `id, user_id, certification_name, issuing_organization,
	issue_date, credential_id, created_at`

func scanCertification(row pgx.Row) (*types.CertificationItem, error) {
	var c types.CertificationItem
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Organization,
		&c.IssueDate, &c.CredentialID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCertifications retrieves all certification entries for a user, most
// recently issued first.
func (db *DB) ListCertifications(ctx context.Context, userID uuid.UUID) ([]types.CertificationItem, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+certificationColumns+`
		 FROM certifications WHERE user_id = $1
		 ORDER BY issue_date DESC, created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list certifications: %w", err)
	}
	defer rows.Close()

	var items []types.CertificationItem
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan certification: %w", err)
		}
		items = append(items, *c)
	}
	return items, nil
}

// GetCertification retrieves a single entry scoped to its owner, or nil if absent
func (db *DB) GetCertification(ctx context.Context, userID, id uuid.UUID) (*types.CertificationItem, error) {
	c, err := scanCertification(db.pool.QueryRow(ctx,
		`SELECT `+certificationColumns+`
		 FROM certifications WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get certification: %w", err)
	}
	return c, nil
}

// CreateCertification inserts a new certification entry and returns it with its ID
func (db *DB) CreateCertification(ctx context.Context, c *types.CertificationItem) (*types.CertificationItem, error) {
	out, err := scanCertification(db.pool.QueryRow(ctx,
		`INSERT INTO certifications
		     (user_id, certification_name, issuing_organization, issue_date, credential_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+certificationColumns,
		c.UserID, c.Name, c.Organization, c.IssueDate, c.CredentialID,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create certification: %w", err)
	}
	return out, nil
}

// UpdateCertification replaces an entry's fields. Returns nil if the entry
// does not exist or belongs to another user.
func (db *DB) UpdateCertification(ctx context.Context, c *types.CertificationItem) (*types.CertificationItem, error) {
	out, err := scanCertification(db.pool.QueryRow(ctx,
		`UPDATE certifications SET
		     certification_name = $3,
		     issuing_organization = $4,
		     issue_date = $5,
		     credential_id = $6
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+certificationColumns,
		c.ID, c.UserID, c.Name, c.Organization, c.IssueDate, c.CredentialID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update certification: %w", err)
	}
	return out, nil
}

// DeleteCertification removes an entry scoped to its owner. Returns false if
// nothing was deleted.
func (db *DB) DeleteCertification(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM certifications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete certification: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
