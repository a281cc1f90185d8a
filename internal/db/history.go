package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/harshtikone/resumeforge/internal/types"
)

const historyColumns = `id, user_id, job_title, company_name, job_description,
	selected_experiences, selected_projects, customized_summary, ats_score,
	keyword_matches, created_at`

func scanHistory(row pgx.Row) (*types.HistoryRecord, error) {
	var h types.HistoryRecord
	err := row.Scan(&h.ID, &h.UserID, &h.JobTitle, &h.CompanyName, &h.JobDescription,
		&h.SelectedExperienceIDs, &h.SelectedProjectIDs, &h.SummaryUsed,
		&h.MatchScore, &h.Keywords, &h.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// InsertHistory appends a generation snapshot and returns it with its ID.
// History is append-only; records are never updated.
func (db *DB) InsertHistory(ctx context.Context, h *types.HistoryRecord) (*types.HistoryRecord, error) {
	out, err := scanHistory(db.pool.QueryRow(ctx,
		`INSERT INTO generation_history
		     (user_id, job_title, company_name, job_description,
		      selected_experiences, selected_projects, customized_summary,
		      ats_score, keyword_matches)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+historyColumns,
		h.UserID, h.JobTitle, h.CompanyName, h.JobDescription,
		emptyUUIDsIfNil(h.SelectedExperienceIDs), emptyUUIDsIfNil(h.SelectedProjectIDs),
		h.SummaryUsed, h.MatchScore, emptyIfNil(h.Keywords),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to insert history: %w", err)
	}
	return out, nil
}

// ListHistory retrieves generation snapshots for a user, newest first. A limit
// of zero or less returns the most recent 50.
func (db *DB) ListHistory(ctx context.Context, userID uuid.UUID, limit int) ([]types.HistoryRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT `+historyColumns+`
		 FROM generation_history WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var records []types.HistoryRecord
	for rows.Next() {
		h, err := scanHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history: %w", err)
		}
		records = append(records, *h)
	}
	return records, nil
}

// GetHistory retrieves a single snapshot scoped to its owner, or nil if absent
func (db *DB) GetHistory(ctx context.Context, userID, id uuid.UUID) (*types.HistoryRecord, error) {
	h, err := scanHistory(db.pool.QueryRow(ctx,
		`SELECT `+historyColumns+`
		 FROM generation_history WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	return h, nil
}

// DeleteHistory removes a snapshot scoped to its owner. Returns false if
// nothing was deleted.
func (db *DB) DeleteHistory(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM generation_history WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete history: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

func emptyUUIDsIfNil(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
