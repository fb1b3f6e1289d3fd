package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/quietbooks/quietbooks/internal/core/domain"
	"github.com/quietbooks/quietbooks/internal/core/ports/repositories"
)

// AdjustmentRepository persists adjustment requests.
type AdjustmentRepository struct {
	BaseRepository
}

// NewAdjustmentRepository creates a new adjustment repository.
func NewAdjustmentRepository(base BaseRepository) *AdjustmentRepository {
	return &AdjustmentRepository{BaseRepository: base}
}

var _ repositories.AdjustmentRepositoryFacade = (*AdjustmentRepository)(nil)

const adjustmentColumns = `request_id, period_id, description, requested_on,
	requested_by, status, approved_by, approved_on, entry_id, notes`

func scanAdjustment(row interface{ Scan(...any) error }) (*domain.AdjustmentRequest, error) {
	var (
		a                                       domain.AdjustmentRequest
		requestedBy, approvedBy, entryID, notes sql.NullString
		approvedOn                              sql.NullTime
	)
	err := row.Scan(&a.RequestID, &a.PeriodID, &a.Description, &a.RequestedOn,
		&requestedBy, &a.Status, &approvedBy, &approvedOn, &entryID, &notes)
	if err != nil {
		return nil, err
	}
	a.RequestedBy = strOrEmpty(requestedBy)
	a.ApprovedBy = strOrEmpty(approvedBy)
	a.Notes = strOrEmpty(notes)
	if approvedOn.Valid {
		t := approvedOn.Time
		a.ApprovedOn = &t
	}
	if entryID.Valid {
		id := entryID.String
		a.EntryID = &id
	}
	return &a, nil
}

func (r *AdjustmentRepository) SaveAdjustmentRequest(ctx context.Context, req domain.AdjustmentRequest) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO adjustment_requests (`+adjustmentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, NULL, NULL, NULL, ?)`,
		req.RequestID, req.PeriodID, req.Description, req.RequestedOn,
		nullStr(req.RequestedBy), req.Status, nullStr(req.Notes))
	if err != nil {
		return fmt.Errorf("failed to save adjustment request: %w", err)
	}
	return nil
}

func (r *AdjustmentRepository) FindAdjustmentRequestByID(ctx context.Context, requestID string) (*domain.AdjustmentRequest, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+adjustmentColumns+` FROM adjustment_requests WHERE request_id = ?`, requestID)
	req, err := scanAdjustment(row)
	if err != nil {
		return nil, notFound(err, "adjustment request "+requestID)
	}
	return req, nil
}

func (r *AdjustmentRepository) ListAdjustmentRequests(ctx context.Context, periodID string) ([]domain.AdjustmentRequest, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+adjustmentColumns+` FROM adjustment_requests
		WHERE period_id = ? ORDER BY requested_on`, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustment requests: %w", err)
	}
	defer rows.Close()
	var reqs []domain.AdjustmentRequest
	for rows.Next() {
		req, err := scanAdjustment(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, *req)
	}
	return reqs, rows.Err()
}

func (r *AdjustmentRepository) UpdateAdjustmentStatus(ctx context.Context, requestID string, status domain.AdjustmentStatus, notes *string) error {
	query := `UPDATE adjustment_requests SET status = ?`
	args := []any{status}
	if notes != nil {
		query += `, notes = ?`
		args = append(args, *notes)
	}
	query += ` WHERE request_id = ?`
	args = append(args, requestID)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update adjustment status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound(sql.ErrNoRows, "adjustment request "+requestID)
	}
	return nil
}

func (r *AdjustmentRepository) LinkAdjustmentToEntry(ctx context.Context, requestID string, entryID string, approvedBy string, approvedOn time.Time, status domain.AdjustmentStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE adjustment_requests
		SET entry_id = ?, approved_by = ?, approved_on = ?, status = ?
		WHERE request_id = ?`,
		entryID, nullStr(approvedBy), approvedOn, status, requestID)
	if err != nil {
		return fmt.Errorf("failed to link adjustment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound(sql.ErrNoRows, "adjustment request "+requestID)
	}
	return nil
}
