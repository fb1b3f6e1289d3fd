package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/quietbooks/quietbooks/internal/apperrors"
	"github.com/quietbooks/quietbooks/internal/core/domain"
	"github.com/quietbooks/quietbooks/internal/core/ports/repositories"
)

// ReversingRepository persists the reversing queue.
type ReversingRepository struct {
	BaseRepository
}

// NewReversingRepository creates a new reversing queue repository.
func NewReversingRepository(base BaseRepository) *ReversingRepository {
	return &ReversingRepository{BaseRepository: base}
}

var _ repositories.ReversingRepositoryFacade = (*ReversingRepository)(nil)

func (r *ReversingRepository) ListQueue(ctx context.Context, status *domain.ReversingStatus, dueBy *time.Time) ([]domain.ReversingQueueItem, error) {
	query := `SELECT item_id, original_entry_id, reverse_on, created_on, status, reversed_entry_id
		FROM reversing_queue WHERE 1=1`
	var args []any
	if status != nil {
		query += ` AND status = ?`
		args = append(args, *status)
	}
	if dueBy != nil {
		query += ` AND date(reverse_on) <= date(?)`
		args = append(args, *dueBy)
	}
	query += ` ORDER BY reverse_on, created_on`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reversing queue: %w", err)
	}
	defer rows.Close()
	var items []domain.ReversingQueueItem
	for rows.Next() {
		var (
			item     domain.ReversingQueueItem
			reversed sql.NullString
		)
		if err := rows.Scan(&item.ItemID, &item.OriginalEntryID, &item.ReverseOn,
			&item.CreatedOn, &item.Status, &reversed); err != nil {
			return nil, err
		}
		if reversed.Valid {
			id := reversed.String
			item.ReversedEntryID = &id
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *ReversingRepository) Enqueue(ctx context.Context, item domain.ReversingQueueItem) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reversing_queue (item_id, original_entry_id, reverse_on, created_on, status)
		VALUES (?, ?, ?, ?, ?)`,
		item.ItemID, item.OriginalEntryID, item.ReverseOn, item.CreatedOn, domain.ReversalPending)
	if err != nil {
		return fmt.Errorf("failed to enqueue reversal: %w", err)
	}
	return nil
}

// MarkPosted is the exactly-once gate: the status predicate makes a second
// transition a no-op, surfaced as ErrConflict.
func (r *ReversingRepository) MarkPosted(ctx context.Context, itemID string, reversedEntryID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE reversing_queue SET status = ?, reversed_entry_id = ?
		WHERE item_id = ? AND status = ?`,
		domain.ReversalPosted, reversedEntryID, itemID, domain.ReversalPending)
	if err != nil {
		return fmt.Errorf("failed to mark reversal posted: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: queue item %s is not pending", apperrors.ErrConflict, itemID)
	}
	return nil
}
