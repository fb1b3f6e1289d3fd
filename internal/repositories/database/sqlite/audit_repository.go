package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/quietbooks/quietbooks/internal/core/domain"
	"github.com/quietbooks/quietbooks/internal/core/ports/repositories"
)

// AuditRepository persists the append-only audit log.
type AuditRepository struct {
	BaseRepository
}

// NewAuditRepository creates a new audit repository.
func NewAuditRepository(base BaseRepository) *AuditRepository {
	return &AuditRepository{BaseRepository: base}
}

var _ repositories.AuditRepositoryFacade = (*AuditRepository)(nil)

func (r *AuditRepository) AppendAuditLog(ctx context.Context, entry domain.AuditLogEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO audit_log (log_id, timestamp, user_name, action, details)
		VALUES (?, ?, ?, ?, ?)`,
		entry.LogID, entry.Timestamp, nullStr(entry.User), entry.Action, nullStr(entry.Details))
	if err != nil {
		return fmt.Errorf("failed to append audit record: %w", err)
	}
	return nil
}

func (r *AuditRepository) ListAuditLog(ctx context.Context, limit int) ([]domain.AuditLogEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT log_id, timestamp, user_name, action, details
		FROM audit_log ORDER BY timestamp DESC, log_id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit log: %w", err)
	}
	defer rows.Close()
	var entries []domain.AuditLogEntry
	for rows.Next() {
		var (
			e             domain.AuditLogEntry
			user, details sql.NullString
		)
		if err := rows.Scan(&e.LogID, &e.Timestamp, &user, &e.Action, &details); err != nil {
			return nil, err
		}
		e.User = strOrEmpty(user)
		e.Details = strOrEmpty(details)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
