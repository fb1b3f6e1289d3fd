package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/quietbooks/quietbooks/internal/core/domain"
	"github.com/quietbooks/quietbooks/internal/core/ports/repositories"
)

// JournalRepository persists entries, lines, the reversing queue rows
// created alongside entries, and audit records, atomically.
type JournalRepository struct {
	BaseRepository
}

// NewJournalRepository creates a new journal repository.
func NewJournalRepository(base BaseRepository) *JournalRepository {
	return &JournalRepository{BaseRepository: base}
}

var _ repositories.JournalRepositoryFacade = (*JournalRepository)(nil)

const entryColumns = `entry_id, entry_date, description, period_id, status,
	is_adjusting, is_closing, is_reversing, document_ref, external_ref, memo,
	source_type, posted_at, posted_by, created_at, created_by, last_updated_at, last_updated_by`

func scanEntry(row interface{ Scan(...any) error }) (*domain.JournalEntry, error) {
	var (
		e                            domain.JournalEntry
		docRef, extRef, memo, srcTyp sql.NullString
		postedAt                     sql.NullTime
		postedBy                     sql.NullString
		createdBy, updatedBy         sql.NullString
	)
	err := row.Scan(&e.EntryID, &e.Date, &e.Description, &e.PeriodID, &e.Status,
		&e.IsAdjusting, &e.IsClosing, &e.IsReversing, &docRef, &extRef, &memo,
		&srcTyp, &postedAt, &postedBy, &e.CreatedAt, &createdBy, &e.LastUpdatedAt, &updatedBy)
	if err != nil {
		return nil, err
	}
	e.DocumentRef = strOrEmpty(docRef)
	e.ExternalRef = strOrEmpty(extRef)
	e.Memo = strOrEmpty(memo)
	e.SourceType = strOrEmpty(srcTyp)
	e.PostedBy = strOrEmpty(postedBy)
	e.CreatedBy = strOrEmpty(createdBy)
	e.LastUpdatedBy = strOrEmpty(updatedBy)
	if postedAt.Valid {
		t := postedAt.Time
		e.PostedAt = &t
	}
	return &e, nil
}

func (r *JournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+entryColumns+` FROM journal_entries WHERE entry_id = ?`, entryID)
	entry, err := scanEntry(row)
	if err != nil {
		return nil, notFound(err, "journal entry "+entryID)
	}
	return entry, nil
}

func (r *JournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT line_id, entry_id, account_id, debit, credit
		FROM journal_lines WHERE entry_id = ? ORDER BY rowid`, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines: %w", err)
	}
	defer rows.Close()
	var lines []domain.JournalLine
	for rows.Next() {
		var ln domain.JournalLine
		if err := rows.Scan(&ln.LineID, &ln.EntryID, &ln.AccountID, &ln.Debit, &ln.Credit); err != nil {
			return nil, err
		}
		lines = append(lines, ln)
	}
	return lines, rows.Err()
}

func (r *JournalRepository) ListEntries(ctx context.Context, filter repositories.EntryFilter) ([]domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE 1=1`
	var args []any
	if filter.PeriodID != nil {
		query += ` AND period_id = ?`
		args = append(args, *filter.PeriodID)
	}
	if filter.FromDate != nil {
		query += ` AND date(entry_date) >= date(?)`
		args = append(args, *filter.FromDate)
	}
	if filter.UpToDate != nil {
		query += ` AND date(entry_date) <= date(?)`
		args = append(args, *filter.UpToDate)
	}
	if filter.Status != nil {
		query += ` AND status = ?`
		args = append(args, *filter.Status)
	}
	query += ` ORDER BY entry_date, created_at`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()
	var entries []domain.JournalEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

func (r *JournalRepository) FindDuplicateCandidates(ctx context.Context, probe repositories.DuplicateProbe) ([]domain.JournalEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+entryColumns+` FROM journal_entries
		WHERE period_id = ? AND date(entry_date) = date(?) AND description = ?
		  AND status = ?
		  AND COALESCE(document_ref, '') = ? AND COALESCE(external_ref, '') = ?`,
		probe.PeriodID, probe.Date, probe.Description, probe.Status,
		probe.DocumentRef, probe.ExternalRef)
	if err != nil {
		return nil, fmt.Errorf("failed to query duplicate candidates: %w", err)
	}
	defer rows.Close()
	var entries []domain.JournalEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range entries {
		lines, err := r.FindLinesByEntryID(ctx, entries[i].EntryID)
		if err != nil {
			return nil, err
		}
		entries[i].Lines = lines
	}
	return entries, nil
}

func (r *JournalRepository) CountLines(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM journal_lines`).Scan(&count)
	return count, err
}

func (r *JournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, scheduleReverseOn *time.Time, audit domain.AuditLogEntry) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		var postedAt sql.NullTime
		if entry.PostedAt != nil {
			postedAt = sql.NullTime{Time: *entry.PostedAt, Valid: true}
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO journal_entries (`+entryColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			entry.EntryID, entry.Date, entry.Description, entry.PeriodID, entry.Status,
			entry.IsAdjusting, entry.IsClosing, entry.IsReversing,
			nullStr(entry.DocumentRef), nullStr(entry.ExternalRef), nullStr(entry.Memo),
			nullStr(entry.SourceType), postedAt, nullStr(entry.PostedBy),
			entry.CreatedAt, nullStr(entry.CreatedBy), entry.LastUpdatedAt, nullStr(entry.LastUpdatedBy))
		if err != nil {
			return fmt.Errorf("failed to insert entry: %w", err)
		}

		for _, ln := range entry.Lines {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO journal_lines (line_id, entry_id, account_id, debit, credit)
				VALUES (?, ?, ?, ?, ?)`,
				ln.LineID, entry.EntryID, ln.AccountID, ln.Debit.String(), ln.Credit.String()); err != nil {
				return fmt.Errorf("failed to insert line: %w", err)
			}
		}

		if scheduleReverseOn != nil {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO reversing_queue (item_id, original_entry_id, reverse_on, created_on, status)
				VALUES (?, ?, ?, ?, ?)`,
				uuid.NewString(), entry.EntryID, *scheduleReverseOn, time.Now(), domain.ReversalPending); err != nil {
				return fmt.Errorf("failed to enqueue reversal: %w", err)
			}
		}

		return insertAudit(ctx, tx, audit)
	})
}

func (r *JournalRepository) DeleteEntry(ctx context.Context, entryID string, audit domain.AuditLogEntry) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM journal_entries WHERE entry_id = ?`, entryID)
		if err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return notFound(sql.ErrNoRows, "journal entry "+entryID)
		}
		return insertAudit(ctx, tx, audit)
	})
}

// insertAudit writes one audit row inside the caller's transaction.
func insertAudit(ctx context.Context, tx *sql.Tx, audit domain.AuditLogEntry) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO audit_log (log_id, timestamp, user_name, action, details)
		VALUES (?, ?, ?, ?, ?)`,
		audit.LogID, audit.Timestamp, nullStr(audit.User), audit.Action, nullStr(audit.Details))
	if err != nil {
		return fmt.Errorf("failed to insert audit record: %w", err)
	}
	return nil
}
