package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/quietbooks/quietbooks/internal/core/domain"
	"github.com/quietbooks/quietbooks/internal/core/ports/repositories"
)

// ReportingRepository aggregates journal lines for the trial balance and
// statements. Sums are accumulated as decimals in Go; amounts are stored
// as exact strings and never cast through floating point.
type ReportingRepository struct {
	BaseRepository
	accounts repositories.AccountReader
	journal  repositories.JournalReader
}

// NewReportingRepository creates a new reporting repository.
func NewReportingRepository(base BaseRepository, accounts repositories.AccountReader, journal repositories.JournalReader) *ReportingRepository {
	return &ReportingRepository{BaseRepository: base, accounts: accounts, journal: journal}
}

var _ repositories.ReportingRepository = (*ReportingRepository)(nil)

func (r *ReportingRepository) AggregateBalances(ctx context.Context, q repositories.BalanceQuery) ([]repositories.AccountBalance, error) {
	accounts, err := r.accounts.ListAccounts(ctx, true)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT l.account_id, l.debit, l.credit
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE e.status = ?`
	args := []any{domain.Posted}
	if q.FromDate != nil {
		query += ` AND date(e.entry_date) >= date(?)`
		args = append(args, *q.FromDate)
	}
	if q.UpToDate != nil {
		query += ` AND date(e.entry_date) <= date(?)`
		args = append(args, *q.UpToDate)
	}
	if q.PeriodID != nil {
		query += ` AND e.period_id = ?`
		args = append(args, *q.PeriodID)
	}
	if q.ExcludeClosing {
		query += ` AND e.is_closing = 0`
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate balances: %w", err)
	}
	defer rows.Close()

	type sums struct{ debit, credit decimal.Decimal }
	totals := make(map[string]*sums, len(accounts))
	for rows.Next() {
		var (
			accountID     string
			debit, credit decimal.Decimal
		)
		if err := rows.Scan(&accountID, &debit, &credit); err != nil {
			return nil, err
		}
		t, ok := totals[accountID]
		if !ok {
			t = &sums{}
			totals[accountID] = t
		}
		t.debit = t.debit.Add(debit)
		t.credit = t.credit.Add(credit)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	balances := make([]repositories.AccountBalance, 0, len(accounts))
	for _, acct := range accounts {
		if !q.IncludeTemporary && acct.Category.IsTemporary() {
			continue
		}
		b := repositories.AccountBalance{
			Account:     acct,
			TotalDebit:  decimal.Zero,
			TotalCredit: decimal.Zero,
		}
		if t, ok := totals[acct.AccountID]; ok {
			b.TotalDebit = t.debit
			b.TotalCredit = t.credit
		}
		balances = append(balances, b)
	}
	return balances, nil
}

func (r *ReportingRepository) ListCashActivity(ctx context.Context, cashAccountID string, start, end time.Time, periodID *string) ([]repositories.CashActivity, error) {
	query := `
		SELECT DISTINCT e.entry_id, e.entry_date, e.created_at
		FROM journal_entries e
		JOIN journal_lines l ON l.entry_id = e.entry_id
		WHERE e.status = ? AND l.account_id = ?
		  AND date(e.entry_date) >= date(?) AND date(e.entry_date) <= date(?)`
	args := []any{domain.Posted, cashAccountID, start, end}
	if periodID != nil {
		query += ` AND e.period_id = ?`
		args = append(args, *periodID)
	}
	query += ` ORDER BY e.entry_date, e.created_at`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash activity: %w", err)
	}
	var entryIDs []string
	for rows.Next() {
		var (
			id                 string
			entryDate, created time.Time
		)
		if err := rows.Scan(&id, &entryDate, &created); err != nil {
			rows.Close()
			return nil, err
		}
		entryIDs = append(entryIDs, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	activities := make([]repositories.CashActivity, 0, len(entryIDs))
	for _, id := range entryIDs {
		entry, err := r.journal.FindEntryByID(ctx, id)
		if err != nil {
			return nil, err
		}
		lines, err := r.journal.FindLinesByEntryID(ctx, id)
		if err != nil {
			return nil, err
		}
		activities = append(activities, repositories.CashActivity{Entry: *entry, Lines: lines})
	}
	return activities, nil
}

func (r *ReportingRepository) SaveTrialBalanceSnapshot(ctx context.Context, snapshot domain.TrialBalanceSnapshot) error {
	payload, err := json.Marshal(snapshot.Rows)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot rows: %w", err)
	}
	// One snapshot per (period, stage, as_of); recapturing replaces it.
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO trial_balance_snapshots (snapshot_id, period_id, stage, as_of, captured_on, payload)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(period_id, stage, as_of) DO UPDATE SET
			snapshot_id = excluded.snapshot_id,
			captured_on = excluded.captured_on,
			payload = excluded.payload`,
		snapshot.SnapshotID, snapshot.PeriodID, snapshot.Stage,
		snapshot.AsOf, snapshot.CapturedOn, string(payload))
	if err != nil {
		return fmt.Errorf("failed to save trial balance snapshot: %w", err)
	}
	return nil
}

func (r *ReportingRepository) ListTrialBalanceSnapshots(ctx context.Context, periodID string, stage *string) ([]domain.TrialBalanceSnapshot, error) {
	query := `
		SELECT snapshot_id, period_id, stage, as_of, captured_on, payload
		FROM trial_balance_snapshots
		WHERE period_id = ?`
	args := []any{periodID}
	if stage != nil {
		query += ` AND stage = ?`
		args = append(args, *stage)
	}
	query += ` ORDER BY captured_on DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trial balance snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []domain.TrialBalanceSnapshot
	for rows.Next() {
		var (
			snap    domain.TrialBalanceSnapshot
			payload string
		)
		if err := rows.Scan(&snap.SnapshotID, &snap.PeriodID, &snap.Stage,
			&snap.AsOf, &snap.CapturedOn, &payload); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(payload), &snap.Rows); err != nil {
			return nil, fmt.Errorf("failed to decode snapshot %s: %w", snap.SnapshotID, err)
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, rows.Err()
}
