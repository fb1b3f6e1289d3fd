package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/quietbooks/quietbooks/internal/core/domain"
	"github.com/quietbooks/quietbooks/internal/core/ports/repositories"
)

// PeriodRepository persists periods and their cycle step state.
type PeriodRepository struct {
	BaseRepository
}

// NewPeriodRepository creates a new period repository.
func NewPeriodRepository(base BaseRepository) *PeriodRepository {
	return &PeriodRepository{BaseRepository: base}
}

var _ repositories.PeriodRepositoryFacade = (*PeriodRepository)(nil)

const periodColumns = `period_id, name, start_date, end_date, is_closed, is_current, current_step`

func scanPeriod(row interface{ Scan(...any) error }) (*domain.Period, error) {
	var (
		p          domain.Period
		start, end sql.NullTime
	)
	err := row.Scan(&p.PeriodID, &p.Name, &start, &end, &p.IsClosed, &p.IsCurrent, &p.CurrentStep)
	if err != nil {
		return nil, err
	}
	if start.Valid {
		t := start.Time
		p.StartDate = &t
	}
	if end.Valid {
		t := end.Time
		p.EndDate = &t
	}
	return &p, nil
}

func (r *PeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.Period, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+periodColumns+` FROM periods WHERE period_id = ?`, periodID)
	period, err := scanPeriod(row)
	if err != nil {
		return nil, notFound(err, "period "+periodID)
	}
	return period, nil
}

func (r *PeriodRepository) FindPeriodByName(ctx context.Context, name string) (*domain.Period, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+periodColumns+` FROM periods WHERE name = ?`, name)
	period, err := scanPeriod(row)
	if err != nil {
		return nil, notFound(err, "period "+name)
	}
	return period, nil
}

func (r *PeriodRepository) FindCurrentPeriod(ctx context.Context) (*domain.Period, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+periodColumns+` FROM periods WHERE is_current = 1 LIMIT 1`)
	period, err := scanPeriod(row)
	if err != nil {
		return nil, notFound(err, "current period")
	}
	return period, nil
}

func (r *PeriodRepository) ListPeriods(ctx context.Context) ([]domain.Period, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+periodColumns+` FROM periods ORDER BY start_date, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	defer rows.Close()
	var periods []domain.Period
	for rows.Next() {
		period, err := scanPeriod(rows)
		if err != nil {
			return nil, err
		}
		periods = append(periods, *period)
	}
	return periods, rows.Err()
}

// SavePeriod upserts by name so that repeated creation of "January 2026"
// converges on one row. Returns the surviving period's ID.
func (r *PeriodRepository) SavePeriod(ctx context.Context, period domain.Period) (string, error) {
	existing, err := r.FindPeriodByName(ctx, period.Name)
	if err == nil {
		var start, end sql.NullTime
		if period.StartDate != nil {
			start = sql.NullTime{Time: *period.StartDate, Valid: true}
		}
		if period.EndDate != nil {
			end = sql.NullTime{Time: *period.EndDate, Valid: true}
		}
		_, err = r.db.ExecContext(ctx,
			`UPDATE periods SET start_date = ?, end_date = ? WHERE period_id = ?`,
			start, end, existing.PeriodID)
		if err != nil {
			return "", fmt.Errorf("failed to update period: %w", err)
		}
		return existing.PeriodID, nil
	}

	var start, end sql.NullTime
	if period.StartDate != nil {
		start = sql.NullTime{Time: *period.StartDate, Valid: true}
	}
	if period.EndDate != nil {
		end = sql.NullTime{Time: *period.EndDate, Valid: true}
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO periods (period_id, name, start_date, end_date, is_closed, is_current, current_step)
		VALUES (?, ?, ?, ?, 0, 0, 1)`,
		period.PeriodID, period.Name, start, end)
	if err != nil {
		return "", fmt.Errorf("failed to insert period: %w", err)
	}
	return period.PeriodID, nil
}

func (r *PeriodRepository) SetCurrentPeriod(ctx context.Context, periodID string) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `UPDATE periods SET is_current = 0 WHERE is_current = 1`); err != nil {
			return fmt.Errorf("failed to clear current flag: %w", err)
		}
		res, err := tx.ExecContext(ctx, `UPDATE periods SET is_current = 1 WHERE period_id = ?`, periodID)
		if err != nil {
			return fmt.Errorf("failed to set current period: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return notFound(sql.ErrNoRows, "period "+periodID)
		}
		return nil
	})
}

func (r *PeriodRepository) MarkPeriodClosed(ctx context.Context, periodID string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE periods SET is_closed = 1 WHERE period_id = ?`, periodID)
	if err != nil {
		return fmt.Errorf("failed to close period: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound(sql.ErrNoRows, "period "+periodID)
	}
	return nil
}

func (r *PeriodRepository) GetCycleStatus(ctx context.Context, periodID string) ([]domain.CycleStepStatus, error) {
	if err := r.EnsureCycleSteps(ctx, periodID); err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT period_id, step, status, COALESCE(note, ''), updated_at
		FROM cycle_steps WHERE period_id = ? ORDER BY step`, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cycle steps: %w", err)
	}
	defer rows.Close()
	var steps []domain.CycleStepStatus
	for rows.Next() {
		var st domain.CycleStepStatus
		if err := rows.Scan(&st.PeriodID, &st.Step, &st.Status, &st.Note, &st.UpdatedAt); err != nil {
			return nil, err
		}
		if st.Step >= 1 && st.Step <= domain.AccountingCycleStepCount {
			st.StepName = domain.CycleStepNames[st.Step-1]
		}
		steps = append(steps, st)
	}
	return steps, rows.Err()
}

func (r *PeriodRepository) EnsureCycleSteps(ctx context.Context, periodID string) error {
	now := time.Now()
	return r.withTx(ctx, func(tx *sql.Tx) error {
		for step := 1; step <= domain.AccountingCycleStepCount; step++ {
			if _, err := tx.ExecContext(ctx, `
				INSERT OR IGNORE INTO cycle_steps (period_id, step, status, updated_at)
				VALUES (?, ?, ?, ?)`,
				periodID, step, domain.StepPending, now); err != nil {
				return fmt.Errorf("failed to seed cycle step %d: %w", step, err)
			}
		}
		return nil
	})
}

func (r *PeriodRepository) SetCycleStepStatus(ctx context.Context, periodID string, step int, status domain.CycleStepState, note string) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO cycle_steps (period_id, step, status, note, updated_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(period_id, step) DO UPDATE SET
				status = excluded.status, note = excluded.note, updated_at = excluded.updated_at`,
			periodID, step, status, nullStr(note), time.Now())
		if err != nil {
			return fmt.Errorf("failed to update cycle step: %w", err)
		}
		// current_step tracks the furthest step touched.
		_, err = tx.ExecContext(ctx, `
			UPDATE periods SET current_step = ? WHERE period_id = ? AND current_step < ?`,
			step, periodID, step)
		if err != nil {
			return fmt.Errorf("failed to update current step: %w", err)
		}
		return nil
	})
}

func (r *PeriodRepository) ResetCycleSteps(ctx context.Context, periodID string, step *int) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		now := time.Now()
		if step != nil {
			_, err := tx.ExecContext(ctx, `
				UPDATE cycle_steps SET status = ?, note = NULL, updated_at = ?
				WHERE period_id = ? AND step = ?`,
				domain.StepPending, now, periodID, *step)
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			UPDATE cycle_steps SET status = ?, note = NULL, updated_at = ?
			WHERE period_id = ?`,
			domain.StepPending, now, periodID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `UPDATE periods SET current_step = 1 WHERE period_id = ?`, periodID)
		return err
	})
}
