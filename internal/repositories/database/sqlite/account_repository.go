package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quietbooks/quietbooks/internal/core/domain"
	"github.com/quietbooks/quietbooks/internal/core/ports/repositories"
)

// AccountRepository persists the chart of accounts.
type AccountRepository struct {
	BaseRepository
}

// NewAccountRepository creates a new account repository.
func NewAccountRepository(base BaseRepository) *AccountRepository {
	return &AccountRepository{BaseRepository: base}
}

var _ repositories.AccountRepositoryFacade = (*AccountRepository)(nil)

const accountColumns = `account_id, code, name, category, normal_side, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row interface{ Scan(...any) error }) (*domain.Account, error) {
	var (
		a         domain.Account
		createdBy sql.NullString
		updatedBy sql.NullString
	)
	err := row.Scan(&a.AccountID, &a.Code, &a.Name, &a.Category, &a.NormalSide, &a.IsActive,
		&a.CreatedAt, &createdBy, &a.LastUpdatedAt, &updatedBy)
	if err != nil {
		return nil, err
	}
	a.CreatedBy = strOrEmpty(createdBy)
	a.LastUpdatedBy = strOrEmpty(updatedBy)
	return &a, nil
}

func (r *AccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE account_id = ?`, accountID)
	account, err := scanAccount(row)
	if err != nil {
		return nil, notFound(err, "account "+accountID)
	}
	return account, nil
}

func (r *AccountRepository) FindAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE name = ?`, name)
	account, err := scanAccount(row)
	if err != nil {
		return nil, notFound(err, "account "+name)
	}
	return account, nil
}

func (r *AccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	result := make(map[string]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return result, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(accountIDs)), ",")
	args := make([]any, len(accountIDs))
	for i, id := range accountIDs {
		args[i] = id
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE account_id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		result[account.AccountID] = *account
	}
	return result, rows.Err()
}

func (r *AccountRepository) ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY code`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()
	var accounts []domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *account)
	}
	return accounts, rows.Err()
}

func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		account.AccountID, account.Code, account.Name, account.Category, account.NormalSide,
		account.IsActive, account.CreatedAt, nullStr(account.CreatedBy),
		account.LastUpdatedAt, nullStr(account.LastUpdatedBy))
	if err != nil {
		return fmt.Errorf("failed to save account %s: %w", account.Code, err)
	}
	return nil
}

func (r *AccountRepository) DeactivateAccount(ctx context.Context, accountID string, updatedBy string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts SET is_active = 0, last_updated_at = ?, last_updated_by = ?
		WHERE account_id = ?`,
		time.Now(), nullStr(updatedBy), accountID)
	if err != nil {
		return fmt.Errorf("failed to deactivate account: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound(sql.ErrNoRows, "account "+accountID)
	}
	return nil
}

// defaultChart is the standard small-business chart installed on first
// run. Owner's Drawings is equity with a debit normal side.
var defaultChart = []struct {
	code     string
	name     string
	category domain.AccountCategory
	normal   domain.Side
}{
	{"101", "Cash", domain.Asset, domain.Debit},
	{"106", "Accounts Receivable", domain.Asset, domain.Debit},
	{"124", "Supplies", domain.Asset, domain.Debit},
	{"128", "Prepaid Rent", domain.Asset, domain.Debit},
	{"167", "Equipment", domain.Asset, domain.Debit},
	{"168", "Accumulated Depreciation - Equipment", domain.ContraAsset, domain.Credit},
	{"201", "Accounts Payable", domain.Liability, domain.Credit},
	{"212", "Salaries Payable", domain.Liability, domain.Credit},
	{"230", "Unearned Revenue", domain.Liability, domain.Credit},
	{"301", "Owner's Capital", domain.Equity, domain.Credit},
	{"302", "Owner's Drawings", domain.Equity, domain.Debit},
	{"401", "Service Revenue", domain.Revenue, domain.Credit},
	{"402", "Sales Revenue", domain.Revenue, domain.Credit},
	{"501", "Rent Expense", domain.Expense, domain.Debit},
	{"502", "Salaries Expense", domain.Expense, domain.Debit},
	{"503", "Supplies Expense", domain.Expense, domain.Debit},
	{"504", "Depreciation Expense", domain.Expense, domain.Debit},
	{"505", "Utilities Expense", domain.Expense, domain.Debit},
	{"506", "Cost of Goods Sold", domain.Expense, domain.Debit},
}

func (r *AccountRepository) SeedDefaultChart(ctx context.Context, createdBy string) error {
	now := time.Now()
	return r.withTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT OR IGNORE INTO accounts (`+accountColumns+`)
			VALUES (?, ?, ?, ?, ?, 1, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare seed statement: %w", err)
		}
		defer stmt.Close()
		for _, a := range defaultChart {
			if _, err := stmt.ExecContext(ctx,
				uuid.NewString(), a.code, a.name, a.category, a.normal,
				now, nullStr(createdBy), now, nullStr(createdBy)); err != nil {
				return fmt.Errorf("failed to seed account %s: %w", a.code, err)
			}
		}
		return nil
	})
}
