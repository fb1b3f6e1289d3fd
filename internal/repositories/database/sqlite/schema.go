package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema is the full DDL, applied idempotently at startup. Amount columns
// are TEXT holding exact decimal strings; floating point never touches
// money.
const Schema = `
CREATE TABLE IF NOT EXISTS accounts (
    account_id       TEXT PRIMARY KEY,
    code             TEXT NOT NULL UNIQUE,
    name             TEXT NOT NULL UNIQUE,
    category         TEXT NOT NULL,
    normal_side      TEXT NOT NULL,
    is_active        INTEGER NOT NULL DEFAULT 1,
    created_at       TIMESTAMP NOT NULL,
    created_by       TEXT,
    last_updated_at  TIMESTAMP NOT NULL,
    last_updated_by  TEXT
);

CREATE TABLE IF NOT EXISTS periods (
    period_id    TEXT PRIMARY KEY,
    name         TEXT NOT NULL UNIQUE,
    start_date   TIMESTAMP,
    end_date     TIMESTAMP,
    is_closed    INTEGER NOT NULL DEFAULT 0,
    is_current   INTEGER NOT NULL DEFAULT 0,
    current_step INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS journal_entries (
    entry_id        TEXT PRIMARY KEY,
    entry_date      TIMESTAMP NOT NULL,
    description     TEXT NOT NULL,
    period_id       TEXT NOT NULL REFERENCES periods(period_id),
    status          TEXT NOT NULL DEFAULT 'POSTED',
    is_adjusting    INTEGER NOT NULL DEFAULT 0,
    is_closing      INTEGER NOT NULL DEFAULT 0,
    is_reversing    INTEGER NOT NULL DEFAULT 0,
    document_ref    TEXT,
    external_ref    TEXT,
    memo            TEXT,
    source_type     TEXT,
    posted_at       TIMESTAMP,
    posted_by       TEXT,
    created_at      TIMESTAMP NOT NULL,
    created_by      TEXT,
    last_updated_at TIMESTAMP NOT NULL,
    last_updated_by TEXT
);
CREATE INDEX IF NOT EXISTS idx_entries_period ON journal_entries(period_id);
CREATE INDEX IF NOT EXISTS idx_entries_date ON journal_entries(entry_date);

CREATE TABLE IF NOT EXISTS journal_lines (
    line_id    TEXT PRIMARY KEY,
    entry_id   TEXT NOT NULL REFERENCES journal_entries(entry_id) ON DELETE CASCADE,
    account_id TEXT NOT NULL REFERENCES accounts(account_id),
    debit      TEXT NOT NULL DEFAULT '0',
    credit     TEXT NOT NULL DEFAULT '0'
);
CREATE INDEX IF NOT EXISTS idx_lines_entry ON journal_lines(entry_id);
CREATE INDEX IF NOT EXISTS idx_lines_account ON journal_lines(account_id);

CREATE TABLE IF NOT EXISTS cycle_steps (
    period_id  TEXT NOT NULL REFERENCES periods(period_id),
    step       INTEGER NOT NULL,
    status     TEXT NOT NULL DEFAULT 'PENDING',
    note       TEXT,
    updated_at TIMESTAMP NOT NULL,
    PRIMARY KEY (period_id, step)
);

CREATE TABLE IF NOT EXISTS reversing_queue (
    item_id           TEXT PRIMARY KEY,
    original_entry_id TEXT NOT NULL REFERENCES journal_entries(entry_id) ON DELETE CASCADE,
    reverse_on        TIMESTAMP NOT NULL,
    created_on        TIMESTAMP NOT NULL,
    status            TEXT NOT NULL DEFAULT 'PENDING',
    reversed_entry_id TEXT
);

CREATE TABLE IF NOT EXISTS adjustment_requests (
    request_id   TEXT PRIMARY KEY,
    period_id    TEXT NOT NULL REFERENCES periods(period_id),
    description  TEXT NOT NULL,
    requested_on TIMESTAMP NOT NULL,
    requested_by TEXT,
    status       TEXT NOT NULL DEFAULT 'REQUESTED',
    approved_by  TEXT,
    approved_on  TIMESTAMP,
    entry_id     TEXT REFERENCES journal_entries(entry_id),
    notes        TEXT
);

CREATE TABLE IF NOT EXISTS trial_balance_snapshots (
    snapshot_id TEXT PRIMARY KEY,
    period_id   TEXT NOT NULL REFERENCES periods(period_id) ON DELETE CASCADE,
    stage       TEXT NOT NULL,
    as_of       TIMESTAMP NOT NULL,
    captured_on TIMESTAMP NOT NULL,
    payload     TEXT NOT NULL,
    UNIQUE(period_id, stage, as_of)
);

CREATE TABLE IF NOT EXISTS audit_log (
    log_id    TEXT PRIMARY KEY,
    timestamp TIMESTAMP NOT NULL,
    user_name TEXT,
    action    TEXT NOT NULL,
    details   TEXT
);
`

// InitSchema applies the schema to the database.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}
