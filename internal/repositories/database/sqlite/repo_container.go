package sqlite

import (
	"database/sql"

	"github.com/quietbooks/quietbooks/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository over the shared handle.
func NewRepositoryProvider(db *sql.DB) *repositories.RepositoryProvider {
	base := NewBaseRepository(db)
	accountRepo := NewAccountRepository(base)
	journalRepo := NewJournalRepository(base)
	return &repositories.RepositoryProvider{
		AccountRepo:    accountRepo,
		JournalRepo:    journalRepo,
		PeriodRepo:     NewPeriodRepository(base),
		ReversingRepo:  NewReversingRepository(base),
		AdjustmentRepo: NewAdjustmentRepository(base),
		AuditRepo:      NewAuditRepository(base),
		ReportingRepo:  NewReportingRepository(base, accountRepo, journalRepo),
	}
}
