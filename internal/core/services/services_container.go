package services

import (
	portsrepo "github.com/quietbooks/quietbooks/internal/core/ports/repositories"
	portssvc "github.com/quietbooks/quietbooks/internal/core/ports/services"
)

// NewServiceContainer wires every service against the repository provider.
// The period service doubles as the cycle notifier for the rest.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	periodSvc := NewPeriodService(repos.PeriodRepo, repos.AuditRepo)

	postingSvc := NewPostingService(repos.JournalRepo, repos.AccountRepo, repos.PeriodRepo, repos.ReportingRepo, periodSvc)
	trialBalanceSvc := NewTrialBalanceService(repos.ReportingRepo, repos.PeriodRepo)
	statementSvc := NewStatementService(trialBalanceSvc, repos.AccountRepo, repos.ReportingRepo, repos.PeriodRepo, periodSvc)
	closingSvc := NewClosingService(trialBalanceSvc, repos.AccountRepo, repos.PeriodRepo, repos.AuditRepo, postingSvc, periodSvc)
	reversingSvc := NewReversingService(repos.ReversingRepo, repos.JournalRepo, repos.PeriodRepo, repos.AuditRepo, postingSvc, periodSvc)
	adjustmentSvc := NewAdjustmentService(repos.AdjustmentRepo, repos.JournalRepo, repos.PeriodRepo, repos.AuditRepo, periodSvc)

	return &portssvc.ServiceContainer{
		Account:      NewAccountService(repos.AccountRepo),
		Posting:      postingSvc,
		TrialBalance: trialBalanceSvc,
		Statement:    statementSvc,
		Closing:      closingSvc,
		Reversing:    reversingSvc,
		Period:       periodSvc,
		Adjustment:   adjustmentSvc,
		Audit:        NewAuditService(repos.AuditRepo),
	}
}
