package services

// ServiceContainer bundles every engine service for handler and CLI wiring.
type ServiceContainer struct {
	Account      AccountSvcFacade
	Posting      PostingSvcFacade
	TrialBalance TrialBalanceSvcFacade
	Statement    StatementSvcFacade
	Closing      ClosingSvcFacade
	Reversing    ReversingSvcFacade
	Period       PeriodSvcFacade
	Adjustment   AdjustmentSvcFacade
	Audit        AuditSvcFacade
}
