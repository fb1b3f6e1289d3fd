package repositories

// RepositoryProvider bundles all repository facades for service wiring.
type RepositoryProvider struct {
	AccountRepo    AccountRepositoryFacade
	JournalRepo    JournalRepositoryFacade
	PeriodRepo     PeriodRepositoryFacade
	ReversingRepo  ReversingRepositoryFacade
	AdjustmentRepo AdjustmentRepositoryFacade
	AuditRepo      AuditRepositoryFacade
	ReportingRepo  ReportingRepository
}
