package domain

import "time"

// Period is one accounting period; at most one period is current at a time.
type Period struct {
	PeriodID    string     `json:"periodID"`
	Name        string     `json:"name"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	IsClosed    bool       `json:"isClosed"`
	IsCurrent   bool       `json:"isCurrent"`
	CurrentStep int        `json:"currentStep"`
}

// CycleStepState is the workflow state of a single accounting-cycle step.
type CycleStepState string

const (
	StepPending    CycleStepState = "PENDING"
	StepInProgress CycleStepState = "IN_PROGRESS"
	StepCompleted  CycleStepState = "COMPLETED"
)

// The ten steps of the accounting cycle, tracked per period.
const (
	StepAnalyzeTransactions  = 1
	StepJournalize           = 2
	StepPostToLedger         = 3
	StepUnadjustedTrialBal   = 4
	StepAdjustingEntries     = 5
	StepAdjustedTrialBal     = 6
	StepFinancialStatements  = 7
	StepClosingEntries       = 8
	StepPostClosingTrialBal  = 9
	StepScheduleReversing    = 10
	AccountingCycleStepCount = 10
)

// CycleStepNames maps step number to its display name, in cycle order.
var CycleStepNames = [AccountingCycleStepCount]string{
	"Analyze transactions",
	"Journalize transactions",
	"Post to ledger",
	"Prepare unadjusted trial balance",
	"Record adjusting entries",
	"Prepare adjusted trial balance",
	"Prepare financial statements",
	"Record closing entries",
	"Prepare post-closing trial balance",
	"Schedule reversing entries",
}

// CycleStepStatus is the persisted state of one step for one period.
type CycleStepStatus struct {
	PeriodID  string         `json:"periodID"`
	Step      int            `json:"step"`
	StepName  string         `json:"stepName"`
	Status    CycleStepState `json:"status"`
	Note      string         `json:"note,omitempty"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
