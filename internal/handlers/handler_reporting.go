package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quietbooks/quietbooks/internal/core/ports/services"
)

// ReportingHandler exposes trial balance, statement, closing and reversal
// endpoints.
type ReportingHandler struct {
	trialBalance services.TrialBalanceSvcFacade
	statements   services.StatementSvcFacade
	closing      services.ClosingSvcFacade
	reversing    services.ReversingSvcFacade
}

// NewReportingHandler creates a new reporting handler.
func NewReportingHandler(
	trialBalance services.TrialBalanceSvcFacade,
	statements services.StatementSvcFacade,
	closing services.ClosingSvcFacade,
	reversing services.ReversingSvcFacade,
) *ReportingHandler {
	return &ReportingHandler{
		trialBalance: trialBalance,
		statements:   statements,
		closing:      closing,
		reversing:    reversing,
	}
}

// GetTrialBalance handles GET /reports/trial-balance.
func (h *ReportingHandler) GetTrialBalance(c *gin.Context) {
	from, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	upTo, ok := parseDateQuery(c, "upTo")
	if !ok {
		return
	}
	var periodID *string
	if p := c.Query("periodID"); p != "" {
		periodID = &p
	}
	rows, err := h.trialBalance.Compute(c.Request.Context(), services.TrialBalanceOptions{
		FromDate:         from,
		UpToDate:         upTo,
		PeriodID:         periodID,
		IncludeTemporary: c.Query("includeTemporary") != "false",
		ExcludeClosing:   c.Query("excludeClosing") == "true",
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

// CaptureSnapshot handles POST /reports/trial-balance/snapshots.
func (h *ReportingHandler) CaptureSnapshot(c *gin.Context) {
	asOf, ok := dateQueryOr(c, "asOf", time.Now())
	if !ok {
		return
	}
	snapshot, err := h.trialBalance.CaptureSnapshot(c.Request.Context(), c.Query("stage"), asOf)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, snapshot)
}

// ListSnapshots handles GET /reports/trial-balance/snapshots.
func (h *ReportingHandler) ListSnapshots(c *gin.Context) {
	var stage *string
	if s := c.Query("stage"); s != "" {
		stage = &s
	}
	snapshots, err := h.trialBalance.ListSnapshots(c.Request.Context(), stage)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"snapshots": snapshots})
}

// GetIncomeStatement handles GET /reports/income-statement.
func (h *ReportingHandler) GetIncomeStatement(c *gin.Context) {
	now := time.Now()
	start, ok := dateQueryOr(c, "start", time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC))
	if !ok {
		return
	}
	end, ok := dateQueryOr(c, "end", now)
	if !ok {
		return
	}
	var periodID *string
	if p := c.Query("periodID"); p != "" {
		periodID = &p
	}
	report, err := h.statements.GenerateIncomeStatement(c.Request.Context(), start, end, periodID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetBalanceSheet handles GET /reports/balance-sheet.
func (h *ReportingHandler) GetBalanceSheet(c *gin.Context) {
	asOf, ok := dateQueryOr(c, "asOf", time.Now())
	if !ok {
		return
	}
	report, err := h.statements.GenerateBalanceSheet(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetCashFlow handles GET /reports/cash-flow.
func (h *ReportingHandler) GetCashFlow(c *gin.Context) {
	now := time.Now()
	start, ok := dateQueryOr(c, "start", time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC))
	if !ok {
		return
	}
	end, ok := dateQueryOr(c, "end", now)
	if !ok {
		return
	}
	report, err := h.statements.GenerateCashFlow(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// PostClosingEntries handles POST /closing.
func (h *ReportingHandler) PostClosingEntries(c *gin.Context) {
	date, ok := dateQueryOr(c, "date", time.Now())
	if !ok {
		return
	}
	entryIDs, err := h.closing.MakeClosingEntries(c.Request.Context(), date, c.Query("closedBy"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entryIDs": entryIDs, "count": len(entryIDs)})
}

// ProcessReversals handles POST /reversals/process.
func (h *ReportingHandler) ProcessReversals(c *gin.Context) {
	asOf, ok := dateQueryOr(c, "asOf", time.Now())
	if !ok {
		return
	}
	entryIDs, err := h.reversing.ProcessSchedule(c.Request.Context(), asOf, c.Query("postedBy"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entryIDs": entryIDs, "count": len(entryIDs)})
}

// ListReversals handles GET /reversals.
func (h *ReportingHandler) ListReversals(c *gin.Context) {
	items, err := h.reversing.ListQueue(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"queue": items})
}
