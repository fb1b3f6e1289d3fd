package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quietbooks/quietbooks/internal/core/ports/services"
)

// RegisterHandlers attaches every route under /api/v1.
func RegisterHandlers(r *gin.Engine, svcs *services.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	accountHandler := NewAccountHandler(svcs.Account)
	journalHandler := NewJournalHandler(svcs.Posting)
	reportingHandler := NewReportingHandler(svcs.TrialBalance, svcs.Statement, svcs.Closing, svcs.Reversing)
	periodHandler := NewPeriodHandler(svcs.Period)
	adjustmentHandler := NewAdjustmentHandler(svcs.Adjustment, svcs.Audit)

	api := r.Group("/api/v1")
	{
		accounts := api.Group("/accounts")
		{
			accounts.GET("", accountHandler.ListAccounts)
			accounts.POST("", accountHandler.CreateAccount)
			accounts.POST("/seed", accountHandler.SeedChart)
			accounts.GET("/:id", accountHandler.GetAccount)
			accounts.DELETE("/:id", accountHandler.DeactivateAccount)
		}

		entries := api.Group("/entries")
		{
			entries.GET("", journalHandler.ListEntries)
			entries.POST("", journalHandler.RecordEntry)
			entries.GET("/:id", journalHandler.GetEntry)
			entries.DELETE("/:id", journalHandler.DeleteEntry)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/trial-balance", reportingHandler.GetTrialBalance)
			reports.GET("/trial-balance/snapshots", reportingHandler.ListSnapshots)
			reports.POST("/trial-balance/snapshots", reportingHandler.CaptureSnapshot)
			reports.GET("/income-statement", reportingHandler.GetIncomeStatement)
			reports.GET("/balance-sheet", reportingHandler.GetBalanceSheet)
			reports.GET("/cash-flow", reportingHandler.GetCashFlow)
		}

		api.POST("/closing", reportingHandler.PostClosingEntries)
		api.GET("/reversals", reportingHandler.ListReversals)
		api.POST("/reversals/process", reportingHandler.ProcessReversals)

		periods := api.Group("/periods")
		{
			periods.GET("", periodHandler.ListPeriods)
			periods.POST("", periodHandler.CreatePeriod)
			periods.GET("/current", periodHandler.GetCurrentPeriod)
			periods.PUT("/:id/activate", periodHandler.SetActivePeriod)
			periods.GET("/:id/cycle", periodHandler.GetCycleStatus)
			periods.PUT("/:id/cycle", periodHandler.SetCycleStep)
			periods.POST("/:id/cycle/reset", periodHandler.ResetCycle)
		}

		adjustments := api.Group("/adjustments")
		{
			adjustments.GET("", adjustmentHandler.ListRequests)
			adjustments.POST("", adjustmentHandler.CreateRequest)
			adjustments.PUT("/:id/status", adjustmentHandler.UpdateStatus)
			adjustments.PUT("/:id/link", adjustmentHandler.LinkToEntry)
		}

		api.GET("/audit", adjustmentHandler.ListAuditLog)
	}
}
