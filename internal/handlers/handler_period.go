package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quietbooks/quietbooks/internal/core/ports/services"
	"github.com/quietbooks/quietbooks/internal/dto"
)

// PeriodHandler exposes period and accounting-cycle endpoints.
type PeriodHandler struct {
	periods services.PeriodSvcFacade
}

// NewPeriodHandler creates a new period handler.
func NewPeriodHandler(periods services.PeriodSvcFacade) *PeriodHandler {
	return &PeriodHandler{periods: periods}
}

// CreatePeriod handles POST /periods.
func (h *PeriodHandler) CreatePeriod(c *gin.Context) {
	var req dto.CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	period, err := h.periods.CreatePeriod(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToPeriodResponse(period))
}

// ListPeriods handles GET /periods.
func (h *PeriodHandler) ListPeriods(c *gin.Context) {
	periods, err := h.periods.ListPeriods(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	responses := make([]dto.PeriodResponse, len(periods))
	for i := range periods {
		responses[i] = dto.ToPeriodResponse(&periods[i])
	}
	c.JSON(http.StatusOK, gin.H{"periods": responses})
}

// GetCurrentPeriod handles GET /periods/current.
func (h *PeriodHandler) GetCurrentPeriod(c *gin.Context) {
	period, err := h.periods.GetCurrentPeriod(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// SetActivePeriod handles PUT /periods/:id/activate.
func (h *PeriodHandler) SetActivePeriod(c *gin.Context) {
	if err := h.periods.SetActivePeriod(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "activated"})
}

// GetCycleStatus handles GET /periods/:id/cycle.
func (h *PeriodHandler) GetCycleStatus(c *gin.Context) {
	steps, err := h.periods.GetCycleStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"steps": dto.ToCycleStepResponses(steps)})
}

// SetCycleStep handles PUT /periods/:id/cycle.
func (h *PeriodHandler) SetCycleStep(c *gin.Context) {
	var req dto.SetStepStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := h.periods.SetCycleStepStatus(c.Request.Context(), c.Param("id"), req.Step, req.Status, req.Note)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// ResetCycle handles POST /periods/:id/cycle/reset. An optional step query
// parameter limits the reset to one step.
func (h *PeriodHandler) ResetCycle(c *gin.Context) {
	var step *int
	var req struct {
		Step *int `json:"step,omitempty" binding:"omitempty,min=1,max=10"`
	}
	if err := c.ShouldBindJSON(&req); err == nil {
		step = req.Step
	}
	if err := h.periods.ResetCycleSteps(c.Request.Context(), c.Param("id"), step); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}
