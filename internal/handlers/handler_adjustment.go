package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quietbooks/quietbooks/internal/core/ports/services"
	"github.com/quietbooks/quietbooks/internal/dto"
)

// AdjustmentHandler exposes the adjustment-request workflow and the audit
// trail.
type AdjustmentHandler struct {
	adjustments services.AdjustmentSvcFacade
	audit       services.AuditSvcFacade
}

// NewAdjustmentHandler creates a new adjustment handler.
func NewAdjustmentHandler(adjustments services.AdjustmentSvcFacade, audit services.AuditSvcFacade) *AdjustmentHandler {
	return &AdjustmentHandler{adjustments: adjustments, audit: audit}
}

// CreateRequest handles POST /adjustments.
func (h *AdjustmentHandler) CreateRequest(c *gin.Context) {
	var req dto.CreateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	request, err := h.adjustments.CreateAdjustmentRequest(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAdjustmentResponse(request))
}

// ListRequests handles GET /adjustments.
func (h *AdjustmentHandler) ListRequests(c *gin.Context) {
	requests, err := h.adjustments.ListAdjustmentRequests(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	responses := make([]dto.AdjustmentResponse, len(requests))
	for i := range requests {
		responses[i] = dto.ToAdjustmentResponse(&requests[i])
	}
	c.JSON(http.StatusOK, gin.H{"requests": responses})
}

// UpdateStatus handles PUT /adjustments/:id/status.
func (h *AdjustmentHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateAdjustmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.adjustments.UpdateAdjustmentStatus(c.Request.Context(), c.Param("id"), req.Status, req.Notes); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// LinkToEntry handles PUT /adjustments/:id/link.
func (h *AdjustmentHandler) LinkToEntry(c *gin.Context) {
	var req dto.LinkAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.adjustments.LinkAdjustmentToEntry(c.Request.Context(), c.Param("id"), req.EntryID, req.ApprovedBy); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "linked"})
}

// ListAuditLog handles GET /audit.
func (h *AdjustmentHandler) ListAuditLog(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	entries, err := h.audit.ListAuditLog(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
