package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quietbooks/quietbooks/internal/core/ports/services"
	"github.com/quietbooks/quietbooks/internal/dto"
)

// JournalHandler exposes journal entry endpoints.
type JournalHandler struct {
	posting services.PostingSvcFacade
}

// NewJournalHandler creates a new journal handler.
func NewJournalHandler(posting services.PostingSvcFacade) *JournalHandler {
	return &JournalHandler{posting: posting}
}

// RecordEntry handles POST /entries.
func (h *JournalHandler) RecordEntry(c *gin.Context) {
	var req dto.RecordEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := h.posting.RecordEntry(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// GetEntry handles GET /entries/:id.
func (h *JournalHandler) GetEntry(c *gin.Context) {
	entry, err := h.posting.GetEntryByID(c.Request.Context(), c.Param("id"), true)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// ListEntries handles GET /entries.
func (h *JournalHandler) ListEntries(c *gin.Context) {
	var periodID *string
	if p := c.Query("periodID"); p != "" {
		periodID = &p
	}
	entries, err := h.posting.ListEntries(c.Request.Context(), periodID)
	if err != nil {
		respondError(c, err)
		return
	}
	responses := make([]dto.EntryResponse, len(entries))
	for i := range entries {
		responses[i] = dto.ToEntryResponse(&entries[i])
	}
	c.JSON(http.StatusOK, gin.H{"entries": responses})
}

// DeleteEntry handles DELETE /entries/:id.
func (h *JournalHandler) DeleteEntry(c *gin.Context) {
	if err := h.posting.DeleteEntry(c.Request.Context(), c.Param("id"), c.Query("deletedBy")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
