package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quietbooks/quietbooks/internal/core/ports/services"
	"github.com/quietbooks/quietbooks/internal/dto"
)

// AccountHandler exposes chart-of-accounts endpoints.
type AccountHandler struct {
	accounts services.AccountSvcFacade
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(accounts services.AccountSvcFacade) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// ListAccounts handles GET /accounts.
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	activeOnly := c.Query("all") != "true"
	accounts, err := h.accounts.ListAccounts(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accounts": dto.ToAccountResponses(accounts)})
}

// GetAccount handles GET /accounts/:id.
func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, err := h.accounts.GetAccountByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// CreateAccount handles POST /accounts.
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	account, err := h.accounts.CreateAccount(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// DeactivateAccount handles DELETE /accounts/:id.
func (h *AccountHandler) DeactivateAccount(c *gin.Context) {
	if err := h.accounts.DeactivateAccount(c.Request.Context(), c.Param("id"), c.Query("updatedBy")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SeedChart handles POST /accounts/seed.
func (h *AccountHandler) SeedChart(c *gin.Context) {
	if err := h.accounts.SeedDefaultChart(c.Request.Context(), c.Query("createdBy")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "seeded"})
}
