package dto

import (
	"github.com/quietbooks/quietbooks/internal/core/domain"
)

// CreateAccountRequest is the payload for adding an account to the chart.
type CreateAccountRequest struct {
	Code       string                 `json:"code" binding:"required"`
	Name       string                 `json:"name" binding:"required"`
	Category   domain.AccountCategory `json:"category" binding:"required"`
	NormalSide domain.Side            `json:"normalSide,omitempty"` // defaults from category when empty
	CreatedBy  string                 `json:"createdBy,omitempty"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID  string `json:"accountID"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	NormalSide string `json:"normalSide"`
	IsActive   bool   `json:"isActive"`
}

// ToAccountResponse converts a domain account to its response DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:  a.AccountID,
		Code:       a.Code,
		Name:       a.Name,
		Category:   string(a.Category),
		NormalSide: string(a.NormalSide),
		IsActive:   a.IsActive,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
