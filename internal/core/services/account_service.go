package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/quietbooks/quietbooks/internal/apperrors"
	"github.com/quietbooks/quietbooks/internal/core/domain"
	portsrepo "github.com/quietbooks/quietbooks/internal/core/ports/repositories"
	portssvc "github.com/quietbooks/quietbooks/internal/core/ports/services"
	"github.com/quietbooks/quietbooks/internal/dto"
)

// accountService implements AccountSvcFacade.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *accountService) GetAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByName(ctx, name)
}

func (s *accountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	return s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
}

func (s *accountService) ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, activeOnly)
}

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	if !req.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown account category %q", apperrors.ErrValidation, req.Category)
	}
	normalSide := req.NormalSide
	if normalSide == "" {
		normalSide = req.Category.NormalSide()
	}
	if normalSide != domain.Debit && normalSide != domain.Credit {
		return nil, fmt.Errorf("%w: unknown normal side %q", apperrors.ErrValidation, req.NormalSide)
	}

	now := time.Now()
	account := domain.Account{
		AccountID:  uuid.NewString(),
		Code:       req.Code,
		Name:       req.Name,
		Category:   req.Category,
		NormalSide: normalSide,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: req.CreatedBy,
		},
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, "Failed to save account", "code", req.Code, "error", err)
		return nil, err
	}
	s.LogInfo(ctx, "Account created", "code", account.Code, "name", account.Name)
	return &account, nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, accountID string, updatedBy string) error {
	if err := s.accountRepo.DeactivateAccount(ctx, accountID, updatedBy); err != nil {
		s.LogError(ctx, "Failed to deactivate account", "accountID", accountID, "error", err)
		return err
	}
	s.LogInfo(ctx, "Account deactivated", "accountID", accountID)
	return nil
}

func (s *accountService) SeedDefaultChart(ctx context.Context, createdBy string) error {
	if err := s.accountRepo.SeedDefaultChart(ctx, createdBy); err != nil {
		s.LogError(ctx, "Failed to seed chart of accounts", "error", err)
		return err
	}
	s.LogInfo(ctx, "Default chart of accounts ready")
	return nil
}
