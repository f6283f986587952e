package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/akaur/Budget-Buddy-Backend/internal/api/request"
	"github.com/akaur/Budget-Buddy-Backend/internal/apperrors"
	"github.com/akaur/Budget-Buddy-Backend/internal/cycle"
	"github.com/akaur/Budget-Buddy-Backend/internal/model"
	"github.com/akaur/Budget-Buddy-Backend/internal/repository"
)

// AccountService handles account-related business logic operations.
type AccountService struct {
	accountRepo *repository.AccountRepository
}

// NewAccountService creates a new AccountService with the provided repository dependencies.
func NewAccountService(accountRepo *repository.AccountRepository) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

// GetAccounts retrieves accounts, excluding archived ones unless requested.
func (s *AccountService) GetAccounts(ctx context.Context, filter model.AccountFilter) ([]model.Account, error) {
	return s.accountRepo.GetAccounts(ctx, filter)
}

// GetAccount retrieves a single account by its ID.
//
// Returns:
//   - apperrors.ErrAccountNotFound if the account doesn't exist
func (s *AccountService) GetAccount(ctx context.Context, id string) (model.Account, error) {
	account, err := s.accountRepo.GetAccount(ctx, id)
	if err != nil {
		return model.Account{}, err
	}
	if account.ID == "" {
		return model.Account{}, apperrors.ErrAccountNotFound
	}
	return account, nil
}

// CreateAccount creates a new account. An anchor day of zero leaves the
// account in calendar-month resolution; 1-31 configures a billing cycle.
func (s *AccountService) CreateAccount(ctx context.Context, req request.CreateAccountRequest) (model.Account, error) {
	if req.AnchorDay < 0 || req.AnchorDay > 31 {
		return model.Account{}, cycle.ErrInvalidAnchorDay
	}

	account := model.Account{
		ID:        uuid.New().String(),
		Name:      req.Name,
		AnchorDay: req.AnchorDay,
		CreatedAt: time.Now(),
	}

	if err := s.accountRepo.InsertAccount(ctx, account); err != nil {
		return model.Account{}, fmt.Errorf("failed to create account: %w", err)
	}
	return account, nil
}

// UpdateAccount applies the non-nil fields of the request to an account.
// Setting AnchorDay to zero clears the billing anchor; the account falls
// back to calendar-month resolution.
func (s *AccountService) UpdateAccount(ctx context.Context, id string, req request.UpdateAccountRequest) (model.Account, error) {
	account, err := s.GetAccount(ctx, id)
	if err != nil {
		return model.Account{}, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.AnchorDay != nil {
		if *req.AnchorDay < 0 || *req.AnchorDay > 31 {
			return model.Account{}, cycle.ErrInvalidAnchorDay
		}
		account.AnchorDay = *req.AnchorDay
	}
	if req.IsArchived != nil {
		account.IsArchived = *req.IsArchived
	}

	affected, err := s.accountRepo.UpdateAccount(ctx, account)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to update account: %w", err)
	}
	if affected == 0 {
		return model.Account{}, apperrors.ErrAccountNotFound
	}
	return account, nil
}

// ArchiveAccount hides an account from listings without deleting its
// expense history.
func (s *AccountService) ArchiveAccount(ctx context.Context, id string) error {
	archived := true
	_, err := s.UpdateAccount(ctx, id, request.UpdateAccountRequest{IsArchived: &archived})
	return err
}
