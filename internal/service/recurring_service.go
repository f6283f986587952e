package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/akaur/Budget-Buddy-Backend/internal/api/request"
	"github.com/akaur/Budget-Buddy-Backend/internal/apperrors"
	"github.com/akaur/Budget-Buddy-Backend/internal/model"
	"github.com/akaur/Budget-Buddy-Backend/internal/repository"
)

// RecurringService manages recurring expense templates and generates the
// monthly expenses they describe.
type RecurringService struct {
	recurringRepo *repository.RecurringRepository
	expenseRepo   *repository.ExpenseRepository
	accountRepo   *repository.AccountRepository
}

// NewRecurringService creates a new RecurringService with the provided repository dependencies.
func NewRecurringService(
	recurringRepo *repository.RecurringRepository,
	expenseRepo *repository.ExpenseRepository,
	accountRepo *repository.AccountRepository,
) *RecurringService {
	return &RecurringService{
		recurringRepo: recurringRepo,
		expenseRepo:   expenseRepo,
		accountRepo:   accountRepo,
	}
}

// GetTemplates retrieves recurring templates, optionally only active ones.
func (s *RecurringService) GetTemplates(ctx context.Context, activeOnly bool) ([]model.RecurringTemplate, error) {
	return s.recurringRepo.GetTemplates(ctx, activeOnly)
}

// GetTemplate retrieves a single template by its ID.
//
// Returns:
//   - apperrors.ErrTemplateNotFound if the template doesn't exist
func (s *RecurringService) GetTemplate(ctx context.Context, id string) (model.RecurringTemplate, error) {
	template, err := s.recurringRepo.GetTemplate(ctx, id)
	if err != nil {
		return model.RecurringTemplate{}, err
	}
	if template.ID == "" {
		return model.RecurringTemplate{}, apperrors.ErrTemplateNotFound
	}
	return template, nil
}

// CreateTemplate creates a recurring template. BillingDay must be a valid
// day of month; days past a month's end generate on its last day.
func (s *RecurringService) CreateTemplate(ctx context.Context, req request.CreateRecurringRequest) (model.RecurringTemplate, error) {
	if req.BillingDay < 1 || req.BillingDay > 31 {
		return model.RecurringTemplate{}, apperrors.ErrInvalidBillingDay
	}

	account, err := s.accountRepo.GetAccount(ctx, req.AccountID)
	if err != nil {
		return model.RecurringTemplate{}, err
	}
	if account.ID == "" {
		return model.RecurringTemplate{}, apperrors.ErrAccountNotFound
	}

	template := model.RecurringTemplate{
		ID:          uuid.New().String(),
		AccountID:   req.AccountID,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		BillingDay:  req.BillingDay,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}

	if err := s.recurringRepo.InsertTemplate(ctx, template); err != nil {
		return model.RecurringTemplate{}, fmt.Errorf("failed to create recurring template: %w", err)
	}
	return template, nil
}

// UpdateTemplate applies the non-nil fields of the request to a template.
func (s *RecurringService) UpdateTemplate(ctx context.Context, id string, req request.UpdateRecurringRequest) (model.RecurringTemplate, error) {
	template, err := s.GetTemplate(ctx, id)
	if err != nil {
		return model.RecurringTemplate{}, err
	}

	if req.AccountID != nil {
		account, err := s.accountRepo.GetAccount(ctx, *req.AccountID)
		if err != nil {
			return model.RecurringTemplate{}, err
		}
		if account.ID == "" {
			return model.RecurringTemplate{}, apperrors.ErrAccountNotFound
		}
		template.AccountID = *req.AccountID
	}
	if req.Category != nil {
		template.Category = *req.Category
	}
	if req.Description != nil {
		template.Description = *req.Description
	}
	if req.Amount != nil {
		template.Amount = *req.Amount
	}
	if req.BillingDay != nil {
		if *req.BillingDay < 1 || *req.BillingDay > 31 {
			return model.RecurringTemplate{}, apperrors.ErrInvalidBillingDay
		}
		template.BillingDay = *req.BillingDay
	}
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}

	affected, err := s.recurringRepo.UpdateTemplate(ctx, template)
	if err != nil {
		return model.RecurringTemplate{}, fmt.Errorf("failed to update recurring template: %w", err)
	}
	if affected == 0 {
		return model.RecurringTemplate{}, apperrors.ErrTemplateNotFound
	}
	return template, nil
}

// DeleteTemplate removes a template. Previously generated expenses are kept.
//
// Returns:
//   - apperrors.ErrTemplateNotFound if the template doesn't exist
func (s *RecurringService) DeleteTemplate(ctx context.Context, id string) error {
	affected, err := s.recurringRepo.DeleteTemplate(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete recurring template: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTemplateNotFound
	}
	return nil
}

// ProcessDue generates expenses for every active template whose billing
// day has passed this month and that has not generated yet. Returns the
// expenses created. Safe to run repeatedly; generation is once per
// template per month.
func (s *RecurringService) ProcessDue(ctx context.Context, now time.Time) ([]model.Expense, error) {
	templates, err := s.recurringRepo.GetTemplates(ctx, true)
	if err != nil {
		return nil, err
	}

	generated := []model.Expense{}
	for _, template := range templates {
		if !template.DueForGeneration(now) {
			continue
		}

		expense := model.Expense{
			ID:                  uuid.New().String(),
			AccountID:           template.AccountID,
			Category:            template.Category,
			Description:         template.Description,
			Amount:              template.Amount,
			Timestamp:           template.GenerationDate(now),
			IsRecurring:         true,
			RecurringTemplateID: template.ID,
			AutoGenerated:       true,
			CreatedAt:           time.Now(),
		}

		if err := s.expenseRepo.InsertExpense(ctx, expense); err != nil {
			return generated, fmt.Errorf("failed to generate expense for template %s: %w", template.ID, err)
		}
		if err := s.recurringRepo.MarkGenerated(ctx, template.ID, now.Month(), now.Year()); err != nil {
			return generated, err
		}
		generated = append(generated, expense)
	}
	return generated, nil
}
