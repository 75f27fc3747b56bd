package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mentorbay/api/internal/models"
)

type CorporateService struct {
	corporateRepo models.CorporateRepo
}

func NewCorporateService(corporateRepo models.CorporateRepo) *CorporateService {
	return &CorporateService{
		corporateRepo: corporateRepo,
	}
}

func (cs *CorporateService) CreateLead(ctx context.Context, account *models.CorporateAccount) (*models.CorporateAccount, error) {
	if err := models.Validate.Struct(account); err != nil {
		return nil, fmt.Errorf("invalid corporate signup data: %v", err)
	}

	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	account.Status = models.CorporatePending
	account.CreatedAt = time.Now()

	return cs.corporateRepo.CreateCorporateAccount(ctx, account)
}

func (cs *CorporateService) ListLeads(ctx context.Context, offset, limit int) ([]*models.CorporateAccount, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}
	return cs.corporateRepo.ListCorporateAccounts(ctx, offset, limit)
}
