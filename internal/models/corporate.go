package models

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
)

type CorporateStatus string

const (
	CorporatePending   CorporateStatus = "pending"
	CorporateContacted CorporateStatus = "contacted"
	CorporateClosed    CorporateStatus = "closed"
)

// CorporateAccount is an enterprise signup lead.
type CorporateAccount struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	CompanyName  string          `db:"company_name" json:"company_name" validate:"required"`
	ContactName  string          `db:"contact_name" json:"contact_name" validate:"required"`
	ContactEmail string          `db:"contact_email" json:"contact_email" validate:"required,email"`
	Phone        string          `db:"phone" json:"phone"`
	CompanySize  string          `db:"company_size" json:"company_size"`
	Interest     string          `db:"interest" json:"interest"`
	Status       CorporateStatus `db:"status" json:"status"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

type CorporateRepo interface {
	CreateCorporateAccount(ctx context.Context, account *CorporateAccount) (*CorporateAccount, error)
	ListCorporateAccounts(ctx context.Context, offset, limit int) ([]*CorporateAccount, int, error)
}

func (su *SupabaseRepo) CreateCorporateAccount(ctx context.Context, account *CorporateAccount) (*CorporateAccount, error) {
	data, count, err := su.supabaseClient.From(CorporateAccountsTable).
		Insert(account, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create corporate account: %v", err)
	}

	var created []CorporateAccount
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created corporate account: %v", err)
	}
	if count == 0 || len(created) == 0 {
		return nil, fmt.Errorf("no corporate account data returned after insert")
	}
	return &created[0], nil
}

func (su *SupabaseRepo) ListCorporateAccounts(ctx context.Context, offset, limit int) ([]*CorporateAccount, int, error) {
	raw, count, err := su.supabaseClient.From(CorporateAccountsTable).
		Select("*", "exact", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Range(offset, offset+limit-1, "").
		Execute()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list corporate accounts: %v", err)
	}

	var accounts []*CorporateAccount
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return nil, 0, fmt.Errorf("failed to unmarshal corporate accounts: %v", err)
	}
	return accounts, int(count), nil
}
