package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
)

type Industry struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Slug        string    `db:"slug" json:"slug"`
	Icon        string    `db:"icon" json:"icon"`
	Description string    `db:"description" json:"description"`
	IsActive    bool      `db:"is_active" json:"is_active"`
}

// industryIcons is the explicit icon table for known industry icon names.
// Unknown names fall back to DefaultIndustryIcon instead of stringly-typed
// dynamic lookup.
const DefaultIndustryIcon = "briefcase"

var industryIcons = map[string]string{
	"technology": "cpu",
	"finance":    "trending-up",
	"healthcare": "heart-pulse",
	"education":  "graduation-cap",
	"marketing":  "megaphone",
	"design":     "palette",
	"legal":      "scale",
	"consulting": "briefcase",
	"media":      "film",
	"energy":     "zap",
}

// ResolveIcon maps a stored icon name to a renderable icon identifier.
func ResolveIcon(name string) string {
	if icon, ok := industryIcons[name]; ok {
		return icon
	}
	return DefaultIndustryIcon
}

type IndustryRepo interface {
	ListIndustries(ctx context.Context, activeOnly bool) ([]*Industry, error)
	GetIndustryBySlug(ctx context.Context, slug string) (*Industry, error)
}

func (su *SupabaseRepo) ListIndustries(ctx context.Context, activeOnly bool) ([]*Industry, error) {
	query := su.supabaseClient.From(IndustriesTable).
		Select("*", "", false)
	if activeOnly {
		query = query.Eq("is_active", "true")
	}

	raw, _, err := query.
		Order("name", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list industries: %v", err)
	}

	var industries []*Industry
	if err := json.Unmarshal(raw, &industries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal industries: %v", err)
	}
	return industries, nil
}

func (su *SupabaseRepo) GetIndustryBySlug(ctx context.Context, slug string) (*Industry, error) {
	raw, _, err := su.supabaseClient.From(IndustriesTable).
		Select("*", "", false).
		Eq("slug", slug).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get industry: %v", err)
	}

	var industries []Industry
	if err := json.Unmarshal(raw, &industries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal industry rows: %v", err)
	}
	if len(industries) == 0 {
		return nil, ErrNotFound
	}
	return &industries[0], nil
}
