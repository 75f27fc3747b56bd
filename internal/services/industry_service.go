package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mentorbay/api/internal/models"
	"github.com/patrickmn/go-cache"
)

const industriesCacheKey = "industries:active"

// IndustryView decorates an industry with its resolved icon identifier.
type IndustryView struct {
	models.Industry
	ResolvedIcon string `json:"resolved_icon"`
}

type IndustryService struct {
	industryRepo models.IndustryRepo
	cache        *cache.Cache
}

func NewIndustryService(industryRepo models.IndustryRepo) *IndustryService {
	return &IndustryService{
		industryRepo: industryRepo,
		// Reference data changes rarely; a short TTL keeps edits visible
		// without hammering the backend on every listing page.
		cache: cache.New(10*time.Minute, 15*time.Minute),
	}
}

func (is *IndustryService) ListActive(ctx context.Context) ([]*IndustryView, error) {
	if cached, found := is.cache.Get(industriesCacheKey); found {
		if views, ok := cached.([]*IndustryView); ok {
			return views, nil
		}
	}

	industries, err := is.industryRepo.ListIndustries(ctx, true)
	if err != nil {
		return nil, err
	}

	views := make([]*IndustryView, 0, len(industries))
	for _, industry := range industries {
		views = append(views, &IndustryView{
			Industry:     *industry,
			ResolvedIcon: models.ResolveIcon(industry.Icon),
		})
	}

	is.cache.Set(industriesCacheKey, views, cache.DefaultExpiration)
	return views, nil
}

func (is *IndustryService) GetBySlug(ctx context.Context, slug string) (*IndustryView, error) {
	if slug == "" {
		return nil, fmt.Errorf("industry slug is required")
	}

	industry, err := is.industryRepo.GetIndustryBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &IndustryView{
		Industry:     *industry,
		ResolvedIcon: models.ResolveIcon(industry.Icon),
	}, nil
}
