package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mentorbay/api/internal/models"
	"github.com/patrickmn/go-cache"
)

const chaptersCacheKey = "chapters:active"

type ChapterService struct {
	chapterRepo      models.ChapterRepo
	profileRepo      models.ProfileRepo
	allowedCountries map[string]struct{}
	cache            *cache.Cache
}

func NewChapterService(chapterRepo models.ChapterRepo, profileRepo models.ProfileRepo, allowedCountries []string) *ChapterService {
	allowed := make(map[string]struct{}, len(allowedCountries))
	for _, country := range allowedCountries {
		allowed[strings.ToLower(strings.TrimSpace(country))] = struct{}{}
	}
	return &ChapterService{
		chapterRepo:      chapterRepo,
		profileRepo:      profileRepo,
		allowedCountries: allowed,
		cache:            cache.New(10*time.Minute, 15*time.Minute),
	}
}

func (cs *ChapterService) ListChapters(ctx context.Context) ([]*models.RegionalChapter, error) {
	if cached, found := cs.cache.Get(chaptersCacheKey); found {
		if chapters, ok := cached.([]*models.RegionalChapter); ok {
			return chapters, nil
		}
	}

	chapters, err := cs.chapterRepo.ListChapters(ctx, true)
	if err != nil {
		return nil, err
	}
	cs.cache.Set(chaptersCacheKey, chapters, cache.DefaultExpiration)
	return chapters, nil
}

// ChapterDetail bundles a chapter with its leadership roster.
type ChapterDetail struct {
	Chapter    *models.RegionalChapter     `json:"chapter"`
	Leadership []*models.ChapterLeadership `json:"leadership"`
	Members    []*models.ChapterMembership `json:"members"`
}

func (cs *ChapterService) GetChapter(ctx context.Context, slug string) (*ChapterDetail, error) {
	chapter, err := cs.chapterRepo.GetChapterBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	leadership, err := cs.chapterRepo.ListChapterLeadership(ctx, chapter.ID)
	if err != nil {
		return nil, err
	}
	members, err := cs.chapterRepo.ListChapterMemberships(ctx, chapter.ID)
	if err != nil {
		return nil, err
	}

	return &ChapterDetail{Chapter: chapter, Leadership: leadership, Members: members}, nil
}

// CountryAllowed reports whether the profile country passes the join gate.
func (cs *ChapterService) CountryAllowed(country string) bool {
	_, ok := cs.allowedCountries[strings.ToLower(strings.TrimSpace(country))]
	return ok
}

// RequestToJoin validates the join gate before any insert: the requester must
// be a mentor and their profile country must be on the allow-list. Duplicate
// memberships and pending requests are rejected.
func (cs *ChapterService) RequestToJoin(ctx context.Context, chapterSlug string, profileID uuid.UUID, message string, accessToken string) (*models.ChapterJoinRequest, error) {
	chapter, err := cs.chapterRepo.GetChapterBySlug(ctx, chapterSlug)
	if err != nil {
		return nil, err
	}

	profile, err := cs.profileRepo.GetProfile(ctx, profileID, accessToken)
	if err != nil {
		return nil, err
	}
	if profile.Role != models.RoleMentor {
		return nil, fmt.Errorf("only mentors may join a chapter")
	}
	if !cs.CountryAllowed(profile.Country) {
		return nil, fmt.Errorf("chapter membership is not available in %s yet", profile.Country)
	}

	if _, err := cs.chapterRepo.GetMembership(ctx, chapter.ID, profileID); err == nil {
		return nil, fmt.Errorf("already a chapter member")
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	if existing, err := cs.chapterRepo.GetJoinRequest(ctx, chapter.ID, profileID); err == nil {
		if existing.Status == models.JoinRequestPending {
			return nil, fmt.Errorf("a join request is already pending")
		}
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	request := &models.ChapterJoinRequest{
		ID:        uuid.New(),
		ChapterID: chapter.ID,
		ProfileID: profileID,
		Status:    models.JoinRequestPending,
		Message:   strings.TrimSpace(message),
		CreatedAt: time.Now(),
	}

	return cs.chapterRepo.CreateJoinRequest(ctx, request, accessToken)
}
