package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
)

type ChapterRepo interface {
	ListChapters(ctx context.Context, activeOnly bool) ([]*RegionalChapter, error)
	GetChapterBySlug(ctx context.Context, slug string) (*RegionalChapter, error)
	ListChapterLeadership(ctx context.Context, chapterID uuid.UUID) ([]*ChapterLeadership, error)
	ListChapterMemberships(ctx context.Context, chapterID uuid.UUID) ([]*ChapterMembership, error)
	GetMembership(ctx context.Context, chapterID, profileID uuid.UUID) (*ChapterMembership, error)
	CreateJoinRequest(ctx context.Context, request *ChapterJoinRequest, accessToken string) (*ChapterJoinRequest, error)
	GetJoinRequest(ctx context.Context, chapterID, profileID uuid.UUID) (*ChapterJoinRequest, error)
}

func (su *SupabaseRepo) ListChapters(ctx context.Context, activeOnly bool) ([]*RegionalChapter, error) {
	query := su.supabaseClient.From(ChaptersTable).
		Select("*", "", false)
	if activeOnly {
		query = query.Eq("is_active", "true")
	}

	raw, _, err := query.
		Order("name", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list chapters: %v", err)
	}

	var chapters []*RegionalChapter
	if err := json.Unmarshal(raw, &chapters); err != nil {
		return nil, fmt.Errorf("failed to unmarshal chapters: %v", err)
	}
	return chapters, nil
}

func (su *SupabaseRepo) GetChapterBySlug(ctx context.Context, slug string) (*RegionalChapter, error) {
	raw, _, err := su.supabaseClient.From(ChaptersTable).
		Select("*", "", false).
		Eq("slug", slug).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get chapter: %v", err)
	}

	var chapters []RegionalChapter
	if err := json.Unmarshal(raw, &chapters); err != nil {
		return nil, fmt.Errorf("failed to unmarshal chapter rows: %v", err)
	}
	if len(chapters) == 0 {
		return nil, ErrNotFound
	}
	return &chapters[0], nil
}

func (su *SupabaseRepo) ListChapterLeadership(ctx context.Context, chapterID uuid.UUID) ([]*ChapterLeadership, error) {
	raw, _, err := su.supabaseClient.From(ChapterLeadershipTable).
		Select("*", "", false).
		Eq("chapter_id", chapterID.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list chapter leadership: %v", err)
	}

	var roster []*ChapterLeadership
	if err := json.Unmarshal(raw, &roster); err != nil {
		return nil, fmt.Errorf("failed to unmarshal leadership rows: %v", err)
	}
	return roster, nil
}

func (su *SupabaseRepo) ListChapterMemberships(ctx context.Context, chapterID uuid.UUID) ([]*ChapterMembership, error) {
	raw, _, err := su.supabaseClient.From(ChapterMembershipsTable).
		Select("*", "", false).
		Eq("chapter_id", chapterID.String()).
		Eq("status", string(MembershipActive)).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list chapter memberships: %v", err)
	}

	var members []*ChapterMembership
	if err := json.Unmarshal(raw, &members); err != nil {
		return nil, fmt.Errorf("failed to unmarshal membership rows: %v", err)
	}
	return members, nil
}

func (su *SupabaseRepo) GetMembership(ctx context.Context, chapterID, profileID uuid.UUID) (*ChapterMembership, error) {
	raw, _, err := su.supabaseClient.From(ChapterMembershipsTable).
		Select("*", "", false).
		Eq("chapter_id", chapterID.String()).
		Eq("profile_id", profileID.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get membership: %v", err)
	}

	var members []ChapterMembership
	if err := json.Unmarshal(raw, &members); err != nil {
		return nil, fmt.Errorf("failed to unmarshal membership rows: %v", err)
	}
	if len(members) == 0 {
		return nil, ErrNotFound
	}
	return &members[0], nil
}

func (su *SupabaseRepo) CreateJoinRequest(ctx context.Context, request *ChapterJoinRequest, accessToken string) (*ChapterJoinRequest, error) {
	client, err := su.clientFor(accessToken)
	if err != nil {
		return nil, err
	}

	data, count, err := client.From(ChapterJoinRequestsTable).
		Insert(request, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create join request: %v", err)
	}

	var created []ChapterJoinRequest
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created join request: %v", err)
	}
	if count == 0 || len(created) == 0 {
		return nil, fmt.Errorf("no join request data returned after insert")
	}
	return &created[0], nil
}

func (su *SupabaseRepo) GetJoinRequest(ctx context.Context, chapterID, profileID uuid.UUID) (*ChapterJoinRequest, error) {
	raw, _, err := su.supabaseClient.From(ChapterJoinRequestsTable).
		Select("*", "", false).
		Eq("chapter_id", chapterID.String()).
		Eq("profile_id", profileID.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get join request: %v", err)
	}

	var requests []ChapterJoinRequest
	if err := json.Unmarshal(raw, &requests); err != nil {
		return nil, fmt.Errorf("failed to unmarshal join request rows: %v", err)
	}
	if len(requests) == 0 {
		return nil, ErrNotFound
	}
	return &requests[0], nil
}
