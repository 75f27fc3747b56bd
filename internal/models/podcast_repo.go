package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
)

type PodcastRepo interface {
	ListSeries(ctx context.Context) ([]*PodcastSeries, error)
	ListEpisodes(ctx context.Context, seriesID uuid.UUID, offset, limit int) ([]*PodcastEpisode, int, error)
	GetEpisodeByID(ctx context.Context, id uuid.UUID) (*PodcastEpisode, error)
	ListEpisodeQuestions(ctx context.Context, episodeID uuid.UUID) ([]*PodcastQuestion, error)
	CreateInvitation(ctx context.Context, invitation *EpisodeInvitation, accessToken string) (*EpisodeInvitation, error)
	GetInvitationByToken(ctx context.Context, token string) (*EpisodeInvitation, error)
	UpdateInvitationStatus(ctx context.Context, id uuid.UUID, status InvitationStatus, accessToken string) error
}

func (su *SupabaseRepo) ListSeries(ctx context.Context) ([]*PodcastSeries, error) {
	raw, _, err := su.supabaseClient.From(PodcastSeriesTable).
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list podcast series: %v", err)
	}

	var series []*PodcastSeries
	if err := json.Unmarshal(raw, &series); err != nil {
		return nil, fmt.Errorf("failed to unmarshal podcast series: %v", err)
	}
	return series, nil
}

func (su *SupabaseRepo) ListEpisodes(ctx context.Context, seriesID uuid.UUID, offset, limit int) ([]*PodcastEpisode, int, error) {
	query := su.supabaseClient.From(PodcastEpisodesTable).
		Select("*", "exact", false).
		Eq("status", string(EpisodePublished))
	if seriesID != uuid.Nil {
		query = query.Eq("series_id", seriesID.String())
	}

	raw, count, err := query.
		Order("episode_number", &postgrest.OrderOpts{Ascending: false}).
		Range(offset, offset+limit-1, "").
		Execute()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list episodes: %v", err)
	}

	var episodes []*PodcastEpisode
	if err := json.Unmarshal(raw, &episodes); err != nil {
		return nil, 0, fmt.Errorf("failed to unmarshal episodes: %v", err)
	}
	return episodes, int(count), nil
}

func (su *SupabaseRepo) GetEpisodeByID(ctx context.Context, id uuid.UUID) (*PodcastEpisode, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid episode ID")
	}

	raw, _, err := su.supabaseClient.From(PodcastEpisodesTable).
		Select("*", "", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get episode: %v", err)
	}

	var episodes []PodcastEpisode
	if err := json.Unmarshal(raw, &episodes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal episode rows: %v", err)
	}
	if len(episodes) == 0 {
		return nil, ErrNotFound
	}
	return &episodes[0], nil
}

func (su *SupabaseRepo) ListEpisodeQuestions(ctx context.Context, episodeID uuid.UUID) ([]*PodcastQuestion, error) {
	raw, _, err := su.supabaseClient.From(PodcastQuestionsTable).
		Select("*", "", false).
		Eq("episode_id", episodeID.String()).
		Order("position", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list episode questions: %v", err)
	}

	var questions []*PodcastQuestion
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal episode questions: %v", err)
	}
	return questions, nil
}

func (su *SupabaseRepo) CreateInvitation(ctx context.Context, invitation *EpisodeInvitation, accessToken string) (*EpisodeInvitation, error) {
	client, err := su.clientFor(accessToken)
	if err != nil {
		return nil, err
	}

	data, count, err := client.From(EpisodeInvitationsTable).
		Insert(invitation, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create invitation: %v", err)
	}

	var created []EpisodeInvitation
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created invitation: %v", err)
	}
	if count == 0 || len(created) == 0 {
		return nil, fmt.Errorf("no invitation data returned after insert")
	}
	return &created[0], nil
}

func (su *SupabaseRepo) GetInvitationByToken(ctx context.Context, token string) (*EpisodeInvitation, error) {
	if token == "" {
		return nil, fmt.Errorf("invitation token is required")
	}

	raw, _, err := su.supabaseClient.From(EpisodeInvitationsTable).
		Select("*", "", false).
		Eq("token", token).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get invitation: %v", err)
	}

	var invitations []EpisodeInvitation
	if err := json.Unmarshal(raw, &invitations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal invitation rows: %v", err)
	}
	if len(invitations) == 0 {
		return nil, ErrNotFound
	}
	return &invitations[0], nil
}

func (su *SupabaseRepo) UpdateInvitationStatus(ctx context.Context, id uuid.UUID, status InvitationStatus, accessToken string) error {
	client, err := su.clientFor(accessToken)
	if err != nil {
		return err
	}

	_, count, err := client.From(EpisodeInvitationsTable).
		Update(map[string]interface{}{"status": status}, "", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to update invitation status: %v", err)
	}
	if count == 0 {
		return fmt.Errorf("no invitation found to update")
	}
	return nil
}
