package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mentorbay/api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePodcastRepo struct {
	episode    *models.PodcastEpisode
	invitation *models.EpisodeInvitation
}

func (f *fakePodcastRepo) ListSeries(ctx context.Context) ([]*models.PodcastSeries, error) {
	return nil, nil
}

func (f *fakePodcastRepo) ListEpisodes(ctx context.Context, seriesID uuid.UUID, offset, limit int) ([]*models.PodcastEpisode, int, error) {
	return nil, 0, nil
}

func (f *fakePodcastRepo) GetEpisodeByID(ctx context.Context, id uuid.UUID) (*models.PodcastEpisode, error) {
	if f.episode == nil || f.episode.ID != id {
		return nil, models.ErrNotFound
	}
	return f.episode, nil
}

func (f *fakePodcastRepo) ListEpisodeQuestions(ctx context.Context, episodeID uuid.UUID) ([]*models.PodcastQuestion, error) {
	return nil, nil
}

func (f *fakePodcastRepo) CreateInvitation(ctx context.Context, invitation *models.EpisodeInvitation, accessToken string) (*models.EpisodeInvitation, error) {
	f.invitation = invitation
	return invitation, nil
}

func (f *fakePodcastRepo) GetInvitationByToken(ctx context.Context, token string) (*models.EpisodeInvitation, error) {
	if f.invitation == nil || f.invitation.Token != token {
		return nil, models.ErrNotFound
	}
	return f.invitation, nil
}

func (f *fakePodcastRepo) UpdateInvitationStatus(ctx context.Context, id uuid.UUID, status models.InvitationStatus, accessToken string) error {
	f.invitation.Status = status
	return nil
}

func TestInviteGuestMintsOpaqueToken(t *testing.T) {
	repo := &fakePodcastRepo{episode: &models.PodcastEpisode{ID: uuid.New()}}
	ps := NewPodcastService(repo)

	invitation, err := ps.InviteGuest(context.Background(), repo.episode.ID, uuid.New(), "")
	require.NoError(t, err)
	assert.Equal(t, models.InvitationPending, invitation.Status)
	assert.NotContains(t, invitation.Token, "-")
	assert.Len(t, invitation.Token, 64)
}

func TestRespondToInvitationFlipsOnce(t *testing.T) {
	mentor := uuid.New()
	repo := &fakePodcastRepo{invitation: &models.EpisodeInvitation{
		ID:       uuid.New(),
		MentorID: mentor,
		Token:    "tok",
		Status:   models.InvitationPending,
	}}
	ps := NewPodcastService(repo)

	invitation, err := ps.RespondToInvitation(context.Background(), "tok", mentor, "")
	require.NoError(t, err)
	assert.Equal(t, models.InvitationResponded, invitation.Status)

	_, err = ps.RespondToInvitation(context.Background(), "tok", mentor, "")
	assert.Error(t, err, "a responded invitation must not flip again")
}

func TestRespondToInvitationChecksMentor(t *testing.T) {
	repo := &fakePodcastRepo{invitation: &models.EpisodeInvitation{
		ID:       uuid.New(),
		MentorID: uuid.New(),
		Token:    "tok",
		Status:   models.InvitationPending,
	}}
	ps := NewPodcastService(repo)

	_, err := ps.RespondToInvitation(context.Background(), "tok", uuid.New(), "")
	assert.Error(t, err)
}

func TestInviteGuestUnknownEpisode(t *testing.T) {
	ps := NewPodcastService(&fakePodcastRepo{})

	_, err := ps.InviteGuest(context.Background(), uuid.New(), uuid.New(), "")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
