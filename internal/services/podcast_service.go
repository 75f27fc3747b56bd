package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mentorbay/api/internal/models"
)

type PodcastService struct {
	podcastRepo models.PodcastRepo
}

func NewPodcastService(podcastRepo models.PodcastRepo) *PodcastService {
	return &PodcastService{
		podcastRepo: podcastRepo,
	}
}

func (psvc *PodcastService) ListSeries(ctx context.Context) ([]*models.PodcastSeries, error) {
	return psvc.podcastRepo.ListSeries(ctx)
}

func (psvc *PodcastService) ListEpisodes(ctx context.Context, seriesID uuid.UUID, offset, limit int) ([]*models.PodcastEpisode, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}
	return psvc.podcastRepo.ListEpisodes(ctx, seriesID, offset, limit)
}

// EpisodeDetail is an episode with its ordered question/answer pairs.
type EpisodeDetail struct {
	Episode   *models.PodcastEpisode    `json:"episode"`
	Questions []*models.PodcastQuestion `json:"questions"`
}

func (psvc *PodcastService) GetEpisode(ctx context.Context, id uuid.UUID) (*EpisodeDetail, error) {
	episode, err := psvc.podcastRepo.GetEpisodeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	questions, err := psvc.podcastRepo.ListEpisodeQuestions(ctx, episode.ID)
	if err != nil {
		return nil, err
	}

	return &EpisodeDetail{Episode: episode, Questions: questions}, nil
}

// InviteGuest creates a pending invitation keyed by an opaque token. The
// token is what gets mailed to the mentor; the id never leaves the backend.
func (psvc *PodcastService) InviteGuest(ctx context.Context, episodeID, mentorID uuid.UUID, accessToken string) (*models.EpisodeInvitation, error) {
	if episodeID == uuid.Nil || mentorID == uuid.Nil {
		return nil, fmt.Errorf("invalid episode or mentor ID")
	}

	if _, err := psvc.podcastRepo.GetEpisodeByID(ctx, episodeID); err != nil {
		return nil, err
	}

	invitation := &models.EpisodeInvitation{
		ID:        uuid.New(),
		EpisodeID: episodeID,
		MentorID:  mentorID,
		Token:     strings.ReplaceAll(uuid.New().String()+uuid.New().String(), "-", ""),
		Status:    models.InvitationPending,
		CreatedAt: time.Now(),
	}

	return psvc.podcastRepo.CreateInvitation(ctx, invitation, accessToken)
}

func (psvc *PodcastService) GetInvitation(ctx context.Context, token string) (*models.EpisodeInvitation, error) {
	return psvc.podcastRepo.GetInvitationByToken(ctx, token)
}

// RespondToInvitation flips pending to responded exactly once.
func (psvc *PodcastService) RespondToInvitation(ctx context.Context, token string, mentorID uuid.UUID, accessToken string) (*models.EpisodeInvitation, error) {
	invitation, err := psvc.podcastRepo.GetInvitationByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if invitation.MentorID != mentorID {
		return nil, fmt.Errorf("invitation belongs to another mentor")
	}
	if invitation.Status != models.InvitationPending {
		return nil, fmt.Errorf("invitation has already been responded to")
	}

	if err := psvc.podcastRepo.UpdateInvitationStatus(ctx, invitation.ID, models.InvitationResponded, accessToken); err != nil {
		return nil, err
	}

	invitation.Status = models.InvitationResponded
	return invitation, nil
}
