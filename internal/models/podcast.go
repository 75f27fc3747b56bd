package models

import (
	"time"

	"github.com/google/uuid"
)

type PodcastSeries struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Slug         string    `db:"slug" json:"slug"`
	Description  string    `db:"description" json:"description"`
	CoverURL     string    `db:"cover_url" json:"cover_url"`
	EpisodeCount int       `db:"episode_count" json:"episode_count"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type EpisodeStatus string

const (
	EpisodeDraft     EpisodeStatus = "draft"
	EpisodePublished EpisodeStatus = "published"
)

type PodcastEpisode struct {
	ID              uuid.UUID     `db:"id" json:"id"`
	SeriesID        uuid.UUID     `db:"series_id" json:"series_id"`
	Title           string        `db:"title" json:"title"`
	Description     string        `db:"description" json:"description"`
	AudioURL        string        `db:"audio_url" json:"audio_url"`
	EpisodeNumber   int           `db:"episode_number" json:"episode_number"`
	DurationSeconds int           `db:"duration_seconds" json:"duration_seconds"`
	Status          EpisodeStatus `db:"status" json:"status"`
	PublishedAt     *time.Time    `db:"published_at" json:"published_at"`
	CreatedAt       time.Time     `db:"created_at" json:"created_at"`
}

// PodcastQuestion is one question/answer pair inside an episode, ordered by
// Position.
type PodcastQuestion struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	EpisodeID  uuid.UUID  `db:"episode_id" json:"episode_id"`
	QuestionID uuid.UUID  `db:"question_id" json:"question_id"`
	AnswerID   *uuid.UUID `db:"answer_id" json:"answer_id"`
	Position   int        `db:"position" json:"position"`
}

type InvitationStatus string

const (
	InvitationPending   InvitationStatus = "pending"
	InvitationResponded InvitationStatus = "responded"
)

// EpisodeInvitation invites a mentor onto an episode. It is retrieved by its
// opaque token, never by id, so uninvited users cannot enumerate invitations.
type EpisodeInvitation struct {
	ID        uuid.UUID        `db:"id" json:"id"`
	EpisodeID uuid.UUID        `db:"episode_id" json:"episode_id"`
	MentorID  uuid.UUID        `db:"mentor_id" json:"mentor_id"`
	Token     string           `db:"token" json:"token"`
	Status    InvitationStatus `db:"status" json:"status"`
	CreatedAt time.Time        `db:"created_at" json:"created_at"`
}
