package models

import (
	"time"

	"github.com/google/uuid"
)

type ContentType string

const (
	ContentVideo ContentType = "video"
	ContentAudio ContentType = "audio"
	ContentText  ContentType = "text"
)

func (ct ContentType) IsValid() bool {
	return ct == ContentVideo || ct == ContentAudio || ct == ContentText
}

type AnswerStatus string

const (
	AnswerDraft     AnswerStatus = "draft"
	AnswerPublished AnswerStatus = "published"
)

type Answer struct {
	ID                uuid.UUID    `db:"id" json:"id"`
	QuestionID        uuid.UUID    `db:"question_id" json:"question_id"`
	MentorID          uuid.UUID    `db:"mentor_id" json:"mentor_id"`
	ContentType       ContentType  `db:"content_type" json:"content_type"`
	ContentURL        string       `db:"content_url" json:"content_url"`
	Transcript        string       `db:"transcript" json:"transcript"`
	TeleprompterNotes string       `db:"teleprompter_notes" json:"teleprompter_notes"`
	DurationSeconds   int          `db:"duration_seconds" json:"duration_seconds"`
	Status            AnswerStatus `db:"status" json:"status"`
	ViewCount         int          `db:"view_count" json:"view_count"`
	UpvoteCount       int          `db:"upvote_count" json:"upvote_count"`
	Summary           string       `db:"summary" json:"summary"`
	CreatedAt         time.Time    `db:"created_at" json:"created_at"`
}
