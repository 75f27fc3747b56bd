package models

import (
	"time"

	"github.com/google/uuid"
)

type QuestionStatus string

const (
	QuestionOpen     QuestionStatus = "open"
	QuestionAnswered QuestionStatus = "answered"
	QuestionClosed   QuestionStatus = "closed"
)

type ResponseFormat string

const (
	FormatQA      ResponseFormat = "qa"
	FormatPodcast ResponseFormat = "podcast"
)

func (rf ResponseFormat) IsValid() bool {
	return rf == FormatQA || rf == FormatPodcast
}

// Question is a seeker's ask. TargetedMentorIDs is nil when the question is
// open to all mentors; the backend stores that as SQL NULL.
type Question struct {
	ID                uuid.UUID      `db:"id" json:"id"`
	SeekerID          uuid.UUID      `db:"seeker_id" json:"seeker_id"`
	Title             string         `db:"title" json:"title" validate:"required"`
	Description       string         `db:"description" json:"description"`
	IndustryID        uuid.UUID      `db:"industry_id" json:"industry_id"`
	Tags              []string       `db:"tags" json:"tags"`
	ResponseFormat    ResponseFormat `db:"response_format" json:"response_format"`
	TargetedMentorIDs *[]uuid.UUID   `db:"targeted_mentor_ids" json:"targeted_mentor_ids"`
	Status            QuestionStatus `db:"status" json:"status"`
	ViewCount         int            `db:"view_count" json:"view_count"`
	IsPaid            bool           `db:"is_paid" json:"is_paid"`
	Amount            float64        `db:"amount" json:"amount"`
	CreatedAt         time.Time      `db:"created_at" json:"created_at"`
}

// TargetsAll reports whether the question is visible to every mentor.
func (q *Question) TargetsAll() bool {
	return q.TargetedMentorIDs == nil
}

// Targets reports whether the question is addressed to the given mentor.
func (q *Question) Targets(mentorID uuid.UUID) bool {
	if q.TargetedMentorIDs == nil {
		return true
	}
	for _, id := range *q.TargetedMentorIDs {
		if id == mentorID {
			return true
		}
	}
	return false
}

// QuestionFilter narrows question listings.
type QuestionFilter struct {
	IndustryID     uuid.UUID
	Status         QuestionStatus
	ResponseFormat ResponseFormat
	SeekerID       uuid.UUID
	SortBy         string // "created_at" or "view_count"
}
