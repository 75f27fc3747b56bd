package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mentorbay/api/internal/connect"
	"github.com/mentorbay/api/internal/helpers"
	"github.com/mentorbay/api/internal/models"
)

// PlaceholderContentURL stands in for captured media when no asset was
// uploaded; capture integration lives outside this service.
const PlaceholderContentURL = "pending://upload"

type AnswerService struct {
	answerRepo     models.AnswerRepo
	questionRepo   models.QuestionRepo
	engagementRepo models.EngagementRepo
	frontendURL    string
}

func NewAnswerService(answerRepo models.AnswerRepo, questionRepo models.QuestionRepo, engagementRepo models.EngagementRepo, frontendURL string) *AnswerService {
	return &AnswerService{
		answerRepo:     answerRepo,
		questionRepo:   questionRepo,
		engagementRepo: engagementRepo,
		frontendURL:    frontendURL,
	}
}

type CreateAnswerRequest struct {
	ContentType       models.ContentType `json:"content_type"`
	MediaPath         string             `json:"media_path"`
	Transcript        string             `json:"transcript"`
	TeleprompterNotes string             `json:"teleprompter_notes"`
	Summary           string             `json:"summary"`
	DurationSeconds   int                `json:"duration_seconds"`
}

// CreateDraft inserts a draft answer after checking the mentor is allowed to
// answer (targeted, or the question targets everyone).
func (as *AnswerService) CreateDraft(ctx context.Context, mentorID uuid.UUID, questionID uuid.UUID, req CreateAnswerRequest, accessToken string) (*models.Answer, error) {
	if !req.ContentType.IsValid() {
		return nil, fmt.Errorf("content type must be video, audio or text")
	}

	question, err := as.questionRepo.GetQuestionByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if !question.Targets(mentorID) {
		return nil, fmt.Errorf("question is not addressed to this mentor")
	}
	if question.Status == models.QuestionClosed {
		return nil, fmt.Errorf("question is closed")
	}

	contentURL := PlaceholderContentURL
	if req.MediaPath != "" && req.ContentType != models.ContentText {
		uploaded, err := helpers.UploadMedia(ctx, connect.Cld, req.MediaPath, helpers.AnswerFolder)
		if err != nil {
			return nil, err
		}
		contentURL = uploaded
	}

	answer := &models.Answer{
		ID:                uuid.New(),
		QuestionID:        questionID,
		MentorID:          mentorID,
		ContentType:       req.ContentType,
		ContentURL:        contentURL,
		Transcript:        req.Transcript,
		TeleprompterNotes: req.TeleprompterNotes,
		DurationSeconds:   req.DurationSeconds,
		Status:            models.AnswerDraft,
		Summary:           req.Summary,
		CreatedAt:         time.Now(),
	}

	return as.answerRepo.CreateAnswer(ctx, answer, accessToken)
}

// CreateFromRecording drafts and publishes in one go, used by the recording
// workflow's submit action.
func (as *AnswerService) CreateFromRecording(ctx context.Context, mentorID uuid.UUID, questionID uuid.UUID, req CreateAnswerRequest, accessToken string) (*models.Answer, error) {
	answer, err := as.CreateDraft(ctx, mentorID, questionID, req, accessToken)
	if err != nil {
		return nil, err
	}
	return as.Publish(ctx, answer.ID, mentorID, accessToken)
}

// Publish flips a draft to published and marks the question answered. The two
// writes are sequential and independent: if the second fails the first is not
// undone, matching the rest of the write paths here.
func (as *AnswerService) Publish(ctx context.Context, answerID uuid.UUID, mentorID uuid.UUID, accessToken string) (*models.Answer, error) {
	answer, err := as.answerRepo.GetAnswerByID(ctx, answerID)
	if err != nil {
		return nil, err
	}
	if answer.MentorID != mentorID {
		return nil, fmt.Errorf("access denied")
	}

	updated, err := as.answerRepo.UpdateAnswer(ctx, map[string]interface{}{"status": models.AnswerPublished}, answerID, accessToken)
	if err != nil {
		return nil, err
	}

	question, err := as.questionRepo.GetQuestionByID(ctx, answer.QuestionID)
	if err != nil {
		return updated, err
	}
	if question.Status == models.QuestionOpen {
		if err := as.questionRepo.UpdateQuestionStatus(ctx, question.ID, models.QuestionAnswered, accessToken); err != nil {
			return updated, err
		}
	}

	return updated, nil
}

func (as *AnswerService) GetAnswer(ctx context.Context, id uuid.UUID) (*models.Answer, error) {
	return as.answerRepo.GetAnswerByID(ctx, id)
}

func (as *AnswerService) ListByMentor(ctx context.Context, mentorID uuid.UUID, offset, limit int) ([]*models.Answer, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}
	return as.answerRepo.ListAnswersByMentor(ctx, mentorID, offset, limit)
}

// Upvote is idempotent per user: the engagement store keeps the set of
// answers a user has upvoted, and the counter column moves only on the first
// vote.
func (as *AnswerService) Upvote(ctx context.Context, userID, answerID uuid.UUID, accessToken string) (*models.Answer, error) {
	if userID == uuid.Nil || answerID == uuid.Nil {
		return nil, fmt.Errorf("invalid user or answer ID")
	}

	answer, err := as.answerRepo.GetAnswerByID(ctx, answerID)
	if err != nil {
		return nil, err
	}

	first, err := as.engagementRepo.AddEngagement(ctx, userID, answerID.String(), models.EngagementUpvote)
	if err != nil {
		return nil, err
	}
	if !first {
		return answer, nil
	}

	return as.answerRepo.UpdateAnswer(ctx, map[string]interface{}{"upvote_count": answer.UpvoteCount + 1}, answerID, accessToken)
}

// RecordView bumps the answer view counter. Views are not deduplicated.
func (as *AnswerService) RecordView(ctx context.Context, answerID uuid.UUID) error {
	answer, err := as.answerRepo.GetAnswerByID(ctx, answerID)
	if err != nil {
		return err
	}
	_, err = as.answerRepo.UpdateAnswer(ctx, map[string]interface{}{"view_count": answer.ViewCount + 1}, answerID, "")
	return err
}

type AnswerSharing struct {
	Links helpers.ShareLinks `json:"links"`
	Embed string             `json:"embed"`
}

// Sharing builds outbound share intents and the embed snippet for an answer.
func (as *AnswerService) Sharing(ctx context.Context, answerID uuid.UUID) (*AnswerSharing, error) {
	answer, err := as.answerRepo.GetAnswerByID(ctx, answerID)
	if err != nil {
		return nil, err
	}

	question, err := as.questionRepo.GetQuestionByID(ctx, answer.QuestionID)
	title := "An answer on Mentorbay"
	if err == nil {
		title = question.Title
	}

	permalink := fmt.Sprintf("%s/answers/%s", as.frontendURL, answer.ID)
	return &AnswerSharing{
		Links: helpers.BuildShareLinks(permalink, title),
		Embed: helpers.BuildEmbedSnippet(as.frontendURL, answer.ID.String()),
	}, nil
}
