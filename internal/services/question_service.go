package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mentorbay/api/internal/models"
)

type QuestionService struct {
	questionRepo models.QuestionRepo
	answerRepo   models.AnswerRepo
}

func NewQuestionService(questionRepo models.QuestionRepo, answerRepo models.AnswerRepo) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
	}
}

type CreateQuestionRequest struct {
	Title             string                `json:"title" binding:"required"`
	Description       string                `json:"description"`
	IndustryID        uuid.UUID             `json:"industry_id"`
	Tags              []string              `json:"tags"`
	ResponseFormat    models.ResponseFormat `json:"response_format"`
	TargetAllMentors  bool                  `json:"target_all_mentors"`
	TargetedMentorIDs []uuid.UUID           `json:"targeted_mentor_ids"`
	IsPaid            bool                  `json:"is_paid"`
	Amount            float64               `json:"amount"`
}

// Create inserts a new open question. Targeting all mentors persists a nil
// mentor list (stored as SQL NULL); explicit targets are deduplicated but
// otherwise stored verbatim.
func (qs *QuestionService) Create(ctx context.Context, seekerID uuid.UUID, req CreateQuestionRequest, accessToken string) (*models.Question, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !req.ResponseFormat.IsValid() {
		return nil, fmt.Errorf("response format must be qa or podcast")
	}
	if req.IndustryID == uuid.Nil {
		return nil, fmt.Errorf("industry is required")
	}
	if req.IsPaid && req.Amount <= 0 {
		return nil, fmt.Errorf("amount is required for a paid question")
	}

	var targeted *[]uuid.UUID
	if !req.TargetAllMentors {
		ids := dedupeIDs(req.TargetedMentorIDs)
		if len(ids) == 0 {
			return nil, fmt.Errorf("select at least one mentor or target all mentors")
		}
		targeted = &ids
	}

	question := &models.Question{
		ID:                uuid.New(),
		SeekerID:          seekerID,
		Title:             strings.TrimSpace(req.Title),
		Description:       req.Description,
		IndustryID:        req.IndustryID,
		Tags:              dedupeStrings(req.Tags),
		ResponseFormat:    req.ResponseFormat,
		TargetedMentorIDs: targeted,
		Status:            models.QuestionOpen,
		IsPaid:            req.IsPaid,
		Amount:            req.Amount,
		CreatedAt:         time.Now(),
	}

	return qs.questionRepo.CreateQuestion(ctx, question, accessToken)
}

func (qs *QuestionService) List(ctx context.Context, filter models.QuestionFilter, offset, limit int) ([]*models.Question, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}
	return qs.questionRepo.ListQuestions(ctx, filter, offset, limit)
}

// ListForMentor returns open questions visible to the mentor: untargeted ones
// plus those that name the mentor. The REST filter cannot express the
// disjunction in one call, so visibility is decided here.
func (qs *QuestionService) ListForMentor(ctx context.Context, mentorID uuid.UUID, offset, limit int) ([]*models.Question, error) {
	questions, _, err := qs.questionRepo.ListQuestions(ctx, models.QuestionFilter{Status: models.QuestionOpen}, offset, limit)
	if err != nil {
		return nil, err
	}

	visible := make([]*models.Question, 0, len(questions))
	for _, q := range questions {
		if q.Targets(mentorID) {
			visible = append(visible, q)
		}
	}
	return visible, nil
}

// Get fetches one question and bumps its view counter. A missing row comes
// back as models.ErrNotFound, not a failure.
func (qs *QuestionService) Get(ctx context.Context, id uuid.UUID) (*models.Question, error) {
	question, err := qs.questionRepo.GetQuestionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Best effort; a lost view increment is not worth failing the read.
	_ = qs.questionRepo.IncrementQuestionViews(ctx, id)
	question.ViewCount++

	return question, nil
}

func (qs *QuestionService) Answers(ctx context.Context, questionID uuid.UUID) ([]*models.Answer, error) {
	if questionID == uuid.Nil {
		return nil, fmt.Errorf("invalid question ID")
	}
	return qs.answerRepo.ListAnswersByQuestion(ctx, questionID)
}

// Close sets a question's status to closed; only its owner may do so.
func (qs *QuestionService) Close(ctx context.Context, id, seekerID uuid.UUID, accessToken string) error {
	question, err := qs.questionRepo.GetQuestionByID(ctx, id)
	if err != nil {
		return err
	}
	if question.SeekerID != seekerID {
		return fmt.Errorf("access denied")
	}
	return qs.questionRepo.UpdateQuestionStatus(ctx, id, models.QuestionClosed, accessToken)
}
