package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
)

type QuestionRepo interface {
	CreateQuestion(ctx context.Context, question *Question, accessToken string) (*Question, error)
	GetQuestionByID(ctx context.Context, id uuid.UUID) (*Question, error)
	ListQuestions(ctx context.Context, filter QuestionFilter, offset, limit int) ([]*Question, int, error)
	UpdateQuestionStatus(ctx context.Context, id uuid.UUID, status QuestionStatus, accessToken string) error
	IncrementQuestionViews(ctx context.Context, id uuid.UUID) error
}

func (su *SupabaseRepo) CreateQuestion(ctx context.Context, question *Question, accessToken string) (*Question, error) {
	client, err := su.clientFor(accessToken)
	if err != nil {
		return nil, err
	}

	// Build the payload by hand so targeted_mentor_ids is an explicit JSON
	// null when the question targets all mentors.
	var targeted interface{}
	if question.TargetedMentorIDs != nil {
		targeted = *question.TargetedMentorIDs
	}

	payload := map[string]interface{}{
		"id":                  question.ID,
		"seeker_id":           question.SeekerID,
		"title":               question.Title,
		"description":         question.Description,
		"industry_id":         question.IndustryID,
		"tags":                question.Tags,
		"response_format":     question.ResponseFormat,
		"targeted_mentor_ids": targeted,
		"status":              question.Status,
		"is_paid":             question.IsPaid,
		"amount":              question.Amount,
		"created_at":          question.CreatedAt,
	}

	data, count, err := client.From(QuestionsTable).
		Insert(payload, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create question: %v", err)
	}

	var created []Question
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created question: %v", err)
	}
	if count == 0 || len(created) == 0 {
		return nil, fmt.Errorf("no question data returned after insert")
	}

	return &created[0], nil
}

func (su *SupabaseRepo) GetQuestionByID(ctx context.Context, id uuid.UUID) (*Question, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid question ID")
	}

	raw, _, err := su.supabaseClient.From(QuestionsTable).
		Select("*", "", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get question: %v", err)
	}

	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal question rows: %v", err)
	}
	if len(questions) == 0 {
		return nil, ErrNotFound
	}

	return &questions[0], nil
}

func (su *SupabaseRepo) ListQuestions(ctx context.Context, filter QuestionFilter, offset, limit int) ([]*Question, int, error) {
	query := su.supabaseClient.From(QuestionsTable).
		Select("*", "exact", false)

	if filter.IndustryID != uuid.Nil {
		query = query.Eq("industry_id", filter.IndustryID.String())
	}
	if filter.Status != "" {
		query = query.Eq("status", string(filter.Status))
	}
	if filter.ResponseFormat != "" {
		query = query.Eq("response_format", string(filter.ResponseFormat))
	}
	if filter.SeekerID != uuid.Nil {
		query = query.Eq("seeker_id", filter.SeekerID.String())
	}

	sortBy := filter.SortBy
	if sortBy != "view_count" {
		sortBy = "created_at"
	}

	raw, count, err := query.
		Order(sortBy, &postgrest.OrderOpts{Ascending: false}).
		Range(offset, offset+limit-1, "").
		Execute()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list questions: %v", err)
	}

	var questions []*Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, 0, fmt.Errorf("failed to unmarshal questions: %v", err)
	}

	return questions, int(count), nil
}

func (su *SupabaseRepo) UpdateQuestionStatus(ctx context.Context, id uuid.UUID, status QuestionStatus, accessToken string) error {
	client, err := su.clientFor(accessToken)
	if err != nil {
		return err
	}

	_, count, err := client.From(QuestionsTable).
		Update(map[string]interface{}{"status": status}, "", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to update question status: %v", err)
	}
	if count == 0 {
		return fmt.Errorf("no question found to update")
	}
	return nil
}

func (su *SupabaseRepo) IncrementQuestionViews(ctx context.Context, id uuid.UUID) error {
	question, err := su.GetQuestionByID(ctx, id)
	if err != nil {
		return err
	}

	_, _, err = su.supabaseClient.From(QuestionsTable).
		Update(map[string]interface{}{"view_count": question.ViewCount + 1}, "", "").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to increment question views: %v", err)
	}
	return nil
}
