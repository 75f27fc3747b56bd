package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
)

type AnswerRepo interface {
	CreateAnswer(ctx context.Context, answer *Answer, accessToken string) (*Answer, error)
	GetAnswerByID(ctx context.Context, id uuid.UUID) (*Answer, error)
	ListAnswersByQuestion(ctx context.Context, questionID uuid.UUID) ([]*Answer, error)
	ListAnswersByMentor(ctx context.Context, mentorID uuid.UUID, offset, limit int) ([]*Answer, int, error)
	UpdateAnswer(ctx context.Context, fields map[string]interface{}, id uuid.UUID, accessToken string) (*Answer, error)
}

func (su *SupabaseRepo) CreateAnswer(ctx context.Context, answer *Answer, accessToken string) (*Answer, error) {
	client, err := su.clientFor(accessToken)
	if err != nil {
		return nil, err
	}

	data, count, err := client.From(AnswersTable).
		Insert(answer, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create answer: %v", err)
	}

	var created []Answer
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created answer: %v", err)
	}
	if count == 0 || len(created) == 0 {
		return nil, fmt.Errorf("no answer data returned after insert")
	}

	return &created[0], nil
}

func (su *SupabaseRepo) GetAnswerByID(ctx context.Context, id uuid.UUID) (*Answer, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid answer ID")
	}

	raw, _, err := su.supabaseClient.From(AnswersTable).
		Select("*", "", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get answer: %v", err)
	}

	var answers []Answer
	if err := json.Unmarshal(raw, &answers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal answer rows: %v", err)
	}
	if len(answers) == 0 {
		return nil, ErrNotFound
	}

	return &answers[0], nil
}

func (su *SupabaseRepo) ListAnswersByQuestion(ctx context.Context, questionID uuid.UUID) ([]*Answer, error) {
	raw, _, err := su.supabaseClient.From(AnswersTable).
		Select("*", "", false).
		Eq("question_id", questionID.String()).
		Eq("status", string(AnswerPublished)).
		Order("upvote_count", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list answers: %v", err)
	}

	var answers []*Answer
	if err := json.Unmarshal(raw, &answers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal answers: %v", err)
	}
	return answers, nil
}

func (su *SupabaseRepo) ListAnswersByMentor(ctx context.Context, mentorID uuid.UUID, offset, limit int) ([]*Answer, int, error) {
	raw, count, err := su.supabaseClient.From(AnswersTable).
		Select("*", "exact", false).
		Eq("mentor_id", mentorID.String()).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Range(offset, offset+limit-1, "").
		Execute()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list mentor answers: %v", err)
	}

	var answers []*Answer
	if err := json.Unmarshal(raw, &answers); err != nil {
		return nil, 0, fmt.Errorf("failed to unmarshal mentor answers: %v", err)
	}
	return answers, int(count), nil
}

func (su *SupabaseRepo) UpdateAnswer(ctx context.Context, fields map[string]interface{}, id uuid.UUID, accessToken string) (*Answer, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	client, err := su.clientFor(accessToken)
	if err != nil {
		return nil, err
	}

	raw, count, err := client.From(AnswersTable).
		Update(fields, "", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update answer: %v", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("no answer found to update")
	}

	var updated []Answer
	if err := json.Unmarshal(raw, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated answer: %v", err)
	}
	if len(updated) == 0 {
		return nil, fmt.Errorf("no answer data returned after update")
	}

	return &updated[0], nil
}
