package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/mentorbay/api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnswerRepo struct {
	answers map[uuid.UUID]*models.Answer
	updates []map[string]interface{}
}

func newFakeAnswerRepo(answers ...*models.Answer) *fakeAnswerRepo {
	f := &fakeAnswerRepo{answers: make(map[uuid.UUID]*models.Answer)}
	for _, a := range answers {
		f.answers[a.ID] = a
	}
	return f
}

func (f *fakeAnswerRepo) CreateAnswer(ctx context.Context, answer *models.Answer, accessToken string) (*models.Answer, error) {
	f.answers[answer.ID] = answer
	return answer, nil
}

func (f *fakeAnswerRepo) GetAnswerByID(ctx context.Context, id uuid.UUID) (*models.Answer, error) {
	answer, ok := f.answers[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return answer, nil
}

func (f *fakeAnswerRepo) ListAnswersByQuestion(ctx context.Context, questionID uuid.UUID) ([]*models.Answer, error) {
	return nil, nil
}

func (f *fakeAnswerRepo) ListAnswersByMentor(ctx context.Context, mentorID uuid.UUID, offset, limit int) ([]*models.Answer, int, error) {
	return nil, 0, nil
}

func (f *fakeAnswerRepo) UpdateAnswer(ctx context.Context, fields map[string]interface{}, id uuid.UUID, accessToken string) (*models.Answer, error) {
	answer, ok := f.answers[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	f.updates = append(f.updates, fields)
	if count, ok := fields["upvote_count"].(int); ok {
		answer.UpvoteCount = count
	}
	if status, ok := fields["status"].(models.AnswerStatus); ok {
		answer.Status = status
	}
	return answer, nil
}

// fakeEngagementRepo remembers which items each user has touched, mirroring
// the set semantics of the Mongo document.
type fakeEngagementRepo struct {
	seen map[string]bool
}

func (f *fakeEngagementRepo) AddEngagement(ctx context.Context, userId uuid.UUID, itemId string, itemType string) (bool, error) {
	if f.seen == nil {
		f.seen = make(map[string]bool)
	}
	key := userId.String() + "/" + itemId
	if f.seen[key] {
		return false, nil
	}
	f.seen[key] = true
	return true, nil
}

func (f *fakeEngagementRepo) RemoveEngagement(ctx context.Context, userId uuid.UUID, itemId string) error {
	delete(f.seen, userId.String()+"/"+itemId)
	return nil
}

func (f *fakeEngagementRepo) GetEngagementByUserID(ctx context.Context, userId uuid.UUID) (*models.Engagement, error) {
	return &models.Engagement{UserID: userId}, nil
}

func TestUpvoteCountsOncePerUser(t *testing.T) {
	answer := &models.Answer{ID: uuid.New(), Status: models.AnswerPublished}
	answers := newFakeAnswerRepo(answer)
	as := NewAnswerService(answers, &fakeQuestionRepo{}, &fakeEngagementRepo{}, "https://mentorbay.example")

	user := uuid.New()
	got, err := as.Upvote(context.Background(), user, answer.ID, "")
	require.NoError(t, err)
	assert.Equal(t, 1, got.UpvoteCount)

	// Same user again: no counter movement.
	got, err = as.Upvote(context.Background(), user, answer.ID, "")
	require.NoError(t, err)
	assert.Equal(t, 1, got.UpvoteCount)

	// A different user moves it.
	got, err = as.Upvote(context.Background(), uuid.New(), answer.ID, "")
	require.NoError(t, err)
	assert.Equal(t, 2, got.UpvoteCount)
}

func TestPublishMarksQuestionAnswered(t *testing.T) {
	mentor := uuid.New()
	question := &models.Question{ID: uuid.New(), Status: models.QuestionOpen}
	answer := &models.Answer{ID: uuid.New(), QuestionID: question.ID, MentorID: mentor, Status: models.AnswerDraft}

	questions := &fakeQuestionRepo{questions: []*models.Question{question}}
	answers := newFakeAnswerRepo(answer)
	as := NewAnswerService(answers, questions, &fakeEngagementRepo{}, "https://mentorbay.example")

	got, err := as.Publish(context.Background(), answer.ID, mentor, "")
	require.NoError(t, err)
	assert.Equal(t, models.AnswerPublished, got.Status)
	assert.Equal(t, models.QuestionAnswered, questions.statuses[question.ID])
}

func TestPublishRejectsForeignMentor(t *testing.T) {
	answer := &models.Answer{ID: uuid.New(), MentorID: uuid.New(), Status: models.AnswerDraft}
	as := NewAnswerService(newFakeAnswerRepo(answer), &fakeQuestionRepo{}, &fakeEngagementRepo{}, "")

	_, err := as.Publish(context.Background(), answer.ID, uuid.New(), "")
	assert.Error(t, err)
}

func TestSharingBuildsPermalinkAndEmbed(t *testing.T) {
	question := &models.Question{ID: uuid.New(), Title: "Career switch at 40?", Status: models.QuestionAnswered}
	answer := &models.Answer{ID: uuid.New(), QuestionID: question.ID, Status: models.AnswerPublished}

	questions := &fakeQuestionRepo{questions: []*models.Question{question}}
	as := NewAnswerService(newFakeAnswerRepo(answer), questions, &fakeEngagementRepo{}, "https://mentorbay.example")

	sharing, err := as.Sharing(context.Background(), answer.ID)
	require.NoError(t, err)

	permalink := "https://mentorbay.example/answers/" + answer.ID.String()
	assert.Contains(t, sharing.Links.Twitter, "Career")
	assert.Contains(t, sharing.Links.LinkedIn, strings.ReplaceAll(permalink, ":", "%3A"))
	assert.Contains(t, sharing.Embed, "/embed/answers/"+answer.ID.String())
}
