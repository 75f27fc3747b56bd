package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mentorbay/api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuestionRepo struct {
	created   *models.Question
	questions []*models.Question
	statuses  map[uuid.UUID]models.QuestionStatus
	views     int
}

func (f *fakeQuestionRepo) CreateQuestion(ctx context.Context, question *models.Question, accessToken string) (*models.Question, error) {
	f.created = question
	return question, nil
}

func (f *fakeQuestionRepo) GetQuestionByID(ctx context.Context, id uuid.UUID) (*models.Question, error) {
	for _, q := range f.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeQuestionRepo) ListQuestions(ctx context.Context, filter models.QuestionFilter, offset, limit int) ([]*models.Question, int, error) {
	out := make([]*models.Question, 0, len(f.questions))
	for _, q := range f.questions {
		if filter.Status != "" && q.Status != filter.Status {
			continue
		}
		out = append(out, q)
	}
	return out, len(out), nil
}

func (f *fakeQuestionRepo) UpdateQuestionStatus(ctx context.Context, id uuid.UUID, status models.QuestionStatus, accessToken string) error {
	if f.statuses == nil {
		f.statuses = make(map[uuid.UUID]models.QuestionStatus)
	}
	f.statuses[id] = status
	return nil
}

func (f *fakeQuestionRepo) IncrementQuestionViews(ctx context.Context, id uuid.UUID) error {
	f.views++
	return nil
}

func validQuestionRequest() CreateQuestionRequest {
	return CreateQuestionRequest{
		Title:            "How do I break into fintech?",
		IndustryID:       uuid.New(),
		ResponseFormat:   models.FormatQA,
		TargetAllMentors: true,
	}
}

func TestCreateQuestionTargetAllStoresNull(t *testing.T) {
	repo := &fakeQuestionRepo{}
	qs := NewQuestionService(repo, nil)

	_, err := qs.Create(context.Background(), uuid.New(), validQuestionRequest(), "")
	require.NoError(t, err)
	assert.Nil(t, repo.created.TargetedMentorIDs, "target-all must persist a null mentor list")
}

func TestCreateQuestionKeepsExplicitTargets(t *testing.T) {
	repo := &fakeQuestionRepo{}
	qs := NewQuestionService(repo, nil)

	first, second := uuid.New(), uuid.New()
	req := validQuestionRequest()
	req.TargetAllMentors = false
	req.TargetedMentorIDs = []uuid.UUID{first, second, first}

	_, err := qs.Create(context.Background(), uuid.New(), req, "")
	require.NoError(t, err)
	require.NotNil(t, repo.created.TargetedMentorIDs)
	assert.ElementsMatch(t, []uuid.UUID{first, second}, *repo.created.TargetedMentorIDs)
}

func TestCreateQuestionRejectsEmptyTargetList(t *testing.T) {
	qs := NewQuestionService(&fakeQuestionRepo{}, nil)

	req := validQuestionRequest()
	req.TargetAllMentors = false
	req.TargetedMentorIDs = nil

	_, err := qs.Create(context.Background(), uuid.New(), req, "")
	assert.Error(t, err)
}

func TestCreateQuestionPaidNeedsAmount(t *testing.T) {
	qs := NewQuestionService(&fakeQuestionRepo{}, nil)

	req := validQuestionRequest()
	req.IsPaid = true
	req.Amount = 0

	_, err := qs.Create(context.Background(), uuid.New(), req, "")
	assert.Error(t, err)
}

func TestMentorFeedVisibility(t *testing.T) {
	mentor := uuid.New()
	other := uuid.New()
	targetedAtMentor := []uuid.UUID{mentor}
	targetedAtOther := []uuid.UUID{other}

	repo := &fakeQuestionRepo{questions: []*models.Question{
		{ID: uuid.New(), Status: models.QuestionOpen},
		{ID: uuid.New(), Status: models.QuestionOpen, TargetedMentorIDs: &targetedAtMentor},
		{ID: uuid.New(), Status: models.QuestionOpen, TargetedMentorIDs: &targetedAtOther},
		{ID: uuid.New(), Status: models.QuestionClosed},
	}}
	qs := NewQuestionService(repo, nil)

	visible, err := qs.ListForMentor(context.Background(), mentor, 0, 20)
	require.NoError(t, err)
	assert.Len(t, visible, 2, "untargeted plus directly targeted open questions")
}

func TestCloseQuestionOwnerOnly(t *testing.T) {
	owner := uuid.New()
	question := &models.Question{ID: uuid.New(), SeekerID: owner, Status: models.QuestionOpen}
	repo := &fakeQuestionRepo{questions: []*models.Question{question}}
	qs := NewQuestionService(repo, nil)

	err := qs.Close(context.Background(), question.ID, uuid.New(), "")
	assert.Error(t, err, "a stranger must not close the question")

	err = qs.Close(context.Background(), question.ID, owner, "")
	require.NoError(t, err)
	assert.Equal(t, models.QuestionClosed, repo.statuses[question.ID])
}

func TestGetQuestionBumpsViews(t *testing.T) {
	question := &models.Question{ID: uuid.New(), Status: models.QuestionOpen, ViewCount: 3}
	repo := &fakeQuestionRepo{questions: []*models.Question{question}}
	qs := NewQuestionService(repo, nil)

	got, err := qs.Get(context.Background(), question.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.ViewCount)
	assert.Equal(t, 1, repo.views)
}
