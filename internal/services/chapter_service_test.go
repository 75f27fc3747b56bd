package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mentorbay/api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChapterRepo struct {
	chapter        *models.RegionalChapter
	membership     *models.ChapterMembership
	pendingRequest *models.ChapterJoinRequest
	created        *models.ChapterJoinRequest
	listCalls      int
}

func (f *fakeChapterRepo) ListChapters(ctx context.Context, activeOnly bool) ([]*models.RegionalChapter, error) {
	f.listCalls++
	if f.chapter == nil {
		return nil, nil
	}
	return []*models.RegionalChapter{f.chapter}, nil
}

func (f *fakeChapterRepo) GetChapterBySlug(ctx context.Context, slug string) (*models.RegionalChapter, error) {
	if f.chapter == nil || f.chapter.Slug != slug {
		return nil, models.ErrNotFound
	}
	return f.chapter, nil
}

func (f *fakeChapterRepo) ListChapterLeadership(ctx context.Context, chapterID uuid.UUID) ([]*models.ChapterLeadership, error) {
	return nil, nil
}

func (f *fakeChapterRepo) ListChapterMemberships(ctx context.Context, chapterID uuid.UUID) ([]*models.ChapterMembership, error) {
	return nil, nil
}

func (f *fakeChapterRepo) GetMembership(ctx context.Context, chapterID, profileID uuid.UUID) (*models.ChapterMembership, error) {
	if f.membership == nil {
		return nil, models.ErrNotFound
	}
	return f.membership, nil
}

func (f *fakeChapterRepo) CreateJoinRequest(ctx context.Context, request *models.ChapterJoinRequest, accessToken string) (*models.ChapterJoinRequest, error) {
	f.created = request
	return request, nil
}

func (f *fakeChapterRepo) GetJoinRequest(ctx context.Context, chapterID, profileID uuid.UUID) (*models.ChapterJoinRequest, error) {
	if f.pendingRequest == nil {
		return nil, models.ErrNotFound
	}
	return f.pendingRequest, nil
}

func mumbaiChapter() *models.RegionalChapter {
	return &models.RegionalChapter{ID: uuid.New(), Slug: "mumbai", Name: "Mumbai", IsActive: true}
}

func TestJoinGateRejectsForeignCountry(t *testing.T) {
	mentor := &models.Profile{ID: uuid.New(), Role: models.RoleMentor, Country: "Germany"}
	repo := &fakeChapterRepo{chapter: mumbaiChapter()}
	cs := NewChapterService(repo, &fakeProfileRepo{profile: mentor}, []string{"India"})

	_, err := cs.RequestToJoin(context.Background(), "mumbai", mentor.ID, "", "")
	assert.Error(t, err)
	assert.Nil(t, repo.created, "no join request row on a gate failure")
}

func TestJoinGateRejectsSeekers(t *testing.T) {
	seeker := &models.Profile{ID: uuid.New(), Role: models.RoleSeeker, Country: "India"}
	cs := NewChapterService(&fakeChapterRepo{chapter: mumbaiChapter()}, &fakeProfileRepo{profile: seeker}, []string{"India"})

	_, err := cs.RequestToJoin(context.Background(), "mumbai", seeker.ID, "", "")
	assert.Error(t, err)
}

func TestJoinCreatesPendingRequest(t *testing.T) {
	mentor := &models.Profile{ID: uuid.New(), Role: models.RoleMentor, Country: "india"}
	repo := &fakeChapterRepo{chapter: mumbaiChapter()}
	cs := NewChapterService(repo, &fakeProfileRepo{profile: mentor}, []string{"India"})

	request, err := cs.RequestToJoin(context.Background(), "mumbai", mentor.ID, "  keen to help  ", "")
	require.NoError(t, err)
	assert.Equal(t, models.JoinRequestPending, request.Status)
	assert.Equal(t, "keen to help", request.Message)
}

func TestJoinRejectsDuplicatePendingRequest(t *testing.T) {
	mentor := &models.Profile{ID: uuid.New(), Role: models.RoleMentor, Country: "India"}
	repo := &fakeChapterRepo{
		chapter:        mumbaiChapter(),
		pendingRequest: &models.ChapterJoinRequest{Status: models.JoinRequestPending},
	}
	cs := NewChapterService(repo, &fakeProfileRepo{profile: mentor}, []string{"India"})

	_, err := cs.RequestToJoin(context.Background(), "mumbai", mentor.ID, "", "")
	assert.Error(t, err)
}

func TestJoinRejectsExistingMember(t *testing.T) {
	mentor := &models.Profile{ID: uuid.New(), Role: models.RoleMentor, Country: "India"}
	repo := &fakeChapterRepo{
		chapter:    mumbaiChapter(),
		membership: &models.ChapterMembership{},
	}
	cs := NewChapterService(repo, &fakeProfileRepo{profile: mentor}, []string{"India"})

	_, err := cs.RequestToJoin(context.Background(), "mumbai", mentor.ID, "", "")
	assert.Error(t, err)
}

func TestChapterListIsCached(t *testing.T) {
	repo := &fakeChapterRepo{chapter: mumbaiChapter()}
	cs := NewChapterService(repo, &fakeProfileRepo{}, []string{"India"})

	_, err := cs.ListChapters(context.Background())
	require.NoError(t, err)
	_, err = cs.ListChapters(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.listCalls)
}
