package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mentorbay/api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supabase-community/gotrue-go/types"
)

type fakeProfileRepo struct {
	signupID       uuid.UUID
	profilePayload map[string]interface{}
	memberships    []uuid.UUID
	profile        *models.Profile
}

func (f *fakeProfileRepo) SignUp(ctx context.Context, email, password string) (*types.SignupResponse, error) {
	if f.signupID == uuid.Nil {
		f.signupID = uuid.New()
	}
	resp := &types.SignupResponse{}
	resp.ID = f.signupID
	return resp, nil
}

func (f *fakeProfileRepo) SignIn(ctx context.Context, email, password string) (interface{}, error) {
	return nil, nil
}

func (f *fakeProfileRepo) RefreshToken(ctx context.Context, refreshToken string) (interface{}, error) {
	return nil, nil
}

func (f *fakeProfileRepo) CreateProfile(ctx context.Context, payload map[string]interface{}, accessToken string) (*models.Profile, error) {
	f.profilePayload = payload
	return &models.Profile{ID: f.signupID, Role: payload["role"].(models.Role)}, nil
}

func (f *fakeProfileRepo) GetProfile(ctx context.Context, id uuid.UUID, accessToken string) (*models.Profile, error) {
	if f.profile != nil {
		return f.profile, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeProfileRepo) UpdateProfile(ctx context.Context, fields map[string]interface{}, id uuid.UUID, accessToken string) (*models.Profile, error) {
	return nil, models.ErrNotFound
}

func (f *fakeProfileRepo) ListMentors(ctx context.Context, filter models.MentorFilter, offset, limit int) ([]*models.Profile, int, error) {
	return nil, 0, nil
}

func (f *fakeProfileRepo) CreateIndustryMembership(ctx context.Context, profileID, industryID uuid.UUID, accessToken string) error {
	f.memberships = append(f.memberships, industryID)
	return nil
}

func mentorStart() StartRequest {
	return StartRequest{
		Role:            "mentor",
		Email:           "mentor@example.com",
		Password:        "Str0ngPass!",
		FullName:        "Asha Mentor",
		LinkedinURL:     "https://www.linkedin.com/in/asha",
		YearsExperience: 8,
	}
}

func TestMentorStartRequiresLinkedin(t *testing.T) {
	rs := NewRegistrationService(&fakeProfileRepo{})

	req := mentorStart()
	req.LinkedinURL = ""

	flow, err := rs.Start(req)
	require.Error(t, err)
	require.NotNil(t, flow, "flow state must survive a failed validation")
	assert.Equal(t, StepAccountDetails, flow.Step, "mentor must not advance without a linkedin URL")

	// Correcting only the missing field resumes the same flow.
	req.Token = flow.Token
	req.LinkedinURL = "https://linkedin.com/in/asha"
	flow, err = rs.Start(req)
	require.NoError(t, err)
	assert.Equal(t, StepExpertise, flow.Step)
}

func TestSeekerStartCompletesInOneStep(t *testing.T) {
	rs := NewRegistrationService(&fakeProfileRepo{})

	flow, err := rs.Start(StartRequest{
		Role:     "seeker",
		Email:    "seeker@example.com",
		Password: "Str0ngPass!",
		FullName: "Sam Seeker",
	})
	require.NoError(t, err)
	assert.Equal(t, StepAccountDetails, flow.Step)
}

func TestExpertiseBothRateNeedsBothFields(t *testing.T) {
	rs := NewRegistrationService(&fakeProfileRepo{})

	flow, err := rs.Start(mentorStart())
	require.NoError(t, err)

	industry := uuid.New()
	req := ExpertiseRequest{
		IndustryIDs:  []uuid.UUID{industry},
		MenteeLevels: []string{"student"},
		RateType:     "both",
		HourlyRate:   50,
		// FreeHoursPerWeek left at zero
	}

	flow, err = rs.SaveExpertise(flow.Token, req)
	require.Error(t, err)
	assert.False(t, flow.Complete)
	assert.Equal(t, 50.0, flow.HourlyRate, "failed validation must not drop collected fields")

	req.FreeHoursPerWeek = 3
	flow, err = rs.SaveExpertise(flow.Token, req)
	require.NoError(t, err)
	assert.True(t, flow.Complete)
}

func TestBackKeepsCollectedFields(t *testing.T) {
	rs := NewRegistrationService(&fakeProfileRepo{})

	flow, err := rs.Start(mentorStart())
	require.NoError(t, err)
	require.Equal(t, StepExpertise, flow.Step)

	flow, err = rs.Back(flow.Token)
	require.NoError(t, err)
	assert.Equal(t, StepAccountDetails, flow.Step)
	assert.Equal(t, "mentor@example.com", flow.Email)
	assert.Equal(t, "https://www.linkedin.com/in/asha", flow.LinkedinURL)
	assert.Equal(t, 8, flow.YearsExperience)
}

func TestSubmitFreeMentorPayload(t *testing.T) {
	repo := &fakeProfileRepo{}
	rs := NewRegistrationService(repo)

	flow, err := rs.Start(mentorStart())
	require.NoError(t, err)

	first, second := uuid.New(), uuid.New()
	_, err = rs.SaveExpertise(flow.Token, ExpertiseRequest{
		// duplicate industry collapses to a single membership
		IndustryIDs:      []uuid.UUID{first, second, first},
		MenteeLevels:     []string{"student", "professional"},
		RateType:         "free",
		FreeHoursPerWeek: 5,
	})
	require.NoError(t, err)

	result, err := rs.Submit(context.Background(), flow.Token)
	require.NoError(t, err)

	assert.Equal(t, models.RateTypeFree, repo.profilePayload["mentoring_rate_type"])
	assert.Equal(t, 5, repo.profilePayload["free_hours_per_week"])
	assert.Equal(t, models.ConsultingFree, repo.profilePayload["consulting_type"])
	assert.Equal(t, true, repo.profilePayload["offers_consulting"])

	assert.Equal(t, 2, result.Memberships, "one membership row per distinct industry")
	assert.ElementsMatch(t, []uuid.UUID{first, second}, repo.memberships)

	_, err = rs.Get(flow.Token)
	assert.Error(t, err, "flow must be evicted after submission")
}

func TestSubmitRejectsIncompleteMentorFlow(t *testing.T) {
	rs := NewRegistrationService(&fakeProfileRepo{})

	flow, err := rs.Start(mentorStart())
	require.NoError(t, err)

	_, err = rs.Submit(context.Background(), flow.Token)
	assert.Error(t, err, "mentor submission requires the expertise step")
}
