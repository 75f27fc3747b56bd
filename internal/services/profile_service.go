package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mentorbay/api/internal/connect"
	"github.com/mentorbay/api/internal/helpers"
	"github.com/mentorbay/api/internal/models"
)

type ProfileService struct {
	profileRepo    models.ProfileRepo
	engagementRepo models.EngagementRepo
}

func NewProfileService(profileRepo models.ProfileRepo, engagementRepo models.EngagementRepo) *ProfileService {
	return &ProfileService{
		profileRepo:    profileRepo,
		engagementRepo: engagementRepo,
	}
}

func (ps *ProfileService) SignIn(email, password string) (interface{}, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("invalid email format: %v", err)
	}
	if err := models.Validate.Var(password, "required,min=8"); err != nil {
		return nil, fmt.Errorf("invalid password format: %v", err)
	}
	response, err := ps.profileRepo.SignIn(context.Background(), email, password)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %v", err)
	}
	return response, nil
}

func (ps *ProfileService) RefreshToken(refreshToken string) (interface{}, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("refresh token is required")
	}
	response, err := ps.profileRepo.RefreshToken(context.Background(), refreshToken)
	if err != nil {
		return nil, fmt.Errorf("token refresh failed: %v", err)
	}
	return response, nil
}

func (ps *ProfileService) GetProfile(id uuid.UUID, accessToken string) (*models.Profile, error) {
	res, err := ps.profileRepo.GetProfile(context.Background(), id, accessToken)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// updatableFields is the owner-editable subset of profile columns. Rating,
// counters and the stalwart/featured flags are platform-managed.
var updatableFields = map[string]struct{}{
	"full_name":           {},
	"professional_title":  {},
	"bio":                 {},
	"avatar_url":          {},
	"expertise_areas":     {},
	"offers_consulting":   {},
	"consulting_type":     {},
	"consulting_rate":     {},
	"free_hours_per_week": {},
	"mentoring_rate_type": {},
	"hourly_rate":         {},
	"linkedin_url":        {},
	"years_experience":    {},
	"mentee_levels":       {},
	"country":             {},
}

func (ps *ProfileService) UpdateProfile(ctx context.Context, fields map[string]interface{}, id uuid.UUID, accessToken string) (*models.Profile, error) {
	filtered := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		if _, ok := updatableFields[key]; ok {
			filtered[key] = value
		}
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	updated, err := ps.profileRepo.UpdateProfile(ctx, filtered, id, accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %v", err)
	}
	return updated, nil
}

func (ps *ProfileService) UploadAvatar(ctx context.Context, userID uuid.UUID, imagePath string, accessToken string) (string, error) {
	if userID == uuid.Nil {
		return "", fmt.Errorf("no valid UUID provided")
	}

	avatarURL, err := helpers.UploadMedia(ctx, connect.Cld, imagePath, helpers.AvatarFolder)
	if err != nil {
		return "", err
	}

	if _, err := ps.profileRepo.UpdateProfile(ctx, map[string]interface{}{"avatar_url": avatarURL}, userID, accessToken); err != nil {
		return "", fmt.Errorf("failed to save avatar: %v", err)
	}
	return avatarURL, nil
}

func (ps *ProfileService) ListMentors(ctx context.Context, filter models.MentorFilter, offset, limit int) ([]*models.Profile, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}
	return ps.profileRepo.ListMentors(ctx, filter, offset, limit)
}

func (ps *ProfileService) SaveMentor(ctx context.Context, userID, mentorID uuid.UUID) error {
	if userID == uuid.Nil || mentorID == uuid.Nil {
		return fmt.Errorf("invalid user or mentor ID")
	}
	_, err := ps.engagementRepo.AddEngagement(ctx, userID, mentorID.String(), models.EngagementSavedMentor)
	return err
}

func (ps *ProfileService) UnsaveMentor(ctx context.Context, userID, mentorID uuid.UUID) error {
	if userID == uuid.Nil || mentorID == uuid.Nil {
		return fmt.Errorf("invalid user or mentor ID")
	}
	return ps.engagementRepo.RemoveEngagement(ctx, userID, mentorID.String())
}

func (ps *ProfileService) ListSavedMentors(ctx context.Context, userID uuid.UUID) ([]*models.Profile, error) {
	engagement, err := ps.engagementRepo.GetEngagementByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	mentors := make([]*models.Profile, 0, len(engagement.Items))
	for _, item := range engagement.Items {
		if item.ItemType != models.EngagementSavedMentor {
			continue
		}
		mentorID, err := uuid.Parse(item.ItemID)
		if err != nil {
			continue
		}
		profile, err := ps.profileRepo.GetProfile(ctx, mentorID, "")
		if err != nil {
			// A saved mentor whose profile vanished is skipped, not fatal.
			continue
		}
		mentors = append(mentors, profile)
	}
	return mentors, nil
}
