package models

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/supabase-community/gotrue-go/types"
	"github.com/supabase-community/postgrest-go"
)

type ProfileRepo interface {
	SignUp(ctx context.Context, email, password string) (*types.SignupResponse, error)
	SignIn(ctx context.Context, email, password string) (interface{}, error)
	RefreshToken(ctx context.Context, refreshToken string) (interface{}, error)
	CreateProfile(ctx context.Context, payload map[string]interface{}, accessToken string) (*Profile, error)
	GetProfile(ctx context.Context, id uuid.UUID, accessToken string) (*Profile, error)
	UpdateProfile(ctx context.Context, fields map[string]interface{}, id uuid.UUID, accessToken string) (*Profile, error)
	ListMentors(ctx context.Context, filter MentorFilter, offset, limit int) ([]*Profile, int, error)
	CreateIndustryMembership(ctx context.Context, profileID, industryID uuid.UUID, accessToken string) error
}

func (su *SupabaseRepo) SignUp(ctx context.Context, email, password string) (*types.SignupResponse, error) {
	res, err := su.supabaseClient.Auth.Signup(types.SignupRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		errMsg := err.Error()
		if strings.Contains(errMsg, "User already registered") || strings.Contains(errMsg, "unique constraint") {
			return nil, fmt.Errorf("email already in use")
		}
		if strings.Contains(errMsg, "invalid input syntax") {
			return nil, fmt.Errorf("invalid input format")
		}
		return nil, fmt.Errorf("failed to create account")
	}
	return res, nil
}

func (su *SupabaseRepo) SignIn(ctx context.Context, email, password string) (interface{}, error) {
	resp, err := su.supabaseClient.Auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %v", err)
	}
	return resp, nil
}

func (su *SupabaseRepo) RefreshToken(ctx context.Context, refreshToken string) (interface{}, error) {
	resp, err := su.supabaseClient.Auth.RefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %v", err)
	}
	return resp, nil
}

func (su *SupabaseRepo) CreateProfile(ctx context.Context, payload map[string]interface{}, accessToken string) (*Profile, error) {
	client, err := su.clientFor(accessToken)
	if err != nil {
		return nil, err
	}

	data, count, err := client.From(ProfilesTable).
		Insert(payload, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %v", err)
	}

	var created []Profile
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created profile: %v", err)
	}
	if count == 0 || len(created) == 0 {
		return nil, fmt.Errorf("no profile data returned after insert")
	}

	return &created[0], nil
}

func (su *SupabaseRepo) GetProfile(ctx context.Context, id uuid.UUID, accessToken string) (*Profile, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid UUID")
	}

	client, err := su.clientFor(accessToken)
	if err != nil {
		return nil, err
	}

	raw, status, err := client.From(ProfilesTable).
		Select("*", "", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		if status != 0 {
			return nil, fmt.Errorf("postgrest error: status=%d body=%s err=%v", status, string(raw), err)
		}
		return nil, fmt.Errorf("failed to get profile by ID: %v", err)
	}

	// Supabase returns an array even for single results
	var profiles []Profile
	if err := json.Unmarshal(raw, &profiles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile rows: %v", err)
	}

	if len(profiles) == 0 {
		return nil, ErrNotFound
	}

	return &profiles[0], nil
}

func (su *SupabaseRepo) UpdateProfile(ctx context.Context, fields map[string]interface{}, id uuid.UUID, accessToken string) (*Profile, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid UUID")
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	client, err := su.clientFor(accessToken)
	if err != nil {
		return nil, err
	}

	raw, count, err := client.From(ProfilesTable).
		Update(fields, "", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %v", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("no profile found to update")
	}

	var updated []Profile
	if err := json.Unmarshal(raw, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated profile: %v", err)
	}
	if len(updated) == 0 {
		return nil, fmt.Errorf("no profile data returned after update")
	}

	return &updated[0], nil
}

func (su *SupabaseRepo) ListMentors(ctx context.Context, filter MentorFilter, offset, limit int) ([]*Profile, int, error) {
	query := su.supabaseClient.From(ProfilesTable).
		Select("*", "exact", false).
		Eq("role", string(RoleMentor))

	if filter.Country != "" {
		query = query.Eq("country", filter.Country)
	}
	if filter.Expertise != "" {
		query = query.Filter("expertise_areas", "cs", fmt.Sprintf("{%s}", filter.Expertise))
	}

	raw, count, err := query.
		Order("is_stalwart", &postgrest.OrderOpts{Ascending: false}).
		Order("rating", &postgrest.OrderOpts{Ascending: false}).
		Range(offset, offset+limit-1, "").
		Execute()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list mentors: %v", err)
	}

	var mentors []*Profile
	if err := json.Unmarshal(raw, &mentors); err != nil {
		return nil, 0, fmt.Errorf("failed to unmarshal mentors: %v", err)
	}

	// Industry filtering joins through the membership table, which the REST
	// query above cannot express in one round trip. Resolve it separately.
	if filter.IndustryID != uuid.Nil {
		memberIDs, err := su.industryMemberIDs(ctx, filter.IndustryID)
		if err != nil {
			return nil, 0, err
		}
		filtered := make([]*Profile, 0, len(mentors))
		for _, m := range mentors {
			if _, ok := memberIDs[m.ID]; ok {
				filtered = append(filtered, m)
			}
		}
		mentors = filtered
		count = int64(len(filtered))
	}

	return mentors, int(count), nil
}

func (su *SupabaseRepo) industryMemberIDs(ctx context.Context, industryID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	raw, _, err := su.supabaseClient.From(IndustryMembershipsTable).
		Select("profile_id", "", false).
		Eq("industry_id", industryID.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list industry memberships: %v", err)
	}

	var rows []struct {
		ProfileID uuid.UUID `json:"profile_id"`
	}
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal membership rows: %v", err)
	}

	ids := make(map[uuid.UUID]struct{}, len(rows))
	for _, r := range rows {
		ids[r.ProfileID] = struct{}{}
	}
	return ids, nil
}

func (su *SupabaseRepo) CreateIndustryMembership(ctx context.Context, profileID, industryID uuid.UUID, accessToken string) error {
	client, err := su.clientFor(accessToken)
	if err != nil {
		return err
	}

	payload := map[string]interface{}{
		"id":          uuid.New(),
		"profile_id":  profileID,
		"industry_id": industryID,
	}

	_, count, err := client.From(IndustryMembershipsTable).
		Insert(payload, false, "", "", "exact").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to create industry membership: %v", err)
	}
	if count == 0 {
		return fmt.Errorf("no membership row returned after insert")
	}
	return nil
}
