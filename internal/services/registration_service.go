package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mentorbay/api/internal/helpers"
	"github.com/mentorbay/api/internal/models"
	"github.com/patrickmn/go-cache"
)

const (
	flowTTL = 30 * time.Minute

	StepAccountDetails = 1
	StepExpertise      = 2
)

// RegistrationFlow is the server-side state of one guided onboarding run.
// Seekers finish in a single step; mentors go through two. All collected
// fields survive Back transitions.
type RegistrationFlow struct {
	Token    string      `json:"token"`
	Role     models.Role `json:"role"`
	Step     int         `json:"step"`
	Complete bool        `json:"complete"` // step-2 data captured (mentors)

	// Step 1: account details
	Email             string `json:"email"`
	Password          string `json:"-"`
	FullName          string `json:"full_name"`
	ProfessionalTitle string `json:"professional_title"`
	Country           string `json:"country"`
	LinkedinURL       string `json:"linkedin_url"`
	YearsExperience   int    `json:"years_experience"`

	// Step 2: expertise and consulting
	IndustryIDs      []uuid.UUID              `json:"industry_ids"`
	MenteeLevels     []string                 `json:"mentee_levels"`
	RateType         models.MentoringRateType `json:"rate_type"`
	HourlyRate       float64                  `json:"hourly_rate"`
	FreeHoursPerWeek int                      `json:"free_hours_per_week"`
}

type StartRequest struct {
	Role              string `json:"role" binding:"required"`
	Email             string `json:"email" binding:"required,email"`
	Password          string `json:"password" binding:"required"`
	FullName          string `json:"full_name" binding:"required"`
	ProfessionalTitle string `json:"professional_title"`
	Country           string `json:"country"`
	LinkedinURL       string `json:"linkedin_url"`
	YearsExperience   int    `json:"years_experience"`
	// Token resumes an existing flow after a Back transition.
	Token string `json:"token"`
}

type ExpertiseRequest struct {
	IndustryIDs      []uuid.UUID `json:"industry_ids"`
	MenteeLevels     []string    `json:"mentee_levels"`
	RateType         string      `json:"rate_type"`
	HourlyRate       float64     `json:"hourly_rate"`
	FreeHoursPerWeek int         `json:"free_hours_per_week"`
}

type RegistrationResult struct {
	Profile     *models.Profile `json:"profile"`
	Memberships int             `json:"memberships_created"`
}

type RegistrationService struct {
	profileRepo models.ProfileRepo
	flows       *cache.Cache
}

func NewRegistrationService(profileRepo models.ProfileRepo) *RegistrationService {
	return &RegistrationService{
		profileRepo: profileRepo,
		flows:       cache.New(flowTTL, 10*time.Minute),
	}
}

// Start validates the account-details step. Mentor flows advance to step 2 on
// success and stay on step 1 with an error otherwise; seeker flows are ready
// to submit immediately.
func (rs *RegistrationService) Start(req StartRequest) (*RegistrationFlow, error) {
	role := models.Role(strings.TrimSpace(req.Role))
	if !role.IsValid() {
		return nil, fmt.Errorf("role must be seeker or mentor")
	}

	if err := models.Validate.Var(req.Email, "required,email"); err != nil {
		return nil, fmt.Errorf("invalid email format")
	}
	if !helpers.IsPasswordStrong(req.Password) {
		return nil, fmt.Errorf("password is not strong enough")
	}
	if strings.TrimSpace(req.FullName) == "" {
		return nil, fmt.Errorf("full name is required")
	}

	flow := rs.resumeOrNew(req.Token)
	flow.Role = role
	flow.Email = strings.TrimSpace(req.Email)
	flow.Password = req.Password
	flow.FullName = strings.TrimSpace(req.FullName)
	flow.ProfessionalTitle = strings.TrimSpace(req.ProfessionalTitle)
	flow.Country = strings.TrimSpace(req.Country)
	flow.LinkedinURL = strings.TrimSpace(req.LinkedinURL)
	flow.YearsExperience = req.YearsExperience
	flow.Step = StepAccountDetails

	if role == models.RoleMentor {
		if flow.LinkedinURL == "" {
			rs.save(flow)
			return flow, fmt.Errorf("linkedin URL is required")
		}
		if !helpers.IsLinkedinURL(flow.LinkedinURL) {
			rs.save(flow)
			return flow, fmt.Errorf("linkedin URL is not valid")
		}
		if flow.YearsExperience <= 0 {
			rs.save(flow)
			return flow, fmt.Errorf("years of experience is required")
		}
		flow.Step = StepExpertise
	}

	rs.save(flow)
	return flow, nil
}

// SaveExpertise validates the expertise step for mentor flows. Failures keep
// the flow on step 2 without losing any collected field.
func (rs *RegistrationService) SaveExpertise(token string, req ExpertiseRequest) (*RegistrationFlow, error) {
	flow, err := rs.Get(token)
	if err != nil {
		return nil, err
	}
	if flow.Role != models.RoleMentor {
		return flow, fmt.Errorf("expertise step applies to mentor registration only")
	}
	if flow.Step != StepExpertise {
		return flow, fmt.Errorf("account details must be completed first")
	}

	rateType := models.MentoringRateType(strings.TrimSpace(req.RateType))

	// Field state is retained even when validation fails, so the caller can
	// correct a single field without re-sending the rest.
	flow.IndustryIDs = dedupeIDs(req.IndustryIDs)
	flow.MenteeLevels = dedupeStrings(req.MenteeLevels)
	flow.RateType = rateType
	flow.HourlyRate = req.HourlyRate
	flow.FreeHoursPerWeek = req.FreeHoursPerWeek
	flow.Complete = false
	rs.save(flow)

	if len(flow.IndustryIDs) == 0 {
		return flow, fmt.Errorf("select at least one industry")
	}
	if len(flow.MenteeLevels) == 0 {
		return flow, fmt.Errorf("select at least one mentee level")
	}
	if !rateType.IsValid() {
		return flow, fmt.Errorf("rate type must be free, paid or both")
	}
	if (rateType == models.RateTypeFree || rateType == models.RateTypeBoth) && req.FreeHoursPerWeek <= 0 {
		return flow, fmt.Errorf("weekly free hours are required for the chosen rate type")
	}
	if (rateType == models.RateTypePaid || rateType == models.RateTypeBoth) && req.HourlyRate <= 0 {
		return flow, fmt.Errorf("hourly rate is required for the chosen rate type")
	}

	flow.Complete = true
	rs.save(flow)
	return flow, nil
}

// Back moves a mentor flow from step 2 to step 1 without data loss.
func (rs *RegistrationService) Back(token string) (*RegistrationFlow, error) {
	flow, err := rs.Get(token)
	if err != nil {
		return nil, err
	}
	if flow.Step == StepExpertise {
		flow.Step = StepAccountDetails
		rs.save(flow)
	}
	return flow, nil
}

// Submit is the terminal transition: auth signup, then the profile insert,
// then one industry membership insert per selected industry. The inserts are
// sequential and deliberately not rolled back on partial failure; the error
// is surfaced and earlier rows stay in place.
func (rs *RegistrationService) Submit(ctx context.Context, token string) (*RegistrationResult, error) {
	flow, err := rs.Get(token)
	if err != nil {
		return nil, err
	}

	if flow.Role == models.RoleMentor {
		if flow.Step != StepExpertise {
			return nil, fmt.Errorf("complete account details before submitting")
		}
		if !flow.Complete {
			return nil, fmt.Errorf("complete the expertise step before submitting")
		}
	}

	signup, err := rs.profileRepo.SignUp(ctx, flow.Email, flow.Password)
	if err != nil {
		return nil, err
	}

	payload := BuildProfilePayload(flow, signup.ID)
	profile, err := rs.profileRepo.CreateProfile(ctx, payload, "")
	if err != nil {
		return nil, fmt.Errorf("account created but profile insert failed: %v", err)
	}

	created := 0
	for _, industryID := range flow.IndustryIDs {
		if err := rs.profileRepo.CreateIndustryMembership(ctx, signup.ID, industryID, ""); err != nil {
			return nil, fmt.Errorf("profile created but membership insert failed after %d rows: %v", created, err)
		}
		created++
	}

	rs.flows.Delete(flow.Token)

	return &RegistrationResult{Profile: profile, Memberships: created}, nil
}

func (rs *RegistrationService) Get(token string) (*RegistrationFlow, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("flow token is required")
	}
	raw, found := rs.flows.Get(token)
	if !found {
		return nil, fmt.Errorf("registration flow not found or expired")
	}
	flow, ok := raw.(*RegistrationFlow)
	if !ok {
		return nil, fmt.Errorf("invalid registration flow state")
	}
	return flow, nil
}

func (rs *RegistrationService) resumeOrNew(token string) *RegistrationFlow {
	if token != "" {
		if flow, err := rs.Get(token); err == nil {
			return flow
		}
	}
	return &RegistrationFlow{Token: uuid.New().String(), Step: StepAccountDetails}
}

func (rs *RegistrationService) save(flow *RegistrationFlow) {
	rs.flows.Set(flow.Token, flow, cache.DefaultExpiration)
}

// BuildProfilePayload assembles the profiles insert row from a finished flow.
// The legacy consulting fields are still populated for backward compatibility
// with older readers of the table, derived from the mentoring rate type.
func BuildProfilePayload(flow *RegistrationFlow, userID uuid.UUID) map[string]interface{} {
	payload := map[string]interface{}{
		"id":                 userID,
		"full_name":          flow.FullName,
		"role":               flow.Role,
		"professional_title": flow.ProfessionalTitle,
		"linkedin_url":       flow.LinkedinURL,
		"country":            flow.Country,
		"created_at":         time.Now(),
	}

	if flow.Role != models.RoleMentor {
		return payload
	}

	payload["years_experience"] = flow.YearsExperience
	payload["mentee_levels"] = flow.MenteeLevels
	payload["mentoring_rate_type"] = flow.RateType
	payload["hourly_rate"] = flow.HourlyRate
	payload["free_hours_per_week"] = flow.FreeHoursPerWeek

	// Legacy consulting columns
	payload["offers_consulting"] = true
	switch flow.RateType {
	case models.RateTypeFree:
		payload["consulting_type"] = models.ConsultingFree
	case models.RateTypePaid:
		payload["consulting_type"] = models.ConsultingPaid
	case models.RateTypeBoth:
		payload["consulting_type"] = models.ConsultingHybrid
	}
	payload["consulting_rate"] = flow.HourlyRate

	return payload
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func dedupeStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
