package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleSeeker Role = "seeker"
	RoleMentor Role = "mentor"
)

func (r Role) IsValid() bool {
	return r == RoleSeeker || r == RoleMentor
}

type MentoringRateType string

const (
	RateTypeFree MentoringRateType = "free"
	RateTypePaid MentoringRateType = "paid"
	RateTypeBoth MentoringRateType = "both"
)

func (rt MentoringRateType) IsValid() bool {
	return rt == RateTypeFree || rt == RateTypePaid || rt == RateTypeBoth
}

type ConsultingType string

const (
	ConsultingFree   ConsultingType = "free"
	ConsultingPaid   ConsultingType = "paid"
	ConsultingHybrid ConsultingType = "hybrid"
)

type Profile struct {
	ID                uuid.UUID         `db:"id" json:"id"`
	FullName          string            `db:"full_name" json:"full_name" validate:"required"`
	Role              Role              `db:"role" json:"role" validate:"required"`
	ProfessionalTitle string            `db:"professional_title" json:"professional_title"`
	Bio               string            `db:"bio" json:"bio"`
	AvatarURL         string            `db:"avatar_url" json:"avatar_url"`
	Rating            float64           `db:"rating" json:"rating"`
	TotalAnswers      int               `db:"total_answers" json:"total_answers"`
	TotalVideos       int               `db:"total_videos" json:"total_videos"`
	ExpertiseAreas    []string          `db:"expertise_areas" json:"expertise_areas"`
	OffersConsulting  bool              `db:"offers_consulting" json:"offers_consulting"`
	ConsultingType    ConsultingType    `db:"consulting_type" json:"consulting_type,omitempty"`
	ConsultingRate    float64           `db:"consulting_rate" json:"consulting_rate"`
	FreeHoursPerWeek  int               `db:"free_hours_per_week" json:"free_hours_per_week"`
	MentoringRateType MentoringRateType `db:"mentoring_rate_type" json:"mentoring_rate_type,omitempty"`
	HourlyRate        float64           `db:"hourly_rate" json:"hourly_rate"`
	IsStalwart        bool              `db:"is_stalwart" json:"is_stalwart"`
	IsFeatured        bool              `db:"is_featured" json:"is_featured"`
	LinkedinURL       string            `db:"linkedin_url" json:"linkedin_url"`
	YearsExperience   int               `db:"years_experience" json:"years_experience"`
	MenteeLevels      []string          `db:"mentee_levels" json:"mentee_levels"`
	Country           string            `db:"country" json:"country"`
	CreatedAt         time.Time         `db:"created_at" json:"created_at"`
}

// IndustryMembership links a mentor profile to one industry. The onboarding
// flow inserts one row per selected industry.
type IndustryMembership struct {
	ID         uuid.UUID `db:"id" json:"id"`
	ProfileID  uuid.UUID `db:"profile_id" json:"profile_id"`
	IndustryID uuid.UUID `db:"industry_id" json:"industry_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// MentorFilter narrows the mentor directory listing.
type MentorFilter struct {
	IndustryID uuid.UUID
	Expertise  string
	Country    string
}
