package models

import (
	"time"

	"github.com/google/uuid"
)

type RegionalChapter struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Slug        string    `db:"slug" json:"slug"`
	Region      string    `db:"region" json:"region"`
	Country     string    `db:"country" json:"country"`
	Description string    `db:"description" json:"description"`
	MemberCount int       `db:"member_count" json:"member_count"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type MembershipStatus string

const (
	MembershipActive  MembershipStatus = "active"
	MembershipPending MembershipStatus = "pending"
)

type ChapterMembership struct {
	ID        uuid.UUID        `db:"id" json:"id"`
	ChapterID uuid.UUID        `db:"chapter_id" json:"chapter_id"`
	ProfileID uuid.UUID        `db:"profile_id" json:"profile_id"`
	Status    MembershipStatus `db:"status" json:"status"`
	CreatedAt time.Time        `db:"created_at" json:"created_at"`
}

type JoinRequestStatus string

const (
	JoinRequestPending  JoinRequestStatus = "pending"
	JoinRequestApproved JoinRequestStatus = "approved"
	JoinRequestRejected JoinRequestStatus = "rejected"
)

type ChapterJoinRequest struct {
	ID        uuid.UUID         `db:"id" json:"id"`
	ChapterID uuid.UUID         `db:"chapter_id" json:"chapter_id"`
	ProfileID uuid.UUID         `db:"profile_id" json:"profile_id"`
	Status    JoinRequestStatus `db:"status" json:"status"`
	Message   string            `db:"message" json:"message"`
	CreatedAt time.Time         `db:"created_at" json:"created_at"`
}

type LeadershipRole string

const (
	RoleChapterLead      LeadershipRole = "chapter_lead"
	RoleCoLead           LeadershipRole = "co_lead"
	RoleCommunityManager LeadershipRole = "community_manager"
	RoleAdvisor          LeadershipRole = "advisor"
)

func (lr LeadershipRole) IsValid() bool {
	switch lr {
	case RoleChapterLead, RoleCoLead, RoleCommunityManager, RoleAdvisor:
		return true
	}
	return false
}

type ChapterLeadership struct {
	ID        uuid.UUID      `db:"id" json:"id"`
	ChapterID uuid.UUID      `db:"chapter_id" json:"chapter_id"`
	ProfileID uuid.UUID      `db:"profile_id" json:"profile_id"`
	Role      LeadershipRole `db:"role" json:"role"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}
