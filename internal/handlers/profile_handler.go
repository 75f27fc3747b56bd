package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mentorbay/api/internal/models"
	"github.com/mentorbay/api/internal/services"
)

func GetProfile(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.Param("id"))
		if id == "" {
			c.JSON(400, gin.H{"error": "profile ID is required"})
			return
		}

		profileID, err := uuid.Parse(id)
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid profile ID format"})
			return
		}

		profile, err := p.GetProfile(profileID, "")
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(404, gin.H{"error": "profile not found"})
				return
			}
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, profile)
	}
}

func UpdateProfile(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		paramID := strings.TrimSpace(c.Param("id"))
		if paramID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "profile ID is required"})
			return
		}

		var fields map[string]interface{}
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		claims, ok := getClaims(c)
		if !ok {
			return
		}

		parsedParamID, err := uuid.Parse(paramID)
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		// A profile row is only mutable by its owner.
		if !claims.IsOwner(paramID) {
			c.JSON(403, gin.H{"error": "access denied"})
			return
		}

		accessToken := c.GetString("access_token")
		updated, err := p.UpdateProfile(c.Request.Context(), fields, parsedParamID, accessToken)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, updated)
	}
}

func UploadAvatar(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := getClaims(c)
		if !ok {
			return
		}
		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		var req struct {
			Image string `json:"image" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		accessToken := c.GetString("access_token")
		avatarURL, err := p.UploadAvatar(c.Request.Context(), userID, req.Image, accessToken)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"avatar_url": avatarURL})
	}
}

func ListMentors(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pagination(c)

		filter := models.MentorFilter{
			Expertise: c.Query("expertise"),
			Country:   c.Query("country"),
		}
		if industry := c.Query("industry_id"); industry != "" {
			id, err := uuid.Parse(industry)
			if err != nil {
				c.JSON(400, gin.H{"error": "invalid industry ID"})
				return
			}
			filter.IndustryID = id
		}

		mentors, total, err := p.ListMentors(c.Request.Context(), filter, (page-1)*limit, limit)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, models.PaginatedResponse(mentors, page, limit, total))
	}
}

func SaveMentor(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := getClaims(c)
		if !ok {
			return
		}
		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		mentorID, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid mentor ID"})
			return
		}

		if err := p.SaveMentor(c.Request.Context(), userID, mentorID); err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"message": "mentor saved"})
	}
}

func UnsaveMentor(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := getClaims(c)
		if !ok {
			return
		}
		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		mentorID, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid mentor ID"})
			return
		}

		if err := p.UnsaveMentor(c.Request.Context(), userID, mentorID); err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"message": "mentor removed from saved list"})
	}
}

func ListSavedMentors(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := getClaims(c)
		if !ok {
			return
		}
		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		mentors, err := p.ListSavedMentors(c.Request.Context(), userID)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, mentors)
	}
}

// pagination reads page/limit query params with sane defaults.
func pagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
