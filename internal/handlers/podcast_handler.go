package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mentorbay/api/internal/models"
	"github.com/mentorbay/api/internal/services"
)

func ListPodcastSeries(p *services.PodcastService) gin.HandlerFunc {
	return func(c *gin.Context) {
		series, err := p.ListSeries(c.Request.Context())
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, models.SuccessResponse(series, "podcast series retrieved successfully"))
	}
}

func ListPodcastEpisodes(p *services.PodcastService) gin.HandlerFunc {
	return func(c *gin.Context) {
		seriesID, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid series ID format"})
			return
		}

		page, limit := pagination(c)
		episodes, total, err := p.ListEpisodes(c.Request.Context(), seriesID, (page-1)*limit, limit)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, models.PaginatedResponse(episodes, page, limit, total))
	}
}

func GetPodcastEpisode(p *services.PodcastService) gin.HandlerFunc {
	return func(c *gin.Context) {
		episodeID, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid episode ID format"})
			return
		}

		detail, err := p.GetEpisode(c.Request.Context(), episodeID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(404, gin.H{"error": "episode not found"})
				return
			}
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, detail)
	}
}

func InvitePodcastGuest(p *services.PodcastService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, ok := getClaims(c)
		if !ok {
			return
		}
		episodeID, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid episode ID format"})
			return
		}

		var req struct {
			MentorID uuid.UUID `json:"mentor_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		accessToken := c.GetString("access_token")
		invitation, err := p.InviteGuest(c.Request.Context(), episodeID, req.MentorID, accessToken)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(404, gin.H{"error": "episode not found"})
				return
			}
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		c.JSON(201, invitation)
	}
}

// GetEpisodeInvitation resolves an invitation by its opaque token. Public so
// the invited mentor can view it from the emailed link before signing in.
func GetEpisodeInvitation(p *services.PodcastService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.Param("token"))
		if token == "" {
			c.JSON(400, gin.H{"error": "token is required"})
			return
		}

		invitation, err := p.GetInvitation(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(404, gin.H{"error": "invitation not found"})
				return
			}
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, invitation)
	}
}

func RespondToEpisodeInvitation(p *services.PodcastService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := getClaims(c)
		if !ok {
			return
		}
		mentorID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		token := strings.TrimSpace(c.Param("token"))
		if token == "" {
			c.JSON(400, gin.H{"error": "token is required"})
			return
		}

		accessToken := c.GetString("access_token")
		invitation, err := p.RespondToInvitation(c.Request.Context(), token, mentorID, accessToken)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(404, gin.H{"error": "invitation not found"})
				return
			}
			c.JSON(409, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, invitation)
	}
}
