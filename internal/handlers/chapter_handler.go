package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mentorbay/api/internal/models"
	"github.com/mentorbay/api/internal/services"
)

func ListChapters(ch *services.ChapterService) gin.HandlerFunc {
	return func(c *gin.Context) {
		chapters, err := ch.ListChapters(c.Request.Context())
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, models.SuccessResponse(chapters, "chapters retrieved successfully"))
	}
}

func GetChapter(ch *services.ChapterService) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := strings.TrimSpace(c.Param("slug"))
		if slug == "" {
			c.JSON(400, gin.H{"error": "slug is required"})
			return
		}

		detail, err := ch.GetChapter(c.Request.Context(), slug)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(404, gin.H{"error": "chapter not found"})
				return
			}
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, detail)
	}
}

func RequestChapterMembership(ch *services.ChapterService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := getClaims(c)
		if !ok {
			return
		}
		profileID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		slug := strings.TrimSpace(c.Param("slug"))
		if slug == "" {
			c.JSON(400, gin.H{"error": "slug is required"})
			return
		}

		var req struct {
			Message string `json:"message"`
		}
		// Body is optional; a join request without a message is fine.
		_ = c.ShouldBindJSON(&req)

		accessToken := c.GetString("access_token")
		request, err := ch.RequestToJoin(c.Request.Context(), slug, profileID, req.Message, accessToken)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(404, gin.H{"error": "chapter not found"})
				return
			}
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		c.JSON(201, request)
	}
}
