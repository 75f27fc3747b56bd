package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mentorbay/api/internal/models"
	"github.com/mentorbay/api/internal/services"
)

func ListIndustries(i *services.IndustryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		industries, err := i.ListActive(c.Request.Context())
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, models.SuccessResponse(industries, "industries retrieved successfully"))
	}
}

func GetIndustry(i *services.IndustryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := strings.TrimSpace(c.Param("slug"))
		if slug == "" {
			c.JSON(400, gin.H{"error": "slug is required"})
			return
		}

		industry, err := i.GetBySlug(c.Request.Context(), slug)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(404, gin.H{"error": "industry not found"})
				return
			}
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, industry)
	}
}
