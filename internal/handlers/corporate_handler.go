package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/mentorbay/api/internal/models"
	"github.com/mentorbay/api/internal/services"
)

// CreateCorporateLead accepts a company signup form. Public, rate limited.
func CreateCorporateLead(cs *services.CorporateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var account models.CorporateAccount
		if err := c.ShouldBindJSON(&account); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		lead, err := cs.CreateLead(c.Request.Context(), &account)
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		c.JSON(201, lead)
	}
}

func ListCorporateLeads(cs *services.CorporateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pagination(c)
		leads, total, err := cs.ListLeads(c.Request.Context(), (page-1)*limit, limit)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, models.PaginatedResponse(leads, page, limit, total))
	}
}
