package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/mentorbay/api/internal/services"
)

func StartRegistration(r *services.RegistrationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.StartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		flow, err := r.Start(req)
		if err != nil {
			// Validation failures keep the flow on its current step; the
			// token is still returned so the client can correct and retry.
			if flow != nil {
				c.JSON(400, gin.H{"error": err.Error(), "flow": flow})
				return
			}
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, gin.H{"flow": flow})
	}
}

func SaveRegistrationExpertise(r *services.RegistrationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("token")
		var req services.ExpertiseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		flow, err := r.SaveExpertise(token, req)
		if err != nil {
			if flow != nil {
				c.JSON(400, gin.H{"error": err.Error(), "flow": flow})
				return
			}
			c.JSON(404, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, gin.H{"flow": flow})
	}
}

func RegistrationBack(r *services.RegistrationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		flow, err := r.Back(c.Param("token"))
		if err != nil {
			c.JSON(404, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"flow": flow})
	}
}

func SubmitRegistration(r *services.RegistrationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := r.Submit(c.Request.Context(), c.Param("token"))
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, result)
	}
}
