package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mentorbay/api/internal/models"
	"github.com/mentorbay/api/internal/services"
)

func CreateAnswer(a *services.AnswerService) gin.HandlerFunc {
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
		questionID, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid question ID format"})
			return
		}

		var req services.CreateAnswerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		accessToken := c.GetString("access_token")
		answer, err := a.CreateDraft(c.Request.Context(), mentorID, questionID, req, accessToken)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(404, gin.H{"error": "question not found"})
				return
			}
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		c.JSON(201, answer)
	}
}

func PublishAnswer(a *services.AnswerService) gin.HandlerFunc {
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
		answerID, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid answer ID format"})
			return
		}

		accessToken := c.GetString("access_token")
		answer, err := a.Publish(c.Request.Context(), answerID, mentorID, accessToken)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(404, gin.H{"error": "answer not found"})
				return
			}
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, answer)
	}
}

func UpvoteAnswer(a *services.AnswerService) gin.HandlerFunc {
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
		answerID, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid answer ID format"})
			return
		}

		accessToken := c.GetString("access_token")
		answer, err := a.Upvote(c.Request.Context(), userID, answerID, accessToken)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(404, gin.H{"error": "answer not found"})
				return
			}
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, answer)
	}
}

func RecordAnswerView(a *services.AnswerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		answerID, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid answer ID format"})
			return
		}

		if err := a.RecordView(c.Request.Context(), answerID); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(404, gin.H{"error": "answer not found"})
				return
			}
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, gin.H{"message": "view recorded"})
	}
}

// AnswerSharing returns share-intent links and the embed snippet for an
// answer. Public, no auth.
func AnswerSharing(a *services.AnswerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		answerID, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid answer ID format"})
			return
		}

		sharing, err := a.Sharing(c.Request.Context(), answerID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(404, gin.H{"error": "answer not found"})
				return
			}
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, sharing)
	}
}

func ListMentorAnswers(a *services.AnswerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		mentorID, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid mentor ID format"})
			return
		}

		page, limit := pagination(c)
		answers, total, err := a.ListByMentor(c.Request.Context(), mentorID, (page-1)*limit, limit)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, models.PaginatedResponse(answers, page, limit, total))
	}
}
