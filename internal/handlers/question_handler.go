package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mentorbay/api/internal/models"
	"github.com/mentorbay/api/internal/services"
)

func CreateQuestion(q *services.QuestionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := getClaims(c)
		if !ok {
			return
		}
		seekerID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		var req services.CreateQuestionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		accessToken := c.GetString("access_token")
		question, err := q.Create(c.Request.Context(), seekerID, req, accessToken)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		c.JSON(201, question)
	}
}

func ListQuestions(q *services.QuestionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pagination(c)

		filter := models.QuestionFilter{
			Status:         models.QuestionStatus(c.Query("status")),
			ResponseFormat: models.ResponseFormat(c.Query("format")),
			SortBy:         c.Query("sort"),
		}
		if industry := c.Query("industry_id"); industry != "" {
			id, err := uuid.Parse(industry)
			if err != nil {
				c.JSON(400, gin.H{"error": "invalid industry ID"})
				return
			}
			filter.IndustryID = id
		}

		questions, total, err := q.List(c.Request.Context(), filter, (page-1)*limit, limit)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, models.PaginatedResponse(questions, page, limit, total))
	}
}

// MentorFeed lists open questions visible to the authenticated mentor.
func MentorFeed(q *services.QuestionService) gin.HandlerFunc {
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

		page, limit := pagination(c)
		questions, err := q.ListForMentor(c.Request.Context(), mentorID, (page-1)*limit, limit)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, questions)
	}
}

func GetQuestion(q *services.QuestionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid question ID format"})
			return
		}

		question, err := q.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(404, gin.H{"error": "question not found"})
				return
			}
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, question)
	}
}

func ListQuestionAnswers(q *services.QuestionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid question ID format"})
			return
		}

		answers, err := q.Answers(c.Request.Context(), id)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, answers)
	}
}

func CloseQuestion(q *services.QuestionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := getClaims(c)
		if !ok {
			return
		}
		seekerID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid question ID format"})
			return
		}

		accessToken := c.GetString("access_token")
		if err := q.Close(c.Request.Context(), id, seekerID, accessToken); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(404, gin.H{"error": "question not found"})
				return
			}
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, gin.H{"message": "question closed"})
	}
}
