package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mentorbay/api/internal/models"
	"github.com/mentorbay/api/internal/services"
)

// recordingIDs pulls the authenticated mentor and the :id path parameter.
func recordingIDs(c *gin.Context) (mentorID, sessionID uuid.UUID, ok bool) {
	claims, found := getClaims(c)
	if !found {
		return uuid.Nil, uuid.Nil, false
	}
	mentorID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return uuid.Nil, uuid.Nil, false
	}
	sessionID, err = uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid session ID format"})
		return uuid.Nil, uuid.Nil, false
	}
	return mentorID, sessionID, true
}

func CreateRecordingSession(r *services.RecordingService) gin.HandlerFunc {
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

		var req struct {
			QuestionID        uuid.UUID `json:"question_id" binding:"required"`
			TeleprompterNotes string    `json:"teleprompter_notes"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		snapshot, err := r.CreateSession(mentorID, req.QuestionID, req.TeleprompterNotes)
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		c.JSON(201, snapshot)
	}
}

// recordingTransition wraps the start/pause/resume/stop/reset endpoints,
// which differ only in the service call they make.
func recordingTransition(apply func(sessionID, mentorID uuid.UUID) (*services.SessionSnapshot, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		mentorID, sessionID, ok := recordingIDs(c)
		if !ok {
			return
		}

		snapshot, err := apply(sessionID, mentorID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(404, gin.H{"error": "recording session not found"})
				return
			}
			c.JSON(409, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, snapshot)
	}
}

func StartRecording(r *services.RecordingService) gin.HandlerFunc {
	return recordingTransition(r.Start)
}

func PauseRecording(r *services.RecordingService) gin.HandlerFunc {
	return recordingTransition(r.Pause)
}

func ResumeRecording(r *services.RecordingService) gin.HandlerFunc {
	return recordingTransition(r.Resume)
}

func StopRecording(r *services.RecordingService) gin.HandlerFunc {
	return recordingTransition(r.Stop)
}

func ResetRecording(r *services.RecordingService) gin.HandlerFunc {
	return recordingTransition(r.Reset)
}

func GetRecordingSession(r *services.RecordingService) gin.HandlerFunc {
	return recordingTransition(r.Snapshot)
}

func SetRecordingScrollSpeed(r *services.RecordingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		mentorID, sessionID, ok := recordingIDs(c)
		if !ok {
			return
		}

		var req struct {
			ScrollSpeed float64 `json:"scroll_speed" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		snapshot, err := r.SetScrollSpeed(sessionID, mentorID, req.ScrollSpeed)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(404, gin.H{"error": "recording session not found"})
				return
			}
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, snapshot)
	}
}

func SubmitRecording(r *services.RecordingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		mentorID, sessionID, ok := recordingIDs(c)
		if !ok {
			return
		}

		var req services.SubmitRecordingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		accessToken := c.GetString("access_token")
		answer, err := r.Submit(c.Request.Context(), sessionID, mentorID, req, accessToken)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(404, gin.H{"error": "recording session not found"})
				return
			}
			c.JSON(409, gin.H{"error": err.Error()})
			return
		}

		c.JSON(201, answer)
	}
}
