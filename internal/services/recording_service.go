package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mentorbay/api/internal/models"
)

type RecordingState string

const (
	RecordingIdle      RecordingState = "idle"
	RecordingActive    RecordingState = "recording"
	RecordingPaused    RecordingState = "paused"
	RecordingStopped   RecordingState = "stopped"
	defaultScrollSpeed                = 2.0 // teleprompter lines per second
)

// RecordingSession tracks one mentor's answer-recording run against a
// question. Elapsed time accumulates only while recording and unpaused; it is
// derived from transition timestamps, not from a background ticker, so an
// abandoned session holds no goroutine or timer.
type RecordingSession struct {
	ID                uuid.UUID      `json:"id"`
	MentorID          uuid.UUID      `json:"mentor_id"`
	QuestionID        uuid.UUID      `json:"question_id"`
	State             RecordingState `json:"state"`
	TeleprompterNotes string         `json:"teleprompter_notes"`
	ScrollSpeed       float64        `json:"scroll_speed"`

	accumulated time.Duration
	startedAt   time.Time
	touchedAt   time.Time
}

// SessionSnapshot is the read model returned to callers.
type SessionSnapshot struct {
	ID                 uuid.UUID      `json:"id"`
	QuestionID         uuid.UUID      `json:"question_id"`
	State              RecordingState `json:"state"`
	ElapsedSeconds     int            `json:"elapsed_seconds"`
	TeleprompterOffset float64        `json:"teleprompter_offset"`
	ScrollSpeed        float64        `json:"scroll_speed"`
}

type RecordingService struct {
	answerService *AnswerService

	mu       sync.Mutex
	sessions map[uuid.UUID]*RecordingSession
	now      func() time.Time
}

func NewRecordingService(answerService *AnswerService) *RecordingService {
	return &RecordingService{
		answerService: answerService,
		sessions:      make(map[uuid.UUID]*RecordingSession),
		now:           time.Now,
	}
}

// WithClock swaps the time source; used by tests.
func (rc *RecordingService) WithClock(now func() time.Time) *RecordingService {
	rc.now = now
	return rc
}

func (rc *RecordingService) CreateSession(mentorID, questionID uuid.UUID, notes string) (*SessionSnapshot, error) {
	if mentorID == uuid.Nil || questionID == uuid.Nil {
		return nil, fmt.Errorf("invalid mentor or question ID")
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	session := &RecordingSession{
		ID:                uuid.New(),
		MentorID:          mentorID,
		QuestionID:        questionID,
		State:             RecordingIdle,
		TeleprompterNotes: notes,
		ScrollSpeed:       defaultScrollSpeed,
		touchedAt:         rc.now(),
	}
	rc.sessions[session.ID] = session

	return rc.snapshotLocked(session), nil
}

func (rc *RecordingService) Start(sessionID, mentorID uuid.UUID) (*SessionSnapshot, error) {
	return rc.transition(sessionID, mentorID, func(s *RecordingSession) error {
		if s.State != RecordingIdle {
			return fmt.Errorf("cannot start recording from state %q", s.State)
		}
		s.State = RecordingActive
		s.startedAt = rc.now()
		return nil
	})
}

func (rc *RecordingService) Pause(sessionID, mentorID uuid.UUID) (*SessionSnapshot, error) {
	return rc.transition(sessionID, mentorID, func(s *RecordingSession) error {
		if s.State != RecordingActive {
			return fmt.Errorf("cannot pause from state %q", s.State)
		}
		s.accumulated += rc.now().Sub(s.startedAt)
		s.State = RecordingPaused
		return nil
	})
}

func (rc *RecordingService) Resume(sessionID, mentorID uuid.UUID) (*SessionSnapshot, error) {
	return rc.transition(sessionID, mentorID, func(s *RecordingSession) error {
		if s.State != RecordingPaused {
			return fmt.Errorf("cannot resume from state %q", s.State)
		}
		s.State = RecordingActive
		s.startedAt = rc.now()
		return nil
	})
}

func (rc *RecordingService) Stop(sessionID, mentorID uuid.UUID) (*SessionSnapshot, error) {
	return rc.transition(sessionID, mentorID, func(s *RecordingSession) error {
		switch s.State {
		case RecordingActive:
			s.accumulated += rc.now().Sub(s.startedAt)
		case RecordingPaused:
			// elapsed already folded in at pause time
		default:
			return fmt.Errorf("cannot stop from state %q", s.State)
		}
		s.State = RecordingStopped
		return nil
	})
}

// Reset returns the session to idle with zero elapsed time, regardless of
// its current state.
func (rc *RecordingService) Reset(sessionID, mentorID uuid.UUID) (*SessionSnapshot, error) {
	return rc.transition(sessionID, mentorID, func(s *RecordingSession) error {
		s.State = RecordingIdle
		s.accumulated = 0
		s.startedAt = time.Time{}
		return nil
	})
}

func (rc *RecordingService) SetScrollSpeed(sessionID, mentorID uuid.UUID, speed float64) (*SessionSnapshot, error) {
	if speed <= 0 {
		return nil, fmt.Errorf("scroll speed must be positive")
	}
	return rc.transition(sessionID, mentorID, func(s *RecordingSession) error {
		s.ScrollSpeed = speed
		return nil
	})
}

func (rc *RecordingService) Snapshot(sessionID, mentorID uuid.UUID) (*SessionSnapshot, error) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	session, err := rc.getLocked(sessionID, mentorID)
	if err != nil {
		return nil, err
	}
	return rc.snapshotLocked(session), nil
}

type SubmitRecordingRequest struct {
	ContentType models.ContentType `json:"content_type"`
	MediaPath   string             `json:"media_path"`
	Transcript  string             `json:"transcript"`
	Summary     string             `json:"summary"`
}

// Submit publishes the recorded answer. The session must be stopped first.
func (rc *RecordingService) Submit(ctx context.Context, sessionID, mentorID uuid.UUID, req SubmitRecordingRequest, accessToken string) (*models.Answer, error) {
	rc.mu.Lock()
	session, err := rc.getLocked(sessionID, mentorID)
	if err != nil {
		rc.mu.Unlock()
		return nil, err
	}
	if session.State != RecordingStopped {
		rc.mu.Unlock()
		return nil, fmt.Errorf("stop the recording before submitting")
	}
	elapsed := int(session.accumulated.Seconds())
	questionID := session.QuestionID
	notes := session.TeleprompterNotes
	rc.mu.Unlock()

	answer, err := rc.answerService.CreateFromRecording(ctx, mentorID, questionID, CreateAnswerRequest{
		ContentType:       req.ContentType,
		MediaPath:         req.MediaPath,
		Transcript:        req.Transcript,
		Summary:           req.Summary,
		TeleprompterNotes: notes,
		DurationSeconds:   elapsed,
	}, accessToken)
	if err != nil {
		return nil, err
	}

	rc.mu.Lock()
	delete(rc.sessions, sessionID)
	rc.mu.Unlock()

	return answer, nil
}

func (rc *RecordingService) transition(sessionID, mentorID uuid.UUID, apply func(*RecordingSession) error) (*SessionSnapshot, error) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	session, err := rc.getLocked(sessionID, mentorID)
	if err != nil {
		return nil, err
	}
	if err := apply(session); err != nil {
		return nil, err
	}
	session.touchedAt = rc.now()
	return rc.snapshotLocked(session), nil
}

func (rc *RecordingService) getLocked(sessionID, mentorID uuid.UUID) (*RecordingSession, error) {
	session, ok := rc.sessions[sessionID]
	if !ok {
		return nil, models.ErrNotFound
	}
	if session.MentorID != mentorID {
		return nil, fmt.Errorf("access denied")
	}
	return session, nil
}

func (rc *RecordingService) snapshotLocked(s *RecordingSession) *SessionSnapshot {
	elapsed := s.accumulated
	if s.State == RecordingActive {
		elapsed += rc.now().Sub(s.startedAt)
	}
	seconds := elapsed.Seconds()

	return &SessionSnapshot{
		ID:                 s.ID,
		QuestionID:         s.QuestionID,
		State:              s.State,
		ElapsedSeconds:     int(seconds),
		TeleprompterOffset: seconds * s.ScrollSpeed,
		ScrollSpeed:        s.ScrollSpeed,
	}
}

// SweepIdleSessions drops sessions untouched for longer than maxAge. Called
// periodically from main.
func (rc *RecordingService) SweepIdleSessions(maxAge time.Duration) int {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	removed := 0
	cutoff := rc.now().Add(-maxAge)
	for id, session := range rc.sessions {
		if session.touchedAt.Before(cutoff) {
			delete(rc.sessions, id)
			removed++
		}
	}
	return removed
}
