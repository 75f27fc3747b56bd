package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances only when told to, so elapsed-time assertions are exact.
type fakeClock struct {
	t time.Time
}

func (fc *fakeClock) now() time.Time { return fc.t }

func (fc *fakeClock) advance(d time.Duration) { fc.t = fc.t.Add(d) }

func newTestRecorder() (*RecordingService, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
	rc := NewRecordingService(nil).WithClock(clock.now)
	return rc, clock
}

func TestPauseFreezesElapsedTime(t *testing.T) {
	rc, clock := newTestRecorder()

	mentor := uuid.New()
	session, err := rc.CreateSession(mentor, uuid.New(), "intro notes")
	require.NoError(t, err)
	assert.Equal(t, RecordingIdle, session.State)
	assert.Equal(t, 0, session.ElapsedSeconds)

	_, err = rc.Start(session.ID, mentor)
	require.NoError(t, err)

	clock.advance(10 * time.Second)
	snap, err := rc.Pause(session.ID, mentor)
	require.NoError(t, err)
	assert.Equal(t, RecordingPaused, snap.State)
	assert.Equal(t, 10, snap.ElapsedSeconds)

	// Time passing while paused must not count.
	clock.advance(5 * time.Minute)
	snap, err = rc.Snapshot(session.ID, mentor)
	require.NoError(t, err)
	assert.Equal(t, 10, snap.ElapsedSeconds)
}

func TestResumeContinuesFromPausedTotal(t *testing.T) {
	rc, clock := newTestRecorder()

	mentor := uuid.New()
	session, _ := rc.CreateSession(mentor, uuid.New(), "")
	_, err := rc.Start(session.ID, mentor)
	require.NoError(t, err)

	clock.advance(10 * time.Second)
	_, err = rc.Pause(session.ID, mentor)
	require.NoError(t, err)

	clock.advance(time.Minute)
	_, err = rc.Resume(session.ID, mentor)
	require.NoError(t, err)

	clock.advance(7 * time.Second)
	snap, err := rc.Stop(session.ID, mentor)
	require.NoError(t, err)
	assert.Equal(t, RecordingStopped, snap.State)
	assert.Equal(t, 17, snap.ElapsedSeconds)
}

func TestResetReturnsSessionToIdle(t *testing.T) {
	rc, clock := newTestRecorder()

	mentor := uuid.New()
	session, _ := rc.CreateSession(mentor, uuid.New(), "")
	_, _ = rc.Start(session.ID, mentor)
	clock.advance(30 * time.Second)
	_, _ = rc.Stop(session.ID, mentor)

	snap, err := rc.Reset(session.ID, mentor)
	require.NoError(t, err)
	assert.Equal(t, RecordingIdle, snap.State)
	assert.Equal(t, 0, snap.ElapsedSeconds)

	// A reset session can record again from scratch.
	_, err = rc.Start(session.ID, mentor)
	require.NoError(t, err)
	clock.advance(4 * time.Second)
	snap, _ = rc.Snapshot(session.ID, mentor)
	assert.Equal(t, 4, snap.ElapsedSeconds)
}

func TestInvalidTransitionsRejected(t *testing.T) {
	rc, _ := newTestRecorder()

	mentor := uuid.New()
	session, _ := rc.CreateSession(mentor, uuid.New(), "")

	_, err := rc.Pause(session.ID, mentor)
	assert.Error(t, err, "cannot pause before starting")

	_, err = rc.Resume(session.ID, mentor)
	assert.Error(t, err, "cannot resume an idle session")

	_, _ = rc.Start(session.ID, mentor)
	_, err = rc.Start(session.ID, mentor)
	assert.Error(t, err, "cannot start twice")
}

func TestSessionOwnershipEnforced(t *testing.T) {
	rc, _ := newTestRecorder()

	owner := uuid.New()
	session, _ := rc.CreateSession(owner, uuid.New(), "")

	_, err := rc.Start(session.ID, uuid.New())
	assert.Error(t, err, "another mentor must not control the session")
}

func TestTeleprompterOffsetTracksElapsedAndSpeed(t *testing.T) {
	rc, clock := newTestRecorder()

	mentor := uuid.New()
	session, _ := rc.CreateSession(mentor, uuid.New(), "script")

	_, err := rc.SetScrollSpeed(session.ID, mentor, 1.5)
	require.NoError(t, err)

	_, _ = rc.Start(session.ID, mentor)
	clock.advance(20 * time.Second)
	snap, err := rc.Pause(session.ID, mentor)
	require.NoError(t, err)
	assert.InDelta(t, 30.0, snap.TeleprompterOffset, 0.001)
}

func TestSweepDropsOnlyIdleSessions(t *testing.T) {
	rc, clock := newTestRecorder()

	mentor := uuid.New()
	stale, _ := rc.CreateSession(mentor, uuid.New(), "")

	clock.advance(2 * time.Hour)
	fresh, _ := rc.CreateSession(mentor, uuid.New(), "")

	removed := rc.SweepIdleSessions(time.Hour)
	assert.Equal(t, 1, removed)

	_, err := rc.Snapshot(stale.ID, mentor)
	assert.Error(t, err)
	_, err = rc.Snapshot(fresh.ID, mentor)
	assert.NoError(t, err)
}
