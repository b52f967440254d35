package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogulcan/coursepilot/internal/app/models/dto"
	"github.com/ogulcan/coursepilot/internal/app/repositories"
	"github.com/ogulcan/coursepilot/internal/pkg/apperrors"
)

func newSessionService() SessionService {
	return NewSessionService(repositories.NewMemorySessionStore())
}

func TestStartSession(t *testing.T) {
	svc := newSessionService()

	resp, err := svc.StartSession(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.SessionID)
	assert.Empty(t, resp.Courses)

	// The new session is immediately readable.
	history, err := svc.GetHistory(context.Background(), resp.SessionID)
	require.NoError(t, err)
	assert.Empty(t, history.Courses)
}

func TestGetHistory_UnknownSession(t *testing.T) {
	svc := newSessionService()

	_, err := svc.GetHistory(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestReplaceHistory_NormalizesIDs(t *testing.T) {
	svc := newSessionService()
	ctx := context.Background()

	resp, err := svc.ReplaceHistory(ctx, "s1", &dto.SessionHistoryRequest{
		Courses: []string{"90:101", "198:111", "198:111"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"090:101", "198:111"}, resp.Courses)
}

func TestAppendHistory(t *testing.T) {
	svc := newSessionService()
	ctx := context.Background()

	_, err := svc.ReplaceHistory(ctx, "s1", &dto.SessionHistoryRequest{Courses: []string{"198:111"}})
	require.NoError(t, err)

	resp, err := svc.AppendHistory(ctx, "s1", &dto.SessionHistoryRequest{
		Courses: []string{"640:151", "198:111"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"198:111", "640:151"}, resp.Courses)
}

func TestSessionService_EmptyID(t *testing.T) {
	svc := newSessionService()
	ctx := context.Background()

	_, err := svc.GetHistory(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	_, err = svc.ReplaceHistory(ctx, "", &dto.SessionHistoryRequest{})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	_, err = svc.AppendHistory(ctx, "", &dto.SessionHistoryRequest{})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
