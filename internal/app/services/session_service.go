package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ogulcan/coursepilot/internal/app/catalog"
	"github.com/ogulcan/coursepilot/internal/app/models/dto"
	"github.com/ogulcan/coursepilot/internal/app/repositories"
	"github.com/ogulcan/coursepilot/internal/pkg/apperrors"
)

// SessionService defines the interface for planning-session history
// operations
type SessionService interface {
	StartSession(ctx context.Context) (*dto.SessionHistoryResponse, error)
	GetHistory(ctx context.Context, sessionID string) (*dto.SessionHistoryResponse, error)
	ReplaceHistory(ctx context.Context, sessionID string, req *dto.SessionHistoryRequest) (*dto.SessionHistoryResponse, error)
	AppendHistory(ctx context.Context, sessionID string, req *dto.SessionHistoryRequest) (*dto.SessionHistoryResponse, error)
}

// sessionServiceImpl implements the SessionService interface
type sessionServiceImpl struct {
	sessions repositories.SessionStore
}

// NewSessionService creates a new session service instance
func NewSessionService(sessions repositories.SessionStore) SessionService {
	return &sessionServiceImpl{sessions: sessions}
}

// StartSession mints a fresh session with an empty history.
func (s *sessionServiceImpl) StartSession(ctx context.Context) (*dto.SessionHistoryResponse, error) {
	id := uuid.New().String()
	if err := s.sessions.ReplaceHistory(ctx, id, nil); err != nil {
		return nil, err
	}
	return &dto.SessionHistoryResponse{SessionID: id, Courses: []string{}}, nil
}

// GetHistory returns a session's ordered course history.
func (s *sessionServiceImpl) GetHistory(ctx context.Context, sessionID string) (*dto.SessionHistoryResponse, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}
	history, err := s.sessions.GetHistory(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return historyResponse(sessionID, history), nil
}

// ReplaceHistory overwrites a session's history with the given courses.
func (s *sessionServiceImpl) ReplaceHistory(ctx context.Context, sessionID string, req *dto.SessionHistoryRequest) (*dto.SessionHistoryResponse, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}
	normalized := normalizeCourseIDs(req.Courses)
	if err := s.sessions.ReplaceHistory(ctx, sessionID, normalized); err != nil {
		return nil, err
	}
	history, err := s.sessions.GetHistory(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return historyResponse(sessionID, history), nil
}

// AppendHistory adds courses to the end of a session's history.
func (s *sessionServiceImpl) AppendHistory(ctx context.Context, sessionID string, req *dto.SessionHistoryRequest) (*dto.SessionHistoryResponse, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}
	history, err := s.sessions.AppendHistory(ctx, sessionID, normalizeCourseIDs(req.Courses))
	if err != nil {
		return nil, err
	}
	return historyResponse(sessionID, history), nil
}

func validateSessionID(sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("%w: session id is required", apperrors.ErrValidationFailed)
	}
	return nil
}

func normalizeCourseIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if normalized := catalog.NormalizeCourseID(id); normalized != "" {
			out = append(out, normalized)
		}
	}
	return out
}

func historyResponse(sessionID string, history []string) *dto.SessionHistoryResponse {
	if history == nil {
		history = []string{}
	}
	return &dto.SessionHistoryResponse{SessionID: sessionID, Courses: history}
}
