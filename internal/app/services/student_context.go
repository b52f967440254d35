package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ogulcan/coursepilot/internal/app/catalog"
	"github.com/ogulcan/coursepilot/internal/app/models"
	"github.com/ogulcan/coursepilot/internal/app/models/dto"
	"github.com/ogulcan/coursepilot/internal/app/repositories"
	"github.com/ogulcan/coursepilot/internal/pkg/apperrors"
	"github.com/ogulcan/coursepilot/internal/pkg/timegrid"
)

// parseStanding maps the wire value to a Standing. Empty means first-year:
// the stricter default, so an unauthenticated caller never sees courses a
// first-year student could not take.
func parseStanding(raw string) (models.Standing, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "", string(models.StandingFirstYear):
		return models.StandingFirstYear, nil
	case string(models.StandingSophomoreOrAbove):
		return models.StandingSophomoreOrAbove, nil
	default:
		return "", fmt.Errorf("%w: unknown standing %q", apperrors.ErrValidationFailed, raw)
	}
}

// buildPreferences translates the wire preference block. Day and time
// parse failures here are caller mistakes, so unlike catalog
// normalization they are validation errors, not soft skips.
func buildPreferences(req *dto.PreferencesRequest) (models.PreferenceSet, error) {
	var prefs models.PreferenceSet
	if req == nil {
		return prefs, nil
	}

	for _, raw := range req.ExcludedDays {
		day, err := timegrid.ParseDay(raw)
		if err != nil {
			return prefs, fmt.Errorf("%w: excluded day %q", apperrors.ErrValidationFailed, raw)
		}
		prefs.ExcludedDays = prefs.ExcludedDays.Add(day)
	}

	if strings.TrimSpace(req.EarliestStart) != "" {
		minutes, err := timegrid.ParseClock(req.EarliestStart)
		if err != nil {
			return prefs, fmt.Errorf("%w: earliest start %q", apperrors.ErrValidationFailed, req.EarliestStart)
		}
		prefs.EarliestStart = &minutes
	}
	if strings.TrimSpace(req.LatestEnd) != "" {
		minutes, err := timegrid.ParseClock(req.LatestEnd)
		if err != nil {
			return prefs, fmt.Errorf("%w: latest end %q", apperrors.ErrValidationFailed, req.LatestEnd)
		}
		prefs.LatestEnd = &minutes
	}
	if prefs.EarliestStart != nil && prefs.LatestEnd != nil && *prefs.EarliestStart >= *prefs.LatestEnd {
		return prefs, fmt.Errorf("%w: earliest start is not before latest end", apperrors.ErrValidationFailed)
	}

	for _, campus := range req.PreferredCampuses {
		if normalized := catalog.NormalizeCampus(campus); normalized != "" {
			prefs.PreferredCampuses = append(prefs.PreferredCampuses, normalized)
		}
	}
	prefs.StrictCampus = req.StrictCampus
	return prefs, nil
}

// mergeCompleted combines the courses listed on the request with the
// stored session history. A session id that resolves to no stored session
// contributes nothing rather than failing the request.
func mergeCompleted(ctx context.Context, sessions repositories.SessionStore, explicit []string, sessionID string) (map[string]bool, error) {
	completed := make(map[string]bool, len(explicit))
	for _, id := range explicit {
		if normalized := catalog.NormalizeCourseID(id); normalized != "" {
			completed[normalized] = true
		}
	}

	if sessionID == "" || sessions == nil {
		return completed, nil
	}

	history, err := sessions.GetHistory(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSessionNotFound) {
			return completed, nil
		}
		return nil, err
	}
	for _, id := range history {
		completed[catalog.NormalizeCourseID(id)] = true
	}
	return completed, nil
}
