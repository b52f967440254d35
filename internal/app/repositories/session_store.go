// Package repositories contains the persistence layer for schedule
// planning sessions. The store keeps one ordered, de-duplicated list of
// completed course ids per opaque session id.
package repositories

import "context"

// SessionStore persists per-session course history. Implementations must
// serialize writes to the same session id; operations on different
// sessions may run concurrently.
type SessionStore interface {
	// GetHistory returns the ordered course history for a session, or
	// apperrors.ErrSessionNotFound when the session does not exist.
	GetHistory(ctx context.Context, sessionID string) ([]string, error)

	// ReplaceHistory overwrites a session's history, creating the session
	// if needed. The stored list is de-duplicated preserving first
	// occurrence order.
	ReplaceHistory(ctx context.Context, sessionID string, courseIDs []string) error

	// AppendHistory adds course ids to the end of a session's history,
	// creating the session if needed, and returns the resulting list.
	// Ids already present are not added again.
	AppendHistory(ctx context.Context, sessionID string, courseIDs []string) ([]string, error)
}

// dedupe returns ids with duplicates removed, preserving first
// occurrence order.
func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// merge appends additions onto base, skipping ids base already holds.
func merge(base, additions []string) []string {
	seen := make(map[string]bool, len(base))
	for _, id := range base {
		seen[id] = true
	}
	out := append([]string(nil), base...)
	for _, id := range additions {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
