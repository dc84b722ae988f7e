package domain

import "strings"

// Status represents the lifecycle state of a publishable entity.
type Status string

const (
	// StatusDraft indicates content still under preparation.
	StatusDraft Status = "draft"
	// StatusPublished identifies content visible to public consumers.
	StatusPublished Status = "published"
	// StatusScheduled marks content with a future publish time configured.
	StatusScheduled Status = "scheduled"
	// StatusArchived marks content retained for history but no longer visible.
	StatusArchived Status = "archived"
)

// Known reports whether the status is one of the recognised lifecycle states.
func (s Status) Known() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusScheduled, StatusArchived:
		return true
	}
	return false
}

// Normalize coerces arbitrary status strings into a lifecycle state,
// defaulting to draft for empty input.
func Normalize(input string) Status {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		return StatusDraft
	}
	return Status(trimmed)
}

// CanTransition reports whether moving between the two states is allowed.
//
//	draft     -> published, scheduled, archived
//	scheduled -> published, draft, archived
//	published -> draft, archived
//	archived  -> (terminal)
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	switch from {
	case StatusDraft:
		return to == StatusPublished || to == StatusScheduled || to == StatusArchived
	case StatusScheduled:
		return to == StatusPublished || to == StatusDraft || to == StatusArchived
	case StatusPublished:
		return to == StatusDraft || to == StatusArchived
	}
	return false
}
