package domain

import internaldomain "github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/domain"

// Status represents lifecycle states for publishable entities.
type Status = internaldomain.Status

const (
	// StatusDraft indicates content still under preparation.
	StatusDraft = internaldomain.StatusDraft
	// StatusPublished identifies content visible to public consumers.
	StatusPublished = internaldomain.StatusPublished
	// StatusScheduled marks content with a future publish time configured.
	StatusScheduled = internaldomain.StatusScheduled
	// StatusArchived marks content retained for history but no longer visible.
	StatusArchived = internaldomain.StatusArchived
)

// CanTransition reports whether moving between the two states is allowed.
func CanTransition(from, to Status) bool {
	return internaldomain.CanTransition(from, to)
}
