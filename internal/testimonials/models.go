package testimonials

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Status tracks a testimonial through moderation. Submissions start pending
// and only approved entries reach public pages.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Testimonial is a visitor-submitted review. The text is written in a single
// language chosen by the author, so it carries a language tag instead of a
// {tr,en} pair.
type Testimonial struct {
	bun.BaseModel `bun:"table:testimonials,alias:tm"`

	ID              uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	Name            string     `bun:"name,notnull" json:"name"`
	Email           string     `bun:"email" json:"email,omitempty"`
	Content         string     `bun:"content,notnull" json:"content"`
	Rating          int        `bun:"rating,notnull" json:"rating"`
	Language        string     `bun:"language,notnull,default:'tr'" json:"language"`
	Status          Status     `bun:"status,notnull,default:'pending'" json:"status"`
	IsFeatured      bool       `bun:"is_featured,notnull,default:false" json:"is_featured"`
	ModerationNotes string     `bun:"moderation_notes" json:"moderation_notes,omitempty"`
	ApprovedAt      *time.Time `bun:"approved_at,nullzero" json:"approved_at,omitempty"`
	RejectedAt      *time.Time `bun:"rejected_at,nullzero" json:"rejected_at,omitempty"`
	CreatedAt       time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt       time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// RatingStats summarizes approved testimonials for the public rating badge.
type RatingStats struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}
