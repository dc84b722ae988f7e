package faq

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/i18n"
)

// Category groups FAQ items on the public help page.
type Category struct {
	bun.BaseModel `bun:"table:faq_categories,alias:fc"`

	ID         uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Name       i18n.Text `bun:"name,type:jsonb,notnull" json:"name"`
	Icon       string    `bun:"icon" json:"icon"`
	Color      string    `bun:"color" json:"color"`
	OrderIndex int       `bun:"order_index,notnull,default:0" json:"order_index"`
	IsActive   bool      `bun:"is_active,notnull,default:true" json:"is_active"`
	CreatedAt  time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt  time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Item is a single question/answer pair.
type Item struct {
	bun.BaseModel `bun:"table:faq_items,alias:fi"`

	ID         uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	CategoryID *uuid.UUID `bun:"category_id,type:uuid,nullzero" json:"category_id,omitempty"`
	Question   i18n.Text  `bun:"question,type:jsonb,notnull" json:"question"`
	Answer     i18n.Text  `bun:"answer,type:jsonb,notnull" json:"answer"`
	OrderIndex int        `bun:"order_index,notnull,default:0" json:"order_index"`
	IsActive   bool       `bun:"is_active,notnull,default:true" json:"is_active"`
	ViewCount  int64      `bun:"view_count,notnull,default:0" json:"view_count"`
	CreatedAt  time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt  time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Category *Category `bun:"rel:belongs-to,join:category_id=id" json:"category,omitempty"`
}
