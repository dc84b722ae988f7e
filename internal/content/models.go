package content

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/domain"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/i18n"
)

// Post is the canonical record for bilingual blog entries. Localized fields
// are persisted as JSONB {tr,en} pairs so a single row carries both locales.
type Post struct {
	bun.BaseModel `bun:"table:posts,alias:p"`

	ID              uuid.UUID       `bun:",pk,type:uuid" json:"id"`
	Status          domain.Status   `bun:"status,notnull,default:'draft'" json:"status"`
	Title           i18n.Text       `bun:"title,type:jsonb,notnull" json:"title"`
	Slug            i18n.Text       `bun:"slug,type:jsonb,notnull" json:"slug"`
	Content         i18n.Text       `bun:"content,type:jsonb,notnull" json:"content"`
	Excerpt         i18n.Text       `bun:"excerpt,type:jsonb" json:"excerpt"`
	ImageURL        string          `bun:"image_url" json:"image_url"`
	ImageAltText    i18n.Text       `bun:"image_alt_text,type:jsonb" json:"image_alt_text"`
	CategoryID      *uuid.UUID      `bun:"category_id,type:uuid,nullzero" json:"category_id,omitempty"`
	Tags            i18n.StringList `bun:"tags,type:jsonb" json:"tags"`
	MetaTitle       i18n.Text       `bun:"meta_title,type:jsonb" json:"meta_title"`
	MetaDescription i18n.Text       `bun:"meta_description,type:jsonb" json:"meta_description"`
	MetaKeywords    i18n.Text       `bun:"meta_keywords,type:jsonb" json:"meta_keywords"`
	IsFeatured      bool            `bun:"is_featured,notnull,default:false" json:"is_featured"`
	AllowComments   bool            `bun:"allow_comments,notnull,default:true" json:"allow_comments"`
	ReadTime        int             `bun:"read_time,notnull,default:5" json:"read_time"`
	ViewCount       int64           `bun:"view_count,notnull,default:0" json:"view_count"`
	LikeCount       int64           `bun:"like_count,notnull,default:0" json:"like_count"`
	PublishedAt     *time.Time      `bun:"published_at,nullzero" json:"published_at,omitempty"`
	ScheduledAt     *time.Time      `bun:"scheduled_at,nullzero" json:"scheduled_at,omitempty"`
	CreatedAt       time.Time       `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt       time.Time       `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Category *Category `bun:"rel:belongs-to,join:category_id=id" json:"category,omitempty"`
}

// Category groups posts and carries its own localized labels.
type Category struct {
	bun.BaseModel `bun:"table:categories,alias:cat"`

	ID          uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	Name        i18n.Text  `bun:"name,type:jsonb,notnull" json:"name"`
	Description i18n.Text  `bun:"description,type:jsonb" json:"description"`
	Slug        i18n.Text  `bun:"slug,type:jsonb,notnull" json:"slug"`
	Color       string     `bun:"color" json:"color"`
	Icon        string     `bun:"icon" json:"icon"`
	OrderIndex  int        `bun:"order_index,notnull,default:0" json:"order_index"`
	IsActive    bool       `bun:"is_active,notnull,default:true" json:"is_active"`
	CreatedAt   time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}
