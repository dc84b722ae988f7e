package packages

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/i18n"
)

// Package is a purchasable service bundle on the public pricing page.
// Features are per-locale lists; tags are plain labels shared across locales.
type Package struct {
	bun.BaseModel `bun:"table:packages,alias:pkg"`

	ID             uuid.UUID       `bun:",pk,type:uuid" json:"id"`
	Title          i18n.Text       `bun:"title,type:jsonb,notnull" json:"title"`
	Description    i18n.Text       `bun:"description,type:jsonb" json:"description"`
	Price          float64         `bun:"price,notnull,default:0" json:"price"`
	OriginalPrice  float64         `bun:"original_price,notnull,default:0" json:"original_price"`
	Duration       i18n.Text       `bun:"duration,type:jsonb" json:"duration"`
	Features       i18n.StringList `bun:"features,type:jsonb" json:"features"`
	IsPopular      bool            `bun:"is_popular,notnull,default:false" json:"is_popular"`
	IsActive       bool            `bun:"is_active,notnull,default:true" json:"is_active"`
	Icon           string          `bun:"icon" json:"icon"`
	Category       string          `bun:"category" json:"category"`
	OrderIndex     int             `bun:"order_index,notnull,default:0" json:"order_index"`
	MaxClients     int             `bun:"max_clients,notnull,default:0" json:"max_clients"`
	CurrentClients int             `bun:"current_clients,notnull,default:0" json:"current_clients"`
	Tags           []string        `bun:"tags,type:jsonb" json:"tags"`
	SEOTitle       i18n.Text       `bun:"seo_title,type:jsonb" json:"seo_title"`
	SEODescription i18n.Text       `bun:"seo_description,type:jsonb" json:"seo_description"`
	CreatedAt      time.Time       `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt      time.Time       `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// HasCapacity reports whether the package can take another client. A zero
// MaxClients means unlimited.
func (p *Package) HasCapacity() bool {
	return p.MaxClients == 0 || p.CurrentClients < p.MaxClients
}
