package platform

import (
	"context"

	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/content"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/di"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/domain"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/faq"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/i18n"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/mapper"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/packages"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/testimonials"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/pkg/interfaces"
)

// PostService exports the blog post service contract for consumers of the
// platform package.
type PostService = content.Service

// CategoryService exports the blog category service contract.
type CategoryService = content.CategoryService

// PackageService exports the package catalogue service contract.
type PackageService = packages.Service

// FAQService exports the FAQ service contract.
type FAQService = faq.Service

// TestimonialService exports the testimonial service contract.
type TestimonialService = testimonials.Service

// Scheduler exports the publish scheduler contract.
type Scheduler = interfaces.Scheduler

// Core record types.
type (
	Post        = content.Post
	Category    = content.Category
	PostFilter  = content.PostFilter
	Package     = packages.Package
	FAQItem     = faq.Item
	FAQCategory = faq.Category
	Testimonial = testimonials.Testimonial
	Submission  = testimonials.Submission
	RatingStats = testimonials.RatingStats
)

// Form is the flat admin payload shape; Text and StringList are the nested
// bilingual value types.
type (
	Form       = mapper.Form
	Text       = i18n.Text
	StringList = i18n.StringList
	Status     = domain.Status
)

// Lifecycle states.
const (
	StatusDraft     = domain.StatusDraft
	StatusPublished = domain.StatusPublished
	StatusScheduled = domain.StatusScheduled
	StatusArchived  = domain.StatusArchived
)

// Supported locales.
const (
	LocaleTurkish = i18n.LocaleTurkish
	LocaleEnglish = i18n.LocaleEnglish
)

// Module represents the top level platform runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a platform module using the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Posts returns the configured blog post service.
func (m *Module) Posts() PostService {
	return m.container.Posts()
}

// Categories returns the configured blog category service.
func (m *Module) Categories() CategoryService {
	return m.container.Categories()
}

// Packages returns the package catalogue service, nil when the feature is
// disabled.
func (m *Module) Packages() PackageService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Packages()
}

// FAQ returns the FAQ service, nil when the feature is disabled.
func (m *Module) FAQ() FAQService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.FAQ()
}

// Testimonials returns the testimonial service, nil when the feature is
// disabled.
func (m *Module) Testimonials() TestimonialService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Testimonials()
}

// Scheduler exposes the publish scheduler.
func (m *Module) Scheduler() Scheduler {
	return m.container.Scheduler()
}

// SiteStats aggregates the public counters surfaced on marketing pages.
type SiteStats struct {
	PublishedPosts       int     `json:"published_posts"`
	ActivePackages       int     `json:"active_packages"`
	ApprovedTestimonials int     `json:"approved_testimonials"`
	AverageRating        float64 `json:"average_rating"`
}

// Stats counts live records across enabled features. Disabled features
// report zero; fallback content never inflates the counts.
func (m *Module) Stats(ctx context.Context) (SiteStats, error) {
	var stats SiteStats

	posts, err := m.Posts().List(ctx, PostFilter{Status: StatusPublished})
	if err != nil {
		return SiteStats{}, err
	}
	stats.PublishedPosts = len(posts)

	if svc := m.Packages(); svc != nil {
		pkgs, err := svc.List(ctx)
		if err != nil {
			return SiteStats{}, err
		}
		for _, pkg := range pkgs {
			if pkg.IsActive {
				stats.ActivePackages++
			}
		}
	}

	if svc := m.Testimonials(); svc != nil {
		rating, err := svc.Stats(ctx)
		if err != nil {
			return SiteStats{}, err
		}
		stats.ApprovedTestimonials = rating.Count
		stats.AverageRating = rating.Average
	}

	return stats, nil
}
