package content

import (
	"context"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/i18n"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/logging"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/mapper"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/pkg/interfaces"
)

// CategoryService manages the blog category taxonomy.
type CategoryService interface {
	Create(ctx context.Context, form mapper.Form) (*Category, error)
	Update(ctx context.Context, id uuid.UUID, form mapper.Form) (*Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	ListActive(ctx context.Context) ([]*Category, error)
	Form(ctx context.Context, id uuid.UUID) (mapper.Form, error)
}

// CategoryServiceOption configures the category service.
type CategoryServiceOption func(*categoryService)

func WithCategoryClock(clock func() time.Time) CategoryServiceOption {
	return func(s *categoryService) {
		if clock != nil {
			s.now = clock
		}
	}
}

func WithCategoryIDGenerator(generator IDGenerator) CategoryServiceOption {
	return func(s *categoryService) {
		if generator != nil {
			s.id = generator
		}
	}
}

func WithCategoryLogger(logger interfaces.Logger) CategoryServiceOption {
	return func(s *categoryService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithCategoryFallbackContent(enabled bool) CategoryServiceOption {
	return func(s *categoryService) {
		s.fallbackEnabled = enabled
	}
}

type categoryService struct {
	categories      CategoryRepository
	now             func() time.Time
	id              IDGenerator
	logger          interfaces.Logger
	fallbackEnabled bool
}

// NewCategoryService constructs a category service.
func NewCategoryService(categories CategoryRepository, opts ...CategoryServiceOption) CategoryService {
	s := &categoryService{
		categories:      categories,
		now:             time.Now,
		id:              uuid.New,
		logger:          logging.NoOp(),
		fallbackEnabled: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *categoryService) Create(ctx context.Context, form mapper.Form) (*Category, error) {
	rec := CategoryProfile.ToRecord(form)
	now := s.now()

	category := &Category{
		ID:        s.id(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyCategoryRecord(category, rec)

	errs := validation.Errors{}
	if strings.TrimSpace(category.Name.TR) == "" {
		errs["name_tr"] = requiredFieldError("name_tr")
	}
	if strings.TrimSpace(category.Name.EN) == "" {
		errs["name_en"] = requiredFieldError("name_en")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	category.Slug = i18n.Text{
		TR: resolveSlug(rec.Text("slug").TR, category.Name.TR, i18n.LocaleTurkish),
		EN: resolveSlug(rec.Text("slug").EN, category.Name.EN, i18n.LocaleEnglish),
	}

	created, err := s.categories.Create(ctx, category)
	if err != nil {
		return nil, err
	}
	s.logger.Info("category created", "id", created.ID, "slug_tr", created.Slug.TR)
	return created, nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, form mapper.Form) (*Category, error) {
	if id == uuid.Nil {
		return nil, ErrCategoryIDRequired
	}
	existing, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rec := CategoryProfile.ToRecord(form)
	category := *existing
	applyCategoryRecord(&category, rec)

	if rec.Has("slug") {
		explicit := rec.Text("slug")
		category.Slug = i18n.Text{
			TR: resolveSlug(explicit.TR, category.Name.TR, i18n.LocaleTurkish),
			EN: resolveSlug(explicit.EN, category.Name.EN, i18n.LocaleEnglish),
		}
	}

	category.UpdatedAt = s.now()
	return s.categories.Update(ctx, &category)
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrCategoryIDRequired
	}
	return s.categories.Delete(ctx, id)
}

func (s *categoryService) Get(ctx context.Context, id uuid.UUID) (*Category, error) {
	if id == uuid.Nil {
		return nil, ErrCategoryIDRequired
	}
	return s.categories.GetByID(ctx, id)
}

func (s *categoryService) List(ctx context.Context) ([]*Category, error) {
	return s.categories.List(ctx)
}

// ListActive serves the public taxonomy, substituting the default set when
// nothing has been authored yet so the public site never renders empty.
func (s *categoryService) ListActive(ctx context.Context) ([]*Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]*Category, 0, len(categories))
	for _, category := range categories {
		if category.IsActive {
			active = append(active, category)
		}
	}
	if len(active) == 0 && s.fallbackEnabled {
		return DefaultCategories(), nil
	}
	return active, nil
}

func (s *categoryService) Form(ctx context.Context, id uuid.UUID) (mapper.Form, error) {
	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	form := CategoryProfile.ToForm(mapper.Record{
		"name":        category.Name,
		"description": category.Description,
		"slug":        category.Slug,
		"color":       category.Color,
		"icon":        category.Icon,
		"order_index": category.OrderIndex,
		"is_active":   category.IsActive,
	})
	form["id"] = category.ID.String()
	return form, nil
}

func applyCategoryRecord(category *Category, rec mapper.Record) {
	if rec.Has("name") {
		category.Name = rec.Text("name")
	}
	if rec.Has("description") {
		category.Description = rec.Text("description")
	}
	if rec.Has("color") {
		category.Color = rec.String("color")
	}
	if rec.Has("icon") {
		category.Icon = rec.String("icon")
	}
	if rec.Has("order_index") {
		category.OrderIndex = rec.Int("order_index", 0)
	}
	if rec.Has("is_active") {
		category.IsActive = rec.Bool("is_active")
	}
}
