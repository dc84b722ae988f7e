package packages

import (
	"context"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/logging"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/mapper"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/pkg/interfaces"
)

// Profile drives the flat form <-> nested record transform for packages.
// Prices and client counters are coerced separately because they carry
// numeric semantics the generic profile does not model.
var Profile = mapper.Profile{
	Localized: []string{"title", "description", "duration", "seo_title", "seo_description"},
	Lists:     []string{"features"},
	Ints: map[string]int{
		"order_index":     0,
		"max_clients":     0,
		"current_clients": 0,
	},
	Bools:   []string{"is_popular", "is_active"},
	Strings: []string{"icon", "category"},
}

// Service manages the purchasable package catalogue.
type Service interface {
	Create(ctx context.Context, form mapper.Form) (*Package, error)
	Update(ctx context.Context, id uuid.UUID, form mapper.Form) (*Package, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*Package, error)
	List(ctx context.Context) ([]*Package, error)
	ListActive(ctx context.Context) ([]*Package, error)
	Form(ctx context.Context, id uuid.UUID) (mapper.Form, error)
	ReserveSeat(ctx context.Context, id uuid.UUID) (*Package, error)
	ReleaseSeat(ctx context.Context, id uuid.UUID) (*Package, error)
}

// Repository abstracts storage operations for packages.
type Repository interface {
	Create(ctx context.Context, record *Package) (*Package, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Package, error)
	List(ctx context.Context) ([]*Package, error)
	Update(ctx context.Context, record *Package) (*Package, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AdjustClients(ctx context.Context, id uuid.UUID, delta int) (*Package, error)
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

func WithIDGenerator(generator func() uuid.UUID) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithFallbackContent(enabled bool) ServiceOption {
	return func(s *service) {
		s.fallbackEnabled = enabled
	}
}

type service struct {
	repo            Repository
	now             func() time.Time
	id              func() uuid.UUID
	logger          interfaces.Logger
	fallbackEnabled bool
}

// NewService constructs a package service.
func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{
		repo:            repo,
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

func (s *service) Create(ctx context.Context, form mapper.Form) (*Package, error) {
	rec := Profile.ToRecord(form)
	now := s.now()

	pkg := &Package{
		ID:        s.id(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyRecord(pkg, rec, form)

	errs := validation.Errors{}
	if strings.TrimSpace(pkg.Title.TR) == "" {
		errs["title_tr"] = validation.NewError("packages.title_tr_required", "title_tr is required")
	}
	if strings.TrimSpace(pkg.Title.EN) == "" {
		errs["title_en"] = validation.NewError("packages.title_en_required", "title_en is required")
	}
	if pkg.Price < 0 {
		errs["price"] = validation.NewError("packages.price_negative", "price cannot be negative")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	created, err := s.repo.Create(ctx, pkg)
	if err != nil {
		return nil, err
	}
	s.logger.Info("package created", "id", created.ID, "title_tr", created.Title.TR)
	return created, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, form mapper.Form) (*Package, error) {
	if id == uuid.Nil {
		return nil, ErrPackageIDRequired
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rec := Profile.ToRecord(form)
	pkg := *existing
	applyRecord(&pkg, rec, form)

	if pkg.Price < 0 {
		return nil, validation.Errors{
			"price": validation.NewError("packages.price_negative", "price cannot be negative"),
		}
	}

	pkg.UpdatedAt = s.now()
	return s.repo.Update(ctx, &pkg)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrPackageIDRequired
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Package, error) {
	if id == uuid.Nil {
		return nil, ErrPackageIDRequired
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Package, error) {
	return s.repo.List(ctx)
}

// ListActive serves the public pricing page, substituting the built-in
// catalogue when nothing has been authored yet.
func (s *service) ListActive(ctx context.Context) ([]*Package, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]*Package, 0, len(all))
	for _, pkg := range all {
		if pkg.IsActive {
			active = append(active, pkg)
		}
	}
	if len(active) == 0 && s.fallbackEnabled {
		return DefaultPackages(), nil
	}
	return active, nil
}

func (s *service) Form(ctx context.Context, id uuid.UUID) (mapper.Form, error) {
	pkg, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	form := Profile.ToForm(mapper.Record{
		"title":           pkg.Title,
		"description":     pkg.Description,
		"duration":        pkg.Duration,
		"seo_title":       pkg.SEOTitle,
		"seo_description": pkg.SEODescription,
		"features":        pkg.Features,
		"order_index":     pkg.OrderIndex,
		"max_clients":     pkg.MaxClients,
		"current_clients": pkg.CurrentClients,
		"is_popular":      pkg.IsPopular,
		"is_active":       pkg.IsActive,
		"icon":            pkg.Icon,
		"category":        pkg.Category,
	})
	form["id"] = pkg.ID.String()
	form["price"] = pkg.Price
	form["original_price"] = pkg.OriginalPrice
	form["tags"] = append([]string(nil), pkg.Tags...)
	return form, nil
}

// ReserveSeat claims one client slot, failing when the package is full.
func (s *service) ReserveSeat(ctx context.Context, id uuid.UUID) (*Package, error) {
	if id == uuid.Nil {
		return nil, ErrPackageIDRequired
	}
	return s.repo.AdjustClients(ctx, id, 1)
}

// ReleaseSeat frees a previously claimed client slot, floored at zero.
func (s *service) ReleaseSeat(ctx context.Context, id uuid.UUID) (*Package, error) {
	if id == uuid.Nil {
		return nil, ErrPackageIDRequired
	}
	return s.repo.AdjustClients(ctx, id, -1)
}

func applyRecord(pkg *Package, rec mapper.Record, form mapper.Form) {
	if rec.Has("title") {
		pkg.Title = rec.Text("title")
	}
	if rec.Has("description") {
		pkg.Description = rec.Text("description")
	}
	if rec.Has("duration") {
		pkg.Duration = rec.Text("duration")
	}
	if rec.Has("seo_title") {
		pkg.SEOTitle = rec.Text("seo_title")
	}
	if rec.Has("seo_description") {
		pkg.SEODescription = rec.Text("seo_description")
	}
	if rec.Has("features") {
		pkg.Features = rec.List("features")
	}
	if rec.Has("order_index") {
		pkg.OrderIndex = rec.Int("order_index", 0)
	}
	if rec.Has("max_clients") {
		pkg.MaxClients = rec.Int("max_clients", 0)
	}
	if rec.Has("current_clients") {
		pkg.CurrentClients = rec.Int("current_clients", 0)
	}
	if rec.Has("is_popular") {
		pkg.IsPopular = rec.Bool("is_popular")
	}
	if rec.Has("is_active") {
		pkg.IsActive = rec.Bool("is_active")
	}
	if rec.Has("icon") {
		pkg.Icon = rec.String("icon")
	}
	if rec.Has("category") {
		pkg.Category = rec.String("category")
	}
	if v, ok := form["price"]; ok {
		pkg.Price = toFloat(v, pkg.Price)
	}
	if v, ok := form["original_price"]; ok {
		pkg.OriginalPrice = toFloat(v, pkg.OriginalPrice)
	}
	if v, ok := form["tags"]; ok {
		pkg.Tags = mapper.NormalizeList(v)
	}
}

func toFloat(v any, def float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return def
		}
		return parsed
	}
	return def
}
