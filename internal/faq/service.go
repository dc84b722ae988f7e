package faq

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

// ItemProfile drives the flat form <-> nested record transform for items.
var ItemProfile = mapper.Profile{
	Localized: []string{"question", "answer"},
	Ints:      map[string]int{"order_index": 0},
	Bools:     []string{"is_active"},
	Strings:   []string{"category_id"},
}

// CategoryProfile drives the transform for FAQ categories.
var CategoryProfile = mapper.Profile{
	Localized: []string{"name"},
	Ints:      map[string]int{"order_index": 0},
	Bools:     []string{"is_active"},
	Strings:   []string{"icon", "color"},
}

// CategoryItems pairs a category with its active items for public rendering.
type CategoryItems struct {
	Category *Category `json:"category"`
	Items    []*Item   `json:"items"`
}

// Service manages the FAQ knowledge base.
type Service interface {
	CreateItem(ctx context.Context, form mapper.Form) (*Item, error)
	UpdateItem(ctx context.Context, id uuid.UUID, form mapper.Form) (*Item, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
	GetItem(ctx context.Context, id uuid.UUID) (*Item, error)
	ListItems(ctx context.Context, categoryID *uuid.UUID) ([]*Item, error)
	ListActiveItems(ctx context.Context, categoryID *uuid.UUID) ([]*Item, error)
	IncrementItemView(ctx context.Context, id uuid.UUID) (int64, error)

	CreateCategory(ctx context.Context, form mapper.Form) (*Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, form mapper.Form) (*Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListCategories(ctx context.Context) ([]*Category, error)

	// PublicIndex returns active categories with their active items, ordered
	// for direct rendering.
	PublicIndex(ctx context.Context) ([]*CategoryItems, error)
}

// Repository abstracts storage operations for FAQ records.
type Repository interface {
	CreateItem(ctx context.Context, record *Item) (*Item, error)
	GetItem(ctx context.Context, id uuid.UUID) (*Item, error)
	ListItems(ctx context.Context, categoryID *uuid.UUID, activeOnly bool) ([]*Item, error)
	UpdateItem(ctx context.Context, record *Item) (*Item, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
	CountItems(ctx context.Context, categoryID uuid.UUID) (int, error)
	IncrementItemView(ctx context.Context, id uuid.UUID) (int64, error)

	CreateCategory(ctx context.Context, record *Category) (*Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	UpdateCategory(ctx context.Context, record *Category) (*Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
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

type service struct {
	repo   Repository
	now    func() time.Time
	id     func() uuid.UUID
	logger interfaces.Logger
}

// NewService constructs a FAQ service.
func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{
		repo:   repo,
		now:    time.Now,
		id:     uuid.New,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) CreateItem(ctx context.Context, form mapper.Form) (*Item, error) {
	rec := ItemProfile.ToRecord(form)
	now := s.now()

	item := &Item{
		ID:        s.id(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyItemRecord(item, rec)

	if err := validateItemText(item.Question, item.Answer); err != nil {
		return nil, err
	}
	return s.repo.CreateItem(ctx, item)
}

func (s *service) UpdateItem(ctx context.Context, id uuid.UUID, form mapper.Form) (*Item, error) {
	if id == uuid.Nil {
		return nil, ErrItemIDRequired
	}
	existing, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	rec := ItemProfile.ToRecord(form)
	item := *existing
	applyItemRecord(&item, rec)

	if err := validateItemText(item.Question, item.Answer); err != nil {
		return nil, err
	}
	item.UpdatedAt = s.now()
	return s.repo.UpdateItem(ctx, &item)
}

func (s *service) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrItemIDRequired
	}
	return s.repo.DeleteItem(ctx, id)
}

func (s *service) GetItem(ctx context.Context, id uuid.UUID) (*Item, error) {
	if id == uuid.Nil {
		return nil, ErrItemIDRequired
	}
	return s.repo.GetItem(ctx, id)
}

func (s *service) ListItems(ctx context.Context, categoryID *uuid.UUID) ([]*Item, error) {
	return s.repo.ListItems(ctx, categoryID, false)
}

func (s *service) ListActiveItems(ctx context.Context, categoryID *uuid.UUID) ([]*Item, error) {
	return s.repo.ListItems(ctx, categoryID, true)
}

func (s *service) IncrementItemView(ctx context.Context, id uuid.UUID) (int64, error) {
	if id == uuid.Nil {
		return 0, ErrItemIDRequired
	}
	return s.repo.IncrementItemView(ctx, id)
}

func (s *service) CreateCategory(ctx context.Context, form mapper.Form) (*Category, error) {
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
		errs["name_tr"] = validation.NewError("faq.name_tr_required", "name_tr is required")
	}
	if strings.TrimSpace(category.Name.EN) == "" {
		errs["name_en"] = validation.NewError("faq.name_en_required", "name_en is required")
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return s.repo.CreateCategory(ctx, category)
}

func (s *service) UpdateCategory(ctx context.Context, id uuid.UUID, form mapper.Form) (*Category, error) {
	if id == uuid.Nil {
		return nil, ErrCategoryIDRequired
	}
	existing, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	rec := CategoryProfile.ToRecord(form)
	category := *existing
	applyCategoryRecord(&category, rec)
	category.UpdatedAt = s.now()
	return s.repo.UpdateCategory(ctx, &category)
}

// DeleteCategory refuses to remove categories that still hold items so
// public pages never end up with orphaned questions.
func (s *service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrCategoryIDRequired
	}
	count, err := s.repo.CountItems(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryNotEmpty
	}
	return s.repo.DeleteCategory(ctx, id)
}

func (s *service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *service) PublicIndex(ctx context.Context) ([]*CategoryItems, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	index := make([]*CategoryItems, 0, len(categories))
	for _, category := range categories {
		if !category.IsActive {
			continue
		}
		id := category.ID
		items, err := s.repo.ListItems(ctx, &id, true)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			continue
		}
		index = append(index, &CategoryItems{Category: category, Items: items})
	}
	return index, nil
}

func applyItemRecord(item *Item, rec mapper.Record) {
	if rec.Has("question") {
		item.Question = rec.Text("question")
	}
	if rec.Has("answer") {
		item.Answer = rec.Text("answer")
	}
	if rec.Has("order_index") {
		item.OrderIndex = rec.Int("order_index", 0)
	}
	if rec.Has("is_active") {
		item.IsActive = rec.Bool("is_active")
	}
	if rec.Has("category_id") {
		if parsed, err := uuid.Parse(rec.String("category_id")); err == nil {
			item.CategoryID = &parsed
		} else {
			item.CategoryID = nil
		}
	}
}

func applyCategoryRecord(category *Category, rec mapper.Record) {
	if rec.Has("name") {
		category.Name = rec.Text("name")
	}
	if rec.Has("order_index") {
		category.OrderIndex = rec.Int("order_index", 0)
	}
	if rec.Has("is_active") {
		category.IsActive = rec.Bool("is_active")
	}
	if rec.Has("icon") {
		category.Icon = rec.String("icon")
	}
	if rec.Has("color") {
		category.Color = rec.String("color")
	}
}

func validateItemText(question, answer i18n.Text) error {
	errs := validation.Errors{}
	if strings.TrimSpace(question.TR) == "" {
		errs["question_tr"] = validation.NewError("faq.question_tr_required", "question_tr is required")
	}
	if strings.TrimSpace(question.EN) == "" {
		errs["question_en"] = validation.NewError("faq.question_en_required", "question_en is required")
	}
	if strings.TrimSpace(answer.TR) == "" {
		errs["answer_tr"] = validation.NewError("faq.answer_tr_required", "answer_tr is required")
	}
	if strings.TrimSpace(answer.EN) == "" {
		errs["answer_en"] = validation.NewError("faq.answer_en_required", "answer_en is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
