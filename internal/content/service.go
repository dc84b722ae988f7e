package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/domain"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/i18n"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/logging"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/mapper"
	platformscheduler "github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/scheduler"
	slugpkg "github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/slug"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/pkg/interfaces"
)

// Service exposes blog post management use-cases. Admin callers submit and
// receive the flat form shape; public read paths return nested records.
type Service interface {
	Create(ctx context.Context, form mapper.Form) (*Post, error)
	Update(ctx context.Context, id uuid.UUID, form mapper.Form) (*Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*Post, error)
	GetBySlug(ctx context.Context, slug, locale string) (*Post, error)
	Form(ctx context.Context, id uuid.UUID) (mapper.Form, error)
	List(ctx context.Context, filter PostFilter) ([]*Post, error)
	ListPublished(ctx context.Context, limit int, categoryID *uuid.UUID) ([]*Post, error)
	ListFeatured(ctx context.Context, limit int) ([]*Post, error)
	ListPopular(ctx context.Context, limit int) ([]*Post, error)
	ListRelated(ctx context.Context, id uuid.UUID, limit int) ([]*Post, error)
	ListTags(ctx context.Context, locale string) ([]string, error)
	Publish(ctx context.Context, id uuid.UUID) (*Post, error)
	Unpublish(ctx context.Context, id uuid.UUID) (*Post, error)
	Archive(ctx context.Context, id uuid.UUID) (*Post, error)
	Schedule(ctx context.Context, id uuid.UUID, at time.Time) (*Post, error)
	ApplyDueSchedules(ctx context.Context) (int, error)
	IncrementView(ctx context.Context, id uuid.UUID) (int64, error)
	ToggleLike(ctx context.Context, id uuid.UUID, liked bool) (int64, error)
}

// PostSort selects the ordering applied to listings.
type PostSort string

const (
	SortNewest            PostSort = "newest"
	SortRecentlyPublished PostSort = "recently_published"
	SortMostViewed        PostSort = "most_viewed"
)

// PostFilter narrows listing queries.
type PostFilter struct {
	Status       domain.Status
	CategoryID   *uuid.UUID
	ExcludeID    *uuid.UUID
	FeaturedOnly bool
	DueBefore    *time.Time
	Sort         PostSort
	Limit        int
}

// Counter names the post counters that move through atomic increments.
type Counter string

const (
	CounterViews Counter = "view_count"
	CounterLikes Counter = "like_count"
)

// PostRepository abstracts storage operations for posts. Create and Update
// surface ErrSlugExists when a per-locale slug unique constraint trips.
// IncrementCounter must be atomic at the storage layer: never
// read-modify-write.
type PostRepository interface {
	Create(ctx context.Context, record *Post) (*Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)
	GetBySlug(ctx context.Context, slug, locale string) (*Post, error)
	List(ctx context.Context, filter PostFilter) ([]*Post, error)
	Update(ctx context.Context, record *Post) (*Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementCounter(ctx context.Context, id uuid.UUID, counter Counter, delta int64) (int64, error)
}

// CategoryRepository abstracts storage operations for blog categories.
type CategoryRepository interface {
	Create(ctx context.Context, record *Category) (*Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	Update(ctx context.Context, record *Category) (*Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// IDGenerator produces identifiers for new records.
type IDGenerator func() uuid.UUID

// WithIDGenerator overrides the ID generator, used mainly for tests.
func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithLogger attaches a logger to the service.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithScheduler overrides the scheduler used for publish automation.
func WithScheduler(scheduler interfaces.Scheduler) ServiceOption {
	return func(s *service) {
		if scheduler != nil {
			s.scheduler = scheduler
		}
	}
}

// WithFallbackContent toggles the default-content resolver on public reads.
func WithFallbackContent(enabled bool) ServiceOption {
	return func(s *service) {
		s.fallbackEnabled = enabled
	}
}

type service struct {
	posts           PostRepository
	now             func() time.Time
	id              IDGenerator
	logger          interfaces.Logger
	scheduler       interfaces.Scheduler
	fallbackEnabled bool
}

// NewService constructs a post service with the required dependencies.
func NewService(posts PostRepository, opts ...ServiceOption) Service {
	s := &service{
		posts:           posts,
		now:             time.Now,
		id:              uuid.New,
		logger:          logging.NoOp(),
		scheduler:       platformscheduler.NewNoOp(),
		fallbackEnabled: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create runs the flat form through the normalization pipeline and persists
// a new post. Missing mandatory localized fields fail before any
// persistence attempt.
func (s *service) Create(ctx context.Context, form mapper.Form) (*Post, error) {
	rec := PostProfile.ToRecord(form)
	now := s.now()

	status := domain.StatusDraft
	if rec.Has("status") {
		status = domain.Normalize(rec.String("status"))
		if !status.Known() {
			return nil, fmt.Errorf("%w: %q", ErrStatusInvalid, rec.String("status"))
		}
	}

	post := &Post{
		ID:            s.id(),
		Status:        status,
		AllowComments: true,
		ReadTime:      DefaultReadTime,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	applyRecord(post, rec)

	errs := validation.Errors{}
	if strings.TrimSpace(post.Title.TR) == "" {
		errs["title_tr"] = requiredFieldError("title_tr")
	}
	if strings.TrimSpace(post.Title.EN) == "" {
		errs["title_en"] = requiredFieldError("title_en")
	}
	if status == domain.StatusPublished || status == domain.StatusScheduled {
		collectPublishErrors(post, errs)
	}
	if status == domain.StatusScheduled {
		if post.ScheduledAt == nil || !post.ScheduledAt.After(now) {
			errs["scheduled_at"] = validation.NewError(
				"content.scheduled_at_invalid", "scheduled_at must be in the future")
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	post.Slug = i18n.Text{
		TR: resolveSlug(rec.Text("slug").TR, post.Title.TR, i18n.LocaleTurkish),
		EN: resolveSlug(rec.Text("slug").EN, post.Title.EN, i18n.LocaleEnglish),
	}
	if post.Slug.TR == "" || post.Slug.EN == "" {
		errs["slug_tr"] = validation.NewError(
			"content.slug_unresolvable", "a slug could not be derived from the title")
		return nil, errs
	}

	if status == domain.StatusPublished {
		post.PublishedAt = &now
	}

	created, err := s.createWithRetry(ctx, post)
	if err != nil {
		return nil, err
	}
	s.logger.Info("post created", "id", created.ID, "slug_tr", created.Slug.TR)
	return created, nil
}

// Update merges a partial flat form onto an existing post. Fields not
// supplied keep their stored values; counters are untouchable from here.
func (s *service) Update(ctx context.Context, id uuid.UUID, form mapper.Form) (*Post, error) {
	if id == uuid.Nil {
		return nil, ErrPostIDRequired
	}
	existing, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rec := PostProfile.ToRecord(form)
	now := s.now()
	post := *existing
	applyRecord(&post, rec)

	if rec.Has("slug") {
		explicit := rec.Text("slug")
		post.Slug = i18n.Text{
			TR: resolveSlug(explicit.TR, post.Title.TR, i18n.LocaleTurkish),
			EN: resolveSlug(explicit.EN, post.Title.EN, i18n.LocaleEnglish),
		}
	}

	if rec.Has("status") {
		next := domain.Normalize(rec.String("status"))
		if !next.Known() {
			return nil, fmt.Errorf("%w: %q", ErrStatusInvalid, rec.String("status"))
		}
		if !domain.CanTransition(existing.Status, next) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrStatusTransition, existing.Status, next)
		}
		if next == domain.StatusPublished {
			errs := validation.Errors{}
			collectPublishErrors(&post, errs)
			if len(errs) > 0 {
				return nil, errs
			}
			if post.PublishedAt == nil {
				post.PublishedAt = &now
			}
		}
		if next == domain.StatusScheduled {
			if post.ScheduledAt == nil || !post.ScheduledAt.After(now) {
				return nil, ErrScheduleInvalid
			}
		}
		post.Status = next
	}

	post.UpdatedAt = now
	updated, err := s.updateWithRetry(ctx, &post)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a post permanently. There are no tombstones.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrPostIDRequired
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.scheduler.CancelByKey(ctx, platformscheduler.PostPublishJobKey(id)); err != nil &&
		!errors.Is(err, interfaces.ErrJobNotFound) {
		s.logger.Warn("cancel publish job", "id", id, "error", err)
	}
	return nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Post, error) {
	if id == uuid.Nil {
		return nil, ErrPostIDRequired
	}
	return s.posts.GetByID(ctx, id)
}

// GetBySlug resolves a published post by slug, trying the requested locale
// first and falling back to the other so language-switched URLs keep
// working.
func (s *service) GetBySlug(ctx context.Context, slug, locale string) (*Post, error) {
	locale = i18n.Normalize(locale)
	post, err := s.posts.GetBySlug(ctx, slug, locale)
	if IsNotFound(err) {
		post, err = s.posts.GetBySlug(ctx, slug, i18n.Other(locale))
	}
	if err != nil {
		return nil, err
	}
	if post.Status != domain.StatusPublished {
		return nil, &NotFoundError{Resource: "post", Key: slug}
	}
	return post, nil
}

// Form returns the flat edit-form shape for an existing post.
func (s *service) Form(ctx context.Context, id uuid.UUID) (mapper.Form, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	form := PostProfile.ToForm(postRecord(post))
	form["id"] = post.ID.String()
	form["view_count"] = post.ViewCount
	form["like_count"] = post.LikeCount
	form["created_at"] = post.CreatedAt
	form["updated_at"] = post.UpdatedAt
	return form, nil
}

func (s *service) List(ctx context.Context, filter PostFilter) ([]*Post, error) {
	return s.posts.List(ctx, filter)
}

// ListPublished serves the public listing. Due scheduled posts are promoted
// first; an empty result substitutes the pre-authored default payload so
// public pages never render empty.
func (s *service) ListPublished(ctx context.Context, limit int, categoryID *uuid.UUID) ([]*Post, error) {
	if _, err := s.ApplyDueSchedules(ctx); err != nil {
		s.logger.Warn("apply due schedules", "error", err)
	}

	posts, err := s.posts.List(ctx, PostFilter{
		Status:     domain.StatusPublished,
		CategoryID: categoryID,
		Sort:       SortRecentlyPublished,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 && s.fallbackEnabled && categoryID == nil {
		return limitPosts(DefaultPosts(), limit), nil
	}
	return posts, nil
}

func (s *service) ListFeatured(ctx context.Context, limit int) ([]*Post, error) {
	if limit <= 0 {
		limit = 3
	}
	return s.posts.List(ctx, PostFilter{
		Status:       domain.StatusPublished,
		FeaturedOnly: true,
		Sort:         SortRecentlyPublished,
		Limit:        limit,
	})
}

func (s *service) ListPopular(ctx context.Context, limit int) ([]*Post, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.posts.List(ctx, PostFilter{
		Status: domain.StatusPublished,
		Sort:   SortMostViewed,
		Limit:  limit,
	})
}

// ListRelated returns other published posts in the same category.
func (s *service) ListRelated(ctx context.Context, id uuid.UUID, limit int) ([]*Post, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.CategoryID == nil {
		return []*Post{}, nil
	}
	if limit <= 0 {
		limit = 3
	}
	return s.posts.List(ctx, PostFilter{
		Status:     domain.StatusPublished,
		CategoryID: post.CategoryID,
		ExcludeID:  &id,
		Sort:       SortRecentlyPublished,
		Limit:      limit,
	})
}

// ListTags returns the distinct tags used by published posts for a locale,
// in first-seen order.
func (s *service) ListTags(ctx context.Context, locale string) ([]string, error) {
	posts, err := s.posts.List(ctx, PostFilter{
		Status: domain.StatusPublished,
		Sort:   SortRecentlyPublished,
	})
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	tags := []string{}
	for _, post := range posts {
		for _, tag := range post.Tags.In(locale) {
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

func (s *service) Publish(ctx context.Context, id uuid.UUID) (*Post, error) {
	return s.transition(ctx, id, domain.StatusPublished)
}

func (s *service) Unpublish(ctx context.Context, id uuid.UUID) (*Post, error) {
	return s.transition(ctx, id, domain.StatusDraft)
}

func (s *service) Archive(ctx context.Context, id uuid.UUID) (*Post, error) {
	return s.transition(ctx, id, domain.StatusArchived)
}

// Schedule marks the post for automatic publication at the given time and
// registers the matching scheduler job.
func (s *service) Schedule(ctx context.Context, id uuid.UUID, at time.Time) (*Post, error) {
	if id == uuid.Nil {
		return nil, ErrPostIDRequired
	}
	now := s.now()
	if !at.After(now) {
		return nil, ErrScheduleInvalid
	}
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(post.Status, domain.StatusScheduled) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrStatusTransition, post.Status, domain.StatusScheduled)
	}

	post.Status = domain.StatusScheduled
	post.ScheduledAt = &at
	post.UpdatedAt = now
	updated, err := s.posts.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	if _, err := s.scheduler.Enqueue(ctx, interfaces.JobSpec{
		Key:   platformscheduler.PostPublishJobKey(id),
		Type:  platformscheduler.JobTypePostPublish,
		RunAt: at,
		Payload: map[string]any{
			"post_id": id.String(),
		},
	}); err != nil {
		s.logger.Warn("enqueue publish job", "id", id, "error", err)
	}
	return updated, nil
}

// ApplyDueSchedules promotes every scheduled post whose time has elapsed.
func (s *service) ApplyDueSchedules(ctx context.Context) (int, error) {
	now := s.now()
	due, err := s.posts.List(ctx, PostFilter{
		Status:    domain.StatusScheduled,
		DueBefore: &now,
	})
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, post := range due {
		post.Status = domain.StatusPublished
		if post.PublishedAt == nil {
			publishedAt := now
			if post.ScheduledAt != nil {
				publishedAt = *post.ScheduledAt
			}
			post.PublishedAt = &publishedAt
		}
		post.UpdatedAt = now
		if _, err := s.posts.Update(ctx, post); err != nil {
			s.logger.Error("promote scheduled post", "id", post.ID, "error", err)
			continue
		}
		if err := s.scheduler.CancelByKey(ctx, platformscheduler.PostPublishJobKey(post.ID)); err != nil &&
			!errors.Is(err, interfaces.ErrJobNotFound) {
			s.logger.Warn("cancel publish job", "id", post.ID, "error", err)
		}
		applied++
	}
	return applied, nil
}

// IncrementView bumps the view counter through the storage layer's atomic
// increment so concurrent requests never lose updates.
func (s *service) IncrementView(ctx context.Context, id uuid.UUID) (int64, error) {
	if id == uuid.Nil {
		return 0, ErrPostIDRequired
	}
	return s.posts.IncrementCounter(ctx, id, CounterViews, 1)
}

// ToggleLike moves the like counter by one in either direction, floored at
// zero by the repository.
func (s *service) ToggleLike(ctx context.Context, id uuid.UUID, liked bool) (int64, error) {
	if id == uuid.Nil {
		return 0, ErrPostIDRequired
	}
	delta := int64(1)
	if !liked {
		delta = -1
	}
	return s.posts.IncrementCounter(ctx, id, CounterLikes, delta)
}

func (s *service) transition(ctx context.Context, id uuid.UUID, next domain.Status) (*Post, error) {
	if id == uuid.Nil {
		return nil, ErrPostIDRequired
	}
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(post.Status, next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrStatusTransition, post.Status, next)
	}

	now := s.now()
	if next == domain.StatusPublished {
		errs := validation.Errors{}
		collectPublishErrors(post, errs)
		if len(errs) > 0 {
			return nil, errs
		}
		if post.PublishedAt == nil {
			post.PublishedAt = &now
		}
	}
	post.Status = next
	post.UpdatedAt = now
	return s.posts.Update(ctx, post)
}

func (s *service) createWithRetry(ctx context.Context, post *Post) (*Post, error) {
	created, err := s.posts.Create(ctx, post)
	if !errors.Is(err, ErrSlugExists) {
		return created, err
	}

	// One retry with a fresh disambiguating suffix; a second collision is a
	// transient failure for the caller to retry.
	now := s.now()
	post.Slug = i18n.Text{
		TR: slugpkg.WithSuffix(post.Slug.TR, now),
		EN: slugpkg.WithSuffix(post.Slug.EN, now),
	}
	created, err = s.posts.Create(ctx, post)
	if errors.Is(err, ErrSlugExists) {
		return nil, ErrSlugConflict
	}
	return created, err
}

func (s *service) updateWithRetry(ctx context.Context, post *Post) (*Post, error) {
	updated, err := s.posts.Update(ctx, post)
	if !errors.Is(err, ErrSlugExists) {
		return updated, err
	}

	now := s.now()
	post.Slug = i18n.Text{
		TR: slugpkg.WithSuffix(post.Slug.TR, now),
		EN: slugpkg.WithSuffix(post.Slug.EN, now),
	}
	updated, err = s.posts.Update(ctx, post)
	if errors.Is(err, ErrSlugExists) {
		return nil, ErrSlugConflict
	}
	return updated, err
}

// applyRecord copies the fields present in a normalized record onto the
// post. Counters and timestamps are managed elsewhere.
func applyRecord(post *Post, rec mapper.Record) {
	if rec.Has("title") {
		post.Title = rec.Text("title")
	}
	if rec.Has("content") {
		post.Content = rec.Text("content")
	}
	if rec.Has("excerpt") {
		post.Excerpt = rec.Text("excerpt")
	}
	if rec.Has("image_alt_text") {
		post.ImageAltText = rec.Text("image_alt_text")
	}
	if rec.Has("meta_title") {
		post.MetaTitle = rec.Text("meta_title")
	}
	if rec.Has("meta_description") {
		post.MetaDescription = rec.Text("meta_description")
	}
	if rec.Has("meta_keywords") {
		post.MetaKeywords = rec.Text("meta_keywords")
	}
	if rec.Has("tags") {
		post.Tags = rec.List("tags")
	}
	if rec.Has("read_time") {
		post.ReadTime = rec.Int("read_time", DefaultReadTime)
	}
	if rec.Has("is_featured") {
		post.IsFeatured = rec.Bool("is_featured")
	}
	if rec.Has("allow_comments") {
		post.AllowComments = rec.Bool("allow_comments")
	}
	if rec.Has("image_url") {
		post.ImageURL = rec.String("image_url")
	}
	if rec.Has("category_id") {
		if parsed, err := uuid.Parse(rec.String("category_id")); err == nil {
			post.CategoryID = &parsed
		} else {
			post.CategoryID = nil
		}
	}
	if rec.Has("published_at") {
		post.PublishedAt = asTime(rec.String("published_at"))
	}
	if rec.Has("scheduled_at") {
		post.ScheduledAt = asTime(rec.String("scheduled_at"))
	}
}

// postRecord renders a post back into the nested record shape consumed by
// the mapper, for edit-form round trips.
func postRecord(post *Post) mapper.Record {
	rec := mapper.Record{
		"title":            post.Title,
		"slug":             post.Slug,
		"content":          post.Content,
		"excerpt":          post.Excerpt,
		"image_alt_text":   post.ImageAltText,
		"meta_title":       post.MetaTitle,
		"meta_description": post.MetaDescription,
		"meta_keywords":    post.MetaKeywords,
		"tags":             post.Tags,
		"read_time":        post.ReadTime,
		"is_featured":      post.IsFeatured,
		"allow_comments":   post.AllowComments,
		"image_url":        post.ImageURL,
		"status":           string(post.Status),
	}
	if post.CategoryID != nil {
		rec["category_id"] = post.CategoryID.String()
	}
	if post.PublishedAt != nil {
		rec["published_at"] = post.PublishedAt.Format(time.RFC3339)
	}
	if post.ScheduledAt != nil {
		rec["scheduled_at"] = post.ScheduledAt.Format(time.RFC3339)
	}
	return rec
}

func collectPublishErrors(post *Post, errs validation.Errors) {
	if strings.TrimSpace(post.Title.TR) == "" {
		errs["title_tr"] = requiredFieldError("title_tr")
	}
	if strings.TrimSpace(post.Title.EN) == "" {
		errs["title_en"] = requiredFieldError("title_en")
	}
	if strings.TrimSpace(post.Content.TR) == "" {
		errs["content_tr"] = requiredFieldError("content_tr")
	}
	if strings.TrimSpace(post.Content.EN) == "" {
		errs["content_en"] = requiredFieldError("content_en")
	}
}

func resolveSlug(explicit, title, locale string) string {
	explicit = strings.TrimSpace(explicit)
	if explicit != "" {
		if slugpkg.IsValid(explicit) {
			return explicit
		}
		if normalized := slugpkg.Generate(explicit, locale); normalized != "" {
			return normalized
		}
	}
	return slugpkg.Generate(title, locale)
}

func asTime(value string) *time.Time {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return &parsed
		}
	}
	return nil
}

func limitPosts(posts []*Post, limit int) []*Post {
	if limit > 0 && len(posts) > limit {
		return posts[:limit]
	}
	return posts
}
