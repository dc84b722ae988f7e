package content

import (
	"context"
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/i18n"
)

// BunPostRepository persists posts through bun. Per-locale slug uniqueness
// is enforced by expression indexes on slug->>'tr' / slug->>'en'; counter
// updates run as single UPDATE statements so they stay atomic under
// concurrent requests.
type BunPostRepository struct {
	db   *bun.DB
	repo repository.Repository[*Post]
}

func NewBunPostRepository(db *bun.DB) *BunPostRepository {
	return &BunPostRepository{
		db:   db,
		repo: NewPostModelRepository(db),
	}
}

func (r *BunPostRepository) Create(ctx context.Context, record *Post) (*Post, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, mapSlugViolation(err, "post", record.ID.String())
	}
	return created, nil
}

func (r *BunPostRepository) GetByID(ctx context.Context, id uuid.UUID) (*Post, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapStorageError(err, "post", id.String())
	}
	return result, nil
}

func (r *BunPostRepository) GetBySlug(ctx context.Context, slug, locale string) (*Post, error) {
	locale = i18n.Normalize(locale)
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.slug->>? = ?", locale, slug)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapStorageError(err, "post", slug)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "post", Key: slug}
	}
	return records[0], nil
}

func (r *BunPostRepository) List(ctx context.Context, filter PostFilter) ([]*Post, error) {
	criteria := []repository.SelectCriteria{
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return applyPostFilter(q, filter)
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return applyPostSort(q, filter.Sort)
		}),
	}
	if filter.Limit > 0 {
		criteria = append(criteria, repository.SelectPaginate(filter.Limit, 0))
	}
	records, _, err := r.repo.List(ctx, criteria...)
	if err != nil {
		return nil, mapStorageError(err, "post", "")
	}
	return records, nil
}

func (r *BunPostRepository) Update(ctx context.Context, record *Post) (*Post, error) {
	updated, err := r.repo.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns(
			"status",
			"title",
			"slug",
			"content",
			"excerpt",
			"image_url",
			"image_alt_text",
			"category_id",
			"tags",
			"meta_title",
			"meta_description",
			"meta_keywords",
			"is_featured",
			"allow_comments",
			"read_time",
			"published_at",
			"scheduled_at",
			"updated_at",
		),
	)
	if err != nil {
		return nil, mapSlugViolation(err, "post", record.ID.String())
	}
	return updated, nil
}

func (r *BunPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.NewDelete().
		Model((*Post)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("post delete rows affected: %w", err)
	}
	if affected == 0 {
		return &NotFoundError{Resource: "post", Key: id.String()}
	}
	return nil
}

// IncrementCounter applies the delta in a single statement and returns the
// resulting value, floored at zero. The CASE floor runs on both supported
// dialects; GREATEST does not exist on SQLite.
func (r *BunPostRepository) IncrementCounter(ctx context.Context, id uuid.UUID, counter Counter, delta int64) (int64, error) {
	column := string(CounterViews)
	if counter == CounterLikes {
		column = string(CounterLikes)
	}

	var value int64
	err := r.db.NewUpdate().
		Model((*Post)(nil)).
		Set("? = CASE WHEN ? + ? < 0 THEN 0 ELSE ? + ? END",
			bun.Ident(column), bun.Ident(column), delta, bun.Ident(column), delta).
		Where("?TableAlias.id = ?", id).
		Returning("?", bun.Ident(column)).
		Scan(ctx, &value)
	if err != nil {
		return 0, mapStorageError(err, "post", id.String())
	}
	return value, nil
}

func applyPostFilter(q *bun.SelectQuery, filter PostFilter) *bun.SelectQuery {
	if filter.Status != "" {
		q = q.Where("?TableAlias.status = ?", string(filter.Status))
	}
	if filter.CategoryID != nil {
		q = q.Where("?TableAlias.category_id = ?", *filter.CategoryID)
	}
	if filter.ExcludeID != nil {
		q = q.Where("?TableAlias.id != ?", *filter.ExcludeID)
	}
	if filter.FeaturedOnly {
		q = q.Where("?TableAlias.is_featured = TRUE")
	}
	if filter.DueBefore != nil {
		q = q.Where("?TableAlias.scheduled_at IS NOT NULL").
			Where("?TableAlias.scheduled_at <= ?", *filter.DueBefore)
	}
	return q
}

func applyPostSort(q *bun.SelectQuery, order PostSort) *bun.SelectQuery {
	switch order {
	case SortMostViewed:
		return q.OrderExpr("?TableAlias.view_count DESC, ?TableAlias.created_at DESC")
	case SortRecentlyPublished:
		return q.OrderExpr("?TableAlias.published_at DESC NULLS LAST, ?TableAlias.created_at DESC")
	default:
		return q.OrderExpr("?TableAlias.created_at DESC")
	}
}

// BunCategoryRepository persists blog categories through bun.
type BunCategoryRepository struct {
	db   *bun.DB
	repo repository.Repository[*Category]
}

func NewBunCategoryRepository(db *bun.DB) *BunCategoryRepository {
	return &BunCategoryRepository{
		db:   db,
		repo: NewCategoryModelRepository(db),
	}
}

func (r *BunCategoryRepository) Create(ctx context.Context, record *Category) (*Category, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, mapStorageError(err, "category", record.ID.String())
	}
	return created, nil
}

func (r *BunCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapStorageError(err, "category", id.String())
	}
	return result, nil
}

func (r *BunCategoryRepository) List(ctx context.Context) ([]*Category, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.order_index ASC, ?TableAlias.created_at ASC")
		}),
	)
	if err != nil {
		return nil, mapStorageError(err, "category", "")
	}
	return records, nil
}

func (r *BunCategoryRepository) Update(ctx context.Context, record *Category) (*Category, error) {
	updated, err := r.repo.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns(
			"name",
			"description",
			"slug",
			"color",
			"icon",
			"order_index",
			"is_active",
			"updated_at",
		),
	)
	if err != nil {
		return nil, mapStorageError(err, "category", record.ID.String())
	}
	return updated, nil
}

func (r *BunCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.NewDelete().
		Model((*Category)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("category delete rows affected: %w", err)
	}
	if affected == 0 {
		return &NotFoundError{Resource: "category", Key: id.String()}
	}
	return nil
}

func mapStorageError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

func mapSlugViolation(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unique") && strings.Contains(msg, "slug") {
		return ErrSlugExists
	}
	return mapStorageError(err, resource, key)
}
