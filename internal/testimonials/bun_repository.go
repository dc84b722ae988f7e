package testimonials

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func NewTestimonialModelRepository(db *bun.DB) repository.Repository[*Testimonial] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Testimonial]{
		NewRecord: func() *Testimonial { return &Testimonial{} },
		GetID: func(t *Testimonial) uuid.UUID {
			return t.ID
		},
		SetID: func(t *Testimonial, id uuid.UUID) {
			t.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(t *Testimonial) string {
			return t.ID.String()
		},
	})
}

// BunRepository persists testimonials through bun.
type BunRepository struct {
	db   *bun.DB
	repo repository.Repository[*Testimonial]
}

func NewBunRepository(db *bun.DB) *BunRepository {
	return &BunRepository{
		db:   db,
		repo: NewTestimonialModelRepository(db),
	}
}

func (r *BunRepository) Create(ctx context.Context, record *Testimonial) (*Testimonial, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, mapStorageError(err, record.ID.String())
	}
	return created, nil
}

func (r *BunRepository) GetByID(ctx context.Context, id uuid.UUID) (*Testimonial, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapStorageError(err, id.String())
	}
	return result, nil
}

func (r *BunRepository) List(ctx context.Context, filter Filter) ([]*Testimonial, error) {
	criteria := []repository.SelectCriteria{
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			if filter.Status != "" {
				q = q.Where("?TableAlias.status = ?", string(filter.Status))
			}
			if filter.Language != "" {
				q = q.Where("?TableAlias.language = ?", filter.Language)
			}
			if filter.FeaturedOnly {
				q = q.Where("?TableAlias.is_featured = TRUE")
			}
			return q.OrderExpr("?TableAlias.created_at DESC")
		}),
	}
	if filter.Limit > 0 {
		criteria = append(criteria, repository.SelectPaginate(filter.Limit, 0))
	}
	records, _, err := r.repo.List(ctx, criteria...)
	if err != nil {
		return nil, mapStorageError(err, "")
	}
	return records, nil
}

func (r *BunRepository) Update(ctx context.Context, record *Testimonial) (*Testimonial, error) {
	updated, err := r.repo.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns(
			"status",
			"is_featured",
			"moderation_notes",
			"approved_at",
			"rejected_at",
			"updated_at",
		),
	)
	if err != nil {
		return nil, mapStorageError(err, record.ID.String())
	}
	return updated, nil
}

func (r *BunRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.NewDelete().
		Model((*Testimonial)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("testimonial delete rows affected: %w", err)
	}
	if affected == 0 {
		return &NotFoundError{Key: id.String()}
	}
	return nil
}

func mapStorageError(err error, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Key: key}
	}
	return fmt.Errorf("testimonial repository error: %w", err)
}
