package faq

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func NewItemModelRepository(db *bun.DB) repository.Repository[*Item] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Item]{
		NewRecord: func() *Item { return &Item{} },
		GetID: func(i *Item) uuid.UUID {
			return i.ID
		},
		SetID: func(i *Item, id uuid.UUID) {
			i.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(i *Item) string {
			return i.ID.String()
		},
	})
}

func NewCategoryModelRepository(db *bun.DB) repository.Repository[*Category] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Category]{
		NewRecord: func() *Category { return &Category{} },
		GetID: func(c *Category) uuid.UUID {
			return c.ID
		},
		SetID: func(c *Category, id uuid.UUID) {
			c.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(c *Category) string {
			return c.ID.String()
		},
	})
}

// BunRepository persists FAQ records through bun.
type BunRepository struct {
	db         *bun.DB
	items      repository.Repository[*Item]
	categories repository.Repository[*Category]
}

func NewBunRepository(db *bun.DB) *BunRepository {
	return &BunRepository{
		db:         db,
		items:      NewItemModelRepository(db),
		categories: NewCategoryModelRepository(db),
	}
}

func (r *BunRepository) CreateItem(ctx context.Context, record *Item) (*Item, error) {
	created, err := r.items.Create(ctx, record)
	if err != nil {
		return nil, mapStorageError(err, "item", record.ID.String())
	}
	return created, nil
}

func (r *BunRepository) GetItem(ctx context.Context, id uuid.UUID) (*Item, error) {
	result, err := r.items.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapStorageError(err, "item", id.String())
	}
	return result, nil
}

func (r *BunRepository) ListItems(ctx context.Context, categoryID *uuid.UUID, activeOnly bool) ([]*Item, error) {
	records, _, err := r.items.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			if categoryID != nil {
				q = q.Where("?TableAlias.category_id = ?", *categoryID)
			}
			if activeOnly {
				q = q.Where("?TableAlias.is_active = TRUE")
			}
			return q.OrderExpr("?TableAlias.order_index ASC, ?TableAlias.created_at DESC")
		}),
	)
	if err != nil {
		return nil, mapStorageError(err, "item", "")
	}
	return records, nil
}

func (r *BunRepository) UpdateItem(ctx context.Context, record *Item) (*Item, error) {
	updated, err := r.items.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns(
			"category_id",
			"question",
			"answer",
			"order_index",
			"is_active",
			"updated_at",
		),
	)
	if err != nil {
		return nil, mapStorageError(err, "item", record.ID.String())
	}
	return updated, nil
}

func (r *BunRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.NewDelete().
		Model((*Item)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete faq item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("faq item delete rows affected: %w", err)
	}
	if affected == 0 {
		return &NotFoundError{Resource: "item", Key: id.String()}
	}
	return nil
}

func (r *BunRepository) CountItems(ctx context.Context, categoryID uuid.UUID) (int, error) {
	count, err := r.db.NewSelect().
		Model((*Item)(nil)).
		Where("?TableAlias.category_id = ?", categoryID).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count faq items: %w", err)
	}
	return count, nil
}

func (r *BunRepository) IncrementItemView(ctx context.Context, id uuid.UUID) (int64, error) {
	var value int64
	err := r.db.NewUpdate().
		Model((*Item)(nil)).
		Set("view_count = view_count + 1").
		Where("?TableAlias.id = ?", id).
		Returning("view_count").
		Scan(ctx, &value)
	if err != nil {
		return 0, mapStorageError(err, "item", id.String())
	}
	return value, nil
}

func (r *BunRepository) CreateCategory(ctx context.Context, record *Category) (*Category, error) {
	created, err := r.categories.Create(ctx, record)
	if err != nil {
		return nil, mapStorageError(err, "category", record.ID.String())
	}
	return created, nil
}

func (r *BunRepository) GetCategory(ctx context.Context, id uuid.UUID) (*Category, error) {
	result, err := r.categories.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapStorageError(err, "category", id.String())
	}
	return result, nil
}

func (r *BunRepository) ListCategories(ctx context.Context) ([]*Category, error) {
	records, _, err := r.categories.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.order_index ASC, ?TableAlias.created_at ASC")
		}),
	)
	if err != nil {
		return nil, mapStorageError(err, "category", "")
	}
	return records, nil
}

func (r *BunRepository) UpdateCategory(ctx context.Context, record *Category) (*Category, error) {
	updated, err := r.categories.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns(
			"name",
			"icon",
			"color",
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

func (r *BunRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.NewDelete().
		Model((*Category)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete faq category: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("faq category delete rows affected: %w", err)
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
	return fmt.Errorf("faq %s repository error: %w", resource, err)
}
