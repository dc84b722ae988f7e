package packages

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func NewPackageModelRepository(db *bun.DB) repository.Repository[*Package] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Package]{
		NewRecord: func() *Package { return &Package{} },
		GetID: func(p *Package) uuid.UUID {
			return p.ID
		},
		SetID: func(p *Package, id uuid.UUID) {
			p.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(p *Package) string {
			return p.ID.String()
		},
	})
}

// BunRepository persists packages through bun. Seat adjustments run as a
// single guarded UPDATE so concurrent purchases cannot oversell a package.
type BunRepository struct {
	db   *bun.DB
	repo repository.Repository[*Package]
}

func NewBunRepository(db *bun.DB) *BunRepository {
	return &BunRepository{
		db:   db,
		repo: NewPackageModelRepository(db),
	}
}

func (r *BunRepository) Create(ctx context.Context, record *Package) (*Package, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, mapStorageError(err, record.ID.String())
	}
	return created, nil
}

func (r *BunRepository) GetByID(ctx context.Context, id uuid.UUID) (*Package, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapStorageError(err, id.String())
	}
	return result, nil
}

func (r *BunRepository) List(ctx context.Context) ([]*Package, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.order_index ASC, ?TableAlias.price ASC")
		}),
	)
	if err != nil {
		return nil, mapStorageError(err, "")
	}
	return records, nil
}

func (r *BunRepository) Update(ctx context.Context, record *Package) (*Package, error) {
	updated, err := r.repo.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns(
			"title",
			"description",
			"price",
			"original_price",
			"duration",
			"features",
			"is_popular",
			"is_active",
			"icon",
			"category",
			"order_index",
			"max_clients",
			"tags",
			"seo_title",
			"seo_description",
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
		Model((*Package)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete package: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("package delete rows affected: %w", err)
	}
	if affected == 0 {
		return &NotFoundError{Key: id.String()}
	}
	return nil
}

func (r *BunRepository) AdjustClients(ctx context.Context, id uuid.UUID, delta int) (*Package, error) {
	query := r.db.NewUpdate().
		Model((*Package)(nil)).
		Set("current_clients = CASE WHEN current_clients + ? < 0 THEN 0 ELSE current_clients + ? END", delta, delta).
		Where("?TableAlias.id = ?", id)
	if delta > 0 {
		query = query.Where("max_clients = 0 OR current_clients + ? <= max_clients", delta)
	}

	result, err := query.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("adjust package clients: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("package adjust rows affected: %w", err)
	}
	if affected == 0 {
		// Either the package is missing or the capacity guard rejected the
		// reservation; disambiguate with a lookup.
		if _, lookupErr := r.GetByID(ctx, id); lookupErr != nil {
			return nil, lookupErr
		}
		return nil, ErrPackageFull
	}
	return r.GetByID(ctx, id)
}

func mapStorageError(err error, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Key: key}
	}
	return fmt.Errorf("package repository error: %w", err)
}
