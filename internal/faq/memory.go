package faq

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// NewMemoryRepository creates a FAQ store backed by process memory.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		items:      make(map[uuid.UUID]*Item),
		categories: make(map[uuid.UUID]*Category),
	}
}

type memoryRepository struct {
	mu         sync.RWMutex
	items      map[uuid.UUID]*Item
	categories map[uuid.UUID]*Category
}

func (r *memoryRepository) CreateItem(_ context.Context, record *Item) (*Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneItem(record)
	r.items[stored.ID] = stored
	return cloneItem(stored), nil
}

func (r *memoryRepository) GetItem(_ context.Context, id uuid.UUID) (*Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, &NotFoundError{Resource: "item", Key: id.String()}
	}
	return cloneItem(item), nil
}

func (r *memoryRepository) ListItems(_ context.Context, categoryID *uuid.UUID, activeOnly bool) ([]*Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Item, 0, len(r.items))
	for _, item := range r.items {
		if activeOnly && !item.IsActive {
			continue
		}
		if categoryID != nil {
			if item.CategoryID == nil || *item.CategoryID != *categoryID {
				continue
			}
		}
		out = append(out, cloneItem(item))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].OrderIndex == out[j].OrderIndex {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].OrderIndex < out[j].OrderIndex
	})
	return out, nil
}

func (r *memoryRepository) UpdateItem(_ context.Context, record *Item) (*Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[record.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "item", Key: record.ID.String()}
	}
	stored := cloneItem(record)
	stored.ViewCount = existing.ViewCount
	r.items[stored.ID] = stored
	return cloneItem(stored), nil
}

func (r *memoryRepository) DeleteItem(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return &NotFoundError{Resource: "item", Key: id.String()}
	}
	delete(r.items, id)
	return nil
}

func (r *memoryRepository) CountItems(_ context.Context, categoryID uuid.UUID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, item := range r.items {
		if item.CategoryID != nil && *item.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *memoryRepository) IncrementItemView(_ context.Context, id uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return 0, &NotFoundError{Resource: "item", Key: id.String()}
	}
	item.ViewCount++
	return item.ViewCount, nil
}

func (r *memoryRepository) CreateCategory(_ context.Context, record *Category) (*Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneFAQCategory(record)
	r.categories[stored.ID] = stored
	return cloneFAQCategory(stored), nil
}

func (r *memoryRepository) GetCategory(_ context.Context, id uuid.UUID) (*Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.categories[id]
	if !ok {
		return nil, &NotFoundError{Resource: "category", Key: id.String()}
	}
	return cloneFAQCategory(category), nil
}

func (r *memoryRepository) ListCategories(_ context.Context) ([]*Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Category, 0, len(r.categories))
	for _, category := range r.categories {
		out = append(out, cloneFAQCategory(category))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].OrderIndex == out[j].OrderIndex {
			return out[i].Name.TR < out[j].Name.TR
		}
		return out[i].OrderIndex < out[j].OrderIndex
	})
	return out, nil
}

func (r *memoryRepository) UpdateCategory(_ context.Context, record *Category) (*Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[record.ID]; !ok {
		return nil, &NotFoundError{Resource: "category", Key: record.ID.String()}
	}
	stored := cloneFAQCategory(record)
	r.categories[stored.ID] = stored
	return cloneFAQCategory(stored), nil
}

func (r *memoryRepository) DeleteCategory(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[id]; !ok {
		return &NotFoundError{Resource: "category", Key: id.String()}
	}
	delete(r.categories, id)
	return nil
}

func cloneItem(item *Item) *Item {
	if item == nil {
		return nil
	}
	clone := *item
	if item.CategoryID != nil {
		id := *item.CategoryID
		clone.CategoryID = &id
	}
	if item.Category != nil {
		clone.Category = cloneFAQCategory(item.Category)
	}
	return &clone
}

func cloneFAQCategory(category *Category) *Category {
	if category == nil {
		return nil
	}
	clone := *category
	return &clone
}
