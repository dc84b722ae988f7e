package packages

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// NewMemoryRepository creates a package store backed by process memory.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		packages: make(map[uuid.UUID]*Package),
	}
}

type memoryRepository struct {
	mu       sync.RWMutex
	packages map[uuid.UUID]*Package
}

func (r *memoryRepository) Create(_ context.Context, record *Package) (*Package, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := clonePackage(record)
	r.packages[stored.ID] = stored
	return clonePackage(stored), nil
}

func (r *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Package, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pkg, ok := r.packages[id]
	if !ok {
		return nil, &NotFoundError{Key: id.String()}
	}
	return clonePackage(pkg), nil
}

func (r *memoryRepository) List(_ context.Context) ([]*Package, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Package, 0, len(r.packages))
	for _, pkg := range r.packages {
		out = append(out, clonePackage(pkg))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].OrderIndex == out[j].OrderIndex {
			return out[i].Price < out[j].Price
		}
		return out[i].OrderIndex < out[j].OrderIndex
	})
	return out, nil
}

func (r *memoryRepository) Update(_ context.Context, record *Package) (*Package, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.packages[record.ID]; !ok {
		return nil, &NotFoundError{Key: record.ID.String()}
	}
	stored := clonePackage(record)
	r.packages[stored.ID] = stored
	return clonePackage(stored), nil
}

func (r *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.packages[id]; !ok {
		return &NotFoundError{Key: id.String()}
	}
	delete(r.packages, id)
	return nil
}

func (r *memoryRepository) AdjustClients(_ context.Context, id uuid.UUID, delta int) (*Package, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pkg, ok := r.packages[id]
	if !ok {
		return nil, &NotFoundError{Key: id.String()}
	}
	next := pkg.CurrentClients + delta
	if next < 0 {
		next = 0
	}
	if delta > 0 && pkg.MaxClients > 0 && next > pkg.MaxClients {
		return nil, ErrPackageFull
	}
	pkg.CurrentClients = next
	return clonePackage(pkg), nil
}

func clonePackage(pkg *Package) *Package {
	if pkg == nil {
		return nil
	}
	clone := *pkg
	clone.Features = pkg.Features.Clone()
	clone.Tags = append([]string(nil), pkg.Tags...)
	return &clone
}
