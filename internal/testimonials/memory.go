package testimonials

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// NewMemoryRepository creates a testimonial store backed by process memory.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		records: make(map[uuid.UUID]*Testimonial),
	}
}

type memoryRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*Testimonial
}

func (r *memoryRepository) Create(_ context.Context, record *Testimonial) (*Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneTestimonial(record)
	r.records[stored.ID] = stored
	return cloneTestimonial(stored), nil
}

func (r *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, &NotFoundError{Key: id.String()}
	}
	return cloneTestimonial(record), nil
}

func (r *memoryRepository) List(_ context.Context, filter Filter) ([]*Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Testimonial, 0, len(r.records))
	for _, record := range r.records {
		if filter.Status != "" && record.Status != filter.Status {
			continue
		}
		if filter.Language != "" && record.Language != filter.Language {
			continue
		}
		if filter.FeaturedOnly && !record.IsFeatured {
			continue
		}
		out = append(out, cloneTestimonial(record))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *memoryRepository) Update(_ context.Context, record *Testimonial) (*Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[record.ID]; !ok {
		return nil, &NotFoundError{Key: record.ID.String()}
	}
	stored := cloneTestimonial(record)
	r.records[stored.ID] = stored
	return cloneTestimonial(stored), nil
}

func (r *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return &NotFoundError{Key: id.String()}
	}
	delete(r.records, id)
	return nil
}

func cloneTestimonial(record *Testimonial) *Testimonial {
	if record == nil {
		return nil
	}
	clone := *record
	if record.ApprovedAt != nil {
		at := *record.ApprovedAt
		clone.ApprovedAt = &at
	}
	if record.RejectedAt != nil {
		at := *record.RejectedAt
		clone.RejectedAt = &at
	}
	return &clone
}
