package content

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/i18n"
)

// NewMemoryPostRepository creates a post store backed by process memory. It
// enforces the same per-locale slug uniqueness the SQL schema does and keeps
// counter updates atomic under its lock.
func NewMemoryPostRepository() PostRepository {
	return &memoryPostRepository{
		posts: make(map[uuid.UUID]*Post),
		slugs: map[string]map[string]uuid.UUID{
			i18n.LocaleTurkish: {},
			i18n.LocaleEnglish: {},
		},
	}
}

type memoryPostRepository struct {
	mu    sync.RWMutex
	posts map[uuid.UUID]*Post
	slugs map[string]map[string]uuid.UUID
}

func (r *memoryPostRepository) Create(_ context.Context, record *Post) (*Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkSlugs(record); err != nil {
		return nil, err
	}

	stored := clonePost(record)
	r.posts[stored.ID] = stored
	r.indexSlugs(stored)
	return clonePost(stored), nil
}

func (r *memoryPostRepository) GetByID(_ context.Context, id uuid.UUID) (*Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, &NotFoundError{Resource: "post", Key: id.String()}
	}
	return clonePost(post), nil
}

func (r *memoryPostRepository) GetBySlug(_ context.Context, slug, locale string) (*Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	index, ok := r.slugs[i18n.Normalize(locale)]
	if !ok {
		return nil, &NotFoundError{Resource: "post", Key: slug}
	}
	id, ok := index[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "post", Key: slug}
	}
	post, ok := r.posts[id]
	if !ok {
		return nil, &NotFoundError{Resource: "post", Key: slug}
	}
	return clonePost(post), nil
}

func (r *memoryPostRepository) List(_ context.Context, filter PostFilter) ([]*Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*Post, 0, len(r.posts))
	for _, post := range r.posts {
		if !matchesFilter(post, filter) {
			continue
		}
		matched = append(matched, clonePost(post))
	}
	sortPosts(matched, filter.Sort)
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (r *memoryPostRepository) Update(_ context.Context, record *Post) (*Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.posts[record.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "post", Key: record.ID.String()}
	}
	if err := r.checkSlugs(record); err != nil {
		return nil, err
	}

	r.unindexSlugs(existing)
	stored := clonePost(record)
	// Counters stay authoritative in the store.
	stored.ViewCount = existing.ViewCount
	stored.LikeCount = existing.LikeCount
	r.posts[stored.ID] = stored
	r.indexSlugs(stored)
	return clonePost(stored), nil
}

func (r *memoryPostRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[id]
	if !ok {
		return &NotFoundError{Resource: "post", Key: id.String()}
	}
	r.unindexSlugs(post)
	delete(r.posts, id)
	return nil
}

func (r *memoryPostRepository) IncrementCounter(_ context.Context, id uuid.UUID, counter Counter, delta int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[id]
	if !ok {
		return 0, &NotFoundError{Resource: "post", Key: id.String()}
	}
	switch counter {
	case CounterLikes:
		post.LikeCount += delta
		if post.LikeCount < 0 {
			post.LikeCount = 0
		}
		return post.LikeCount, nil
	default:
		post.ViewCount += delta
		if post.ViewCount < 0 {
			post.ViewCount = 0
		}
		return post.ViewCount, nil
	}
}

func (r *memoryPostRepository) checkSlugs(record *Post) error {
	for locale, slug := range map[string]string{
		i18n.LocaleTurkish: record.Slug.TR,
		i18n.LocaleEnglish: record.Slug.EN,
	} {
		if slug == "" {
			continue
		}
		if owner, taken := r.slugs[locale][slug]; taken && owner != record.ID {
			return ErrSlugExists
		}
	}
	return nil
}

func (r *memoryPostRepository) indexSlugs(post *Post) {
	if post.Slug.TR != "" {
		r.slugs[i18n.LocaleTurkish][post.Slug.TR] = post.ID
	}
	if post.Slug.EN != "" {
		r.slugs[i18n.LocaleEnglish][post.Slug.EN] = post.ID
	}
}

func (r *memoryPostRepository) unindexSlugs(post *Post) {
	if post.Slug.TR != "" {
		delete(r.slugs[i18n.LocaleTurkish], post.Slug.TR)
	}
	if post.Slug.EN != "" {
		delete(r.slugs[i18n.LocaleEnglish], post.Slug.EN)
	}
}

func matchesFilter(post *Post, filter PostFilter) bool {
	if filter.Status != "" && post.Status != filter.Status {
		return false
	}
	if filter.CategoryID != nil {
		if post.CategoryID == nil || *post.CategoryID != *filter.CategoryID {
			return false
		}
	}
	if filter.ExcludeID != nil && post.ID == *filter.ExcludeID {
		return false
	}
	if filter.FeaturedOnly && !post.IsFeatured {
		return false
	}
	if filter.DueBefore != nil {
		if post.ScheduledAt == nil || post.ScheduledAt.After(*filter.DueBefore) {
			return false
		}
	}
	return true
}

func sortPosts(posts []*Post, order PostSort) {
	switch order {
	case SortMostViewed:
		sort.SliceStable(posts, func(i, j int) bool {
			if posts[i].ViewCount == posts[j].ViewCount {
				return posts[i].CreatedAt.After(posts[j].CreatedAt)
			}
			return posts[i].ViewCount > posts[j].ViewCount
		})
	case SortRecentlyPublished:
		sort.SliceStable(posts, func(i, j int) bool {
			left, right := posts[i].PublishedAt, posts[j].PublishedAt
			switch {
			case left == nil && right == nil:
				return posts[i].CreatedAt.After(posts[j].CreatedAt)
			case left == nil:
				return false
			case right == nil:
				return true
			}
			return left.After(*right)
		})
	default:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		})
	}
}

func clonePost(post *Post) *Post {
	if post == nil {
		return nil
	}
	clone := *post
	clone.Tags = post.Tags.Clone()
	if post.CategoryID != nil {
		id := *post.CategoryID
		clone.CategoryID = &id
	}
	if post.PublishedAt != nil {
		at := *post.PublishedAt
		clone.PublishedAt = &at
	}
	if post.ScheduledAt != nil {
		at := *post.ScheduledAt
		clone.ScheduledAt = &at
	}
	if post.Category != nil {
		clone.Category = cloneCategory(post.Category)
	}
	return &clone
}

// NewMemoryCategoryRepository creates a category store backed by process
// memory.
func NewMemoryCategoryRepository() CategoryRepository {
	return &memoryCategoryRepository{
		categories: make(map[uuid.UUID]*Category),
	}
}

type memoryCategoryRepository struct {
	mu         sync.RWMutex
	categories map[uuid.UUID]*Category
}

func (r *memoryCategoryRepository) Create(_ context.Context, record *Category) (*Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneCategory(record)
	r.categories[stored.ID] = stored
	return cloneCategory(stored), nil
}

func (r *memoryCategoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.categories[id]
	if !ok {
		return nil, &NotFoundError{Resource: "category", Key: id.String()}
	}
	return cloneCategory(category), nil
}

func (r *memoryCategoryRepository) List(_ context.Context) ([]*Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]*Category, 0, len(r.categories))
	for _, category := range r.categories {
		categories = append(categories, cloneCategory(category))
	}
	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].OrderIndex == categories[j].OrderIndex {
			return categories[i].Name.TR < categories[j].Name.TR
		}
		return categories[i].OrderIndex < categories[j].OrderIndex
	})
	return categories, nil
}

func (r *memoryCategoryRepository) Update(_ context.Context, record *Category) (*Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[record.ID]; !ok {
		return nil, &NotFoundError{Resource: "category", Key: record.ID.String()}
	}
	stored := cloneCategory(record)
	r.categories[stored.ID] = stored
	return cloneCategory(stored), nil
}

func (r *memoryCategoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[id]; !ok {
		return &NotFoundError{Resource: "category", Key: id.String()}
	}
	delete(r.categories, id)
	return nil
}

func cloneCategory(category *Category) *Category {
	if category == nil {
		return nil
	}
	clone := *category
	return &clone
}
