package content_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/content"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/domain"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/mapper"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(start time.Time) *testClock {
	return &testClock{now: start}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestService(t *testing.T) (content.Service, *testClock) {
	t.Helper()
	clock := newTestClock(time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC))
	svc := content.NewService(
		content.NewMemoryPostRepository(),
		content.WithClock(clock.Now),
		content.WithFallbackContent(false),
	)
	return svc, clock
}

func draftForm() mapper.Form {
	return mapper.Form{
		"title_tr":   "Sağlıklı Beslenme İpuçları",
		"title_en":   "Healthy Eating Tips",
		"content_tr": "Dengeli beslenme için öneriler.",
		"content_en": "Recommendations for a balanced diet.",
		"tags_tr":    "beslenme, sağlık",
		"tags_en":    "nutrition, health",
	}
}

func TestCreateGeneratesTurkishAwareSlugs(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, draftForm())
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if post.Slug.TR != "saglikli-beslenme-ipuclari" {
		t.Fatalf("unexpected TR slug: %q", post.Slug.TR)
	}
	if post.Slug.EN != "healthy-eating-tips" {
		t.Fatalf("unexpected EN slug: %q", post.Slug.EN)
	}
	if post.Status != domain.StatusDraft {
		t.Fatalf("expected draft status, got %s", post.Status)
	}
	if post.ReadTime != content.DefaultReadTime {
		t.Fatalf("expected default read time, got %d", post.ReadTime)
	}
}

func TestCreateRequiresBothTitleLocales(t *testing.T) {
	svc, _ := newTestService(t)
	form := draftForm()
	delete(form, "title_en")

	_, err := svc.Create(context.Background(), form)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !content.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	var fields validation.Errors
	if !errors.As(err, &fields) {
		t.Fatalf("expected validation.Errors, got %T", err)
	}
	if _, ok := fields["title_en"]; !ok {
		t.Fatalf("expected title_en failure, got %v", fields)
	}
}

func TestPublishRequiresCompleteContent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	form := draftForm()
	delete(form, "content_en")
	post, err := svc.Create(ctx, form)
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}

	if _, err := svc.Publish(ctx, post.ID); err == nil {
		t.Fatal("expected publish to fail on incomplete content")
	} else {
		var fields validation.Errors
		if !errors.As(err, &fields) {
			t.Fatalf("expected validation.Errors, got %v", err)
		}
		if _, ok := fields["content_en"]; !ok {
			t.Fatalf("expected content_en failure, got %v", fields)
		}
	}

	stored, err := svc.Get(ctx, post.ID)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if stored.Status != domain.StatusDraft {
		t.Fatalf("failed publish must not change status, got %s", stored.Status)
	}
}

func TestPublishStampsPublishedAtOnce(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, draftForm())
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	published, err := svc.Publish(ctx, post.ID)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if published.PublishedAt == nil {
		t.Fatal("expected published_at to be set")
	}
	first := *published.PublishedAt

	clock.Advance(time.Hour)
	if _, err := svc.Unpublish(ctx, post.ID); err != nil {
		t.Fatalf("unpublish: %v", err)
	}
	republished, err := svc.Publish(ctx, post.ID)
	if err != nil {
		t.Fatalf("republish: %v", err)
	}
	if !republished.PublishedAt.Equal(first) {
		t.Fatalf("published_at must not move on republish: %v vs %v", republished.PublishedAt, first)
	}
}

func TestSlugCollisionRetriesWithSuffix(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, draftForm())
	if err != nil {
		t.Fatalf("create first post: %v", err)
	}
	second, err := svc.Create(ctx, draftForm())
	if err != nil {
		t.Fatalf("create second post with same title: %v", err)
	}
	if second.Slug.TR == first.Slug.TR {
		t.Fatalf("expected disambiguated slug, both got %q", first.Slug.TR)
	}
	if !strings.HasPrefix(second.Slug.TR, first.Slug.TR+"-") {
		t.Fatalf("expected suffixed slug, got %q", second.Slug.TR)
	}
}

func TestGetBySlugFallsBackAcrossLocales(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, draftForm())
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if _, err := svc.Publish(ctx, post.ID); err != nil {
		t.Fatalf("publish: %v", err)
	}

	// English slug requested under the Turkish locale still resolves.
	found, err := svc.GetBySlug(ctx, post.Slug.EN, "tr")
	if err != nil {
		t.Fatalf("cross-locale slug lookup: %v", err)
	}
	if found.ID != post.ID {
		t.Fatalf("resolved wrong post: %s", found.ID)
	}
}

func TestGetBySlugHidesDrafts(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, draftForm())
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if _, err := svc.GetBySlug(ctx, post.Slug.TR, "tr"); !content.IsNotFound(err) {
		t.Fatalf("draft must be invisible by slug, got %v", err)
	}
}

func TestUpdateMergesPartialForm(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, draftForm())
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	updated, err := svc.Update(ctx, post.ID, mapper.Form{
		"excerpt_tr": "Kısa özet",
		"excerpt_en": "Short summary",
	})
	if err != nil {
		t.Fatalf("partial update: %v", err)
	}
	if updated.Excerpt.TR != "Kısa özet" {
		t.Fatalf("excerpt not applied: %q", updated.Excerpt.TR)
	}
	if updated.Title.TR != post.Title.TR {
		t.Fatalf("title must survive partial update, got %q", updated.Title.TR)
	}
	if updated.Slug.TR != post.Slug.TR {
		t.Fatalf("slug must stay stable when not submitted, got %q", updated.Slug.TR)
	}
}

func TestUpdateStatusTransitionRules(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, draftForm())
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if _, err := svc.Archive(ctx, post.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}
	if _, err := svc.Publish(ctx, post.ID); !errors.Is(err, content.ErrStatusTransition) {
		t.Fatalf("archived posts must stay archived, got %v", err)
	}

	if _, err := svc.Update(ctx, post.ID, mapper.Form{"status": "bogus"}); !errors.Is(err, content.ErrStatusInvalid) {
		t.Fatalf("expected ErrStatusInvalid, got %v", err)
	}
}

func TestScheduleRejectsPastTimes(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, draftForm())
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if _, err := svc.Schedule(ctx, post.ID, clock.Now().Add(-time.Minute)); !errors.Is(err, content.ErrScheduleInvalid) {
		t.Fatalf("expected ErrScheduleInvalid, got %v", err)
	}
}

func TestApplyDueSchedulesPromotesPosts(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, draftForm())
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	runAt := clock.Now().Add(time.Hour)
	if _, err := svc.Schedule(ctx, post.ID, runAt); err != nil {
		t.Fatalf("schedule: %v", err)
	}

	// Not yet due.
	if applied, err := svc.ApplyDueSchedules(ctx); err != nil || applied != 0 {
		t.Fatalf("expected no promotions yet, got %d (%v)", applied, err)
	}

	clock.Advance(2 * time.Hour)
	applied, err := svc.ApplyDueSchedules(ctx)
	if err != nil {
		t.Fatalf("apply due schedules: %v", err)
	}
	if applied != 1 {
		t.Fatalf("expected 1 promotion, got %d", applied)
	}

	stored, err := svc.Get(ctx, post.ID)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if stored.Status != domain.StatusPublished {
		t.Fatalf("expected published, got %s", stored.Status)
	}
	if stored.PublishedAt == nil || !stored.PublishedAt.Equal(runAt) {
		t.Fatalf("published_at should equal the scheduled time, got %v", stored.PublishedAt)
	}
}

func TestListPublishedServesDefaultsWhenEmpty(t *testing.T) {
	clock := newTestClock(time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC))
	svc := content.NewService(
		content.NewMemoryPostRepository(),
		content.WithClock(clock.Now),
	)
	ctx := context.Background()

	posts, err := svc.ListPublished(ctx, 0, nil)
	if err != nil {
		t.Fatalf("list published: %v", err)
	}
	if len(posts) == 0 {
		t.Fatal("expected default content, got empty listing")
	}
	for _, post := range posts {
		if post.Status != domain.StatusPublished {
			t.Fatalf("default post %s is not published", post.ID)
		}
		if post.Title.TR == "" || post.Title.EN == "" || post.Content.TR == "" || post.Content.EN == "" {
			t.Fatalf("default post %s is not fully bilingual", post.ID)
		}
	}

	// Authored content displaces the defaults entirely.
	post, err := svc.Create(ctx, draftForm())
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if _, err := svc.Publish(ctx, post.ID); err != nil {
		t.Fatalf("publish: %v", err)
	}
	posts, err = svc.ListPublished(ctx, 0, nil)
	if err != nil {
		t.Fatalf("list published: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != post.ID {
		t.Fatalf("expected only the authored post, got %d posts", len(posts))
	}
}

func TestConcurrentViewIncrements(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, draftForm())
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	const workers = 100
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := svc.IncrementView(ctx, post.ID); err != nil {
				t.Errorf("increment view: %v", err)
			}
		}()
	}
	wg.Wait()

	stored, err := svc.Get(ctx, post.ID)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if stored.ViewCount != workers {
		t.Fatalf("expected %d views, got %d", workers, stored.ViewCount)
	}
}

func TestToggleLikeFloorsAtZero(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, draftForm())
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	count, err := svc.ToggleLike(ctx, post.ID, false)
	if err != nil {
		t.Fatalf("toggle like: %v", err)
	}
	if count != 0 {
		t.Fatalf("like count must floor at zero, got %d", count)
	}

	if _, err := svc.ToggleLike(ctx, post.ID, true); err != nil {
		t.Fatalf("toggle like: %v", err)
	}
	count, err = svc.ToggleLike(ctx, post.ID, true)
	if err != nil {
		t.Fatalf("toggle like: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 likes, got %d", count)
	}
}

func TestListTagsReturnsDistinctPerLocale(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, title := range []string{"Birinci Yazı", "İkinci Yazı"} {
		form := draftForm()
		form["title_tr"] = title
		form["title_en"] = title + " EN"
		post, err := svc.Create(ctx, form)
		if err != nil {
			t.Fatalf("create post: %v", err)
		}
		if _, err := svc.Publish(ctx, post.ID); err != nil {
			t.Fatalf("publish: %v", err)
		}
	}

	tags, err := svc.ListTags(ctx, "tr")
	if err != nil {
		t.Fatalf("list tags: %v", err)
	}
	seen := map[string]int{}
	for _, tag := range tags {
		seen[tag]++
	}
	for tag, n := range seen {
		if n > 1 {
			t.Fatalf("tag %q repeated %d times", tag, n)
		}
	}
	if seen["beslenme"] != 1 || seen["sağlık"] != 1 {
		t.Fatalf("expected both shared tags once, got %v", seen)
	}
}

func TestListRelatedSharesCategoryAndExcludesSelf(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	categoryID := uuid.NewString()

	ids := make([]uuid.UUID, 0, 3)
	for _, title := range []string{"Ana Yazı", "Komşu Yazı", "Alakasız Yazı"} {
		form := draftForm()
		form["title_tr"] = title
		form["title_en"] = title + " EN"
		if title != "Alakasız Yazı" {
			form["category_id"] = categoryID
		}
		post, err := svc.Create(ctx, form)
		if err != nil {
			t.Fatalf("create post: %v", err)
		}
		if _, err := svc.Publish(ctx, post.ID); err != nil {
			t.Fatalf("publish: %v", err)
		}
		ids = append(ids, post.ID)
	}

	related, err := svc.ListRelated(ctx, ids[0], 5)
	if err != nil {
		t.Fatalf("list related: %v", err)
	}
	if len(related) != 1 {
		t.Fatalf("expected one related post, got %d", len(related))
	}
	if related[0].ID != ids[1] {
		t.Fatalf("expected the same-category post, got %s", related[0].ID)
	}
}

func TestFormRoundTripsLocalizedFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, draftForm())
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	form, err := svc.Form(ctx, post.ID)
	if err != nil {
		t.Fatalf("load form: %v", err)
	}
	if form["title_tr"] != post.Title.TR {
		t.Fatalf("title_tr mismatch: %v", form["title_tr"])
	}
	if form["slug_en"] != post.Slug.EN {
		t.Fatalf("slug_en mismatch: %v", form["slug_en"])
	}

	// Feeding the form back through Update must be a no-op for content.
	updated, err := svc.Update(ctx, post.ID, form)
	if err != nil {
		t.Fatalf("round-trip update: %v", err)
	}
	if updated.Title != post.Title || updated.Slug != post.Slug || updated.Content != post.Content {
		t.Fatal("round-trip update changed localized fields")
	}
}
