package content_test

import (
	"context"
	"testing"

	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/content"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/mapper"
)

func TestCategoryCreateGeneratesSlugsFromName(t *testing.T) {
	svc := content.NewCategoryService(content.NewMemoryCategoryRepository())
	ctx := context.Background()

	category, err := svc.Create(ctx, mapper.Form{
		"name_tr": "Sporcu Beslenmesi",
		"name_en": "Sports Nutrition",
		"color":   "#f97316",
	})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	if category.Slug.TR != "sporcu-beslenmesi" {
		t.Fatalf("unexpected TR slug: %q", category.Slug.TR)
	}
	if category.Slug.EN != "sports-nutrition" {
		t.Fatalf("unexpected EN slug: %q", category.Slug.EN)
	}
	if !category.IsActive {
		t.Fatal("new categories default to active")
	}
}

func TestCategoryCreateRequiresBothNameLocales(t *testing.T) {
	svc := content.NewCategoryService(content.NewMemoryCategoryRepository())

	_, err := svc.Create(context.Background(), mapper.Form{"name_tr": "Genel Beslenme"})
	if !content.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCategoryListActiveFallsBackToDefaults(t *testing.T) {
	svc := content.NewCategoryService(content.NewMemoryCategoryRepository())
	ctx := context.Background()

	categories, err := svc.ListActive(ctx)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(categories) == 0 {
		t.Fatal("expected default categories")
	}
	for _, category := range categories {
		if category.Name.TR == "" || category.Name.EN == "" {
			t.Fatalf("default category %s is not bilingual", category.ID)
		}
	}

	created, err := svc.Create(ctx, mapper.Form{
		"name_tr": "Kilo Yönetimi",
		"name_en": "Weight Management",
	})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	categories, err = svc.ListActive(ctx)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(categories) != 1 || categories[0].ID != created.ID {
		t.Fatalf("expected only the authored category, got %d", len(categories))
	}
}

func TestCategoryInactiveHiddenFromPublicListing(t *testing.T) {
	svc := content.NewCategoryService(
		content.NewMemoryCategoryRepository(),
		content.WithCategoryFallbackContent(false),
	)
	ctx := context.Background()

	created, err := svc.Create(ctx, mapper.Form{
		"name_tr": "Arşiv",
		"name_en": "Archive",
	})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	if _, err := svc.Update(ctx, created.ID, mapper.Form{"is_active": false}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	active, err := svc.ListActive(ctx)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("inactive category leaked into public listing: %d", len(active))
	}

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("admin listing should include inactive categories, got %d", len(all))
	}
}
