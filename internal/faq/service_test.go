package faq_test

import (
	"context"
	"errors"
	"testing"

	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/faq"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/mapper"
)

func itemForm(categoryID string) mapper.Form {
	form := mapper.Form{
		"question_tr": "Randevumu nasıl iptal ederim?",
		"question_en": "How do I cancel my appointment?",
		"answer_tr":   "Hesabınızdan randevular sayfasına giderek iptal edebilirsiniz.",
		"answer_en":   "You can cancel from the appointments page in your account.",
	}
	if categoryID != "" {
		form["category_id"] = categoryID
	}
	return form
}

func TestFAQItemRequiresBothLocales(t *testing.T) {
	svc := faq.NewService(faq.NewMemoryRepository())

	form := itemForm("")
	delete(form, "answer_en")
	if _, err := svc.CreateItem(context.Background(), form); !faq.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestFAQCategoryDeleteBlockedWhileItemsExist(t *testing.T) {
	svc := faq.NewService(faq.NewMemoryRepository())
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, mapper.Form{
		"name_tr": "Randevu Sistemi",
		"name_en": "Appointment System",
		"icon":    "bi-calendar-check",
	})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	item, err := svc.CreateItem(ctx, itemForm(category.ID.String()))
	if err != nil {
		t.Fatalf("create item: %v", err)
	}

	if err := svc.DeleteCategory(ctx, category.ID); !errors.Is(err, faq.ErrCategoryNotEmpty) {
		t.Fatalf("expected ErrCategoryNotEmpty, got %v", err)
	}
	if err := svc.DeleteItem(ctx, item.ID); err != nil {
		t.Fatalf("delete item: %v", err)
	}
	if err := svc.DeleteCategory(ctx, category.ID); err != nil {
		t.Fatalf("delete empty category: %v", err)
	}
}

func TestFAQPublicIndexSkipsInactive(t *testing.T) {
	svc := faq.NewService(faq.NewMemoryRepository())
	ctx := context.Background()

	visible, err := svc.CreateCategory(ctx, mapper.Form{
		"name_tr":     "Genel Sorular",
		"name_en":     "General Questions",
		"order_index": 1,
	})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	hidden, err := svc.CreateCategory(ctx, mapper.Form{
		"name_tr":     "Teknik Destek",
		"name_en":     "Technical Support",
		"order_index": 2,
	})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	if _, err := svc.UpdateCategory(ctx, hidden.ID, mapper.Form{"is_active": false}); err != nil {
		t.Fatalf("deactivate category: %v", err)
	}

	if _, err := svc.CreateItem(ctx, itemForm(visible.ID.String())); err != nil {
		t.Fatalf("create item: %v", err)
	}
	inactiveItem, err := svc.CreateItem(ctx, itemForm(visible.ID.String()))
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	if _, err := svc.UpdateItem(ctx, inactiveItem.ID, mapper.Form{"is_active": false}); err != nil {
		t.Fatalf("deactivate item: %v", err)
	}
	if _, err := svc.CreateItem(ctx, itemForm(hidden.ID.String())); err != nil {
		t.Fatalf("create item: %v", err)
	}

	index, err := svc.PublicIndex(ctx)
	if err != nil {
		t.Fatalf("public index: %v", err)
	}
	if len(index) != 1 {
		t.Fatalf("expected one visible category, got %d", len(index))
	}
	if index[0].Category.ID != visible.ID {
		t.Fatalf("wrong category surfaced: %s", index[0].Category.ID)
	}
	if len(index[0].Items) != 1 {
		t.Fatalf("inactive items leaked: %d", len(index[0].Items))
	}
}

func TestFAQItemViewCounter(t *testing.T) {
	svc := faq.NewService(faq.NewMemoryRepository())
	ctx := context.Background()

	item, err := svc.CreateItem(ctx, itemForm(""))
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := svc.IncrementItemView(ctx, item.ID); err != nil {
			t.Fatalf("increment view: %v", err)
		}
	}
	stored, err := svc.GetItem(ctx, item.ID)
	if err != nil {
		t.Fatalf("get item: %v", err)
	}
	if stored.ViewCount != 3 {
		t.Fatalf("expected 3 views, got %d", stored.ViewCount)
	}
}
