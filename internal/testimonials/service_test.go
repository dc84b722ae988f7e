package testimonials_test

import (
	"context"
	"errors"
	"testing"

	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/testimonials"
)

func submission() testimonials.Submission {
	return testimonials.Submission{
		Name:     "Ayşe Yılmaz",
		Email:    "ayse@example.com",
		Content:  "Üç ayda hedefime ulaştım, süreç boyunca destek harikaydı.",
		Rating:   5,
		Language: "tr",
	}
}

func TestSubmitValidatesRatingRange(t *testing.T) {
	svc := testimonials.NewService(testimonials.NewMemoryRepository())

	bad := submission()
	bad.Rating = 6
	if _, err := svc.Submit(context.Background(), bad); !testimonials.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSubmissionsStartPendingAndStayHidden(t *testing.T) {
	svc := testimonials.NewService(testimonials.NewMemoryRepository())
	ctx := context.Background()

	created, err := svc.Submit(ctx, submission())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if created.Status != testimonials.StatusPending {
		t.Fatalf("expected pending, got %s", created.Status)
	}

	approved, err := svc.ListApproved(ctx, "tr", 0)
	if err != nil {
		t.Fatalf("list approved: %v", err)
	}
	if len(approved) != 0 {
		t.Fatalf("pending testimonial leaked to public listing: %d", len(approved))
	}

	pending, err := svc.ListPending(ctx)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending testimonial, got %d", len(pending))
	}
}

func TestModerationIsFinal(t *testing.T) {
	svc := testimonials.NewService(testimonials.NewMemoryRepository())
	ctx := context.Background()

	created, err := svc.Submit(ctx, submission())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	approved, err := svc.Approve(ctx, created.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.ApprovedAt == nil {
		t.Fatal("expected approved_at to be set")
	}

	if _, err := svc.Reject(ctx, created.ID, "changed my mind"); !errors.Is(err, testimonials.ErrAlreadyModerated) {
		t.Fatalf("expected ErrAlreadyModerated, got %v", err)
	}
}

func TestRejectKeepsModerationNotes(t *testing.T) {
	svc := testimonials.NewService(testimonials.NewMemoryRepository())
	ctx := context.Background()

	created, err := svc.Submit(ctx, submission())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	rejected, err := svc.Reject(ctx, created.ID, "contains personal health claims")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.ModerationNotes != "contains personal health claims" {
		t.Fatalf("notes not stored: %q", rejected.ModerationNotes)
	}
	if rejected.RejectedAt == nil {
		t.Fatal("expected rejected_at to be set")
	}
}

func TestStatsAveragesApprovedOnly(t *testing.T) {
	svc := testimonials.NewService(testimonials.NewMemoryRepository())
	ctx := context.Background()

	ratings := []int{5, 4, 3}
	for _, rating := range ratings {
		sub := submission()
		sub.Rating = rating
		created, err := svc.Submit(ctx, sub)
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
		if rating != 3 {
			if _, err := svc.Approve(ctx, created.ID); err != nil {
				t.Fatalf("approve: %v", err)
			}
		}
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Count != 2 {
		t.Fatalf("expected 2 approved, got %d", stats.Count)
	}
	if stats.Average != 4.5 {
		t.Fatalf("expected average 4.5, got %v", stats.Average)
	}
}

func TestFeaturedRequiresApproval(t *testing.T) {
	svc := testimonials.NewService(testimonials.NewMemoryRepository())
	ctx := context.Background()

	created, err := svc.Submit(ctx, submission())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.SetFeatured(ctx, created.ID, true); !errors.Is(err, testimonials.ErrAlreadyModerated) {
		t.Fatalf("expected feature toggle to require approval, got %v", err)
	}

	if _, err := svc.Approve(ctx, created.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err := svc.SetFeatured(ctx, created.ID, true); err != nil {
		t.Fatalf("set featured: %v", err)
	}

	featured, err := svc.ListFeatured(ctx, "tr")
	if err != nil {
		t.Fatalf("list featured: %v", err)
	}
	if len(featured) != 1 {
		t.Fatalf("expected 1 featured testimonial, got %d", len(featured))
	}
}
