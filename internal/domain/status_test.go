package domain_test

import (
	"testing"

	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/domain"
)

func TestNormalize(t *testing.T) {
	if got := domain.Normalize(""); got != domain.StatusDraft {
		t.Fatalf("empty input should default to draft, got %s", got)
	}
	if got := domain.Normalize("  Published "); got != domain.StatusPublished {
		t.Fatalf("expected published, got %s", got)
	}
	if domain.Normalize("bogus").Known() {
		t.Fatal("unknown status must not normalize to a known value")
	}
}

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to domain.Status }{
		{domain.StatusDraft, domain.StatusPublished},
		{domain.StatusDraft, domain.StatusScheduled},
		{domain.StatusDraft, domain.StatusArchived},
		{domain.StatusScheduled, domain.StatusPublished},
		{domain.StatusScheduled, domain.StatusDraft},
		{domain.StatusScheduled, domain.StatusArchived},
		{domain.StatusPublished, domain.StatusDraft},
		{domain.StatusPublished, domain.StatusArchived},
		{domain.StatusDraft, domain.StatusDraft},
	}
	for _, tc := range allowed {
		if !domain.CanTransition(tc.from, tc.to) {
			t.Fatalf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to domain.Status }{
		{domain.StatusArchived, domain.StatusPublished},
		{domain.StatusArchived, domain.StatusDraft},
		{domain.StatusArchived, domain.StatusScheduled},
		{domain.StatusPublished, domain.StatusScheduled},
	}
	for _, tc := range denied {
		if domain.CanTransition(tc.from, tc.to) {
			t.Fatalf("expected %s -> %s to be denied", tc.from, tc.to)
		}
	}
}
