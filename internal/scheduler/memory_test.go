package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/scheduler"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/pkg/interfaces"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestEnqueueReplacesByKey(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	sched := scheduler.NewInMemory(scheduler.WithClock(fixedClock(now)))

	postID := uuid.New()
	first, err := sched.Enqueue(ctx, interfaces.JobSpec{
		Key:   scheduler.PostPublishJobKey(postID),
		Type:  scheduler.JobTypePostPublish,
		RunAt: now.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	second, err := sched.Enqueue(ctx, interfaces.JobSpec{
		Key:   scheduler.PostPublishJobKey(postID),
		Type:  scheduler.JobTypePostPublish,
		RunAt: now.Add(2 * time.Hour),
	})
	if err != nil {
		t.Fatalf("re-enqueue: %v", err)
	}
	if first.ID == second.ID {
		t.Fatal("replacement should mint a new job ID")
	}

	if _, err := sched.Get(ctx, first.ID); !errors.Is(err, interfaces.ErrJobNotFound) {
		t.Fatalf("replaced job should be gone, got %v", err)
	}
	byKey, err := sched.GetByKey(ctx, scheduler.PostPublishJobKey(postID))
	if err != nil {
		t.Fatalf("get by key: %v", err)
	}
	if byKey.ID != second.ID || !byKey.RunAt.Equal(now.Add(2*time.Hour)) {
		t.Fatalf("key should resolve to the replacement: %+v", byKey)
	}
}

func TestEnqueueRequiresRunAt(t *testing.T) {
	sched := scheduler.NewInMemory()
	if _, err := sched.Enqueue(context.Background(), interfaces.JobSpec{Type: scheduler.JobTypePostPublish}); err == nil {
		t.Fatal("expected error for zero RunAt")
	}
}

func TestListDueOrderingAndLimit(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	sched := scheduler.NewInMemory(scheduler.WithClock(fixedClock(now)))

	late, _ := sched.Enqueue(ctx, interfaces.JobSpec{Type: scheduler.JobTypePostPublish, RunAt: now.Add(30 * time.Minute)})
	early, _ := sched.Enqueue(ctx, interfaces.JobSpec{Type: scheduler.JobTypePostPublish, RunAt: now.Add(10 * time.Minute)})
	if _, err := sched.Enqueue(ctx, interfaces.JobSpec{Type: scheduler.JobTypePostPublish, RunAt: now.Add(2 * time.Hour)}); err != nil {
		t.Fatalf("enqueue future job: %v", err)
	}

	due, err := sched.ListDue(ctx, now.Add(time.Hour), 0)
	if err != nil {
		t.Fatalf("list due: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("expected 2 due jobs, got %d", len(due))
	}
	if due[0].ID != early.ID || due[1].ID != late.ID {
		t.Fatal("due jobs must be ordered by RunAt ascending")
	}

	limited, err := sched.ListDue(ctx, now.Add(time.Hour), 1)
	if err != nil {
		t.Fatalf("list due limited: %v", err)
	}
	if len(limited) != 1 || limited[0].ID != early.ID {
		t.Fatalf("limit should keep the earliest job, got %v", limited)
	}
}

func TestMarkDoneReleasesKey(t *testing.T) {
	ctx := context.Background()
	sched := scheduler.NewInMemory()

	postID := uuid.New()
	job, err := sched.Enqueue(ctx, interfaces.JobSpec{
		Key:   scheduler.PostPublishJobKey(postID),
		Type:  scheduler.JobTypePostPublish,
		RunAt: time.Now().Add(time.Minute),
	})
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if err := sched.MarkDone(ctx, job.ID); err != nil {
		t.Fatalf("mark done: %v", err)
	}

	stored, err := sched.Get(ctx, job.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Status != interfaces.JobStatusCompleted {
		t.Fatalf("status = %s, want completed", stored.Status)
	}
	if _, err := sched.GetByKey(ctx, scheduler.PostPublishJobKey(postID)); !errors.Is(err, interfaces.ErrJobNotFound) {
		t.Fatalf("completed job should release its key, got %v", err)
	}
}

func TestMarkFailedRetriesUntilBudgetExhausted(t *testing.T) {
	ctx := context.Background()
	sched := scheduler.NewInMemory(scheduler.WithDefaultMaxAttempts(2))

	postID := uuid.New()
	job, err := sched.Enqueue(ctx, interfaces.JobSpec{
		Key:   scheduler.PostPublishJobKey(postID),
		Type:  scheduler.JobTypePostPublish,
		RunAt: time.Now().Add(time.Minute),
	})
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	if err := sched.MarkFailed(ctx, job.ID, errors.New("db down")); err != nil {
		t.Fatalf("first failure: %v", err)
	}
	stored, _ := sched.Get(ctx, job.ID)
	if stored.Status != interfaces.JobStatusPending || stored.Attempt != 1 {
		t.Fatalf("first failure should keep the job pending: %+v", stored)
	}
	if stored.LastError != "db down" {
		t.Fatalf("LastError = %q", stored.LastError)
	}

	if err := sched.MarkFailed(ctx, job.ID, errors.New("db still down")); err != nil {
		t.Fatalf("second failure: %v", err)
	}
	stored, _ = sched.Get(ctx, job.ID)
	if stored.Status != interfaces.JobStatusFailed {
		t.Fatalf("exhausted retry budget should fail the job, got %s", stored.Status)
	}
	if _, err := sched.GetByKey(ctx, scheduler.PostPublishJobKey(postID)); !errors.Is(err, interfaces.ErrJobNotFound) {
		t.Fatalf("failed job should release its key, got %v", err)
	}
}

func TestCancelByKey(t *testing.T) {
	ctx := context.Background()
	sched := scheduler.NewInMemory()

	postID := uuid.New()
	job, err := sched.Enqueue(ctx, interfaces.JobSpec{
		Key:   scheduler.PostUnpublishJobKey(postID),
		Type:  scheduler.JobTypePostUnpublish,
		RunAt: time.Now().Add(time.Minute),
	})
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if err := sched.CancelByKey(ctx, scheduler.PostUnpublishJobKey(postID)); err != nil {
		t.Fatalf("cancel by key: %v", err)
	}

	stored, err := sched.Get(ctx, job.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Status != interfaces.JobStatusCanceled {
		t.Fatalf("status = %s, want canceled", stored.Status)
	}

	due, err := sched.ListDue(ctx, time.Now().Add(time.Hour), 0)
	if err != nil {
		t.Fatalf("list due: %v", err)
	}
	if len(due) != 0 {
		t.Fatalf("canceled jobs must not be due, got %d", len(due))
	}

	if err := sched.CancelByKey(ctx, "missing"); !errors.Is(err, interfaces.ErrJobNotFound) {
		t.Fatalf("unknown key should report not found, got %v", err)
	}
}
