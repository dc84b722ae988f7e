package packages_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/i18n"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/packages"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/pkg/testsupport"
)

func TestBunRepositoryAdjustClientsOnSQLite(t *testing.T) {
	ctx := context.Background()

	db, err := testsupport.NewSQLiteMemoryDB()
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	if _, err := db.NewCreateTable().
		Model((*packages.Package)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		t.Fatalf("create packages table: %v", err)
	}

	repo := packages.NewBunRepository(db)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	pkg := &packages.Package{
		ID:         uuid.New(),
		Title:      i18n.Text{TR: "Temel Paket", EN: "Basic Package"},
		Price:      299,
		MaxClients: 2,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := repo.Create(ctx, pkg); err != nil {
		t.Fatalf("create: %v", err)
	}

	for want := 1; want <= 2; want++ {
		updated, err := repo.AdjustClients(ctx, pkg.ID, 1)
		if err != nil {
			t.Fatalf("reserve seat %d: %v", want, err)
		}
		if updated.CurrentClients != want {
			t.Fatalf("current clients = %d, want %d", updated.CurrentClients, want)
		}
	}

	if _, err := repo.AdjustClients(ctx, pkg.ID, 1); !errors.Is(err, packages.ErrPackageFull) {
		t.Fatalf("expected ErrPackageFull at capacity, got %v", err)
	}

	updated, err := repo.AdjustClients(ctx, pkg.ID, -5)
	if err != nil {
		t.Fatalf("release seats: %v", err)
	}
	if updated.CurrentClients != 0 {
		t.Fatalf("current clients = %d, want floor at 0", updated.CurrentClients)
	}
}
