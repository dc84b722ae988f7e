package packages_test

import (
	"context"
	"errors"
	"testing"

	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/mapper"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/packages"
)

func packageForm() mapper.Form {
	return mapper.Form{
		"title_tr":    "Temel Paket",
		"title_en":    "Basic Package",
		"price":       "299.90",
		"duration_tr": "1 Ay",
		"duration_en": "1 Month",
		"features_tr": "Konsültasyon, Haftalık takip",
		"features_en": "Consultation, Weekly follow-up",
		"tags":        "beginner, nutrition",
		"max_clients": 2,
	}
}

func TestPackageCreateNormalizesListsAndPrice(t *testing.T) {
	svc := packages.NewService(packages.NewMemoryRepository())
	ctx := context.Background()

	pkg, err := svc.Create(ctx, packageForm())
	if err != nil {
		t.Fatalf("create package: %v", err)
	}
	if pkg.Price != 299.90 {
		t.Fatalf("price not parsed: %v", pkg.Price)
	}
	featuresTR := pkg.Features.In("tr")
	if len(featuresTR) != 2 || featuresTR[0] != "Konsültasyon" {
		t.Fatalf("features not normalized: %v", featuresTR)
	}
	if len(pkg.Tags) != 2 || pkg.Tags[0] != "beginner" {
		t.Fatalf("tags not normalized: %v", pkg.Tags)
	}
	if !pkg.IsActive {
		t.Fatal("new packages default to active")
	}
}

func TestPackageCreateRejectsNegativePrice(t *testing.T) {
	svc := packages.NewService(packages.NewMemoryRepository())

	form := packageForm()
	form["price"] = "-10"
	if _, err := svc.Create(context.Background(), form); !packages.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPackageListActiveFallsBackToCatalogue(t *testing.T) {
	svc := packages.NewService(packages.NewMemoryRepository())
	ctx := context.Background()

	catalogue, err := svc.ListActive(ctx)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(catalogue) != 3 {
		t.Fatalf("expected 3 default packages, got %d", len(catalogue))
	}
	popular := 0
	for _, pkg := range catalogue {
		if pkg.Title.TR == "" || pkg.Title.EN == "" {
			t.Fatalf("default package %s is not bilingual", pkg.ID)
		}
		if len(pkg.Features.In("tr")) == 0 || len(pkg.Features.In("en")) == 0 {
			t.Fatalf("default package %s has empty features", pkg.ID)
		}
		if pkg.IsPopular {
			popular++
		}
	}
	if popular != 1 {
		t.Fatalf("expected exactly one popular default, got %d", popular)
	}

	created, err := svc.Create(ctx, packageForm())
	if err != nil {
		t.Fatalf("create package: %v", err)
	}
	listed, err := svc.ListActive(ctx)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("expected only the authored package, got %d", len(listed))
	}
}

func TestPackageSeatReservationRespectsCapacity(t *testing.T) {
	svc := packages.NewService(packages.NewMemoryRepository())
	ctx := context.Background()

	pkg, err := svc.Create(ctx, packageForm())
	if err != nil {
		t.Fatalf("create package: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := svc.ReserveSeat(ctx, pkg.ID); err != nil {
			t.Fatalf("reserve seat %d: %v", i, err)
		}
	}
	if _, err := svc.ReserveSeat(ctx, pkg.ID); !errors.Is(err, packages.ErrPackageFull) {
		t.Fatalf("expected ErrPackageFull, got %v", err)
	}

	released, err := svc.ReleaseSeat(ctx, pkg.ID)
	if err != nil {
		t.Fatalf("release seat: %v", err)
	}
	if released.CurrentClients != 1 {
		t.Fatalf("expected 1 client after release, got %d", released.CurrentClients)
	}
}

func TestPackageUpdateMergesPartialForm(t *testing.T) {
	svc := packages.NewService(packages.NewMemoryRepository())
	ctx := context.Background()

	pkg, err := svc.Create(ctx, packageForm())
	if err != nil {
		t.Fatalf("create package: %v", err)
	}

	updated, err := svc.Update(ctx, pkg.ID, mapper.Form{"is_popular": "on"})
	if err != nil {
		t.Fatalf("update package: %v", err)
	}
	if !updated.IsPopular {
		t.Fatal("is_popular checkbox value not applied")
	}
	if updated.Title != pkg.Title || updated.Price != pkg.Price {
		t.Fatal("partial update must keep unrelated fields")
	}
}
