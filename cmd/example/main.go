package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	platform "github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/di"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/testimonials"
)

func main() {
	dbPath := flag.String("db", "", "SQLite path; empty runs against the in-memory store")
	flag.Parse()

	ctx := context.Background()

	cfg := platform.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "console"
	cfg.Logging.Level = "debug"

	var opts []di.Option
	if *dbPath != "" {
		db, err := platform.OpenSQLite(*dbPath)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		defer db.Close()
		cfg.Storage.Provider = "bun"
		opts = append(opts, di.WithDB(db))
	}

	module, err := platform.New(cfg, opts...)
	if err != nil {
		log.Fatalf("bootstrap platform: %v", err)
	}

	posts := module.Posts()

	post, err := posts.Create(ctx, platform.Form{
		"title_tr":   "Sağlıklı Beslenme İpuçları",
		"title_en":   "Healthy Eating Tips",
		"content_tr": "Dengeli beslenme için günlük öneriler.",
		"content_en": "Daily recommendations for a balanced diet.",
		"excerpt_tr": "Pratik öneriler.",
		"excerpt_en": "Practical tips.",
		"tags_tr":    "beslenme, sağlık",
		"tags_en":    "nutrition, health",
	})
	if err != nil {
		log.Fatalf("create post: %v", err)
	}
	fmt.Printf("created draft: %s (%s / %s)\n", post.ID, post.Slug.TR, post.Slug.EN)

	if _, err := posts.Publish(ctx, post.ID); err != nil {
		log.Fatalf("publish post: %v", err)
	}
	if _, err := posts.IncrementView(ctx, post.ID); err != nil {
		log.Fatalf("increment view: %v", err)
	}

	found, err := posts.GetBySlug(ctx, post.Slug.TR, platform.LocaleTurkish)
	if err != nil {
		log.Fatalf("lookup by slug: %v", err)
	}
	fmt.Printf("published: %q / %q (%d views)\n",
		found.Title.In(platform.LocaleTurkish),
		found.Title.In(platform.LocaleEnglish),
		found.ViewCount,
	)

	// Schedule a second article for later this week.
	scheduled, err := posts.Create(ctx, platform.Form{
		"title_tr":   "Protein İhtiyacınızı Doğru Hesaplayın",
		"title_en":   "Calculate Your Protein Needs Correctly",
		"content_tr": "Protein ihtiyacı hedeflere göre belirlenir.",
		"content_en": "Protein requirements depend on your goals.",
	})
	if err != nil {
		log.Fatalf("create scheduled post: %v", err)
	}
	if _, err := posts.Schedule(ctx, scheduled.ID, time.Now().Add(48*time.Hour)); err != nil {
		log.Fatalf("schedule post: %v", err)
	}
	fmt.Printf("scheduled: %s\n", scheduled.Slug.EN)

	// The public catalogue falls back to the built-in packages until one is
	// authored.
	catalogue, err := module.Packages().ListActive(ctx)
	if err != nil {
		log.Fatalf("list packages: %v", err)
	}
	for _, pkg := range catalogue {
		fmt.Printf("package: %s — %.0f TL\n", pkg.Title.In(platform.LocaleTurkish), pkg.Price)
	}

	// Run a testimonial through moderation.
	review, err := module.Testimonials().Submit(ctx, testimonials.Submission{
		Name:     "Ayşe Yılmaz",
		Content:  "Üç ayda hedefime ulaştım, destek için teşekkürler!",
		Rating:   5,
		Language: "tr",
	})
	if err != nil {
		log.Fatalf("submit testimonial: %v", err)
	}
	if _, err := module.Testimonials().Approve(ctx, review.ID); err != nil {
		log.Fatalf("approve testimonial: %v", err)
	}
	stats, err := module.Testimonials().Stats(ctx)
	if err != nil {
		log.Fatalf("testimonial stats: %v", err)
	}
	fmt.Printf("rating: %.1f over %d reviews\n", stats.Average, stats.Count)

	form, err := posts.Form(ctx, post.ID)
	if err != nil {
		log.Fatalf("load edit form: %v", err)
	}
	encoded, err := json.MarshalIndent(form, "", "  ")
	if err != nil {
		log.Fatalf("encode form: %v", err)
	}
	fmt.Printf("edit form:\n%s\n", encoded)
}
