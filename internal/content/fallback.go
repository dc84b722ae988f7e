package content

import (
	"time"

	"github.com/google/uuid"

	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/domain"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/i18n"
)

// The default catalogue keeps public pages populated before any content has
// been authored. IDs are fixed so repeated calls stay stable across requests
// and the frontend can key on them.
var (
	defaultCategoryNutritionID = uuid.MustParse("c1a0b2d4-0001-4a61-9c25-3f6f1f6a9b01")
	defaultCategoryWeightID    = uuid.MustParse("c1a0b2d4-0002-4a61-9c25-3f6f1f6a9b02")
	defaultCategorySportsID    = uuid.MustParse("c1a0b2d4-0003-4a61-9c25-3f6f1f6a9b03")

	defaultPostHydrationID = uuid.MustParse("a7e4c5f2-0001-4bd8-8a4f-5d2e9c7b3401")
	defaultPostProteinID   = uuid.MustParse("a7e4c5f2-0002-4bd8-8a4f-5d2e9c7b3402")
	defaultPostMealPrepID  = uuid.MustParse("a7e4c5f2-0003-4bd8-8a4f-5d2e9c7b3403")
)

var defaultContentStamp = time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)

// DefaultCategories returns the built-in category set. Callers receive fresh
// copies and may mutate them freely.
func DefaultCategories() []*Category {
	categories := []*Category{
		{
			ID:   defaultCategoryNutritionID,
			Name: i18n.Text{TR: "Genel Beslenme", EN: "General Nutrition"},
			Description: i18n.Text{
				TR: "Dengeli beslenme ve günlük öğün düzeni üzerine yazılar",
				EN: "Articles on balanced nutrition and daily meal routines",
			},
			Slug:       i18n.Text{TR: "genel-beslenme", EN: "general-nutrition"},
			Color:      "#22c55e",
			Icon:       "apple",
			OrderIndex: 0,
			IsActive:   true,
			CreatedAt:  defaultContentStamp,
			UpdatedAt:  defaultContentStamp,
		},
		{
			ID:   defaultCategoryWeightID,
			Name: i18n.Text{TR: "Kilo Yönetimi", EN: "Weight Management"},
			Description: i18n.Text{
				TR: "Sağlıklı kilo verme ve kilo koruma stratejileri",
				EN: "Healthy weight loss and maintenance strategies",
			},
			Slug:       i18n.Text{TR: "kilo-yonetimi", EN: "weight-management"},
			Color:      "#3b82f6",
			Icon:       "scale",
			OrderIndex: 1,
			IsActive:   true,
			CreatedAt:  defaultContentStamp,
			UpdatedAt:  defaultContentStamp,
		},
		{
			ID:   defaultCategorySportsID,
			Name: i18n.Text{TR: "Sporcu Beslenmesi", EN: "Sports Nutrition"},
			Description: i18n.Text{
				TR: "Antrenman öncesi ve sonrası beslenme önerileri",
				EN: "Nutrition guidance around training sessions",
			},
			Slug:       i18n.Text{TR: "sporcu-beslenmesi", EN: "sports-nutrition"},
			Color:      "#f97316",
			Icon:       "dumbbell",
			OrderIndex: 2,
			IsActive:   true,
			CreatedAt:  defaultContentStamp,
			UpdatedAt:  defaultContentStamp,
		},
	}
	return categories
}

// DefaultPosts returns the built-in article set used when no published
// content exists yet. Callers receive fresh copies and may mutate them
// freely.
func DefaultPosts() []*Post {
	publishedAt := defaultContentStamp
	nutritionID := defaultCategoryNutritionID
	weightID := defaultCategoryWeightID

	posts := []*Post{
		{
			ID:     defaultPostHydrationID,
			Status: domain.StatusPublished,
			Title: i18n.Text{
				TR: "Günde Ne Kadar Su İçmeliyiz?",
				EN: "How Much Water Should You Drink a Day?",
			},
			Slug: i18n.Text{TR: "gunde-ne-kadar-su-icmeliyiz", EN: "how-much-water-should-you-drink-a-day"},
			Content: i18n.Text{
				TR: "Su, metabolizmanın düzenli çalışması için en temel ihtiyaçtır. Günlük su ihtiyacı kiloya, aktivite düzeyine ve mevsime göre değişir.",
				EN: "Water is the most basic requirement for a well functioning metabolism. Daily needs vary with body weight, activity level and season.",
			},
			Excerpt: i18n.Text{
				TR: "Günlük su ihtiyacınızı nasıl hesaplayacağınızı öğrenin.",
				EN: "Learn how to calculate your daily water needs.",
			},
			CategoryID: &nutritionID,
			Tags: i18n.StringList{
				TR: []string{"su", "hidrasyon", "beslenme"},
				EN: []string{"water", "hydration", "nutrition"},
			},
			AllowComments: true,
			ReadTime:      4,
			PublishedAt:   &publishedAt,
			CreatedAt:     defaultContentStamp,
			UpdatedAt:     defaultContentStamp,
		},
		{
			ID:     defaultPostProteinID,
			Status: domain.StatusPublished,
			Title: i18n.Text{
				TR: "Protein İhtiyacınızı Doğru Hesaplayın",
				EN: "Calculate Your Protein Needs Correctly",
			},
			Slug: i18n.Text{TR: "protein-ihtiyacinizi-dogru-hesaplayin", EN: "calculate-your-protein-needs-correctly"},
			Content: i18n.Text{
				TR: "Protein ihtiyacı yaşa, kas kütlesine ve hedeflere göre belirlenir. Genel öneri kilogram başına 0,8-2,0 gram aralığındadır.",
				EN: "Protein requirements depend on age, muscle mass and goals. The general recommendation ranges from 0.8 to 2.0 grams per kilogram.",
			},
			Excerpt: i18n.Text{
				TR: "Hedefinize uygun protein miktarını belirleyin.",
				EN: "Find the protein intake that fits your goal.",
			},
			CategoryID: &weightID,
			Tags: i18n.StringList{
				TR: []string{"protein", "kas", "beslenme"},
				EN: []string{"protein", "muscle", "nutrition"},
			},
			IsFeatured:    true,
			AllowComments: true,
			ReadTime:      6,
			PublishedAt:   &publishedAt,
			CreatedAt:     defaultContentStamp,
			UpdatedAt:     defaultContentStamp,
		},
		{
			ID:     defaultPostMealPrepID,
			Status: domain.StatusPublished,
			Title: i18n.Text{
				TR: "Haftalık Öğün Hazırlığı İçin Pratik İpuçları",
				EN: "Practical Tips for Weekly Meal Prep",
			},
			Slug: i18n.Text{TR: "haftalik-ogun-hazirligi-icin-pratik-ipuclari", EN: "practical-tips-for-weekly-meal-prep"},
			Content: i18n.Text{
				TR: "Haftalık öğün hazırlığı zaman kazandırır ve dengesiz atıştırmaları azaltır. Pazar günü iki saatlik bir hazırlık haftayı kurtarır.",
				EN: "Weekly meal prep saves time and cuts down on unbalanced snacking. Two hours of preparation on Sunday can carry the whole week.",
			},
			Excerpt: i18n.Text{
				TR: "Öğün hazırlığını alışkanlığa çevirmenin yolları.",
				EN: "Ways to turn meal prep into a habit.",
			},
			CategoryID: &nutritionID,
			Tags: i18n.StringList{
				TR: []string{"öğün hazırlığı", "planlama"},
				EN: []string{"meal prep", "planning"},
			},
			AllowComments: true,
			ReadTime:      5,
			PublishedAt:   &publishedAt,
			CreatedAt:     defaultContentStamp,
			UpdatedAt:     defaultContentStamp,
		},
	}

	copies := make([]*Post, len(posts))
	for i, post := range posts {
		copies[i] = clonePost(post)
	}
	return copies
}
