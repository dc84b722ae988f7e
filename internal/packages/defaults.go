package packages

import (
	"time"

	"github.com/google/uuid"

	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/i18n"
)

var (
	defaultPackageBasicID   = uuid.MustParse("b5d8e1a0-0001-4c72-8e31-7a9b2c4d6e01")
	defaultPackagePremiumID = uuid.MustParse("b5d8e1a0-0002-4c72-8e31-7a9b2c4d6e02")
	defaultPackageVIPID     = uuid.MustParse("b5d8e1a0-0003-4c72-8e31-7a9b2c4d6e03")
)

var defaultPackageStamp = time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)

// DefaultPackages returns the built-in service catalogue used before any
// packages have been authored. Callers receive fresh copies.
func DefaultPackages() []*Package {
	catalogue := []*Package{
		{
			ID:    defaultPackageBasicID,
			Title: i18n.Text{TR: "Temel Beslenme Paketi", EN: "Basic Nutrition Package"},
			Description: i18n.Text{
				TR: "Beslenme yolculuğuna başlayanlar için ideal paket",
				EN: "Perfect package for those starting their nutrition journey",
			},
			Price:         299,
			OriginalPrice: 399,
			Duration:      i18n.Text{TR: "1 Ay", EN: "1 Month"},
			Features: i18n.StringList{
				TR: []string{
					"İlk konsültasyon (60 dakika)",
					"Kişiselleştirilmiş beslenme planı",
					"Haftalık takip",
					"WhatsApp desteği",
					"Temel tarif koleksiyonu",
				},
				EN: []string{
					"Initial consultation (60 minutes)",
					"Personalized nutrition plan",
					"Weekly follow-up",
					"WhatsApp support",
					"Basic recipe collection",
				},
			},
			IsActive:   true,
			Icon:       "bi-heart",
			Category:   "basic",
			OrderIndex: 1,
			MaxClients: 20,
			Tags:       []string{"beginner", "consultation", "nutrition"},
			SEOTitle: i18n.Text{
				TR: "Temel Beslenme Paketi - Diyetisyen Oğuz Yolyapan",
				EN: "Basic Nutrition Package - Dietitian Oğuz Yolyapan",
			},
			SEODescription: i18n.Text{
				TR: "Beslenme yolculuğunuza başlamak için ideal temel paket. Profesyonel diyetisyen desteği ile sağlıklı yaşam.",
				EN: "Ideal basic package to start your nutrition journey. Healthy living with professional dietitian support.",
			},
			CreatedAt: defaultPackageStamp,
			UpdatedAt: defaultPackageStamp,
		},
		{
			ID:    defaultPackagePremiumID,
			Title: i18n.Text{TR: "Premium Beslenme Paketi", EN: "Premium Nutrition Package"},
			Description: i18n.Text{
				TR: "Kapsamlı beslenme desteği ve sürdürülebilir sonuçlar",
				EN: "Comprehensive nutrition support and sustainable results",
			},
			Price:         599,
			OriginalPrice: 799,
			Duration:      i18n.Text{TR: "3 Ay", EN: "3 Months"},
			Features: i18n.StringList{
				TR: []string{
					"Detaylı konsültasyon (90 dakika)",
					"Kapsamlı beslenme planı",
					"Günlük takip",
					"Öncelikli WhatsApp desteği",
					"Tarif koleksiyonu + meal prep rehberi",
					"Supplement önerileri",
					"İlerleme takip araçları",
				},
				EN: []string{
					"Detailed consultation (90 minutes)",
					"Comprehensive nutrition plan",
					"Daily follow-up",
					"Priority WhatsApp support",
					"Recipe collection + meal prep guide",
					"Supplement recommendations",
					"Progress tracking tools",
				},
			},
			IsPopular:  true,
			IsActive:   true,
			Icon:       "bi-star",
			Category:   "premium",
			OrderIndex: 2,
			MaxClients: 15,
			Tags:       []string{"premium", "comprehensive", "tracking"},
			SEOTitle: i18n.Text{
				TR: "Premium Beslenme Paketi - En Popüler - Diyetisyen Oğuz Yolyapan",
				EN: "Premium Nutrition Package - Most Popular - Dietitian Oğuz Yolyapan",
			},
			SEODescription: i18n.Text{
				TR: "En popüler premium beslenme paketi. Kapsamlı destek ve sürdürülebilir sonuçlar için ideal seçim.",
				EN: "Most popular premium nutrition package. Ideal choice for comprehensive support and sustainable results.",
			},
			CreatedAt: defaultPackageStamp,
			UpdatedAt: defaultPackageStamp,
		},
		{
			ID:    defaultPackageVIPID,
			Title: i18n.Text{TR: "VIP Beslenme Paketi", EN: "VIP Nutrition Package"},
			Description: i18n.Text{
				TR: "Özel özellikler ve öncelikli destek ile premium hizmet",
				EN: "Premium service with exclusive features and priority support",
			},
			Price:         1199,
			OriginalPrice: 1599,
			Duration:      i18n.Text{TR: "6 Ay", EN: "6 Months"},
			Features: i18n.StringList{
				TR: []string{
					"Kapsamlı sağlık ve yaşam tarzı değerlendirmesi",
					"Kişiselleştirilmiş beslenme ve fitness programı",
					"Haftalık birebir konsültasyonlar",
					"Gelişmiş vücut kompozisyon takibi",
					"Öncelikli 7/24 destek",
					"Özel tarif koleksiyonu",
					"Aylık ilerleme raporları",
					"Takviye protokol tasarımı",
					"Yemek teslimat koordinasyonu",
					"Aile beslenme rehberliği",
				},
				EN: []string{
					"Comprehensive health & lifestyle assessment",
					"Personalized nutrition & fitness program",
					"Weekly one-on-one consultations",
					"Advanced body composition tracking",
					"Priority 24/7 support",
					"Exclusive recipe collection",
					"Monthly progress reports",
					"Supplement protocol design",
					"Meal delivery coordination",
					"Family nutrition guidance",
				},
			},
			IsActive:   true,
			Icon:       "bi-gem",
			Category:   "vip",
			OrderIndex: 3,
			MaxClients: 5,
			Tags:       []string{"vip", "exclusive", "family", "premium"},
			SEOTitle: i18n.Text{
				TR: "VIP Beslenme Paketi - Özel Hizmet - Diyetisyen Oğuz Yolyapan",
				EN: "VIP Nutrition Package - Exclusive Service - Dietitian Oğuz Yolyapan",
			},
			SEODescription: i18n.Text{
				TR: "VIP beslenme paketi ile özel hizmet alın. Aile beslenme rehberliği ve 7/24 öncelikli destek.",
				EN: "Get exclusive service with VIP nutrition package. Family nutrition guidance and 24/7 priority support.",
			},
			CreatedAt: defaultPackageStamp,
			UpdatedAt: defaultPackageStamp,
		},
	}

	copies := make([]*Package, len(catalogue))
	for i, pkg := range catalogue {
		copies[i] = clonePackage(pkg)
	}
	return copies
}
