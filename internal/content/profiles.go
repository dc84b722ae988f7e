package content

import "github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/mapper"

// DefaultReadTime is used when the read_time form field is absent or
// unparsable.
const DefaultReadTime = 5

// PostProfile drives the flat form <-> nested record transform for posts.
// Counters are deliberately absent: view/like counts only move through the
// dedicated increment operations, never through a form submission.
var PostProfile = mapper.Profile{
	Localized: []string{
		"title",
		"slug",
		"content",
		"excerpt",
		"image_alt_text",
		"meta_title",
		"meta_description",
		"meta_keywords",
	},
	Lists: []string{"tags"},
	Ints:  map[string]int{"read_time": DefaultReadTime},
	Bools: []string{"is_featured", "allow_comments"},
	Strings: []string{
		"image_url",
		"status",
		"category_id",
		"published_at",
		"scheduled_at",
	},
}

// CategoryProfile drives the transform for blog categories.
var CategoryProfile = mapper.Profile{
	Localized: []string{"name", "description", "slug"},
	Ints:      map[string]int{"order_index": 0},
	Bools:     []string{"is_active"},
	Strings:   []string{"color", "icon"},
}
