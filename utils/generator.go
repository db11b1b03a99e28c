package utils

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"github.com/anyango/dev_circle/models"
	"gorm.io/gorm"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a title and collapses everything outside [a-z0-9] into
// single hyphens.
func Slugify(title string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// GenerateUniqueSlug derives a URL slug from an article title, appending a
// short random suffix while the slug collides with an existing article.
func GenerateUniqueSlug(tx *gorm.DB, title string) (string, error) {
	base := Slugify(title)
	if base == "" {
		base = "article"
	}

	slug := base
	for {
		var article models.Article
		err := tx.Where("slug = ?", slug).First(&article).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return slug, nil
			}
			return "", err
		}
		slug = fmt.Sprintf("%s-%04d", base, rand.Intn(10000))
	}
}
