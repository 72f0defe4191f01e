package repository

import (
	"fmt"

	"github.com/newsroom-platform-api/internal/models"
)

// refColumn maps a content reference to the nullable FK column that
// carries it in comments, reactions, bookmarks and notifications.
func refColumn(ref models.ContentRef) (string, error) {
	switch ref.Type {
	case models.ContentArticle:
		return "article_id", nil
	case models.ContentNewsletter:
		return "newsletter_id", nil
	default:
		return "", fmt.Errorf("unknown content type %q", ref.Type)
	}
}

// contentTable maps a content reference to its backing table.
func contentTable(ref models.ContentRef) (string, error) {
	switch ref.Type {
	case models.ContentArticle:
		return "articles", nil
	case models.ContentNewsletter:
		return "newsletters", nil
	default:
		return "", fmt.Errorf("unknown content type %q", ref.Type)
	}
}
