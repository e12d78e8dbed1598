// internal/models/brand.go
package models

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Brand struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description" json:"description"`
	Logo        string             `bson:"logo" json:"logo"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	Timestamps  `bson:",inline"`
}

var (
	slugWhitespace = regexp.MustCompile(`\s+`)
	slugDisallowed = regexp.MustCompile(`[^a-z0-9-]`)
)

// Slugify derives the URL-safe identifier for a brand name: lowercase,
// whitespace collapsed to hyphens, everything outside [a-z0-9-] removed.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = slugWhitespace.ReplaceAllString(s, "-")
	return slugDisallowed.ReplaceAllString(s, "")
}
