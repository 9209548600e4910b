// Package listing turns a fetched creator list plus the explore page's search
// text and category selection into the visible result set.
package listing

import (
	"fmt"
	"strings"

	"creator-hub/services/catalog/internal/entity"
)

type Query struct {
	Search   string `form:"search" json:"search"`
	Category string `form:"category" json:"category"`
}

// SelectedCategory treats an empty category as entity.CategoryAll.
func (q Query) SelectedCategory() string {
	if q.Category == "" {
		return entity.CategoryAll
	}
	return q.Category
}

type View struct {
	Creators []*entity.Creator `json:"creators"`
	Count    int               `json:"count"`
	Label    string            `json:"label"`
	Empty    bool              `json:"empty"`
}

func MatchesSearch(c *entity.Creator, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(c.Name), needle) ||
		strings.Contains(strings.ToLower(c.Tagline), needle)
}

// MatchesCategory compares exactly; categories come from a fixed vocabulary.
func MatchesCategory(c *entity.Creator, category string) bool {
	return category == entity.CategoryAll || string(c.Category) == category
}

// Filter keeps the creators matching both the search term and the category,
// in source order. source is not modified.
func Filter(source []*entity.Creator, q Query) *View {
	category := q.SelectedCategory()
	visible := make([]*entity.Creator, 0, len(source))
	for _, c := range source {
		if MatchesSearch(c, q.Search) && MatchesCategory(c, category) {
			visible = append(visible, c)
		}
	}

	return &View{
		Creators: visible,
		Count:    len(visible),
		Label:    ResultLabel(len(visible)),
		Empty:    len(visible) == 0,
	}
}

func ResultLabel(count int) string {
	if count == 1 {
		return "1 creator found"
	}
	return fmt.Sprintf("%d creators found", count)
}
