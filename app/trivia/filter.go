package trivia

import (
	"fmt"
	"strconv"
	"strings"
)

// CategoryFilter selects the candidate pool of a quiz draw: every category,
// or a single category id. Its text form is "all" or the decimal id.
type CategoryFilter struct {
	All bool
	ID  uint
}

// AllCategories is the filter that matches every question.
var AllCategories = CategoryFilter{All: true}

func ByCategory(id uint) CategoryFilter {
	if id == 0 {
		return AllCategories
	}
	return CategoryFilter{ID: id}
}

// ParseCategoryFilter parses "all" or a category id. "0" means all.
func ParseCategoryFilter(s string) (CategoryFilter, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "all") {
		return AllCategories, nil
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return CategoryFilter{}, fmt.Errorf("invalid category filter %q", s)
	}
	return ByCategory(uint(id)), nil
}

func (f CategoryFilter) String() string {
	if f.All {
		return "all"
	}
	return strconv.FormatUint(uint64(f.ID), 10)
}

// QuizCategory is the category selector sent by quiz clients.
type QuizCategory struct {
	ID   uint
	Type string
}
