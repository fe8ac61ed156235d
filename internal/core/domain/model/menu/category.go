package menu

import (
	"slices"
	"strings"
)

// Section is one category of a menu with its items in input order.
type Section struct {
	Category string
	Items    []*Item
}

// GroupByCategory groups items by category, sections sorted by name
// case-insensitively.
func GroupByCategory(items []*Item) []Section {
	index := map[string]int{}
	var sections []Section
	for _, it := range items {
		key := strings.ToLower(it.Category())
		pos, ok := index[key]
		if !ok {
			pos = len(sections)
			index[key] = pos
			sections = append(sections, Section{Category: it.Category()})
		}
		sections[pos].Items = append(sections[pos].Items, it)
	}
	slices.SortStableFunc(sections, func(a, b Section) int {
		return strings.Compare(strings.ToLower(a.Category), strings.ToLower(b.Category))
	})
	return sections
}
