// Package discovery derives the displayed service list from a wholesale
// fetched collection: pure filtering and sorting, re-run from scratch on any
// criteria change. Collections are small, so there is no incremental model.
package discovery

import (
	"sort"
	"strings"

	"timebank/internal/domain"
)

type SortKey string

const (
	SortNewest      SortKey = "newest"
	SortCreditsLow  SortKey = "credits-low"
	SortCreditsHigh SortKey = "credits-high"
	SortRating      SortKey = "rating"
)

// ParseSortKey maps a query-string value to a sort key, defaulting to
// newest-first for anything unrecognized.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortCreditsLow, SortCreditsHigh, SortRating:
		return SortKey(s)
	default:
		return SortNewest
	}
}

// Criteria is the full set of filter controls on the discovery page. The
// zero value matches every service. Filters compose with AND; the category
// set composes with OR across its members.
type Criteria struct {
	Term        string
	Categories  []string
	MinCredits  float64
	MaxCredits  float64 // 0 means unbounded
	City        string
	ServiceType string // "" or "all" means any
}

// IsZero reports whether no filter control is active.
func (c Criteria) IsZero() bool {
	return c.Term == "" &&
		len(c.Categories) == 0 &&
		c.MinCredits == 0 &&
		c.MaxCredits == 0 &&
		c.City == "" &&
		(c.ServiceType == "" || c.ServiceType == "all")
}

// Apply returns the services matching every active criterion. The input is
// never mutated; an empty result is a valid, displayable state.
func Apply(services []domain.Service, c Criteria) []domain.Service {
	out := make([]domain.Service, 0, len(services))
	for _, s := range services {
		if matches(s, c) {
			out = append(out, s)
		}
	}
	return out
}

func matches(s domain.Service, c Criteria) bool {
	if c.Term != "" && !matchesTerm(s, c.Term) {
		return false
	}
	if len(c.Categories) > 0 && !hasAnyCategory(s, c.Categories) {
		return false
	}
	if s.CreditRequired < c.MinCredits {
		return false
	}
	if c.MaxCredits > 0 && s.CreditRequired > c.MaxCredits {
		return false
	}
	if c.City != "" && !strings.Contains(strings.ToLower(s.City), strings.ToLower(c.City)) {
		return false
	}
	if c.ServiceType != "" && c.ServiceType != "all" && string(s.ServiceType) != c.ServiceType {
		return false
	}
	return true
}

// matchesTerm searches name, description, tags and categories,
// case-insensitively.
func matchesTerm(s domain.Service, term string) bool {
	t := strings.ToLower(term)
	if strings.Contains(strings.ToLower(s.Name), t) ||
		strings.Contains(strings.ToLower(s.Description), t) {
		return true
	}
	for _, tag := range s.Tags {
		if strings.Contains(strings.ToLower(tag), t) {
			return true
		}
	}
	for _, cat := range s.Category {
		if strings.Contains(strings.ToLower(cat), t) {
			return true
		}
	}
	return false
}

func hasAnyCategory(s domain.Service, selected []string) bool {
	for _, cat := range s.Category {
		for _, want := range selected {
			if cat == want {
				return true
			}
		}
	}
	return false
}

// SortBy returns a sorted copy; the input slice is left untouched. Sorting
// is stable so equal keys keep their fetched order.
func SortBy(services []domain.Service, key SortKey) []domain.Service {
	out := make([]domain.Service, len(services))
	copy(out, services)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch key {
		case SortCreditsLow:
			return a.CreditRequired < b.CreditRequired
		case SortCreditsHigh:
			return a.CreditRequired > b.CreditRequired
		case SortRating:
			// missing rating counts as 0
			return a.AverageRating > b.AverageRating
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
	return out
}
