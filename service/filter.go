package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/advisorhub/agentcrm/models"
)

// Category selects which dashboard card the list is filtered by.
type Category string

const (
	CategoryAll           Category = "ALL"
	CategoryOpportunities Category = "OPPORTUNITIES"
	CategoryRenewals      Category = "RENEWALS"
	CategoryFollowUps     Category = "FOLLOWUPS"
)

// ParseCategory maps the query-string value onto a category. Empty selects
// ALL; anything else unknown is rejected.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToUpper(s)) {
	case "", CategoryAll:
		return CategoryAll, nil
	case CategoryOpportunities:
		return CategoryOpportunities, nil
	case CategoryRenewals:
		return CategoryRenewals, nil
	case CategoryFollowUps:
		return CategoryFollowUps, nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// AllOption is the wildcard value for the city and area filters.
const AllOption = "all"

// Filter is one dashboard filter configuration.
type Filter struct {
	Search   string
	Category Category
	City     string
	Area     string
}

// FilterCustomers applies the search term, city/area filters and the active
// category to the book. The result preserves insertion order, except for
// OPPORTUNITIES which sorts descending by total potential payout (stable, so
// equal payouts keep their relative order).
func FilterCustomers(customers []models.Customer, f Filter, now time.Time) []models.Customer {
	term := strings.ToLower(f.Search)
	city := f.City
	if city == "" {
		city = AllOption
	}
	area := f.Area
	if area == "" {
		area = AllOption
	}

	filtered := make([]models.Customer, 0, len(customers))
	for _, c := range customers {
		if term != "" &&
			!strings.Contains(strings.ToLower(c.Name), term) &&
			!strings.Contains(strings.ToLower(c.Contact), term) {
			continue
		}
		if city != AllOption && c.City != city {
			continue
		}
		if area != AllOption && c.Area != area {
			continue
		}

		switch f.Category {
		case CategoryOpportunities:
			if TotalPotentialPayout(c) <= 0 {
				continue
			}
		case CategoryRenewals:
			if !IsRenewalDue(c, now) {
				continue
			}
		case CategoryFollowUps:
			if !IsFollowUpDue(c, now) {
				continue
			}
		}

		filtered = append(filtered, c)
	}

	if f.Category == CategoryOpportunities {
		sort.SliceStable(filtered, func(i, j int) bool {
			return TotalPotentialPayout(filtered[i]) > TotalPotentialPayout(filtered[j])
		})
	}

	return filtered
}

// AggregatePayout totals the open-opportunity payouts of the given customers
// per line of business. The grand total always equals the sum of
// TotalPotentialPayout over the same set.
func AggregatePayout(customers []models.Customer) models.PayoutBreakdown {
	var b models.PayoutBreakdown
	for _, c := range customers {
		b.Health += c.Policies.Health.OpportunityPayout()
		b.Life += c.Policies.Life.OpportunityPayout()
		b.Motor += c.Policies.Motor.OpportunityPayout()
	}
	b.Total = b.Health + b.Life + b.Motor
	return b
}

// CityOptions returns the city filter choices: "all" plus the distinct
// cities of the book in first-seen order.
func CityOptions(customers []models.Customer) []string {
	options := []string{AllOption}
	seen := make(map[string]bool)
	for _, c := range customers {
		if !seen[c.City] {
			seen[c.City] = true
			options = append(options, c.City)
		}
	}
	return options
}

// AreaOptions returns the area filter choices for the selected city. Without
// a concrete city the area filter is meaningless, so "all" alone is offered.
func AreaOptions(customers []models.Customer, city string) []string {
	if city == "" || city == AllOption {
		return []string{AllOption}
	}

	options := []string{AllOption}
	seen := make(map[string]bool)
	for _, c := range customers {
		if c.City != city {
			continue
		}
		if !seen[c.Area] {
			seen[c.Area] = true
			options = append(options, c.Area)
		}
	}
	return options
}
