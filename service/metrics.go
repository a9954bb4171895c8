package service

import (
	"time"

	"github.com/advisorhub/agentcrm/models"
)

// Date windows for the dashboard cards.
const (
	renewalWindowDays  = 30
	followUpWindowDays = 7
)

// TotalPotentialPayout sums the potential payout over the three lines of
// business, counting only open opportunities (status Opportunity and not
// declined). A missing payout counts as 0.
func TotalPotentialPayout(c models.Customer) float64 {
	return c.Policies.Health.OpportunityPayout() +
		c.Policies.Life.OpportunityPayout() +
		c.Policies.Motor.OpportunityPayout()
}

// IsRenewalDue reports whether any health policy, life policy or motor
// vehicle renews within the next 30 days.
func IsRenewalDue(c models.Customer, now time.Time) bool {
	for _, p := range c.Policies.Health.Policies {
		if withinWindow(p.RenewalDate, now, renewalWindowDays) {
			return true
		}
	}
	for _, p := range c.Policies.Life.Policies {
		if withinWindow(p.RenewalDate, now, renewalWindowDays) {
			return true
		}
	}
	for _, v := range c.Policies.Motor.Vehicles {
		if withinWindow(v.ExpiryDate, now, renewalWindowDays) {
			return true
		}
	}
	return false
}

// IsFollowUpDue reports whether the health or life slot has a follow-up
// scheduled within the next 7 days. The motor slot is intentionally not
// consulted, matching the product behavior.
func IsFollowUpDue(c models.Customer, now time.Time) bool {
	return withinWindow(c.Policies.Health.FollowUpDate, now, followUpWindowDays) ||
		withinWindow(c.Policies.Life.FollowUpDate, now, followUpWindowDays)
}

// withinWindow reports whether the date falls strictly after now and at most
// days days later. Empty or unparsable dates are never due.
func withinWindow(dateStr string, now time.Time, days int) bool {
	if dateStr == "" {
		return false
	}
	d, err := time.Parse(models.DateLayout, dateStr)
	if err != nil {
		return false
	}
	return d.After(now) && !d.After(now.AddDate(0, 0, days))
}

// Annotate pairs each customer with its derived dashboard values.
func Annotate(customers []models.Customer, now time.Time) []models.CustomerWithMetrics {
	out := make([]models.CustomerWithMetrics, 0, len(customers))
	for _, c := range customers {
		out = append(out, models.CustomerWithMetrics{
			Customer:             c,
			TotalPotentialPayout: TotalPotentialPayout(c),
			RenewalDue:           IsRenewalDue(c, now),
			FollowUpDue:          IsFollowUpDue(c, now),
		})
	}
	return out
}

// Counts computes the dashboard card counters over the full book.
func Counts(customers []models.Customer, now time.Time) models.DashboardStats {
	stats := models.DashboardStats{TotalCustomers: len(customers)}
	for _, c := range customers {
		if TotalPotentialPayout(c) > 0 {
			stats.Opportunities++
		}
		if IsRenewalDue(c, now) {
			stats.RenewalsDue++
		}
		if IsFollowUpDue(c, now) {
			stats.FollowUpsDue++
		}
	}
	return stats
}
