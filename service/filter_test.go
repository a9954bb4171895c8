package service

import (
	"reflect"
	"testing"

	"github.com/advisorhub/agentcrm/models"
)

// bookCustomer builds a minimal customer with a single health opportunity.
func bookCustomer(id int, name, contact, city, area string, payout float64) models.Customer {
	status := models.PolicyStatusOutOfScope
	if payout > 0 {
		status = models.PolicyStatusOpportunity
	}
	return models.Customer{
		ID:      id,
		Name:    name,
		Contact: contact,
		City:    city,
		Area:    area,
		Policies: models.Policies{
			Health: models.PolicyDetails[models.ActiveHealthPolicy]{
				Status:          status,
				PotentialPayout: payout,
			},
		},
	}
}

func testBook() []models.Customer {
	return []models.Customer{
		bookCustomer(1, "Rohan Sharma", "9876543210", "Mumbai", "Andheri", 2700),
		bookCustomer(2, "Priya Verma", "9876543211", "Mumbai", "Bandra", 0),
		bookCustomer(3, "Amit Patel", "9123456789", "Pune", "Kothrud", 5000),
		bookCustomer(4, "Rohit Mehta", "9123456780", "Pune", "Kothrud", 2700),
	}
}

func TestFilterCustomersDefaultReturnsWholeBook(t *testing.T) {
	book := testBook()
	got := FilterCustomers(book, Filter{Category: CategoryAll}, testNow)

	if !reflect.DeepEqual(got, book) {
		t.Fatalf("expected the whole book in order, got %v", ids(got))
	}
}

func TestFilterCustomersSearchMatchesNameAndContact(t *testing.T) {
	book := testBook()

	cases := []struct {
		search string
		want   []int
	}{
		{"roh", []int{1, 4}},
		{"ROHAN", []int{1}},
		{"912345678", []int{3, 4}},
		{"nobody", nil},
	}

	for _, tc := range cases {
		got := FilterCustomers(book, Filter{Search: tc.search, Category: CategoryAll}, testNow)
		if !reflect.DeepEqual(ids(got), tc.want) {
			t.Fatalf("search %q: expected %v, got %v", tc.search, tc.want, ids(got))
		}
	}
}

func TestFilterCustomersCityAndAreaCascade(t *testing.T) {
	book := testBook()

	cases := []struct {
		city, area string
		want       []int
	}{
		{"all", "all", []int{1, 2, 3, 4}},
		{"Mumbai", "all", []int{1, 2}},
		{"Mumbai", "Bandra", []int{2}},
		{"Pune", "Kothrud", []int{3, 4}},
		{"Delhi", "all", nil},
	}

	for _, tc := range cases {
		got := FilterCustomers(book, Filter{Category: CategoryAll, City: tc.city, Area: tc.area}, testNow)
		if !reflect.DeepEqual(ids(got), tc.want) {
			t.Fatalf("city %q area %q: expected %v, got %v", tc.city, tc.area, tc.want, ids(got))
		}
	}
}

func TestFilterCustomersOpportunitiesSortDescending(t *testing.T) {
	book := testBook()
	got := FilterCustomers(book, Filter{Category: CategoryOpportunities}, testNow)

	// 5000 first, then the two 2700s in insertion order (stable sort), the
	// zero-payout customer dropped.
	want := []int{3, 1, 4}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestFilterCustomersNonOpportunityOrderPreserved(t *testing.T) {
	book := []models.Customer{
		bookCustomer(1, "A", "1", "Mumbai", "Andheri", 100),
		bookCustomer(2, "B", "2", "Mumbai", "Andheri", 900),
		bookCustomer(3, "C", "3", "Mumbai", "Andheri", 500),
	}

	got := FilterCustomers(book, Filter{Category: CategoryAll}, testNow)
	if !reflect.DeepEqual(ids(got), []int{1, 2, 3}) {
		t.Fatalf("ALL must preserve insertion order, got %v", ids(got))
	}
}

func TestFilterCustomersRenewalsAndFollowUps(t *testing.T) {
	dueRenewal := models.Customer{
		ID: 1,
		Policies: models.Policies{
			Health: models.PolicyDetails[models.ActiveHealthPolicy]{
				Status:   models.PolicyStatusActive,
				Policies: []models.ActiveHealthPolicy{{ID: "H1", RenewalDate: dateFrom(testNow, 10)}},
			},
		},
	}
	dueFollowUp := models.Customer{
		ID: 2,
		Policies: models.Policies{
			Life: models.PolicyDetails[models.ActiveLifePolicy]{
				Status:       models.PolicyStatusOpportunity,
				FollowUpDate: dateFrom(testNow, 3),
			},
		},
	}
	book := []models.Customer{dueRenewal, dueFollowUp, {ID: 3}}

	got := FilterCustomers(book, Filter{Category: CategoryRenewals}, testNow)
	if !reflect.DeepEqual(ids(got), []int{1}) {
		t.Fatalf("RENEWALS: expected [1], got %v", ids(got))
	}

	got = FilterCustomers(book, Filter{Category: CategoryFollowUps}, testNow)
	if !reflect.DeepEqual(ids(got), []int{2}) {
		t.Fatalf("FOLLOWUPS: expected [2], got %v", ids(got))
	}
}

func TestFilterCustomersIsIdempotent(t *testing.T) {
	book := testBook()
	f := Filter{Category: CategoryOpportunities, City: "all", Area: "all"}

	once := FilterCustomers(book, f, testNow)
	twice := FilterCustomers(once, f, testNow)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("filtering an already filtered list changed it: %v vs %v", ids(once), ids(twice))
	}
}

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"", CategoryAll, true},
		{"ALL", CategoryAll, true},
		{"opportunities", CategoryOpportunities, true},
		{"Renewals", CategoryRenewals, true},
		{"FOLLOWUPS", CategoryFollowUps, true},
		{"bogus", "", false},
	}

	for _, tc := range cases {
		got, err := ParseCategory(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("ParseCategory(%q) = %v, %v; expected %v", tc.in, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Fatalf("ParseCategory(%q) should have failed", tc.in)
		}
	}
}

func TestAggregatePayoutMatchesPerCustomerTotals(t *testing.T) {
	book := []models.Customer{
		{
			Policies: models.Policies{
				Health: models.PolicyDetails[models.ActiveHealthPolicy]{
					Status:          models.PolicyStatusOpportunity,
					PotentialPayout: 1000,
				},
				Motor: models.PolicyDetails[models.NoPolicy]{
					Status:          models.PolicyStatusOpportunity,
					PotentialPayout: 300,
				},
			},
		},
		{
			Policies: models.Policies{
				Life: models.PolicyDetails[models.ActiveLifePolicy]{
					Status:          models.PolicyStatusOpportunity,
					PotentialPayout: 450,
				},
			},
		},
	}

	b := AggregatePayout(book)
	if b.Health != 1000 || b.Life != 450 || b.Motor != 300 {
		t.Fatalf("unexpected breakdown: %+v", b)
	}

	var sum float64
	for _, c := range book {
		sum += TotalPotentialPayout(c)
	}
	if b.Total != sum {
		t.Fatalf("grand total %v does not match per-customer sum %v", b.Total, sum)
	}
}

func TestCityOptions(t *testing.T) {
	got := CityOptions(testBook())
	want := []string{"all", "Mumbai", "Pune"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAreaOptions(t *testing.T) {
	book := testBook()

	if got := AreaOptions(book, "all"); !reflect.DeepEqual(got, []string{"all"}) {
		t.Fatalf(`city "all": expected ["all"], got %v`, got)
	}
	if got := AreaOptions(book, ""); !reflect.DeepEqual(got, []string{"all"}) {
		t.Fatalf(`empty city: expected ["all"], got %v`, got)
	}

	got := AreaOptions(book, "Mumbai")
	want := []string{"all", "Andheri", "Bandra"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Mumbai: expected %v, got %v", want, got)
	}
}

func ids(customers []models.Customer) []int {
	if len(customers) == 0 {
		return nil
	}
	out := make([]int, len(customers))
	for i, c := range customers {
		out[i] = c.ID
	}
	return out
}
