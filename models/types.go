package models

// DateLayout is the calendar-date format used across the customer book
// (renewal dates, expiry dates, follow-ups, birthdays).
const DateLayout = "2006-01-02"

// PolicyStatus describes the sales state of one line of business.
type PolicyStatus string

const (
	PolicyStatusActive      PolicyStatus = "Active"
	PolicyStatusOpportunity PolicyStatus = "Opportunity"
	PolicyStatusDeclined    PolicyStatus = "Declined"
	PolicyStatusOutOfScope  PolicyStatus = "OutOfScope"
)

// LeadDetails carries the advisor's suggestion for an open opportunity.
type LeadDetails struct {
	SuggestedInsurer    string  `json:"suggestedInsurer"`
	SuggestedPlan       string  `json:"suggestedPlan"`
	SuggestedSumInsured float64 `json:"suggestedSumInsured"`
}

// ActiveHealthPolicy is an in-force health policy record.
type ActiveHealthPolicy struct {
	ID          string  `json:"id"`
	Insurer     string  `json:"insurer"`
	Plan        string  `json:"plan"`
	SumInsured  float64 `json:"sumInsured"`
	Premium     float64 `json:"premium"`
	RenewalDate string  `json:"renewalDate"`
}

// ActiveLifePolicy is an in-force life policy record.
type ActiveLifePolicy struct {
	ID          string  `json:"id"`
	Insurer     string  `json:"insurer"`
	Plan        string  `json:"plan"`
	PlanType    string  `json:"planType"`
	SumInsured  float64 `json:"sumInsured"`
	InsuredName string  `json:"insuredName"`
	RenewalDate string  `json:"renewalDate"`
}

// ActiveVehiclePolicy is an insured (or to-be-insured) vehicle on the motor line.
type ActiveVehiclePolicy struct {
	ID         string  `json:"id"`
	RegNo      string  `json:"regNo"`
	MMV        string  `json:"mmv"` // make/model/variant
	Premium    float64 `json:"premium"`
	IDV        float64 `json:"idv"`
	ExpiryDate string  `json:"expiryDate"`
	Insurer    string  `json:"insurer"`
}

// NoPolicy marks a line of business that never carries named policy records;
// the motor line tracks vehicles instead.
type NoPolicy struct{}

// PolicyDetails is one line-of-business slot. Which fields are populated
// depends on Status: Active carries Policies/Vehicles, Opportunity carries
// the tentative premium, payout and lead suggestion, Declined carries the
// decline reason, OutOfScope carries a reason only.
type PolicyDetails[T any] struct {
	Status           PolicyStatus          `json:"status"`
	Reason           string                `json:"reason,omitempty"`
	TentativePremium float64               `json:"tentativePremium,omitempty"`
	PotentialPayout  float64               `json:"potentialPayout,omitempty"`
	FollowUpDate     string                `json:"followUpDate,omitempty"`
	IsDeclined       bool                  `json:"isDeclined,omitempty"`
	DeclineReason    string                `json:"declineReason,omitempty"`
	LeadDetails      *LeadDetails          `json:"leadDetails,omitempty"`
	CJLink           string                `json:"cjLink,omitempty"`
	Policies         []T                   `json:"policies,omitempty"`
	Vehicles         []ActiveVehiclePolicy `json:"vehicles,omitempty"`
}

// OpportunityPayout returns the slot's potential payout when it is an open
// (not declined) opportunity, else 0.
func (p PolicyDetails[T]) OpportunityPayout() float64 {
	if p.Status == PolicyStatusOpportunity && !p.IsDeclined {
		return p.PotentialPayout
	}
	return 0
}

// Policies groups the three line-of-business slots of a customer.
type Policies struct {
	Health PolicyDetails[ActiveHealthPolicy] `json:"health"`
	Life   PolicyDetails[ActiveLifePolicy]   `json:"life"`
	Motor  PolicyDetails[NoPolicy]           `json:"motor"`
}

// FamilyMember is a dependent on the customer record. Age is stored as
// captured and is not recomputed from the date of birth.
type FamilyMember struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	DOB          string `json:"dob"`
	Age          int    `json:"age"`
}

// ActivityLogItem is one append-only interaction record.
type ActivityLogItem struct {
	ID       int    `json:"id"`
	Date     string `json:"date"`
	Product  string `json:"product"`
	Activity string `json:"activity"`
	Remarks  string `json:"remarks"`
}

// Customer is one record of the advisor's book.
type Customer struct {
	ID               int               `json:"id"`
	Name             string            `json:"name"`
	Contact          string            `json:"contact"`
	AlternateContact string            `json:"alternateContact,omitempty"`
	Email            string            `json:"email,omitempty"`
	City             string            `json:"city"`
	Area             string            `json:"area"`
	FullAddress      string            `json:"fullAddress,omitempty"`
	DOB              string            `json:"dob,omitempty"`
	Occupation       string            `json:"occupation,omitempty"`
	LeadSource       string            `json:"leadSource,omitempty"`
	VehicleCount     int               `json:"vehicleCount"`
	FamilyMembers    []FamilyMember    `json:"familyMembers"`
	ActivityLog      []ActivityLogItem `json:"activityLog"`
	Policies         Policies          `json:"policies"`
}

// Clone returns a deep copy so callers can edit freely and commit the whole
// record back through the store.
func (c Customer) Clone() Customer {
	out := c
	out.FamilyMembers = append([]FamilyMember(nil), c.FamilyMembers...)
	out.ActivityLog = append([]ActivityLogItem(nil), c.ActivityLog...)
	out.Policies.Health = clonePolicyDetails(c.Policies.Health)
	out.Policies.Life = clonePolicyDetails(c.Policies.Life)
	out.Policies.Motor = clonePolicyDetails(c.Policies.Motor)
	return out
}

func clonePolicyDetails[T any](p PolicyDetails[T]) PolicyDetails[T] {
	out := p
	out.Policies = append([]T(nil), p.Policies...)
	out.Vehicles = append([]ActiveVehiclePolicy(nil), p.Vehicles...)
	if p.LeadDetails != nil {
		ld := *p.LeadDetails
		out.LeadDetails = &ld
	}
	return out
}

// Agent is the advisor profile shown on the digital visiting card.
type Agent struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoUrl"`
}
