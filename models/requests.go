package models

// Request and response structures for the HTTP surface.
type (
	// LoginRequest accepts either the email/password or the mobile/OTP tab
	// of the login screen. Credentials are not verified yet; see
	// controllers.Login.
	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Mobile   string `json:"mobile"`
		OTP      string `json:"otp"`
	}

	// LoginResponse carries the session token and the advisor profile.
	LoginResponse struct {
		Token string `json:"token"`
		Agent Agent  `json:"agent"`
	}

	// PolicyInterest mirrors the product-interest checkboxes of the create
	// customer form.
	PolicyInterest struct {
		Health bool `json:"health"`
		Life   bool `json:"life"`
		Motor  bool `json:"motor"`
	}

	// FamilyMemberInput is a dependent captured during customer creation.
	FamilyMemberInput struct {
		Name     string `json:"name"`
		Relation string `json:"relation"`
		DOB      string `json:"dob"`
	}

	// VehicleInput is a vehicle captured during customer creation.
	VehicleInput struct {
		MMV   string `json:"mmv"`
		RegNo string `json:"regNo"`
	}

	// CreateCustomerRequest is the create customer form payload.
	CreateCustomerRequest struct {
		FullName        string              `json:"fullName"`
		DOB             string              `json:"dob"`
		Gender          string              `json:"gender"`
		MaritalStatus   string              `json:"maritalStatus"`
		MobileNumber    string              `json:"mobileNumber"`
		AlternateNumber string              `json:"alternateNumber"`
		Reference       string              `json:"reference"`
		PolicyInterest  PolicyInterest      `json:"policyInterest"`
		FamilyMembers   []FamilyMemberInput `json:"familyMembers"`
		Vehicles        []VehicleInput      `json:"vehicles"`
	}

	// UpdateProfileRequest replaces the editable scalar fields of a customer.
	// Name and contact must remain non-empty.
	UpdateProfileRequest struct {
		Name             string `json:"name"`
		Contact          string `json:"contact"`
		AlternateContact string `json:"alternateContact"`
		Email            string `json:"email"`
		City             string `json:"city"`
		Area             string `json:"area"`
		FullAddress      string `json:"fullAddress"`
		DOB              string `json:"dob"`
		Occupation       string `json:"occupation"`
		LeadSource       string `json:"leadSource"`
	}

	// ReplaceVehiclesRequest swaps the customer's motor vehicle list.
	ReplaceVehiclesRequest struct {
		Vehicles []ActiveVehiclePolicy `json:"vehicles"`
	}

	// UpdateAgentRequest patches the advisor profile; empty fields are left
	// unchanged.
	UpdateAgentRequest struct {
		Name     string `json:"name"`
		Title    string `json:"title"`
		Phone    string `json:"phone"`
		Email    string `json:"email"`
		PhotoURL string `json:"photoUrl"`
	}

	// InviteContact is one phone-book entry selected for an invite.
	InviteContact struct {
		Name  string `json:"name" binding:"required"`
		Phone string `json:"phone" binding:"required"`
	}

	// InviteRequest asks for invite messages for the selected contacts.
	InviteRequest struct {
		Contacts []InviteContact `json:"contacts" binding:"required,min=1"`
	}
)

// CustomerWithMetrics annotates a customer with the derived dashboard values.
type CustomerWithMetrics struct {
	Customer
	TotalPotentialPayout float64 `json:"totalPotentialPayout"`
	RenewalDue           bool    `json:"renewalDue"`
	FollowUpDue          bool    `json:"followUpDue"`
}

// PayoutBreakdown is the per-line payout aggregation over a customer set.
type PayoutBreakdown struct {
	Health float64 `json:"health"`
	Life   float64 `json:"life"`
	Motor  float64 `json:"motor"`
	Total  float64 `json:"total"`
}

// DashboardStats are the counters behind the dashboard cards.
type DashboardStats struct {
	TotalCustomers int `json:"totalCustomers"`
	Opportunities  int `json:"opportunities"`
	RenewalsDue    int `json:"renewalsDue"`
	FollowUpsDue   int `json:"followUpsDue"`
}

// FilterOptions lists the selectable cities and, for a concrete city, areas.
type FilterOptions struct {
	Cities []string `json:"cities"`
	Areas  []string `json:"areas"`
}

// ShareMessage is a prepared outbound message; the caller opens the URL,
// nothing is delivered server-side.
type ShareMessage struct {
	Name        string `json:"name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Link        string `json:"link"`
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsappUrl"`
}
