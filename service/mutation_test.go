package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/advisorhub/agentcrm/models"
	"github.com/advisorhub/agentcrm/utils"
)

func TestUpdateProfileFields(t *testing.T) {
	original := bookCustomer(1, "Rohan Sharma", "9876543210", "Mumbai", "Andheri", 2700)

	updated, err := UpdateProfileFields(original, models.UpdateProfileRequest{
		Name:       "Rohan S. Sharma",
		Contact:    "9876500000",
		Email:      "rohan@example.com",
		City:       "Pune",
		Area:       "Kothrud",
		Occupation: "Engineer",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Name != "Rohan S. Sharma" || updated.Contact != "9876500000" {
		t.Fatalf("scalar fields not applied: %+v", updated)
	}
	if updated.City != "Pune" || updated.Area != "Kothrud" {
		t.Fatalf("location not applied: %+v", updated)
	}
	if updated.ID != 1 {
		t.Fatalf("id must be preserved, got %d", updated.ID)
	}

	// The input record must be untouched.
	if original.Name != "Rohan Sharma" || original.City != "Mumbai" {
		t.Fatalf("original customer was mutated: %+v", original)
	}
}

func TestUpdateProfileFieldsRejectsBlankNameOrContact(t *testing.T) {
	original := bookCustomer(1, "Rohan Sharma", "9876543210", "Mumbai", "Andheri", 0)

	for _, patch := range []models.UpdateProfileRequest{
		{Name: "   ", Contact: "9876543210"},
		{Name: "Rohan Sharma", Contact: ""},
	} {
		_, err := UpdateProfileFields(original, patch)
		if err == nil {
			t.Fatalf("expected validation error for %+v", patch)
		}
		var apiErr *utils.ApiError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *utils.ApiError, got %T", err)
		}
		if apiErr.StatusCode != 400 || apiErr.ErrorCode != "VALIDATION_ERROR" {
			t.Fatalf("unexpected error shape: %+v", apiErr)
		}
	}
}

func TestReplaceVehiclesPromotesOutOfScopeMotor(t *testing.T) {
	c := models.Customer{
		ID: 1,
		Policies: models.Policies{
			Motor: models.PolicyDetails[models.NoPolicy]{
				Status: models.PolicyStatusOutOfScope,
				Reason: "No vehicle details.",
			},
		},
	}

	out := ReplaceVehicles(c, []models.ActiveVehiclePolicy{
		{MMV: "Maruti Swift VXI", RegNo: "MH01AB1234"},
		{MMV: "Honda Activa 6G", RegNo: "MH01CD5678"},
	})

	if out.VehicleCount != 2 {
		t.Fatalf("expected vehicleCount 2, got %d", out.VehicleCount)
	}
	if out.Policies.Motor.Status != models.PolicyStatusOpportunity {
		t.Fatalf("expected promotion to Opportunity, got %s", out.Policies.Motor.Status)
	}
	if out.Policies.Motor.Reason != "New vehicle added." {
		t.Fatalf("unexpected reason %q", out.Policies.Motor.Reason)
	}
	for _, v := range out.Policies.Motor.Vehicles {
		if !strings.HasPrefix(v.ID, "v-") {
			t.Fatalf("vehicle id not assigned: %+v", v)
		}
	}
}

func TestReplaceVehiclesKeepsOtherStatuses(t *testing.T) {
	c := models.Customer{
		Policies: models.Policies{
			Motor: models.PolicyDetails[models.NoPolicy]{
				Status:   models.PolicyStatusActive,
				Vehicles: []models.ActiveVehiclePolicy{{ID: "V1", RegNo: "MH01AB1234"}},
			},
		},
		VehicleCount: 1,
	}

	out := ReplaceVehicles(c, []models.ActiveVehiclePolicy{
		{ID: "V1", RegNo: "MH01AB1234"},
		{MMV: "Tata Nexon XZ", RegNo: "MH02EF9012"},
	})

	if out.Policies.Motor.Status != models.PolicyStatusActive {
		t.Fatalf("active motor slot must not change status, got %s", out.Policies.Motor.Status)
	}
	if out.VehicleCount != 2 {
		t.Fatalf("expected vehicleCount 2, got %d", out.VehicleCount)
	}
	if out.Policies.Motor.Vehicles[0].ID != "V1" {
		t.Fatal("existing vehicle id must be preserved")
	}
}

func TestReplaceVehiclesEmptyListStaysOutOfScope(t *testing.T) {
	c := models.Customer{
		Policies: models.Policies{
			Motor: models.PolicyDetails[models.NoPolicy]{Status: models.PolicyStatusOutOfScope},
		},
	}

	out := ReplaceVehicles(c, nil)
	if out.Policies.Motor.Status != models.PolicyStatusOutOfScope {
		t.Fatalf("empty list must not promote, got %s", out.Policies.Motor.Status)
	}
	if out.VehicleCount != 0 {
		t.Fatalf("expected vehicleCount 0, got %d", out.VehicleCount)
	}
}

func TestCreateCustomerAssignsNextID(t *testing.T) {
	existing := []models.Customer{{ID: 3}, {ID: 7}, {ID: 5}}

	created, err := CreateCustomer(existing, models.CreateCustomerRequest{
		FullName:     "Sneha Iyer",
		MobileNumber: "9988776655",
	}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 8 {
		t.Fatalf("expected id 8, got %d", created.ID)
	}
}

func TestCreateCustomerOnEmptyBook(t *testing.T) {
	created, err := CreateCustomer(nil, models.CreateCustomerRequest{
		FullName:     "Sneha Iyer",
		MobileNumber: "9988776655",
	}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected id 1, got %d", created.ID)
	}
}

func TestCreateCustomerValidation(t *testing.T) {
	for _, input := range []models.CreateCustomerRequest{
		{FullName: "  ", MobileNumber: "9988776655"},
		{FullName: "Sneha Iyer", MobileNumber: ""},
	} {
		_, err := CreateCustomer(nil, input, testNow)
		var apiErr *utils.ApiError
		if !errors.As(err, &apiErr) || apiErr.ErrorCode != "VALIDATION_ERROR" {
			t.Fatalf("expected validation error for %+v, got %v", input, err)
		}
	}
}

func TestCreateCustomerInitialPolicySlots(t *testing.T) {
	created, err := CreateCustomer(nil, models.CreateCustomerRequest{
		FullName:       "Sneha Iyer",
		MobileNumber:   "9988776655",
		PolicyInterest: models.PolicyInterest{Health: true},
		Vehicles:       []models.VehicleInput{{MMV: "Maruti Swift VXI", RegNo: "MH01AB1234"}},
	}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Policies.Health.Status != models.PolicyStatusOpportunity {
		t.Fatalf("health should be an opportunity, got %s", created.Policies.Health.Status)
	}
	if created.Policies.Health.Reason != "New customer interest." {
		t.Fatalf("unexpected health reason %q", created.Policies.Health.Reason)
	}
	if created.Policies.Life.Status != models.PolicyStatusOutOfScope {
		t.Fatalf("life should be out of scope, got %s", created.Policies.Life.Status)
	}
	if created.Policies.Life.Reason != "Not specified at creation." {
		t.Fatalf("unexpected life reason %q", created.Policies.Life.Reason)
	}
	if created.Policies.Motor.Status != models.PolicyStatusOpportunity {
		t.Fatalf("motor with vehicles should be an opportunity, got %s", created.Policies.Motor.Status)
	}
	if created.Policies.Motor.Reason != "Vehicle details provided." {
		t.Fatalf("unexpected motor reason %q", created.Policies.Motor.Reason)
	}
	if created.VehicleCount != 1 || len(created.Policies.Motor.Vehicles) != 1 {
		t.Fatalf("vehicle not captured: count=%d vehicles=%v", created.VehicleCount, created.Policies.Motor.Vehicles)
	}
}

func TestCreateCustomerDefaultsAndActivityLog(t *testing.T) {
	created, err := CreateCustomer(nil, models.CreateCustomerRequest{
		FullName:     "Sneha Iyer",
		MobileNumber: "9988776655",
		FamilyMembers: []models.FamilyMemberInput{
			{Name: "Arjun Iyer", Relation: "Son", DOB: "2015-06-10"},
		},
	}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.City != "Unknown" || created.Area != "Unknown" {
		t.Fatalf("expected Unknown city/area, got %q/%q", created.City, created.Area)
	}
	if created.LeadSource != "Manual Entry" {
		t.Fatalf("expected Manual Entry lead source, got %q", created.LeadSource)
	}

	if len(created.ActivityLog) != 1 {
		t.Fatalf("expected one activity log entry, got %d", len(created.ActivityLog))
	}
	entry := created.ActivityLog[0]
	if entry.Activity != "Customer Created" || entry.Date != testNow.Format(models.DateLayout) {
		t.Fatalf("unexpected log entry: %+v", entry)
	}

	if len(created.FamilyMembers) != 1 {
		t.Fatalf("expected one family member, got %d", len(created.FamilyMembers))
	}
	fm := created.FamilyMembers[0]
	if fm.Relationship != "Son" || fm.Age != 9 {
		t.Fatalf("unexpected family member: %+v", fm)
	}
}
