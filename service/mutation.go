package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/advisorhub/agentcrm/models"
	"github.com/advisorhub/agentcrm/utils"
)

// Mutations never edit a record in place: each returns a fresh Customer for
// the caller to commit through the store.

// UpdateProfileFields replaces the editable scalar fields of a customer.
// Name and contact must be non-empty after trimming.
func UpdateProfileFields(c models.Customer, patch models.UpdateProfileRequest) (models.Customer, error) {
	if strings.TrimSpace(patch.Name) == "" || strings.TrimSpace(patch.Contact) == "" {
		return models.Customer{}, utils.CreateValidationError("customer name and contact cannot be empty")
	}

	out := c.Clone()
	out.Name = patch.Name
	out.Contact = patch.Contact
	out.AlternateContact = patch.AlternateContact
	out.Email = patch.Email
	out.City = patch.City
	out.Area = patch.Area
	out.FullAddress = patch.FullAddress
	out.DOB = patch.DOB
	out.Occupation = patch.Occupation
	out.LeadSource = patch.LeadSource
	return out, nil
}

// ReplaceVehicles swaps the motor vehicle list wholesale and keeps
// vehicleCount in sync with it. Adding the first vehicle to an out-of-scope
// motor slot promotes it to an opportunity; no other status transition is
// applied here.
func ReplaceVehicles(c models.Customer, vehicles []models.ActiveVehiclePolicy) models.Customer {
	out := c.Clone()

	vs := make([]models.ActiveVehiclePolicy, 0, len(vehicles))
	for _, v := range vehicles {
		if v.ID == "" {
			v.ID = "v-" + uuid.NewString()
		}
		vs = append(vs, v)
	}

	out.VehicleCount = len(vs)
	out.Policies.Motor.Vehicles = vs
	if len(vs) > 0 && c.Policies.Motor.Status == models.PolicyStatusOutOfScope {
		out.Policies.Motor.Status = models.PolicyStatusOpportunity
		out.Policies.Motor.Reason = "New vehicle added."
	}
	return out
}

// CreateCustomer builds a new customer from the creation form. The id is one
// past the highest existing id; each policy slot starts as an opportunity
// when interest was flagged (for motor: when vehicles were supplied), else
// out of scope. The caller prepends the result to the book.
func CreateCustomer(existing []models.Customer, input models.CreateCustomerRequest, now time.Time) (models.Customer, error) {
	if strings.TrimSpace(input.FullName) == "" || strings.TrimSpace(input.MobileNumber) == "" {
		return models.Customer{}, utils.CreateValidationError("full name and mobile number are required")
	}

	maxID := 0
	for _, c := range existing {
		if c.ID > maxID {
			maxID = c.ID
		}
	}

	familyMembers := make([]models.FamilyMember, 0, len(input.FamilyMembers))
	for i, fm := range input.FamilyMembers {
		familyMembers = append(familyMembers, models.FamilyMember{
			ID:           int(now.UnixMilli()) + i,
			Name:         fm.Name,
			Relationship: fm.Relation,
			DOB:          fm.DOB,
			Age:          ageFromDOB(fm.DOB, now),
		})
	}

	vehicles := make([]models.ActiveVehiclePolicy, 0, len(input.Vehicles))
	for _, v := range input.Vehicles {
		vehicles = append(vehicles, models.ActiveVehiclePolicy{
			ID:    "v-" + uuid.NewString(),
			RegNo: v.RegNo,
			MMV:   v.MMV,
		})
	}

	leadSource := input.Reference
	if leadSource == "" {
		leadSource = "Manual Entry"
	}

	customer := models.Customer{
		ID:               maxID + 1,
		Name:             input.FullName,
		Contact:          input.MobileNumber,
		AlternateContact: input.AlternateNumber,
		City:             "Unknown",
		Area:             "Unknown",
		DOB:              input.DOB,
		LeadSource:       leadSource,
		VehicleCount:     len(vehicles),
		FamilyMembers:    familyMembers,
		ActivityLog: []models.ActivityLogItem{
			{
				ID:       1,
				Date:     now.Format(models.DateLayout),
				Product:  "General",
				Activity: "Customer Created",
				Remarks:  "Manually added to CRM.",
			},
		},
		Policies: models.Policies{
			Health: initialSlot[models.ActiveHealthPolicy](input.PolicyInterest.Health),
			Life:   initialSlot[models.ActiveLifePolicy](input.PolicyInterest.Life),
			Motor:  initialMotorSlot(vehicles),
		},
	}

	return customer, nil
}

// initialSlot is the creation-time state of the health and life slots.
func initialSlot[T any](interested bool) models.PolicyDetails[T] {
	if interested {
		return models.PolicyDetails[T]{
			Status: models.PolicyStatusOpportunity,
			Reason: "New customer interest.",
		}
	}
	return models.PolicyDetails[T]{
		Status: models.PolicyStatusOutOfScope,
		Reason: "Not specified at creation.",
	}
}

// initialMotorSlot keys the motor slot off whether vehicles were supplied.
func initialMotorSlot(vehicles []models.ActiveVehiclePolicy) models.PolicyDetails[models.NoPolicy] {
	if len(vehicles) > 0 {
		return models.PolicyDetails[models.NoPolicy]{
			Status:   models.PolicyStatusOpportunity,
			Reason:   "Vehicle details provided.",
			Vehicles: vehicles,
		}
	}
	return models.PolicyDetails[models.NoPolicy]{
		Status: models.PolicyStatusOutOfScope,
		Reason: "No vehicle details.",
	}
}

// ageFromDOB derives the age in calendar years, 0 when the date is absent or
// malformed. Month and day are ignored, as the capture form does.
func ageFromDOB(dob string, now time.Time) int {
	if dob == "" {
		return 0
	}
	d, err := time.Parse(models.DateLayout, dob)
	if err != nil {
		return 0
	}
	return now.Year() - d.Year()
}
