package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/advisorhub/agentcrm/models"
	"github.com/advisorhub/agentcrm/repository"
	"github.com/advisorhub/agentcrm/service"
	"github.com/advisorhub/agentcrm/utils"
)

// GetCustomerList returns the filtered customer book with derived metrics
// and the payout aggregation over the filtered set.
func GetCustomerList(c *gin.Context) {
	category, err := service.ParseCategory(c.Query("category"))
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError(err.Error()))
		return
	}

	filter := service.Filter{
		Search:   c.Query("search"),
		Category: category,
		City:     c.DefaultQuery("city", service.AllOption),
		Area:     c.DefaultQuery("area", service.AllOption),
	}

	now := time.Now()
	customers := repository.Customers().List()
	filtered := service.FilterCustomers(customers, filter, now)

	utils.SuccessResponse(c, gin.H{
		"customers": service.Annotate(filtered, now),
		"count":     len(filtered),
		"payout":    service.AggregatePayout(filtered),
	}, "")
}

// GetFilterOptions returns the city choices and the area choices for the
// selected city.
func GetFilterOptions(c *gin.Context) {
	city := c.DefaultQuery("city", service.AllOption)
	customers := repository.Customers().List()

	utils.SuccessResponse(c, models.FilterOptions{
		Cities: service.CityOptions(customers),
		Areas:  service.AreaOptions(customers, city),
	}, "")
}

// CreateCustomer adds a new customer from the creation form; the record is
// prepended so it lists first.
func CreateCustomer(c *gin.Context) {
	var req models.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "invalid request payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	store := repository.Customers()
	customer, err := service.CreateCustomer(store.List(), req, time.Now())
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	store.Prepend(customer)

	utils.Logger.Info().
		Int("id", customer.ID).
		Str("name", customer.Name).
		Msg("customer created")

	utils.SuccessResponse(c, customer, "customer created", http.StatusCreated)
}

// GetCustomerDetail returns a single customer with derived metrics.
func GetCustomerDetail(c *gin.Context) {
	customer, ok := lookupCustomer(c)
	if !ok {
		return
	}

	now := time.Now()
	utils.SuccessResponse(c, models.CustomerWithMetrics{
		Customer:             customer,
		TotalPotentialPayout: service.TotalPotentialPayout(customer),
		RenewalDue:           service.IsRenewalDue(customer, now),
		FollowUpDue:          service.IsFollowUpDue(customer, now),
	}, "")
}

// UpdateCustomer replaces the editable profile fields of a customer. A
// validation failure leaves the stored record untouched.
func UpdateCustomer(c *gin.Context) {
	customer, ok := lookupCustomer(c)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "invalid request payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := service.UpdateProfileFields(customer, req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	repository.Customers().Replace(updated)
	utils.SuccessResponse(c, updated, "customer updated")
}

// ReplaceCustomerVehicles swaps the motor vehicle list of a customer.
func ReplaceCustomerVehicles(c *gin.Context) {
	customer, ok := lookupCustomer(c)
	if !ok {
		return
	}

	var req models.ReplaceVehiclesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "invalid request payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	updated := service.ReplaceVehicles(customer, req.Vehicles)
	repository.Customers().Replace(updated)

	utils.Logger.Info().
		Int("id", updated.ID).
		Int("vehicleCount", updated.VehicleCount).
		Str("motorStatus", string(updated.Policies.Motor.Status)).
		Msg("vehicles replaced")

	utils.SuccessResponse(c, updated, "vehicles updated")
}

// lookupCustomer resolves the :id path param; on failure it writes the error
// response and returns ok=false.
func lookupCustomer(c *gin.Context) (models.Customer, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid customer id"))
		return models.Customer{}, false
	}

	customer, found := repository.Customers().Get(id)
	if !found {
		utils.HandleError(c, utils.CreateNotFoundError("customer"))
		return models.Customer{}, false
	}
	return customer, true
}
