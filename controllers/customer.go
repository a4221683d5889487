package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"shopconnect-backend/models"
	"shopconnect-backend/services"
	"shopconnect-backend/utils"

	"github.com/gin-gonic/gin"
)

// CustomerController exposes the customer registry over HTTP
type CustomerController struct {
	Registry *services.Registry
}

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name        string     `json:"name" binding:"required"`
	Phone       string     `json:"phone" binding:"required"`
	Email       string     `json:"email"`
	Address     string     `json:"address"`
	Birthday    *time.Time `json:"birthday"`
	Anniversary *time.Time `json:"anniversary"`
	Category    string     `json:"category"`
	Tags        string     `json:"tags"`
	Notes       string     `json:"notes"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer
type UpdateCustomerInput struct {
	Name        *string    `json:"name"`
	Email       *string    `json:"email"`
	Address     *string    `json:"address"`
	Birthday    *time.Time `json:"birthday"`
	Anniversary *time.Time `json:"anniversary"`
	Category    *string    `json:"category"`
	Tags        *string    `json:"tags"`
	Notes       *string    `json:"notes"`
	IsActive    *bool      `json:"isActive"`
}

func registryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidPhone):
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number! Please enter a valid Indian mobile number.")
	case errors.Is(err, services.ErrDuplicate):
		utils.RespondWithError(c, http.StatusConflict, "Customer with this phone number already exists")
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}

// CreateCustomer registers a new customer
func (ctl *CustomerController) CreateCustomer(c *gin.Context) {
	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Category != "" && !models.IsValidCategory(input.Category) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category")
		return
	}

	customer, err := ctl.Registry.Add(services.AddCustomerInput{
		Name:        input.Name,
		Phone:       input.Phone,
		Email:       input.Email,
		Address:     input.Address,
		Birthday:    input.Birthday,
		Anniversary: input.Anniversary,
		Category:    input.Category,
		Tags:        input.Tags,
		Notes:       input.Notes,
	})
	if err != nil {
		registryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers lists customers, optionally filtered by search query or category
func (ctl *CustomerController) GetCustomers(c *gin.Context) {
	var (
		customers []models.Customer
		err       error
	)

	switch {
	case c.Query("search") != "":
		customers, err = ctl.Registry.Search(c.Query("search"))
	case c.Query("category") != "":
		customers, err = ctl.Registry.ByCategory(c.Query("category"))
	default:
		customers, err = ctl.Registry.All()
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomer retrieves one customer by phone (any raw representation)
func (ctl *CustomerController) GetCustomer(c *gin.Context) {
	customer, err := ctl.Registry.ByPhone(c.Param("phone"))
	if err != nil {
		registryError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer applies a partial update; the phone identity never changes
func (ctl *CustomerController) UpdateCustomer(c *gin.Context) {
	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Category != nil && !models.IsValidCategory(*input.Category) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category")
		return
	}

	customer, err := ctl.Registry.Update(c.Param("phone"), services.CustomerChanges{
		Name:        input.Name,
		Email:       input.Email,
		Address:     input.Address,
		Birthday:    input.Birthday,
		Anniversary: input.Anniversary,
		Category:    input.Category,
		Tags:        input.Tags,
		Notes:       input.Notes,
		IsActive:    input.IsActive,
	})
	if err != nil {
		registryError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer deactivates a customer; records are never hard-deleted
func (ctl *CustomerController) DeleteCustomer(c *gin.Context) {
	if err := ctl.Registry.Deactivate(c.Param("phone")); err != nil {
		registryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deactivated successfully"})
}

// GetRecent lists customers who purchased within the last N days (default 30)
func (ctl *CustomerController) GetRecent(c *gin.Context) {
	days := intQuery(c, "days", 30)
	customers, err := ctl.Registry.Recent(days)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetInactive lists customers whose last purchase is older than N days
// (default 60), including those who never purchased
func (ctl *CustomerController) GetInactive(c *gin.Context) {
	days := intQuery(c, "days", 60)
	customers, err := ctl.Registry.Inactive(days)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetBirthdays lists customers whose birthday falls today
func (ctl *CustomerController) GetBirthdays(c *gin.Context) {
	customers, err := ctl.Registry.BirthdaysOn(time.Now())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetAnniversaries lists customers whose anniversary falls today
func (ctl *CustomerController) GetAnniversaries(c *gin.Context) {
	customers, err := ctl.Registry.AnniversariesOn(time.Now())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetTopSpenders lists the top N customers by lifetime spend (default 10)
func (ctl *CustomerController) GetTopSpenders(c *gin.Context) {
	n := intQuery(c, "n", 10)
	customers, err := ctl.Registry.TopSpenders(n)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetStats returns registry-wide aggregates
func (ctl *CustomerController) GetStats(c *gin.Context) {
	stats, err := ctl.Registry.Stats()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ExportCustomers streams the registry as a CSV attachment
func (ctl *CustomerController) ExportCustomers(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=customers.csv")
	if _, err := ctl.Registry.ExportCSV(c.Writer); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to export customers")
	}
}

// ImportCustomers adds customers from an uploaded CSV file
func (ctl *CustomerController) ImportCustomers(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "CSV file required")
		return
	}
	defer file.Close()

	added, skipped, err := ctl.Registry.ImportCSV(file)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Import failed: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"added": added, "skipped": skipped})
}

func intQuery(c *gin.Context, key string, fallback int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			return v
		}
	}
	return fallback
}
