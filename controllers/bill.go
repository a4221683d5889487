// controllers/bill.go
package controllers

import (
	"net/http"
	"time"

	"shopconnect-backend/config"
	"shopconnect-backend/models"
	"shopconnect-backend/services"
	"shopconnect-backend/utils"

	"github.com/gin-gonic/gin"
)

// BillController records purchases and answers billing queries
type BillController struct {
	Registry   *services.Registry
	Composer   *services.Composer
	Dispatcher *services.Dispatcher
}

// RecordPurchaseInput defines the expected JSON structure for recording a purchase
type RecordPurchaseInput struct {
	Phone        string  `json:"phone" binding:"required"`
	Amount       float64 `json:"amount"`
	Items        string  `json:"items"`
	SendThankYou bool    `json:"sendThankYou"`
}

// RecordPurchase bumps the customer's aggregates, appends a bill and
// optionally sends a thank-you message
func (ctl *BillController) RecordPurchase(c *gin.Context) {
	var input RecordPurchaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidateAmount(input.Amount) {
		utils.RespondWithError(c, http.StatusBadRequest, "Amount must be a non-negative number")
		return
	}

	bill, err := ctl.Registry.RecordPurchase(input.Phone, input.Amount, input.Items)
	if err != nil {
		registryError(c, err)
		return
	}

	response := gin.H{"bill": bill}
	if input.SendThankYou {
		customer, err := ctl.Registry.ByPhone(input.Phone)
		if err == nil {
			item := ctl.Composer.PurchaseThankYou(*customer, *bill)
			response["delivery"] = ctl.Dispatcher.SendOne(item.Phone, item.Message)
		}
	}

	c.JSON(http.StatusCreated, response)
}

// GetBills lists bills, optionally filtered by customer phone and recency
func (ctl *BillController) GetBills(c *gin.Context) {
	query := config.DB.Model(&models.Bill{}).Order("id DESC")

	if rawPhone := c.Query("phone"); rawPhone != "" {
		phone, ok := utils.NormalizePhone(rawPhone)
		if !ok {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
			return
		}
		query = query.Where("customer_phone = ?", phone)
	}
	if days := intQuery(c, "days", 0); days > 0 {
		cutoff := utils.BeginningOfDay(time.Now()).AddDate(0, 0, -days)
		query = query.Where("billed_at >= ?", cutoff)
	}

	var bills []models.Bill
	if err := query.Find(&bills).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bills")
		return
	}
	c.JSON(http.StatusOK, bills)
}

// GetUnpaidBills lists pending bills
func (ctl *BillController) GetUnpaidBills(c *gin.Context) {
	var bills []models.Bill
	if err := config.DB.Where("is_paid = ?", false).Order("id ASC").Find(&bills).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bills")
		return
	}
	c.JSON(http.StatusOK, bills)
}

// BillSummary aggregates a customer's billing history
type BillSummary struct {
	TotalBills     int     `json:"totalBills"`
	TotalAmount    float64 `json:"totalAmount"`
	AvgBill        float64 `json:"avgBill"`
	LastBillDate   string  `json:"lastBillDate"`
	LastBillAmount float64 `json:"lastBillAmount"`
	UnpaidCount    int     `json:"unpaidCount"`
	UnpaidAmount   float64 `json:"unpaidAmount"`
}

// GetBillSummary aggregates over one customer's bills
func (ctl *BillController) GetBillSummary(c *gin.Context) {
	customer, err := ctl.Registry.ByPhone(c.Param("phone"))
	if err != nil {
		registryError(c, err)
		return
	}

	var bills []models.Bill
	if err := config.DB.Where("customer_phone = ?", customer.Phone).Order("id ASC").Find(&bills).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bills")
		return
	}
	if len(bills) == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "No bills found for this customer")
		return
	}

	summary := BillSummary{TotalBills: len(bills)}
	for _, bill := range bills {
		summary.TotalAmount += bill.Amount
		if !bill.IsPaid {
			summary.UnpaidCount++
			summary.UnpaidAmount += bill.Amount
		}
	}
	summary.AvgBill = summary.TotalAmount / float64(len(bills))
	last := bills[len(bills)-1]
	summary.LastBillDate = last.BilledAt.Format("2006-01-02")
	summary.LastBillAmount = last.Amount

	c.JSON(http.StatusOK, summary)
}
