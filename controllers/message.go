// controllers/message.go
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

// MessageController drives outbound campaigns through the dispatch engine
type MessageController struct {
	Registry   *services.Registry
	Composer   *services.Composer
	Dispatcher *services.Dispatcher
}

// SendMessageInput defines the expected JSON structure for a single send
type SendMessageInput struct {
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// CohortInput selects the target cohort of a campaign
type CohortInput struct {
	Cohort   string `json:"cohort" binding:"omitempty,oneof=active recent inactive top category"`
	Days     int    `json:"days" binding:"omitempty,min=0"`
	N        int    `json:"n" binding:"omitempty,min=1"`
	Category string `json:"category"`
}

// SendFestivalInput defines a festival campaign
type SendFestivalInput struct {
	Festival string `json:"festival" binding:"required"`
	CohortInput
}

// SendOfferInput defines a free-text offer campaign
type SendOfferInput struct {
	OfferText string `json:"offerText" binding:"required"`
	CohortInput
}

// SendNewArrivalsInput defines a new-arrivals campaign
type SendNewArrivalsInput struct {
	Limit int `json:"limit" binding:"omitempty,min=1"`
	CohortInput
}

func (ctl *MessageController) resolveCohort(input CohortInput) ([]models.Customer, error) {
	switch input.Cohort {
	case "recent":
		days := input.Days
		if days == 0 {
			days = 30
		}
		return ctl.Registry.Recent(days)
	case "inactive":
		days := input.Days
		if days == 0 {
			days = 60
		}
		return ctl.Registry.Inactive(days)
	case "top":
		n := input.N
		if n == 0 {
			n = 10
		}
		return ctl.Registry.TopSpenders(n)
	case "category":
		return ctl.Registry.ByCategory(input.Category)
	default:
		return ctl.Registry.Active()
	}
}

// SendMessage sends one free-form message to one customer
func (ctl *MessageController) SendMessage(c *gin.Context) {
	var input SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	phone, ok := utils.NormalizePhone(input.Phone)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	outcome := ctl.Dispatcher.SendOne(phone, input.Message)
	c.JSON(http.StatusOK, outcome)
}

// SendFestival sends festival greetings to the selected cohort
func (ctl *MessageController) SendFestival(c *gin.Context) {
	var input SendFestivalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customers, err := ctl.resolveCohort(input.CohortInput)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to resolve cohort")
		return
	}

	result := ctl.Dispatcher.SendBatch(ctl.Composer.Festival(customers, input.Festival), "bulk")
	c.JSON(http.StatusOK, result)
}

// SendBirthdayGreetings sends greetings to customers whose birthday is today
func (ctl *MessageController) SendBirthdayGreetings(c *gin.Context) {
	customers, err := ctl.Registry.BirthdaysOn(time.Now())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to resolve cohort")
		return
	}

	result := ctl.Dispatcher.SendBatch(ctl.Composer.Birthday(customers), "personalized")
	c.JSON(http.StatusOK, result)
}

// SendAnniversaryGreetings sends greetings to customers whose anniversary is today
func (ctl *MessageController) SendAnniversaryGreetings(c *gin.Context) {
	customers, err := ctl.Registry.AnniversariesOn(time.Now())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to resolve cohort")
		return
	}

	result := ctl.Dispatcher.SendBatch(ctl.Composer.Anniversary(customers), "personalized")
	c.JSON(http.StatusOK, result)
}

// SendOffer sends a free-text offer to the selected cohort
func (ctl *MessageController) SendOffer(c *gin.Context) {
	var input SendOfferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customers, err := ctl.resolveCohort(input.CohortInput)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to resolve cohort")
		return
	}

	result := ctl.Dispatcher.SendBatch(ctl.Composer.Offer(customers, input.OfferText), "bulk")
	c.JSON(http.StatusOK, result)
}

// SendNewArrivals announces the latest new-arrival products to the cohort
func (ctl *MessageController) SendNewArrivals(c *gin.Context) {
	var input SendNewArrivalsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	limit := input.Limit
	if limit == 0 {
		limit = 5
	}
	var products []models.Product
	if err := config.DB.Where("is_new_arrival = ? AND is_active = ?", true, true).
		Order("added_date DESC").Limit(limit).Find(&products).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}
	if len(products) == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "No new arrivals to announce")
		return
	}

	customers, err := ctl.resolveCohort(input.CohortInput)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to resolve cohort")
		return
	}

	result := ctl.Dispatcher.SendBatch(ctl.Composer.NewArrivals(customers, products), "bulk")
	c.JSON(http.StatusOK, result)
}

// SendBillReminders sends a payment reminder for every unpaid bill
func (ctl *MessageController) SendBillReminders(c *gin.Context) {
	var bills []models.Bill
	if err := config.DB.Where("is_paid = ?", false).Order("id ASC").Find(&bills).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bills")
		return
	}

	items := make([]services.DispatchItem, 0, len(bills))
	for _, bill := range bills {
		items = append(items, ctl.Composer.BillReminder(bill.CustomerName, bill))
	}

	result := ctl.Dispatcher.SendBatch(items, "personalized")
	c.JSON(http.StatusOK, result)
}

// GetHistory lists the most recent message log entries
func (ctl *MessageController) GetHistory(c *gin.Context) {
	limit := intQuery(c, "limit", 50)
	entries, err := ctl.Dispatcher.History(limit)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve history")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetMessageStats returns total/sent/failed/today counters from the log
func (ctl *MessageController) GetMessageStats(c *gin.Context) {
	stats, err := ctl.Dispatcher.Stats()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
