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

// DashboardController assembles the overview screen
type DashboardController struct {
	Registry   *services.Registry
	Calendar   *services.FestivalCalendar
	Dispatcher *services.Dispatcher
}

type DashboardOverview struct {
	TotalCustomers    int                         `json:"totalCustomers"`
	ActiveCustomers   int                         `json:"activeCustomers"`
	MonthlyRevenue    float64                     `json:"monthlyRevenue"`
	TotalBills        int                         `json:"totalBills"`
	BirthdaysToday    int                         `json:"birthdaysToday"`
	UpcomingFestivals []services.UpcomingFestival `json:"upcomingFestivals"`
	MessageStats      services.MessageStats       `json:"messageStats"`
}

// GetDashboardOverview aggregates registry, billing, festival and messaging
// numbers for the landing screen
func (ctl *DashboardController) GetDashboardOverview(c *gin.Context) {
	stats, err := ctl.Registry.Stats()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var monthlyRevenue float64
	config.DB.Model(&models.Bill{}).
		Where("billed_at >= ?", firstOfMonth).
		Select("COALESCE(SUM(amount), 0)").Scan(&monthlyRevenue)

	var totalBills int64
	config.DB.Model(&models.Bill{}).Count(&totalBills)

	birthdays, err := ctl.Registry.BirthdaysOn(now)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve birthdays")
		return
	}

	upcoming, err := ctl.Calendar.Upcoming(7)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve festivals")
		return
	}

	messageStats, err := ctl.Dispatcher.Stats()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute message stats")
		return
	}

	c.JSON(http.StatusOK, DashboardOverview{
		TotalCustomers:    stats.TotalCustomers,
		ActiveCustomers:   stats.ActiveCustomers,
		MonthlyRevenue:    monthlyRevenue,
		TotalBills:        int(totalBills),
		BirthdaysToday:    len(birthdays),
		UpcomingFestivals: upcoming,
		MessageStats:      messageStats,
	})
}
