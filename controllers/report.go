// controllers/report.go
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

// ReportController handles revenue analytics
type ReportController struct {
	Registry *services.Registry
}

// AnalyticsSummary represents the analytics data
type AnalyticsSummary struct {
	CurrentMonthRevenue float64           `json:"currentMonthRevenue"`
	CurrentYearRevenue  float64           `json:"currentYearRevenue"`
	TopCustomers        []CustomerSummary `json:"topCustomers"`
	QuickStats          QuickStatistics   `json:"quickStats"`
}

type CustomerSummary struct {
	Name   string  `json:"name"`
	Phone  string  `json:"phone"`
	Visits int     `json:"visits"`
	Spent  float64 `json:"spent"`
}

type QuickStatistics struct {
	TotalCustomers int     `json:"totalCustomers"`
	TotalBills     int     `json:"totalBills"`
	AvgBillValue   float64 `json:"avgBillValue"`
}

// GetReportAnalytics returns the revenue analytics summary
func (rc *ReportController) GetReportAnalytics(c *gin.Context) {
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	firstOfYear := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())

	var monthRevenue, yearRevenue float64
	config.DB.Model(&models.Bill{}).Where("billed_at >= ?", firstOfMonth).
		Select("COALESCE(SUM(amount), 0)").Scan(&monthRevenue)
	config.DB.Model(&models.Bill{}).Where("billed_at >= ?", firstOfYear).
		Select("COALESCE(SUM(amount), 0)").Scan(&yearRevenue)

	top, err := rc.Registry.TopSpenders(5)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve top customers")
		return
	}
	topCustomers := make([]CustomerSummary, 0, len(top))
	for _, customer := range top {
		topCustomers = append(topCustomers, CustomerSummary{
			Name:   customer.Name,
			Phone:  customer.Phone,
			Visits: customer.VisitCount,
			Spent:  customer.TotalSpent,
		})
	}

	var totalCustomers, totalBills int64
	var totalBilled float64
	config.DB.Model(&models.Customer{}).Count(&totalCustomers)
	config.DB.Model(&models.Bill{}).Count(&totalBills)
	config.DB.Model(&models.Bill{}).Select("COALESCE(SUM(amount), 0)").Scan(&totalBilled)

	avgBill := 0.0
	if totalBills > 0 {
		avgBill = totalBilled / float64(totalBills)
	}

	c.JSON(http.StatusOK, AnalyticsSummary{
		CurrentMonthRevenue: monthRevenue,
		CurrentYearRevenue:  yearRevenue,
		TopCustomers:        topCustomers,
		QuickStats: QuickStatistics{
			TotalCustomers: int(totalCustomers),
			TotalBills:     int(totalBills),
			AvgBillValue:   avgBill,
		},
	})
}
