// controllers/festival.go
package controllers

import (
	"errors"
	"net/http"

	"shopconnect-backend/services"
	"shopconnect-backend/utils"

	"github.com/gin-gonic/gin"
)

// FestivalController exposes the festival calendar over HTTP
type FestivalController struct {
	Calendar *services.FestivalCalendar
}

// AddFestivalInput defines the expected JSON structure for adding an event
type AddFestivalInput struct {
	Date  string `json:"date" binding:"required"` // YYYY-MM-DD
	Name  string `json:"name" binding:"required"`
	Type  string `json:"type"`
	Emoji string `json:"emoji"`
}

// GetToday lists events falling on the current day
func (ctl *FestivalController) GetToday(c *gin.Context) {
	events, err := ctl.Calendar.Today()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve festivals")
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetUpcoming lists events within the next N days (default 7)
func (ctl *FestivalController) GetUpcoming(c *gin.Context) {
	days := intQuery(c, "days", 7)
	events, err := ctl.Calendar.Upcoming(days)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve festivals")
		return
	}
	c.JSON(http.StatusOK, events)
}

// AddFestival inserts a custom event
func (ctl *FestivalController) AddFestival(c *gin.Context) {
	var input AddFestivalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	event, err := ctl.Calendar.Add(input.Date, input.Name, input.Type, input.Emoji)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add festival")
		}
		return
	}

	c.JSON(http.StatusCreated, event)
}
