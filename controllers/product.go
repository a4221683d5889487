// controllers/product.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"shopconnect-backend/config"
	"shopconnect-backend/models"
	"shopconnect-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateProductInput defines the expected JSON structure for creating a product
type CreateProductInput struct {
	Name         string  `json:"name" binding:"required"`
	Category     string  `json:"category"`
	Brand        string  `json:"brand"`
	Price        float64 `json:"price" binding:"required,min=0"`
	MRP          float64 `json:"mrp" binding:"min=0"`
	Description  string  `json:"description"`
	IsNewArrival *bool   `json:"isNewArrival"`
}

// UpdateProductInput defines the expected JSON structure for updating a product
type UpdateProductInput struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	Brand        *string  `json:"brand"`
	Price        *float64 `json:"price" binding:"omitempty,min=0"`
	MRP          *float64 `json:"mrp" binding:"omitempty,min=0"`
	Description  *string  `json:"description"`
	IsNewArrival *bool    `json:"isNewArrival"`
	IsActive     *bool    `json:"isActive"`
}

// CreateProduct adds a new product
func CreateProduct(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	product := models.Product{
		Name:         input.Name,
		Category:     input.Category,
		Brand:        input.Brand,
		Price:        input.Price,
		MRP:          input.MRP,
		Description:  input.Description,
		IsNewArrival: true,
		AddedDate:    time.Now(),
		IsActive:     true,
	}
	if product.Category == "" {
		product.Category = "General"
	}
	if product.MRP == 0 {
		product.MRP = product.Price
	}
	if input.IsNewArrival != nil {
		product.IsNewArrival = *input.IsNewArrival
	}

	if err := config.DB.Create(&product).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, product)
}

// GetProducts lists active products, optionally filtered by category
func GetProducts(c *gin.Context) {
	query := config.DB.Where("is_active = ?", true).Order("id ASC")
	if category := c.Query("category"); category != "" {
		query = query.Where("LOWER(category) = LOWER(?)", category)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct retrieves one product by id
func GetProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.Where("id = ?", c.Param("id")).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	c.JSON(http.StatusOK, product)
}

// UpdateProduct applies a partial update to a product
func UpdateProduct(c *gin.Context) {
	var input UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var product models.Product
	if err := config.DB.Where("id = ?", c.Param("id")).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Brand != nil {
		product.Brand = *input.Brand
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.MRP != nil {
		product.MRP = *input.MRP
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.IsNewArrival != nil {
		product.IsNewArrival = *input.IsNewArrival
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&product).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// GetNewArrivals lists the most recently added new-arrival products. The
// "new" status is a recency ranking, not a separate expiry mechanism.
func GetNewArrivals(c *gin.Context) {
	limit := intQuery(c, "limit", 10)

	var products []models.Product
	if err := config.DB.Where("is_new_arrival = ? AND is_active = ?", true, true).
		Order("added_date DESC").Limit(limit).Find(&products).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}
	c.JSON(http.StatusOK, products)
}
