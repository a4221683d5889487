// services/registry.go
package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"shopconnect-backend/models"
	"shopconnect-backend/utils"
)

// Registry owns the customer records and their identity rules: the canonical
// E.164 phone is the dedup key, sequential customer codes are never reused,
// and every mutation happens under a transaction.
type Registry struct {
	db  *gorm.DB
	now func() time.Time
}

func NewRegistry(db *gorm.DB) *Registry {
	return &Registry{db: db, now: time.Now}
}

// AddCustomerInput carries the optional fields of a new customer. Name and
// Phone are the only required ones.
type AddCustomerInput struct {
	Name        string
	Phone       string
	Email       string
	Address     string
	Birthday    *time.Time
	Anniversary *time.Time
	Category    string
	Tags        string
	Notes       string
}

// CustomerChanges is a partial update; nil fields are left untouched. The
// phone identity itself can never be changed through an update.
type CustomerChanges struct {
	Name        *string
	Email       *string
	Address     *string
	Birthday    *time.Time
	Anniversary *time.Time
	Category    *string
	Tags        *string
	Notes       *string
	IsActive    *bool
}

// Add registers a new customer. It fails with ErrInvalidPhone when the raw
// phone cannot be canonicalized and with ErrDuplicate when the canonical
// phone is already present.
func (r *Registry) Add(input AddCustomerInput) (*models.Customer, error) {
	phone, ok := utils.NormalizePhone(input.Phone)
	if !ok {
		return nil, ErrInvalidPhone
	}

	category := input.Category
	if category == "" {
		category = "General"
	}

	customer := models.Customer{
		Name:        strings.TrimSpace(input.Name),
		Phone:       phone,
		Email:       strings.TrimSpace(input.Email),
		Address:     strings.TrimSpace(input.Address),
		Birthday:    input.Birthday,
		Anniversary: input.Anniversary,
		Category:    category,
		Tags:        input.Tags,
		Notes:       input.Notes,
		AddedDate:   r.now(),
		IsActive:    true,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Customer{}).Where("phone = ?", phone).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicate
		}

		customerID, err := nextCustomerID(tx)
		if err != nil {
			return err
		}
		customer.CustomerID = customerID

		return tx.Create(&customer).Error
	})
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// nextCustomerID derives the next sequential code from the highest assigned
// one, so codes are monotonic and never reused even after deactivation.
func nextCustomerID(tx *gorm.DB) (string, error) {
	var last models.Customer
	err := tx.Unscoped().Order("id DESC").First(&last).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "CUST-0001", nil
		}
		return "", err
	}
	parts := strings.Split(last.CustomerID, "-")
	num, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return "", fmt.Errorf("malformed customer id %q: %w", last.CustomerID, err)
	}
	return fmt.Sprintf("CUST-%04d", num+1), nil
}

// ByPhone looks a customer up by any raw representation of its phone.
func (r *Registry) ByPhone(rawPhone string) (*models.Customer, error) {
	phone, ok := utils.NormalizePhone(rawPhone)
	if !ok {
		return nil, ErrInvalidPhone
	}
	var customer models.Customer
	if err := r.db.Where("phone = ?", phone).First(&customer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// Update applies a partial update to the customer identified by phone.
func (r *Registry) Update(rawPhone string, changes CustomerChanges) (*models.Customer, error) {
	customer, err := r.ByPhone(rawPhone)
	if err != nil {
		return nil, err
	}

	if changes.Name != nil {
		customer.Name = strings.TrimSpace(*changes.Name)
	}
	if changes.Email != nil {
		customer.Email = *changes.Email
	}
	if changes.Address != nil {
		customer.Address = *changes.Address
	}
	if changes.Birthday != nil {
		customer.Birthday = changes.Birthday
	}
	if changes.Anniversary != nil {
		customer.Anniversary = changes.Anniversary
	}
	if changes.Category != nil {
		customer.Category = *changes.Category
	}
	if changes.Tags != nil {
		customer.Tags = *changes.Tags
	}
	if changes.Notes != nil {
		customer.Notes = *changes.Notes
	}
	if changes.IsActive != nil {
		customer.IsActive = *changes.IsActive
	}

	if err := r.db.Save(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

// Deactivate flips the active flag off. Customers are never hard-deleted.
func (r *Registry) Deactivate(rawPhone string) error {
	inactive := false
	_, err := r.Update(rawPhone, CustomerChanges{IsActive: &inactive})
	return err
}

// RecordPurchase atomically bumps the customer's running aggregates and
// appends an immutable Bill row.
func (r *Registry) RecordPurchase(rawPhone string, amount float64, items string) (*models.Bill, error) {
	phone, ok := utils.NormalizePhone(rawPhone)
	if !ok {
		return nil, ErrInvalidPhone
	}

	now := r.now()
	var bill models.Bill

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.Where("phone = ?", phone).First(&customer).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Model(&models.Customer{}).Where("phone = ?", phone).
			Updates(map[string]interface{}{
				"total_purchases":      gorm.Expr("total_purchases + ?", 1),
				"visit_count":          gorm.Expr("visit_count + ?", 1),
				"total_spent":          gorm.Expr("total_spent + ?", amount),
				"last_purchase_date":   now,
				"last_purchase_amount": amount,
			}).Error; err != nil {
			return err
		}

		var billCount int64
		if err := tx.Unscoped().Model(&models.Bill{}).Count(&billCount).Error; err != nil {
			return err
		}

		bill = models.Bill{
			BillID:        fmt.Sprintf("BILL-%05d", billCount+1),
			CustomerPhone: phone,
			CustomerName:  customer.Name,
			Amount:        amount,
			Items:         items,
			BilledAt:      now,
			IsPaid:        true,
			PaymentMode:   "Cash",
		}
		return tx.Create(&bill).Error
	})
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

// All returns every customer in registry order.
func (r *Registry) All() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Order("id ASC").Find(&customers).Error
	return customers, err
}

// Active returns the customers with the active flag set, in registry order.
func (r *Registry) Active() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Where("is_active = ?", true).Order("id ASC").Find(&customers).Error
	return customers, err
}

// Search matches customers by name or phone substring.
func (r *Registry) Search(query string) ([]models.Customer, error) {
	like := "%" + strings.ToLower(query) + "%"
	var customers []models.Customer
	err := r.db.Where("LOWER(name) LIKE ? OR phone LIKE ?", like, like).
		Order("id ASC").Find(&customers).Error
	return customers, err
}

// ByCategory returns the customers in one category, in registry order.
func (r *Registry) ByCategory(category string) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Where("category = ?", category).Order("id ASC").Find(&customers).Error
	return customers, err
}

// Recent returns the customers whose last purchase falls within the last
// `days` days. The boundary is inclusive: a purchase exactly `days` ago
// still counts as recent.
func (r *Registry) Recent(days int) ([]models.Customer, error) {
	customers, err := r.All()
	if err != nil {
		return nil, err
	}
	now := r.now()
	var recent []models.Customer
	for _, c := range customers {
		if c.LastPurchaseDate != nil && utils.DaysBetween(*c.LastPurchaseDate, now) <= days {
			recent = append(recent, c)
		}
	}
	return recent, nil
}

// Inactive returns the customers whose last purchase is older than `days`
// days, together with those who have never purchased at all.
func (r *Registry) Inactive(days int) ([]models.Customer, error) {
	customers, err := r.All()
	if err != nil {
		return nil, err
	}
	now := r.now()
	var inactive []models.Customer
	for _, c := range customers {
		if c.LastPurchaseDate == nil || utils.DaysBetween(*c.LastPurchaseDate, now) > days {
			inactive = append(inactive, c)
		}
	}
	return inactive, nil
}

// BirthdaysOn returns the customers whose birthday matches the month and day
// of the given date, regardless of year.
func (r *Registry) BirthdaysOn(date time.Time) ([]models.Customer, error) {
	customers, err := r.All()
	if err != nil {
		return nil, err
	}
	var matches []models.Customer
	for _, c := range customers {
		if c.Birthday != nil && utils.SameMonthDay(*c.Birthday, date) {
			matches = append(matches, c)
		}
	}
	return matches, nil
}

// AnniversariesOn is BirthdaysOn for the anniversary field.
func (r *Registry) AnniversariesOn(date time.Time) ([]models.Customer, error) {
	customers, err := r.All()
	if err != nil {
		return nil, err
	}
	var matches []models.Customer
	for _, c := range customers {
		if c.Anniversary != nil && utils.SameMonthDay(*c.Anniversary, date) {
			matches = append(matches, c)
		}
	}
	return matches, nil
}

// TopSpenders returns the n customers with the greatest lifetime spend. Ties
// are broken by registry order (stable sort over the id-ordered snapshot).
func (r *Registry) TopSpenders(n int) ([]models.Customer, error) {
	customers, err := r.All()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(customers, func(i, j int) bool {
		return customers[i].TotalSpent > customers[j].TotalSpent
	})
	if n < len(customers) {
		customers = customers[:n]
	}
	return customers, nil
}

// RegistryStats aggregates over the whole customer base.
type RegistryStats struct {
	TotalCustomers  int     `json:"totalCustomers"`
	ActiveCustomers int     `json:"activeCustomers"`
	TotalRevenue    float64 `json:"totalRevenue"`
	AvgSpend        float64 `json:"avgSpend"`
	TopCategory     string  `json:"topCategory"`
}

// Stats computes registry-wide aggregates. The modal category tie-break
// follows the fixed enumeration order of CustomerCategories.
func (r *Registry) Stats() (RegistryStats, error) {
	customers, err := r.All()
	if err != nil {
		return RegistryStats{}, err
	}
	if len(customers) == 0 {
		return RegistryStats{TopCategory: "N/A"}, nil
	}

	stats := RegistryStats{TotalCustomers: len(customers)}
	counts := make(map[string]int)
	for _, c := range customers {
		if c.IsActive {
			stats.ActiveCustomers++
		}
		stats.TotalRevenue += c.TotalSpent
		counts[c.Category]++
	}
	stats.AvgSpend = stats.TotalRevenue / float64(len(customers))

	stats.TopCategory = "N/A"
	best := 0
	for _, category := range models.CustomerCategories {
		if counts[category] > best {
			best = counts[category]
			stats.TopCategory = category
		}
	}
	return stats, nil
}
