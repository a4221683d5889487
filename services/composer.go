// services/composer.go
package services

import (
	"fmt"

	"shopconnect-backend/models"
	"shopconnect-backend/templates"
)

// Composer turns a cohort and an occasion into the ordered list of
// (recipient, message) pairs the dispatcher will send. It is pure: no side
// effects, and the cohort's iteration order is preserved so dispatch order is
// reproducible.
type Composer struct {
	shopName string
}

func NewComposer(shopName string) *Composer {
	return &Composer{shopName: shopName}
}

func (c *Composer) Festival(customers []models.Customer, festivalName string) []DispatchItem {
	items := make([]DispatchItem, 0, len(customers))
	for _, customer := range customers {
		items = append(items, DispatchItem{
			Phone:   customer.Phone,
			Message: templates.FestivalGreeting(festivalName, customer.Name, c.shopName),
		})
	}
	return items
}

func (c *Composer) Birthday(customers []models.Customer) []DispatchItem {
	items := make([]DispatchItem, 0, len(customers))
	for _, customer := range customers {
		items = append(items, DispatchItem{
			Phone:   customer.Phone,
			Message: templates.BirthdayGreeting(customer.Name, c.shopName),
		})
	}
	return items
}

func (c *Composer) Anniversary(customers []models.Customer) []DispatchItem {
	items := make([]DispatchItem, 0, len(customers))
	for _, customer := range customers {
		items = append(items, DispatchItem{
			Phone:   customer.Phone,
			Message: templates.AnniversaryGreeting(customer.Name, c.shopName),
		})
	}
	return items
}

func (c *Composer) Offer(customers []models.Customer, offerText string) []DispatchItem {
	items := make([]DispatchItem, 0, len(customers))
	for _, customer := range customers {
		items = append(items, DispatchItem{
			Phone:   customer.Phone,
			Message: templates.OfferAnnouncement(offerText, customer.Name, c.shopName),
		})
	}
	return items
}

func (c *Composer) NewArrivals(customers []models.Customer, products []models.Product) []DispatchItem {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		line := fmt.Sprintf("▪️ *%s* (%s)\n   ₹%.0f", p.Name, p.Brand, p.Price)
		if p.MRP > p.Price {
			pct := int((1 - p.Price/p.MRP) * 100)
			line += fmt.Sprintf(" _(Save %d%%!)_", pct)
		}
		lines = append(lines, line)
	}

	items := make([]DispatchItem, 0, len(customers))
	for _, customer := range customers {
		items = append(items, DispatchItem{
			Phone:   customer.Phone,
			Message: templates.NewArrivalsAnnouncement(lines, customer.Name, c.shopName),
		})
	}
	return items
}

func (c *Composer) PurchaseThankYou(customer models.Customer, bill models.Bill) DispatchItem {
	return DispatchItem{
		Phone:   customer.Phone,
		Message: templates.PurchaseThankYou(customer.Name, bill.BillID, bill.Amount, bill.Items, c.shopName, bill.BilledAt),
	}
}

func (c *Composer) BillReminder(customerName string, bill models.Bill) DispatchItem {
	return DispatchItem{
		Phone:   bill.CustomerPhone,
		Message: templates.BillReminder(customerName, bill.BillID, bill.Amount, c.shopName),
	}
}
