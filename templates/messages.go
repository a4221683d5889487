// Package templates renders the outgoing message bodies. Bodies use
// [Placeholder] substitution, so shop staff can recognize and tweak them
// without touching format verbs.
package templates

import (
	"fmt"
	"strings"
	"time"
)

func render(body string, fields map[string]string) string {
	for key, value := range fields {
		body = strings.ReplaceAll(body, "["+key+"]", value)
	}
	return body
}

const festivalBody = `🎉 *Happy [FestivalName]!* 🎉

Dear [CustomerName] ji,

*[ShopName]* wishes you a very *Happy [FestivalName]!*

May this occasion bring joy and happiness to you and your family! 🙏

Thank you for being our valued customer!
~ Team [ShopName]`

func FestivalGreeting(festivalName, customerName, shopName string) string {
	return render(festivalBody, map[string]string{
		"FestivalName": festivalName,
		"CustomerName": customerName,
		"ShopName":     shopName,
	})
}

const birthdayBody = `🎂🎉 *Happy Birthday, [CustomerName] ji!* 🎉🎂

Wishing you a wonderful birthday filled with joy and happiness!

🎁 *Special Birthday Gift from [ShopName]!*
Show this message at our shop for a *10% discount* on your next purchase!
_(Valid for 7 days)_

Thank you for being part of the [ShopName] family! 🙏
~ Team [ShopName]`

func BirthdayGreeting(customerName, shopName string) string {
	return render(birthdayBody, map[string]string{
		"CustomerName": customerName,
		"ShopName":     shopName,
	})
}

const anniversaryBody = `💍✨ *Happy Anniversary, [CustomerName] ji!* ✨💍

Wishing you a very Happy Anniversary!

May your love grow brighter every year! 💕

🎁 *Anniversary Special* - Visit [ShopName] for special offers!

~ Team [ShopName]`

func AnniversaryGreeting(customerName, shopName string) string {
	return render(anniversaryBody, map[string]string{
		"CustomerName": customerName,
		"ShopName":     shopName,
	})
}

const thankYouBody = `🙏 *Thank You for Your Purchase!* 🙏

Dear [CustomerName] ji,

Thank you for shopping at *[ShopName]!* 🏪

📋 *Bill Details:*
🆔 Bill No: [BillID]
💰 Amount: ₹[Amount][ItemsLine]
📅 Date: [Date]

We value your trust in us!

⭐ If you liked our service, please recommend *[ShopName]* to your friends & family!

Thank you! 🙏
~ Team [ShopName]`

func PurchaseThankYou(customerName, billID string, amount float64, items, shopName string, billedAt time.Time) string {
	itemsLine := ""
	if items != "" {
		itemsLine = "\n📦 Items: " + items
	}
	return render(thankYouBody, map[string]string{
		"CustomerName": customerName,
		"BillID":       billID,
		"Amount":       fmt.Sprintf("%.0f", amount),
		"ItemsLine":    itemsLine,
		"Date":         billedAt.Format("02 January 2006"),
		"ShopName":     shopName,
	})
}

const billReminderBody = `📋 *Payment Reminder* 📋

Dear [CustomerName] ji,

This is a gentle reminder about your pending payment:

🆔 Bill No: [BillID]
💰 Amount Due: ₹[Amount]

Please visit *[ShopName]* to clear the payment at your convenience.

💳 Payment modes: Cash / UPI / Card

Thank you! 🙏
~ Team [ShopName]`

func BillReminder(customerName, billID string, amount float64, shopName string) string {
	return render(billReminderBody, map[string]string{
		"CustomerName": customerName,
		"BillID":       billID,
		"Amount":       fmt.Sprintf("%.0f", amount),
		"ShopName":     shopName,
	})
}

const offerBody = `🔥 *SPECIAL OFFER at [ShopName]!* 🔥

Dear [CustomerName] ji,

[OfferText]

📍 Visit *[ShopName]* today!
⏰ _Limited time offer!_

~ Team [ShopName]`

func OfferAnnouncement(offerText, customerName, shopName string) string {
	return render(offerBody, map[string]string{
		"OfferText":    offerText,
		"CustomerName": customerName,
		"ShopName":     shopName,
	})
}

const newArrivalsBody = `🆕✨ *NEW ARRIVALS at [ShopName]!* ✨🆕

Dear [CustomerName] ji,

Check out what's *NEW* at our shop! 🛒

[ProductLines]

📍 Visit *[ShopName]* to see these products!

_Limited stock available!_

~ Team [ShopName]`

// NewArrivalsAnnouncement renders a new-arrivals notice from pre-formatted
// product lines (name, brand, price), one per product.
func NewArrivalsAnnouncement(productLines []string, customerName, shopName string) string {
	return render(newArrivalsBody, map[string]string{
		"ProductLines": strings.Join(productLines, "\n"),
		"CustomerName": customerName,
		"ShopName":     shopName,
	})
}
