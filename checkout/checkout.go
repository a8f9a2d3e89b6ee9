// Package checkout implements the order placement transaction: converting a cart
// snapshot plus delivery and payment input into a durable order, atomically.
package checkout

import (
	"fmt"
	"strings"
	"time"

	"food-ordering-api/models"

	"gorm.io/gorm"
)

type CardInput struct {
	Brand    string `json:"brand"`
	Number   string `json:"number"`
	ExpMonth int    `json:"expMonth"`
	ExpYear  int    `json:"expYear"`
	CVC      string `json:"cvc"` // accepted from the client, never persisted
}

type DeliveryInput struct {
	Address       string    `json:"address" binding:"required"`
	City          string    `json:"city"`
	Instructions  string    `json:"instructions"`
	PaymentMethod string    `json:"paymentMethod"`
	Card          CardInput `json:"card"`
}

type CartItemInput struct {
	ID       uint    `json:"id" binding:"required"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Price    float64 `json:"price"`
}

type Request struct {
	DeliveryData DeliveryInput   `json:"deliveryData" binding:"required"`
	CartItems    []CartItemInput `json:"cartItems" binding:"required,min=1"`
	TotalAmount  float64         `json:"totalAmount" binding:"required"`
}

type Result struct {
	OrderID     uint
	OrderNumber string
}

// OrderNumber derives a human-meaningful order number from the current time and
// the user id. The order_number column is unique-indexed, so the theoretical
// same-millisecond collision fails the transaction instead of corrupting data.
func OrderNumber(userID uint) string {
	return fmt.Sprintf("ORD%d%d", time.Now().UnixMilli(), userID)
}

// PlaceOrder commits the order, its line items, the cart drain, and any card
// payment in a single transaction. Either everything below is applied or none
// of it is; a concurrent reader never sees an order without its items or a
// committed order next to a non-drained cart.
//
// Item prices and the order total come from the client payload and are not
// re-checked against the live catalog.
func PlaceOrder(db *gorm.DB, userID uint, req *Request) (*Result, error) {
	delivery := req.DeliveryData

	order := models.Order{
		OrderNumber:          OrderNumber(userID),
		UserID:               userID,
		TotalAmount:          req.TotalAmount,
		DeliveryAddress:      delivery.Address,
		DeliveryCity:         delivery.City,
		DeliveryInstructions: delivery.Instructions,
		PaymentMethod:        delivery.PaymentMethod,
		PaymentStatus:        models.PaymentPending,
		OrderStatus:          models.StatusPending,
		OrderDate:            time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, item := range req.CartItems {
			line := models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: item.ID,
				ItemName:   item.Name,
				Quantity:   item.Quantity,
				UnitPrice:  item.Price,
				TotalPrice: item.Price * float64(item.Quantity),
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		}

		// Drain the cart unconditionally, whether or not the submitted items
		// match the stored rows.
		if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		if strings.EqualFold(delivery.PaymentMethod, "card") {
			payment := models.Payment{
				OrderID:   order.ID,
				UserID:    userID,
				Method:    "card",
				CardBrand: delivery.Card.Brand,
				CardLast4: last4(delivery.Card.Number),
				ExpMonth:  delivery.Card.ExpMonth,
				ExpYear:   delivery.Card.ExpYear,
				Status:    models.PaymentRecordSucceeded,
			}
			if err := tx.Create(&payment).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
				Update("payment_status", models.PaymentPaid).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Result{OrderID: order.ID, OrderNumber: order.OrderNumber}, nil
}

func last4(number string) string {
	if len(number) <= 4 {
		return number
	}
	return number[len(number)-4:]
}
