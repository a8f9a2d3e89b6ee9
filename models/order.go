package models

import "time"

// OrderStatus represents all possible states of a food order
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// AllOrderStatuses is the fixed vocabulary used for zero-filled reporting.
var AllOrderStatuses = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusOutForDelivery,
	StatusDelivered,
	StatusCancelled,
}

// PaymentStatus tracks whether an order has been paid for
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

type Order struct {
	ID                   uint          `json:"id" gorm:"primaryKey"`
	OrderNumber          string        `json:"order_number" gorm:"uniqueIndex;not null"`
	UserID               uint          `json:"user_id" gorm:"not null"`
	User                 User          `json:"-" gorm:"foreignKey:UserID"`
	TotalAmount          float64       `json:"total_amount" gorm:"not null"`
	DeliveryFee          float64       `json:"delivery_fee" gorm:"default:0"`
	DeliveryAddress      string        `json:"delivery_address"`
	DeliveryCity         string        `json:"delivery_city"`
	DeliveryInstructions string        `json:"delivery_instructions"`
	PaymentMethod        string        `json:"payment_method"`
	PaymentStatus        PaymentStatus `json:"payment_status" gorm:"not null;default:'pending'"`
	OrderStatus          OrderStatus   `json:"order_status" gorm:"not null;default:'pending'"`
	OrderDate            time.Time     `json:"order_date"`
	DeliveryDate         *time.Time    `json:"delivery_date"`
	Items                []OrderItem   `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

type OrderItem struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	OrderID    uint    `json:"order_id" gorm:"not null"`
	MenuItemID uint    `json:"menu_item_id"`
	ItemName   string  `json:"item_name"` // snapshot name at time of order
	Quantity   int     `json:"quantity" gorm:"not null"`
	UnitPrice  float64 `json:"unit_price" gorm:"not null"` // snapshot price at time of order
	TotalPrice float64 `json:"total_price" gorm:"not null"`
}
