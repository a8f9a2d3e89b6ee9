package models

import "time"

// PaymentRecordStatus is the lifecycle of a stored payment attempt
type PaymentRecordStatus string

const (
	PaymentRecordPending   PaymentRecordStatus = "pending"
	PaymentRecordSucceeded PaymentRecordStatus = "succeeded"
	PaymentRecordFailed    PaymentRecordStatus = "failed"
)

// Payment keeps only masked card details. The raw card number and CVC are never
// persisted: brand, last 4 digits, and expiry only.
type Payment struct {
	ID        uint                `json:"id" gorm:"primaryKey"`
	OrderID   uint                `json:"order_id" gorm:"not null"`
	UserID    uint                `json:"user_id" gorm:"not null"`
	Method    string              `json:"method" gorm:"not null"`
	CardBrand string              `json:"card_brand"`
	CardLast4 string              `json:"card_last4" gorm:"size:4"`
	ExpMonth  int                 `json:"exp_month"`
	ExpYear   int                 `json:"exp_year"`
	Status    PaymentRecordStatus `json:"status" gorm:"not null;default:'succeeded'"`
	CreatedAt time.Time           `json:"created_at"`
}
