package models

import (
	"time"
)

// PaymentStatus represents the lifecycle state of a payment transaction.
type PaymentStatus string

const (
	PaymentStatusInitiated PaymentStatus = "INITIATED"
	PaymentStatusSuccess   PaymentStatus = "SUCCESS"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// Payment represents a single payment transaction. UserID is carried by
// value only; there is no foreign key back to the users table.
type Payment struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	UserID        uint          `json:"userId" gorm:"index"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	PaymentMethod string        `json:"paymentMethod"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transactionId" gorm:"uniqueIndex"`
	Remarks       string        `json:"remarks"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"-"`
}
