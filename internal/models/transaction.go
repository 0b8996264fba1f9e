package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeRevenue = "REVENUE"
	TransactionTypeExpense = "EXPENSE"

	PaymentStatusPending   = "PENDING"
	PaymentStatusPaid      = "PAID"
	PaymentStatusOverdue   = "OVERDUE"
	PaymentStatusCancelled = "CANCELLED"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidPaymentStatus   = errors.New("invalid payment status")
	ErrInvalidAmount          = errors.New("transaction amount must not be negative")
	ErrInvalidQuantity        = errors.New("transaction quantity must not be negative")
	ErrMissingCategory        = errors.New("category ID is required")
)

// Transaction is a revenue or expense record. Rows are owned by the relational store;
// the dashboard only reads and aggregates them.
type Transaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	TransactionType string          `gorm:"type:varchar(10);not null;index" json:"type"`
	CategoryID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"categoryId"`
	ProductID       *uuid.UUID      `gorm:"type:uuid;index" json:"productId,omitempty"`
	CustomerID      *uuid.UUID      `gorm:"type:uuid;index" json:"customerId,omitempty"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Quantity        int             `gorm:"not null;default:0" json:"quantity"`
	Description     string          `gorm:"type:text" json:"description,omitempty"`
	OccurredAt      time.Time       `gorm:"not null;index" json:"occurredAt"`
	DueDate         *time.Time      `gorm:"index" json:"dueDate,omitempty"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
	PaymentStatus   string          `gorm:"type:varchar(10);not null;default:'PENDING';index" json:"paymentStatus"`
	CreatedAt       time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updatedAt"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.PaymentStatus == "" {
		t.PaymentStatus = PaymentStatusPending
	}

	now := time.Now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.CategoryID == uuid.Nil {
		return ErrMissingCategory
	}

	if !IsValidTransactionType(t.TransactionType) {
		return ErrInvalidTransactionType
	}

	if !IsValidPaymentStatus(t.PaymentStatus) {
		return ErrInvalidPaymentStatus
	}

	if t.Amount.IsNegative() {
		return ErrInvalidAmount
	}

	if t.Quantity < 0 {
		return ErrInvalidQuantity
	}

	return nil
}

// IsReceivable reports whether the transaction is money owed to the business
func (t *Transaction) IsReceivable() bool {
	return t.TransactionType == TransactionTypeRevenue
}

// IsPayable reports whether the transaction is money the business owes
func (t *Transaction) IsPayable() bool {
	return t.TransactionType == TransactionTypeExpense
}

// SignedAmount returns the amount with expense rows negated, the contribution to profit
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.TransactionType == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeRevenue, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// IsValidPaymentStatus checks if the payment status is valid
func IsValidPaymentStatus(status string) bool {
	switch status {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusOverdue, PaymentStatusCancelled:
		return true
	default:
		return false
	}
}

// TransactionTypeLabel returns the display name used for chart series
func TransactionTypeLabel(transactionType string) string {
	switch transactionType {
	case TransactionTypeRevenue:
		return "Revenue"
	case TransactionTypeExpense:
		return "Expense"
	default:
		return transactionType
	}
}
