package services

import (
	"fmt"
	"time"

	"github.com/payflow-dev/payflow/models"
	"github.com/payflow-dev/payflow/utils"
)

// PaymentRepository abstracts the payment ledger so the engine can be
// tested against an in-memory implementation.
type PaymentRepository interface {
	Save(payment *models.Payment) error
	FindByID(id uint) (*models.Payment, error)
	FindAll() ([]models.Payment, error)
	FindByUserID(userID uint) ([]models.Payment, error)
}

// PaymentService owns the payment state machine: creation with an
// immediately resolved terminal status, lookups, and refunds.
type PaymentService struct {
	payments PaymentRepository
	outcome  OutcomeDecider
}

// NewPaymentService wires the engine with its ledger and outcome strategy.
func NewPaymentService(payments PaymentRepository, outcome OutcomeDecider) *PaymentService {
	return &PaymentService{payments: payments, outcome: outcome}
}

// Create builds a payment for the given user and resolves it to a
// terminal status in the same call; there is no asynchronous settlement.
// Amounts above the fixed ceiling always fail, anything else goes
// through the outcome decider.
func (s *PaymentService) Create(userID uint, amount float64, currency, paymentMethod string) (*models.Payment, error) {
	utils.LogInfo("Creating payment for user ID: %d, Amount: %.2f %s", userID, amount, currency)

	payment := &models.Payment{
		UserID:        userID,
		Amount:        amount,
		Currency:      currency,
		PaymentMethod: paymentMethod,
		CreatedAt:     time.Now(),
	}

	// Transaction ID format: PF-<userId>-<epochMillis>. Two creations
	// for the same user in the same millisecond collide; the ledger's
	// unique index rejects the second one rather than silently reusing
	// the ID.
	payment.TransactionID = fmt.Sprintf("%s-%d-%d",
		utils.TransactionIDPrefix, userID, time.Now().UnixMilli())

	payment.Status = models.PaymentStatusInitiated
	utils.LogInfo("Transaction initiated with ID: %s", payment.TransactionID)

	if amount > utils.MaxPaymentAmount {
		payment.Status = models.PaymentStatusFailed
		payment.Remarks = utils.RemarkAmountExceeded
	} else {
		payment.Status, payment.Remarks = s.outcome.Decide(amount)
	}
	utils.LogTransaction(payment.TransactionID, payment.Status, payment.Remarks)

	if err := s.payments.Save(payment); err != nil {
		return nil, err
	}
	utils.LogInfo("Payment saved with ID: %d, Status: %s", payment.ID, payment.Status)

	return payment, nil
}

// GetAll returns every payment in insertion order.
func (s *PaymentService) GetAll() ([]models.Payment, error) {
	return s.payments.FindAll()
}

// GetByID returns a single payment or ErrPaymentNotFound.
func (s *PaymentService) GetByID(id uint) (*models.Payment, error) {
	return s.payments.FindByID(id)
}

// GetByUserID returns the payments for a user; an unknown user simply
// gets an empty list.
func (s *PaymentService) GetByUserID(userID uint) ([]models.Payment, error) {
	return s.payments.FindByUserID(userID)
}

// Refund transitions a SUCCESS payment to REFUNDED. Any other status,
// including an earlier refund, fails with ErrInvalidPaymentState.
func (s *PaymentService) Refund(id uint) (*models.Payment, error) {
	utils.LogInfo("Processing refund for payment ID: %d", id)

	payment, err := s.payments.FindByID(id)
	if err != nil {
		return nil, err
	}

	if payment.Status != models.PaymentStatusSuccess {
		utils.LogError("Refund rejected: payment %d has status %s", id, payment.Status)
		return nil, ErrInvalidPaymentState
	}

	payment.Status = models.PaymentStatusRefunded
	payment.Remarks = utils.RemarkPaymentRefunded
	if err := s.payments.Save(payment); err != nil {
		return nil, err
	}

	utils.LogInfo("Payment %d refunded successfully", id)
	return payment, nil
}
