package repository

import (
	"errors"

	"github.com/payflow-dev/payflow/models"
	"github.com/payflow-dev/payflow/services"

	"gorm.io/gorm"
)

// GormPaymentRepository is the Postgres-backed payment ledger.
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a payment repository on the given database.
func NewPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// Save inserts the payment, or updates it when it already has an ID.
func (r *GormPaymentRepository) Save(payment *models.Payment) error {
	return r.db.Save(payment).Error
}

// FindByID loads a payment or returns ErrPaymentNotFound.
func (r *GormPaymentRepository) FindByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// FindAll returns every payment in insertion order. The slice is
// always non-nil so an empty ledger serializes as [] rather than null.
func (r *GormPaymentRepository) FindAll() ([]models.Payment, error) {
	payments := make([]models.Payment, 0)
	if err := r.db.Order("id asc").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// FindByUserID returns the payments for a user, possibly empty.
func (r *GormPaymentRepository) FindByUserID(userID uint) ([]models.Payment, error) {
	payments := make([]models.Payment, 0)
	if err := r.db.Where("user_id = ?", userID).Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
