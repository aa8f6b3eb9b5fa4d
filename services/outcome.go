package services

import (
	"math/rand"

	"github.com/payflow-dev/payflow/models"
	"github.com/payflow-dev/payflow/utils"
)

// OutcomeDecider decides the terminal status of an in-limit payment.
// The production implementation is probabilistic; tests substitute a
// deterministic one. Implementations must be safe for concurrent use,
// one decider is shared by every request.
type OutcomeDecider interface {
	Decide(amount float64) (models.PaymentStatus, string)
}

// RandomOutcomeDecider simulates a payment rail: roughly 75% of
// payments succeed, the rest fail. The draw is not derived from the
// input, so repeating the same create call can yield a different
// outcome each time.
type RandomOutcomeDecider struct{}

// NewRandomOutcomeDecider creates the probabilistic decider.
func NewRandomOutcomeDecider() *RandomOutcomeDecider {
	return &RandomOutcomeDecider{}
}

// Decide draws one uniform sample in [0,1) and resolves the payment.
// The top-level rand functions are used because they serialize access
// to the shared source; concurrent creations may call this at once.
func (d *RandomOutcomeDecider) Decide(amount float64) (models.PaymentStatus, string) {
	if rand.Float64() < utils.PaymentSuccessRate {
		return models.PaymentStatusSuccess, utils.RemarkPaymentSuccess
	}
	return models.PaymentStatusFailed, utils.RemarkPaymentFailed
}
