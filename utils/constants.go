package utils

import "time"

// Application constants
const (
	// Application name
	AppName = "PayFlow"

	// Application version
	AppVersion = "1.0.0"

	// Default port
	DefaultPort = "8081"

	// Default database host
	DefaultDBHost = "localhost"

	// Default database port
	DefaultDBPort = "5432"

	// Default database name
	DefaultDBName = "payflow"

	// Default database user
	DefaultDBUser = "postgres"

	// Default database password
	DefaultDBPassword = "postgres"

	// JWT token expiration
	JWTExpiration = 24 * time.Hour

	// Transaction ID prefix, final format PF-<userId>-<epochMillis>
	TransactionIDPrefix = "PF"

	// Maximum amount accepted for a single payment, any currency
	MaxPaymentAmount = 100000.0

	// Probability that an in-limit payment resolves to SUCCESS
	PaymentSuccessRate = 0.75

	// Minimum password length
	MinPasswordLength = 8

	// Maximum password length
	MaxPasswordLength = 32
)

// Error messages
const (
	ErrInvalidCredentials = "Invalid credentials"
	ErrInvalidToken       = "Please login for access"
	ErrInternalServer     = "Internal server error"
)

// Payment remarks
const (
	RemarkPaymentSuccess  = "Payment processed successfully"
	RemarkPaymentFailed   = "Payment failed due to insufficient funds or technical error"
	RemarkPaymentRefunded = "Payment refunded successfully"
	RemarkAmountExceeded  = "Payment amount exceeds maximum allowed limit"
)
