package controllers_test

import (
	"net/http"
	"testing"

	"github.com/payflow-dev/payflow/models"
	"github.com/payflow-dev/payflow/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authHeaders(t *testing.T, env *testEnv) map[string]string {
	return map[string]string{"Authorization": env.bearerToken(t, "alice")}
}

func createPayment(t *testing.T, env *testEnv, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	w := env.doJSON(t, "POST", "/payments", body, authHeaders(t, env))
	require.Equal(t, http.StatusCreated, w.Code)
	return decodeBody(t, w)
}

func TestPayments_RequireAuthentication(t *testing.T) {
	env := successEnv(t)

	paths := []struct {
		method string
		path   string
	}{
		{"POST", "/payments"},
		{"GET", "/payments"},
		{"GET", "/payments/1"},
		{"GET", "/payments/user/1"},
		{"POST", "/payments/1/refund"},
		{"GET", "/payments/1/receipt"},
		{"GET", "/payments/export"},
	}

	for _, tc := range paths {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := env.doJSON(t, tc.method, tc.path, nil, nil)
			require.Equal(t, http.StatusUnauthorized, w.Code)

			body := decodeBody(t, w)
			assert.Equal(t, float64(http.StatusUnauthorized), body["status"])
			assert.NotEmpty(t, body["message"])
			assert.NotZero(t, body["timestamp"])
		})
	}
}

func TestPayments_RejectGarbageToken(t *testing.T) {
	env := successEnv(t)

	w := env.doJSON(t, "GET", "/payments", nil, map[string]string{
		"Authorization": "Bearer not-a-real-token",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreatePayment_Success(t *testing.T) {
	env := successEnv(t)

	body := createPayment(t, env, map[string]interface{}{
		"userId":        1,
		"amount":        100.50,
		"currency":      "USD",
		"paymentMethod": "CREDIT_CARD",
	})

	assert.Equal(t, string(models.PaymentStatusSuccess), body["status"])
	assert.Regexp(t, `^PF-1-\d{13}$`, body["transactionId"])
	assert.NotEmpty(t, body["createdAt"])
	assert.Equal(t, 100.50, body["amount"])
	assert.Equal(t, "USD", body["currency"])
}

func TestCreatePayment_OverLimitFails(t *testing.T) {
	env := successEnv(t)

	body := createPayment(t, env, map[string]interface{}{
		"userId":        1,
		"amount":        150000,
		"currency":      "USD",
		"paymentMethod": "CREDIT_CARD",
	})

	assert.Equal(t, string(models.PaymentStatusFailed), body["status"])
	assert.Equal(t, utils.RemarkAmountExceeded, body["remarks"])
}

func TestCreatePayment_InvalidAmount(t *testing.T) {
	env := successEnv(t)

	for _, amount := range []float64{0, -5} {
		w := env.doJSON(t, "POST", "/payments", map[string]interface{}{
			"userId":        1,
			"amount":        amount,
			"currency":      "USD",
			"paymentMethod": "CREDIT_CARD",
		}, authHeaders(t, env))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestCreatePayment_MissingFields(t *testing.T) {
	env := successEnv(t)

	w := env.doJSON(t, "POST", "/payments", map[string]interface{}{
		"userId": 1,
		"amount": 50,
	}, authHeaders(t, env))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPayment_NotFound(t *testing.T) {
	env := successEnv(t)

	w := env.doJSON(t, "GET", "/payments/999", nil, authHeaders(t, env))
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(http.StatusNotFound), body["status"])
	assert.Contains(t, body["message"], "999")
	assert.NotZero(t, body["timestamp"])
}

func TestGetPayments_ListAndByUser(t *testing.T) {
	env := successEnv(t)

	createPayment(t, env, map[string]interface{}{
		"userId": 1, "amount": 10, "currency": "USD", "paymentMethod": "CARD",
	})
	createPayment(t, env, map[string]interface{}{
		"userId": 2, "amount": 20, "currency": "USD", "paymentMethod": "CARD",
	})

	w := env.doJSON(t, "GET", "/payments", nil, authHeaders(t, env))
	require.Equal(t, http.StatusOK, w.Code)

	var all []map[string]interface{}
	requireUnmarshalList(t, w.Body.Bytes(), &all)
	assert.Len(t, all, 2)

	w = env.doJSON(t, "GET", "/payments/user/1", nil, authHeaders(t, env))
	require.Equal(t, http.StatusOK, w.Code)
	var mine []map[string]interface{}
	requireUnmarshalList(t, w.Body.Bytes(), &mine)
	assert.Len(t, mine, 1)

	// A user with no payments gets an empty list, not an error.
	w = env.doJSON(t, "GET", "/payments/user/42", nil, authHeaders(t, env))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestRefund_Lifecycle(t *testing.T) {
	env := successEnv(t)

	created := createPayment(t, env, map[string]interface{}{
		"userId": 1, "amount": 100, "currency": "USD", "paymentMethod": "CARD",
	})
	require.Equal(t, string(models.PaymentStatusSuccess), created["status"])

	w := env.doJSON(t, "POST", "/payments/1/refund", nil, authHeaders(t, env))
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, string(models.PaymentStatusRefunded), body["status"])
	assert.Equal(t, utils.RemarkPaymentRefunded, body["remarks"])

	// Refunding again fails with the invalid-state error.
	w = env.doJSON(t, "POST", "/payments/1/refund", nil, authHeaders(t, env))
	require.Equal(t, http.StatusBadRequest, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, float64(http.StatusBadRequest), body["status"])
}

func TestRefund_FailedPayment(t *testing.T) {
	env := newTestEnv(t, fixedOutcome{
		status:  models.PaymentStatusFailed,
		remarks: utils.RemarkPaymentFailed,
	})

	created := createPayment(t, env, map[string]interface{}{
		"userId": 1, "amount": 100, "currency": "USD", "paymentMethod": "CARD",
	})
	require.Equal(t, string(models.PaymentStatusFailed), created["status"])

	w := env.doJSON(t, "POST", "/payments/1/refund", nil, authHeaders(t, env))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.doJSON(t, "GET", "/payments/1", nil, authHeaders(t, env))
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, string(models.PaymentStatusFailed), body["status"])
}

func TestRefund_UnknownPayment(t *testing.T) {
	env := successEnv(t)

	w := env.doJSON(t, "POST", "/payments/999/refund", nil, authHeaders(t, env))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReceipt_ReturnsPDF(t *testing.T) {
	env := successEnv(t)

	createPayment(t, env, map[string]interface{}{
		"userId": 1, "amount": 100, "currency": "USD", "paymentMethod": "CARD",
	})

	w := env.doJSON(t, "GET", "/payments/1/receipt", nil, authHeaders(t, env))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.NotZero(t, w.Body.Len())

	w = env.doJSON(t, "GET", "/payments/999/receipt", nil, authHeaders(t, env))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExport_ReturnsSpreadsheet(t *testing.T) {
	env := successEnv(t)

	createPayment(t, env, map[string]interface{}{
		"userId": 1, "amount": 100, "currency": "USD", "paymentMethod": "CARD",
	})

	w := env.doJSON(t, "GET", "/payments/export", nil, authHeaders(t, env))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.NotZero(t, w.Body.Len())
}

func TestServiceInfoEndpoints(t *testing.T) {
	env := successEnv(t)

	for _, path := range []string{"/", "/api", "/health"} {
		w := env.doJSON(t, "GET", path, nil, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
