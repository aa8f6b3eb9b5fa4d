package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/payflow-dev/payflow/controllers"
	"github.com/payflow-dev/payflow/models"
	"github.com/payflow-dev/payflow/routes"
	"github.com/payflow-dev/payflow/services"

	"github.com/gin-gonic/gin"
)

// fakeUserStore implements services.UserRepository in memory.
type fakeUserStore struct {
	nextID uint
	users  map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{nextID: 1, users: make(map[string]models.User)}
}

func (s *fakeUserStore) Create(user *models.User) error {
	if _, exists := s.users[user.Username]; exists {
		return services.ErrDuplicateUser
	}
	user.ID = s.nextID
	s.nextID++
	s.users[user.Username] = *user
	return nil
}

func (s *fakeUserStore) FindByUsername(username string) (*models.User, error) {
	user, ok := s.users[username]
	if !ok {
		return nil, services.ErrUserNotFound
	}
	return &user, nil
}

// fakeLedger implements services.PaymentRepository in memory.
type fakeLedger struct {
	nextID   uint
	order    []uint
	payments map[uint]models.Payment
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{nextID: 1, payments: make(map[uint]models.Payment)}
}

func (l *fakeLedger) Save(payment *models.Payment) error {
	if payment.ID == 0 {
		payment.ID = l.nextID
		l.nextID++
		l.order = append(l.order, payment.ID)
	}
	l.payments[payment.ID] = *payment
	return nil
}

func (l *fakeLedger) FindByID(id uint) (*models.Payment, error) {
	payment, ok := l.payments[id]
	if !ok {
		return nil, services.ErrPaymentNotFound
	}
	return &payment, nil
}

func (l *fakeLedger) FindAll() ([]models.Payment, error) {
	all := make([]models.Payment, 0, len(l.order))
	for _, id := range l.order {
		all = append(all, l.payments[id])
	}
	return all, nil
}

func (l *fakeLedger) FindByUserID(userID uint) ([]models.Payment, error) {
	matched := make([]models.Payment, 0)
	for _, id := range l.order {
		if l.payments[id].UserID == userID {
			matched = append(matched, l.payments[id])
		}
	}
	return matched, nil
}

// fixedOutcome resolves every in-limit payment to the configured status.
type fixedOutcome struct {
	status  models.PaymentStatus
	remarks string
}

func (f fixedOutcome) Decide(amount float64) (models.PaymentStatus, string) {
	return f.status, f.remarks
}

// testEnv bundles the wired router and its collaborators.
type testEnv struct {
	router *gin.Engine
	tokens *services.TokenService
}

func newTestEnv(t *testing.T, outcome services.OutcomeDecider) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := services.NewTokenService("test-secret", time.Hour)
	authService := services.NewAuthService(newFakeUserStore(), tokens)
	paymentService := services.NewPaymentService(newFakeLedger(), outcome)

	router := routes.SetupRouter(
		controllers.NewAuthController(authService),
		controllers.NewPaymentController(paymentService),
		tokens,
	)
	return &testEnv{router: router, tokens: tokens}
}

// bearerToken issues a valid token for the given username.
func (e *testEnv) bearerToken(t *testing.T, username string) string {
	t.Helper()
	token, err := e.tokens.Issue(username)
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}
	return "Bearer " + token
}

// doJSON performs a JSON request against the test router.
func (e *testEnv) doJSON(t *testing.T, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
	}

	req, err := http.NewRequest(method, path, &buf)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// requireUnmarshalList unmarshals a JSON array response body.
func requireUnmarshalList(t *testing.T, data []byte, out *[]map[string]interface{}) {
	t.Helper()
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("Failed to unmarshal response list %q: %v", string(data), err)
	}
}

// decodeBody unmarshals a JSON response body into a map.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to unmarshal response body %q: %v", w.Body.String(), err)
	}
	return body
}
