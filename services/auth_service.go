package services

import (
	"time"

	"github.com/payflow-dev/payflow/models"
	"github.com/payflow-dev/payflow/utils"

	"golang.org/x/crypto/bcrypt"
)

// UserRepository abstracts the credential store.
type UserRepository interface {
	Create(user *models.User) error
	FindByUsername(username string) (*models.User, error)
}

// AuthService handles registration and login on top of the credential
// store and the token issuer.
type AuthService struct {
	users  UserRepository
	tokens *TokenService
}

// NewAuthService wires the auth service with its dependencies.
func NewAuthService(users UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register stores a new user with a bcrypt password hash. A taken
// username fails with ErrDuplicateUser.
func (s *AuthService) Register(username, password string) (*models.User, error) {
	if _, err := s.users.FindByUsername(username); err == nil {
		utils.LogError("Registration rejected - username taken: %s", username)
		return nil, ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  username,
		Password:  string(hash),
		CreatedAt: time.Now(),
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	utils.LogInfo("User registered: %s", username)
	return user, nil
}

// Login checks the credentials and issues a token. An unknown username
// fails with ErrUserNotFound, a wrong password with
// ErrInvalidCredentials; the boundary collapses both into one
// user-facing message.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		utils.LogError("Login failed - user not found: %s", username)
		return "", ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		utils.LogError("Login failed - wrong password for user: %s", username)
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", err
	}

	utils.LogInfo("User logged in: %s", username)
	return token, nil
}
