package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yuzuhara/survey-admin-api/internal/auth"
	"github.com/yuzuhara/survey-admin-api/internal/models"
	"github.com/yuzuhara/survey-admin-api/internal/repository"
)

var ErrInvalidCredentials = errors.New("incorrect email or password")

// AuthService handles registration and token-based login.
type AuthService struct {
	userService *UserService
	userRepo    repository.UserRepository
	jwtSecret   string
}

// NewAuthService creates a new AuthService
func NewAuthService(userService *UserService, userRepo repository.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userService: userService,
		userRepo:    userRepo,
		jwtSecret:   jwtSecret,
	}
}

// RegisterInput represents registration parameters
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     models.UserRole
}

// Register creates a new user account
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	return s.userService.CreateUser(CreateUserInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
	})
}

// Login verifies credentials and issues a bearer token
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Role, s.jwtSecret)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}
