package service

import (
	"crypto/subtle"

	"github.com/soesapp/soes-eventos-backend/internal/config"
	"github.com/soesapp/soes-eventos-backend/internal/models"
	"github.com/soesapp/soes-eventos-backend/pkg/bcrypt"
	"github.com/soesapp/soes-eventos-backend/pkg/jwt"
	"go.uber.org/zap"
)

// AuthService checks the single shared organizer credential and issues the
// admin session token. There are no user accounts; the credential comes
// from the environment.
type AuthService struct {
	username     string
	passwordHash string
	tokens       *jwt.Manager
	logger       *zap.Logger
}

func NewAuthService(cfg config.AdminConfig, tokens *jwt.Manager, logger *zap.Logger) (*AuthService, error) {
	// Hash at startup so login never compares plaintext.
	hash, err := bcrypt.HashPassword(cfg.Password)
	if err != nil {
		return nil, err
	}

	return &AuthService{
		username:     cfg.Username,
		passwordHash: hash,
		tokens:       tokens,
		logger:       logger,
	}, nil
}

// Login validates the credential pair and returns a session token. Wrong
// username and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.username)) == 1
	passErr := bcrypt.ComparePassword(s.passwordHash, req.Password)
	if !userOK || passErr != nil {
		s.logger.Warn("failed admin login attempt", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAdminToken(s.username)
	if err != nil {
		return nil, err
	}

	s.logger.Info("admin logged in")
	return &models.AuthResponse{Token: token}, nil
}
