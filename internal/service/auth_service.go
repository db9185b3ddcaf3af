package service

import (
	"menu-cms-svc/pkg/logger"
)

// AuthService interface defines admin authentication methods
type AuthService interface {
	Authenticate(password string) bool
}

// authService implements AuthService interface
type authService struct {
	adminPassword string
	logger        *logger.Logger
}

// NewAuthService creates a new auth service for the single shared admin password
func NewAuthService(adminPassword string, logger *logger.Logger) AuthService {
	return &authService{
		adminPassword: adminPassword,
		logger:        logger,
	}
}

// Authenticate compares the submitted password with the configured one byte for byte
func (s *authService) Authenticate(password string) bool {
	if password != s.adminPassword {
		s.logger.Warn("Admin login rejected")
		return false
	}
	s.logger.Info("Admin logged in")
	return true
}
