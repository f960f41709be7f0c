package auth

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/finance-tracker/internal"
)

// UserRepository is the credential store boundary. CreateUser must surface
// internal.ErrDuplicateUsername when the unique index rejects the username.
type UserRepository interface {
	CreateUser(username, passwordHash string) (*User, error)
	GetPasswordForUsername(username string) (passwordHash string, userID int64, err error)
	GetUserByID(userID int64) (*User, error)
}

type Service struct {
	userRepo UserRepository
	tokenGen TokenGenerator
	logger   *slog.Logger

	bcryptCost int
}

func NewService(userRepo UserRepository, tokenGen TokenGenerator, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:   userRepo,
		tokenGen:   tokenGen,
		logger:     logger,
		bcryptCost: bcryptCost,
	}
}

// Register hashes the password (per-call random salt via bcrypt) before the
// user row is persisted, then mints a session token. The plaintext is never
// stored or logged.
func (s *Service) Register(dto SignupDTO) (AuthTokens, error) {
	if err := dto.Validate(); err != nil {
		return AuthTokens{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("password hashing failed", "error", err)
		return AuthTokens{}, internal.NewStoreError("failed to register user", err)
	}

	user, err := s.userRepo.CreateUser(dto.Username, string(hash))
	if err != nil {
		if appErr, ok := internal.IsAppError(err); ok {
			return AuthTokens{}, appErr
		}
		s.logger.Error("failed to persist user", "username", dto.Username, "error", err)
		return AuthTokens{}, internal.NewStoreError("failed to register user", err)
	}

	s.logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	return s.issueTokens(user.ID)
}

// Authenticate verifies credentials and returns a fresh session token.
// Unknown username and wrong password collapse into the same error so the
// response leaks nothing about which one failed.
func (s *Service) Authenticate(dto LoginDTO) (AuthTokens, error) {
	if err := dto.Validate(); err != nil {
		return AuthTokens{}, err
	}

	storedHash, userID, err := s.userRepo.GetPasswordForUsername(dto.Username)
	if err != nil {
		// only the unknown-user case collapses into invalid credentials;
		// a store fault stays a server fault
		if appErr, ok := internal.IsAppError(err); ok {
			if appErr.Code == internal.ErrCodeUserNotFound {
				return AuthTokens{}, internal.ErrInvalidCredentials
			}
			return AuthTokens{}, appErr
		}
		s.logger.Error("credential lookup failed", "error", err)
		return AuthTokens{}, internal.NewStoreError("failed to authenticate user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(dto.Password)); err != nil {
		return AuthTokens{}, internal.ErrInvalidCredentials
	}

	return s.issueTokens(userID)
}

// ValidateAccessToken validates the token and returns its claims.
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGen.ValidateToken(tokenString)
}

// GetUserByID resolves the token subject to a live user record.
func (s *Service) GetUserByID(userID int64) (*User, error) {
	return s.userRepo.GetUserByID(userID)
}

func (s *Service) issueTokens(userID int64) (AuthTokens, error) {
	token, expiresAt, err := s.tokenGen.GenerateAccessToken(userID)
	if err != nil {
		s.logger.Error("token generation failed", "user_id", userID, "error", err)
		return AuthTokens{}, internal.NewStoreError("failed to issue token", err)
	}

	return AuthTokens{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
