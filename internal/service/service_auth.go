package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-contact-manager/internal/config"
	"github.com/MKhiriev/go-contact-manager/internal/logger"
	"github.com/MKhiriev/go-contact-manager/internal/store"
	"github.com/MKhiriev/go-contact-manager/internal/validators"
	"github.com/MKhiriev/go-contact-manager/models"
)

// Boot-time seed account. Created on startup when no such user exists so
// a fresh install is usable immediately.
const (
	seedUsername = "rcnj"
	seedPassword = "password"
)

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator enforces the signup rules (username/password minimum lengths).
	validator validators.Validator

	// bcryptCost is the bcrypt work factor used when hashing passwords.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewContactValidator(),
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The username is trimmed of surrounding whitespace, the credentials are
// validated (username ≥ 3 characters, password ≥ 6), the password is
// bcrypt-hashed with the configured cost, and persistence is delegated to
// the UserRepository.
//
// Returns the persisted user (with a storage-assigned UserID) or:
//   - A validation sentinel from the validators package if the credentials
//     fail the signup rules.
//   - store.ErrUsernameAlreadyExists (wrapped) if the username is taken.
func (a *authService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	creds.Username = strings.TrimSpace(creds.Username)
	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Err(err).Str("username", creds.Username).Msg("invalid signup credentials")
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     creds.Username,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// The username is trimmed, the account is looked up by exact match, and
// the supplied password is compared against the stored bcrypt hash.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - store.ErrUserNotFound (wrapped) if the account does not exist.
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	creds.Username = strings.TrimSpace(creds.Username)
	if creds.Username == "" || creds.Password == "" {
		log.Error().Str("username", creds.Username).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(creds.Password)); err != nil {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// SeedDefaultUser creates the default account when it is absent. A
// concurrent or earlier creation of the same username is not an error.
func (a *authService) SeedDefaultUser(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, err := a.userRepository.FindUserByUsername(ctx, seedUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("error checking for seed user: %w", err)
	}

	_, err = a.RegisterUser(ctx, models.Credentials{Username: seedUsername, Password: seedPassword})
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			return nil
		}
		return fmt.Errorf("error creating seed user: %w", err)
	}

	log.Info().Str("username", seedUsername).Msg("seed user created")
	return nil
}
