package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Charan908515/book-credit-exchange/internal/domain"
	"github.com/Charan908515/book-credit-exchange/internal/logger"
	"github.com/Charan908515/book-credit-exchange/internal/repository"
	"github.com/Charan908515/book-credit-exchange/internal/security"
)

type authService struct {
	userRepo       repository.UserRepository
	emailSvc       EmailService
	tokens         security.TokenManager
	initialCredits int32
	otpExpiry      time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	emailSvc EmailService,
	tokens security.TokenManager,
	initialCredits int32,
	otpExpiryMinutes int,
) AuthService {
	return &authService{
		userRepo:       userRepo,
		emailSvc:       emailSvc,
		tokens:         tokens,
		initialCredits: initialCredits,
		otpExpiry:      time.Duration(otpExpiryMinutes) * time.Minute,
	}
}

func (s *authService) RequestOTP(ctx context.Context, username, email, password string) error {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))
	if username == "" {
		return domain.NewValidationError("username", "must not be empty")
	}
	if email == "" || !strings.Contains(email, "@") {
		return domain.NewValidationError("email", "must be a valid address")
	}
	if len(password) < 8 {
		return domain.NewValidationError("password", "must be at least 8 characters")
	}

	// Reject taken identities before emailing anything.
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return domain.ErrDuplicateUser
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return domain.ErrDuplicateUser
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	code, err := generateOTPCode()
	if err != nil {
		return fmt.Errorf("failed to generate verification code: %w", err)
	}

	reg := &domain.PendingRegistration{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		OTPCode:      code,
		ExpiresAt:    time.Now().Add(s.otpExpiry).Format(time.RFC3339),
	}
	if err := s.userRepo.UpsertPendingRegistration(ctx, reg); err != nil {
		return err
	}

	if err := s.emailSvc.SendOTP(ctx, email, username, code); err != nil {
		logger.Error("Failed to send OTP email", "email", email, "error", err)
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}

func (s *authService) VerifyOTP(ctx context.Context, email, code string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	reg, err := s.userRepo.GetPendingRegistration(ctx, email)
	if err != nil {
		return nil, err
	}

	expiresAt, err := time.Parse(time.RFC3339, reg.ExpiresAt)
	if err != nil {
		return nil, err
	}
	if time.Now().After(expiresAt) || reg.OTPCode != code {
		return nil, domain.ErrInvalidOTP
	}

	user := &domain.User{
		Username:     reg.Username,
		Email:        reg.Email,
		PasswordHash: reg.PasswordHash,
	}
	if err := s.userRepo.CreateWithGrant(ctx, user, s.initialCredits); err != nil {
		return nil, err
	}

	if err := s.userRepo.DeletePendingRegistration(ctx, email); err != nil {
		// The user exists; a leftover staging row only blocks re-registration
		// of the same email, which is correct anyway.
		logger.Warn("Failed to delete pending registration", "email", email, "error", err)
	}

	logger.Info("User registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrUnauthorized
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrUnauthorized
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// generateOTPCode returns six uniformly random decimal digits.
func generateOTPCode() (string, error) {
	digits := make([]byte, 0, 6)
	buf := make([]byte, 8)
	for len(digits) < 6 {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			// Reject bytes >= 250 so each digit stays uniform.
			if b >= 250 {
				continue
			}
			digits = append(digits, '0'+b%10)
			if len(digits) == 6 {
				break
			}
		}
	}
	return string(digits), nil
}
