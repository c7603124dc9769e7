package services

import (
	"errors"
	"fmt"
	"regexp"

	"tracklytic/internal/config"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordLength is the bcrypt input limit
const MaxPasswordLength = 72

var (
	ErrPasswordEmpty       = errors.New("password cannot be empty")
	ErrPasswordTooLong     = fmt.Errorf("password must not exceed %d characters", MaxPasswordLength)
	ErrPasswordNoUppercase = errors.New("password must contain at least one uppercase letter")
	ErrPasswordNoLowercase = errors.New("password must contain at least one lowercase letter")
	ErrPasswordNoNumber    = errors.New("password must contain at least one number")
	ErrPasswordNoSpecial   = errors.New("password must contain at least one special character")

	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	numberRegex    = regexp.MustCompile(`[0-9]`)
	specialRegex   = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{}|;:,.<>?]`)
)

// ErrPasswordTooShort is returned when a password is below the configured minimum
type ErrPasswordTooShort struct {
	Min int
}

func (e ErrPasswordTooShort) Error() string {
	return fmt.Sprintf("password must be at least %d characters", e.Min)
}

// PasswordService handles password hashing and the configured password policy
type PasswordService struct {
	policy config.SecurityConfig
}

func NewPasswordService(policy config.SecurityConfig) PasswordServiceInterface {
	if policy.BCryptCost < bcrypt.MinCost || policy.BCryptCost > bcrypt.MaxCost {
		policy.BCryptCost = bcrypt.DefaultCost
	}
	if policy.PasswordMinLength <= 0 {
		policy.PasswordMinLength = 8
	}
	return &PasswordService{policy: policy}
}

// ValidatePassword checks password against the policy
func (ps *PasswordService) ValidatePassword(password string) error {
	if password == "" {
		return ErrPasswordEmpty
	}

	if len(password) < ps.policy.PasswordMinLength {
		return ErrPasswordTooShort{Min: ps.policy.PasswordMinLength}
	}

	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}

	if ps.policy.RequireUppercase && !uppercaseRegex.MatchString(password) {
		return ErrPasswordNoUppercase
	}

	if ps.policy.RequireLowercase && !lowercaseRegex.MatchString(password) {
		return ErrPasswordNoLowercase
	}

	if ps.policy.RequireNumbers && !numberRegex.MatchString(password) {
		return ErrPasswordNoNumber
	}

	if ps.policy.RequireSpecialChars && !specialRegex.MatchString(password) {
		return ErrPasswordNoSpecial
	}

	return nil
}

// HashPassword validates and hashes a password using bcrypt
func (ps *PasswordService) HashPassword(password string) (string, error) {
	if err := ps.ValidatePassword(password); err != nil {
		return "", fmt.Errorf("password validation failed: %w", err)
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), ps.policy.BCryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashedBytes), nil
}

// ComparePassword reports whether password matches hash
func (ps *PasswordService) ComparePassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
