package services

import (
	"errors"
	"strings"
	"testing"

	"tracklytic/internal/config"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

// PasswordServiceTestSuite defines the test suite for PasswordService
type PasswordServiceTestSuite struct {
	suite.Suite
	service PasswordServiceInterface
}

func (s *PasswordServiceTestSuite) SetupTest() {
	s.service = NewPasswordService(config.SecurityConfig{
		BCryptCost:          bcrypt.MinCost,
		PasswordMinLength:   8,
		RequireUppercase:    true,
		RequireLowercase:    true,
		RequireNumbers:      true,
		RequireSpecialChars: true,
	})
}

func TestPasswordServiceSuite(t *testing.T) {
	suite.Run(t, new(PasswordServiceTestSuite))
}

func (s *PasswordServiceTestSuite) TestValidatePassword_ValidPassword() {
	s.NoError(s.service.ValidatePassword("Secure123!"))
}

func (s *PasswordServiceTestSuite) TestValidatePassword_Empty() {
	s.ErrorIs(s.service.ValidatePassword(""), ErrPasswordEmpty)
}

func (s *PasswordServiceTestSuite) TestValidatePassword_TooShort() {
	err := s.service.ValidatePassword("Sh0rt!")
	s.Error(err)
	s.Equal("password must be at least 8 characters", err.Error())

	var tooShort ErrPasswordTooShort
	s.True(errors.As(err, &tooShort))
	s.Equal(8, tooShort.Min)
}

func (s *PasswordServiceTestSuite) TestValidatePassword_TooLong() {
	err := s.service.ValidatePassword("Aa1!" + strings.Repeat("x", MaxPasswordLength))
	s.ErrorIs(err, ErrPasswordTooLong)
}

func (s *PasswordServiceTestSuite) TestValidatePassword_CharacterClasses() {
	cases := map[string]error{
		"secure123!":  ErrPasswordNoUppercase,
		"SECURE123!":  ErrPasswordNoLowercase,
		"SecurePass!": ErrPasswordNoNumber,
		"Secure1234":  ErrPasswordNoSpecial,
	}
	for password, expected := range cases {
		s.ErrorIs(s.service.ValidatePassword(password), expected, password)
	}
}

func (s *PasswordServiceTestSuite) TestValidatePassword_RelaxedPolicy() {
	relaxed := NewPasswordService(config.SecurityConfig{BCryptCost: bcrypt.MinCost, PasswordMinLength: 6})
	s.NoError(relaxed.ValidatePassword("simple"))
	s.Error(relaxed.ValidatePassword("short"))
}

func (s *PasswordServiceTestSuite) TestNewPasswordService_Defaults() {
	svc := NewPasswordService(config.SecurityConfig{BCryptCost: 99}).(*PasswordService)
	s.Equal(bcrypt.DefaultCost, svc.policy.BCryptCost)
	s.Equal(8, svc.policy.PasswordMinLength)
}

func (s *PasswordServiceTestSuite) TestHashPassword_RoundTrip() {
	hash, err := s.service.HashPassword("Secure123!")
	s.Require().NoError(err)
	s.NotEqual("Secure123!", hash)
	s.True(strings.HasPrefix(hash, "$2a$"))

	s.True(s.service.ComparePassword("Secure123!", hash))
	s.False(s.service.ComparePassword("Secure123?", hash))
}

func (s *PasswordServiceTestSuite) TestHashPassword_UniqueSalts() {
	first, err := s.service.HashPassword("Secure123!")
	s.Require().NoError(err)
	second, err := s.service.HashPassword("Secure123!")
	s.Require().NoError(err)
	s.NotEqual(first, second)
}

func (s *PasswordServiceTestSuite) TestHashPassword_RejectsWeakPassword() {
	hash, err := s.service.HashPassword("weak")
	s.Error(err)
	s.Empty(hash)
	s.Contains(err.Error(), "password validation failed")
}

func (s *PasswordServiceTestSuite) TestComparePassword_InvalidHash() {
	s.False(s.service.ComparePassword("Secure123!", "not-a-hash"))
}
