package repositories

import (
	"testing"
	"time"

	"tracklytic/internal/database"
	"tracklytic/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestUserRepository(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}

type UserRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo UserRepositoryInterface
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewUserRepository(s.db.DB)
}

func (s *UserRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *UserRepositorySuite) newUser(email string) *models.User {
	return &models.User{
		Email:        email,
		Username:     "ada",
		PasswordHash: "hashed_password",
	}
}

func (s *UserRepositorySuite) TestUserRepository_Create() {
	user := s.newUser("Ada@Example.com")

	err := s.repo.Create(user)
	s.NoError(err)
	s.NotEqual(uuid.Nil, user.ID)
	s.Equal("ada@example.com", user.Email)
	s.NotZero(user.CreatedAt)
}

func (s *UserRepositorySuite) TestUserRepository_CreateDuplicateEmail() {
	s.Require().NoError(s.repo.Create(s.newUser("dup@example.com")))

	err := s.repo.Create(s.newUser("DUP@example.com"))
	s.Equal(ErrUserAlreadyExists, err)
}

func (s *UserRepositorySuite) TestUserRepository_CreateNil() {
	s.Error(s.repo.Create(nil))
}

func (s *UserRepositorySuite) TestUserRepository_GetByEmail() {
	user := s.newUser("test@example.com")
	s.Require().NoError(s.repo.Create(user))

	found, err := s.repo.GetByEmail("  TEST@example.com ")
	s.NoError(err)
	s.Equal(user.ID, found.ID)

	_, err = s.repo.GetByEmail("nonexistent@example.com")
	s.Equal(ErrUserNotFound, err)
}

func (s *UserRepositorySuite) TestUserRepository_GetByID() {
	user := s.newUser("byid@example.com")
	s.Require().NoError(s.repo.Create(user))

	found, err := s.repo.GetByID(user.ID)
	s.NoError(err)
	s.Equal(user.Email, found.Email)

	_, err = s.repo.GetByID(uuid.New())
	s.Equal(ErrUserNotFound, err)
}

func (s *UserRepositorySuite) TestUserRepository_Update() {
	user := s.newUser("update@example.com")
	s.Require().NoError(s.repo.Create(user))

	user.Username = "lovelace"
	user.PhoneNumber = "+2348012345678"
	s.NoError(s.repo.Update(user))

	found, err := s.repo.GetByID(user.ID)
	s.NoError(err)
	s.Equal("lovelace", found.Username)
	s.Equal("+2348012345678", found.PhoneNumber)
}

func (s *UserRepositorySuite) TestUserRepository_UpdateLoginState() {
	user := s.newUser("lock@example.com")
	s.Require().NoError(s.repo.Create(user))

	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		user.RegisterFailedLogin(5, 15*time.Minute, now)
	}
	s.NoError(s.repo.UpdateLoginState(user))

	found, err := s.repo.GetByID(user.ID)
	s.NoError(err)
	s.Equal(5, found.FailedLoginAttempts)
	s.Require().NotNil(found.LockedUntil)
	s.True(found.IsLocked(now))

	found.ResetFailedAttempts()
	found.UpdateLastLogin(now)
	s.NoError(s.repo.UpdateLoginState(found))

	reloaded, err := s.repo.GetByID(user.ID)
	s.NoError(err)
	s.Zero(reloaded.FailedLoginAttempts)
	s.Nil(reloaded.LockedUntil)
	s.NotNil(reloaded.LastLoginAt)
}

func (s *UserRepositorySuite) TestUserRepository_UpdateLoginStateUnknownUser() {
	err := s.repo.UpdateLoginState(&models.User{ID: uuid.New()})
	s.Equal(ErrUserNotFound, err)
}
