package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name   string
		user   User
		errMsg string
	}{
		{name: "valid user", user: User{Email: "ada@example.com", Username: "ada", PhoneNumber: "+2348012345678", Age: 30}},
		{name: "missing email", user: User{Username: "ada"}, errMsg: "email is required"},
		{name: "invalid email", user: User{Email: "ada", Username: "ada"}, errMsg: "invalid email format"},
		{name: "missing username", user: User{Email: "ada@example.com", Username: "  "}, errMsg: "username is required"},
		{name: "invalid phone", user: User{Email: "ada@example.com", Username: "ada", PhoneNumber: "call me"}, errMsg: "invalid phone number"},
		{name: "negative age", user: User{Email: "ada@example.com", Username: "ada", Age: -1}, errMsg: "age must be between 0 and 150"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.errMsg)
		})
	}
}

func TestUser_Lockout(t *testing.T) {
	now := time.Date(2024, 12, 15, 10, 0, 0, 0, time.UTC)
	u := &User{}

	for i := 0; i < 4; i++ {
		assert.False(t, u.RegisterFailedLogin(5, 15*time.Minute, now))
	}
	assert.False(t, u.IsLocked(now))

	assert.True(t, u.RegisterFailedLogin(5, 15*time.Minute, now))
	assert.True(t, u.IsLocked(now.Add(time.Minute)))
	assert.False(t, u.IsLocked(now.Add(16*time.Minute)))

	u.ResetFailedAttempts()
	assert.Zero(t, u.FailedLoginAttempts)
	assert.Nil(t, u.LockedUntil)

	u.UpdateLastLogin(now)
	assert.Equal(t, now, *u.LastLoginAt)
}
