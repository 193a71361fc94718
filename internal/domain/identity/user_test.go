package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	companyID := uuid.New()

	t.Run("creates user with hashed password", func(t *testing.T) {
		user, err := NewUser(companyID, "Joao@Example.com", "s3cret-pass", "João", "Silva", RoleCompanyUser)

		require.NoError(t, err)
		assert.Equal(t, "joao@example.com", user.Email)
		assert.Equal(t, companyID, user.CompanyID)
		assert.Equal(t, RoleCompanyUser, user.Role)
		assert.True(t, user.Active)
		assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
		assert.True(t, user.VerifyPassword("s3cret-pass"))
		assert.False(t, user.VerifyPassword("wrong"))
	})

	t.Run("fails without company", func(t *testing.T) {
		_, err := NewUser(uuid.Nil, "a@b.com", "s3cret-pass", "A", "B", RoleAdmin)
		assert.Error(t, err)
	})

	t.Run("fails with invalid email", func(t *testing.T) {
		_, err := NewUser(companyID, "not-an-email", "s3cret-pass", "A", "B", RoleAdmin)
		assert.Error(t, err)
	})

	t.Run("fails with short password", func(t *testing.T) {
		_, err := NewUser(companyID, "a@b.com", "short", "A", "B", RoleAdmin)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least 8")
	})

	t.Run("fails with invalid role", func(t *testing.T) {
		_, err := NewUser(companyID, "a@b.com", "s3cret-pass", "A", "B", Role("superuser"))
		assert.Error(t, err)
	})
}

func TestUserCanLogin(t *testing.T) {
	user, err := NewUser(uuid.New(), "a@b.com", "s3cret-pass", "A", "B", RoleCompanyUser)
	require.NoError(t, err)

	assert.True(t, user.CanLogin())

	user.Deactivate()
	assert.False(t, user.CanLogin())

	user.Activate()
	assert.True(t, user.CanLogin())
}

func TestUserFullName(t *testing.T) {
	user, err := NewUser(uuid.New(), "a@b.com", "s3cret-pass", "Maria", "Souza", RoleAccountant)
	require.NoError(t, err)

	assert.Equal(t, "Maria Souza", user.FullName())
}
