//go:build unit

package user_test

import (
	"testing"

	"vicqa-tradehub/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	t.Run("success: known roles", func(t *testing.T) {
		for _, s := range []string{"buyer", "vendor", "admin"} {
			role, err := user.NewRole(s)
			require.NoError(t, err)
			assert.Equal(t, s, role.String())
		}
	})

	t.Run("error: unknown role", func(t *testing.T) {
		_, err := user.NewRole("superuser")
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})
}

func TestRole_AtLeast(t *testing.T) {
	assert.True(t, user.RoleAdmin.AtLeast(user.RoleVendor))
	assert.True(t, user.RoleVendor.AtLeast(user.RoleVendor))
	assert.True(t, user.RoleVendor.AtLeast(user.RoleBuyer))
	assert.False(t, user.RoleBuyer.AtLeast(user.RoleVendor))
	assert.False(t, user.Role("superuser").AtLeast(user.RoleBuyer))
	assert.False(t, user.RoleAdmin.AtLeast(user.Role("superuser")))
}
