package auth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yuzuhara/survey-admin-api/internal/models"
)

func TestRegistry_AdminHoldsAllRights(t *testing.T) {
	registry := NewRegistry()

	for _, perm := range []Permission{
		PermGetUsers, PermManageUsers,
		PermGetTeams, PermManageTeams,
		PermGetForms, PermManageForms,
		PermGetQuestions, PermManageQuestions,
	} {
		require.True(t, registry.Allows(models.RoleAdmin, perm), "admin should hold %s", perm)
		require.False(t, registry.Allows(models.RoleUser, perm), "user should not hold %s", perm)
	}
}

func TestRegistry_UnknownRoleHasNoRights(t *testing.T) {
	registry := NewRegistry()
	require.False(t, registry.Allows(models.UserRole("superuser"), PermGetTeams))
}

func TestTokenRoundTrip(t *testing.T) {
	const secret = "test-secret"

	token, err := GenerateToken(42, models.RoleAdmin, secret)
	require.NoError(t, err)

	claims, err := ParseToken(token, secret)
	require.NoError(t, err)
	require.EqualValues(t, 42, claims.UserID)
	require.Equal(t, models.RoleAdmin, claims.Role)

	_, err = ParseToken(token, "wrong-secret")
	require.Error(t, err)
}
