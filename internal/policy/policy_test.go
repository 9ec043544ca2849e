package policy

import (
	"testing"

	"fieldtrack/internal/apperrors"
	users_enums "fieldtrack/internal/features/users/enums"

	"github.com/stretchr/testify/assert"
)

func Test_Authorize_EmptyRequirement_AlwaysAllows(t *testing.T) {
	assert.NoError(t, Authorize(users_enums.UserRoleMember, nil))
	assert.NoError(t, Authorize(users_enums.UserRoleMember, []users_enums.UserRole{}))
	// Even an unresolvable role passes when nothing is required.
	assert.NoError(t, Authorize("ghost", nil))
}

func Test_Authorize_HigherRankSatisfiesLowerRequirement(t *testing.T) {
	assert.NoError(t, Require(users_enums.UserRoleAdmin, users_enums.UserRoleMember))
	assert.NoError(t, Require(users_enums.UserRoleAdmin, users_enums.UserRoleManager))
	assert.NoError(t, Require(users_enums.UserRoleManager, users_enums.UserRoleMember))
	assert.NoError(t, Require(users_enums.UserRoleMember, users_enums.UserRoleMember))
}

func Test_Authorize_LowerRankFails_WithPermissionDenied(t *testing.T) {
	err := Require(users_enums.UserRoleMember, users_enums.UserRoleManager)
	assert.True(t, apperrors.IsKind(err, apperrors.KindPermissionDenied))

	err = Require(users_enums.UserRoleManager, users_enums.UserRoleAdmin)
	assert.True(t, apperrors.IsKind(err, apperrors.KindPermissionDenied))
}

func Test_Authorize_AnyRequiredRoleIsEnough(t *testing.T) {
	required := []users_enums.UserRole{users_enums.UserRoleAdmin, users_enums.UserRoleMember}

	assert.NoError(t, Authorize(users_enums.UserRoleMember, required))
}

func Test_Authorize_UnresolvableActorRole_FailsWithPolicyNotPermissionDenied(t *testing.T) {
	err := Require("supervisor", users_enums.UserRoleMember)

	assert.True(t, apperrors.IsKind(err, apperrors.KindPolicy))
	assert.False(t, apperrors.IsKind(err, apperrors.KindPermissionDenied))
}

func Test_Authorize_EmptyActorRole_FailsWithPolicy(t *testing.T) {
	err := Require("", users_enums.UserRoleMember)

	assert.True(t, apperrors.IsKind(err, apperrors.KindPolicy))
}
