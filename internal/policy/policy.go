package policy

import (
	"strings"

	"fieldtrack/internal/apperrors"
	users_enums "fieldtrack/internal/features/users/enums"
)

// Authorize decides whether an actor role satisfies a minimum-role
// requirement. Access is granted when the actor's rank is greater than
// or equal to the rank of at least one required role, so requiring
// "manager" admits managers and admins while requiring "member" admits
// everyone. An empty requirement list always allows.
//
// Every workflow operation calls this exactly once before mutating
// state.
func Authorize(actorRole users_enums.UserRole, requiredRoles []users_enums.UserRole) error {
	if len(requiredRoles) == 0 {
		return nil
	}

	// A missing or unknown role means the actor record itself is
	// invalid, not that the actor is merely under-privileged.
	if !actorRole.IsValid() {
		return apperrors.Policy("actor has no resolvable role")
	}

	for _, required := range requiredRoles {
		if actorRole.Rank() >= required.Rank() {
			return nil
		}
	}

	return apperrors.PermissionDenied("insufficient role: " + requiredList(requiredRoles) + " required")
}

// Require is the common single-role form of Authorize.
func Require(actorRole users_enums.UserRole, minimum users_enums.UserRole) error {
	return Authorize(actorRole, []users_enums.UserRole{minimum})
}

func requiredList(roles []users_enums.UserRole) string {
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}
	return strings.Join(names, " or ")
}
