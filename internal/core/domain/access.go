package domain

// Requirement is a capability a caller must hold for an operation.
// Requirements only answer yes/no for a resolved principal; the guard
// decides how anonymity and denial surface to callers.
type Requirement interface {
	Allows(p *Principal) bool
}

type roleRequirement struct {
	role Role
}

func (r roleRequirement) Allows(p *Principal) bool {
	return p.HasRole(r.role)
}

// HasRole requires the principal to hold the given role
func HasRole(role Role) Requirement {
	return roleRequirement{role: role}
}

type ownerOrRoleRequirement struct {
	ownerID string
	role    Role
}

func (r ownerOrRoleRequirement) Allows(p *Principal) bool {
	if p.IsAnonymous() {
		return false
	}
	return p.ID == r.ownerID || p.HasRole(r.role)
}

// OwnerOr requires the principal to own the target resource or hold the
// given role (typically RoleAdmin, which overrides ownership scoping)
func OwnerOr(ownerID string, role Role) Requirement {
	return ownerOrRoleRequirement{ownerID: ownerID, role: role}
}
