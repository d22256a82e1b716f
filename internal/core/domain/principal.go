package domain

import "time"

// Role defines a named capability group
type Role string

const (
	RoleAdmin Role = "ADMIN" // Full access, including other owners' resources
	RoleUser  Role = "USER"  // Access to own resources only
)

// Account is the durable credential record backing a principal.
// Owned by the credential store; this core only ever rewrites PasswordHash.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"` // Never serialize
	Roles        []Role    `json:"roles"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole checks whether the account holds the given role
func (a *Account) HasRole(role Role) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// AccountSummary provides a safe view of account data (no password hash)
type AccountSummary struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Roles  []Role `json:"roles"`
	Active bool   `json:"active"`
}

// ToSummary converts an Account to AccountSummary
func (a *Account) ToSummary() *AccountSummary {
	return &AccountSummary{
		ID:     a.ID,
		Email:  a.Email,
		Name:   a.Name,
		Roles:  a.Roles,
		Active: a.Active,
	}
}

// Principal is the resolved identity of the current caller.
// Immutable once resolved for a request; the zero-value-like Anonymous()
// principal represents "no verified identity" and is a normal outcome,
// not an error.
type Principal struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Roles    []Role `json:"roles"`
}

// Anonymous returns the principal used when no identity could be resolved
func Anonymous() *Principal {
	return &Principal{}
}

// IsAnonymous reports whether the principal carries no verified identity
func (p *Principal) IsAnonymous() bool {
	return p == nil || p.ID == ""
}

// HasRole checks whether the principal holds the given role
func (p *Principal) HasRole(role Role) bool {
	if p == nil {
		return false
	}
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin checks if the principal has admin privileges
func (p *Principal) IsAdmin() bool {
	return p.HasRole(RoleAdmin)
}
