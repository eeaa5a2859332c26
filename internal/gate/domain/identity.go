package domain

// IdentityKind distinguishes the reserved operator identity from invited
// users resolved through the store.
type IdentityKind int

const (
	// IdentityInvited is a regular invited user backed by an InvitedUser row.
	IdentityInvited IdentityKind = iota
	// IdentitySystem is the reserved operator identity. It has no InvitedUser
	// row, is always considered active, and is exempt from access logging.
	IdentitySystem
)

// SystemIdentityID is the subject the operator credential resolves to.
const SystemIdentityID = "admin"

// Identity is the authenticated caller produced by the session guard.
type Identity struct {
	Kind  IdentityKind
	ID    string
	Email string
	Name  string
}

// NewSystemIdentity returns the reserved operator identity.
func NewSystemIdentity() Identity {
	return Identity{
		Kind: IdentitySystem,
		ID:   SystemIdentityID,
		Name: "Administrator",
	}
}

// NewInvitedIdentity projects an invited user into an authenticated identity.
func NewInvitedIdentity(u InvitedUser) Identity {
	return Identity{
		Kind:  IdentityInvited,
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}

// IsSystem reports whether the identity is the reserved operator identity.
func (i Identity) IsSystem() bool { return i.Kind == IdentitySystem }
