// Package gate holds the access-control state machine that conditions every
// privileged read, mutation and export. A Gate is either Public or Admin;
// privileged operations consult it and return ErrRestricted while Public,
// as a stable result rather than a panic or a bare HTTP status.
package gate

import "errors"

// State of the gate.
type State int

const (
	// Public is the initial state: only record submission is permitted.
	Public State = iota
	// Admin permits list, search, detail, update, delete, export and stats.
	Admin
)

// ErrRestricted is the stable "access restricted" result returned by
// privileged operations while the gate is Public.
var ErrRestricted = errors.New("access restricted: administrator login required")

// Gate tracks whether the current caller is an authenticated administrator.
// Transition hooks fire on every state change; on the server they drive
// audit logging.
type Gate struct {
	state    State
	adminID  int64
	username string

	onGrant  func(adminID int64, username string)
	onRevoke func()
}

// NewPublic returns a gate in the Public state.
func NewPublic() *Gate {
	return &Gate{state: Public}
}

// NewAdmin returns a gate already granted for a verified admin identity.
// Callers must have validated the identity server-side (a session token
// signature check at minimum) before constructing an Admin gate.
func NewAdmin(adminID int64, username string) *Gate {
	return &Gate{state: Admin, adminID: adminID, username: username}
}

// OnGrant registers a hook fired on a Public -> Admin transition.
func (g *Gate) OnGrant(fn func(adminID int64, username string)) {
	g.onGrant = fn
}

// OnRevoke registers a hook fired on an Admin -> Public transition.
func (g *Gate) OnRevoke(fn func()) {
	g.onRevoke = fn
}

// Grant transitions Public -> Admin for a verified identity.
// PRE: credentials for adminID have been verified
// POST: IsAdmin() is true; the grant hook has fired
func (g *Gate) Grant(adminID int64, username string) {
	wasPublic := g.state == Public
	g.state = Admin
	g.adminID = adminID
	g.username = username
	if wasPublic && g.onGrant != nil {
		g.onGrant(adminID, username)
	}
}

// Revoke transitions Admin -> Public, clearing the identity. Also the
// landing state after a session restore fails verification.
// POST: IsAdmin() is false; the revoke hook has fired
func (g *Gate) Revoke() {
	wasAdmin := g.state == Admin
	g.state = Public
	g.adminID = 0
	g.username = ""
	if wasAdmin && g.onRevoke != nil {
		g.onRevoke()
	}
}

// IsAdmin reports whether privileged operations are permitted.
// INVARIANT: Gate state is not mutated
func (g *Gate) IsAdmin() bool {
	return g.state == Admin
}

// AdminID returns the granted admin identity, or 0 while Public.
// INVARIANT: Gate state is not mutated
func (g *Gate) AdminID() int64 {
	return g.adminID
}

// Username returns the granted admin username, or "" while Public.
// INVARIANT: Gate state is not mutated
func (g *Gate) Username() string {
	return g.username
}

// Require returns nil while Admin and ErrRestricted while Public. Privileged
// operations call this first, before touching any store.
// INVARIANT: Gate state is not mutated
func (g *Gate) Require() error {
	if g.state != Admin {
		return ErrRestricted
	}
	return nil
}
