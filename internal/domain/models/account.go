package models

import "time"

// Role is an account's permission level.
type Role string

const (
	RoleCashier    Role = "kasir"
	RoleDesigner   Role = "desainer"
	RoleSupervisor Role = "superviser"
	RoleOwner      Role = "owner"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCashier, RoleDesigner, RoleSupervisor, RoleOwner:
		return true
	}
	return false
}

// Account is a staff login. PasswordHash is a bcrypt digest; the cleartext is
// never stored. SessionID holds the opaque session identity the account is
// currently bound to, nil when logged out. At most one account may hold a
// given session identity at a time.
type Account struct {
	ID           string    `bson:"_id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         Role      `bson:"role" json:"role"`
	SessionID    *string   `bson:"session_id,omitempty" json:"sessionId,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}
