package domain

import (
	"time"

	"github.com/critiqhq/critiq/pkg/idx"
)

type User struct {
	ID        idx.ID
	Username  string // globally unique
	Email     string // globally unique
	FirstName string
	LastName  string
	Bio       string
	Role      Role
	Superuser bool

	// IdentityVersion increments whenever username or email changes. It is
	// folded into the confirmation-code hash so every outstanding code dies
	// the moment the identity it was issued against is rewritten.
	IdentityVersion int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the user may perform admin-gated operations.
// Superuser status always counts as admin.
func (u User) IsAdmin() bool {
	return u.Superuser || u.Role.IsAdmin()
}
