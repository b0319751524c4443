package domain

// Role is the coarse permission category gating route access. Registration
// stores whatever role string the caller supplies; the known values below
// are the ones routes are gated on.
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
)

func (r Role) String() string { return string(r) }
