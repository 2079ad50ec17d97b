package sdk

// Role names match the server's role vocabulary.
type Role string

const (
	RoleSuperAdmin   Role = "SuperAdmin"
	RoleCollegeAdmin Role = "CollegeAdmin"
	RoleEvaluator    Role = "Evaluator"
	RoleStudent      Role = "Student"
)

// Identity is the server's snapshot of the signed-in user. Two provenances
// exist at runtime: the cached copy read from the credential store at
// bootstrap, and the confirmed copy returned by the identity endpoint.
type Identity struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Role     Role   `json:"role,omitempty"`
	TenantID *int64 `json:"tenant_id,omitempty"`
	Roles    []Role `json:"roles,omitempty"`
}

// HasRole reports whether the identity holds r, either as the primary role
// or in the roles list.
func (id *Identity) HasRole(r Role) bool {
	if id == nil {
		return false
	}
	if id.Role == r {
		return true
	}
	for _, have := range id.Roles {
		if have == r {
			return true
		}
	}
	return false
}

// roleKnown reports whether the server has told us anything about the
// identity's role yet. An identity without one is treated permissively by
// the navigation filter.
func (id *Identity) roleKnown() bool {
	return id != nil && (id.Role != "" || len(id.Roles) > 0)
}
