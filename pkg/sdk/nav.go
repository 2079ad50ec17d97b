package sdk

// NavItem is one entry of the console navigation. An item with no role
// allow-list is visible to everyone, including unauthenticated visitors.
type NavItem struct {
	Title string
	Route Route
	// Roles is the allow-list; empty means unrestricted.
	Roles []Role
}

// DefaultNav mirrors the admin console sidebar.
var DefaultNav = []NavItem{
	{Title: "Dashboard", Route: RouteHome},
	{Title: "Students", Route: "/students", Roles: []Role{RoleSuperAdmin, RoleCollegeAdmin}},
	{Title: "Modules", Route: "/modules", Roles: []Role{RoleSuperAdmin, RoleCollegeAdmin}},
	{Title: "Assessments", Route: "/assessments", Roles: []Role{RoleSuperAdmin, RoleCollegeAdmin, RoleEvaluator}},
	{Title: "Evaluate", Route: "/evaluate", Roles: []Role{RoleSuperAdmin, RoleEvaluator}},
	{Title: "Colleges", Route: "/colleges", Roles: []Role{RoleSuperAdmin}},
	{Title: "Reports", Route: "/reports/overview"},
}

// VisibleItems filters items down to what the session may see.
//
// When the role is not yet known (session loading, or authenticated with a
// role-less identity) the filter is deliberately permissive and returns
// everything: briefly over-showing beats hiding navigation the user is
// entitled to, and the server enforces access regardless. Unauthenticated
// sessions see only unrestricted items.
func VisibleItems(items []NavItem, s State) []NavItem {
	if s.Status == StatusLoading {
		return items
	}
	if s.Status == StatusAuthenticated && !s.Identity.roleKnown() {
		return items
	}

	visible := make([]NavItem, 0, len(items))
	for _, item := range items {
		if len(item.Roles) == 0 {
			visible = append(visible, item)
			continue
		}
		if s.Status != StatusAuthenticated {
			continue
		}
		for _, r := range item.Roles {
			if s.Identity.HasRole(r) {
				visible = append(visible, item)
				break
			}
		}
	}
	return visible
}
