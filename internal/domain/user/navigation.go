package user

type NavItem struct {
	ID    string
	Title string
	Href  string
}

func NavigationFor(role Role) []NavItem {
	switch role {
	case RolePlatformAdmin:
		return []NavItem{
			{ID: "dashboard", Title: "Dashboard", Href: "/dashboard"},
			{ID: "jobs", Title: "All Jobs", Href: "/jobs"},
			{ID: "candidates", Title: "Candidates", Href: "/candidates"},
			{ID: "employers", Title: "Employers", Href: "/employers"},
			{ID: "agencies", Title: "Agencies", Href: "/agencies"},
			{ID: "contacts", Title: "Contacts", Href: "/contacts"},
			{ID: "analytics", Title: "Analytics", Href: "/analytics"},
		}
	case RoleAgencyRecruiter:
		return []NavItem{
			{ID: "dashboard", Title: "Dashboard", Href: "/dashboard"},
			{ID: "browse", Title: "Browse", Href: "/browse"},
			{ID: "my-jobs", Title: "My Jobs", Href: "/my-jobs"},
			{ID: "candidates", Title: "Candidates", Href: "/candidates"},
			{ID: "contacts", Title: "Contacts", Href: "/contacts"},
			{ID: "settings", Title: "Settings", Href: "/settings"},
		}
	case RoleEmployerRecruiter:
		return []NavItem{
			{ID: "dashboard", Title: "Dashboard", Href: "/dashboard"},
			{ID: "jobs", Title: "Jobs", Href: "/jobs"},
			{ID: "candidates", Title: "Candidates", Href: "/candidates"},
			{ID: "agencies", Title: "Agencies", Href: "/agencies"},
			{ID: "interviews", Title: "Interviews", Href: "/interviews"},
			{ID: "settings", Title: "Settings", Href: "/settings"},
		}
	default:
		return nil
	}
}
