package user

import "errors"

var ErrUnknownUser = errors.New("unknown user")

// Directory is the fixed set of users an acting session may pick from.
type Directory struct {
	users []User
	byID  map[string]User
}

func NewDirectory(users []User) *Directory {
	d := &Directory{users: make([]User, 0, len(users)), byID: make(map[string]User, len(users))}
	for _, u := range users {
		if _, dup := d.byID[u.ID]; dup {
			continue
		}
		d.users = append(d.users, u)
		d.byID[u.ID] = u
	}
	return d
}

func DefaultDirectory() *Directory {
	return NewDirectory([]User{
		{
			ID:               "user-admin",
			Name:             "Alex Platform",
			Email:            "alex@atsplatform.com",
			Role:             RolePlatformAdmin,
			OrganizationID:   "org-platform",
			OrganizationName: "ATS Platform",
			Avatar:           "AP",
		},
		{
			ID:               "user-agency-1",
			Name:             "Sarah Johnson",
			Email:            "sarah@techtalent.com",
			Role:             RoleAgencyRecruiter,
			OrganizationID:   "org-tech-agency",
			OrganizationName: "TechTalent Agency",
			Avatar:           "SJ",
		},
		{
			ID:               "user-employer-1",
			Name:             "Mike Chen",
			Email:            "mike@startup.com",
			Role:             RoleEmployerRecruiter,
			OrganizationID:   "org-startup-inc",
			OrganizationName: "Startup Inc",
			Avatar:           "MC",
		},
	})
}

func (d *Directory) List() []User {
	if d == nil {
		return nil
	}
	out := make([]User, len(d.users))
	copy(out, d.users)
	return out
}

func (d *Directory) Find(id string) (User, error) {
	if d == nil {
		return User{}, ErrUnknownUser
	}
	u, ok := d.byID[id]
	if !ok {
		return User{}, ErrUnknownUser
	}
	return u, nil
}

// Recruiters returns every user that owns candidates, i.e. everyone but
// platform admins.
func (d *Directory) Recruiters() []User {
	if d == nil {
		return nil
	}
	out := make([]User, 0, len(d.users))
	for _, u := range d.users {
		if u.Role != RolePlatformAdmin {
			out = append(out, u)
		}
	}
	return out
}
