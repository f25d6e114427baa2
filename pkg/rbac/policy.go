// Package rbac holds the static role-to-page access policy. Every dashboard
// page declares the roles allowed to see it; a page with no entry, or a role
// not listed, is denied. There is no implicit allow anywhere.
package rbac

import (
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/sdk"
)

// Page identifiers. These are the navigation keys used by the CLI command
// tree, one per dashboard area.
const (
	PageDashboard     = "dashboard"
	PageUsers         = "users"
	PageOrganizations = "organizations"
	PageAnalytics     = "analytics"
	PageReports       = "reports"
	PageNotifications = "notifications"
	PageSecurity      = "security"
	PageSettings      = "settings"
)

// MenuItem describes one navigation entry: its page id, display title, and
// the roles permitted to open it.
type MenuItem struct {
	Page  string
	Title string
	Roles []sdk.Role
}

// menuItems is the full navigation list in display order. Declaration order
// is significant: VisibleMenuItems preserves it.
var menuItems = []MenuItem{
	{PageDashboard, "Dashboard", []sdk.Role{sdk.RoleSuperAdmin, sdk.RoleAdmin, sdk.RoleManager, sdk.RoleUser}},
	{PageUsers, "Users", []sdk.Role{sdk.RoleSuperAdmin, sdk.RoleAdmin}},
	{PageOrganizations, "Organizations", []sdk.Role{sdk.RoleSuperAdmin}},
	{PageAnalytics, "Analytics", []sdk.Role{sdk.RoleSuperAdmin, sdk.RoleAdmin, sdk.RoleManager}},
	{PageReports, "Reports", []sdk.Role{sdk.RoleSuperAdmin, sdk.RoleAdmin, sdk.RoleManager}},
	{PageNotifications, "Notifications", []sdk.Role{sdk.RoleSuperAdmin, sdk.RoleAdmin, sdk.RoleManager, sdk.RoleUser}},
	{PageSecurity, "Security", []sdk.Role{sdk.RoleSuperAdmin, sdk.RoleAdmin}},
	{PageSettings, "Settings", []sdk.Role{sdk.RoleSuperAdmin, sdk.RoleAdmin, sdk.RoleManager, sdk.RoleUser}},
}

// IsAllowed reports whether role may open the given page. Unknown pages are
// denied.
func IsAllowed(role sdk.Role, page string) bool {
	for _, item := range menuItems {
		if item.Page != page {
			continue
		}
		for _, r := range item.Roles {
			if r == role {
				return true
			}
		}
		return false
	}
	return false
}

// VisibleMenuItems filters the navigation list to the entries role may open,
// preserving declaration order.
func VisibleMenuItems(role sdk.Role) []MenuItem {
	var visible []MenuItem
	for _, item := range menuItems {
		if IsAllowed(role, item.Page) {
			visible = append(visible, item)
		}
	}
	return visible
}

// Pages returns every declared page id in display order.
func Pages() []string {
	pages := make([]string, 0, len(menuItems))
	for _, item := range menuItems {
		pages = append(pages, item.Page)
	}
	return pages
}
