// Package chrome decides which navigation bar, footer and sidebar surround a
// page. The choice depends on the request path only.
package chrome

import "strings"

// Navbar is the navigation bar variant of a page.
type Navbar int

const (
	// NavbarNone hides the bar on full-bleed pages.
	NavbarNone Navbar = iota
	// NavbarCustomer is shown to people tracking a shipment.
	NavbarCustomer
	// NavbarMain carries the sign in and sign up links.
	NavbarMain
	// NavbarBusiness is shown to signed in business owners.
	NavbarBusiness
)

func (n Navbar) String() string {
	switch n {
	case NavbarCustomer:
		return "customer"
	case NavbarMain:
		return "main"
	case NavbarBusiness:
		return "business"
	default:
		return "none"
	}
}

// SidebarItem is an entry of the admin console sidebar.
type SidebarItem struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Path   string `json:"path"`
	Active bool   `json:"active"`
}

// Chrome is the frame of a page.
type Chrome struct {
	Navbar  Navbar
	Footer  bool
	Sidebar []SidebarItem
}

// Admin reports whether the page belongs to the admin console.
func (c Chrome) Admin() bool {
	return len(c.Sidebar) > 0
}

const adminPrefix = "/admin/"

var sidebar = []SidebarItem{
	{ID: "overview", Title: "Overview", Path: "/admin/dashboard"},
	{ID: "order-review", Title: "Order Review", Path: "/admin/orders"},
	{ID: "business-owners", Title: "Business Owners", Path: "/admin/business-owners"},
	{ID: "analytics", Title: "Analytics & Reports", Path: "/admin/analytics"},
}

var (
	customerPaths = map[string]bool{"/": true, "/help": true}
	businessPaths = map[string]bool{
		"/dashboard":    true,
		"/order-status": true,
		"/review-order": true,
		"/payment":      true,
	}
	barePaths = map[string]bool{"/create-order": true, "/admin-login": true}
)

// Select returns the chrome of the page at path. Paths that match no known
// page get the main navbar, like the sign in pages.
func Select(path string) Chrome {
	path = normalize(path)

	switch {
	case path == "/admin" || strings.HasPrefix(path, adminPrefix):
		return Chrome{Navbar: NavbarNone, Sidebar: adminSidebar(path)}
	case barePaths[path]:
		return Chrome{Navbar: NavbarNone}
	case customerPaths[path] || strings.HasPrefix(path, "/shipment/"):
		return Chrome{Navbar: NavbarCustomer, Footer: true}
	case businessPaths[path] || strings.HasPrefix(path, "/review-order/"):
		return Chrome{Navbar: NavbarBusiness, Footer: true}
	default:
		return Chrome{Navbar: NavbarMain, Footer: true}
	}
}

// adminSidebar marks the item whose path equals path, or Overview when none does.
func adminSidebar(path string) []SidebarItem {
	items := make([]SidebarItem, len(sidebar))
	copy(items, sidebar)

	active := 0
	for i, item := range items {
		if item.Path == path {
			active = i
			break
		}
	}
	items[active].Active = true
	return items
}

func normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return "/"
		}
	}
	return path
}
